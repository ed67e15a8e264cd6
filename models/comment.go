package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Comment struct {
	ID              string    `json:"id" gorm:"type:text;primaryKey"`
	ActivityID      string    `json:"activity_id" gorm:"not null;index"`
	UserID          string    `json:"user_id" gorm:"not null"`
	UserDisplayName string    `json:"user_display_name"`
	Text            string    `json:"text" gorm:"type:text;not null"`
	CreatedAt       time.Time `json:"timestamp" gorm:"autoCreateTime"`

	Activity Activity `json:"-" gorm:"foreignKey:ActivityID"`
}

func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}
