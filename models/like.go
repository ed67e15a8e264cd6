package models

import (
	"time"
)

// Like is keyed by (activity_id, user_id), so a user holds at most one like
// per activity at the schema level. Re-liking is an upsert, never a duplicate.
type Like struct {
	ActivityID      string    `json:"activity_id" gorm:"column:activity_id;primaryKey"`
	UserID          string    `json:"user_id" gorm:"column:user_id;primaryKey"`
	UserDisplayName string    `json:"user_display_name" gorm:"column:user_display_name"`
	CreatedAt       time.Time `json:"timestamp" gorm:"column:created_at;autoCreateTime"`

	Activity Activity `json:"-" gorm:"foreignKey:ActivityID"`
}
