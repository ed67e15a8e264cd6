package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// User is the denormalized profile record. Profiles are lazily created with
// empty defaults the first time an authenticated operation touches them.
type User struct {
	UID         string         `json:"uid" gorm:"column:uid;primaryKey"`
	DisplayName string         `json:"display_name"`
	City        string         `json:"city"`
	Description string         `json:"description"`
	Tags        pq.StringArray `json:"tags" gorm:"type:text[];not null;default:'{}'"`
	Email       *string        `json:"email,omitempty" gorm:"uniqueIndex"`
	Password    *string        `json:"-"` // bcrypt hash, nil for Google-only accounts
	GoogleID    *string        `json:"-" gorm:"uniqueIndex"`
	Provider    string         `json:"-" gorm:"type:varchar(20)"`
	CreatedAt   time.Time      `json:"created_at"`

	Comments      []Comment      `json:"-" gorm:"foreignKey:UserID"`
	Likes         []Like         `json:"-" gorm:"foreignKey:UserID"`
	RefreshTokens []RefreshToken `json:"-" gorm:"foreignKey:UserID"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.UID == "" {
		u.UID = uuid.New().String()
	}
	return nil
}

// DisplayNameOrDefault is the name snapshotted onto likes and comments.
func (u *User) DisplayNameOrDefault() string {
	if u.DisplayName == "" {
		return "User"
	}
	return u.DisplayName
}
