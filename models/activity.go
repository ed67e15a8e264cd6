package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Location is the optional coordinate pair attached to an activity.
type Location struct {
	Lat *float64 `json:"lat"`
	Lng *float64 `json:"lng"`
}

type Activity struct {
	ID           string         `json:"id" gorm:"type:text;primaryKey"`
	Participants pq.StringArray `json:"participants" gorm:"type:text[];not null"`
	Tags         pq.StringArray `json:"tags" gorm:"type:text[]"`
	Description  string         `json:"description" gorm:"type:text"`
	Latitude     *float64       `json:"-" gorm:"type:decimal(10,8)"`
	Longitude    *float64       `json:"-" gorm:"type:decimal(11,8)"`
	TimeStart    time.Time      `json:"time_start" gorm:"not null;index:idx_activities_time_start,sort:desc"`
	TimeEnd      *time.Time     `json:"time_end"`
}

// Activities are immutable once created, so the id never changes after this.
func (a *Activity) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return nil
}

func (a *Activity) Location() *Location {
	if a.Latitude == nil && a.Longitude == nil {
		return nil
	}
	return &Location{Lat: a.Latitude, Lng: a.Longitude}
}

// HasTag reports whether the activity carries the given tag.
func (a *Activity) HasTag(tag string) bool {
	for _, t := range a.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
