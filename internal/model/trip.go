package model

import (
	"time"
)

type Trip struct {
	ID            int64      `gorm:"primaryKey" json:"-"`
	TripID        string     `gorm:"column:trip_id;size:255;uniqueIndex;not null" json:"trip_id"`
	UserID        string     `gorm:"column:user_id;size:255;index;not null" json:"user_id"`
	VehicleID     *string    `gorm:"column:vehicle_id;size:255" json:"vehicle_id,omitempty"`
	StartTime     time.Time  `gorm:"not null;index" json:"start_time"`
	EndTime       *time.Time `json:"end_time,omitempty"`
	Distance      float64    `gorm:"not null" json:"distance"`
	StartLocation *string    `gorm:"type:text" json:"start_location,omitempty"`
	EndLocation   *string    `gorm:"type:text" json:"end_location,omitempty"`
	Purpose       *string    `gorm:"type:text" json:"purpose,omitempty"`
	// No column defaults: a false here must be stored as false, and gorm
	// skips zero values for columns carrying a default tag.
	IsBusiness  bool      `json:"is_business"`
	IsAutomatic bool      `json:"is_automatic"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Trip) TableName() string {
	return "trips"
}
