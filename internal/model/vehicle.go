package model

import (
	"time"
)

type Vehicle struct {
	ID                 int64     `gorm:"primaryKey" json:"-"`
	VehicleID          string    `gorm:"column:vehicle_id;size:255;uniqueIndex;not null" json:"vehicle_id"`
	UserID             string    `gorm:"column:user_id;size:255;index;not null" json:"user_id"`
	Name               string    `gorm:"size:255;not null" json:"name"`
	Make               *string   `gorm:"size:255" json:"make,omitempty"`
	Model              *string   `gorm:"size:255" json:"model,omitempty"`
	Year               *int      `json:"year,omitempty"`
	BusinessPercentage int       `json:"business_percentage"`
	CreatedAt          time.Time `json:"created_at"`
}

func (Vehicle) TableName() string {
	return "vehicles"
}
