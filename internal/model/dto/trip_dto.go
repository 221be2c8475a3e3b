package dto

import "time"

// CreateTripRequest logs a trip, manual or automatically captured.
type CreateTripRequest struct {
	VehicleID     *string    `json:"vehicle_id,omitempty" binding:"omitempty,max=255"`
	StartTime     time.Time  `json:"start_time" binding:"required"`
	EndTime       *time.Time `json:"end_time,omitempty"`
	Distance      float64    `json:"distance" binding:"required,gt=0"`
	StartLocation *string    `json:"start_location,omitempty"`
	EndLocation   *string    `json:"end_location,omitempty"`
	Purpose       *string    `json:"purpose,omitempty"`
	IsBusiness    *bool      `json:"is_business,omitempty"`
	IsAutomatic   bool       `json:"is_automatic,omitempty"`
}

// UpdateTripRequest is a partial update: only populated fields are written.
type UpdateTripRequest struct {
	VehicleID     *string    `json:"vehicle_id,omitempty" binding:"omitempty,max=255"`
	StartTime     *time.Time `json:"start_time,omitempty"`
	EndTime       *time.Time `json:"end_time,omitempty"`
	Distance      *float64   `json:"distance,omitempty" binding:"omitempty,gt=0"`
	StartLocation *string    `json:"start_location,omitempty"`
	EndLocation   *string    `json:"end_location,omitempty"`
	Purpose       *string    `json:"purpose,omitempty"`
	IsBusiness    *bool      `json:"is_business,omitempty"`
}
