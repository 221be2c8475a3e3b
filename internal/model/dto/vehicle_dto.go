package dto

// CreateVehicleRequest creates a vehicle owned by the caller.
type CreateVehicleRequest struct {
	Name               string  `json:"name" binding:"required,max=255"`
	Make               *string `json:"make,omitempty" binding:"omitempty,max=255"`
	Model              *string `json:"model,omitempty" binding:"omitempty,max=255"`
	Year               *int    `json:"year,omitempty" binding:"omitempty,min=1900,max=2100"`
	BusinessPercentage *int    `json:"business_percentage,omitempty" binding:"omitempty,min=0,max=100"`
}
