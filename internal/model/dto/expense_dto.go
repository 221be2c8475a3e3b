package dto

import "time"

// CreateExpenseRequest records an expense; the receipt image is stored inline.
type CreateExpenseRequest struct {
	VehicleID          *string   `json:"vehicle_id,omitempty" binding:"omitempty,max=255"`
	Amount             float64   `json:"amount" binding:"required,gt=0"`
	Category           string    `json:"category" binding:"required,max=255"`
	Date               time.Time `json:"date" binding:"required"`
	Notes              *string   `json:"notes,omitempty"`
	ReceiptImageBase64 *string   `json:"receipt_image_base64,omitempty"`
}
