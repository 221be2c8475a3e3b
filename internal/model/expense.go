package model

import (
	"time"
)

type Expense struct {
	ID                 int64     `gorm:"primaryKey" json:"-"`
	ExpenseID          string    `gorm:"column:expense_id;size:255;uniqueIndex;not null" json:"expense_id"`
	UserID             string    `gorm:"column:user_id;size:255;index;not null" json:"user_id"`
	VehicleID          *string   `gorm:"column:vehicle_id;size:255" json:"vehicle_id,omitempty"`
	Amount             float64   `gorm:"not null" json:"amount"`
	Category           string    `gorm:"size:255;not null" json:"category"`
	Date               time.Time `gorm:"not null;index" json:"date"`
	Notes              *string   `gorm:"type:text" json:"notes,omitempty"`
	ReceiptImageBase64 *string   `gorm:"type:text" json:"receipt_image_base64,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}

func (Expense) TableName() string {
	return "expenses"
}
