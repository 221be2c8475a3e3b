package model

import (
	"time"
)

const (
	SubscriptionStatusActive    = "active"
	SubscriptionStatusCancelled = "cancelled"
)

// Subscription is one entitlement record. At most one active row per user;
// a plan change cancels the previous active row and inserts a new one.
type Subscription struct {
	ID        int64      `gorm:"primaryKey" json:"id"`
	UserID    string     `gorm:"column:user_id;size:255;index;not null" json:"user_id"`
	PlanType  string     `gorm:"size:20;not null" json:"plan_type"` // basic, mid, premium
	Status    string     `gorm:"size:20;default:active;index" json:"status"`
	StartedAt time.Time  `gorm:"not null" json:"started_at"`
	EndedAt   *time.Time `json:"ended_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}
