package model

import (
	"time"
)

// Session is a bearer credential binding a user to an opaque token.
// Expired rows are rejected on lookup, never deleted by the serving path.
type Session struct {
	ID           int64     `gorm:"primaryKey" json:"-"`
	UserID       string    `gorm:"column:user_id;size:255;index;not null" json:"user_id"`
	SessionToken string    `gorm:"size:255;uniqueIndex;not null" json:"session_token"`
	ExpiresAt    time.Time `gorm:"not null;index" json:"expires_at"`
	CreatedAt    time.Time `json:"created_at"`
}

func (Session) TableName() string {
	return "user_sessions"
}
