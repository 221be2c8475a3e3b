package model

import (
	"time"
)

type User struct {
	ID        int64     `gorm:"primaryKey" json:"-"`
	UserID    string    `gorm:"column:user_id;size:255;uniqueIndex;not null" json:"user_id"`
	Email     string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Name      string    `gorm:"size:255" json:"name"`
	Picture   *string   `gorm:"type:text" json:"picture,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (User) TableName() string {
	return "users"
}
