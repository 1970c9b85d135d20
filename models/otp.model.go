package models

import (
	"time"

	"gorm.io/gorm"
)

// OTP stores a one-time code sent for email verification
type OTP struct {
	gorm.Model
	UserID    uint      `gorm:"index;not null" json:"userId"`
	Code      string    `gorm:"not null" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expiresAt"`
	IsUsed    bool      `gorm:"default:false" json:"isUsed"`
}
