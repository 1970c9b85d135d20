package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	ProfileImage        string     `gorm:"default:''" json:"profileImage"`
	Name                string     `gorm:"default:''" json:"name"`
	Email               string     `gorm:"unique;not null" json:"email"`
	Role                string     `gorm:"default:'LEARNER'" json:"role"` // LEARNER, INSTRUCTOR
	Password            string     `gorm:"not null" json:"-"`
	Headline            string     `json:"headline"`
	Bio                 string     `gorm:"type:text" json:"bio"`
	CoinBalance         uint       `gorm:"default:0" json:"coinBalance"`
	IsEmailVerified     bool       `gorm:"default:false" json:"isEmailVerified"`
	LastLogin           *time.Time `json:"lastLogin"`
	FailedLoginAttempts int        `gorm:"default:0" json:"-"`
	IsDeleted           bool       `gorm:"default:false" json:"-"`
}
