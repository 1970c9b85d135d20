package models

import (
	"time"

	"gorm.io/gorm"
)

// CoinTransactionType defines the direction of a coin transaction
type CoinTransactionType string

const (
	CoinTransactionTypeEarn  CoinTransactionType = "EARN"
	CoinTransactionTypeSpend CoinTransactionType = "SPEND"
)

// CoinReason identifies what a coin transaction was for
type CoinReason string

const (
	CoinReasonEnrollment     CoinReason = "ENROLLMENT"
	CoinReasonLessonComplete CoinReason = "LESSON_COMPLETE"
	CoinReasonCourseComplete CoinReason = "COURSE_COMPLETE"
	CoinReasonResourceUnlock CoinReason = "RESOURCE_UNLOCK"
)

// CoinTransaction tracks every coin movement for a user
type CoinTransaction struct {
	gorm.Model
	UserID          uint                `gorm:"not null;index" json:"userId"`
	TransactionType CoinTransactionType `gorm:"type:varchar(20);not null" json:"transactionType"`
	Amount          uint                `gorm:"not null" json:"amount"`
	BalanceBefore   uint                `gorm:"not null" json:"balanceBefore"`
	BalanceAfter    uint                `gorm:"not null" json:"balanceAfter"`
	Reason          CoinReason          `gorm:"type:varchar(50);not null" json:"reason"`
	Description     string              `gorm:"type:text" json:"description"`

	// Reference details (course, lesson or resource that triggered the movement)
	ReferenceType string `gorm:"type:varchar(50)" json:"referenceType"`
	ReferenceID   uint   `gorm:"default:0" json:"referenceId"`
	ReferenceName string `gorm:"type:varchar(255)" json:"referenceName"`

	TransactionDate time.Time `gorm:"not null" json:"transactionDate"`
}
