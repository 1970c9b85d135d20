package utils

import (
	"errors"
	"time"

	"upskillr/models"

	"gorm.io/gorm"
)

var ErrInsufficientCoins = errors.New("insufficient coin balance")

// AwardCoins credits coins to a user and writes a ledger row. Must run inside
// the caller's transaction so the balance and the ledger move together.
func AwardCoins(tx *gorm.DB, user *models.User, amount uint, reason models.CoinReason, refType string, refID uint, refName string) error {
	if amount == 0 {
		return nil
	}

	balanceBefore := user.CoinBalance
	user.CoinBalance = balanceBefore + amount

	txn := models.CoinTransaction{
		UserID:          user.ID,
		TransactionType: models.CoinTransactionTypeEarn,
		Amount:          amount,
		BalanceBefore:   balanceBefore,
		BalanceAfter:    user.CoinBalance,
		Reason:          reason,
		Description:     refName,
		ReferenceType:   refType,
		ReferenceID:     refID,
		ReferenceName:   refName,
		TransactionDate: time.Now(),
	}

	if err := tx.Create(&txn).Error; err != nil {
		return err
	}
	return tx.Model(&models.User{}).Where("id = ?", user.ID).
		Update("coin_balance", user.CoinBalance).Error
}

// SpendCoins debits coins from a user and writes a ledger row. Fails with
// ErrInsufficientCoins when the balance cannot cover the amount.
func SpendCoins(tx *gorm.DB, user *models.User, amount uint, reason models.CoinReason, refType string, refID uint, refName string) error {
	if user.CoinBalance < amount {
		return ErrInsufficientCoins
	}

	balanceBefore := user.CoinBalance
	user.CoinBalance = balanceBefore - amount

	txn := models.CoinTransaction{
		UserID:          user.ID,
		TransactionType: models.CoinTransactionTypeSpend,
		Amount:          amount,
		BalanceBefore:   balanceBefore,
		BalanceAfter:    user.CoinBalance,
		Reason:          reason,
		Description:     refName,
		ReferenceType:   refType,
		ReferenceID:     refID,
		ReferenceName:   refName,
		TransactionDate: time.Now(),
	}

	if err := tx.Create(&txn).Error; err != nil {
		return err
	}
	return tx.Model(&models.User{}).Where("id = ?", user.ID).
		Update("coin_balance", user.CoinBalance).Error
}
