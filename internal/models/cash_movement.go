package models

import (
	"time"

	"github.com/Omar1Ach/-shahd-beekeeping/pkg/money"
)

// CashMovement is one append-only ledger entry. The amount is always
// positive; the type decides its sign when the balance is computed.
type CashMovement struct {
	ID          uint        `json:"id" gorm:"primaryKey"`
	Type        string      `json:"type" gorm:"not null"` // INCOME, EXPENSE
	Amount      money.Cents `json:"amount" gorm:"not null"`
	Description string      `json:"description" gorm:"not null"`
	Category    string      `json:"category"`
	Date        time.Time   `json:"date" gorm:"not null"`
	OrderID     *uint       `json:"order_id"`
	CreatedAt   time.Time   `json:"created_at"`
}

type MovementType string

const (
	MovementIncome  MovementType = "INCOME"
	MovementExpense MovementType = "EXPENSE"
)
