package models

import (
	"time"

	"github.com/Omar1Ach/-shahd-beekeeping/pkg/money"
)

// OrderItem snapshots the unit price at order time; it never tracks the
// live product price and is immutable once the order is created.
type OrderItem struct {
	ID        uint        `json:"id" gorm:"primaryKey"`
	OrderID   uint        `json:"order_id" gorm:"not null"`
	ProductID uint        `json:"product_id" gorm:"not null"`
	Product   *Product    `json:"product,omitempty"`
	Quantity  int         `json:"quantity" gorm:"not null"`
	Price     money.Cents `json:"price" gorm:"not null"`
	Subtotal  money.Cents `json:"subtotal" gorm:"not null"`
	CreatedAt time.Time   `json:"created_at"`
}
