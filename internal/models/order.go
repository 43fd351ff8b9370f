package models

import (
	"time"

	"github.com/Omar1Ach/-shahd-beekeeping/pkg/money"
	"gorm.io/gorm"
)

type Order struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	OrderNumber string         `json:"order_number" gorm:"unique;not null"`
	CustomerID  uint           `json:"customer_id" gorm:"not null"`
	Customer    *Customer      `json:"customer,omitempty"`
	Status      string         `json:"status" gorm:"default:'PENDING'"` // PENDING, PAID, SHIPPED, COMPLETED, CANCELLED
	TotalAmount money.Cents    `json:"total_amount" gorm:"not null"`
	Notes       string         `json:"notes" gorm:"type:text"`
	OrderItems  []OrderItem    `json:"order_items,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

type OrderStatus string

const (
	OrderPending   OrderStatus = "PENDING"
	OrderPaid      OrderStatus = "PAID"
	OrderShipped   OrderStatus = "SHIPPED"
	OrderCompleted OrderStatus = "COMPLETED"
	OrderCancelled OrderStatus = "CANCELLED"
)

// ValidStatus reports whether s is one of the known order statuses.
func ValidStatus(s string) bool {
	switch OrderStatus(s) {
	case OrderPending, OrderPaid, OrderShipped, OrderCompleted, OrderCancelled:
		return true
	}
	return false
}
