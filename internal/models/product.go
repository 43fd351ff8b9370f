package models

import (
	"time"

	"github.com/Omar1Ach/-shahd-beekeeping/pkg/money"
	"gorm.io/gorm"
)

type Category struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"unique;not null"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Product struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Name        string         `json:"name" gorm:"not null"`
	Description string         `json:"description" gorm:"type:text"`
	Price       money.Cents    `json:"price" gorm:"not null"`
	Stock       int            `json:"stock" gorm:"not null;default:0;check:stock >= 0"`
	CategoryID  uint           `json:"category_id" gorm:"not null"`
	Category    *Category      `json:"category,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}
