package repository

import (
	"github.com/Omar1Ach/-shahd-beekeeping/internal/models"
	"github.com/Omar1Ach/-shahd-beekeeping/pkg/money"
	"gorm.io/gorm"
)

// MovementFilter narrows ledger listings. Zero values mean no filtering.
type MovementFilter struct {
	Type     string
	Category string
}

type CashMovementRepository interface {
	Create(movement *models.CashMovement) error
	GetAll(filter MovementFilter) ([]models.CashMovement, error)
	GetByOrder(orderID uint) ([]models.CashMovement, error)
	Balance() (money.Cents, error)
}

type cashMovementRepository struct {
	db *gorm.DB
}

func NewCashMovementRepository(db *gorm.DB) CashMovementRepository {
	return &cashMovementRepository{db: db}
}

func (r *cashMovementRepository) Create(movement *models.CashMovement) error {
	return r.db.Create(movement).Error
}

func (r *cashMovementRepository) GetAll(filter MovementFilter) ([]models.CashMovement, error) {
	q := r.db.Order("date DESC")
	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	var movements []models.CashMovement
	err := q.Find(&movements).Error
	return movements, err
}

func (r *cashMovementRepository) GetByOrder(orderID uint) ([]models.CashMovement, error) {
	var movements []models.CashMovement
	err := r.db.Where("order_id = ?", orderID).Order("date DESC").Find(&movements).Error
	return movements, err
}

// Balance is recomputed from the full ledger on every read, never stored.
func (r *cashMovementRepository) Balance() (money.Cents, error) {
	var balance int64
	err := r.db.Model(&models.CashMovement{}).
		Select("COALESCE(SUM(CASE WHEN type = ? THEN amount ELSE -amount END), 0)", string(models.MovementIncome)).
		Scan(&balance).Error
	return money.Cents(balance), err
}
