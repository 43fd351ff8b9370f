package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/Omar1Ach/-shahd-beekeeping/internal/models"
	"gorm.io/gorm"
)

type OrderRepository interface {
	// CreateWithItems runs the fulfillment transaction: the order and its
	// items are inserted, stock is decremented per line and one INCOME
	// ledger entry is appended. All of it commits or none of it does.
	CreateWithItems(order *models.Order) error

	GetByID(id uint) (*models.Order, error)
	GetAll() ([]models.Order, error)
	GetByCustomer(customerID uint) ([]models.Order, error)
	UpdateStatusNotes(id uint, status, notes string) (*models.Order, error)

	// Cancel flips the order to CANCELLED at most once, restores stock for
	// every line and appends a compensating EXPENSE ledger entry.
	Cancel(id uint, notes string) (*models.Order, error)

	// Delete removes the order and its items. Only CANCELLED orders may be
	// deleted; ledger entries are kept for audit.
	Delete(id uint) error
}

type orderRepository struct {
	db       *gorm.DB
	products ProductRepository
}

func NewOrderRepository(db *gorm.DB, products ProductRepository) OrderRepository {
	return &orderRepository{db: db, products: products}
}

func (r *orderRepository) CreateWithItems(order *models.Order) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		for _, item := range order.OrderItems {
			if err := r.products.DecrementStock(tx, item.ProductID, item.Quantity); err != nil {
				return fmt.Errorf("product %d: %w", item.ProductID, err)
			}
		}
		movement := models.CashMovement{
			Type:        string(models.MovementIncome),
			Amount:      order.TotalAmount,
			Description: fmt.Sprintf("Sale - Order #%s", order.OrderNumber),
			Category:    "Sales",
			Date:        time.Now(),
			OrderID:     &order.ID,
		}
		return tx.Create(&movement).Error
	})
}

func (r *orderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	err := r.preloaded(r.db).First(&order, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetAll() ([]models.Order, error) {
	var orders []models.Order
	err := r.preloaded(r.db).Order("created_at DESC").Find(&orders).Error
	return orders, err
}

func (r *orderRepository) GetByCustomer(customerID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.preloaded(r.db).Where("customer_id = ?", customerID).Order("created_at DESC").Find(&orders).Error
	return orders, err
}

func (r *orderRepository) UpdateStatusNotes(id uint, status, notes string) (*models.Order, error) {
	res := r.db.Model(&models.Order{}).Where("id = ?", id).
		Updates(map[string]interface{}{"status": status, "notes": notes})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.GetByID(id)
}

func (r *orderRepository) Cancel(id uint, notes string) (*models.Order, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		// Conditional update so a racing second cancel reverses nothing.
		res := tx.Model(&models.Order{}).
			Where("id = ? AND status <> ?", id, string(models.OrderCancelled)).
			Updates(map[string]interface{}{"status": string(models.OrderCancelled), "notes": notes})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			var count int64
			if err := tx.Model(&models.Order{}).Where("id = ?", id).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return ErrNotFound
			}
			return ErrConflict
		}

		var order models.Order
		if err := tx.Preload("OrderItems").First(&order, id).Error; err != nil {
			return err
		}
		for _, item := range order.OrderItems {
			if err := r.products.RestoreStock(tx, item.ProductID, item.Quantity); err != nil {
				return fmt.Errorf("product %d: %w", item.ProductID, err)
			}
		}
		movement := models.CashMovement{
			Type:        string(models.MovementExpense),
			Amount:      order.TotalAmount,
			Description: fmt.Sprintf("Refund - Order #%s", order.OrderNumber),
			Category:    "Sales",
			Date:        time.Now(),
			OrderID:     &order.ID,
		}
		return tx.Create(&movement).Error
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(id)
}

func (r *orderRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if order.Status != string(models.OrderCancelled) {
			return ErrConflict
		}
		if err := tx.Where("order_id = ?", id).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Order{}, id).Error
	})
}

// preloaded loads the customer and item relations the API returns with every
// order. Item products are loaded unscoped so history survives a product
// being retired from the catalog.
func (r *orderRepository) preloaded(db *gorm.DB) *gorm.DB {
	return db.Preload("Customer").
		Preload("OrderItems").
		Preload("OrderItems.Product", func(db *gorm.DB) *gorm.DB {
			return db.Unscoped()
		})
}
