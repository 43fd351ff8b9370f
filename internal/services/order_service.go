package services

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/Omar1Ach/-shahd-beekeeping/internal/models"
	"github.com/Omar1Ach/-shahd-beekeeping/internal/repository"
	"github.com/Omar1Ach/-shahd-beekeeping/pkg/money"
)

// OrderItemInput is one cart line. Price is the unit price the order is
// taken at; it is snapshotted, not re-read from the catalog.
type OrderItemInput struct {
	ProductID uint
	Quantity  int
	Price     money.Cents
}

type CreateOrderInput struct {
	CustomerID uint
	Status     string
	Notes      string
	Items      []OrderItemInput
}

type OrderService interface {
	CreateOrder(identity Identity, input CreateOrderInput) (*models.Order, error)
	GetOrderByID(identity Identity, id uint) (*models.Order, error)
	GetAllOrders(identity Identity) ([]models.Order, error)
	GetOrdersByCustomer(identity Identity, customerID uint) ([]models.Order, error)
	UpdateOrder(identity Identity, id uint, status, notes string) (*models.Order, error)
	DeleteOrder(identity Identity, id uint) error
}

type orderService struct {
	orderRepo    repository.OrderRepository
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
}

func NewOrderService(orderRepo repository.OrderRepository, productRepo repository.ProductRepository, customerRepo repository.CustomerRepository) OrderService {
	return &orderService{orderRepo: orderRepo, productRepo: productRepo, customerRepo: customerRepo}
}

// CreateOrder validates the cart, computes the total in cents and runs the
// fulfillment transaction. On any failure nothing is applied: no order row,
// no stock change, no ledger entry.
func (s *orderService) CreateOrder(identity Identity, input CreateOrderInput) (*models.Order, error) {
	if !identity.IsAdmin() && !identity.OwnsCustomer(input.CustomerID) {
		return nil, ErrForbidden
	}

	if len(input.Items) == 0 {
		return nil, fmt.Errorf("%w: order must contain at least one item", repository.ErrInvalidInput)
	}

	status := input.Status
	if status == "" {
		status = string(models.OrderPending)
	}
	if !models.ValidStatus(status) {
		return nil, fmt.Errorf("%w: unknown order status %q", repository.ErrInvalidInput, input.Status)
	}

	if _, err := s.customerRepo.GetByID(input.CustomerID); err != nil {
		return nil, fmt.Errorf("customer %d: %w", input.CustomerID, err)
	}

	items := make([]models.OrderItem, 0, len(input.Items))
	var total money.Cents
	for _, line := range input.Items {
		if line.Quantity < 1 {
			return nil, fmt.Errorf("%w: quantity must be at least 1", repository.ErrInvalidInput)
		}
		if line.Price.IsNegative() {
			return nil, fmt.Errorf("%w: price cannot be negative", repository.ErrInvalidInput)
		}

		product, err := s.productRepo.GetByID(line.ProductID)
		if err != nil {
			return nil, fmt.Errorf("product %d: %w", line.ProductID, err)
		}
		if product.Stock < line.Quantity {
			return nil, fmt.Errorf("%q has %d in stock: %w", product.Name, product.Stock, repository.ErrInsufficientStock)
		}

		subtotal := line.Price.Mul(line.Quantity)
		total += subtotal
		items = append(items, models.OrderItem{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Price:     line.Price,
			Subtotal:  subtotal,
		})
	}

	order := &models.Order{
		OrderNumber: newOrderNumber(time.Now()),
		CustomerID:  input.CustomerID,
		Status:      status,
		TotalAmount: total,
		Notes:       input.Notes,
		OrderItems:  items,
	}

	// The repository re-checks stock with a conditional decrement inside
	// one transaction, so a concurrent order racing on the same product
	// aborts here rather than overselling.
	if err := s.orderRepo.CreateWithItems(order); err != nil {
		return nil, err
	}
	return s.orderRepo.GetByID(order.ID)
}

func (s *orderService) GetOrderByID(identity Identity, id uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !identity.IsAdmin() && !identity.OwnsCustomer(order.CustomerID) {
		return nil, ErrForbidden
	}
	return order, nil
}

func (s *orderService) GetAllOrders(identity Identity) ([]models.Order, error) {
	if identity.IsAdmin() {
		return s.orderRepo.GetAll()
	}
	if identity.CustomerID == nil {
		return nil, ErrForbidden
	}
	return s.orderRepo.GetByCustomer(*identity.CustomerID)
}

func (s *orderService) GetOrdersByCustomer(identity Identity, customerID uint) ([]models.Order, error) {
	if !identity.IsAdmin() && !identity.OwnsCustomer(customerID) {
		return nil, ErrForbidden
	}
	return s.orderRepo.GetByCustomer(customerID)
}

// UpdateOrder only ever touches status and notes; the total and the items
// are frozen at creation time. Moving an order to CANCELLED restores stock
// and appends the compensating ledger entry, once.
func (s *orderService) UpdateOrder(identity Identity, id uint, status, notes string) (*models.Order, error) {
	if !identity.IsAdmin() {
		return nil, ErrForbidden
	}
	if status != "" && !models.ValidStatus(status) {
		return nil, fmt.Errorf("%w: unknown order status %q", repository.ErrInvalidInput, status)
	}

	current, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if current.Status == string(models.OrderCancelled) {
		return nil, fmt.Errorf("order %s is cancelled: %w", current.OrderNumber, repository.ErrConflict)
	}
	if status == "" {
		status = current.Status
	}

	if status == string(models.OrderCancelled) {
		return s.orderRepo.Cancel(id, notes)
	}
	return s.orderRepo.UpdateStatusNotes(id, status, notes)
}

// DeleteOrder removes a cancelled order and its items. Deleting an order in
// any other status is a conflict, so stock and the cash ledger have always
// been reversed before a row can disappear.
func (s *orderService) DeleteOrder(identity Identity, id uint) error {
	if !identity.IsAdmin() {
		return ErrForbidden
	}
	return s.orderRepo.Delete(id)
}

// newOrderNumber builds the human-facing order number: date-prefixed so
// numbers sort roughly by day, with a random suffix; the unique index on
// order_number backstops the rare collision.
func newOrderNumber(now time.Time) string {
	buf := make([]byte, 4)
	rand.Read(buf)
	return fmt.Sprintf("ORD-%s-%s", now.Format("20060102"), hex.EncodeToString(buf))
}
