package services_test

import (
	"fmt"
	"sync"
	"time"

	"github.com/Omar1Ach/-shahd-beekeeping/internal/models"
	"github.com/Omar1Ach/-shahd-beekeeping/internal/repository"
	"github.com/Omar1Ach/-shahd-beekeeping/pkg/money"
	"gorm.io/gorm"
)

// memStore is an in-memory stand-in for the persistence layer. It honors the
// same contracts as the gorm repositories: conditional stock decrement and
// all-or-nothing order creation, serialized by one mutex the way the store
// serializes transactions.
type memStore struct {
	mu        sync.Mutex
	products  map[uint]*models.Product
	customers map[uint]*models.Customer
	orders    map[uint]*models.Order
	movements []models.CashMovement
	nextID    uint
}

func newMemStore() *memStore {
	return &memStore{
		products:  make(map[uint]*models.Product),
		customers: make(map[uint]*models.Customer),
		orders:    make(map[uint]*models.Order),
	}
}

func (s *memStore) addProduct(id uint, name string, price money.Cents, stock int) {
	s.products[id] = &models.Product{ID: id, Name: name, Price: price, Stock: stock, CategoryID: 1}
}

func (s *memStore) addCustomer(id uint, name string) {
	s.customers[id] = &models.Customer{ID: id, Name: name}
}

// --- ProductRepository ---

type memProductRepo struct{ store *memStore }

func (r *memProductRepo) Create(p *models.Product) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.nextID++
	p.ID = r.store.nextID
	cp := *p
	r.store.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) GetByID(id uint) (*models.Product, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	p, ok := r.store.products[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *memProductRepo) GetAll() ([]models.Product, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []models.Product
	for _, p := range r.store.products {
		out = append(out, *p)
	}
	return out, nil
}

func (r *memProductRepo) GetByCategory(categoryID uint) ([]models.Product, error) {
	var out []models.Product
	all, _ := r.GetAll()
	for _, p := range all {
		if p.CategoryID == categoryID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *memProductRepo) Update(p *models.Product) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.products[p.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *p
	r.store.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) Delete(id uint) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.products, id)
	return nil
}

func (r *memProductRepo) DecrementStock(_ *gorm.DB, productID uint, quantity int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.store.decrementLocked(productID, quantity)
}

func (r *memProductRepo) RestoreStock(_ *gorm.DB, productID uint, quantity int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	p, ok := r.store.products[productID]
	if !ok {
		return repository.ErrNotFound
	}
	p.Stock += quantity
	return nil
}

func (s *memStore) decrementLocked(productID uint, quantity int) error {
	p, ok := s.products[productID]
	if !ok {
		return repository.ErrNotFound
	}
	if p.Stock < quantity {
		return repository.ErrInsufficientStock
	}
	p.Stock -= quantity
	return nil
}

// --- CustomerRepository ---

type memCustomerRepo struct{ store *memStore }

func (r *memCustomerRepo) Create(c *models.Customer) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.nextID++
	c.ID = r.store.nextID
	cp := *c
	r.store.customers[c.ID] = &cp
	return nil
}

func (r *memCustomerRepo) GetByID(id uint) (*models.Customer, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	c, ok := r.store.customers[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *memCustomerRepo) GetAll() ([]models.Customer, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []models.Customer
	for _, c := range r.store.customers {
		cp := *c
		for _, o := range r.store.orders {
			if o.CustomerID == c.ID {
				cp.OrderCount++
			}
		}
		out = append(out, cp)
	}
	return out, nil
}

func (r *memCustomerRepo) Update(c *models.Customer) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.customers[c.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *c
	r.store.customers[c.ID] = &cp
	return nil
}

func (r *memCustomerRepo) Delete(id uint) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.customers[id]; !ok {
		return repository.ErrNotFound
	}
	for _, o := range r.store.orders {
		if o.CustomerID == id {
			return repository.ErrConflict
		}
	}
	delete(r.store.customers, id)
	return nil
}

// --- OrderRepository ---

type memOrderRepo struct{ store *memStore }

func (r *memOrderRepo) CreateWithItems(order *models.Order) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	// Decrement every line; undo on failure so nothing is observable,
	// mirroring the transaction rollback in the real repository.
	decremented := make([]models.OrderItem, 0, len(order.OrderItems))
	for _, item := range order.OrderItems {
		if err := r.store.decrementLocked(item.ProductID, item.Quantity); err != nil {
			for _, done := range decremented {
				r.store.products[done.ProductID].Stock += done.Quantity
			}
			return fmt.Errorf("product %d: %w", item.ProductID, err)
		}
		decremented = append(decremented, item)
	}

	r.store.nextID++
	order.ID = r.store.nextID
	for i := range order.OrderItems {
		order.OrderItems[i].OrderID = order.ID
	}
	cp := *order
	cp.OrderItems = append([]models.OrderItem(nil), order.OrderItems...)
	r.store.orders[order.ID] = &cp

	r.store.movements = append(r.store.movements, models.CashMovement{
		Type:        string(models.MovementIncome),
		Amount:      order.TotalAmount,
		Description: fmt.Sprintf("Sale - Order #%s", order.OrderNumber),
		Category:    "Sales",
		Date:        time.Now(),
		OrderID:     &cp.ID,
	})
	return nil
}

func (r *memOrderRepo) GetByID(id uint) (*models.Order, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	o, ok := r.store.orders[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *o
	cp.OrderItems = append([]models.OrderItem(nil), o.OrderItems...)
	return &cp, nil
}

func (r *memOrderRepo) GetAll() ([]models.Order, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []models.Order
	for _, o := range r.store.orders {
		out = append(out, *o)
	}
	return out, nil
}

func (r *memOrderRepo) GetByCustomer(customerID uint) ([]models.Order, error) {
	var out []models.Order
	all, _ := r.GetAll()
	for _, o := range all {
		if o.CustomerID == customerID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *memOrderRepo) UpdateStatusNotes(id uint, status, notes string) (*models.Order, error) {
	r.store.mu.Lock()
	o, ok := r.store.orders[id]
	if !ok {
		r.store.mu.Unlock()
		return nil, repository.ErrNotFound
	}
	o.Status = status
	o.Notes = notes
	r.store.mu.Unlock()
	return r.GetByID(id)
}

func (r *memOrderRepo) Cancel(id uint, notes string) (*models.Order, error) {
	r.store.mu.Lock()
	o, ok := r.store.orders[id]
	if !ok {
		r.store.mu.Unlock()
		return nil, repository.ErrNotFound
	}
	if o.Status == string(models.OrderCancelled) {
		r.store.mu.Unlock()
		return nil, repository.ErrConflict
	}
	o.Status = string(models.OrderCancelled)
	o.Notes = notes
	for _, item := range o.OrderItems {
		if p, ok := r.store.products[item.ProductID]; ok {
			p.Stock += item.Quantity
		}
	}
	r.store.movements = append(r.store.movements, models.CashMovement{
		Type:        string(models.MovementExpense),
		Amount:      o.TotalAmount,
		Description: fmt.Sprintf("Refund - Order #%s", o.OrderNumber),
		Category:    "Sales",
		Date:        time.Now(),
		OrderID:     &o.ID,
	})
	r.store.mu.Unlock()
	return r.GetByID(id)
}

func (r *memOrderRepo) Delete(id uint) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	o, ok := r.store.orders[id]
	if !ok {
		return repository.ErrNotFound
	}
	if o.Status != string(models.OrderCancelled) {
		return repository.ErrConflict
	}
	delete(r.store.orders, id)
	return nil
}

// --- CashMovementRepository ---

type memMovementRepo struct{ store *memStore }

func (r *memMovementRepo) Create(m *models.CashMovement) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.nextID++
	m.ID = r.store.nextID
	r.store.movements = append(r.store.movements, *m)
	return nil
}

func (r *memMovementRepo) GetAll(filter repository.MovementFilter) ([]models.CashMovement, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []models.CashMovement
	for _, m := range r.store.movements {
		if filter.Type != "" && m.Type != filter.Type {
			continue
		}
		if filter.Category != "" && m.Category != filter.Category {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

func (r *memMovementRepo) GetByOrder(orderID uint) ([]models.CashMovement, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []models.CashMovement
	for _, m := range r.store.movements {
		if m.OrderID != nil && *m.OrderID == orderID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *memMovementRepo) Balance() (money.Cents, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var balance money.Cents
	for _, m := range r.store.movements {
		if m.Type == string(models.MovementIncome) {
			balance += m.Amount
		} else {
			balance -= m.Amount
		}
	}
	return balance, nil
}
