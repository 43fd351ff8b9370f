package services

import (
	"fmt"

	"github.com/Omar1Ach/-shahd-beekeeping/internal/models"
	"github.com/Omar1Ach/-shahd-beekeeping/internal/repository"
)

// CustomerUpdate carries the editable profile fields. Nil means "leave as is"
// so partial updates work for both the admin form and self-service.
type CustomerUpdate struct {
	Name    *string
	Email   *string
	Phone   *string
	Address *string
	City    *string
	Notes   *string
}

type CustomerService interface {
	CreateCustomer(identity Identity, customer *models.Customer) error
	GetCustomerByID(identity Identity, id uint) (*models.Customer, error)
	GetAllCustomers(identity Identity) ([]models.Customer, error)
	UpdateCustomer(identity Identity, id uint, update CustomerUpdate) (*models.Customer, error)
	DeleteCustomer(identity Identity, id uint) error
}

type customerService struct {
	customerRepo repository.CustomerRepository
}

func NewCustomerService(customerRepo repository.CustomerRepository) CustomerService {
	return &customerService{customerRepo: customerRepo}
}

func (s *customerService) CreateCustomer(identity Identity, customer *models.Customer) error {
	if !identity.IsAdmin() {
		return ErrForbidden
	}
	if customer.Name == "" {
		return fmt.Errorf("%w: customer name is required", repository.ErrInvalidInput)
	}
	return s.customerRepo.Create(customer)
}

func (s *customerService) GetCustomerByID(identity Identity, id uint) (*models.Customer, error) {
	if !identity.IsAdmin() && !identity.OwnsCustomer(id) {
		return nil, ErrForbidden
	}
	return s.customerRepo.GetByID(id)
}

func (s *customerService) GetAllCustomers(identity Identity) ([]models.Customer, error) {
	if !identity.IsAdmin() {
		return nil, ErrForbidden
	}
	return s.customerRepo.GetAll()
}

// UpdateCustomer serves both the admin directory and the customer's own
// profile form; a customer may only touch their own record.
func (s *customerService) UpdateCustomer(identity Identity, id uint, update CustomerUpdate) (*models.Customer, error) {
	if !identity.IsAdmin() && !identity.OwnsCustomer(id) {
		return nil, ErrForbidden
	}

	customer, err := s.customerRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		if *update.Name == "" {
			return nil, fmt.Errorf("%w: customer name is required", repository.ErrInvalidInput)
		}
		customer.Name = *update.Name
	}
	if update.Email != nil {
		customer.Email = *update.Email
	}
	if update.Phone != nil {
		customer.Phone = *update.Phone
	}
	if update.Address != nil {
		customer.Address = *update.Address
	}
	if update.City != nil {
		customer.City = *update.City
	}
	if update.Notes != nil {
		customer.Notes = *update.Notes
	}

	if err := s.customerRepo.Update(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *customerService) DeleteCustomer(identity Identity, id uint) error {
	if !identity.IsAdmin() {
		return ErrForbidden
	}
	return s.customerRepo.Delete(id)
}
