package services

import (
	"fmt"

	"github.com/Omar1Ach/-shahd-beekeeping/internal/models"
	"github.com/Omar1Ach/-shahd-beekeeping/internal/repository"
)

type ProductService interface {
	CreateProduct(identity Identity, product *models.Product) error
	GetProductByID(id uint) (*models.Product, error)
	GetAllProducts() ([]models.Product, error)
	GetProductsByCategory(categoryID uint) ([]models.Product, error)
	UpdateProduct(identity Identity, product *models.Product) error
	DeleteProduct(identity Identity, id uint) error
}

type productService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

func NewProductService(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository) ProductService {
	return &productService{productRepo: productRepo, categoryRepo: categoryRepo}
}

func (s *productService) CreateProduct(identity Identity, product *models.Product) error {
	if !identity.IsAdmin() {
		return ErrForbidden
	}
	if err := s.validate(product); err != nil {
		return err
	}
	return s.productRepo.Create(product)
}

func (s *productService) GetProductByID(id uint) (*models.Product, error) {
	return s.productRepo.GetByID(id)
}

func (s *productService) GetAllProducts() ([]models.Product, error) {
	return s.productRepo.GetAll()
}

func (s *productService) GetProductsByCategory(categoryID uint) ([]models.Product, error) {
	return s.productRepo.GetByCategory(categoryID)
}

func (s *productService) UpdateProduct(identity Identity, product *models.Product) error {
	if !identity.IsAdmin() {
		return ErrForbidden
	}
	if err := s.validate(product); err != nil {
		return err
	}
	if _, err := s.productRepo.GetByID(product.ID); err != nil {
		return err
	}
	return s.productRepo.Update(product)
}

func (s *productService) DeleteProduct(identity Identity, id uint) error {
	if !identity.IsAdmin() {
		return ErrForbidden
	}
	if _, err := s.productRepo.GetByID(id); err != nil {
		return err
	}
	return s.productRepo.Delete(id)
}

func (s *productService) validate(product *models.Product) error {
	if product.Name == "" {
		return fmt.Errorf("%w: product name is required", repository.ErrInvalidInput)
	}
	if product.Price.IsNegative() {
		return fmt.Errorf("%w: product price cannot be negative", repository.ErrInvalidInput)
	}
	if product.Stock < 0 {
		return fmt.Errorf("%w: product stock cannot be negative", repository.ErrInvalidInput)
	}
	if _, err := s.categoryRepo.GetByID(product.CategoryID); err != nil {
		return fmt.Errorf("category %d: %w", product.CategoryID, err)
	}
	return nil
}
