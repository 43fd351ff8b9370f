package services

import (
	"fmt"

	"github.com/Omar1Ach/-shahd-beekeeping/internal/models"
	"github.com/Omar1Ach/-shahd-beekeeping/internal/repository"
)

type CategoryService interface {
	CreateCategory(identity Identity, category *models.Category) error
	GetAllCategories() ([]models.Category, error)
	UpdateCategory(identity Identity, category *models.Category) error
	DeleteCategory(identity Identity, id uint) error
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
}

func NewCategoryService(categoryRepo repository.CategoryRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

func (s *categoryService) CreateCategory(identity Identity, category *models.Category) error {
	if !identity.IsAdmin() {
		return ErrForbidden
	}
	if category.Name == "" {
		return fmt.Errorf("%w: category name is required", repository.ErrInvalidInput)
	}
	return s.categoryRepo.Create(category)
}

func (s *categoryService) GetAllCategories() ([]models.Category, error) {
	return s.categoryRepo.GetAll()
}

func (s *categoryService) UpdateCategory(identity Identity, category *models.Category) error {
	if !identity.IsAdmin() {
		return ErrForbidden
	}
	if category.Name == "" {
		return fmt.Errorf("%w: category name is required", repository.ErrInvalidInput)
	}
	if _, err := s.categoryRepo.GetByID(category.ID); err != nil {
		return err
	}
	return s.categoryRepo.Update(category)
}

func (s *categoryService) DeleteCategory(identity Identity, id uint) error {
	if !identity.IsAdmin() {
		return ErrForbidden
	}
	return s.categoryRepo.Delete(id)
}
