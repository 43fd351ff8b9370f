package handlers

import (
	"net/http"

	"github.com/Omar1Ach/-shahd-beekeeping/internal/middleware"
	"github.com/Omar1Ach/-shahd-beekeeping/internal/models"
	"github.com/Omar1Ach/-shahd-beekeeping/internal/services"
	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	categoryService services.CategoryService
}

func NewCategoryHandler(categoryService services.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

type categoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categoryService.GetAllCategories()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	category := &models.Category{Name: req.Name, Description: req.Description}
	if err := h.categoryService.CreateCategory(middleware.GetIdentity(c), category); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	category := &models.Category{ID: id, Name: req.Name, Description: req.Description}
	if err := h.categoryService.UpdateCategory(middleware.GetIdentity(c), category); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.categoryService.DeleteCategory(middleware.GetIdentity(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}
