package handlers

import (
	"net/http"
	"strconv"

	"github.com/Omar1Ach/-shahd-beekeeping/internal/middleware"
	"github.com/Omar1Ach/-shahd-beekeeping/internal/models"
	"github.com/Omar1Ach/-shahd-beekeeping/internal/services"
	"github.com/Omar1Ach/-shahd-beekeeping/pkg/money"
	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	productService services.ProductService
}

func NewProductHandler(productService services.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

type productRequest struct {
	Name        string      `json:"name" binding:"required"`
	Description string      `json:"description"`
	Price       money.Cents `json:"price"`
	Stock       int         `json:"stock" binding:"min=0"`
	CategoryID  uint        `json:"category_id" binding:"required"`
}

func (h *ProductHandler) List(c *gin.Context) {
	if categoryParam := c.Query("category_id"); categoryParam != "" {
		categoryID, err := strconv.ParseUint(categoryParam, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category_id"})
			return
		}
		products, err := h.productService.GetProductsByCategory(uint(categoryID))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, products)
		return
	}

	products, err := h.productService.GetAllProducts()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	product, err := h.productService.GetProductByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	product := &models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		CategoryID:  req.CategoryID,
	}
	if err := h.productService.CreateProduct(middleware.GetIdentity(c), product); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	product := &models.Product{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		CategoryID:  req.CategoryID,
	}
	if err := h.productService.UpdateProduct(middleware.GetIdentity(c), product); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.productService.DeleteProduct(middleware.GetIdentity(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}

// paramID parses the :id path parameter, answering 400 itself on garbage.
func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}
