package handlers

import (
	"net/http"

	"github.com/Omar1Ach/-shahd-beekeeping/internal/middleware"
	"github.com/Omar1Ach/-shahd-beekeeping/internal/models"
	"github.com/Omar1Ach/-shahd-beekeeping/internal/services"
	"github.com/gin-gonic/gin"
)

type CustomerHandler struct {
	customerService services.CustomerService
	orderService    services.OrderService
}

func NewCustomerHandler(customerService services.CustomerService, orderService services.OrderService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService, orderService: orderService}
}

type customerCreateRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
	Notes   string `json:"notes"`
}

type customerUpdateRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	City    *string `json:"city"`
	Notes   *string `json:"notes"`
}

func (h *CustomerHandler) List(c *gin.Context) {
	customers, err := h.customerService.GetAllCustomers(middleware.GetIdentity(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, customers)
}

func (h *CustomerHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	customer, err := h.customerService.GetCustomerByID(middleware.GetIdentity(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (h *CustomerHandler) Create(c *gin.Context) {
	var req customerCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	customer := &models.Customer{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
		City:    req.City,
		Notes:   req.Notes,
	}
	if err := h.customerService.CreateCustomer(middleware.GetIdentity(c), customer); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, customer)
}

func (h *CustomerHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req customerUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	update := services.CustomerUpdate{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
		City:    req.City,
		Notes:   req.Notes,
	}
	customer, err := h.customerService.UpdateCustomer(middleware.GetIdentity(c), id, update)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (h *CustomerHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.customerService.DeleteCustomer(middleware.GetIdentity(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted successfully"})
}

// Orders returns the order history of one customer.
func (h *CustomerHandler) Orders(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	orders, err := h.orderService.GetOrdersByCustomer(middleware.GetIdentity(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// Profile returns the customer record linked to the calling session.
func (h *CustomerHandler) Profile(c *gin.Context) {
	identity := middleware.GetIdentity(c)
	if identity.CustomerID == nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "no customer linked to this account"})
		return
	}
	customer, err := h.customerService.GetCustomerByID(identity, *identity.CustomerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

// UpdateProfile is the self-service profile edit.
func (h *CustomerHandler) UpdateProfile(c *gin.Context) {
	identity := middleware.GetIdentity(c)
	if identity.CustomerID == nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "no customer linked to this account"})
		return
	}
	var req customerUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	update := services.CustomerUpdate{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
		City:    req.City,
		Notes:   req.Notes,
	}
	customer, err := h.customerService.UpdateCustomer(identity, *identity.CustomerID, update)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}
