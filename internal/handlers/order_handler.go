package handlers

import (
	"net/http"

	"github.com/Omar1Ach/-shahd-beekeeping/internal/middleware"
	"github.com/Omar1Ach/-shahd-beekeeping/internal/services"
	"github.com/Omar1Ach/-shahd-beekeeping/pkg/money"
	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orderService services.OrderService
}

func NewOrderHandler(orderService services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

type orderItemRequest struct {
	ProductID uint        `json:"product_id" binding:"required"`
	Quantity  int         `json:"quantity" binding:"required,min=1"`
	Price     money.Cents `json:"price"`
}

type createOrderRequest struct {
	CustomerID uint               `json:"customer_id" binding:"required"`
	Status     string             `json:"status"`
	Notes      string             `json:"notes"`
	OrderItems []orderItemRequest `json:"order_items" binding:"required,min=1,dive"`
}

type updateOrderRequest struct {
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.orderService.GetAllOrders(middleware.GetIdentity(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	order, err := h.orderService.GetOrderByID(middleware.GetIdentity(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) Create(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	input := services.CreateOrderInput{
		CustomerID: req.CustomerID,
		Status:     req.Status,
		Notes:      req.Notes,
	}
	for _, item := range req.OrderItems {
		input.Items = append(input.Items, services.OrderItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	order, err := h.orderService.CreateOrder(middleware.GetIdentity(c), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (h *OrderHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req updateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	order, err := h.orderService.UpdateOrder(middleware.GetIdentity(c), id, req.Status, req.Notes)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.orderService.DeleteOrder(middleware.GetIdentity(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
}
