package handlers

import (
	"net/http"
	"time"

	"github.com/Omar1Ach/-shahd-beekeeping/internal/middleware"
	"github.com/Omar1Ach/-shahd-beekeeping/internal/repository"
	"github.com/Omar1Ach/-shahd-beekeeping/internal/services"
	"github.com/Omar1Ach/-shahd-beekeeping/pkg/money"
	"github.com/gin-gonic/gin"
)

type CashFlowHandler struct {
	cashFlowService services.CashFlowService
}

func NewCashFlowHandler(cashFlowService services.CashFlowService) *CashFlowHandler {
	return &CashFlowHandler{cashFlowService: cashFlowService}
}

type movementRequest struct {
	Type        string      `json:"type" binding:"required"`
	Amount      money.Cents `json:"amount" binding:"required"`
	Description string      `json:"description" binding:"required"`
	Category    string      `json:"category"`
	Date        string      `json:"date"`
}

func (h *CashFlowHandler) List(c *gin.Context) {
	filter := repository.MovementFilter{
		Type:     c.Query("type"),
		Category: c.Query("category"),
	}
	movements, err := h.cashFlowService.ListMovements(middleware.GetIdentity(c), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, movements)
}

func (h *CashFlowHandler) Create(c *gin.Context) {
	var req movementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	input := services.AppendMovementInput{
		Type:        req.Type,
		Amount:      req.Amount,
		Description: req.Description,
		Category:    req.Category,
	}
	if req.Date != "" {
		date, err := time.Parse(time.RFC3339, req.Date)
		if err != nil {
			// The admin form posts bare dates.
			date, err = time.Parse("2006-01-02", req.Date)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format"})
				return
			}
		}
		input.Date = &date
	}

	movement, err := h.cashFlowService.AppendMovement(middleware.GetIdentity(c), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, movement)
}

// Balance recomputes income minus expense over the whole ledger.
func (h *CashFlowHandler) Balance(c *gin.Context) {
	balance, err := h.cashFlowService.Balance(middleware.GetIdentity(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"balance": balance})
}
