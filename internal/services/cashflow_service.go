package services

import (
	"fmt"
	"time"

	"github.com/Omar1Ach/-shahd-beekeeping/internal/models"
	"github.com/Omar1Ach/-shahd-beekeeping/internal/repository"
	"github.com/Omar1Ach/-shahd-beekeeping/pkg/money"
)

type AppendMovementInput struct {
	Type        string
	Amount      money.Cents
	Description string
	Category    string
	Date        *time.Time
}

type CashFlowService interface {
	AppendMovement(identity Identity, input AppendMovementInput) (*models.CashMovement, error)
	ListMovements(identity Identity, filter repository.MovementFilter) ([]models.CashMovement, error)
	Balance(identity Identity) (money.Cents, error)
}

type cashFlowService struct {
	movementRepo repository.CashMovementRepository
}

func NewCashFlowService(movementRepo repository.CashMovementRepository) CashFlowService {
	return &cashFlowService{movementRepo: movementRepo}
}

// AppendMovement records a manual ledger entry. Order income and refund
// entries are written by the fulfillment and cancellation transactions, not
// through here.
func (s *cashFlowService) AppendMovement(identity Identity, input AppendMovementInput) (*models.CashMovement, error) {
	if !identity.IsAdmin() {
		return nil, ErrForbidden
	}
	if input.Type != string(models.MovementIncome) && input.Type != string(models.MovementExpense) {
		return nil, fmt.Errorf("%w: movement type must be INCOME or EXPENSE", repository.ErrInvalidInput)
	}
	if input.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", repository.ErrInvalidInput)
	}
	if input.Description == "" {
		return nil, fmt.Errorf("%w: description is required", repository.ErrInvalidInput)
	}

	date := time.Now()
	if input.Date != nil {
		date = *input.Date
	}

	movement := &models.CashMovement{
		Type:        input.Type,
		Amount:      input.Amount,
		Description: input.Description,
		Category:    input.Category,
		Date:        date,
	}
	if err := s.movementRepo.Create(movement); err != nil {
		return nil, err
	}
	return movement, nil
}

func (s *cashFlowService) ListMovements(identity Identity, filter repository.MovementFilter) ([]models.CashMovement, error) {
	if !identity.IsAdmin() {
		return nil, ErrForbidden
	}
	return s.movementRepo.GetAll(filter)
}

func (s *cashFlowService) Balance(identity Identity) (money.Cents, error) {
	if !identity.IsAdmin() {
		return 0, ErrForbidden
	}
	return s.movementRepo.Balance()
}
