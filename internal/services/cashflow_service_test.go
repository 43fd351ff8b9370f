package services_test

import (
	"testing"
	"time"

	"github.com/Omar1Ach/-shahd-beekeeping/internal/models"
	"github.com/Omar1Ach/-shahd-beekeeping/internal/repository"
	"github.com/Omar1Ach/-shahd-beekeeping/internal/services"
	"github.com/Omar1Ach/-shahd-beekeeping/pkg/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCashFixture() (*memStore, services.CashFlowService) {
	store := newMemStore()
	return store, services.NewCashFlowService(&memMovementRepo{store: store})
}

func TestAppendMovementValidation(t *testing.T) {
	_, svc := newCashFixture()
	admin := adminIdentity()

	_, err := svc.AppendMovement(admin, services.AppendMovementInput{
		Type: "TRANSFER", Amount: money.Cents(100), Description: "x",
	})
	assert.ErrorIs(t, err, repository.ErrInvalidInput)

	_, err = svc.AppendMovement(admin, services.AppendMovementInput{
		Type: string(models.MovementIncome), Amount: 0, Description: "x",
	})
	assert.ErrorIs(t, err, repository.ErrInvalidInput)

	_, err = svc.AppendMovement(admin, services.AppendMovementInput{
		Type: string(models.MovementIncome), Amount: money.Cents(100),
	})
	assert.ErrorIs(t, err, repository.ErrInvalidInput)
}

func TestAppendMovementAdminOnly(t *testing.T) {
	_, svc := newCashFixture()

	_, err := svc.AppendMovement(customerIdentity(1), services.AppendMovementInput{
		Type: string(models.MovementExpense), Amount: money.Cents(25000), Description: "Equipment",
	})
	assert.ErrorIs(t, err, services.ErrForbidden)

	_, err = svc.ListMovements(customerIdentity(1), repository.MovementFilter{})
	assert.ErrorIs(t, err, services.ErrForbidden)
}

func TestBalanceIsIncomeMinusExpense(t *testing.T) {
	_, svc := newCashFixture()
	admin := adminIdentity()

	entries := []services.AppendMovementInput{
		{Type: string(models.MovementIncome), Amount: money.Cents(3897), Description: "Sale"},
		{Type: string(models.MovementExpense), Amount: money.Cents(25000), Description: "Beekeeping equipment purchase", Category: "Equipment"},
		{Type: string(models.MovementIncome), Amount: money.Cents(50000), Description: "Wholesale order payment", Category: "Sales"},
		{Type: string(models.MovementExpense), Amount: money.Cents(15000), Description: "Packaging materials", Category: "Supplies"},
	}
	for _, e := range entries {
		_, err := svc.AppendMovement(admin, e)
		require.NoError(t, err)
	}

	balance, err := svc.Balance(admin)
	require.NoError(t, err)
	// 38.97 + 500.00 - 250.00 - 150.00 = 138.97
	assert.Equal(t, money.Cents(13897), balance)
}

func TestListMovementsFiltered(t *testing.T) {
	_, svc := newCashFixture()
	admin := adminIdentity()

	date := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	_, err := svc.AppendMovement(admin, services.AppendMovementInput{
		Type: string(models.MovementExpense), Amount: money.Cents(9900), Description: "Jars", Category: "Supplies", Date: &date,
	})
	require.NoError(t, err)
	_, err = svc.AppendMovement(admin, services.AppendMovementInput{
		Type: string(models.MovementIncome), Amount: money.Cents(4200), Description: "Market stall",
	})
	require.NoError(t, err)

	expenses, err := svc.ListMovements(admin, repository.MovementFilter{Type: string(models.MovementExpense)})
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	assert.Equal(t, "Jars", expenses[0].Description)
	assert.Equal(t, date, expenses[0].Date)
}
