package services_test

import (
	"testing"

	"github.com/Omar1Ach/-shahd-beekeeping/internal/models"
	"github.com/Omar1Ach/-shahd-beekeeping/internal/repository"
	"github.com/Omar1Ach/-shahd-beekeeping/internal/services"
	"github.com/Omar1Ach/-shahd-beekeeping/pkg/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCustomerFixture() (*memStore, services.CustomerService) {
	store := newMemStore()
	store.addCustomer(1, "Ahmad Hassan")
	store.addCustomer(2, "Fatima Ali")
	return store, services.NewCustomerService(&memCustomerRepo{store: store})
}

func TestCustomerSelfServiceScope(t *testing.T) {
	_, svc := newCustomerFixture()

	// Customers read and edit their own record only.
	_, err := svc.GetCustomerByID(customerIdentity(1), 2)
	assert.ErrorIs(t, err, services.ErrForbidden)

	name := "Ahmad H."
	city := "Damascus"
	updated, err := svc.UpdateCustomer(customerIdentity(1), 1, services.CustomerUpdate{Name: &name, City: &city})
	require.NoError(t, err)
	assert.Equal(t, "Ahmad H.", updated.Name)
	assert.Equal(t, "Damascus", updated.City)

	_, err = svc.UpdateCustomer(customerIdentity(1), 2, services.CustomerUpdate{Name: &name})
	assert.ErrorIs(t, err, services.ErrForbidden)

	// The directory is admin-only.
	_, err = svc.GetAllCustomers(customerIdentity(1))
	assert.ErrorIs(t, err, services.ErrForbidden)
}

func TestUpdateCustomerPartialFields(t *testing.T) {
	_, svc := newCustomerFixture()

	phone := "+963111222333"
	updated, err := svc.UpdateCustomer(adminIdentity(), 1, services.CustomerUpdate{Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, "+963111222333", updated.Phone)
	assert.Equal(t, "Ahmad Hassan", updated.Name)

	empty := ""
	_, err = svc.UpdateCustomer(adminIdentity(), 1, services.CustomerUpdate{Name: &empty})
	assert.ErrorIs(t, err, repository.ErrInvalidInput)
}

func TestDeleteCustomerWithOrdersConflicts(t *testing.T) {
	store, svc := newCustomerFixture()
	store.addProduct(10, "Wildflower Honey", money.Cents(1299), 10)

	orderSvc := services.NewOrderService(
		&memOrderRepo{store: store},
		&memProductRepo{store: store},
		&memCustomerRepo{store: store},
	)
	_, err := orderSvc.CreateOrder(adminIdentity(), services.CreateOrderInput{
		CustomerID: 1,
		Items:      []services.OrderItemInput{{ProductID: 10, Quantity: 1, Price: money.Cents(1299)}},
	})
	require.NoError(t, err)

	// Order history blocks deletion; it is never cascaded away.
	err = svc.DeleteCustomer(adminIdentity(), 1)
	assert.ErrorIs(t, err, repository.ErrConflict)

	require.NoError(t, svc.DeleteCustomer(adminIdentity(), 2))

	err = svc.DeleteCustomer(customerIdentity(1), 1)
	assert.ErrorIs(t, err, services.ErrForbidden)
}

func TestCustomerOrderCounts(t *testing.T) {
	store, svc := newCustomerFixture()
	store.addProduct(10, "Wildflower Honey", money.Cents(1299), 10)

	orderSvc := services.NewOrderService(
		&memOrderRepo{store: store},
		&memProductRepo{store: store},
		&memCustomerRepo{store: store},
	)
	for i := 0; i < 2; i++ {
		_, err := orderSvc.CreateOrder(adminIdentity(), services.CreateOrderInput{
			CustomerID: 1,
			Items:      []services.OrderItemInput{{ProductID: 10, Quantity: 1, Price: money.Cents(1299)}},
		})
		require.NoError(t, err)
	}

	customers, err := svc.GetAllCustomers(adminIdentity())
	require.NoError(t, err)
	counts := map[string]int64{}
	for _, c := range customers {
		counts[c.Name] = c.OrderCount
	}
	assert.Equal(t, int64(2), counts["Ahmad Hassan"])
	assert.Equal(t, int64(0), counts["Fatima Ali"])
}

func TestCreateCustomerRequiresName(t *testing.T) {
	_, svc := newCustomerFixture()

	err := svc.CreateCustomer(adminIdentity(), &models.Customer{})
	assert.ErrorIs(t, err, repository.ErrInvalidInput)

	err = svc.CreateCustomer(customerIdentity(1), &models.Customer{Name: "Someone"})
	assert.ErrorIs(t, err, services.ErrForbidden)
}
