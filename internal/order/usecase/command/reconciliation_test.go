package command

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogdomain "github.com/tair/order-management/internal/catalog/domain"
	catalogrepo "github.com/tair/order-management/internal/catalog/repository"
	"github.com/tair/order-management/internal/order/domain"
	orderrepo "github.com/tair/order-management/internal/order/repository"
)

type engine struct {
	place   *PlaceOrderHandler
	update  *UpdateOrderHandler
	delete  *DeleteOrderHandler
	catalog *catalogrepo.MemoryCatalogRepository
	orders  *orderrepo.MemoryOrderRepository
	seeded  int
}

func newEngine(t *testing.T, stock int) *engine {
	t.Helper()
	catalog := catalogrepo.NewMemoryCatalogRepository([]catalogdomain.Product{
		{ID: 1, Name: "Australian Macadamias (250g)", Price: 25.00, Stock: stock},
	})
	orders := orderrepo.NewMemoryOrderRepository()
	return &engine{
		place:   NewPlaceOrderHandler(orders, catalog),
		update:  NewUpdateOrderHandler(orders, catalog),
		delete:  NewDeleteOrderHandler(orders, catalog),
		catalog: catalog,
		orders:  orders,
		seeded:  stock,
	}
}

func (e *engine) stock(t *testing.T) int {
	t.Helper()
	p, err := e.catalog.FindByID(1)
	require.NoError(t, err)
	return p.Stock
}

// assertConserved checks that allocated plus available stock equals the
// seeded amount.
func (e *engine) assertConserved(t *testing.T) {
	t.Helper()
	allocated := 0
	for _, user := range []string{"alice", "bob"} {
		orders, err := e.orders.FindByUsername(user)
		require.NoError(t, err)
		for _, o := range orders {
			allocated += o.Quantity
		}
	}
	assert.Equal(t, e.seeded, e.stock(t)+allocated, "stock not conserved")
}

func TestPlaceOrder_AllocatesStockAndSnapshotsName(t *testing.T) {
	e := newEngine(t, 10)

	order, err := e.place.Handle(PlaceOrderCommand{ProductID: 1, Quantity: 3, Requester: "alice"})

	require.NoError(t, err)
	assert.Equal(t, uint(1), order.OrderID)
	assert.Equal(t, "Australian Macadamias (250g)", order.ProductName)
	assert.Equal(t, 3, order.Quantity)
	assert.Equal(t, "alice", order.Username)
	assert.Equal(t, 7, e.stock(t))
	e.assertConserved(t)
}

func TestPlaceOrder_UnknownProduct(t *testing.T) {
	e := newEngine(t, 10)

	_, err := e.place.Handle(PlaceOrderCommand{ProductID: 42, Quantity: 1, Requester: "alice"})

	assert.ErrorIs(t, err, catalogdomain.ErrProductNotFound)
	assert.Equal(t, 10, e.stock(t))
}

func TestPlaceOrder_InsufficientStock_RepeatedRejectionsNeverMutate(t *testing.T) {
	e := newEngine(t, 5)

	for i := 0; i < 5; i++ {
		_, err := e.place.Handle(PlaceOrderCommand{ProductID: 1, Quantity: 6, Requester: "alice"})
		assert.ErrorIs(t, err, catalogdomain.ErrInsufficientStock)
	}

	assert.Equal(t, 5, e.stock(t))
	mine, err := e.orders.FindByUsername("alice")
	require.NoError(t, err)
	assert.Empty(t, mine)
}

func TestPlaceOrder_InvalidQuantities(t *testing.T) {
	e := newEngine(t, 10)

	tests := []struct {
		name     string
		quantity int
	}{
		{name: "zero", quantity: 0},
		{name: "negative", quantity: -2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := e.place.Handle(PlaceOrderCommand{ProductID: 1, Quantity: tc.quantity, Requester: "alice"})
			assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
			assert.Equal(t, 10, e.stock(t))
		})
	}
}

func TestOrderLifecycle_StockFollowsQuantityChanges(t *testing.T) {
	e := newEngine(t, 10)

	order, err := e.place.Handle(PlaceOrderCommand{ProductID: 1, Quantity: 3, Requester: "alice"})
	require.NoError(t, err)
	assert.Equal(t, 7, e.stock(t))
	e.assertConserved(t)

	updated, err := e.update.Handle(UpdateOrderCommand{OrderID: order.OrderID, Quantity: 5, Requester: "alice"})
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Quantity)
	assert.Equal(t, 5, e.stock(t))
	e.assertConserved(t)

	updated, err = e.update.Handle(UpdateOrderCommand{OrderID: order.OrderID, Quantity: 1, Requester: "alice"})
	require.NoError(t, err)
	assert.Equal(t, 1, updated.Quantity)
	assert.Equal(t, 9, e.stock(t))
	e.assertConserved(t)

	require.NoError(t, e.delete.Handle(DeleteOrderCommand{OrderID: order.OrderID, Requester: "alice"}))
	assert.Equal(t, 10, e.stock(t))
	e.assertConserved(t)

	_, err = e.orders.FindByID(order.OrderID)
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestUpdateOrder_UnknownOrderBeatsInvalidQuantity(t *testing.T) {
	e := newEngine(t, 10)

	_, err := e.update.Handle(UpdateOrderCommand{OrderID: 42, Quantity: 0, Requester: "alice"})

	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestUpdateOrder_ForbiddenForNonOwner(t *testing.T) {
	e := newEngine(t, 10)

	order, err := e.place.Handle(PlaceOrderCommand{ProductID: 1, Quantity: 3, Requester: "alice"})
	require.NoError(t, err)

	_, err = e.update.Handle(UpdateOrderCommand{OrderID: order.OrderID, Quantity: 5, Requester: "bob"})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	stored, findErr := e.orders.FindByID(order.OrderID)
	require.NoError(t, findErr)
	assert.Equal(t, 3, stored.Quantity)
	assert.Equal(t, 7, e.stock(t))
}

func TestUpdateOrder_InvalidQuantityLeavesStateUntouched(t *testing.T) {
	e := newEngine(t, 10)

	order, err := e.place.Handle(PlaceOrderCommand{ProductID: 1, Quantity: 3, Requester: "alice"})
	require.NoError(t, err)

	for _, qty := range []int{0, -2} {
		_, err = e.update.Handle(UpdateOrderCommand{OrderID: order.OrderID, Quantity: qty, Requester: "alice"})
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	}

	stored, findErr := e.orders.FindByID(order.OrderID)
	require.NoError(t, findErr)
	assert.Equal(t, 3, stored.Quantity)
	assert.Equal(t, 7, e.stock(t))
	e.assertConserved(t)
}

func TestUpdateOrder_InsufficientStockForIncrease_Idempotent(t *testing.T) {
	e := newEngine(t, 10)

	order, err := e.place.Handle(PlaceOrderCommand{ProductID: 1, Quantity: 3, Requester: "alice"})
	require.NoError(t, err)

	// Stock is 7; raising the order to 11 demands 8 more.
	for i := 0; i < 5; i++ {
		_, err = e.update.Handle(UpdateOrderCommand{OrderID: order.OrderID, Quantity: 11, Requester: "alice"})
		assert.ErrorIs(t, err, catalogdomain.ErrInsufficientStock)
	}

	stored, findErr := e.orders.FindByID(order.OrderID)
	require.NoError(t, findErr)
	assert.Equal(t, 3, stored.Quantity)
	assert.Equal(t, 7, e.stock(t))
	e.assertConserved(t)
}

func TestUpdateOrder_SameQuantityIsNoop(t *testing.T) {
	e := newEngine(t, 10)

	order, err := e.place.Handle(PlaceOrderCommand{ProductID: 1, Quantity: 3, Requester: "alice"})
	require.NoError(t, err)

	updated, err := e.update.Handle(UpdateOrderCommand{OrderID: order.OrderID, Quantity: 3, Requester: "alice"})
	require.NoError(t, err)
	assert.Equal(t, 3, updated.Quantity)
	assert.Equal(t, 7, e.stock(t))
}

func TestDeleteOrder_ForbiddenForNonOwner(t *testing.T) {
	e := newEngine(t, 10)

	order, err := e.place.Handle(PlaceOrderCommand{ProductID: 1, Quantity: 3, Requester: "alice"})
	require.NoError(t, err)

	err = e.delete.Handle(DeleteOrderCommand{OrderID: order.OrderID, Requester: "bob"})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, findErr := e.orders.FindByID(order.OrderID)
	assert.NoError(t, findErr)
	assert.Equal(t, 7, e.stock(t))
}

func TestDeleteOrder_UnknownOrder(t *testing.T) {
	e := newEngine(t, 10)

	err := e.delete.Handle(DeleteOrderCommand{OrderID: 42, Requester: "alice"})

	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestConcurrentPlaceOrders_NeverOversellAndConserve(t *testing.T) {
	e := newEngine(t, 10)

	const workers = 20

	var wg sync.WaitGroup
	var mu sync.Mutex
	placed := 0

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := e.place.Handle(PlaceOrderCommand{ProductID: 1, Quantity: 3, Requester: "alice"}); err == nil {
				mu.Lock()
				placed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	// Only three allocations of three fit into ten.
	assert.Equal(t, 3, placed)
	assert.Equal(t, 1, e.stock(t))
	assert.GreaterOrEqual(t, e.stock(t), 0)
	e.assertConserved(t)
}

func TestConcurrentUpdateAndDelete_ExactlyOneConsistentOutcome(t *testing.T) {
	for i := 0; i < 50; i++ {
		e := newEngine(t, 10)

		order, err := e.place.Handle(PlaceOrderCommand{ProductID: 1, Quantity: 2, Requester: "alice"})
		require.NoError(t, err)

		var wg sync.WaitGroup
		var updateErr, deleteErr error

		wg.Add(2)
		go func() {
			defer wg.Done()
			_, updateErr = e.update.Handle(UpdateOrderCommand{OrderID: order.OrderID, Quantity: 5, Requester: "alice"})
		}()
		go func() {
			defer wg.Done()
			deleteErr = e.delete.Handle(DeleteOrderCommand{OrderID: order.OrderID, Requester: "alice"})
		}()
		wg.Wait()

		// The delete wins in every interleaving; the update either landed
		// first or lost with a clean not-found. Stock always returns to the
		// seeded value, never a torn intermediate.
		assert.NoError(t, deleteErr)
		if updateErr != nil {
			assert.ErrorIs(t, updateErr, domain.ErrOrderNotFound)
		}
		assert.Equal(t, 10, e.stock(t))
		e.assertConserved(t)
	}
}

func TestConcurrentPlaceAndDelete_Conserves(t *testing.T) {
	e := newEngine(t, 100)

	const workers = 25

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			order, err := e.place.Handle(PlaceOrderCommand{ProductID: 1, Quantity: 2, Requester: "bob"})
			if err != nil {
				return
			}
			_, _ = e.update.Handle(UpdateOrderCommand{OrderID: order.OrderID, Quantity: 4, Requester: "bob"})
			_ = e.delete.Handle(DeleteOrderCommand{OrderID: order.OrderID, Requester: "bob"})
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, e.stock(t))
	mine, err := e.orders.FindByUsername("bob")
	require.NoError(t, err)
	assert.Empty(t, mine)
}
