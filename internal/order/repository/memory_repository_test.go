package repository

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/order-management/internal/order/domain"
)

func insertOrder(t *testing.T, repo *MemoryOrderRepository, username string, qty int) *domain.Order {
	t.Helper()
	order := &domain.Order{
		ProductID:   1,
		ProductName: "Macadamias",
		Quantity:    qty,
		Username:    username,
	}
	require.NoError(t, repo.Insert(order))
	return order
}

func TestInsert_AssignsMonotonicIDsStartingAtOne(t *testing.T) {
	repo := NewMemoryOrderRepository()

	first := insertOrder(t, repo, "alice", 1)
	second := insertOrder(t, repo, "alice", 2)

	assert.Equal(t, uint(1), first.OrderID)
	assert.Equal(t, uint(2), second.OrderID)
}

func TestRemove_NeverReusesIDs(t *testing.T) {
	repo := NewMemoryOrderRepository()

	insertOrder(t, repo, "alice", 1)
	second := insertOrder(t, repo, "alice", 2)

	require.NoError(t, repo.Remove(second.OrderID, func(*domain.Order) error { return nil }))

	third := insertOrder(t, repo, "alice", 3)
	assert.Equal(t, uint(3), third.OrderID)

	_, err := repo.FindByID(second.OrderID)
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestFindByUsername_InsertionOrderAndScoping(t *testing.T) {
	repo := NewMemoryOrderRepository()

	insertOrder(t, repo, "alice", 1)
	insertOrder(t, repo, "bob", 2)
	insertOrder(t, repo, "alice", 3)

	mine, err := repo.FindByUsername("alice")
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, uint(1), mine[0].OrderID)
	assert.Equal(t, uint(3), mine[1].OrderID)

	none, err := repo.FindByUsername("carol")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestUpdate_AppliesMutator(t *testing.T) {
	repo := NewMemoryOrderRepository()
	order := insertOrder(t, repo, "alice", 3)

	updated, err := repo.Update(order.OrderID, func(o *domain.Order) error {
		o.Quantity = 5
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 5, updated.Quantity)

	stored, err := repo.FindByID(order.OrderID)
	require.NoError(t, err)
	assert.Equal(t, 5, stored.Quantity)
}

func TestUpdate_FailedMutatorLeavesOrderUnchanged(t *testing.T) {
	repo := NewMemoryOrderRepository()
	order := insertOrder(t, repo, "alice", 3)

	boom := errors.New("boom")
	_, err := repo.Update(order.OrderID, func(o *domain.Order) error {
		o.Quantity = 99
		return boom
	})

	assert.ErrorIs(t, err, boom)

	stored, findErr := repo.FindByID(order.OrderID)
	require.NoError(t, findErr)
	assert.Equal(t, 3, stored.Quantity)
}

func TestUpdate_UnknownOrder(t *testing.T) {
	repo := NewMemoryOrderRepository()

	_, err := repo.Update(42, func(*domain.Order) error { return nil })

	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestRemove_FailedCheckLeavesOrderInPlace(t *testing.T) {
	repo := NewMemoryOrderRepository()
	order := insertOrder(t, repo, "alice", 3)

	err := repo.Remove(order.OrderID, func(*domain.Order) error {
		return domain.ErrForbidden
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	stored, findErr := repo.FindByID(order.OrderID)
	require.NoError(t, findErr)
	assert.Equal(t, order.OrderID, stored.OrderID)
}

func TestFindByID_ReturnsCopy(t *testing.T) {
	repo := NewMemoryOrderRepository()
	order := insertOrder(t, repo, "alice", 3)

	found, err := repo.FindByID(order.OrderID)
	require.NoError(t, err)
	found.Quantity = 99

	stored, err := repo.FindByID(order.OrderID)
	require.NoError(t, err)
	assert.Equal(t, 3, stored.Quantity)
}
