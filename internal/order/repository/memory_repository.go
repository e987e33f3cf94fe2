package repository

import (
	"sync"

	"github.com/tair/order-management/internal/order/domain"
)

// MemoryOrderRepository implements the order ledger with in-process storage.
// Orders keep insertion order for per-user listings; the ID counter only
// ever moves forward so removed order IDs are never reassigned.
type MemoryOrderRepository struct {
	mu     sync.RWMutex
	orders []*domain.Order
	byID   map[uint]*domain.Order
	nextID uint
}

// NewMemoryOrderRepository creates an empty order ledger
func NewMemoryOrderRepository() *MemoryOrderRepository {
	return &MemoryOrderRepository{
		byID:   make(map[uint]*domain.Order),
		nextID: 1,
	}
}

// Insert adds an order to the ledger, assigning a fresh ID
func (r *MemoryOrderRepository) Insert(order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order.OrderID = r.nextID
	r.nextID++

	stored := *order
	r.orders = append(r.orders, &stored)
	r.byID[stored.OrderID] = &stored
	return nil
}

// FindByID retrieves an order by ID
func (r *MemoryOrderRepository) FindByID(id uint) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, exists := r.byID[id]
	if !exists {
		return nil, domain.ErrOrderNotFound
	}

	found := *order
	return &found, nil
}

// FindByUsername retrieves a user's orders in insertion order
func (r *MemoryOrderRepository) FindByUsername(username string) ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	mine := []domain.Order{}
	for _, order := range r.orders {
		if order.Username == username {
			mine = append(mine, *order)
		}
	}
	return mine, nil
}

// Update applies mutate to the order under the ledger lock. If mutate
// returns an error the order is left unchanged.
func (r *MemoryOrderRepository) Update(id uint, mutate func(*domain.Order) error) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, exists := r.byID[id]
	if !exists {
		return nil, domain.ErrOrderNotFound
	}

	scratch := *order
	if err := mutate(&scratch); err != nil {
		return nil, err
	}
	*order = scratch

	updated := *order
	return &updated, nil
}

// Remove deletes the order after check passes, all under the ledger lock
func (r *MemoryOrderRepository) Remove(id uint, check func(*domain.Order) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, exists := r.byID[id]
	if !exists {
		return domain.ErrOrderNotFound
	}

	if err := check(order); err != nil {
		return err
	}

	delete(r.byID, id)
	for i, o := range r.orders {
		if o.OrderID == id {
			r.orders = append(r.orders[:i], r.orders[i+1:]...)
			break
		}
	}
	return nil
}
