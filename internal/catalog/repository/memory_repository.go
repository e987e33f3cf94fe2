package repository

import (
	"sync"

	"github.com/tair/order-management/internal/catalog/domain"
)

// MemoryCatalogRepository holds the fixed product catalog in process memory.
// Products are never added or removed after construction, so the lock table
// is built once and per-product mutexes serialize the check-then-adjust step
// without a global lock.
type MemoryCatalogRepository struct {
	products []domain.Product
	index    map[uint]int
	locks    map[uint]*sync.Mutex
}

// NewMemoryCatalogRepository creates a catalog seeded with the given products
func NewMemoryCatalogRepository(seed []domain.Product) *MemoryCatalogRepository {
	r := &MemoryCatalogRepository{
		products: make([]domain.Product, len(seed)),
		index:    make(map[uint]int, len(seed)),
		locks:    make(map[uint]*sync.Mutex, len(seed)),
	}
	copy(r.products, seed)
	for i, p := range r.products {
		r.index[p.ID] = i
		r.locks[p.ID] = &sync.Mutex{}
	}
	return r
}

// FindAll returns a read-only snapshot of the catalog in seed order
func (r *MemoryCatalogRepository) FindAll() []domain.Product {
	snapshot := make([]domain.Product, len(r.products))
	for i, p := range r.products {
		r.locks[p.ID].Lock()
		snapshot[i] = r.products[i]
		r.locks[p.ID].Unlock()
	}
	return snapshot
}

// FindByID retrieves a product by ID
func (r *MemoryCatalogRepository) FindByID(id uint) (*domain.Product, error) {
	i, ok := r.index[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}

	r.locks[id].Lock()
	defer r.locks[id].Unlock()

	product := r.products[i]
	return &product, nil
}

// AdjustStock applies stock += delta, failing without mutating if the
// result would be negative. All stock writes pass through here.
func (r *MemoryCatalogRepository) AdjustStock(id uint, delta int) error {
	i, ok := r.index[id]
	if !ok {
		return domain.ErrProductNotFound
	}

	r.locks[id].Lock()
	defer r.locks[id].Unlock()

	if r.products[i].Stock+delta < 0 {
		return domain.ErrInsufficientStock
	}
	r.products[i].Stock += delta
	return nil
}
