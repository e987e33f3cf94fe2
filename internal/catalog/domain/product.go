package domain

import "errors"

// Domain errors
var (
	ErrProductNotFound   = errors.New("product not found")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// Product represents a catalog entry. The catalog is fixed at startup;
// Stock is the only mutable field and is adjusted exclusively through
// CatalogRepository.AdjustStock.
type Product struct {
	ID    uint    `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Stock int     `json:"stock"`
}

// CatalogRepository defines the contract for catalog access.
//
// AdjustStock is the single choke point for stock mutation: it applies
// stock += delta atomically and fails with ErrInsufficientStock, without
// mutating, if the result would go negative. Concurrent adjustments on the
// same product serialize inside the repository.
type CatalogRepository interface {
	FindAll() []Product
	FindByID(id uint) (*Product, error)
	AdjustStock(id uint, delta int) error
}
