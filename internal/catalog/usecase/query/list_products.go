package query

import "github.com/tair/order-management/internal/catalog/domain"

// ListProductsQuery represents the query to list the product catalog
type ListProductsQuery struct{}

// ListProductsHandler handles the list products query
type ListProductsHandler struct {
	repo domain.CatalogRepository
}

// NewListProductsHandler creates a new list products handler
func NewListProductsHandler(repo domain.CatalogRepository) *ListProductsHandler {
	return &ListProductsHandler{repo: repo}
}

// Handle executes the list products query
func (h *ListProductsHandler) Handle(_ ListProductsQuery) ([]domain.Product, error) {
	return h.repo.FindAll(), nil
}
