package query

import (
	"fmt"

	"github.com/tair/order-management/internal/order/domain"
)

// ListMyOrdersQuery represents the query to list the requester's own orders
type ListMyOrdersQuery struct {
	Requester string
}

// ListMyOrdersHandler handles the list my orders query
type ListMyOrdersHandler struct {
	repo domain.OrderRepository
}

// NewListMyOrdersHandler creates a new list my orders handler
func NewListMyOrdersHandler(repo domain.OrderRepository) *ListMyOrdersHandler {
	return &ListMyOrdersHandler{repo: repo}
}

// Handle executes the list my orders query. Scoping is by ownership filter,
// never by rejection.
func (h *ListMyOrdersHandler) Handle(query ListMyOrdersQuery) ([]domain.Order, error) {
	if query.Requester == "" {
		return nil, fmt.Errorf("requester is required")
	}

	orders, err := h.repo.FindByUsername(query.Requester)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	return orders, nil
}
