package query

import (
	"fmt"

	"github.com/tair/order-management/internal/order/domain"
)

// GetOrderQuery represents the query to get a single order
type GetOrderQuery struct {
	OrderID   uint
	Requester string
}

// GetOrderHandler handles the get order query
type GetOrderHandler struct {
	repo domain.OrderRepository
}

// NewGetOrderHandler creates a new get order handler
func NewGetOrderHandler(repo domain.OrderRepository) *GetOrderHandler {
	return &GetOrderHandler{repo: repo}
}

// Handle executes the get order query
func (h *GetOrderHandler) Handle(query GetOrderQuery) (*domain.Order, error) {
	if query.Requester == "" {
		return nil, fmt.Errorf("requester is required")
	}

	order, err := h.repo.FindByID(query.OrderID)
	if err != nil {
		return nil, err
	}

	if !order.OwnedBy(query.Requester) {
		return nil, domain.ErrForbidden
	}

	return order, nil
}
