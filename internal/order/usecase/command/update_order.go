package command

import (
	"fmt"

	catalogdomain "github.com/tair/order-management/internal/catalog/domain"
	"github.com/tair/order-management/internal/order/domain"
)

// UpdateOrderCommand represents the command to change an order's quantity.
// Quantity values that did not coerce to an integer at the boundary arrive
// as zero and are rejected before any stock computation.
type UpdateOrderCommand struct {
	OrderID   uint
	Quantity  int
	Requester string
}

// UpdateOrderHandler adjusts an order's stock allocation by the signed
// difference between the new and old quantity.
type UpdateOrderHandler struct {
	orders  domain.OrderRepository
	catalog catalogdomain.CatalogRepository
}

// NewUpdateOrderHandler creates a new update order handler
func NewUpdateOrderHandler(orders domain.OrderRepository, catalog catalogdomain.CatalogRepository) *UpdateOrderHandler {
	return &UpdateOrderHandler{orders: orders, catalog: catalog}
}

// Handle executes the update order command
func (h *UpdateOrderHandler) Handle(cmd UpdateOrderCommand) (*domain.Order, error) {
	if cmd.Requester == "" {
		return nil, fmt.Errorf("requester is required")
	}

	// The mutator runs under the ledger lock, serializing against concurrent
	// updates and deletes of the same order. Lock order is always ledger
	// first, then the product inside AdjustStock.
	return h.orders.Update(cmd.OrderID, func(order *domain.Order) error {
		if !order.OwnedBy(cmd.Requester) {
			return domain.ErrForbidden
		}
		if cmd.Quantity < 1 {
			return domain.ErrInvalidQuantity
		}

		diff := cmd.Quantity - order.Quantity
		if diff == 0 {
			return nil
		}

		// Negative diff releases stock and cannot fail; positive diff is the
		// additional allocation demand, rejected on insufficiency.
		if err := h.catalog.AdjustStock(order.ProductID, -diff); err != nil {
			return err
		}

		order.Quantity = cmd.Quantity
		return nil
	})
}
