package command

import (
	"fmt"

	catalogdomain "github.com/tair/order-management/internal/catalog/domain"
	"github.com/tair/order-management/internal/order/domain"
)

// DeleteOrderCommand represents the command to delete an order
type DeleteOrderCommand struct {
	OrderID   uint
	Requester string
}

// DeleteOrderHandler releases an order's full stock allocation and removes
// the record from the ledger.
type DeleteOrderHandler struct {
	orders  domain.OrderRepository
	catalog catalogdomain.CatalogRepository
}

// NewDeleteOrderHandler creates a new delete order handler
func NewDeleteOrderHandler(orders domain.OrderRepository, catalog catalogdomain.CatalogRepository) *DeleteOrderHandler {
	return &DeleteOrderHandler{orders: orders, catalog: catalog}
}

// Handle executes the delete order command
func (h *DeleteOrderHandler) Handle(cmd DeleteOrderCommand) error {
	if cmd.Requester == "" {
		return fmt.Errorf("requester is required")
	}

	// Stock release and record removal both happen under the ledger lock,
	// so a racing update or delete on the same order sees either the full
	// order or none of it.
	return h.orders.Remove(cmd.OrderID, func(order *domain.Order) error {
		if !order.OwnedBy(cmd.Requester) {
			return domain.ErrForbidden
		}
		return h.catalog.AdjustStock(order.ProductID, order.Quantity)
	})
}
