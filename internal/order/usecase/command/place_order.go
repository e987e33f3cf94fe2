package command

import (
	"fmt"

	catalogdomain "github.com/tair/order-management/internal/catalog/domain"
	"github.com/tair/order-management/internal/order/domain"
)

// PlaceOrderCommand represents the command to place a new order
type PlaceOrderCommand struct {
	ProductID uint
	Quantity  int
	Requester string
}

// PlaceOrderHandler handles order placement: it couples the stock decrement
// and the ledger insert so the catalog and the ledger move as one unit.
type PlaceOrderHandler struct {
	orders  domain.OrderRepository
	catalog catalogdomain.CatalogRepository
}

// NewPlaceOrderHandler creates a new place order handler
func NewPlaceOrderHandler(orders domain.OrderRepository, catalog catalogdomain.CatalogRepository) *PlaceOrderHandler {
	return &PlaceOrderHandler{orders: orders, catalog: catalog}
}

// Handle executes the place order command
func (h *PlaceOrderHandler) Handle(cmd PlaceOrderCommand) (*domain.Order, error) {
	if cmd.Requester == "" {
		return nil, fmt.Errorf("requester is required")
	}

	product, err := h.catalog.FindByID(cmd.ProductID)
	if err != nil {
		return nil, err
	}

	// Validation precedes any stock computation
	if cmd.Quantity < 1 {
		return nil, domain.ErrInvalidQuantity
	}

	// AdjustStock serializes the sufficiency check against concurrent
	// allocations on the same product.
	if err := h.catalog.AdjustStock(cmd.ProductID, -cmd.Quantity); err != nil {
		return nil, err
	}

	order := &domain.Order{
		ProductID:   cmd.ProductID,
		ProductName: product.Name,
		Quantity:    cmd.Quantity,
		Username:    cmd.Requester,
	}

	if err := h.orders.Insert(order); err != nil {
		// Release the allocation so stock stays conserved
		h.catalog.AdjustStock(cmd.ProductID, cmd.Quantity)
		return nil, fmt.Errorf("failed to insert order: %w", err)
	}

	return order, nil
}
