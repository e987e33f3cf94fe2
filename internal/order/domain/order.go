package domain

import "errors"

// Domain errors
var (
	ErrOrderNotFound   = errors.New("order not found")
	ErrForbidden       = errors.New("permission denied")
	ErrInvalidQuantity = errors.New("invalid quantity")
)

// Order represents a stock allocation owned by a single user. ProductName is
// a denormalized snapshot of the product name at creation time and is never
// re-derived from the live catalog.
type Order struct {
	OrderID     uint   `json:"orderId"`
	ProductID   uint   `json:"productId"`
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
	Username    string `json:"username"`
}

// OwnedBy reports whether requester owns the order
func (o *Order) OwnedBy(requester string) bool {
	return o.Username == requester
}

// OrderRepository defines the contract for the order ledger.
//
// Insert assigns a fresh, monotonically increasing OrderID starting at 1;
// IDs are never reused within a process lifetime, even after removals.
// Update and Remove run their closure under the ledger lock, so concurrent
// mutations of the same order serialize and a failed closure leaves the
// ledger untouched.
type OrderRepository interface {
	Insert(order *Order) error
	FindByID(id uint) (*Order, error)
	FindByUsername(username string) ([]Order, error)
	Update(id uint, mutate func(*Order) error) (*Order, error)
	Remove(id uint, check func(*Order) error) error
}
