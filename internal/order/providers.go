package order

import (
	"github.com/google/wire"

	"github.com/tair/order-management/internal/order/domain"
	"github.com/tair/order-management/internal/order/repository"
)

// ProvideOrderRepository provides the order ledger
func ProvideOrderRepository() domain.OrderRepository {
	return repository.NewMemoryOrderRepository()
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideOrderRepository,
)
