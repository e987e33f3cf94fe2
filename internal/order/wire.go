//go:build wireinject
// +build wireinject

package order

import (
	"github.com/google/wire"

	catalogdomain "github.com/tair/order-management/internal/catalog/domain"
	"github.com/tair/order-management/internal/order/delivery/http"
	"github.com/tair/order-management/kafka"
)

// InitializeHTTPHandler initializes the HTTP handler with all dependencies
func InitializeHTTPHandler(catalog catalogdomain.CatalogRepository, events *kafka.Publisher) *http.OrderHandler {
	wire.Build(
		RepositorySet,
		http.NewOrderHandler,
	)
	return nil
}
