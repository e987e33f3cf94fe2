//go:build wireinject
// +build wireinject

package catalog

import (
	"github.com/google/wire"

	"github.com/tair/order-management/internal/catalog/delivery/http"
)

// InitializeHTTPHandler initializes the HTTP handler with all dependencies
func InitializeHTTPHandler() *http.CatalogHandler {
	wire.Build(
		RepositorySet,
		http.NewCatalogHandler,
	)
	return nil
}
