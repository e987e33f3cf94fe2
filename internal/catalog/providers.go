package catalog

import (
	"github.com/google/wire"

	"github.com/tair/order-management/internal/catalog/domain"
	"github.com/tair/order-management/internal/catalog/repository"
)

// ProvideCatalogRepository provides the catalog seeded with the default list
func ProvideCatalogRepository() domain.CatalogRepository {
	return repository.NewMemoryCatalogRepository(repository.DefaultCatalog())
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideCatalogRepository,
)
