package user

import (
	"github.com/google/wire"

	"github.com/tair/order-management/internal/user/domain"
	"github.com/tair/order-management/internal/user/repository"
)

// ProvideUserRepository provides the user repository
func ProvideUserRepository() domain.UserRepository {
	return repository.NewMemoryUserRepository()
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideUserRepository,
)
