//go:build wireinject
// +build wireinject

package user

import (
	"github.com/google/wire"

	"github.com/tair/order-management/internal/user/delivery/http"
)

// InitializeHTTPHandler initializes the HTTP handler with all dependencies
func InitializeHTTPHandler() *http.UserHandler {
	wire.Build(
		RepositorySet,
		http.NewUserHandler,
	)
	return nil
}
