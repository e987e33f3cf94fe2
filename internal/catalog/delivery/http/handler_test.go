package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/order-management/internal/catalog/repository"
	"github.com/tair/order-management/pkg/logger"
)

func init() {
	logger.Init("catalog-service-test", true)
}

func TestListProducts_HTTP(t *testing.T) {
	router := mux.NewRouter()
	handler := NewCatalogHandler(repository.NewMemoryCatalogRepository(repository.DefaultCatalog()))
	handler.RegisterRoutes(router)

	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var products []struct {
		ID    uint    `json:"id"`
		Name  string  `json:"name"`
		Price float64 `json:"price"`
		Stock int     `json:"stock"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
	require.Len(t, products, 10)

	assert.Equal(t, uint(1), products[0].ID)
	assert.Equal(t, 25.00, products[0].Price)
	assert.Equal(t, 0, products[2].Stock)
}
