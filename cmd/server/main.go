package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	catalogHTTP "github.com/tair/order-management/internal/catalog/delivery/http"
	catalogRepo "github.com/tair/order-management/internal/catalog/repository"
	orderHTTP "github.com/tair/order-management/internal/order/delivery/http"
	orderRepo "github.com/tair/order-management/internal/order/repository"
	userHTTP "github.com/tair/order-management/internal/user/delivery/http"
	userRepo "github.com/tair/order-management/internal/user/repository"
	"github.com/tair/order-management/kafka"
	"github.com/tair/order-management/pkg/logger"
	"github.com/tair/order-management/pkg/tracing"
)

func main() {
	logger.Init("order-management", getEnv("APP_ENV", "development") == "development")
	logger.SetLevel(getEnv("LOG_LEVEL", "info"))

	ctx := context.Background()

	// Tracing
	tp, err := tracing.InitTracer("order-management")
	if err != nil {
		logger.Logger.Warn().Err(err).Msg("Tracing disabled")
	} else {
		defer tracing.Shutdown(ctx, tp)
	}

	// Optional Kafka publisher for order lifecycle events
	var events *kafka.Publisher
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		events, err = kafka.NewPublisher(strings.Split(brokers, ","))
		if err != nil {
			logger.Logger.Warn().Err(err).Msg("Kafka publisher disabled")
			events = nil
		} else {
			defer events.Close()
		}
	}

	// In-memory stores, scoped to this service instance
	users := userRepo.NewMemoryUserRepository()
	catalog := catalogRepo.NewMemoryCatalogRepository(catalogRepo.DefaultCatalog())
	orders := orderRepo.NewMemoryOrderRepository()

	userHandler := userHTTP.NewUserHandler(users)
	catalogHandler := catalogHTTP.NewCatalogHandler(catalog)
	orderHandler := orderHTTP.NewOrderHandler(orders, catalog, events)

	router := mux.NewRouter()
	orderHTTP.RegisterMiddlewares(router)

	userHandler.RegisterRoutes(router)
	userHandler.RegisterHealthCheck(router)
	catalogHandler.RegisterRoutes(router)
	orderHandler.RegisterRoutes(router)

	// Prometheus metrics endpoint
	router.Handle("/metrics", promhttp.Handler())

	// Swagger UI
	userHTTP.RegisterSwaggerDocs(router, httpSwagger.Handler())

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	port := getEnv("HTTP_PORT", "3000")
	server := &http.Server{
		Addr:    ":" + port,
		Handler: c.Handler(router),
	}

	go func() {
		logger.Logger.Info().
			Str("port", port).
			Msg("HTTP server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Logger.Error().Err(err).Msg("Server shutdown failed")
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
