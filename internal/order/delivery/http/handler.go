package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	catalogdomain "github.com/tair/order-management/internal/catalog/domain"
	"github.com/tair/order-management/internal/order/domain"
	"github.com/tair/order-management/internal/order/usecase/command"
	"github.com/tair/order-management/internal/order/usecase/query"
	userhttp "github.com/tair/order-management/internal/user/delivery/http"
	"github.com/tair/order-management/kafka"
	"github.com/tair/order-management/pkg/logger"
)

var (
	requestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_service_requests_total",
			Help: "Total number of requests to order endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "order_service_request_duration_seconds",
			Help:    "Duration of order endpoint requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	ordersPlaced = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "order_service_orders_placed_total",
			Help: "Total number of successfully placed orders",
		},
	)
)

func init() {
	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(ordersPlaced)
}

// OrderHandler handles HTTP requests for orders
type OrderHandler struct {
	placeHandler  *command.PlaceOrderHandler
	updateHandler *command.UpdateOrderHandler
	deleteHandler *command.DeleteOrderHandler

	getHandler  *query.GetOrderHandler
	listHandler *query.ListMyOrdersHandler

	events *kafka.Publisher
}

// NewOrderHandler creates a new order handler. events may be nil, in which
// case lifecycle events are dropped.
func NewOrderHandler(orders domain.OrderRepository, catalog catalogdomain.CatalogRepository, events *kafka.Publisher) *OrderHandler {
	return &OrderHandler{
		placeHandler:  command.NewPlaceOrderHandler(orders, catalog),
		updateHandler: command.NewUpdateOrderHandler(orders, catalog),
		deleteHandler: command.NewDeleteOrderHandler(orders, catalog),
		getHandler:    query.NewGetOrderHandler(orders),
		listHandler:   query.NewListMyOrdersHandler(orders),
		events:        events,
	}
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// metricsMiddleware wraps handlers with Prometheus metrics
func (h *OrderHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
	}
}

// coerceInt converts a loosely typed JSON value to an integer. Anything that
// does not represent a whole number reports false.
func coerceInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return int(i), true
	case string:
		i, err := strconv.Atoi(n)
		if err != nil {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}

// PlaceOrder handles POST /orders
func (h *OrderHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	requester, ok := userhttp.RequesterFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Access denied. Token missing.")
		return
	}

	var req struct {
		ProductID interface{} `json:"productId"`
		Quantity  interface{} `json:"quantity"`
	}

	decoder := json.NewDecoder(r.Body)
	decoder.UseNumber()
	if err := decoder.Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// Uncoercible values flow through as zero and fail downstream checks.
	productID, _ := coerceInt(req.ProductID)
	quantity, _ := coerceInt(req.Quantity)
	if productID < 0 {
		productID = 0
	}

	cmd := command.PlaceOrderCommand{
		ProductID: uint(productID),
		Quantity:  quantity,
		Requester: requester,
	}

	order, err := h.placeHandler.Handle(cmd)
	if err != nil {
		switch {
		case errors.Is(err, catalogdomain.ErrProductNotFound):
			h.respondError(w, http.StatusNotFound, "Product not found.")
		case errors.Is(err, catalogdomain.ErrInsufficientStock):
			h.respondError(w, http.StatusBadRequest, "Insufficient stock levels.")
		case errors.Is(err, domain.ErrInvalidQuantity):
			h.respondError(w, http.StatusBadRequest, "Invalid quantity provided.")
		default:
			logger.Error(r.Context()).Err(err).Msg("Failed to place order")
			h.respondError(w, http.StatusInternalServerError, "Internal Server Error")
		}
		return
	}

	ordersPlaced.Inc()
	logger.Info(r.Context()).
		Uint("order_id", order.OrderID).
		Uint("product_id", order.ProductID).
		Int("quantity", order.Quantity).
		Str("username", order.Username).
		Msg("Order placed")

	h.publishEvent(r.Context(), kafka.EventTypeOrderPlaced, order)

	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Order placed successfully.",
		"order":   order,
	})
}

// ListMyOrders handles GET /orders
func (h *OrderHandler) ListMyOrders(w http.ResponseWriter, r *http.Request) {
	requester, ok := userhttp.RequesterFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Access denied. Token missing.")
		return
	}

	orders, err := h.listHandler.Handle(query.ListMyOrdersQuery{Requester: requester})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list orders")
		h.respondError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	h.respondJSON(w, http.StatusOK, orders)
}

// GetOrder handles GET /orders/{id}
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	requester, ok := userhttp.RequesterFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Access denied. Token missing.")
		return
	}

	orderID, ok := orderIDFromPath(r)
	if !ok {
		h.respondError(w, http.StatusNotFound, "Order not found.")
		return
	}

	order, err := h.getHandler.Handle(query.GetOrderQuery{OrderID: orderID, Requester: requester})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrOrderNotFound):
			h.respondError(w, http.StatusNotFound, "Order not found.")
		case errors.Is(err, domain.ErrForbidden):
			h.respondError(w, http.StatusForbidden, "Access denied.")
		default:
			logger.Error(r.Context()).Err(err).Msg("Failed to get order")
			h.respondError(w, http.StatusInternalServerError, "Internal Server Error")
		}
		return
	}

	h.respondJSON(w, http.StatusOK, order)
}

// UpdateOrder handles PUT /orders/{id}
func (h *OrderHandler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	requester, ok := userhttp.RequesterFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Access denied. Token missing.")
		return
	}

	orderID, ok := orderIDFromPath(r)
	if !ok {
		h.respondError(w, http.StatusNotFound, "Order not found.")
		return
	}

	var req struct {
		Quantity interface{} `json:"quantity"`
	}

	decoder := json.NewDecoder(r.Body)
	decoder.UseNumber()
	if err := decoder.Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	quantity, _ := coerceInt(req.Quantity)

	cmd := command.UpdateOrderCommand{
		OrderID:   orderID,
		Quantity:  quantity,
		Requester: requester,
	}

	order, err := h.updateHandler.Handle(cmd)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrOrderNotFound):
			h.respondError(w, http.StatusNotFound, "Order not found.")
		case errors.Is(err, domain.ErrForbidden):
			h.respondError(w, http.StatusForbidden, "Permission denied for this update.")
		case errors.Is(err, domain.ErrInvalidQuantity):
			h.respondError(w, http.StatusBadRequest, "Invalid quantity provided.")
		case errors.Is(err, catalogdomain.ErrInsufficientStock):
			h.respondError(w, http.StatusBadRequest, "Update failed due to stock limitations.")
		default:
			logger.Error(r.Context()).Err(err).Msg("Failed to update order")
			h.respondError(w, http.StatusInternalServerError, "Internal Server Error")
		}
		return
	}

	logger.Info(r.Context()).
		Uint("order_id", order.OrderID).
		Int("quantity", order.Quantity).
		Msg("Order updated")

	h.publishEvent(r.Context(), kafka.EventTypeOrderUpdated, order)

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Order updated successfully.",
		"order":   order,
	})
}

// DeleteOrder handles DELETE /orders/{id}
func (h *OrderHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	requester, ok := userhttp.RequesterFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Access denied. Token missing.")
		return
	}

	orderID, ok := orderIDFromPath(r)
	if !ok {
		h.respondError(w, http.StatusNotFound, "Order not found.")
		return
	}

	err := h.deleteHandler.Handle(command.DeleteOrderCommand{OrderID: orderID, Requester: requester})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrOrderNotFound):
			h.respondError(w, http.StatusNotFound, "Order not found.")
		case errors.Is(err, domain.ErrForbidden):
			h.respondError(w, http.StatusForbidden, "Permission denied to delete this order.")
		default:
			logger.Error(r.Context()).Err(err).Msg("Failed to delete order")
			h.respondError(w, http.StatusInternalServerError, "Internal Server Error")
		}
		return
	}

	logger.Info(r.Context()).Uint("order_id", orderID).Msg("Order deleted")

	h.publishEvent(r.Context(), kafka.EventTypeOrderDeleted, &domain.Order{OrderID: orderID, Username: requester})

	h.respondJSON(w, http.StatusOK, map[string]string{"message": "Order deleted successfully."})
}

// publishEvent fires an order lifecycle event without blocking the response
func (h *OrderHandler) publishEvent(ctx context.Context, eventType string, order *domain.Order) {
	if h.events == nil {
		return
	}

	event := kafka.OrderEvent{
		EventType:   eventType,
		OrderID:     order.OrderID,
		ProductID:   order.ProductID,
		ProductName: order.ProductName,
		Quantity:    order.Quantity,
		Username:    order.Username,
		Timestamp:   time.Now(),
	}

	go func(ctx context.Context) {
		if err := h.events.PublishOrderEvent(ctx, event); err != nil {
			logger.Error(ctx).Err(err).Str("event_type", eventType).Msg("Failed to publish order event")
		}
	}(context.WithoutCancel(ctx))
}

// orderIDFromPath extracts the order ID path parameter
func orderIDFromPath(r *http.Request) (uint, bool) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// respondJSON sends a JSON response
func (h *OrderHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError sends an error response
func (h *OrderHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}

// RegisterRoutes registers all order routes behind authentication
func (h *OrderHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/orders", h.metricsMiddleware("/orders", userhttp.AuthMiddleware(h.PlaceOrder))).Methods("POST")
	router.HandleFunc("/orders", h.metricsMiddleware("/orders", userhttp.AuthMiddleware(h.ListMyOrders))).Methods("GET")
	router.HandleFunc("/orders/{id}", h.metricsMiddleware("/orders/{id}", userhttp.AuthMiddleware(h.GetOrder))).Methods("GET")
	router.HandleFunc("/orders/{id}", h.metricsMiddleware("/orders/{id}", userhttp.AuthMiddleware(h.UpdateOrder))).Methods("PUT")
	router.HandleFunc("/orders/{id}", h.metricsMiddleware("/orders/{id}", userhttp.AuthMiddleware(h.DeleteOrder))).Methods("DELETE")
}
