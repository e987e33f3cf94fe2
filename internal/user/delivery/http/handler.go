package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tair/order-management/internal/user/domain"
	"github.com/tair/order-management/internal/user/usecase/command"
	"github.com/tair/order-management/pkg/logger"
)

var (
	requestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "user_service_requests_total",
			Help: "Total number of requests to user endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "user_service_request_duration_seconds",
			Help:    "Duration of user endpoint requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	registeredUsers = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "user_service_registered_users",
			Help: "Number of registered users in the system",
		},
	)
)

func init() {
	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(registeredUsers)
}

// UserHandler handles HTTP requests for registration and login
type UserHandler struct {
	registerHandler *command.RegisterUserHandler
	loginHandler    *command.LoginUserHandler

	repo domain.UserRepository
}

// NewUserHandler creates a new user handler
func NewUserHandler(repo domain.UserRepository) *UserHandler {
	return &UserHandler{
		registerHandler: command.NewRegisterUserHandler(repo),
		loginHandler:    command.NewLoginUserHandler(repo),
		repo:            repo,
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
func (h *UserHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
	}
}

// Signup handles POST /signup
func (h *UserHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cmd := command.RegisterUserCommand{
		Username: req.Username,
		Password: req.Password,
	}

	if _, err := h.registerHandler.Handle(cmd); err != nil {
		switch {
		case errors.Is(err, domain.ErrUsernameTaken):
			h.respondError(w, http.StatusConflict, "User already exists.")
		case errors.Is(err, domain.ErrInvalidUsername):
			h.respondError(w, http.StatusBadRequest, "Username must be between 3 and 15 characters.")
		case errors.Is(err, domain.ErrInvalidPassword):
			h.respondError(w, http.StatusBadRequest, "Password must be at least 8 characters long.")
		default:
			logger.Error(r.Context()).Err(err).Msg("Registration failed")
			h.respondError(w, http.StatusInternalServerError, "Internal Server Error")
		}
		return
	}

	h.updateRegisteredUsersMetric()
	logger.Info(r.Context()).Str("username", req.Username).Msg("User registered")
	h.respondJSON(w, http.StatusCreated, map[string]string{"message": "User registered successfully."})
}

// Login handles POST /login
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cmd := command.LoginUserCommand{
		Username: req.Username,
		Password: req.Password,
	}

	response, err := h.loginHandler.Handle(cmd)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			h.respondError(w, http.StatusUnauthorized, "Authentication failed. Invalid credentials.")
			return
		}
		logger.Error(r.Context()).Err(err).Msg("Login failed")
		h.respondError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	h.respondJSON(w, http.StatusOK, response)
}

// updateRegisteredUsersMetric updates the registered users gauge
func (h *UserHandler) updateRegisteredUsersMetric() {
	count, err := h.repo.Count()
	if err == nil {
		registeredUsers.Set(float64(count))
	}
}

// respondJSON sends a JSON response
func (h *UserHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError sends an error response
func (h *UserHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}

// RegisterRoutes registers all user routes
func (h *UserHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/signup", h.metricsMiddleware("/signup", h.Signup)).Methods("POST")
	router.HandleFunc("/login", h.metricsMiddleware("/login", h.Login)).Methods("POST")
}

// RegisterHealthCheck registers the health check endpoint
func (h *UserHandler) RegisterHealthCheck(router *mux.Router) {
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		h.respondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
	}).Methods("GET")
}
