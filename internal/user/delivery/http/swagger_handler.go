package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterSwaggerDocs registers Swagger documentation routes
// @Summary Swagger documentation
// @Description Swagger API documentation for the Order Management Service
// @Tags Swagger
// @Success 200 {string} string "Swagger UI"
// @Router /swagger/ [get]
func RegisterSwaggerDocs(router *mux.Router, swaggerHandler http.Handler) {
	router.PathPrefix("/swagger/").Handler(swaggerHandler)
}

// Signup godoc
// @Summary Register a new user
// @Description Register with a unique username (3-15 chars) and password (min 8 chars)
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body object{username=string,password=string} true "Credentials"
// @Success 201 {object} object{message=string}
// @Failure 400 {object} object{error=string}
// @Failure 409 {object} object{error=string}
// @Router /signup [post]
func (h *UserHandler) SignupDoc() {}

// Login godoc
// @Summary Login
// @Description Exchange valid credentials for a time-limited bearer token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body object{username=string,password=string} true "Credentials"
// @Success 200 {object} object{token=string}
// @Failure 401 {object} object{error=string}
// @Router /login [post]
func (h *UserHandler) LoginDoc() {}
