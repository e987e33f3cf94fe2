package main

// @title Order Management Service API
// @version 1.0
// @description Order management backend: authentication, a fixed product catalog, and per-user order CRUD against a shared stock pool.
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://github.com/tair/order-management
// @contact.email support@example.com

// @license.name MIT
// @license.url https://github.com/tair/order-management/blob/main/LICENSE

// @host localhost:3000
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @tag.name Auth
// @tag.description Registration and login endpoints

// @tag.name Products
// @tag.description Product catalog endpoints

// @tag.name Orders
// @tag.description Order management endpoints

// @tag.name Health
// @tag.description Health check endpoints
