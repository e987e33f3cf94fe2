package kafka

import "time"

// OrderEvent represents an order lifecycle event
type OrderEvent struct {
	EventID     string    `json:"event_id"`
	EventType   string    `json:"event_type"`
	OrderID     uint      `json:"order_id"`
	ProductID   uint      `json:"product_id"`
	ProductName string    `json:"product_name"`
	Quantity    int       `json:"quantity"`
	Username    string    `json:"username"`
	Timestamp   time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypeOrderPlaced  = "order.placed"
	EventTypeOrderUpdated = "order.updated"
	EventTypeOrderDeleted = "order.deleted"
)

// Kafka topics
const (
	TopicOrderEvents = "order-events"
)
