package service

import (
	"context"
)

// OrderEvent is published after an order commits, for downstream consumers
// (mail, analytics, fulfilment) to process asynchronously.
type OrderEvent struct {
	RequestID  string   `json:"request_id,omitempty"` // For distributed tracing
	OrderID    string   `json:"order_id"`
	CustomerID string   `json:"customer_id"`
	Status     string   `json:"status"`
	Total      string   `json:"total"` // Decimal string, never binary float
	ProductIDs []string `json:"product_ids"`
	StartupIDs []string `json:"startup_ids"` // Distinct startups touched by the order
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderEvent publishes an order lifecycle event for async processing
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
