package service

import (
	"context"
	"time"
)

// OrderPlacedEvent is published once per committed vendor order.
type OrderPlacedEvent struct {
	OrderID         string    `json:"order_id"`
	CustomerID      string    `json:"customer_id"`
	VendorID        string    `json:"vendor_id"`
	TotalPrice      string    `json:"total_price"`
	LineItemCount   int       `json:"line_item_count"`
	ShippingAddress string    `json:"shipping_address"`
	RequestID       string    `json:"request_id,omitempty"`
	PlacedAt        time.Time `json:"placed_at"`
}

// EventPublisher publishes order events to downstream consumers
// (vendor dashboards, analytics).
type EventPublisher interface {
	// PublishOrderPlaced publishes an order-placed event.
	PublishOrderPlaced(ctx context.Context, event *OrderPlacedEvent) error

	// Close releases the publisher's resources.
	Close() error
}
