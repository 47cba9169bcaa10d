package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle state of a committed vendor order.
type OrderStatus string

const (
	// OrderStatusPending is the state every order is created in.
	OrderStatusPending OrderStatus = "pending"
	// OrderStatusApproved means the vendor accepted the order.
	OrderStatusApproved OrderStatus = "approved"
	// OrderStatusCancelled means the vendor rejected the order.
	OrderStatusCancelled OrderStatus = "cancelled"
	// OrderStatusCompleted means the order was delivered.
	OrderStatusCompleted OrderStatus = "completed"
)

// CanTransitionTo reports whether a vendor-side status transition is legal:
// pending → approved/cancelled, approved → completed.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	switch s {
	case OrderStatusPending:
		return next == OrderStatusApproved || next == OrderStatusCancelled
	case OrderStatusApproved:
		return next == OrderStatusCompleted
	default:
		return false
	}
}

// Order is one committed order for a single vendor. A checkout spanning N
// vendors produces N orders.
type Order struct {
	ID              uuid.UUID       // Generated by the persistence backend on insert.
	CustomerID      uuid.UUID       // Profile id of the buying customer.
	VendorID        uuid.UUID       // Profile id of the seller or supplier receiving the order.
	TotalPrice      decimal.Decimal // Snapshot of the vendor group's total at commit time.
	Status          OrderStatus
	ShippingAddress string
	IdempotencyKey  string // Client-generated key; unique per (customer, vendor, cart fingerprint).
	CreatedAt       time.Time
	LineItems       []OrderLineItem // Populated on reads; set by checkout on writes.
}

// OrderLineItem records one cart line inside a committed order. Immutable
// once created; PriceAtPurchase is the snapshot price, decoupled from any
// later catalog price change.
type OrderLineItem struct {
	ID              uuid.UUID
	OrderID         uuid.UUID
	ProductID       uuid.UUID
	Quantity        decimal.Decimal
	PriceAtPurchase decimal.Decimal
}
