package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for order persistence.
var (
	// ErrOrderNotFound is returned when an order does not exist.
	ErrOrderNotFound = errors.New("order not found")
	// ErrDuplicateOrder is returned when an order with the same idempotency
	// key already exists. Checkout treats this as "this vendor group was
	// already committed by a previous attempt".
	ErrDuplicateOrder = errors.New("order with this idempotency key already exists")
)

// OrderRepository defines persistence operations for orders and their line items.
type OrderRepository interface {
	// Create persists a new order and fills in the generated id and
	// creation timestamp on the passed entity.
	Create(ctx context.Context, order *entity.Order) error

	// CreateLineItems persists the line items of one order in a single call.
	CreateLineItems(ctx context.Context, items []entity.OrderLineItem) error

	// FindByIdempotencyKey retrieves the order previously committed under
	// the given key, if any.
	FindByIdempotencyKey(ctx context.Context, key string) (*entity.Order, error)

	// ListByCustomer retrieves a customer's orders, newest first, with line items.
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Order, error)
}
