package usecase

import (
	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartUsecase is the single-writer cart store. Every mutation mirrors the
// full cart synchronously into durable local storage; reads recompute
// derived values from the current entry set. No method touches the network.
type CartUsecase interface {
	// Add merges the quantity into an existing line for the product or
	// appends a new one.
	Add(product entity.ProductSnapshot, qty decimal.Decimal) error

	// Remove deletes the line for the product id.
	Remove(productID uuid.UUID) error

	// SetQuantity replaces a line's quantity; qty <= 0 behaves like Remove.
	SetQuantity(productID uuid.UUID, qty decimal.Decimal) error

	// Clear empties the cart.
	Clear() error

	// Items returns the cart lines in storage order.
	Items() []entity.CartItem

	// ItemCount returns the sum of all quantities.
	ItemCount() decimal.Decimal

	// Total returns the sum of all line subtotals.
	Total() decimal.Decimal

	// Snapshot returns an independent copy of the cart for checkout to
	// read once and iterate without racing later mutations.
	Snapshot() *entity.Cart
}
