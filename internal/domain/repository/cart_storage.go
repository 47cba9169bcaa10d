package repository

import "storefront/internal/domain/entity"

// CartStorage is the durable local mirror of the cart, the counterpart of
// browser localStorage. It is synchronous and never touches the network:
// every cart mutation saves the full item list, and process start loads it
// back before anything else reads the cart.
type CartStorage interface {
	// Load returns the stored cart lines in order. A missing store yields
	// an empty slice, not an error.
	Load() ([]entity.CartItem, error)

	// Save replaces the stored cart with the given lines.
	Save(items []entity.CartItem) error
}
