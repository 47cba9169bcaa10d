package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when a product does not exist or is inactive.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines persistence operations for catalog products.
type ProductRepository interface {
	// FindByID retrieves a single product by id.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// ListActive retrieves all active products, optionally filtered by category.
	ListActive(ctx context.Context, category string) ([]*entity.Product, error)

	// ListByVendor retrieves all products owned by a vendor.
	ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]*entity.Product, error)

	// Create persists a new product.
	Create(ctx context.Context, product *entity.Product) error
}
