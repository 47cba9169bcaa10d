package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateProductInput is the payload for listing a new product. Image is
// optional; when present it is stored and the product carries its URL.
type CreateProductInput struct {
	Name          string          `json:"name" validate:"required,min=1,max=200"`
	Description   string          `json:"description" validate:"max=2000"`
	Category      string          `json:"category" validate:"max=100"`
	UnitPrice     decimal.Decimal `json:"unitPrice" validate:"required"`
	UnitType      entity.UnitType `json:"unitType" validate:"required,oneof=unit kg"`
	StockQuantity int             `json:"stockQuantity" validate:"gte=0"`
	Image         []byte          `json:"-"`
	ImageType     string          `json:"-"`
}

// CatalogUsecase exposes the product catalog for browsing and vendor
// listing management.
type CatalogUsecase interface {
	// ListProducts returns active products, optionally filtered by category.
	ListProducts(ctx context.Context, category string) ([]*entity.Product, error)

	// GetProduct returns one product by id.
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// ListVendorProducts returns a vendor's own products, active or not.
	ListVendorProducts(ctx context.Context, vendorID uuid.UUID) ([]*entity.Product, error)

	// CreateProduct lists a new product for the vendor.
	CreateProduct(ctx context.Context, vendorID uuid.UUID, input *CreateProductInput) (*entity.Product, error)
}
