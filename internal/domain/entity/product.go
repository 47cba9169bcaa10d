package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UnitType describes the granularity a product is sold in.
type UnitType string

const (
	// UnitPiece is sold by integer count.
	UnitPiece UnitType = "unit"
	// UnitKilogram is sold by weight and allows fractional quantities.
	UnitKilogram UnitType = "kg"
)

// AllowsFraction reports whether quantities of this unit type may be fractional.
func (u UnitType) AllowsFraction() bool {
	return u == UnitKilogram
}

// Product is a catalog record owned by a vendor.
type Product struct {
	ID            uuid.UUID       // Unique product id.
	VendorID      uuid.UUID       // Profile id of the seller or supplier that owns this product.
	Name          string          // Product display name.
	Description   string          // Optional long description.
	Category      string          // Catalog category, e.g. "fruits", "vegetables".
	UnitPrice     decimal.Decimal // Current price per unit.
	UnitType      UnitType        // Granularity the product is sold in.
	StockQuantity decimal.Decimal // Quantity currently in stock.
	ImageURL      string          // Public URL of the product image, if uploaded.
	IsActive      bool            // Inactive products are hidden from the catalog.
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Snapshot captures the fields the cart needs at listing time. The snapshot
// is what checkout later commits from, so price changes after the add do not
// affect an in-flight cart.
func (p *Product) Snapshot() ProductSnapshot {
	return ProductSnapshot{
		ProductID: p.ID,
		VendorID:  p.VendorID,
		Name:      p.Name,
		UnitPrice: p.UnitPrice,
		UnitType:  p.UnitType,
	}
}

// ProductSnapshot is the immutable view of a product carried inside a cart
// item: identity, owning vendor, and the unit price at the time of listing.
type ProductSnapshot struct {
	ProductID uuid.UUID       `json:"product_id"`
	VendorID  uuid.UUID       `json:"vendor_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	UnitType  UnitType        `json:"unit_type"`
}

// HasVendor reports whether the snapshot carries a resolvable vendor reference.
func (s ProductSnapshot) HasVendor() bool {
	return s.VendorID != uuid.Nil
}
