package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CheckoutInput carries everything checkout needs beyond the cart itself.
type CheckoutInput struct {
	ShippingAddress string `json:"shippingAddress" validate:"required"`
}

// CheckoutOutput reports the orders created by a fully successful checkout.
type CheckoutOutput struct {
	OrderIDs    []uuid.UUID     `json:"orderIds"`
	VendorCount int             `json:"vendorCount"`
	Total       decimal.Decimal `json:"total"`
}

// CheckoutError is returned when the per-vendor commit loop stops partway.
// Committed vendor groups stay committed; the cart is left intact so the
// customer can retry, and retried commits for already committed groups are
// skipped through their idempotency keys.
type CheckoutError struct {
	// CommittedVendorIDs lists vendors whose orders were durably created
	// before the failure.
	CommittedVendorIDs []uuid.UUID

	// FailedVendorID is the vendor whose commit failed.
	FailedVendorID uuid.UUID

	// Err is the underlying commit failure.
	Err error
}

func (e *CheckoutError) Error() string {
	return fmt.Sprintf("checkout stopped at vendor %s after %d committed group(s): %v",
		e.FailedVendorID, len(e.CommittedVendorIDs), e.Err)
}

func (e *CheckoutError) Unwrap() error {
	return e.Err
}

// CheckoutUsecase turns the current cart into one order per vendor.
type CheckoutUsecase interface {
	// Checkout validates the signed-in identity and cart, partitions the
	// cart by vendor, and commits one order per vendor sequentially. On
	// full success the cart is cleared and an event is published per
	// order. A partial failure returns *CheckoutError.
	Checkout(ctx context.Context, input *CheckoutInput) (*CheckoutOutput, error)
}
