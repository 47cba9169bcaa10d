package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderUsecase covers order history and pickup codes for committed orders.
type OrderUsecase interface {
	// ListMyOrders returns the customer's orders, newest first, with line items.
	ListMyOrders(ctx context.Context, customerID uuid.UUID) ([]*entity.Order, error)

	// OrderQR renders a PNG QR code identifying the order for pickup. The
	// order must belong to the customer.
	OrderQR(ctx context.Context, customerID, orderID uuid.UUID) ([]byte, error)
}
