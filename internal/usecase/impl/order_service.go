package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	orderRepo repository.OrderRepository
	qrcode    service.QRCodeService
	logger    *slog.Logger
}

// OrderServiceParams holds dependencies for orderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	OrderRepo repository.OrderRepository
	QRCode    service.QRCodeService
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		orderRepo: params.OrderRepo,
		qrcode:    params.QRCode,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListMyOrders returns the customer's orders, newest first, with line items.
func (srv *orderService) ListMyOrders(ctx context.Context, customerID uuid.UUID) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		srv.log(ctx).Error("Failed to list orders", slog.Any("customerID", customerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list customer orders")
	}

	return orders, nil
}

// OrderQR renders the pickup QR code after verifying the order belongs to
// the requesting customer.
func (srv *orderService) OrderQR(ctx context.Context, customerID, orderID uuid.UUID) ([]byte, error) {
	orders, err := srv.orderRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load customer orders")
	}

	var found bool
	for _, order := range orders {
		if order.ID == orderID {
			found = true

			break
		}
	}
	if !found {
		return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "order does not belong to customer")
	}

	png, err := srv.qrcode.GenerateOrderQR(orderID)
	if err != nil {
		srv.log(ctx).Error("Failed to generate order QR", slog.Any("orderID", orderID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate order QR code")
	}

	return png, nil
}
