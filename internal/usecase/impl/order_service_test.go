package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockRepo "storefront/internal/mocks/repository"
	mockService "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type orderFixtures struct {
	service   usecase.OrderUsecase
	orderRepo *mockRepo.MockOrderRepository
	qrcode    *mockService.MockQRCodeService
}

func createTestOrderService(t *testing.T) orderFixtures {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	qrcode := mockService.NewMockQRCodeService(t)

	svc := NewOrderService(OrderServiceParams{
		OrderRepo: orderRepo,
		QRCode:    qrcode,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return orderFixtures{service: svc, orderRepo: orderRepo, qrcode: qrcode}
}

func TestOrderService_ListMyOrders(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	customerID := uuid.New()
	orders := []*entity.Order{
		{ID: uuid.New(), CustomerID: customerID, Status: entity.OrderStatusPending},
	}
	fx.orderRepo.EXPECT().ListByCustomer(ctx, customerID).Return(orders, nil)

	got, err := fx.service.ListMyOrders(ctx, customerID)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestOrderService_OrderQR(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	customerID := uuid.New()
	orderID := uuid.New()
	fx.orderRepo.EXPECT().
		ListByCustomer(ctx, customerID).
		Return([]*entity.Order{{ID: orderID, CustomerID: customerID}}, nil)
	fx.qrcode.EXPECT().GenerateOrderQR(orderID).Return([]byte("png-bytes"), nil)

	png, err := fx.service.OrderQR(ctx, customerID, orderID)
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), png)
}

func TestOrderService_OrderQR_NotOwnOrder(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	customerID := uuid.New()
	fx.orderRepo.EXPECT().
		ListByCustomer(ctx, customerID).
		Return([]*entity.Order{{ID: uuid.New(), CustomerID: customerID}}, nil)

	_, err := fx.service.OrderQR(ctx, customerID, uuid.New())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
}
