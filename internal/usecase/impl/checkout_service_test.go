package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	mockService "storefront/internal/mocks/service"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type checkoutFixtures struct {
	service      usecase.CheckoutUsecase
	txManager    *mockRepo.MockTransactionManager
	vendorRepo   *mockRepo.MockVendorRepository
	resolver     *mockUsecase.MockResolverUsecase
	cart         *mockUsecase.MockCartUsecase
	publisher    *mockService.MockEventPublisher
	notification *mockService.MockNotificationService
}

func createTestCheckoutService(t *testing.T) checkoutFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	vendorRepo := mockRepo.NewMockVendorRepository(t)
	resolver := mockUsecase.NewMockResolverUsecase(t)
	cart := mockUsecase.NewMockCartUsecase(t)
	publisher := mockService.NewMockEventPublisher(t)
	notification := mockService.NewMockNotificationService(t)

	cfg := &config.Config{Checkout: &config.CheckoutConfig{CommitTimeout: 5 * time.Second}}

	service := NewCheckoutService(CheckoutServiceParams{
		TxManager:    txManager,
		VendorRepo:   vendorRepo,
		Resolver:     resolver,
		Cart:         cart,
		Publisher:    publisher,
		Notification: notification,
		Config:       cfg,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return checkoutFixtures{
		service:      service,
		txManager:    txManager,
		vendorRepo:   vendorRepo,
		resolver:     resolver,
		cart:         cart,
		publisher:    publisher,
		notification: notification,
	}
}

func signedInResolution(customerID uuid.UUID) entity.Resolution {
	return entity.Resolution{
		State:      entity.ResolutionResolved,
		Profile:    &entity.Profile{ID: customerID, IsBuyer: true},
		ActiveRole: entity.RoleBuyer,
	}
}

func cartLine(vendorID uuid.UUID, name string, price int64, qty int64) entity.CartItem {
	return entity.CartItem{
		Product: entity.ProductSnapshot{
			ProductID: uuid.New(),
			VendorID:  vendorID,
			Name:      name,
			UnitPrice: decimal.NewFromInt(price),
			UnitType:  entity.UnitPiece,
		},
		Quantity: decimal.NewFromInt(qty),
	}
}

// expectCommit wires one transaction round trip. keyMiss controls whether the
// idempotency lookup reports no prior order; captured orders get a fresh id
// the way the persistence layer would assign one.
func expectCommit(t *testing.T, fx checkoutFixtures, created *[]*entity.Order, failOn uuid.UUID) {
	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().NewOrderRepository().Return(mockOrderRepo)
			mockOrderRepo.EXPECT().
				FindByIdempotencyKey(mock.Anything, mock.AnythingOfType("string")).
				Return(nil, repository.ErrOrderNotFound)
			mockOrderRepo.EXPECT().
				Create(mock.Anything, mock.AnythingOfType("*entity.Order")).
				RunAndReturn(func(_ context.Context, order *entity.Order) error {
					if order.VendorID == failOn {
						return errors.New("deadline exceeded")
					}
					order.ID = uuid.New()
					*created = append(*created, order)

					return nil
				})
			mockOrderRepo.EXPECT().
				CreateLineItems(mock.Anything, mock.AnythingOfType("[]entity.OrderLineItem")).
				Return(nil).
				Maybe()

			return fn(mockFactory)
		})
}

func TestCheckoutService_TwoVendorsTwoOrders(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()

	customerID := uuid.New()
	vendorA := uuid.New()
	vendorB := uuid.New()

	// Interleaved vendors; group order follows first occurrence.
	snapshot := entity.NewCart([]entity.CartItem{
		cartLine(vendorA, "蘋果", 3, 2), // 6.00
		cartLine(vendorB, "麵包", 5, 1), // 5.00
		cartLine(vendorA, "香蕉", 4, 1), // 4.00
	})

	fx.resolver.EXPECT().Current().Return(signedInResolution(customerID))
	fx.cart.EXPECT().Snapshot().Return(snapshot)
	fx.cart.EXPECT().Clear().Return(nil)

	var created []*entity.Order
	expectCommit(t, fx, &created, uuid.Nil)

	fx.publisher.EXPECT().PublishOrderPlaced(mock.Anything, mock.Anything).Return(nil)
	fx.vendorRepo.EXPECT().
		FindAnyByProfileID(mock.Anything, mock.Anything).
		Return(nil, repository.ErrVendorNotFound)

	output, err := fx.service.Checkout(ctx, &usecase.CheckoutInput{ShippingAddress: "台北市中正區重慶南路一段122號"})
	require.NoError(t, err)
	require.Len(t, output.OrderIDs, 2)
	assert.Equal(t, 2, output.VendorCount)
	assert.True(t, output.Total.Equal(decimal.NewFromInt(15)))

	require.Len(t, created, 2)
	assert.Equal(t, vendorA, created[0].VendorID)
	assert.Equal(t, vendorB, created[1].VendorID)
	assert.True(t, created[0].TotalPrice.Equal(decimal.NewFromInt(10)))
	assert.True(t, created[1].TotalPrice.Equal(decimal.NewFromInt(5)))
	assert.Equal(t, entity.OrderStatusPending, created[0].Status)
	assert.Len(t, created[0].LineItems, 2)
	assert.NotEmpty(t, created[0].IdempotencyKey)
	assert.NotEqual(t, created[0].IdempotencyKey, created[1].IdempotencyKey)
}

func TestCheckoutService_SecondVendorFails_FirstStaysCommitted(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()

	customerID := uuid.New()
	vendorA := uuid.New()
	vendorB := uuid.New()

	snapshot := entity.NewCart([]entity.CartItem{
		cartLine(vendorA, "蘋果", 3, 2),
		cartLine(vendorB, "麵包", 5, 1),
	})

	fx.resolver.EXPECT().Current().Return(signedInResolution(customerID))
	fx.cart.EXPECT().Snapshot().Return(snapshot)
	// No Clear expectation: the cart must stay intact on abort.

	var created []*entity.Order
	expectCommit(t, fx, &created, vendorB)

	output, err := fx.service.Checkout(ctx, &usecase.CheckoutInput{ShippingAddress: "台北市大安區和平東路二段100號"})
	require.Error(t, err)
	assert.Nil(t, output)

	var checkoutErr *usecase.CheckoutError
	require.True(t, errors.As(err, &checkoutErr))
	assert.Equal(t, []uuid.UUID{vendorA}, checkoutErr.CommittedVendorIDs)
	assert.Equal(t, vendorB, checkoutErr.FailedVendorID)

	require.Len(t, created, 1)
	assert.Equal(t, vendorA, created[0].VendorID)
}

func TestCheckoutService_RetrySkipsCommittedGroup(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()

	customerID := uuid.New()
	vendorA := uuid.New()
	vendorB := uuid.New()

	snapshot := entity.NewCart([]entity.CartItem{
		cartLine(vendorA, "蘋果", 3, 2),
		cartLine(vendorB, "麵包", 5, 1),
	})

	existingOrder := &entity.Order{
		ID:         uuid.New(),
		CustomerID: customerID,
		VendorID:   vendorA,
		TotalPrice: decimal.NewFromInt(6),
		Status:     entity.OrderStatusPending,
	}

	fx.resolver.EXPECT().Current().Return(signedInResolution(customerID))
	fx.cart.EXPECT().Snapshot().Return(snapshot)
	fx.cart.EXPECT().Clear().Return(nil)

	var created []*entity.Order
	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().NewOrderRepository().Return(mockOrderRepo)
			// Vendor A committed on the previous attempt; vendor B is new.
			mockOrderRepo.EXPECT().
				FindByIdempotencyKey(mock.Anything, mock.AnythingOfType("string")).
				RunAndReturn(func(_ context.Context, key string) (*entity.Order, error) {
					if key == idempotencyKey(customerID, vendorA, snapshot.Fingerprint()) {
						return existingOrder, nil
					}

					return nil, repository.ErrOrderNotFound
				})
			mockOrderRepo.EXPECT().
				Create(mock.Anything, mock.AnythingOfType("*entity.Order")).
				RunAndReturn(func(_ context.Context, order *entity.Order) error {
					order.ID = uuid.New()
					created = append(created, order)

					return nil
				}).
				Maybe()
			mockOrderRepo.EXPECT().
				CreateLineItems(mock.Anything, mock.AnythingOfType("[]entity.OrderLineItem")).
				Return(nil).
				Maybe()

			return fn(mockFactory)
		})

	fx.publisher.EXPECT().PublishOrderPlaced(mock.Anything, mock.Anything).Return(nil)
	fx.vendorRepo.EXPECT().
		FindAnyByProfileID(mock.Anything, mock.Anything).
		Return(nil, repository.ErrVendorNotFound)

	output, err := fx.service.Checkout(ctx, &usecase.CheckoutInput{ShippingAddress: "台北市信義區市府路45號"})
	require.NoError(t, err)
	require.Len(t, output.OrderIDs, 2)
	assert.Contains(t, output.OrderIDs, existingOrder.ID)

	// Only vendor B's order was written on the retry.
	require.Len(t, created, 1)
	assert.Equal(t, vendorB, created[0].VendorID)
}

func TestCheckoutService_RejectsCartItemsWithoutVendor(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()

	customerID := uuid.New()
	orphan := cartLine(uuid.Nil, "孤兒商品", 10, 1)
	snapshot := entity.NewCart([]entity.CartItem{
		cartLine(uuid.New(), "蘋果", 3, 2),
		orphan,
	})

	fx.resolver.EXPECT().Current().Return(signedInResolution(customerID))
	fx.cart.EXPECT().Snapshot().Return(snapshot)

	output, err := fx.service.Checkout(ctx, &usecase.CheckoutInput{ShippingAddress: "台北市中山區南京東路三段219號"})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrCartItemWithoutVendor))
}

func TestCheckoutService_RequiresSignedInIdentity(t *testing.T) {
	fx := createTestCheckoutService(t)

	fx.resolver.EXPECT().Current().Return(entity.Resolution{State: entity.ResolutionSignedOut})

	output, err := fx.service.Checkout(context.Background(), &usecase.CheckoutInput{ShippingAddress: "somewhere"})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrCheckoutNotSignedIn))
}

func TestCheckoutService_DegradedIdentityMayCheckout(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()

	customerID := uuid.New()
	vendorA := uuid.New()
	snapshot := entity.NewCart([]entity.CartItem{cartLine(vendorA, "蘋果", 3, 1)})

	fx.resolver.EXPECT().Current().Return(entity.Resolution{
		State:      entity.ResolutionDegraded,
		Profile:    entity.NewDegradedProfile(customerID, "Degraded"),
		ActiveRole: entity.RoleSeller,
		Degraded:   true,
	})
	fx.cart.EXPECT().Snapshot().Return(snapshot)
	fx.cart.EXPECT().Clear().Return(nil)

	var created []*entity.Order
	expectCommit(t, fx, &created, uuid.Nil)

	fx.publisher.EXPECT().PublishOrderPlaced(mock.Anything, mock.Anything).Return(nil)
	fx.vendorRepo.EXPECT().
		FindAnyByProfileID(mock.Anything, vendorA).
		Return(nil, repository.ErrVendorNotFound)

	_, err := fx.service.Checkout(ctx, &usecase.CheckoutInput{ShippingAddress: "台北市萬華區西園路一段145號"})
	require.NoError(t, err)
	require.Len(t, created, 1)
	assert.Equal(t, customerID, created[0].CustomerID)
}

func TestCheckoutService_EmptyShippingAddress(t *testing.T) {
	fx := createTestCheckoutService(t)

	fx.resolver.EXPECT().Current().Return(signedInResolution(uuid.New()))

	_, err := fx.service.Checkout(context.Background(), &usecase.CheckoutInput{ShippingAddress: "   "})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrShippingAddressRequired))
}

func TestCheckoutService_EmptyCart(t *testing.T) {
	fx := createTestCheckoutService(t)

	fx.resolver.EXPECT().Current().Return(signedInResolution(uuid.New()))
	fx.cart.EXPECT().Snapshot().Return(entity.NewCart(nil))

	_, err := fx.service.Checkout(context.Background(), &usecase.CheckoutInput{ShippingAddress: "somewhere"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCartEmpty))
}

func TestCheckoutService_PublishFailureDoesNotFailCheckout(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()

	customerID := uuid.New()
	vendorA := uuid.New()
	snapshot := entity.NewCart([]entity.CartItem{cartLine(vendorA, "蘋果", 3, 1)})

	fx.resolver.EXPECT().Current().Return(signedInResolution(customerID))
	fx.cart.EXPECT().Snapshot().Return(snapshot)
	fx.cart.EXPECT().Clear().Return(nil)

	var created []*entity.Order
	expectCommit(t, fx, &created, uuid.Nil)

	fx.publisher.EXPECT().
		PublishOrderPlaced(mock.Anything, mock.Anything).
		Return(errors.New("broker unavailable"))
	fx.vendorRepo.EXPECT().
		FindAnyByProfileID(mock.Anything, vendorA).
		Return(&entity.VendorProfile{ProfileID: vendorA, Role: entity.RoleSeller, StoreName: "好鄰居超市", DeviceToken: "token-123"}, nil)
	fx.notification.EXPECT().
		SendSingleNotification(mock.Anything, "token-123", mock.AnythingOfType("string"), mock.AnythingOfType("string"), mock.Anything).
		Return(errors.New("fcm unavailable"))

	output, err := fx.service.Checkout(ctx, &usecase.CheckoutInput{ShippingAddress: "台北市士林區基河路130號"})
	require.NoError(t, err)
	assert.Len(t, output.OrderIDs, 1)
}
