package impl

import (
	"io"
	"log/slog"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type cartFixtures struct {
	service usecase.CartUsecase
	storage *mockRepo.MockCartStorage
}

func createTestCartService(t *testing.T, restored []entity.CartItem, restoreErr error) cartFixtures {
	storage := mockRepo.NewMockCartStorage(t)
	storage.EXPECT().Load().Return(restored, restoreErr).Once()

	service := NewCartService(CartServiceParams{
		Storage: storage,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return cartFixtures{service: service, storage: storage}
}

func pieceProduct(name string, price int64) entity.ProductSnapshot {
	return entity.ProductSnapshot{
		ProductID: uuid.New(),
		VendorID:  uuid.New(),
		Name:      name,
		UnitPrice: decimal.NewFromInt(price),
		UnitType:  entity.UnitPiece,
	}
}

func TestCartService_AddMergesByProductID(t *testing.T) {
	fx := createTestCartService(t, nil, nil)
	fx.storage.EXPECT().Save(mock.Anything).Return(nil)

	apple := pieceProduct("蘋果", 30)
	banana := pieceProduct("香蕉", 15)

	require.NoError(t, fx.service.Add(apple, decimal.NewFromInt(2)))
	require.NoError(t, fx.service.Add(banana, decimal.NewFromInt(1)))
	require.NoError(t, fx.service.Add(apple, decimal.NewFromInt(3)))

	items := fx.service.Items()
	require.Len(t, items, 2)
	assert.Equal(t, apple.ProductID, items[0].Product.ProductID)
	assert.True(t, items[0].Quantity.Equal(decimal.NewFromInt(5)))
	assert.True(t, fx.service.ItemCount().Equal(decimal.NewFromInt(6)))
	assert.True(t, fx.service.Total().Equal(decimal.NewFromInt(165)))
}

func TestCartService_SetQuantityZeroRemovesLine(t *testing.T) {
	fx := createTestCartService(t, nil, nil)
	fx.storage.EXPECT().Save(mock.Anything).Return(nil)

	apple := pieceProduct("蘋果", 30)
	require.NoError(t, fx.service.Add(apple, decimal.NewFromInt(2)))
	require.NoError(t, fx.service.SetQuantity(apple.ProductID, decimal.Zero))

	assert.Empty(t, fx.service.Items())
	assert.True(t, fx.service.Total().IsZero())
}

func TestCartService_InvalidQuantityRejected(t *testing.T) {
	fx := createTestCartService(t, nil, nil)

	apple := pieceProduct("蘋果", 30)
	err := fx.service.Add(apple, decimal.NewFromFloat(1.5))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCartQuantityInvalid))

	// Weight-priced products accept fractional quantities.
	fx.storage.EXPECT().Save(mock.Anything).Return(nil)
	pork := entity.ProductSnapshot{
		ProductID: uuid.New(),
		VendorID:  uuid.New(),
		Name:      "豬肉",
		UnitPrice: decimal.NewFromInt(220),
		UnitType:  entity.UnitKilogram,
	}
	require.NoError(t, fx.service.Add(pork, decimal.NewFromFloat(0.5)))
}

func TestCartService_EveryMutationMirrorsToStorage(t *testing.T) {
	fx := createTestCartService(t, nil, nil)

	var saved [][]entity.CartItem
	fx.storage.EXPECT().Save(mock.Anything).
		RunAndReturn(func(items []entity.CartItem) error {
			saved = append(saved, items)

			return nil
		})

	apple := pieceProduct("蘋果", 30)
	require.NoError(t, fx.service.Add(apple, decimal.NewFromInt(1)))
	require.NoError(t, fx.service.SetQuantity(apple.ProductID, decimal.NewFromInt(4)))
	require.NoError(t, fx.service.Remove(apple.ProductID))
	require.NoError(t, fx.service.Clear())

	require.Len(t, saved, 4)
	assert.Len(t, saved[0], 1)
	assert.True(t, saved[1][0].Quantity.Equal(decimal.NewFromInt(4)))
	assert.Empty(t, saved[2])
	assert.Empty(t, saved[3])
}

func TestCartService_RestoresMirrorAtStartup(t *testing.T) {
	apple := pieceProduct("蘋果", 30)
	restored := []entity.CartItem{{Product: apple, Quantity: decimal.NewFromInt(3)}}

	fx := createTestCartService(t, restored, nil)

	items := fx.service.Items()
	require.Len(t, items, 1)
	assert.Equal(t, apple.ProductID, items[0].Product.ProductID)
	assert.True(t, fx.service.Total().Equal(decimal.NewFromInt(90)))
}

func TestCartService_CorruptMirrorStartsEmpty(t *testing.T) {
	fx := createTestCartService(t, nil, errors.New("unexpected end of JSON input"))

	assert.Empty(t, fx.service.Items())

	// The service still works and rewrites the mirror on the next mutation.
	fx.storage.EXPECT().Save(mock.Anything).Return(nil)
	require.NoError(t, fx.service.Add(pieceProduct("蘋果", 30), decimal.NewFromInt(1)))
}

func TestCartService_StorageFailureSurfaces(t *testing.T) {
	fx := createTestCartService(t, nil, nil)
	fx.storage.EXPECT().Save(mock.Anything).Return(errors.New("disk full"))

	err := fx.service.Add(pieceProduct("蘋果", 30), decimal.NewFromInt(1))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCartStorageFailed))
}

func TestCartService_SnapshotIsIndependentCopy(t *testing.T) {
	fx := createTestCartService(t, nil, nil)
	fx.storage.EXPECT().Save(mock.Anything).Return(nil)

	apple := pieceProduct("蘋果", 30)
	require.NoError(t, fx.service.Add(apple, decimal.NewFromInt(2)))

	snapshot := fx.service.Snapshot()
	require.NoError(t, fx.service.Clear())

	assert.Equal(t, 1, snapshot.Len())
	assert.Empty(t, fx.service.Items())
}
