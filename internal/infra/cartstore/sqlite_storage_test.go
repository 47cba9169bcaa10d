package cartstore

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func createTestStorage(t *testing.T) repository.CartStorage {
	cfg := &config.Config{Cart: &config.CartConfig{
		StoragePath: filepath.Join(t.TempDir(), "cart.db"),
	}}

	storage, err := New(Params{
		Lifecycle: fxtest.NewLifecycle(t),
		Config:    cfg,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	return storage
}

func testItem(name string, price, qty int64) entity.CartItem {
	return entity.CartItem{
		Product: entity.ProductSnapshot{
			ProductID: uuid.New(),
			VendorID:  uuid.New(),
			Name:      name,
			UnitPrice: decimal.NewFromInt(price),
			UnitType:  entity.UnitPiece,
		},
		Quantity: decimal.NewFromInt(qty),
	}
}

func TestSqliteStorage_EmptyStoreLoadsNothing(t *testing.T) {
	storage := createTestStorage(t)

	items, err := storage.Load()
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestSqliteStorage_SaveAndLoadPreservesOrder(t *testing.T) {
	storage := createTestStorage(t)

	saved := []entity.CartItem{
		testItem("蘋果", 30, 2),
		testItem("香蕉", 15, 6),
		testItem("麵包", 45, 1),
	}
	require.NoError(t, storage.Save(saved))

	loaded, err := storage.Load()
	require.NoError(t, err)
	require.Len(t, loaded, 3)
	for i := range saved {
		assert.Equal(t, saved[i].Product.ProductID, loaded[i].Product.ProductID)
		assert.True(t, saved[i].Quantity.Equal(loaded[i].Quantity))
		assert.True(t, saved[i].Product.UnitPrice.Equal(loaded[i].Product.UnitPrice))
	}
}

func TestSqliteStorage_SaveReplacesPreviousContents(t *testing.T) {
	storage := createTestStorage(t)

	require.NoError(t, storage.Save([]entity.CartItem{testItem("蘋果", 30, 2)}))

	replacement := []entity.CartItem{testItem("高麗菜", 25, 1)}
	require.NoError(t, storage.Save(replacement))

	loaded, err := storage.Load()
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "高麗菜", loaded[0].Product.Name)
}

func TestSqliteStorage_SaveEmptyClearsStore(t *testing.T) {
	storage := createTestStorage(t)

	require.NoError(t, storage.Save([]entity.CartItem{testItem("蘋果", 30, 2)}))
	require.NoError(t, storage.Save(nil))

	loaded, err := storage.Load()
	require.NoError(t, err)
	assert.Empty(t, loaded)
}
