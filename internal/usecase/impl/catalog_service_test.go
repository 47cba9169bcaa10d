package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	mockService "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type catalogFixtures struct {
	service     usecase.CatalogUsecase
	productRepo *mockRepo.MockProductRepository
	imageStore  *mockService.MockImageStore
}

func createTestCatalogService(t *testing.T) catalogFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)
	imageStore := mockService.NewMockImageStore(t)

	svc := NewCatalogService(CatalogServiceParams{
		ProductRepo: productRepo,
		ImageStore:  imageStore,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return catalogFixtures{service: svc, productRepo: productRepo, imageStore: imageStore}
}

func TestCatalogService_ListProducts(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	products := []*entity.Product{
		{ID: uuid.New(), Name: "蘋果", Category: "水果"},
		{ID: uuid.New(), Name: "香蕉", Category: "水果"},
	}
	fx.productRepo.EXPECT().ListActive(ctx, "水果").Return(products, nil)

	got, err := fx.service.ListProducts(ctx, "水果")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestCatalogService_GetProduct_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	id := uuid.New()
	fx.productRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrProductNotFound)

	_, err := fx.service.GetProduct(ctx, id)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestCatalogService_CreateProduct_WithImage(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	vendorID := uuid.New()
	image := []byte{0x89, 0x50, 0x4e, 0x47}

	fx.imageStore.EXPECT().
		Save(ctx, mock.AnythingOfType("string"), image, "image/png").
		Return("https://cdn.example.com/products/abc.png", nil)
	fx.productRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(p *entity.Product) bool {
			return p.VendorID == vendorID && p.IsActive && p.ImageURL != ""
		})).
		Return(nil)

	product, err := fx.service.CreateProduct(ctx, vendorID, &usecase.CreateProductInput{
		Name:          "有機蘋果",
		Description:   "產地直送",
		Category:      "水果",
		UnitPrice:     decimal.NewFromInt(45),
		UnitType:      entity.UnitPiece,
		StockQuantity: 100,
		Image:         image,
		ImageType:     "image/png",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/products/abc.png", product.ImageURL)
	assert.True(t, product.StockQuantity.Equal(decimal.NewFromInt(100)))
}

func TestCatalogService_CreateProduct_WithoutImage(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	vendorID := uuid.New()
	fx.productRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(p *entity.Product) bool {
			return p.ImageURL == ""
		})).
		Return(nil)

	product, err := fx.service.CreateProduct(ctx, vendorID, &usecase.CreateProductInput{
		Name:          "香蕉",
		Category:      "水果",
		UnitPrice:     decimal.NewFromInt(15),
		UnitType:      entity.UnitPiece,
		StockQuantity: 30,
	})
	require.NoError(t, err)
	assert.Empty(t, product.ImageURL)
}

func TestCatalogService_CreateProduct_ImageStoreFailure(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.imageStore.EXPECT().
		Save(ctx, mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("bucket unreachable"))

	_, err := fx.service.CreateProduct(ctx, uuid.New(), &usecase.CreateProductInput{
		Name:          "壞掉的圖",
		UnitPrice:     decimal.NewFromInt(10),
		UnitType:      entity.UnitPiece,
		StockQuantity: 1,
		Image:         []byte{0x01},
		ImageType:     "image/jpeg",
	})
	require.Error(t, err)
}
