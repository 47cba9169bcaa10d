package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	productRepo repository.ProductRepository
	imageStore  service.ImageStore
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	ImageStore  service.ImageStore
	Logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		productRepo: params.ProductRepo,
		imageStore:  params.ImageStore,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListProducts returns active products, optionally filtered by category.
func (srv *catalogService) ListProducts(ctx context.Context, category string) ([]*entity.Product, error) {
	products, err := srv.productRepo.ListActive(ctx, category)
	if err != nil {
		srv.log(ctx).Error("Failed to list products", slog.String("category", category), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list active products")
	}

	return products, nil
}

// GetProduct returns one product by id.
func (srv *catalogService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "product does not exist")
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

// ListVendorProducts returns a vendor's own products, active or not.
func (srv *catalogService) ListVendorProducts(ctx context.Context, vendorID uuid.UUID) ([]*entity.Product, error) {
	products, err := srv.productRepo.ListByVendor(ctx, vendorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list vendor products")
	}

	return products, nil
}

// CreateProduct lists a new product for the vendor. The image, when present,
// is stored first so the product row carries its public URL from the start.
func (srv *catalogService) CreateProduct(ctx context.Context, vendorID uuid.UUID, input *usecase.CreateProductInput) (*entity.Product, error) {
	srv.log(ctx).Info("Creating product", slog.Any("vendorID", vendorID), slog.String("name", input.Name))

	product := &entity.Product{
		ID:            uuid.New(),
		VendorID:      vendorID,
		Name:          input.Name,
		Description:   input.Description,
		Category:      input.Category,
		UnitPrice:     input.UnitPrice,
		UnitType:      input.UnitType,
		StockQuantity: decimal.NewFromInt(int64(input.StockQuantity)),
		IsActive:      true,
	}

	if len(input.Image) > 0 {
		key := fmt.Sprintf("products/%s/%s", vendorID, product.ID)
		url, err := srv.imageStore.Save(ctx, key, input.Image, input.ImageType)
		if err != nil {
			srv.log(ctx).Error("Failed to store product image", slog.Any("productID", product.ID), slog.Any("error", err))

			return nil, errors.Wrap(err, "failed to store product image")
		}
		product.ImageURL = url
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	return product, nil
}
