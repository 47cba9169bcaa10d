package handler

import (
	"encoding/base64"
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// CatalogHandler exposes catalog browsing and vendor listing management.
type CatalogHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListProducts returns active products, optionally filtered by ?category=.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	products, err := h.uc.ListProducts(c.Request().Context(), c.QueryParam("category"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "Products retrieved")
}

// GetProduct returns one product by id.
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product id")
	}

	product, err := h.uc.GetProduct(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product retrieved")
}

// ListVendorProducts returns the signed-in vendor's own products.
func (h *CatalogHandler) ListVendorProducts(c echo.Context) error {
	vendorID, ok := c.Get(middleware.KeyIdentityID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid identity in token")
	}

	products, err := h.uc.ListVendorProducts(c.Request().Context(), vendorID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "Vendor products retrieved")
}

// createProductRequest is the wire payload for listing a product. The image
// is carried as base64 so the whole listing fits one JSON request.
type createProductRequest struct {
	Name          string          `json:"name" validate:"required,min=1,max=200"`
	Description   string          `json:"description" validate:"max=2000"`
	Category      string          `json:"category" validate:"max=100"`
	UnitPrice     decimal.Decimal `json:"unitPrice" validate:"required"`
	UnitType      entity.UnitType `json:"unitType" validate:"required,oneof=unit kg"`
	StockQuantity int             `json:"stockQuantity" validate:"gte=0"`
	ImageBase64   string          `json:"imageBase64,omitempty"`
	ImageType     string          `json:"imageType,omitempty" validate:"omitempty,oneof=image/png image/jpeg image/webp"`
}

// CreateProduct lists a new product for the signed-in vendor.
func (h *CatalogHandler) CreateProduct(c echo.Context) error {
	vendorID, ok := c.Get(middleware.KeyIdentityID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid identity in token")
	}

	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input := &usecase.CreateProductInput{
		Name:          req.Name,
		Description:   req.Description,
		Category:      req.Category,
		UnitPrice:     req.UnitPrice,
		UnitType:      req.UnitType,
		StockQuantity: req.StockQuantity,
	}
	if req.ImageBase64 != "" {
		image, err := base64.StdEncoding.DecodeString(req.ImageBase64)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Image is not valid base64")
		}
		input.Image = image
		input.ImageType = req.ImageType
	}

	product, err := h.uc.CreateProduct(c.Request().Context(), vendorID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, product, "Product listed successfully")
}
