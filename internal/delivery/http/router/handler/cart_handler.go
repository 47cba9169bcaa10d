package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// CartHandler exposes the local cart over HTTP.
type CartHandler struct {
	cart    usecase.CartUsecase
	catalog usecase.CatalogUsecase
	logger  *slog.Logger
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(cart usecase.CartUsecase, catalog usecase.CatalogUsecase, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		cart:    cart,
		catalog: catalog,
		logger:  logger,
	}
}

// cartDTO is the wire form of the cart with its derived totals.
type cartDTO struct {
	Items     []entity.CartItem `json:"items"`
	ItemCount decimal.Decimal   `json:"itemCount"`
	Total     decimal.Decimal   `json:"total"`
}

func (h *CartHandler) cartResponse() cartDTO {
	return cartDTO{
		Items:     h.cart.Items(),
		ItemCount: h.cart.ItemCount(),
		Total:     h.cart.Total(),
	}
}

// GetCart returns the cart lines and derived totals.
func (h *CartHandler) GetCart(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.cartResponse(), "Cart retrieved")
}

// addItemRequest is the payload for adding a product to the cart.
type addItemRequest struct {
	ProductID uuid.UUID       `json:"productId" validate:"required"`
	Quantity  decimal.Decimal `json:"quantity" validate:"required"`
}

// AddItem looks the product up in the catalog and merges its snapshot into
// the cart.
func (h *CartHandler) AddItem(c echo.Context) error {
	var req addItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart item input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	product, err := h.catalog.GetProduct(c.Request().Context(), req.ProductID)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.cart.Add(product.Snapshot(), req.Quantity); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.cartResponse(), "Item added to cart")
}

// setQuantityRequest is the payload for replacing a line's quantity.
type setQuantityRequest struct {
	Quantity decimal.Decimal `json:"quantity"`
}

// SetQuantity replaces a line's quantity; zero or less removes the line.
func (h *CartHandler) SetQuantity(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product id")
	}

	var req setQuantityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quantity input")
	}

	if err := h.cart.SetQuantity(productID, req.Quantity); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.cartResponse(), "Quantity updated")
}

// RemoveItem deletes the line for the product id.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product id")
	}

	if err := h.cart.Remove(productID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.cartResponse(), "Item removed from cart")
}

// ClearCart empties the cart.
func (h *CartHandler) ClearCart(c echo.Context) error {
	if err := h.cart.Clear(); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.cartResponse(), "Cart cleared")
}
