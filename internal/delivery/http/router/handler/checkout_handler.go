package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CheckoutHandler exposes the multi-vendor checkout.
type CheckoutHandler struct {
	uc     usecase.CheckoutUsecase
	logger *slog.Logger
}

// NewCheckoutHandler is the constructor for CheckoutHandler, injected by Fx.
func NewCheckoutHandler(uc usecase.CheckoutUsecase, logger *slog.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		uc:     uc,
		logger: logger,
	}
}

// partialCheckoutDTO reports a checkout that stopped partway. Committed
// vendor groups stay committed and the cart is left intact for retry.
type partialCheckoutDTO struct {
	CommittedVendorIDs []uuid.UUID `json:"committedVendorIds"`
	FailedVendorID     uuid.UUID   `json:"failedVendorId"`
	Details            string      `json:"details"`
}

// Checkout commits one order per vendor in the cart.
func (h *CheckoutHandler) Checkout(c echo.Context) error {
	var input *usecase.CheckoutInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid checkout input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	output, err := h.uc.Checkout(c.Request().Context(), input)
	if err != nil {
		var checkoutErr *usecase.CheckoutError
		if errors.As(err, &checkoutErr) {
			h.logger.Warn("Checkout stopped partway",
				slog.String("failed_vendor_id", checkoutErr.FailedVendorID.String()),
				slog.Int("committed_count", len(checkoutErr.CommittedVendorIDs)),
			)

			return c.JSON(http.StatusConflict, response.Response{
				Success: false,
				Code:    http.StatusConflict,
				Message: "Checkout partially completed; retry to finish the remaining orders",
				Data: partialCheckoutDTO{
					CommittedVendorIDs: checkoutErr.CommittedVendorIDs,
					FailedVendorID:     checkoutErr.FailedVendorID,
					Details:            checkoutErr.Err.Error(),
				},
				Error: &response.ErrorInfo{
					Code:    "CHECKOUT_PARTIAL_FAILURE",
					Details: checkoutErr.Error(),
				},
			})
		}

		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Checkout completed")
}
