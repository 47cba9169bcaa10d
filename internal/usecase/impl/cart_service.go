package impl

import (
	"log/slog"
	"sync"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// cartService implements the CartUsecase interface. It is the single writer
// of the cart: all mutations run under one mutex and mirror the full item
// list into durable local storage before returning. Reads recompute derived
// values from the in-memory cart, which storage only seeds at startup.
type cartService struct {
	mu      sync.Mutex
	cart    *entity.Cart
	storage repository.CartStorage
	logger  *slog.Logger
}

// CartServiceParams holds dependencies for cartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	Storage repository.CartStorage
	Logger  *slog.Logger
}

// NewCartService restores the persisted cart and returns the service. A
// corrupt or missing mirror degrades to an empty cart rather than failing
// startup; the next successful save rewrites it.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	items, err := params.Storage.Load()
	if err != nil {
		params.Logger.Warn("Failed to restore cart mirror, starting empty", slog.Any("error", err))
		items = nil
	}

	return &cartService{
		cart:    entity.NewCart(items),
		storage: params.Storage,
		logger:  params.Logger,
	}
}

// mirror persists the current item list. Called with the mutex held.
func (srv *cartService) mirror() error {
	if err := srv.storage.Save(srv.cart.Items()); err != nil {
		srv.logger.Error("Failed to mirror cart to local storage", slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrCartStorageFailed, err.Error())
	}

	return nil
}

// Add merges the quantity into an existing line or appends a new one.
func (srv *cartService) Add(product entity.ProductSnapshot, qty decimal.Decimal) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if err := srv.cart.Add(product, qty); err != nil {
		return errors.Wrap(domainerrors.ErrCartQuantityInvalid, err.Error())
	}

	return srv.mirror()
}

// Remove deletes the line for the product id.
func (srv *cartService) Remove(productID uuid.UUID) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.cart.Remove(productID)

	return srv.mirror()
}

// SetQuantity replaces a line's quantity; qty <= 0 behaves like Remove.
func (srv *cartService) SetQuantity(productID uuid.UUID, qty decimal.Decimal) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if err := srv.cart.SetQuantity(productID, qty); err != nil {
		return errors.Wrap(domainerrors.ErrCartQuantityInvalid, err.Error())
	}

	return srv.mirror()
}

// Clear empties the cart.
func (srv *cartService) Clear() error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.cart.Clear()

	return srv.mirror()
}

// Items returns the cart lines in storage order.
func (srv *cartService) Items() []entity.CartItem {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.cart.Items()
}

// ItemCount returns the sum of all quantities.
func (srv *cartService) ItemCount() decimal.Decimal {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.cart.ItemCount()
}

// Total returns the sum of all line subtotals.
func (srv *cartService) Total() decimal.Decimal {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.cart.Total()
}

// Snapshot returns an independent copy for checkout to iterate without
// racing later mutations.
func (srv *cartService) Snapshot() *entity.Cart {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return entity.NewCart(srv.cart.Items())
}
