package impl

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"
	"storefront/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// checkoutService implements the CheckoutUsecase interface. One checkout
// turns the cart into one order per vendor, committed strictly sequentially:
// group i+1 does not start until group i's order and line items are durable.
// There is no cross-vendor transaction; instead every group commit is
// idempotent under a key derived from (customer, vendor, cart fingerprint),
// so a retry with an unchanged cart skips groups that already committed and
// only re-attempts the missing ones.
type checkoutService struct {
	txManager     repository.TransactionManager
	vendorRepo    repository.VendorRepository
	resolver      usecase.ResolverUsecase
	cart          usecase.CartUsecase
	publisher     service.EventPublisher
	notification  service.NotificationService
	commitTimeout time.Duration
	logger        *slog.Logger
}

// CheckoutServiceParams holds dependencies for checkoutService, injected by Fx.
type CheckoutServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	VendorRepo   repository.VendorRepository
	Resolver     usecase.ResolverUsecase
	Cart         usecase.CartUsecase
	Publisher    service.EventPublisher
	Notification service.NotificationService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewCheckoutService is the constructor for checkoutService.
func NewCheckoutService(params CheckoutServiceParams) usecase.CheckoutUsecase {
	return &checkoutService{
		txManager:     params.TxManager,
		vendorRepo:    params.VendorRepo,
		resolver:      params.Resolver,
		cart:          params.Cart,
		publisher:     params.Publisher,
		notification:  params.Notification,
		commitTimeout: params.Config.CommitTimeout(),
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *checkoutService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Checkout validates, partitions, and commits the current cart.
func (srv *checkoutService) Checkout(ctx context.Context, input *usecase.CheckoutInput) (*usecase.CheckoutOutput, error) {
	resolution := srv.resolver.Current()
	if !resolution.SignedIn() {
		return nil, errors.Wrap(domainerrors.ErrCheckoutNotSignedIn, "checkout requires a signed-in identity")
	}
	customerID := resolution.Profile.ID

	address := strings.TrimSpace(input.ShippingAddress)
	if address == "" {
		return nil, errors.Wrap(domainerrors.ErrShippingAddressRequired, "shipping address is empty")
	}

	// Read the cart once; later mutations do not affect this attempt.
	snapshot := srv.cart.Snapshot()
	if snapshot.Len() == 0 {
		return nil, errors.Wrap(domainerrors.ErrCartEmpty, "checkout on empty cart")
	}

	groups, orphans := snapshot.VendorGroups()
	if len(orphans) > 0 {
		// Items without a vendor cannot be committed to any order. Reject the
		// whole checkout instead of shrinking it; the customer removes or
		// replaces the lines and retries.
		ids := make([]string, 0, len(orphans))
		for _, item := range orphans {
			ids = append(ids, item.Product.ProductID.String())
		}
		srv.log(ctx).Warn("Rejecting checkout, cart contains items without a vendor",
			slog.Any("customerID", customerID),
			slog.Int("orphanCount", len(orphans)),
			slog.Any("productIDs", ids))

		return nil, errors.Wrapf(domainerrors.ErrCartItemWithoutVendor,
			"%d cart item(s) have no vendor", len(orphans))
	}

	srv.log(ctx).Info("Starting checkout",
		slog.Any("customerID", customerID),
		slog.Int("vendorCount", len(groups)),
		slog.String("total", snapshot.Total().String()))

	fingerprint := snapshot.Fingerprint()
	committed := make([]*entity.Order, 0, len(groups))

	for _, group := range groups {
		order, err := srv.commitVendorGroup(ctx, customerID, group, address, fingerprint)
		if err != nil {
			committedVendorIDs := make([]uuid.UUID, 0, len(committed))
			for _, done := range committed {
				committedVendorIDs = append(committedVendorIDs, done.VendorID)
			}
			srv.log(ctx).Error("Checkout aborted mid-loop",
				slog.Any("customerID", customerID),
				slog.Any("failedVendorID", group.VendorID),
				slog.Int("committedGroups", len(committedVendorIDs)),
				slog.Any("error", err))

			// Committed groups stay committed and the cart stays intact, so a
			// retry re-runs only the groups whose idempotency keys are unseen.
			return nil, &usecase.CheckoutError{
				CommittedVendorIDs: committedVendorIDs,
				FailedVendorID:     group.VendorID,
				Err:                err,
			}
		}
		committed = append(committed, order)
	}

	// Every group committed: clear the cart and fan out events. A failed
	// clear does not undo the checkout; it is logged and the stale mirror is
	// overwritten by the next mutation.
	if err := srv.cart.Clear(); err != nil {
		srv.log(ctx).Error("Failed to clear cart after successful checkout", slog.Any("error", err))
	}

	output := &usecase.CheckoutOutput{
		OrderIDs:    make([]uuid.UUID, 0, len(committed)),
		VendorCount: len(committed),
	}
	total := snapshot.Total()
	output.Total = total
	for _, order := range committed {
		output.OrderIDs = append(output.OrderIDs, order.ID)
		srv.publishOrderPlaced(ctx, order)
		srv.notifyVendor(ctx, order)
	}

	srv.log(ctx).Info("Checkout succeeded",
		slog.Any("customerID", customerID),
		slog.Int("orderCount", len(committed)),
		slog.String("total", total.String()))

	return output, nil
}

// commitVendorGroup commits one vendor's order and line items in a single
// transaction, bounded by the commit timeout. If a previous attempt already
// committed this group (same idempotency key), that order is returned and
// nothing is written.
func (srv *checkoutService) commitVendorGroup(
	ctx context.Context,
	customerID uuid.UUID,
	group entity.VendorGroup,
	address string,
	fingerprint string,
) (*entity.Order, error) {
	key := idempotencyKey(customerID, group.VendorID, fingerprint)

	commitCtx, cancel := context.WithTimeout(ctx, srv.commitTimeout)
	defer cancel()

	var committedOrder *entity.Order
	err := srv.txManager.Execute(commitCtx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.NewOrderRepository()

		existing, findErr := orderRepo.FindByIdempotencyKey(commitCtx, key)
		if findErr == nil {
			srv.log(ctx).Info("Vendor group already committed by a previous attempt, skipping",
				slog.Any("vendorID", group.VendorID),
				slog.Any("orderID", existing.ID))
			committedOrder = existing

			return nil
		}
		if !errors.Is(findErr, repository.ErrOrderNotFound) {
			return errors.Wrap(findErr, "failed to check idempotency key")
		}

		order := &entity.Order{
			CustomerID:      customerID,
			VendorID:        group.VendorID,
			TotalPrice:      group.Total(),
			Status:          entity.OrderStatusPending,
			ShippingAddress: address,
			IdempotencyKey:  key,
		}
		if createErr := orderRepo.Create(commitCtx, order); createErr != nil {
			return errors.Wrap(createErr, "failed to create order")
		}

		lineItems := make([]entity.OrderLineItem, 0, len(group.Items))
		for _, item := range group.Items {
			lineItems = append(lineItems, entity.OrderLineItem{
				OrderID:         order.ID,
				ProductID:       item.Product.ProductID,
				Quantity:        item.Quantity,
				PriceAtPurchase: item.Product.UnitPrice,
			})
		}
		if itemsErr := orderRepo.CreateLineItems(commitCtx, lineItems); itemsErr != nil {
			return errors.Wrap(itemsErr, "failed to create order line items")
		}
		order.LineItems = lineItems
		committedOrder = order

		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to commit order for vendor %s", group.VendorID)
	}

	return committedOrder, nil
}

// publishOrderPlaced emits the order event. Best effort: the order is
// already durable, so a publish failure is logged, not propagated.
func (srv *checkoutService) publishOrderPlaced(ctx context.Context, order *entity.Order) {
	event := &service.OrderPlacedEvent{
		OrderID:         order.ID.String(),
		CustomerID:      order.CustomerID.String(),
		VendorID:        order.VendorID.String(),
		TotalPrice:      order.TotalPrice.String(),
		LineItemCount:   len(order.LineItems),
		ShippingAddress: order.ShippingAddress,
		RequestID:       deliverycontext.GetRequestIDFromContext(ctx),
		PlacedAt:        time.Now(),
	}
	if err := srv.publisher.PublishOrderPlaced(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish order placed event",
			slog.Any("orderID", order.ID), slog.Any("error", err))
	}
}

// notifyVendor sends a push notification to the vendor's registered device,
// if any. Best effort.
func (srv *checkoutService) notifyVendor(ctx context.Context, order *entity.Order) {
	vendor, err := srv.vendorRepo.FindAnyByProfileID(ctx, order.VendorID)
	if err != nil {
		if !errors.Is(err, repository.ErrVendorNotFound) {
			srv.log(ctx).Warn("Failed to load vendor for notification",
				slog.Any("vendorID", order.VendorID), slog.Any("error", err))
		}

		return
	}
	if srv.notification == nil || vendor.DeviceToken == "" {
		return
	}

	body := fmt.Sprintf("新訂單金額 %s，共 %d 項商品", util.FormatPrice(order.TotalPrice), len(order.LineItems))
	if err := srv.notification.SendSingleNotification(ctx, vendor.DeviceToken, "收到新訂單", body, map[string]string{
		"orderId": order.ID.String(),
		"type":    "order_placed",
	}); err != nil {
		srv.log(ctx).Warn("Failed to send vendor notification",
			slog.Any("vendorID", order.VendorID), slog.Any("error", err))
	}
}

// idempotencyKey derives the per-group commit key. The same customer,
// vendor, and cart contents always yield the same key, which is what lets a
// retry skip already committed groups; any cart change yields fresh keys.
func idempotencyKey(customerID, vendorID uuid.UUID, cartFingerprint string) string {
	sum := sha256.Sum256([]byte(customerID.String() + "|" + vendorID.String() + "|" + cartFingerprint))

	return hex.EncodeToString(sum[:])
}
