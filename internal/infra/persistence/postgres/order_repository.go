package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the domain.OrderRepository interface using GORM.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// Create persists a new order and copies the generated id and creation
// timestamp back onto the entity. Checkout needs the id to attach line items
// within the same transaction.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateOrder
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "order references a missing customer or vendor")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt

	return nil
}

// CreateLineItems persists the line items of one order in a single insert.
func (repo *orderRepository) CreateLineItems(ctx context.Context, items []entity.OrderLineItem) error {
	if len(items) == 0 {
		return nil
	}

	itemMs := make([]model.OrderLineItemModel, 0, len(items))
	for i := range items {
		itemMs = append(itemMs, *fromOrderLineItemDomain(&items[i]))
	}

	if err := repo.db.WithContext(ctx).Create(&itemMs).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create order line items")
	}

	return nil
}

// FindByIdempotencyKey retrieves the order previously committed under the given key.
func (repo *orderRepository) FindByIdempotencyKey(ctx context.Context, key string) (*entity.Order, error) {
	var orderM model.OrderModel
	err := repo.db.WithContext(ctx).
		Where("idempotency_key = ?", key).
		First(&orderM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by idempotency key")
	}

	return toOrderDomain(&orderM), nil
}

// ListByCustomer retrieves a customer's orders, newest first, with line items.
func (repo *orderRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Order, error) {
	var orderMs []model.OrderModel
	err := repo.db.WithContext(ctx).
		Preload("LineItems").
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&orderMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders by customer")
	}

	orders := make([]*entity.Order, 0, len(orderMs))
	for i := range orderMs {
		orders = append(orders, toOrderDomain(&orderMs[i]))
	}

	return orders, nil
}

// --- Mapper Functions ---

// toOrderDomain converts a GORM OrderModel to a domain Order entity.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	lineItems := make([]entity.OrderLineItem, 0, len(data.LineItems))
	for i := range data.LineItems {
		lineItems = append(lineItems, *toOrderLineItemDomain(&data.LineItems[i]))
	}

	return &entity.Order{
		ID:              data.ID,
		CustomerID:      data.CustomerID,
		VendorID:        data.VendorID,
		TotalPrice:      data.TotalPrice,
		Status:          entity.OrderStatus(data.Status),
		ShippingAddress: data.ShippingAddress,
		IdempotencyKey:  data.IdempotencyKey,
		CreatedAt:       data.CreatedAt,
		LineItems:       lineItems,
	}
}

// fromOrderDomain converts a domain Order entity to a GORM OrderModel.
// Line items are persisted separately by CreateLineItems, so they are not
// carried here to keep GORM from cascading the insert.
func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	return &model.OrderModel{
		ID:              data.ID,
		CustomerID:      data.CustomerID,
		VendorID:        data.VendorID,
		TotalPrice:      data.TotalPrice,
		Status:          string(data.Status),
		ShippingAddress: data.ShippingAddress,
		IdempotencyKey:  data.IdempotencyKey,
		CreatedAt:       data.CreatedAt,
	}
}

// toOrderLineItemDomain converts a GORM OrderLineItemModel to a domain entity.
func toOrderLineItemDomain(data *model.OrderLineItemModel) *entity.OrderLineItem {
	if data == nil {
		return nil
	}

	return &entity.OrderLineItem{
		ID:              data.ID,
		OrderID:         data.OrderID,
		ProductID:       data.ProductID,
		Quantity:        data.Quantity,
		PriceAtPurchase: data.PriceAtPurchase,
	}
}

// fromOrderLineItemDomain converts a domain OrderLineItem to a GORM model.
func fromOrderLineItemDomain(data *entity.OrderLineItem) *model.OrderLineItemModel {
	if data == nil {
		return nil
	}

	return &model.OrderLineItemModel{
		ID:              data.ID,
		OrderID:         data.OrderID,
		ProductID:       data.ProductID,
		Quantity:        data.Quantity,
		PriceAtPurchase: data.PriceAtPurchase,
	}
}
