package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderModel mirrors the 'orders' table. The idempotency key is unique:
// a retried checkout attempt that races an earlier one loses on insert and
// reads the winner back instead.
type OrderModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CustomerID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	VendorID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	TotalPrice      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Status          string          `gorm:"type:varchar(20);not null"`
	ShippingAddress string          `gorm:"type:varchar(500);not null"`
	IdempotencyKey  string          `gorm:"type:char(64);unique;not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	LineItems []OrderLineItemModel `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderLineItemModel mirrors the 'order_line_items' table.
type OrderLineItemModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID       uuid.UUID       `gorm:"type:uuid;not null"`
	Quantity        decimal.Decimal `gorm:"type:numeric(12,3);not null"`
	PriceAtPurchase decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	CreatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderLineItemModel) TableName() string {
	return "order_line_items"
}
