package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductModel mirrors the 'products' table.
type ProductModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key"`
	VendorID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name          string          `gorm:"type:varchar(100);not null"`
	Description   string          `gorm:"type:text"`
	Category      string          `gorm:"type:varchar(50);index"`
	UnitPrice     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	UnitType      string          `gorm:"type:varchar(10);not null"`
	StockQuantity decimal.Decimal `gorm:"type:numeric(12,3);not null"`
	ImageURL      string          `gorm:"type:varchar(500)"`
	IsActive      bool            `gorm:"not null;default:true;index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
