// Package model contains the GORM persistence models mirroring the
// storefront's PostgreSQL schema.
package model

import (
	"time"

	"github.com/google/uuid"
)

// ProfileModel mirrors the 'profiles' table. The primary key is the identity
// id issued by the identity backend, not a locally generated one.
type ProfileModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	DisplayName string    `gorm:"type:varchar(100);not null"`
	IsBuyer     bool      `gorm:"not null;default:false"`
	IsSeller    bool      `gorm:"not null;default:false"`
	IsSupplier  bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	VendorProfiles []VendorProfileModel `gorm:"foreignKey:ProfileID"`
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}

// VendorProfileModel mirrors the 'vendor_profiles' table. One row exists per
// enabled vendor role (seller or supplier) of a profile.
type VendorProfileModel struct {
	ProfileID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Role        string    `gorm:"type:varchar(20);primaryKey"`
	StoreName   string    `gorm:"type:varchar(100);not null"`
	Description string    `gorm:"type:text"`
	Longitude   *float64
	Latitude    *float64
	DeviceToken string `gorm:"type:varchar(255)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (VendorProfileModel) TableName() string {
	return "vendor_profiles"
}
