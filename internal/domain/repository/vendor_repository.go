package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrVendorNotFound is returned when no vendor profile exists for a profile id and role.
var ErrVendorNotFound = errors.New("vendor profile not found")

// VendorRepository defines persistence operations for seller/supplier profiles.
type VendorRepository interface {
	// FindByProfileID retrieves the vendor profile for the given owner and role.
	FindByProfileID(ctx context.Context, profileID uuid.UUID, role entity.Role) (*entity.VendorProfile, error)

	// FindAnyByProfileID retrieves the vendor profile for the given owner
	// regardless of role; used when notifying the vendor behind an order.
	FindAnyByProfileID(ctx context.Context, profileID uuid.UUID) (*entity.VendorProfile, error)

	// Insert persists a new vendor profile.
	Insert(ctx context.Context, vendor *entity.VendorProfile) error
}
