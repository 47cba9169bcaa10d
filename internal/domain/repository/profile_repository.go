// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProfileNotFound is a domain-specific error returned when no profile row
// exists for an identity id.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository defines the standard operations for profile persistence.
// The application layer depends on this interface, not the concrete implementation.
type ProfileRepository interface {
	// FindByIdentityID performs the point read the resolver races against
	// its timeout.
	FindByIdentityID(ctx context.Context, identityID uuid.UUID) (*entity.Profile, error)

	// Insert persists a new profile row. Used at sign-up and by the
	// resolver's self-repair path.
	Insert(ctx context.Context, profile *entity.Profile) error

	// Update modifies an existing profile row, e.g. when a user activates
	// an additional role. Profiles are never deleted by this client.
	Update(ctx context.Context, profile *entity.Profile) error
}
