// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the role-aware identity record backing a signed-in account.
// The three role flags gate which storefront surfaces (buying, selling,
// supplying) are available; a usable profile has at least one flag set.
type Profile struct {
	ID          uuid.UUID // Identity id issued by the identity backend; primary key of the profile row.
	DisplayName string    // The user's display name shown across the storefront.
	IsBuyer     bool      // Whether the buyer (consumer) surfaces are enabled.
	IsSeller    bool      // Whether the retail seller surfaces are enabled.
	IsSupplier  bool      // Whether the wholesale supplier surfaces are enabled.
	CreatedAt   time.Time // Timestamp of when this profile was created.
	UpdatedAt   time.Time // Timestamp of the last modification to this profile.
}

// NewDefaultProfile builds the minimal profile inserted by the resolver's
// self-repair path: buyer only, nothing else enabled.
func NewDefaultProfile(identityID uuid.UUID, displayName string) *Profile {
	return &Profile{
		ID:          identityID,
		DisplayName: displayName,
		IsBuyer:     true,
	}
}

// NewDegradedProfile builds the synthesized profile used when resolution
// times out or the backend is unreachable. All role flags are enabled so the
// UI stays usable; the profile is never written back. See the degraded-state
// caveat in DESIGN.md before relying on these flags for authorization.
func NewDegradedProfile(identityID uuid.UUID, displayName string) *Profile {
	return &Profile{
		ID:          identityID,
		DisplayName: displayName,
		IsBuyer:     true,
		IsSeller:    true,
		IsSupplier:  true,
	}
}

// Roles returns the roles enabled on this profile.
func (p *Profile) Roles() Roles {
	var roles Roles
	if p.IsBuyer {
		roles = append(roles, RoleBuyer)
	}
	if p.IsSeller {
		roles = append(roles, RoleSeller)
	}
	if p.IsSupplier {
		roles = append(roles, RoleSupplier)
	}

	return roles
}

// HasRole reports whether the given role is enabled on this profile.
func (p *Profile) HasRole(role Role) bool {
	switch role {
	case RoleBuyer:
		return p.IsBuyer
	case RoleSeller:
		return p.IsSeller
	case RoleSupplier:
		return p.IsSupplier
	default:
		return false
	}
}

// Usable reports whether at least one role flag is enabled.
func (p *Profile) Usable() bool {
	return p.IsBuyer || p.IsSeller || p.IsSupplier
}

// DefaultActiveRole derives the initial active role from the profile's
// flags using the fixed precedence seller > supplier > buyer. A profile
// with no flags still defaults to buyer.
func (p *Profile) DefaultActiveRole() Role {
	for _, role := range rolePrecedence {
		if p.HasRole(role) {
			return role
		}
	}

	return RoleBuyer
}

// EnableRole switches on the flag for the given role. Unknown roles are ignored.
func (p *Profile) EnableRole(role Role) {
	switch role {
	case RoleBuyer:
		p.IsBuyer = true
	case RoleSeller:
		p.IsSeller = true
	case RoleSupplier:
		p.IsSupplier = true
	}
}
