// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the type of role a profile can act as in the marketplace.
type Role string

const (
	// RoleBuyer indicates a consumer buying from retail sellers.
	RoleBuyer Role = "buyer"
	// RoleSeller indicates a retail seller running a storefront.
	RoleSeller Role = "seller"
	// RoleSupplier indicates a wholesale supplier selling to sellers.
	RoleSupplier Role = "supplier"
)

// rolePrecedence is the fixed order used when deriving the initial active
// role from a profile's flags: seller > supplier > buyer.
var rolePrecedence = []Role{RoleSeller, RoleSupplier, RoleBuyer}

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleBuyer, RoleSeller, RoleSupplier:
		return true
	default:
		return false
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings converts Roles to []string for JWT compatibility.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// RolesFromStrings converts []string to Roles, filtering out invalid role strings.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		role := Role(s)
		if role.IsValid() {
			result = append(result, role)
		}
	}

	return result
}
