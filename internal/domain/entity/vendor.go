package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// VendorProfile holds the data specific to a vendor role (retail seller or
// wholesale supplier). One row exists per enabled vendor role, keyed by the
// owning profile id.
type VendorProfile struct {
	ProfileID   uuid.UUID  // Foreign key linking this vendor profile to a core Profile.
	Role        Role       // RoleSeller or RoleSupplier.
	StoreName   string     // Store name for sellers, company name for suppliers.
	Description string     // A short description of the store or company.
	Location    *orb.Point // Store coordinates (lon, lat); nil when the vendor has not set them.
	DeviceToken string     // Push notification token of the vendor's dashboard device, if registered.
	UpdatedAt   time.Time  // Timestamp of the last modification to this vendor profile.
}
