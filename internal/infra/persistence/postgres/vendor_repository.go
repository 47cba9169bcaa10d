package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// vendorRepository implements the domain.VendorRepository interface using GORM.
type vendorRepository struct {
	db *gorm.DB
}

// NewVendorRepository is the constructor for vendorRepository.
func NewVendorRepository(db *gorm.DB) repository.VendorRepository {
	return &vendorRepository{db: db}
}

// FindByProfileID retrieves the vendor profile for the given owner and role.
func (repo *vendorRepository) FindByProfileID(ctx context.Context, profileID uuid.UUID, role entity.Role) (*entity.VendorProfile, error) {
	var vendorM model.VendorProfileModel
	err := repo.db.WithContext(ctx).
		Where("profile_id = ? AND role = ?", profileID, string(role)).
		First(&vendorM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVendorNotFound
		}

		return nil, errors.Wrap(err, "failed to find vendor profile")
	}

	return toVendorDomain(&vendorM), nil
}

// FindAnyByProfileID retrieves one vendor profile for the given owner
// regardless of role. Sellers sort before suppliers for determinism.
func (repo *vendorRepository) FindAnyByProfileID(ctx context.Context, profileID uuid.UUID) (*entity.VendorProfile, error) {
	var vendorM model.VendorProfileModel
	err := repo.db.WithContext(ctx).
		Where("profile_id = ?", profileID).
		Order("role ASC").
		First(&vendorM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVendorNotFound
		}

		return nil, errors.Wrap(err, "failed to find vendor profile by profile id")
	}

	return toVendorDomain(&vendorM), nil
}

// Insert persists a new vendor profile.
func (repo *vendorRepository) Insert(ctx context.Context, vendor *entity.VendorProfile) error {
	vendorM := fromVendorDomain(vendor)

	if err := repo.db.WithContext(ctx).Create(vendorM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("vendor profile already exists for this role")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "vendor profile references a missing profile")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to insert vendor profile")
	}

	vendor.UpdatedAt = vendorM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

// toVendorDomain converts a GORM VendorProfileModel to a domain VendorProfile entity.
func toVendorDomain(data *model.VendorProfileModel) *entity.VendorProfile {
	if data == nil {
		return nil
	}

	var location *orb.Point
	if data.Longitude != nil && data.Latitude != nil {
		point := orb.Point{*data.Longitude, *data.Latitude}
		location = &point
	}

	return &entity.VendorProfile{
		ProfileID:   data.ProfileID,
		Role:        entity.Role(data.Role),
		StoreName:   data.StoreName,
		Description: data.Description,
		Location:    location,
		DeviceToken: data.DeviceToken,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromVendorDomain converts a domain VendorProfile entity to a GORM VendorProfileModel.
func fromVendorDomain(data *entity.VendorProfile) *model.VendorProfileModel {
	if data == nil {
		return nil
	}

	vendorM := &model.VendorProfileModel{
		ProfileID:   data.ProfileID,
		Role:        string(data.Role),
		StoreName:   data.StoreName,
		Description: data.Description,
		DeviceToken: data.DeviceToken,
		UpdatedAt:   data.UpdatedAt,
	}
	if data.Location != nil {
		lon, lat := data.Location.Lon(), data.Location.Lat()
		vendorM.Longitude = &lon
		vendorM.Latitude = &lat
	}

	return vendorM
}
