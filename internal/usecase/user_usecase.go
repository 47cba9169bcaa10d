package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterInput is the payload for account registration. A seller or
// supplier registration also creates the matching vendor profile.
type RegisterInput struct {
	DisplayName string      `json:"displayName" validate:"required,min=1,max=100"`
	Email       string      `json:"email" validate:"required,email"`
	Password    string      `json:"password" validate:"required,min=8"`
	Role        entity.Role `json:"role" validate:"required,oneof=buyer seller supplier"`
	StoreName   string      `json:"storeName" validate:"required_unless=Role buyer,max=100"`
}

// RegisterOutput returns the created profile.
type RegisterOutput struct {
	Profile *entity.Profile `json:"profile"`
}

// LoginInput is the payload for password sign-in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginOutput carries the issued token pair. A successful login also
// announces SIGNED_IN through the identity gateway, which drives the
// session resolver.
type LoginOutput struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// LogoutInput revokes one refresh token.
type LogoutInput struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// RefreshTokenInput exchanges a refresh token for a new pair.
type RefreshTokenInput struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// ActivateRoleInput enables an additional role on an existing profile and
// creates the vendor profile that backs it.
type ActivateRoleInput struct {
	Role      entity.Role `json:"role" validate:"required,oneof=seller supplier"`
	StoreName string      `json:"storeName" validate:"required,min=1,max=100"`
}

// UserUsecase covers account lifecycle: registration, sign-in/out, token
// refresh, and role activation.
type UserUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	Logout(ctx context.Context, input *LogoutInput) error
	RefreshToken(ctx context.Context, input *RefreshTokenInput) (*LoginOutput, error)
	ActivateRole(ctx context.Context, identityID uuid.UUID, input *ActivateRoleInput) (*entity.Profile, error)
}
