package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for identity persistence.
var (
	// ErrCredentialNotFound is returned when no credential matches.
	ErrCredentialNotFound = errors.New("credential not found")
	// ErrRefreshTokenNotFound is returned when a refresh token is not found.
	ErrRefreshTokenNotFound = errors.New("refresh token not found")
)

// AccountRepository defines the identity backend's persistence operations:
// credentials and refresh-token sessions.
type AccountRepository interface {
	// CreateCredential persists a new email/password credential.
	CreateCredential(ctx context.Context, credential *entity.Credential) error

	// FindCredentialByEmail retrieves a credential by its login email.
	FindCredentialByEmail(ctx context.Context, email string) (*entity.Credential, error)

	// CreateRefreshToken persists a new refresh token, representing a session.
	CreateRefreshToken(ctx context.Context, token *entity.RefreshToken) error

	// FindRefreshTokenByHash retrieves a refresh token record by its stored hash.
	FindRefreshTokenByHash(ctx context.Context, hash string) (*entity.RefreshToken, error)

	// DeleteRefreshTokenByHash deletes a refresh token by its hash, ending a session.
	DeleteRefreshTokenByHash(ctx context.Context, hash string) error

	// DeleteRefreshTokensByIdentity deletes all refresh tokens of an identity.
	DeleteRefreshTokensByIdentity(ctx context.Context, identityID uuid.UUID) error
}
