// Package service defines interfaces for domain services whose concrete
// implementations live in the infrastructure layer.
package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenClaims are the custom claims carried by issued tokens.
type TokenClaims struct {
	IdentityID uuid.UUID `json:"identityId"`
	Roles      []string  `json:"roles"`
	jwt.RegisteredClaims
}

// TokenService abstracts JWT creation and validation so the application
// layer does not depend on a specific JWT library.
type TokenService interface {
	// GenerateTokens creates a new access token and refresh token for a
	// given identity and its roles.
	GenerateTokens(identityID uuid.UUID, roles []string) (accessToken string, refreshToken string, err error)

	// ValidateToken parses and verifies a token string and returns its claims.
	ValidateToken(tokenString string) (*TokenClaims, error)

	// HashToken returns the hex SHA-256 digest used to store and look up
	// refresh tokens.
	HashToken(token string) string

	// GetAccessTokenDuration returns the configured lifetime of access tokens.
	GetAccessTokenDuration() time.Duration

	// GetRefreshTokenDuration returns the configured lifetime of refresh tokens.
	GetRefreshTokenDuration() time.Duration
}
