package entity

import (
	"time"

	"github.com/google/uuid"
)

// Credential represents a single way of signing in (email/password).
type Credential struct {
	ID           uuid.UUID // The unique id for this credential record itself.
	IdentityID   uuid.UUID // Links this credential to the identity it authenticates.
	Email        string    // Login identifier.
	PasswordHash string    // bcrypt-hashed password.
	CreatedAt    time.Time
}

// RefreshToken represents a long-lived, authorized session at the identity
// backend. It is used to obtain a new access token after the old one
// expires, without requiring credentials.
type RefreshToken struct {
	ID         uuid.UUID // The unique id for this refresh token record.
	IdentityID uuid.UUID // Links this session to the identity it belongs to.
	TokenHash  string    // SHA-256 hash of the raw refresh token.
	ExpiresAt  time.Time // When this refresh token becomes invalid.
	CreatedAt  time.Time // When this session was created (i.e., when the user signed in).
}
