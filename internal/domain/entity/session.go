package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session represents an authenticated credential issued by the identity
// backend together with the identity it authenticates. The resolver owns
// the session exclusively; nothing else holds on to it.
type Session struct {
	IdentityID   uuid.UUID // The authenticated identity's id.
	Email        string    // Login identifier, informational only.
	DisplayName  string    // Display name captured at sign-up, used to seed repaired profiles.
	AccessToken  string    // Short-lived bearer token.
	RefreshToken string    // Raw refresh token; its SHA-256 hash is what the backend stores.
	ExpiresAt    time.Time // Expiry of the access token.
}

// SessionEventKind discriminates session lifecycle events.
type SessionEventKind string

const (
	// SessionSignedIn is emitted after a successful sign-in or restore.
	SessionSignedIn SessionEventKind = "SIGNED_IN"
	// SessionSignedOut is emitted after an explicit or forced sign-out.
	SessionSignedOut SessionEventKind = "SIGNED_OUT"
)

// SessionEvent is what the identity backend pushes to subscribers.
// Session is nil for SIGNED_OUT events.
type SessionEvent struct {
	Kind    SessionEventKind
	Session *Session
}
