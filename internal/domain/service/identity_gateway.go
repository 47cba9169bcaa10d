package service

import (
	"context"

	"storefront/internal/domain/entity"
)

// SessionHandler receives session lifecycle events. Handlers are invoked
// synchronously in announcement order.
type SessionHandler func(event entity.SessionEvent)

// IdentityGateway is the client-side face of the identity backend: it owns
// the current session, persists it across restarts, and fans session
// lifecycle events out to subscribers (the session resolver).
type IdentityGateway interface {
	// Current returns the restored or active session, or nil when no valid
	// session exists.
	Current(ctx context.Context) (*entity.Session, error)

	// Announce publishes a session event to all subscribers and updates the
	// persisted current session (set on SIGNED_IN, cleared on SIGNED_OUT).
	Announce(event entity.SessionEvent)

	// Subscribe registers a handler for session events. The returned
	// function unsubscribes it.
	Subscribe(handler SessionHandler) (unsubscribe func())
}
