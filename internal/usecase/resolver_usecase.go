// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// ResolverUsecase owns the mapping from an authenticated session to a
// resolved, role-aware identity. It is the only component that reads or
// writes the session, and it guarantees that a resolution attempt always
// reaches a terminal state: Resolved, DegradedFallback, or SignedOut.
type ResolverUsecase interface {
	// Start restores a previously persisted session and, if one exists,
	// runs a resolution for it. With no session the state settles in
	// Unauthenticated. Start also subscribes the resolver to session
	// events from the identity gateway.
	Start(ctx context.Context) error

	// HandleSessionEvent feeds one session event through the state
	// machine. SIGNED_IN triggers a resolution (bounded by the resolve
	// timeout); SIGNED_OUT clears all identity state and is idempotent
	// from any state. The call returns once the machine reaches a
	// terminal state for this event.
	HandleSessionEvent(ctx context.Context, event entity.SessionEvent)

	// Current returns a snapshot of the resolver state.
	Current() entity.Resolution

	// SetActiveRole switches the transient UI role selection. The role may
	// be one the profile does not enable yet; callers redirect to
	// onboarding in that case. Never persisted.
	SetActiveRole(role entity.Role) error

	// SignOut clears session, profile, and active role. Safe to call from
	// any state, any number of times.
	SignOut(ctx context.Context)

	// Shutdown unsubscribes from the identity gateway.
	Shutdown()
}
