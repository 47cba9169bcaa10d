package entity

// ResolutionState is the state of the session-to-profile resolution machine.
type ResolutionState string

const (
	// ResolutionUnauthenticated means no session exists.
	ResolutionUnauthenticated ResolutionState = "unauthenticated"
	// ResolutionAuthenticating means a sign-in is in flight at the identity backend.
	ResolutionAuthenticating ResolutionState = "authenticating"
	// ResolutionResolving means a profile lookup is racing the resolution timeout.
	ResolutionResolving ResolutionState = "resolving"
	// ResolutionResolved means a persisted profile was found (or repaired).
	ResolutionResolved ResolutionState = "resolved"
	// ResolutionDegraded means the lookup timed out or the backend was
	// unreachable, and a locally synthesized all-roles profile is in use.
	// The synthesized profile is never written back.
	ResolutionDegraded ResolutionState = "degraded_fallback"
	// ResolutionSignedOut means the resolver forced a sign-out, e.g. after
	// a failed self-repair. Distinct from Unauthenticated so callers can
	// surface the failure.
	ResolutionSignedOut ResolutionState = "signed_out"
)

// Terminal reports whether the state is one the machine may rest in.
// Resolving and Authenticating are transient; the contract guarantees the
// machine never stays in them indefinitely.
func (s ResolutionState) Terminal() bool {
	switch s {
	case ResolutionResolving, ResolutionAuthenticating:
		return false
	default:
		return true
	}
}

// Resolution is an immutable snapshot of the resolver's current state.
type Resolution struct {
	State      ResolutionState
	Session    *Session
	Profile    *Profile
	ActiveRole Role
	Degraded   bool   // True when Profile is the synthesized fallback.
	Generation uint64 // Monotonic counter identifying the resolution attempt.
	Err        error  // Set on forced sign-out so callers can surface the cause.
}

// SignedIn reports whether a usable identity is available (resolved or degraded).
func (r Resolution) SignedIn() bool {
	return r.State == ResolutionResolved || r.State == ResolutionDegraded
}
