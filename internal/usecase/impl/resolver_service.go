// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// resolverService implements the ResolverUsecase interface. It runs the
// resolution state machine: every sign-in races a profile lookup against a
// timeout, and every attempt ends in Resolved, DegradedFallback, or
// SignedOut. A generation counter keeps late lookup results from attempts
// that were superseded (new sign-in, sign-out) from overwriting newer state.
type resolverService struct {
	txManager      repository.TransactionManager
	profileRepo    repository.ProfileRepository
	gateway        service.IdentityGateway
	resolveTimeout time.Duration
	logger         *slog.Logger

	mu          sync.Mutex
	current     entity.Resolution
	generation  uint64
	unsubscribe func()
}

// ResolverServiceParams holds dependencies for resolverService, injected by Fx.
type ResolverServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ProfileRepo repository.ProfileRepository
	Gateway     service.IdentityGateway
	Config      *config.Config
	Logger      *slog.Logger
}

// NewResolverService is the constructor for resolverService.
func NewResolverService(params ResolverServiceParams) usecase.ResolverUsecase {
	return &resolverService{
		txManager:      params.TxManager,
		profileRepo:    params.ProfileRepo,
		gateway:        params.Gateway,
		resolveTimeout: params.Config.ResolveTimeout(),
		logger:         params.Logger,
		current:        entity.Resolution{State: entity.ResolutionUnauthenticated},
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *resolverService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Start subscribes to session events and resolves any restored session.
func (srv *resolverService) Start(ctx context.Context) error {
	srv.mu.Lock()
	if srv.unsubscribe == nil {
		// Gateway callbacks run on the announcer's goroutine; detach from its
		// cancellation so an aborted request cannot strand the machine mid-attempt.
		srv.unsubscribe = srv.gateway.Subscribe(func(event entity.SessionEvent) {
			srv.HandleSessionEvent(context.WithoutCancel(ctx), event)
		})
	}
	srv.mu.Unlock()

	session, err := srv.gateway.Current(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to restore session")
	}
	if session == nil {
		srv.log(ctx).Debug("No persisted session, starting unauthenticated")

		return nil
	}

	srv.log(ctx).Info("Restored persisted session", slog.Any("identityID", session.IdentityID))
	srv.HandleSessionEvent(ctx, entity.SessionEvent{Kind: entity.SessionSignedIn, Session: session})

	return nil
}

// HandleSessionEvent drives one event through the state machine and returns
// once a terminal state is reached for it.
func (srv *resolverService) HandleSessionEvent(ctx context.Context, event entity.SessionEvent) {
	switch event.Kind {
	case entity.SessionSignedOut:
		srv.SignOut(ctx)
	case entity.SessionSignedIn:
		if event.Session == nil || event.Session.IdentityID == uuid.Nil {
			// An authenticated event without an identity cannot be resolved.
			srv.log(ctx).Error("Signed-in event carries no identity, forcing sign-out")
			srv.forceSignOut(0, domainerrors.ErrIdentityMissing)

			return
		}
		srv.resolve(ctx, event.Session)
	}
}

// resolve races the profile lookup against the resolve timeout for a fresh
// generation and applies whichever outcome wins.
func (srv *resolverService) resolve(ctx context.Context, session *entity.Session) {
	srv.mu.Lock()
	srv.generation++
	gen := srv.generation
	srv.current = entity.Resolution{
		State:      entity.ResolutionResolving,
		Session:    session,
		Generation: gen,
	}
	srv.mu.Unlock()

	type lookupResult struct {
		profile *entity.Profile
		err     error
	}

	lookupCtx, cancel := context.WithTimeout(ctx, srv.resolveTimeout)
	defer cancel()

	resultCh := make(chan lookupResult, 1)
	go func() {
		profile, err := srv.profileRepo.FindByIdentityID(lookupCtx, session.IdentityID)
		resultCh <- lookupResult{profile: profile, err: err}
	}()

	select {
	case <-lookupCtx.Done():
		// Timeout wins. Not an error: synthesize an all-roles profile so the
		// UI stays usable, and log the downgrade since nothing user-visible
		// records it.
		srv.log(ctx).Warn("Profile lookup exceeded resolve timeout, entering degraded fallback",
			slog.Any("identityID", session.IdentityID),
			slog.Duration("timeout", srv.resolveTimeout))
		srv.applyDegraded(gen, session)
	case result := <-resultCh:
		srv.applyLookupResult(ctx, gen, session, result.profile, result.err)
	}
}

func (srv *resolverService) applyLookupResult(ctx context.Context, gen uint64, session *entity.Session, profile *entity.Profile, err error) {
	switch {
	case err == nil:
		srv.log(ctx).Debug("Profile resolved", slog.Any("identityID", session.IdentityID))
		srv.applyResolved(gen, session, profile)
	case errors.Is(err, repository.ErrProfileNotFound):
		srv.repairProfile(ctx, gen, session)
	default:
		// Backend unreachable. Absorbed into the degraded fallback, logged at
		// the boundary rather than raised.
		srv.log(ctx).Warn("Profile lookup failed, entering degraded fallback",
			slog.Any("identityID", session.IdentityID), slog.Any("error", err))
		srv.applyDegraded(gen, session)
	}
}

// repairProfile runs the single self-repair attempt for an identity with no
// profile row: insert the minimal default profile, then look up once more.
// A failed insert forces a sign-out; the resolver fails closed rather than
// leaving an identity without a persisted profile.
func (srv *resolverService) repairProfile(ctx context.Context, gen uint64, session *entity.Session) {
	srv.log(ctx).Warn("No profile row for signed-in identity, attempting self-repair",
		slog.Any("identityID", session.IdentityID))

	repairCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), srv.resolveTimeout)
	defer cancel()

	defaultProfile := entity.NewDefaultProfile(session.IdentityID, session.DisplayName)
	insertErr := srv.txManager.Execute(repairCtx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewProfileRepository().Insert(repairCtx, defaultProfile); err != nil {
			return errors.Wrap(err, "failed to insert default profile")
		}

		return nil
	})
	if insertErr != nil {
		srv.log(ctx).Error("Self-repair insert failed, forcing sign-out",
			slog.Any("identityID", session.IdentityID), slog.Any("error", insertErr))
		srv.forceSignOut(gen, domainerrors.ErrProfileRepairFailed.WrapMessage("profile self-repair failed"))

		return
	}

	profile, err := srv.profileRepo.FindByIdentityID(repairCtx, session.IdentityID)
	switch {
	case err == nil:
		srv.log(ctx).Info("Self-repair succeeded", slog.Any("identityID", session.IdentityID))
		srv.applyResolved(gen, session, profile)
	case errors.Is(err, repository.ErrProfileNotFound):
		// The row we just inserted is gone. Repair runs at most once per
		// attempt, so fail closed instead of looping.
		srv.log(ctx).Error("Profile still missing after self-repair, forcing sign-out",
			slog.Any("identityID", session.IdentityID))
		srv.forceSignOut(gen, domainerrors.ErrProfileRepairFailed.WrapMessage("profile missing after repair"))
	default:
		srv.log(ctx).Warn("Post-repair lookup failed, entering degraded fallback",
			slog.Any("identityID", session.IdentityID), slog.Any("error", err))
		srv.applyDegraded(gen, session)
	}
}

// applyResolved commits a successful resolution unless the attempt is stale.
func (srv *resolverService) applyResolved(gen uint64, session *entity.Session, profile *entity.Profile) {
	srv.apply(gen, entity.Resolution{
		State:      entity.ResolutionResolved,
		Session:    session,
		Profile:    profile,
		ActiveRole: profile.DefaultActiveRole(),
		Generation: gen,
	})
}

// applyDegraded commits the degraded fallback unless the attempt is stale.
func (srv *resolverService) applyDegraded(gen uint64, session *entity.Session) {
	profile := entity.NewDegradedProfile(session.IdentityID, session.DisplayName)
	srv.apply(gen, entity.Resolution{
		State:      entity.ResolutionDegraded,
		Session:    session,
		Profile:    profile,
		ActiveRole: profile.DefaultActiveRole(),
		Degraded:   true,
		Generation: gen,
	})
}

// forceSignOut moves the machine to SignedOut with the surfaced cause. A gen
// of 0 bypasses the staleness check (used when no attempt was started).
func (srv *resolverService) forceSignOut(gen uint64, cause error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if gen != 0 && gen != srv.generation {
		return
	}
	srv.generation++
	srv.current = entity.Resolution{
		State:      entity.ResolutionSignedOut,
		ActiveRole: entity.RoleBuyer,
		Generation: srv.generation,
		Err:        cause,
	}
}

// apply installs the resolution iff its generation is still current. A stale
// generation means a newer sign-in or sign-out superseded this attempt; the
// late result is discarded.
func (srv *resolverService) apply(gen uint64, resolution entity.Resolution) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if gen != srv.generation {
		srv.logger.Debug("Discarding stale resolution result",
			slog.Uint64("staleGeneration", gen),
			slog.Uint64("currentGeneration", srv.generation))

		return
	}
	srv.current = resolution
}

// Current returns a snapshot of the resolver state.
func (srv *resolverService) Current() entity.Resolution {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.current
}

// SetActiveRole switches the transient role selection. The role need not be
// enabled on the profile; callers route to onboarding when it is not.
func (srv *resolverService) SetActiveRole(role entity.Role) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if !srv.current.SignedIn() {
		return errors.Wrap(domainerrors.ErrIdentityMissing, "cannot switch role without a signed-in identity")
	}
	srv.current.ActiveRole = role

	return nil
}

// SignOut clears session, profile, and active role. Idempotent from any state.
func (srv *resolverService) SignOut(ctx context.Context) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	// Bumping the generation invalidates any in-flight resolution. The
	// active role falls back to buyer until the next resolution.
	srv.generation++
	srv.current = entity.Resolution{
		State:      entity.ResolutionSignedOut,
		ActiveRole: entity.RoleBuyer,
		Generation: srv.generation,
	}
	srv.log(ctx).Info("Signed out, resolver state cleared")
}

// Shutdown unsubscribes from the identity gateway.
func (srv *resolverService) Shutdown() {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if srv.unsubscribe != nil {
		srv.unsubscribe()
		srv.unsubscribe = nil
	}
}
