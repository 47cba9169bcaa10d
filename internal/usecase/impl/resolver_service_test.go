package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	mockService "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// resolverFixtures holds all test dependencies for resolver service tests.
type resolverFixtures struct {
	service     usecase.ResolverUsecase
	txManager   *mockRepo.MockTransactionManager
	profileRepo *mockRepo.MockProfileRepository
	gateway     *mockService.MockIdentityGateway
}

func createTestResolverService(t *testing.T, resolveTimeout time.Duration) resolverFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)
	gateway := mockService.NewMockIdentityGateway(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{Auth: &config.AuthConfig{ResolveTimeout: resolveTimeout}}

	service := NewResolverService(ResolverServiceParams{
		TxManager:   txManager,
		ProfileRepo: profileRepo,
		Gateway:     gateway,
		Config:      cfg,
		Logger:      logger,
	})

	return resolverFixtures{
		service:     service,
		txManager:   txManager,
		profileRepo: profileRepo,
		gateway:     gateway,
	}
}

func testSession(identityID uuid.UUID) *entity.Session {
	return &entity.Session{
		IdentityID:  identityID,
		Email:       "buyer@example.com",
		DisplayName: "Test Buyer",
	}
}

func TestResolverService_SignedIn_LookupWins(t *testing.T) {
	fx := createTestResolverService(t, 2500*time.Millisecond)

	identityID := uuid.New()
	profile := &entity.Profile{
		ID:          identityID,
		DisplayName: "Test Buyer",
		IsBuyer:     true,
		IsSeller:    true,
	}

	fx.profileRepo.EXPECT().
		FindByIdentityID(mock.Anything, identityID).
		Return(profile, nil)

	fx.service.HandleSessionEvent(context.Background(), entity.SessionEvent{
		Kind:    entity.SessionSignedIn,
		Session: testSession(identityID),
	})

	resolution := fx.service.Current()
	assert.Equal(t, entity.ResolutionResolved, resolution.State)
	assert.False(t, resolution.Degraded)
	assert.Equal(t, profile, resolution.Profile)
	// seller outranks buyer in the fixed precedence
	assert.Equal(t, entity.RoleSeller, resolution.ActiveRole)
}

func TestResolverService_TimeoutWins_DegradedFallbackAllRoles(t *testing.T) {
	fx := createTestResolverService(t, 50*time.Millisecond)

	identityID := uuid.New()
	lateProfile := &entity.Profile{ID: identityID, DisplayName: "Late", IsBuyer: true}

	fx.profileRepo.EXPECT().
		FindByIdentityID(mock.Anything, identityID).
		RunAndReturn(func(ctx context.Context, _ uuid.UUID) (*entity.Profile, error) {
			time.Sleep(200 * time.Millisecond)

			return lateProfile, nil
		})

	fx.service.HandleSessionEvent(context.Background(), entity.SessionEvent{
		Kind:    entity.SessionSignedIn,
		Session: testSession(identityID),
	})

	resolution := fx.service.Current()
	require.Equal(t, entity.ResolutionDegraded, resolution.State)
	assert.True(t, resolution.Degraded)
	assert.True(t, resolution.Profile.IsBuyer)
	assert.True(t, resolution.Profile.IsSeller)
	assert.True(t, resolution.Profile.IsSupplier)
	assert.Equal(t, entity.RoleSeller, resolution.ActiveRole)

	// The late lookup result must not retroactively overwrite the fallback.
	time.Sleep(300 * time.Millisecond)
	after := fx.service.Current()
	assert.Equal(t, entity.ResolutionDegraded, after.State)
	assert.NotEqual(t, lateProfile, after.Profile)
	assert.Equal(t, resolution.Generation, after.Generation)
}

func TestResolverService_BackendError_DegradedFallback(t *testing.T) {
	fx := createTestResolverService(t, time.Second)

	identityID := uuid.New()
	fx.profileRepo.EXPECT().
		FindByIdentityID(mock.Anything, identityID).
		Return(nil, errors.New("connection refused"))

	fx.service.HandleSessionEvent(context.Background(), entity.SessionEvent{
		Kind:    entity.SessionSignedIn,
		Session: testSession(identityID),
	})

	resolution := fx.service.Current()
	assert.Equal(t, entity.ResolutionDegraded, resolution.State)
	assert.True(t, resolution.Degraded)
}

func TestResolverService_MissingProfile_SelfRepairSucceeds(t *testing.T) {
	fx := createTestResolverService(t, time.Second)

	identityID := uuid.New()
	repaired := &entity.Profile{ID: identityID, DisplayName: "Test Buyer", IsBuyer: true}

	fx.profileRepo.EXPECT().
		FindByIdentityID(mock.Anything, identityID).
		Return(nil, repository.ErrProfileNotFound).
		Once()

	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProfileRepo := mockRepo.NewMockProfileRepository(t)

			mockFactory.EXPECT().NewProfileRepository().Return(mockProfileRepo)
			mockProfileRepo.EXPECT().
				Insert(mock.Anything, mock.MatchedBy(func(p *entity.Profile) bool {
					return p.ID == identityID && p.IsBuyer && !p.IsSeller && !p.IsSupplier
				})).
				Return(nil)

			return fn(mockFactory)
		})

	fx.profileRepo.EXPECT().
		FindByIdentityID(mock.Anything, identityID).
		Return(repaired, nil).
		Once()

	fx.service.HandleSessionEvent(context.Background(), entity.SessionEvent{
		Kind:    entity.SessionSignedIn,
		Session: testSession(identityID),
	})

	resolution := fx.service.Current()
	assert.Equal(t, entity.ResolutionResolved, resolution.State)
	assert.Equal(t, repaired, resolution.Profile)
	assert.Equal(t, entity.RoleBuyer, resolution.ActiveRole)
}

func TestResolverService_RepairInsertFails_ForcedSignOut(t *testing.T) {
	fx := createTestResolverService(t, time.Second)

	identityID := uuid.New()

	fx.profileRepo.EXPECT().
		FindByIdentityID(mock.Anything, identityID).
		Return(nil, repository.ErrProfileNotFound).
		Once()

	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(errors.New("insert failed"))

	fx.service.HandleSessionEvent(context.Background(), entity.SessionEvent{
		Kind:    entity.SessionSignedIn,
		Session: testSession(identityID),
	})

	resolution := fx.service.Current()
	assert.Equal(t, entity.ResolutionSignedOut, resolution.State)
	assert.Nil(t, resolution.Profile)
	assert.Equal(t, entity.RoleBuyer, resolution.ActiveRole)
	assert.True(t, errors.Is(resolution.Err, domainerrors.ErrProfileRepairFailed))
}

func TestResolverService_RepairRunsAtMostOnce(t *testing.T) {
	fx := createTestResolverService(t, time.Second)

	identityID := uuid.New()

	// Both the initial lookup and the post-repair lookup report no row; the
	// machine must fail closed instead of looping on repair.
	fx.profileRepo.EXPECT().
		FindByIdentityID(mock.Anything, identityID).
		Return(nil, repository.ErrProfileNotFound).
		Times(2)

	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProfileRepo := mockRepo.NewMockProfileRepository(t)

			mockFactory.EXPECT().NewProfileRepository().Return(mockProfileRepo)
			mockProfileRepo.EXPECT().Insert(mock.Anything, mock.Anything).Return(nil)

			return fn(mockFactory)
		}).
		Once()

	fx.service.HandleSessionEvent(context.Background(), entity.SessionEvent{
		Kind:    entity.SessionSignedIn,
		Session: testSession(identityID),
	})

	resolution := fx.service.Current()
	assert.Equal(t, entity.ResolutionSignedOut, resolution.State)
}

func TestResolverService_SignedInEventWithoutIdentity(t *testing.T) {
	fx := createTestResolverService(t, time.Second)

	fx.service.HandleSessionEvent(context.Background(), entity.SessionEvent{
		Kind:    entity.SessionSignedIn,
		Session: nil,
	})

	resolution := fx.service.Current()
	assert.Equal(t, entity.ResolutionSignedOut, resolution.State)
	assert.True(t, errors.Is(resolution.Err, domainerrors.ErrIdentityMissing))
}

func TestResolverService_SignOut_IdempotentFromAnyState(t *testing.T) {
	fx := createTestResolverService(t, time.Second)

	identityID := uuid.New()
	profile := &entity.Profile{ID: identityID, IsBuyer: true, IsSeller: true}

	fx.profileRepo.EXPECT().
		FindByIdentityID(mock.Anything, identityID).
		Return(profile, nil)

	ctx := context.Background()
	fx.service.HandleSessionEvent(ctx, entity.SessionEvent{
		Kind:    entity.SessionSignedIn,
		Session: testSession(identityID),
	})
	require.Equal(t, entity.ResolutionResolved, fx.service.Current().State)
	require.Equal(t, entity.RoleSeller, fx.service.Current().ActiveRole)

	fx.service.SignOut(ctx)
	first := fx.service.Current()
	assert.Equal(t, entity.ResolutionSignedOut, first.State)
	assert.Nil(t, first.Session)
	assert.Nil(t, first.Profile)
	assert.Equal(t, entity.RoleBuyer, first.ActiveRole)

	// Signing out again from SignedOut is a no-op beyond the generation bump.
	fx.service.SignOut(ctx)
	assert.Equal(t, entity.ResolutionSignedOut, fx.service.Current().State)
	assert.Equal(t, entity.RoleBuyer, fx.service.Current().ActiveRole)
}

func TestResolverService_NewSignInSupersedesInFlightResolution(t *testing.T) {
	fx := createTestResolverService(t, 300*time.Millisecond)

	slowIdentity := uuid.New()
	fastIdentity := uuid.New()
	fastProfile := &entity.Profile{ID: fastIdentity, IsBuyer: true}

	fx.profileRepo.EXPECT().
		FindByIdentityID(mock.Anything, slowIdentity).
		RunAndReturn(func(ctx context.Context, _ uuid.UUID) (*entity.Profile, error) {
			time.Sleep(150 * time.Millisecond)

			return &entity.Profile{ID: slowIdentity, IsBuyer: true, IsSupplier: true}, nil
		})
	fx.profileRepo.EXPECT().
		FindByIdentityID(mock.Anything, fastIdentity).
		Return(fastProfile, nil)

	ctx := context.Background()
	done := make(chan struct{})
	go func() {
		fx.service.HandleSessionEvent(ctx, entity.SessionEvent{
			Kind:    entity.SessionSignedIn,
			Session: testSession(slowIdentity),
		})
		close(done)
	}()

	time.Sleep(30 * time.Millisecond)
	fx.service.HandleSessionEvent(ctx, entity.SessionEvent{
		Kind:    entity.SessionSignedIn,
		Session: testSession(fastIdentity),
	})

	<-done
	time.Sleep(200 * time.Millisecond)

	// The slow attempt's result is stale and must not clobber the new one.
	resolution := fx.service.Current()
	assert.Equal(t, entity.ResolutionResolved, resolution.State)
	assert.Equal(t, fastIdentity, resolution.Profile.ID)
}

func TestResolverService_SetActiveRole(t *testing.T) {
	fx := createTestResolverService(t, time.Second)

	// Not signed in yet.
	err := fx.service.SetActiveRole(entity.RoleSeller)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrIdentityMissing))

	identityID := uuid.New()
	fx.profileRepo.EXPECT().
		FindByIdentityID(mock.Anything, identityID).
		Return(&entity.Profile{ID: identityID, IsBuyer: true}, nil)

	fx.service.HandleSessionEvent(context.Background(), entity.SessionEvent{
		Kind:    entity.SessionSignedIn,
		Session: testSession(identityID),
	})

	// Switching to a role the profile does not enable is allowed; the caller
	// routes to onboarding.
	require.NoError(t, fx.service.SetActiveRole(entity.RoleSupplier))
	assert.Equal(t, entity.RoleSupplier, fx.service.Current().ActiveRole)
}

func TestResolverService_Start_RestoresPersistedSession(t *testing.T) {
	fx := createTestResolverService(t, time.Second)

	identityID := uuid.New()
	session := testSession(identityID)
	profile := &entity.Profile{ID: identityID, IsBuyer: true}

	fx.gateway.EXPECT().Subscribe(mock.Anything).Return(func() {})
	fx.gateway.EXPECT().Current(mock.Anything).Return(session, nil)
	fx.profileRepo.EXPECT().
		FindByIdentityID(mock.Anything, identityID).
		Return(profile, nil)

	require.NoError(t, fx.service.Start(context.Background()))

	resolution := fx.service.Current()
	assert.Equal(t, entity.ResolutionResolved, resolution.State)
	assert.Equal(t, session, resolution.Session)

	fx.service.Shutdown()
}

func TestResolverService_Start_NoPersistedSession(t *testing.T) {
	fx := createTestResolverService(t, time.Second)

	fx.gateway.EXPECT().Subscribe(mock.Anything).Return(func() {})
	fx.gateway.EXPECT().Current(mock.Anything).Return(nil, nil)

	require.NoError(t, fx.service.Start(context.Background()))
	assert.Equal(t, entity.ResolutionUnauthenticated, fx.service.Current().State)

	fx.service.Shutdown()
}
