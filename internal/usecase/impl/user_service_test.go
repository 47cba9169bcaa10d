package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	mockService "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userFixtures struct {
	service      usecase.UserUsecase
	txManager    *mockRepo.MockTransactionManager
	profileRepo  *mockRepo.MockProfileRepository
	accountRepo  *mockRepo.MockAccountRepository
	hasher       *mockService.MockPasswordHasher
	tokenService *mockService.MockTokenService
	gateway      *mockService.MockIdentityGateway
}

func createTestUserService(t *testing.T) userFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenService := mockService.NewMockTokenService(t)
	gateway := mockService.NewMockIdentityGateway(t)

	svc := NewUserService(UserServiceParams{
		TxManager:    txManager,
		ProfileRepo:  profileRepo,
		AccountRepo:  accountRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Gateway:      gateway,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return userFixtures{
		service:      svc,
		txManager:    txManager,
		profileRepo:  profileRepo,
		accountRepo:  accountRepo,
		hasher:       hasher,
		tokenService: tokenService,
		gateway:      gateway,
	}
}

func TestUserService_Register_Buyer(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	input := &usecase.RegisterInput{
		DisplayName: "小明",
		Email:       "ming@example.com",
		Password:    "password123",
		Role:        entity.RoleBuyer,
	}

	fx.hasher.EXPECT().Hash("password123").Return("hashed", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)
			mockProfileRepo := mockRepo.NewMockProfileRepository(t)

			mockFactory.EXPECT().NewAccountRepository().Return(mockAccountRepo)
			mockFactory.EXPECT().NewProfileRepository().Return(mockProfileRepo)
			mockAccountRepo.EXPECT().
				FindCredentialByEmail(ctx, "ming@example.com").
				Return(nil, repository.ErrCredentialNotFound)
			mockAccountRepo.EXPECT().
				CreateCredential(ctx, mock.MatchedBy(func(c *entity.Credential) bool {
					return c.Email == "ming@example.com" && c.PasswordHash == "hashed"
				})).
				Return(nil)
			mockProfileRepo.EXPECT().
				Insert(ctx, mock.MatchedBy(func(p *entity.Profile) bool {
					return p.IsBuyer && !p.IsSeller && !p.IsSupplier
				})).
				Return(nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Register(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, "小明", output.Profile.DisplayName)
	assert.True(t, output.Profile.IsBuyer)
}

func TestUserService_Register_SellerCreatesVendorProfile(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	input := &usecase.RegisterInput{
		DisplayName: "阿姨",
		Email:       "aunt@example.com",
		Password:    "password123",
		Role:        entity.RoleSeller,
		StoreName:   "好鄰居超市",
	}

	fx.hasher.EXPECT().Hash("password123").Return("hashed", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)
			mockProfileRepo := mockRepo.NewMockProfileRepository(t)
			mockVendorRepo := mockRepo.NewMockVendorRepository(t)

			mockFactory.EXPECT().NewAccountRepository().Return(mockAccountRepo)
			mockFactory.EXPECT().NewProfileRepository().Return(mockProfileRepo)
			mockFactory.EXPECT().NewVendorRepository().Return(mockVendorRepo)
			mockAccountRepo.EXPECT().
				FindCredentialByEmail(ctx, "aunt@example.com").
				Return(nil, repository.ErrCredentialNotFound)
			mockAccountRepo.EXPECT().CreateCredential(ctx, mock.Anything).Return(nil)
			mockProfileRepo.EXPECT().
				Insert(ctx, mock.MatchedBy(func(p *entity.Profile) bool {
					// Seller registration keeps buying enabled.
					return p.IsBuyer && p.IsSeller
				})).
				Return(nil)
			mockVendorRepo.EXPECT().
				Insert(ctx, mock.MatchedBy(func(v *entity.VendorProfile) bool {
					return v.Role == entity.RoleSeller && v.StoreName == "好鄰居超市"
				})).
				Return(nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Register(ctx, input)
	require.NoError(t, err)
	assert.True(t, output.Profile.IsSeller)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash(mock.Anything).Return("hashed", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().NewAccountRepository().Return(mockAccountRepo)
			mockAccountRepo.EXPECT().
				FindCredentialByEmail(ctx, "taken@example.com").
				Return(&entity.Credential{Email: "taken@example.com"}, nil)

			return fn(mockFactory)
		})

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{
		DisplayName: "dup",
		Email:       "taken@example.com",
		Password:    "password123",
		Role:        entity.RoleBuyer,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountAlreadyExists))
}

func TestUserService_Login_AnnouncesSignedIn(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	identityID := uuid.New()
	credential := &entity.Credential{
		IdentityID:   identityID,
		Email:        "ming@example.com",
		PasswordHash: "hashed",
	}
	profile := &entity.Profile{ID: identityID, DisplayName: "小明", IsBuyer: true}

	fx.accountRepo.EXPECT().
		FindCredentialByEmail(ctx, "ming@example.com").
		Return(credential, nil)
	fx.hasher.EXPECT().Compare("hashed", "password123").Return(nil)
	fx.profileRepo.EXPECT().FindByIdentityID(ctx, identityID).Return(profile, nil)
	fx.tokenService.EXPECT().
		GenerateTokens(identityID, []string{"buyer"}).
		Return("access-token", "refresh-token", nil)
	fx.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-hash")
	fx.tokenService.EXPECT().GetAccessTokenDuration().Return(15 * time.Minute)
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(720 * time.Hour)
	fx.accountRepo.EXPECT().
		CreateRefreshToken(ctx, mock.MatchedBy(func(tok *entity.RefreshToken) bool {
			return tok.IdentityID == identityID && tok.TokenHash == "refresh-hash"
		})).
		Return(nil)

	var announced entity.SessionEvent
	fx.gateway.EXPECT().
		Announce(mock.AnythingOfType("entity.SessionEvent")).
		Run(func(event entity.SessionEvent) {
			announced = event
		}).
		Return()

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ming@example.com", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "refresh-token", output.RefreshToken)

	assert.Equal(t, entity.SessionSignedIn, announced.Kind)
	require.NotNil(t, announced.Session)
	assert.Equal(t, identityID, announced.Session.IdentityID)
	assert.Equal(t, "小明", announced.Session.DisplayName)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.accountRepo.EXPECT().
		FindCredentialByEmail(ctx, "ming@example.com").
		Return(&entity.Credential{IdentityID: uuid.New(), PasswordHash: "hashed"}, nil)
	fx.hasher.EXPECT().Compare("hashed", "wrong").Return(errors.New("hashedPassword is not the hash of the given password"))

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ming@example.com", Password: "wrong"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.accountRepo.EXPECT().
		FindCredentialByEmail(ctx, "ghost@example.com").
		Return(nil, repository.ErrCredentialNotFound)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: "whatever"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Logout_AnnouncesSignedOut(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.tokenService.EXPECT().
		ValidateToken("refresh-token").
		Return(&service.TokenClaims{IdentityID: uuid.New()}, nil)
	fx.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-hash")
	fx.accountRepo.EXPECT().DeleteRefreshTokenByHash(ctx, "refresh-hash").Return(nil)
	fx.gateway.EXPECT().
		Announce(mock.MatchedBy(func(event entity.SessionEvent) bool {
			return event.Kind == entity.SessionSignedOut
		})).
		Return()

	require.NoError(t, fx.service.Logout(ctx, &usecase.LogoutInput{RefreshToken: "refresh-token"}))
}

func TestUserService_Logout_UnknownTokenStillSignsOut(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.tokenService.EXPECT().
		ValidateToken("stale").
		Return(nil, errors.New("token is expired"))
	fx.tokenService.EXPECT().HashToken("stale").Return("stale-hash")
	fx.accountRepo.EXPECT().
		DeleteRefreshTokenByHash(ctx, "stale-hash").
		Return(repository.ErrRefreshTokenNotFound)
	fx.gateway.EXPECT().
		Announce(mock.MatchedBy(func(event entity.SessionEvent) bool {
			return event.Kind == entity.SessionSignedOut
		})).
		Return()

	require.NoError(t, fx.service.Logout(ctx, &usecase.LogoutInput{RefreshToken: "stale"}))
}

func TestUserService_RefreshToken_IssuesNewAccessToken(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	identityID := uuid.New()
	fx.tokenService.EXPECT().
		ValidateToken("refresh-token").
		Return(&service.TokenClaims{IdentityID: identityID}, nil)
	fx.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-hash")
	fx.accountRepo.EXPECT().
		FindRefreshTokenByHash(ctx, "refresh-hash").
		Return(&entity.RefreshToken{
			IdentityID: identityID,
			TokenHash:  "refresh-hash",
			ExpiresAt:  time.Now().Add(time.Hour),
		}, nil)
	fx.profileRepo.EXPECT().
		FindByIdentityID(ctx, identityID).
		Return(&entity.Profile{ID: identityID, IsBuyer: true}, nil)
	fx.tokenService.EXPECT().
		GenerateTokens(identityID, []string{"buyer"}).
		Return("new-access", "unused-refresh", nil)

	output, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "refresh-token"})
	require.NoError(t, err)
	assert.Equal(t, "new-access", output.AccessToken)
	// The refresh token is not rotated.
	assert.Equal(t, "refresh-token", output.RefreshToken)
}

func TestUserService_RefreshToken_ExpiredStoredToken(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	identityID := uuid.New()
	fx.tokenService.EXPECT().
		ValidateToken("refresh-token").
		Return(&service.TokenClaims{IdentityID: identityID}, nil)
	fx.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-hash")
	fx.accountRepo.EXPECT().
		FindRefreshTokenByHash(ctx, "refresh-hash").
		Return(&entity.RefreshToken{
			IdentityID: identityID,
			TokenHash:  "refresh-hash",
			ExpiresAt:  time.Now().Add(-time.Hour),
		}, nil)

	_, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "refresh-token"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
}

func TestUserService_ActivateRole_AlreadyEnabled(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	identityID := uuid.New()
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProfileRepo := mockRepo.NewMockProfileRepository(t)

			mockFactory.EXPECT().NewProfileRepository().Return(mockProfileRepo)
			mockProfileRepo.EXPECT().
				FindByIdentityID(ctx, identityID).
				Return(&entity.Profile{ID: identityID, IsBuyer: true, IsSeller: true}, nil)

			return fn(mockFactory)
		})

	_, err := fx.service.ActivateRole(ctx, identityID, &usecase.ActivateRoleInput{
		Role:      entity.RoleSeller,
		StoreName: "重複的店",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrConflict))
}

func TestUserService_ActivateRole_EnablesSupplier(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	identityID := uuid.New()
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProfileRepo := mockRepo.NewMockProfileRepository(t)
			mockVendorRepo := mockRepo.NewMockVendorRepository(t)

			mockFactory.EXPECT().NewProfileRepository().Return(mockProfileRepo)
			mockFactory.EXPECT().NewVendorRepository().Return(mockVendorRepo)
			mockProfileRepo.EXPECT().
				FindByIdentityID(ctx, identityID).
				Return(&entity.Profile{ID: identityID, IsBuyer: true}, nil)
			mockProfileRepo.EXPECT().
				Update(ctx, mock.MatchedBy(func(p *entity.Profile) bool {
					return p.IsSupplier
				})).
				Return(nil)
			mockVendorRepo.EXPECT().
				Insert(ctx, mock.MatchedBy(func(v *entity.VendorProfile) bool {
					return v.Role == entity.RoleSupplier && v.StoreName == "大盤商行"
				})).
				Return(nil)

			return fn(mockFactory)
		})

	profile, err := fx.service.ActivateRole(ctx, identityID, &usecase.ActivateRoleInput{
		Role:      entity.RoleSupplier,
		StoreName: "大盤商行",
	})
	require.NoError(t, err)
	assert.True(t, profile.IsSupplier)
}
