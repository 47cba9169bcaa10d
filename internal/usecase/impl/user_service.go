package impl

import (
	"context"
	"log/slog"
	"time"

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

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	profileRepo  repository.ProfileRepository
	accountRepo  repository.AccountRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	gateway      service.IdentityGateway
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	ProfileRepo  repository.ProfileRepository
	AccountRepo  repository.AccountRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Gateway      service.IdentityGateway
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:    params.TxManager,
		profileRepo:  params.ProfileRepo,
		accountRepo:  params.AccountRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		gateway:      params.Gateway,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates the credential, the profile with the chosen role enabled,
// and, for sellers and suppliers, the vendor profile, all in one transaction.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.Any("role", input.Role), slog.String("email", input.Email))

	// bcrypt is CPU-bound; hash outside the transaction.
	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	identityID := uuid.New()
	profile := &entity.Profile{
		ID:          identityID,
		DisplayName: input.DisplayName,
		IsBuyer:     true, // Every account can buy; seller/supplier flags come on top.
	}
	profile.EnableRole(input.Role)

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.NewAccountRepository()

		_, findErr := accountRepo.FindCredentialByEmail(ctx, input.Email)
		if findErr == nil {
			return errors.Wrap(domainerrors.ErrAccountAlreadyExists, "email already registered")
		}
		if !errors.Is(findErr, repository.ErrCredentialNotFound) {
			return errors.Wrap(findErr, "failed to check existing credential")
		}

		credential := &entity.Credential{
			IdentityID:   identityID,
			Email:        input.Email,
			PasswordHash: hashedPassword,
		}
		if createErr := accountRepo.CreateCredential(ctx, credential); createErr != nil {
			return errors.Wrap(createErr, "failed to create credential")
		}

		if insertErr := repoFactory.NewProfileRepository().Insert(ctx, profile); insertErr != nil {
			return errors.Wrap(insertErr, "failed to insert profile")
		}

		if input.Role == entity.RoleSeller || input.Role == entity.RoleSupplier {
			vendor := &entity.VendorProfile{
				ProfileID: identityID,
				Role:      input.Role,
				StoreName: input.StoreName,
			}
			if vendorErr := repoFactory.NewVendorRepository().Insert(ctx, vendor); vendorErr != nil {
				return errors.Wrap(vendorErr, "failed to insert vendor profile")
			}
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute registration transaction",
			slog.Any("role", input.Role), slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("role", input.Role), slog.Any("identityID", identityID))

	return &usecase.RegisterOutput{Profile: profile}, nil
}

// Login verifies the credential, issues a token pair, stores the refresh
// token hash, and announces SIGNED_IN so the resolver starts resolving.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))

	credential, err := srv.accountRepo.FindCredentialByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			srv.log(ctx).Warn("Login failed, unknown email", slog.String("email", input.Email))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to load credential")
	}

	if compareErr := srv.hasher.Compare(credential.PasswordHash, input.Password); compareErr != nil {
		srv.log(ctx).Warn("Login failed, password mismatch", slog.String("email", input.Email))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	roles := srv.loadRoles(ctx, credential.IdentityID)

	accessToken, refreshTokenString, err := srv.tokenService.GenerateTokens(credential.IdentityID, roles.ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	if err := srv.storeRefreshToken(ctx, credential.IdentityID, refreshTokenString); err != nil {
		return nil, errors.Wrap(err, "failed to store refresh token during login")
	}

	displayName := ""
	if profile, profileErr := srv.profileRepo.FindByIdentityID(ctx, credential.IdentityID); profileErr == nil {
		displayName = profile.DisplayName
	}

	// Announcing SIGNED_IN hands the session to the resolver, which runs the
	// profile resolution race on its own clock.
	srv.gateway.Announce(entity.SessionEvent{
		Kind: entity.SessionSignedIn,
		Session: &entity.Session{
			IdentityID:   credential.IdentityID,
			Email:        credential.Email,
			DisplayName:  displayName,
			AccessToken:  accessToken,
			RefreshToken: refreshTokenString,
			ExpiresAt:    time.Now().Add(srv.tokenService.GetAccessTokenDuration()),
		},
	})

	srv.log(ctx).Debug("Login succeeded", slog.Any("identityID", credential.IdentityID))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshTokenString,
	}, nil
}

// loadRoles returns the profile's roles, defaulting to buyer when the
// profile row is missing; the resolver's self-repair will create it.
func (srv *userService) loadRoles(ctx context.Context, identityID uuid.UUID) entity.Roles {
	profile, err := srv.profileRepo.FindByIdentityID(ctx, identityID)
	if err != nil {
		srv.log(ctx).Warn("Could not load profile roles for token claims, defaulting to buyer",
			slog.Any("identityID", identityID), slog.Any("error", err))

		return entity.Roles{entity.RoleBuyer}
	}

	return profile.Roles()
}

func (srv *userService) storeRefreshToken(ctx context.Context, identityID uuid.UUID, refreshTokenString string) error {
	token := &entity.RefreshToken{
		IdentityID: identityID,
		TokenHash:  srv.tokenService.HashToken(refreshTokenString),
		ExpiresAt:  time.Now().Add(srv.tokenService.GetRefreshTokenDuration()),
	}
	if err := srv.accountRepo.CreateRefreshToken(ctx, token); err != nil {
		return errors.Wrap(err, "failed to create refresh token")
	}

	return nil
}

// Logout revokes the refresh token and announces SIGNED_OUT.
func (srv *userService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	srv.log(ctx).Info("Attempting to log out")

	if _, err := srv.tokenService.ValidateToken(input.RefreshToken); err != nil {
		// Delete the stored hash regardless; an expired token still names a session.
		srv.log(ctx).Warn("Logout with invalid token", slog.Any("error", err))
	}

	tokenHash := srv.tokenService.HashToken(input.RefreshToken)
	if err := srv.accountRepo.DeleteRefreshTokenByHash(ctx, tokenHash); err != nil &&
		!errors.Is(err, repository.ErrRefreshTokenNotFound) {
		srv.log(ctx).Error("Failed to delete refresh token", slog.Any("error", err))

		return errors.Wrap(err, "failed to delete refresh token")
	}

	srv.gateway.Announce(entity.SessionEvent{Kind: entity.SessionSignedOut})
	srv.log(ctx).Info("Successfully logged out")

	return nil
}

// RefreshToken issues a new access token. The refresh token itself remains
// unchanged; rotation is not performed.
func (srv *userService) RefreshToken(ctx context.Context, input *usecase.RefreshTokenInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Info("Attempting to refresh access token")

	claims, err := srv.tokenService.ValidateToken(input.RefreshToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "invalid refresh token")
	}

	tokenHash := srv.tokenService.HashToken(input.RefreshToken)
	stored, err := srv.accountRepo.FindRefreshTokenByHash(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token revoked or unknown")
		}

		return nil, errors.Wrap(err, "failed to look up refresh token")
	}
	if time.Now().After(stored.ExpiresAt) {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token expired")
	}

	roles := srv.loadRoles(ctx, claims.IdentityID)
	newAccessToken, _, err := srv.tokenService.GenerateTokens(claims.IdentityID, roles.ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate new access token")
	}

	return &usecase.LoginOutput{
		AccessToken:  newAccessToken,
		RefreshToken: input.RefreshToken,
	}, nil
}

// ActivateRole enables an additional seller or supplier role on an existing
// profile and creates its vendor profile in the same transaction.
func (srv *userService) ActivateRole(ctx context.Context, identityID uuid.UUID, input *usecase.ActivateRoleInput) (*entity.Profile, error) {
	srv.log(ctx).Info("Activating role", slog.Any("identityID", identityID), slog.Any("role", input.Role))

	var updated *entity.Profile
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.NewProfileRepository()

		profile, findErr := profileRepo.FindByIdentityID(ctx, identityID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrProfileNotFound) {
				return errors.Wrap(domainerrors.ErrProfileNotFound, "no profile for identity")
			}

			return errors.Wrap(findErr, "failed to load profile")
		}

		if profile.HasRole(input.Role) {
			return errors.Wrap(domainerrors.ErrConflict, "role already enabled")
		}

		profile.EnableRole(input.Role)
		if updateErr := profileRepo.Update(ctx, profile); updateErr != nil {
			return errors.Wrap(updateErr, "failed to update profile")
		}

		vendor := &entity.VendorProfile{
			ProfileID: identityID,
			Role:      input.Role,
			StoreName: input.StoreName,
		}
		if vendorErr := repoFactory.NewVendorRepository().Insert(ctx, vendor); vendorErr != nil {
			return errors.Wrap(vendorErr, "failed to insert vendor profile")
		}
		updated = profile

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to activate role",
			slog.Any("identityID", identityID), slog.Any("role", input.Role), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute role activation transaction")
	}

	return updated, nil
}
