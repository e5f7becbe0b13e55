// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	"blog/config"
	deliverycontext "blog/internal/delivery/context"
	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/repository"
	"blog/internal/domain/service"
	"blog/internal/usecase"
)

const defaultReconcileAttempts = 3

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo          repository.UserRepository
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	verifiers         map[entity.ProviderType]service.CredentialVerifier
	reconcileAttempts int
	logger            *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Verifiers    []service.CredentialVerifier `group:"credentialVerifiers"`
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. Verifiers are indexed by provider.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	attempts := defaultReconcileAttempts
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.ReconcileAttempts > 0 {
		attempts = params.Config.Auth.ReconcileAttempts
	}

	verifiers := make(map[entity.ProviderType]service.CredentialVerifier, len(params.Verifiers))
	for _, v := range params.Verifiers {
		verifiers[v.Provider()] = v
	}

	return &authService{
		userRepo:          params.UserRepo,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		verifiers:         verifiers,
		reconcileAttempts: attempts,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a local account and signs the new user in.
func (srv *authService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.TokenOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	_, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err == nil {
		srv.log(ctx).Warn("Registration rejected, email taken", slog.String("email", input.Email))

		return nil, domainerrors.ErrUserAlreadyExists
	}
	if !errors.Is(err, domainerrors.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check existing user")
	}

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		srv.log(ctx).Warn("Password validation failed during registration", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	newUser := &entity.User{
		Email:            input.Email,
		Name:             input.Name,
		PasswordHash:     hashedPassword,
		IsActive:         true,
		SubscriptionType: entity.SubscriptionFree,
	}
	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		return nil, errors.Wrap(err, "failed to create user during registration")
	}

	srv.log(ctx).Debug("Registration completed", slog.Int64("userID", newUser.ID))

	return srv.issue(ctx, newUser)
}

// PasswordLogin authenticates an active user by email and password.
func (srv *authService) PasswordLogin(ctx context.Context, input usecase.LoginInput) (*usecase.TokenOutput, error) {
	user, err := srv.userRepo.FindActiveByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserNotFound) {
			srv.log(ctx).Info("Login failed, no active user", slog.String("email", input.Email))

			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user for login")
	}

	// OAuth-only accounts have no local password to check against.
	if !user.HasPassword() {
		srv.log(ctx).Info("Login failed, account has no password", slog.Int64("userID", user.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Info("Login failed, password mismatch", slog.Int64("userID", user.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	return srv.issue(ctx, user)
}

// OAuthLogin verifies a provider credential, finds or creates the matching user and signs them in.
func (srv *authService) OAuthLogin(ctx context.Context, input usecase.OAuthLoginInput) (*usecase.TokenOutput, error) {
	verifier, ok := srv.verifiers[input.Provider]
	if !ok {
		return nil, domainerrors.ErrAuthorizationFailed.WithMessage("Unsupported OAuth provider")
	}

	claim, err := verifier.Verify(ctx, input.Token)
	if err != nil {
		return nil, errors.Wrapf(err, "%s credential rejected", input.Provider)
	}

	user, err := srv.reconcile(ctx, claim)
	if err != nil {
		return nil, err
	}

	return srv.issue(ctx, user)
}

// reconcile returns the user owning claim.Email, creating it on first sight.
// A concurrent first login for the same email surfaces as ErrUserAlreadyExists
// from the unique index, after which the winner's row is read back.
func (srv *authService) reconcile(ctx context.Context, claim *entity.IdentityClaim) (*entity.User, error) {
	var lastErr error
	for attempt := 1; attempt <= srv.reconcileAttempts; attempt++ {
		existing, err := srv.userRepo.FindByEmail(ctx, claim.Email)
		if err == nil {
			return existing, nil
		}
		if !errors.Is(err, domainerrors.ErrUserNotFound) {
			return nil, errors.Wrap(err, "failed to look up user by email")
		}

		newUser := &entity.User{
			Email:            claim.Email,
			Name:             claim.Name,
			Provider:         claim.Provider,
			ProviderID:       claim.Subject,
			ProfileImageLink: claim.Picture,
			IsActive:         true,
			SubscriptionType: entity.SubscriptionFree,
		}
		err = srv.userRepo.Create(ctx, newUser)
		if err == nil {
			srv.log(ctx).Info("Created user from OAuth login",
				slog.Int64("userID", newUser.ID),
				slog.String("provider", claim.Provider.String()))

			return newUser, nil
		}
		if !errors.Is(err, domainerrors.ErrUserAlreadyExists) {
			return nil, errors.Wrap(err, "failed to create user from OAuth login")
		}

		srv.log(ctx).Debug("Concurrent OAuth signup detected, re-reading user",
			slog.String("email", claim.Email),
			slog.Int("attempt", attempt))
		lastErr = err
	}

	return nil, errors.Wrap(lastErr, "user reconciliation did not converge")
}

func (srv *authService) issue(ctx context.Context, user *entity.User) (*usecase.TokenOutput, error) {
	token, err := srv.tokenService.IssueToken(user.ID, user.Email)
	if err != nil {
		srv.log(ctx).Error("Failed to issue access token", slog.Int64("userID", user.ID), slog.Any("error", err))

		return nil, domainerrors.ErrTokenIssueFailed.WithDetails(err.Error())
	}

	return &usecase.TokenOutput{AccessToken: token, User: user}, nil
}
