package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "elyukal/internal/delivery/context"
	"elyukal/internal/domain/entity"
	domainerrors "elyukal/internal/domain/errors"
	"elyukal/internal/domain/repository"
	"elyukal/internal/domain/service"
	"elyukal/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// adminAuthService implements the AdminAuthUsecase interface.
type adminAuthService struct {
	auth   *sessionAuthenticator
	admins repository.AdminUserRepository
	hasher service.PasswordHasher
	logger *slog.Logger
}

// NewAdminAuthService is the constructor for adminAuthService.
func NewAdminAuthService(
	sessions repository.SessionRepository,
	admins repository.AdminUserRepository,
	hasher service.PasswordHasher,
	sessionExpiry time.Duration,
	logger *slog.Logger,
) usecase.AdminAuthUsecase {
	return &adminAuthService{
		auth:   newSessionAuthenticator(sessions, sessionExpiry, logger),
		admins: admins,
		hasher: hasher,
		logger: logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *adminAuthService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new admin account with a hashed password.
func (srv *adminAuthService) Register(ctx context.Context, creds *usecase.AdminCredentials) (*entity.AdminUser, error) {
	srv.log(ctx).Info("Registering admin", slog.String("email", creds.Email))

	if _, err := srv.admins.FindByEmail(ctx, creds.Email); err == nil {
		return nil, domainerrors.ErrUserAlreadyExists
	} else if !errors.Is(err, repository.ErrAdminUserNotFound) {
		return nil, errors.Wrap(err, "failed to check existing admin")
	}

	hash, err := srv.hasher.Hash(creds.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password")
	}

	admin := &entity.AdminUser{
		Email:        creds.Email,
		FirstName:    creds.FirstName,
		LastName:     creds.LastName,
		PasswordHash: hash,
	}

	if err := srv.admins.Create(ctx, admin); err != nil {
		return nil, errors.Wrap(err, "failed to create admin")
	}

	srv.log(ctx).Info("Admin registered", slog.String("email", creds.Email), slog.Int64("id", admin.ID))

	return admin, nil
}

// Login verifies credentials and creates a new session, returning its token.
func (srv *adminAuthService) Login(ctx context.Context, email, password string) (*entity.AdminUser, string, error) {
	srv.log(ctx).Info("Admin login attempt", slog.String("email", email))

	admin, err := srv.admins.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAdminUserNotFound) {
			return nil, "", domainerrors.ErrInvalidCredentials
		}

		return nil, "", errors.Wrap(err, "failed to find admin")
	}

	if !srv.hasher.Check(password, admin.PasswordHash) {
		return nil, "", domainerrors.ErrInvalidCredentials
	}

	token := uuid.New().String()
	if err := srv.auth.issue(ctx, admin.ID, admin.Email, token); err != nil {
		return nil, "", errors.Wrap(err, "failed to issue session")
	}

	srv.log(ctx).Info("Admin logged in", slog.String("email", email))

	return admin, token, nil
}

// Logout deletes the session identified by the token. Unknown tokens are ignored.
func (srv *adminAuthService) Logout(ctx context.Context, token string) error {
	return srv.auth.revoke(ctx, token)
}

// Authenticate resolves a session token to the admin identity, enforcing expiry.
func (srv *adminAuthService) Authenticate(ctx context.Context, token string) (*entity.AdminUser, error) {
	session, err := srv.auth.resolve(ctx, token)
	if err != nil {
		return nil, err
	}

	admin, err := srv.admins.FindByEmail(ctx, session.Email)
	if err != nil {
		if errors.Is(err, repository.ErrAdminUserNotFound) {
			// The session outlived its account.
			return nil, domainerrors.ErrUserNotFound
		}

		srv.log(ctx).Error("Failed to resolve admin identity", slog.Any("error", err))

		return nil, domainerrors.ErrAuthInfraFailure.WrapMessage("identity lookup failed")
	}

	return admin, nil
}
