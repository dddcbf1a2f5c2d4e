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

// storeAuthService implements the StoreAuthUsecase interface.
type storeAuthService struct {
	auth       *sessionAuthenticator
	storeUsers repository.StoreUserRepository
	admins     repository.AdminUserRepository
	hasher     service.PasswordHasher
	logger     *slog.Logger
}

// NewStoreAuthService is the constructor for storeAuthService.
func NewStoreAuthService(
	sessions repository.SessionRepository,
	storeUsers repository.StoreUserRepository,
	admins repository.AdminUserRepository,
	hasher service.PasswordHasher,
	sessionExpiry time.Duration,
	logger *slog.Logger,
) usecase.StoreAuthUsecase {
	return &storeAuthService{
		auth:       newSessionAuthenticator(sessions, sessionExpiry, logger),
		storeUsers: storeUsers,
		admins:     admins,
		hasher:     hasher,
		logger:     logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *storeAuthService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login verifies credentials and creates a new session, returning its token.
// Only sellers with an accepted application may log in.
func (srv *storeAuthService) Login(ctx context.Context, email, password string) (*entity.StoreUser, string, error) {
	srv.log(ctx).Info("Store user login attempt", slog.String("email", email))

	user, err := srv.storeUsers.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrStoreUserNotFound) {
			// Admin accounts must not slip in through the seller login.
			if _, adminErr := srv.admins.FindByEmail(ctx, email); adminErr == nil {
				return nil, "", domainerrors.ErrForbidden.WrapMessage("admin accounts must use the admin login")
			}

			return nil, "", domainerrors.ErrInvalidCredentials
		}

		return nil, "", errors.Wrap(err, "failed to find store user")
	}

	if !srv.hasher.Check(password, user.PasswordHash) {
		return nil, "", domainerrors.ErrInvalidCredentials
	}

	if user.Status != entity.StatusAccepted {
		return nil, "", domainerrors.ErrAccountNotApproved
	}

	token := uuid.New().String()
	if err := srv.auth.issue(ctx, user.ID, user.Email, token); err != nil {
		return nil, "", errors.Wrap(err, "failed to issue session")
	}

	srv.log(ctx).Info("Store user logged in", slog.String("email", email))

	return user, token, nil
}

// Logout deletes the session identified by the token. Unknown tokens are ignored.
func (srv *storeAuthService) Logout(ctx context.Context, token string) error {
	return srv.auth.revoke(ctx, token)
}

// Authenticate resolves a session token to the seller identity, enforcing expiry.
func (srv *storeAuthService) Authenticate(ctx context.Context, token string) (*entity.StoreUser, error) {
	session, err := srv.auth.resolve(ctx, token)
	if err != nil {
		return nil, err
	}

	user, err := srv.storeUsers.FindByEmail(ctx, session.Email)
	if err != nil {
		if errors.Is(err, repository.ErrStoreUserNotFound) {
			// The session outlived its account.
			return nil, domainerrors.ErrUserNotFound
		}

		srv.log(ctx).Error("Failed to resolve store user identity", slog.Any("error", err))

		return nil, domainerrors.ErrAuthInfraFailure.WrapMessage("identity lookup failed")
	}

	return user, nil
}
