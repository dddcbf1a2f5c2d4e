// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "elyukal/internal/delivery/context"
	"elyukal/internal/domain/entity"
	domainerrors "elyukal/internal/domain/errors"
	"elyukal/internal/domain/repository"

	"github.com/pkg/errors"
)

// sessionAuthenticator resolves opaque cookie tokens against a session table.
// It is shared by the admin and store-user auth services, each bound to its
// own session repository and expiry window.
type sessionAuthenticator struct {
	sessions repository.SessionRepository
	expiry   time.Duration
	logger   *slog.Logger
}

func newSessionAuthenticator(sessions repository.SessionRepository, expiry time.Duration, logger *slog.Logger) *sessionAuthenticator {
	return &sessionAuthenticator{
		sessions: sessions,
		expiry:   expiry,
		logger:   logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (a *sessionAuthenticator) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, a.logger)
}

// resolve validates the token and returns the live session row.
// Expired sessions are deleted before the expiry error is returned, so a
// repeated attempt with the same token fails as invalid rather than expired.
func (a *sessionAuthenticator) resolve(ctx context.Context, token string) (*entity.Session, error) {
	if token == "" {
		return nil, domainerrors.ErrUnauthenticated
	}

	session, err := a.sessions.FindByToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, domainerrors.ErrInvalidSession
		}

		a.log(ctx).Error("Failed to look up session", slog.Any("error", err))

		return nil, domainerrors.ErrAuthInfraFailure.WrapMessage("session lookup failed")
	}

	if session.Expired(a.expiry, time.Now()) {
		// Best-effort cleanup; the session is rejected either way.
		if err := a.sessions.Delete(ctx, token); err != nil {
			a.log(ctx).Warn("Failed to delete expired session", slog.Any("error", err))
		}

		return nil, domainerrors.ErrSessionExpired
	}

	return session, nil
}

// issue creates a fresh session row for the given identity and returns its token.
func (a *sessionAuthenticator) issue(ctx context.Context, userID int64, email, token string) error {
	session := &entity.Session{
		Token:     token,
		UserID:    userID,
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}

	if err := a.sessions.Create(ctx, session); err != nil {
		return errors.Wrap(err, "failed to create session")
	}

	return nil
}

// revoke deletes the session for the given token. Unknown tokens are ignored.
func (a *sessionAuthenticator) revoke(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	if err := a.sessions.Delete(ctx, token); err != nil {
		return errors.Wrap(err, "failed to delete session")
	}

	return nil
}
