// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"elyukal/internal/domain/entity"
)

// AdminCredentials carries the payload of an admin registration request.
type AdminCredentials struct {
	Email     string
	FirstName string
	LastName  string
	Password  string
}

// AdminAuthUsecase defines the authentication operations for administrators.
// Sessions are opaque server-side rows referenced by an HTTP-only cookie.
type AdminAuthUsecase interface {
	// Register creates a new admin account with a hashed password.
	Register(ctx context.Context, creds *AdminCredentials) (*entity.AdminUser, error)

	// Login verifies credentials and creates a new session, returning its token.
	Login(ctx context.Context, email, password string) (*entity.AdminUser, string, error)

	// Logout deletes the session identified by the token. Unknown tokens are ignored.
	Logout(ctx context.Context, token string) error

	// Authenticate resolves a session token to the admin identity, enforcing expiry.
	Authenticate(ctx context.Context, token string) (*entity.AdminUser, error)
}

// StoreAuthUsecase defines the authentication operations for sellers.
// Only sellers with an accepted application may log in.
type StoreAuthUsecase interface {
	// Login verifies credentials and creates a new session, returning its token.
	Login(ctx context.Context, email, password string) (*entity.StoreUser, string, error)

	// Logout deletes the session identified by the token. Unknown tokens are ignored.
	Logout(ctx context.Context, token string) error

	// Authenticate resolves a session token to the seller identity, enforcing expiry.
	Authenticate(ctx context.Context, token string) (*entity.StoreUser, error)
}
