// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"elyukal/internal/domain/entity"
)

// ErrSessionNotFound is a domain-specific error returned when a session token has no row.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository defines the standard operations for session persistence.
// Implementations are bound to a single session table; the admin and
// store-user role families each get their own instance.
type SessionRepository interface {
	// FindByToken retrieves a session row by its opaque token.
	FindByToken(ctx context.Context, token string) (*entity.Session, error)

	// Create persists a new session row.
	Create(ctx context.Context, session *entity.Session) error

	// Delete removes a session row by token. Deleting a missing token is not an error.
	Delete(ctx context.Context, token string) error

	// DeleteByEmail removes every session belonging to the given email.
	DeleteByEmail(ctx context.Context, email string) error
}
