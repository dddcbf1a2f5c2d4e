package repository

import (
	"context"
	"errors"

	"elyukal/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a shopper account is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for shopper account persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByEmail retrieves a single shopper by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindAll retrieves every shopper account, newest first.
	FindAll(ctx context.Context) ([]*entity.User, error)

	// Count returns the total number of shopper accounts.
	Count(ctx context.Context) (int64, error)

	// UpdateProfile updates the name fields of a shopper, keyed by email.
	UpdateProfile(ctx context.Context, user *entity.User) error

	// UpdateBan sets or clears the ban fields of a shopper.
	UpdateBan(ctx context.Context, user *entity.User) error
}
