package repository

import (
	"context"
	"errors"

	"elyukal/internal/domain/entity"
)

// ErrAdminUserNotFound is a domain-specific error returned when an admin account is not found.
var ErrAdminUserNotFound = errors.New("admin user not found")

// AdminUserRepository defines the standard operations for admin account persistence.
type AdminUserRepository interface {
	// FindByEmail retrieves a single admin by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.AdminUser, error)

	// Create persists a new admin account.
	Create(ctx context.Context, admin *entity.AdminUser) error

	// Count returns the total number of admin accounts.
	Count(ctx context.Context) (int64, error)
}
