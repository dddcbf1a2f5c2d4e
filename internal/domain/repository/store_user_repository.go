package repository

import (
	"context"
	"errors"

	"elyukal/internal/domain/entity"
)

// ErrStoreUserNotFound is a domain-specific error returned when a seller account is not found.
var ErrStoreUserNotFound = errors.New("store user not found")

// StoreUserRepository defines the standard operations for seller account persistence.
type StoreUserRepository interface {
	// FindByID retrieves a single seller by their unique ID.
	FindByID(ctx context.Context, id int64) (*entity.StoreUser, error)

	// FindByEmail retrieves a single seller by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.StoreUser, error)

	// FindAll retrieves every seller application, newest first.
	FindAll(ctx context.Context) ([]*entity.StoreUser, error)

	// Create persists a new seller application.
	Create(ctx context.Context, user *entity.StoreUser) error

	// CountByStatus returns the number of applications in the given status.
	CountByStatus(ctx context.Context, status entity.ApplicationStatus) (int64, error)

	// UpdateStatus sets the application status of a seller.
	UpdateStatus(ctx context.Context, id int64, status entity.ApplicationStatus) error

	// FindByStoreOwned retrieves the seller owning the given store, if any.
	FindByStoreOwned(ctx context.Context, storeID string) (*entity.StoreUser, error)

	// UpdateStoreOwned links a store to a seller account. An empty storeID
	// clears the link.
	UpdateStoreOwned(ctx context.Context, id int64, storeID string) error
}
