package repository

import (
	"context"
	"errors"

	"elyukal/internal/domain/entity"
)

// ErrStoreNotFound is a domain-specific error returned when a store is not found.
var ErrStoreNotFound = errors.New("store not found")

// StoreRepository defines the standard operations for store persistence.
type StoreRepository interface {
	// FindByID retrieves a single store by its UUID.
	FindByID(ctx context.Context, id string) (*entity.Store, error)

	// FindAll retrieves every store, newest first.
	FindAll(ctx context.Context) ([]*entity.Store, error)

	// Count returns the total number of stores.
	Count(ctx context.Context) (int64, error)

	// Create persists a new store.
	Create(ctx context.Context, store *entity.Store) error

	// Update modifies an existing store.
	Update(ctx context.Context, store *entity.Store) error

	// Delete removes a store by its UUID.
	Delete(ctx context.Context, id string) error
}
