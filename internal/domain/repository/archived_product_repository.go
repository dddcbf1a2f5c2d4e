package repository

import (
	"context"
	"errors"

	"elyukal/internal/domain/entity"
)

// ErrArchivedProductNotFound is a domain-specific error returned when an archived product is not found.
var ErrArchivedProductNotFound = errors.New("archived product not found")

// ArchivedProductRepository defines the standard operations for archived product persistence.
type ArchivedProductRepository interface {
	// FindByID retrieves a single archived product by its archive-table id.
	FindByID(ctx context.Context, id int64) (*entity.ArchivedProduct, error)

	// FindByOriginalID retrieves an archived product by the id it had in the
	// active table. Used to detect already-archived products.
	FindByOriginalID(ctx context.Context, originalID int64) (*entity.ArchivedProduct, error)

	// FindAll retrieves every archived product, newest archival first.
	FindAll(ctx context.Context) ([]*entity.ArchivedProduct, error)

	// FindByStore retrieves the archived products belonging to the given store.
	FindByStore(ctx context.Context, storeID string) ([]*entity.ArchivedProduct, error)

	// Create persists a new archived product snapshot. The generated id is written back.
	Create(ctx context.Context, product *entity.ArchivedProduct) error

	// Delete removes an archived product by its archive-table id.
	Delete(ctx context.Context, id int64) error
}
