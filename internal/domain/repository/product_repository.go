package repository

import (
	"context"
	"errors"

	"elyukal/internal/domain/entity"
)

// ErrProductNotFound is a domain-specific error returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the standard operations for active product persistence.
type ProductRepository interface {
	// FindByID retrieves a single active product by its unique ID.
	FindByID(ctx context.Context, id int64) (*entity.Product, error)

	// FindAll retrieves every active product, newest first.
	FindAll(ctx context.Context) ([]*entity.Product, error)

	// FindByStore retrieves the active products belonging to the given store.
	FindByStore(ctx context.Context, storeID string) ([]*entity.Product, error)

	// FindMostViewed retrieves the top active products ordered by view count.
	FindMostViewed(ctx context.Context, limit int) ([]*entity.Product, error)

	// Count returns the total number of active products.
	Count(ctx context.Context) (int64, error)

	// CountCategories returns the number of distinct product categories in use.
	CountCategories(ctx context.Context) (int64, error)

	// Create persists a new active product. The generated id is written back.
	Create(ctx context.Context, product *entity.Product) error

	// CreateWithID persists a product under an explicit primary key.
	// Used when restoring an archived product to its original id.
	CreateWithID(ctx context.Context, product *entity.Product) error

	// Update modifies an existing active product.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes an active product by id.
	Delete(ctx context.Context, id int64) error

	// DeleteByStore removes every active product of a store. Removing none is
	// not an error.
	DeleteByStore(ctx context.Context, storeID string) error
}
