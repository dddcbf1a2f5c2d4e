package repository

import (
	"context"

	"elyukal/internal/domain/entity"
)

// ReviewRepository defines the read operations for product reviews.
type ReviewRepository interface {
	// FindByProduct retrieves the reviews left on the given product.
	FindByProduct(ctx context.Context, productID int64) ([]*entity.Review, error)

	// Count returns the total number of reviews.
	Count(ctx context.Context) (int64, error)

	// AverageRating returns the mean rating across every review, 0 when there
	// are none.
	AverageRating(ctx context.Context) (float64, error)
}

// MunicipalityRepository defines the read operations for the municipality reference table.
type MunicipalityRepository interface {
	// FindAll retrieves every municipality ordered by name.
	FindAll(ctx context.Context) ([]*entity.Municipality, error)
}
