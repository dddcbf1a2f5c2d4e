package usecase

import (
	"context"

	"elyukal/internal/domain/entity"
)

// ProductInput carries the payload of a product create or update request.
// Images and ARAsset are freshly uploaded files; ImageURLs holds previously
// uploaded images to keep.
type ProductInput struct {
	Name        string
	Description string
	Category    string
	PriceMin    float64
	PriceMax    float64
	InStock     bool
	ImageURLs   []string
	Images      []*FileUpload
	ARAssetURL  string
	ARAsset     *FileUpload
	Address     string
	Latitude    float64
	Longitude   float64
	StoreID     string
	Town        string
}

// ProductUsecase defines the operations on active product listings.
type ProductUsecase interface {
	// Create adds a new active product and logs the activity.
	Create(ctx context.Context, actor entity.Actor, input *ProductInput) (*entity.Product, error)

	// Update modifies an existing product and logs the activity.
	Update(ctx context.Context, actor entity.Actor, productID int64, input *ProductInput) (*entity.Product, error)

	// Delete removes an active product outright, bypassing the archive.
	Delete(ctx context.Context, actor entity.Actor, productID int64) error

	// FetchAll lists every active product.
	FetchAll(ctx context.Context) ([]*entity.Product, error)

	// FetchByID retrieves a single active product.
	FetchByID(ctx context.Context, productID int64) (*entity.Product, error)

	// FetchByStore lists the active products of one store.
	FetchByStore(ctx context.Context, storeID string) ([]*entity.Product, error)

	// FetchMostViewed lists the most viewed active products.
	FetchMostViewed(ctx context.Context) ([]*entity.Product, error)
}
