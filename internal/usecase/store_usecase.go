package usecase

import (
	"context"

	"elyukal/internal/domain/entity"
)

// StoreInput carries the payload of a store create or update request.
// Image is a freshly uploaded banner; StoreImageURL keeps an existing one.
type StoreInput struct {
	Name           string
	Description    string
	StoreImageURL  string
	Image          *FileUpload
	Type           string
	Town           string
	Latitude       float64
	Longitude      float64
	Phone          string
	Email          string
	Website        string
	OperatingHours string
	OwnerID        int64 // Seller to link the new store to; 0 for none.
}

// StoreUsecase defines the operations on seller storefronts.
type StoreUsecase interface {
	// Create adds a new store, optionally linking it to a seller account.
	Create(ctx context.Context, actor entity.Actor, input *StoreInput) (*entity.Store, error)

	// Update modifies an existing store and logs the activity.
	Update(ctx context.Context, actor entity.Actor, storeID string, input *StoreInput) (*entity.Store, error)

	// Delete removes a store together with its seller link.
	Delete(ctx context.Context, actor entity.Actor, storeID string) error

	// FetchAll lists every store.
	FetchAll(ctx context.Context) ([]*entity.Store, error)

	// FetchByID retrieves a single store.
	FetchByID(ctx context.Context, storeID string) (*entity.Store, error)

	// GenerateQRCode renders a PNG QR code linking to the storefront page.
	GenerateQRCode(ctx context.Context, storeID string) ([]byte, error)
}
