package usecase

import (
	"context"

	"elyukal/internal/domain/entity"
)

// ArchiveUsecase defines the product lifecycle transitions between the active
// and archived tables. Store-user actors may only act on products of their own
// store; admin actors are unrestricted.
type ArchiveUsecase interface {
	// Archive moves an active product into the archive. Archiving a product
	// that is already archived succeeds without change.
	Archive(ctx context.Context, actor entity.Actor, productID int64, reason string) (*entity.ArchivedProduct, error)

	// Restore moves an archived product back to the active table under its
	// original id.
	Restore(ctx context.Context, actor entity.Actor, archivedID int64) (*entity.Product, error)

	// PermanentlyDelete removes an archived product for good.
	PermanentlyDelete(ctx context.Context, actor entity.Actor, archivedID int64) error

	// FetchArchived lists archived products visible to the actor.
	FetchArchived(ctx context.Context, actor entity.Actor) ([]*entity.ArchivedProduct, error)
}
