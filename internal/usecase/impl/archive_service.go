package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "elyukal/internal/delivery/context"
	"elyukal/internal/domain/entity"
	domainerrors "elyukal/internal/domain/errors"
	"elyukal/internal/domain/repository"
	"elyukal/internal/usecase"

	"github.com/pkg/errors"
)

// archiveService implements the ArchiveUsecase interface.
//
// The active and archived tables are kept consistent with a compensating
// insert-then-delete sequence rather than a transaction: if the second step
// fails, the first is undone best-effort and the operation reports
// ErrTransitionFailed. The unique index on archived_products.original_product_id
// stops two racing archives from both inserting a snapshot.
type archiveService struct {
	products   repository.ProductRepository
	archived   repository.ArchivedProductRepository
	activities repository.ActivityRepository
	logger     *slog.Logger
}

// NewArchiveService is the constructor for archiveService.
func NewArchiveService(
	products repository.ProductRepository,
	archived repository.ArchivedProductRepository,
	activities repository.ActivityRepository,
	logger *slog.Logger,
) usecase.ArchiveUsecase {
	return &archiveService{
		products:   products,
		archived:   archived,
		activities: activities,
		logger:     logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *archiveService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Archive moves an active product into the archive.
// Archiving a product that is already archived succeeds without change.
func (srv *archiveService) Archive(ctx context.Context, actor entity.Actor, productID int64, reason string) (*entity.ArchivedProduct, error) {
	srv.log(ctx).Info("Archiving product", slog.Int64("product_id", productID), slog.String("actor", actor.Name))

	// A snapshot may already exist from an earlier or racing archive. Checking
	// the archive table first keeps the operation idempotent even when the
	// product is momentarily present in both tables.
	if snapshot, err := srv.archived.FindByOriginalID(ctx, productID); err == nil {
		srv.log(ctx).Info("Product already archived", slog.Int64("product_id", productID))

		return snapshot, nil
	} else if !errors.Is(err, repository.ErrArchivedProductNotFound) {
		return nil, errors.Wrap(err, "failed to check archive for product")
	}

	product, err := srv.products.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	if err := srv.checkProductOwnership(actor, product.StoreID); err != nil {
		return nil, err
	}

	snapshot := &entity.ArchivedProduct{
		OriginalProductID: product.ID,
		Name:              product.Name,
		Description:       product.Description,
		Category:          product.Category,
		PriceMin:          product.PriceMin,
		PriceMax:          product.PriceMax,
		AverageRating:     product.AverageRating,
		TotalReviews:      product.TotalReviews,
		ImageURLs:         product.ImageURLs,
		ARAssetURL:        product.ARAssetURL,
		Address:           product.Address,
		Latitude:          product.Latitude,
		Longitude:         product.Longitude,
		StoreID:           product.StoreID,
		Town:              product.Town,
		Views:             product.Views,
		ArchivedAt:        time.Now().UTC(),
		ArchivedBy:        actor.ID,
		ArchivedByType:    actor.Type,
		Reason:            reason,
	}

	if err := srv.archived.Create(ctx, snapshot); err != nil {
		srv.log(ctx).Error("Failed to insert archive snapshot", slog.Any("error", err), slog.Int64("product_id", productID))

		return nil, domainerrors.ErrTransitionFailed.WrapMessage("failed to insert archive snapshot")
	}

	if err := srv.products.Delete(ctx, productID); err != nil {
		// Compensate: remove the snapshot so the product is not in both tables.
		if compErr := srv.archived.Delete(ctx, snapshot.ID); compErr != nil {
			srv.log(ctx).Error("Compensation failed, product exists in both tables",
				slog.Any("error", compErr), slog.Int64("product_id", productID))
		}

		srv.log(ctx).Error("Failed to delete active product", slog.Any("error", err), slog.Int64("product_id", productID))

		return nil, domainerrors.ErrTransitionFailed.WrapMessage("failed to remove active product")
	}

	recordTransition(ctx, srv.logger, srv.activities, actor.Name, "archived", product.Name)
	srv.log(ctx).Info("Product archived", slog.Int64("product_id", productID), slog.Int64("archive_id", snapshot.ID))

	return snapshot, nil
}

// Restore moves an archived product back to the active table under its original id.
func (srv *archiveService) Restore(ctx context.Context, actor entity.Actor, archivedID int64) (*entity.Product, error) {
	srv.log(ctx).Info("Restoring product", slog.Int64("archive_id", archivedID), slog.String("actor", actor.Name))

	snapshot, err := srv.archived.FindByID(ctx, archivedID)
	if err != nil {
		if errors.Is(err, repository.ErrArchivedProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find archived product")
	}

	if err := srv.checkProductOwnership(actor, snapshot.StoreID); err != nil {
		return nil, err
	}

	product := &entity.Product{
		ID:            snapshot.OriginalProductID,
		Name:          snapshot.Name,
		Description:   snapshot.Description,
		Category:      snapshot.Category,
		PriceMin:      snapshot.PriceMin,
		PriceMax:      snapshot.PriceMax,
		AverageRating: snapshot.AverageRating,
		TotalReviews:  snapshot.TotalReviews,
		InStock:       true,
		ImageURLs:     snapshot.ImageURLs,
		ARAssetURL:    snapshot.ARAssetURL,
		Address:       snapshot.Address,
		Latitude:      snapshot.Latitude,
		Longitude:     snapshot.Longitude,
		StoreID:       snapshot.StoreID,
		Town:          snapshot.Town,
		Views:         snapshot.Views,
	}

	if err := srv.products.CreateWithID(ctx, product); err != nil {
		srv.log(ctx).Error("Failed to reinsert product", slog.Any("error", err), slog.Int64("archive_id", archivedID))

		return nil, domainerrors.ErrTransitionFailed.WrapMessage("failed to reinsert product")
	}

	if err := srv.archived.Delete(ctx, archivedID); err != nil {
		// Compensate: remove the restored row so the product is not in both tables.
		if compErr := srv.products.Delete(ctx, product.ID); compErr != nil {
			srv.log(ctx).Error("Compensation failed, product exists in both tables",
				slog.Any("error", compErr), slog.Int64("archive_id", archivedID))
		}

		srv.log(ctx).Error("Failed to delete archive snapshot", slog.Any("error", err), slog.Int64("archive_id", archivedID))

		return nil, domainerrors.ErrTransitionFailed.WrapMessage("failed to remove archive snapshot")
	}

	recordTransition(ctx, srv.logger, srv.activities, actor.Name, "restored", product.Name)
	srv.log(ctx).Info("Product restored", slog.Int64("product_id", product.ID))

	return product, nil
}

// PermanentlyDelete removes an archived product for good.
func (srv *archiveService) PermanentlyDelete(ctx context.Context, actor entity.Actor, archivedID int64) error {
	srv.log(ctx).Info("Permanently deleting product", slog.Int64("archive_id", archivedID), slog.String("actor", actor.Name))

	snapshot, err := srv.archived.FindByID(ctx, archivedID)
	if err != nil {
		if errors.Is(err, repository.ErrArchivedProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to find archived product")
	}

	if err := srv.checkProductOwnership(actor, snapshot.StoreID); err != nil {
		return err
	}

	if err := srv.archived.Delete(ctx, archivedID); err != nil {
		if errors.Is(err, repository.ErrArchivedProductNotFound) {
			// A concurrent delete got there first.
			return nil
		}

		return errors.Wrap(err, "failed to delete archived product")
	}

	recordTransition(ctx, srv.logger, srv.activities, actor.Name, "permanently deleted", snapshot.Name)
	srv.log(ctx).Info("Product permanently deleted", slog.Int64("archive_id", archivedID))

	return nil
}

// FetchArchived lists archived products visible to the actor.
func (srv *archiveService) FetchArchived(ctx context.Context, actor entity.Actor) ([]*entity.ArchivedProduct, error) {
	if !actor.IsScoped() {
		products, err := srv.archived.FindAll(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to list archived products")
		}

		return products, nil
	}

	if actor.StoreID == "" {
		return nil, domainerrors.ErrNoStoreOwned
	}

	products, err := srv.archived.FindByStore(ctx, actor.StoreID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list archived products by store")
	}

	return products, nil
}

// checkProductOwnership rejects scoped actors acting outside their own store.
func (srv *archiveService) checkProductOwnership(actor entity.Actor, storeID string) error {
	if !actor.IsScoped() {
		return nil
	}

	if actor.StoreID == "" {
		return domainerrors.ErrNoStoreOwned
	}

	if actor.StoreID != storeID {
		return domainerrors.ErrForbidden.WrapMessage("product belongs to another store")
	}

	return nil
}
