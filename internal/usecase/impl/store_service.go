package impl

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"

	deliverycontext "elyukal/internal/delivery/context"
	"elyukal/internal/domain/entity"
	domainerrors "elyukal/internal/domain/errors"
	"elyukal/internal/domain/repository"
	"elyukal/internal/domain/service"
	"elyukal/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Prefix for uploaded store banners inside the shared asset bucket.
const prefixStoreImage = "store-images"

// storeService implements the StoreUsecase interface.
type storeService struct {
	stores     repository.StoreRepository
	activities repository.ActivityRepository
	txManager  repository.TransactionManager
	qrcodes    service.QRCodeService
	storage    service.FileStorage
	logger     *slog.Logger
}

// NewStoreService is the constructor for storeService.
func NewStoreService(
	stores repository.StoreRepository,
	activities repository.ActivityRepository,
	txManager repository.TransactionManager,
	qrcodes service.QRCodeService,
	storage service.FileStorage,
	logger *slog.Logger,
) usecase.StoreUsecase {
	return &storeService{
		stores:     stores,
		activities: activities,
		txManager:  txManager,
		qrcodes:    qrcodes,
		storage:    storage,
		logger:     logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *storeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create adds a new store, optionally linking it to a seller account.
// The store insert and the seller link are committed atomically.
func (srv *storeService) Create(ctx context.Context, actor entity.Actor, input *usecase.StoreInput) (*entity.Store, error) {
	imageURL, err := srv.resolveImage(ctx, input)
	if err != nil {
		return nil, err
	}

	store := &entity.Store{
		ID:             uuid.New().String(),
		Name:           input.Name,
		Description:    input.Description,
		StoreImageURL:  imageURL,
		Type:           input.Type,
		Town:           input.Town,
		Latitude:       input.Latitude,
		Longitude:      input.Longitude,
		Phone:          input.Phone,
		Email:          input.Email,
		Website:        input.Website,
		OperatingHours: input.OperatingHours,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		storeRepo := repoFactory.NewStoreRepository()
		storeUserRepo := repoFactory.NewStoreUserRepository()

		if err := storeRepo.Create(ctx, store); err != nil {
			return errors.Wrap(err, "failed to create store")
		}

		if input.OwnerID != 0 {
			owner, err := storeUserRepo.FindByID(ctx, input.OwnerID)
			if err != nil {
				if errors.Is(err, repository.ErrStoreUserNotFound) {
					return errors.Wrap(domainerrors.ErrNotFound, "seller not found")
				}

				return errors.Wrap(err, "failed to find seller")
			}

			if owner.StoreOwned != "" {
				return domainerrors.ErrStoreAlreadyOwned
			}

			if err := storeUserRepo.UpdateStoreOwned(ctx, input.OwnerID, store.ID); err != nil {
				return errors.Wrap(err, "failed to link store to seller")
			}
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to create store", slog.Any("error", err))

		return nil, err
	}

	recordActivity(ctx, srv.logger, srv.activities, actor.Name, entity.ActionAdded, "store", store.Name)
	srv.log(ctx).Info("Store created", slog.String("store_id", store.ID), slog.String("actor", actor.Name))

	return store, nil
}

// Update modifies an existing store and logs the activity.
func (srv *storeService) Update(ctx context.Context, actor entity.Actor, storeID string, input *usecase.StoreInput) (*entity.Store, error) {
	if actor.IsScoped() && actor.StoreID != storeID {
		return nil, domainerrors.ErrForbidden.WrapMessage("store belongs to another seller")
	}

	store, err := srv.stores.FindByID(ctx, storeID)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, domainerrors.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to find store")
	}

	imageURL, err := srv.resolveImage(ctx, input)
	if err != nil {
		return nil, err
	}

	store.Name = input.Name
	store.Description = input.Description
	store.StoreImageURL = imageURL
	store.Type = input.Type
	store.Town = input.Town
	store.Latitude = input.Latitude
	store.Longitude = input.Longitude
	store.Phone = input.Phone
	store.Email = input.Email
	store.Website = input.Website
	store.OperatingHours = input.OperatingHours

	if err := srv.stores.Update(ctx, store); err != nil {
		return nil, errors.Wrap(err, "failed to update store")
	}

	recordActivity(ctx, srv.logger, srv.activities, actor.Name, entity.ActionEdited, "store", store.Name)
	srv.log(ctx).Info("Store updated", slog.String("store_id", store.ID), slog.String("actor", actor.Name))

	return store, nil
}

// Delete removes a store together with its seller link. Both writes commit in
// one transaction so no seller is left pointing at a missing store.
func (srv *storeService) Delete(ctx context.Context, actor entity.Actor, storeID string) error {
	store, err := srv.stores.FindByID(ctx, storeID)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return domainerrors.ErrStoreNotFound
		}

		return errors.Wrap(err, "failed to find store")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		storeRepo := repoFactory.NewStoreRepository()
		storeUserRepo := repoFactory.NewStoreUserRepository()
		productRepo := repoFactory.NewProductRepository()

		if err := productRepo.DeleteByStore(ctx, storeID); err != nil {
			return errors.Wrap(err, "failed to delete store products")
		}

		owner, err := storeUserRepo.FindByStoreOwned(ctx, storeID)
		if err != nil && !errors.Is(err, repository.ErrStoreUserNotFound) {
			return errors.Wrap(err, "failed to find store owner")
		}

		if owner != nil {
			if err := storeUserRepo.UpdateStoreOwned(ctx, owner.ID, ""); err != nil {
				return errors.Wrap(err, "failed to unlink seller")
			}
		}

		if err := storeRepo.Delete(ctx, storeID); err != nil {
			return errors.Wrap(err, "failed to delete store")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to delete store", slog.Any("error", err), slog.String("store_id", storeID))

		return err
	}

	recordActivity(ctx, srv.logger, srv.activities, actor.Name, entity.ActionDeleted, "store", store.Name)
	srv.log(ctx).Info("Store deleted", slog.String("store_id", storeID), slog.String("actor", actor.Name))

	return nil
}

// FetchAll lists every store.
func (srv *storeService) FetchAll(ctx context.Context) ([]*entity.Store, error) {
	stores, err := srv.stores.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list stores")
	}

	return stores, nil
}

// FetchByID retrieves a single store.
func (srv *storeService) FetchByID(ctx context.Context, storeID string) (*entity.Store, error) {
	store, err := srv.stores.FindByID(ctx, storeID)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, domainerrors.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to find store")
	}

	return store, nil
}

// GenerateQRCode renders a PNG QR code linking to the storefront page.
func (srv *storeService) GenerateQRCode(ctx context.Context, storeID string) ([]byte, error) {
	// Confirm the store exists before rendering anything.
	if _, err := srv.FetchByID(ctx, storeID); err != nil {
		return nil, err
	}

	png, err := srv.qrcodes.GenerateStoreQR(storeID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate store QR code")
	}

	return png, nil
}

// resolveImage uploads a freshly submitted banner, or keeps the existing URL
// when no new file was sent.
func (srv *storeService) resolveImage(ctx context.Context, input *usecase.StoreInput) (string, error) {
	if input.Image == nil {
		return input.StoreImageURL, nil
	}

	if input.Image.Size > maxDocumentSize {
		return "", domainerrors.ErrFileTooLarge
	}

	if !allowedImageType(input.Image) {
		return "", domainerrors.ErrUnsupportedFileType
	}

	key := fmt.Sprintf("%s/%s%s", prefixStoreImage, uuid.New().String(), strings.ToLower(path.Ext(input.Image.Filename)))

	url, err := srv.storage.Upload(ctx, bucketAssets, key, input.Image.ContentType, input.Image.Content)
	if err != nil {
		srv.log(ctx).Error("Failed to upload store image", slog.Any("error", err), slog.String("key", key))

		return "", domainerrors.ErrUploadFailed.WrapMessage("failed to store image")
	}

	return url, nil
}
