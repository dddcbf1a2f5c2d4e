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

const mostViewedLimit = 5

// Product media lands in the shared asset bucket under per-kind prefixes.
const (
	bucketAssets       = "assets"
	prefixProductImage = "product-images"
	prefixARAsset      = "ar-assets"
)

// productService implements the ProductUsecase interface.
type productService struct {
	products   repository.ProductRepository
	activities repository.ActivityRepository
	storage    service.FileStorage
	logger     *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(
	products repository.ProductRepository,
	activities repository.ActivityRepository,
	storage service.FileStorage,
	logger *slog.Logger,
) usecase.ProductUsecase {
	return &productService{
		products:   products,
		activities: activities,
		storage:    storage,
		logger:     logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create adds a new active product and logs the activity.
func (srv *productService) Create(ctx context.Context, actor entity.Actor, input *usecase.ProductInput) (*entity.Product, error) {
	storeID, err := srv.resolveStoreID(actor, input.StoreID)
	if err != nil {
		return nil, err
	}

	imageURLs, arAssetURL, err := srv.uploadMedia(ctx, input)
	if err != nil {
		return nil, err
	}

	product := &entity.Product{
		Name:        input.Name,
		Description: input.Description,
		Category:    input.Category,
		PriceMin:    input.PriceMin,
		PriceMax:    input.PriceMax,
		InStock:     input.InStock,
		ImageURLs:   imageURLs,
		ARAssetURL:  arAssetURL,
		Address:     input.Address,
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
		StoreID:     storeID,
		Town:        input.Town,
	}

	if err := srv.products.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	recordActivity(ctx, srv.logger, srv.activities, actor.Name, entity.ActionAdded, "product", product.Name)
	srv.log(ctx).Info("Product created", slog.Int64("product_id", product.ID), slog.String("actor", actor.Name))

	return product, nil
}

// Update modifies an existing product and logs the activity.
func (srv *productService) Update(ctx context.Context, actor entity.Actor, productID int64, input *usecase.ProductInput) (*entity.Product, error) {
	product, err := srv.products.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	if actor.IsScoped() && !product.OwnedBy(actor.StoreID) {
		return nil, domainerrors.ErrForbidden.WrapMessage("product belongs to another store")
	}

	imageURLs, arAssetURL, err := srv.uploadMedia(ctx, input)
	if err != nil {
		return nil, err
	}

	product.Name = input.Name
	product.Description = input.Description
	product.Category = input.Category
	product.PriceMin = input.PriceMin
	product.PriceMax = input.PriceMax
	product.InStock = input.InStock
	product.ImageURLs = imageURLs
	product.ARAssetURL = arAssetURL
	product.Address = input.Address
	product.Latitude = input.Latitude
	product.Longitude = input.Longitude
	product.Town = input.Town

	if err := srv.products.Update(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to update product")
	}

	recordActivity(ctx, srv.logger, srv.activities, actor.Name, entity.ActionEdited, "product", product.Name)
	srv.log(ctx).Info("Product updated", slog.Int64("product_id", product.ID), slog.String("actor", actor.Name))

	return product, nil
}

// Delete removes an active product outright, bypassing the archive.
func (srv *productService) Delete(ctx context.Context, actor entity.Actor, productID int64) error {
	product, err := srv.products.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to find product")
	}

	if actor.IsScoped() && !product.OwnedBy(actor.StoreID) {
		return domainerrors.ErrForbidden.WrapMessage("product belongs to another store")
	}

	if err := srv.products.Delete(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			// A concurrent delete got there first.
			return nil
		}

		return errors.Wrap(err, "failed to delete product")
	}

	recordActivity(ctx, srv.logger, srv.activities, actor.Name, entity.ActionDeleted, "product", product.Name)
	srv.log(ctx).Info("Product deleted", slog.Int64("product_id", productID), slog.String("actor", actor.Name))

	return nil
}

// FetchAll lists every active product.
func (srv *productService) FetchAll(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.products.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// FetchByID retrieves a single active product.
func (srv *productService) FetchByID(ctx context.Context, productID int64) (*entity.Product, error) {
	product, err := srv.products.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

// FetchByStore lists the active products of one store.
func (srv *productService) FetchByStore(ctx context.Context, storeID string) ([]*entity.Product, error) {
	products, err := srv.products.FindByStore(ctx, storeID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products by store")
	}

	return products, nil
}

// FetchMostViewed lists the most viewed active products.
func (srv *productService) FetchMostViewed(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.products.FindMostViewed(ctx, mostViewedLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list most viewed products")
	}

	return products, nil
}

// uploadMedia stores the freshly uploaded images and AR asset, returning the
// final image URL list (kept URLs plus new ones) and the AR asset URL.
func (srv *productService) uploadMedia(ctx context.Context, input *usecase.ProductInput) ([]string, string, error) {
	imageURLs := input.ImageURLs

	for _, image := range input.Images {
		url, err := srv.uploadFile(ctx, prefixProductImage, image, allowedImageType)
		if err != nil {
			return nil, "", err
		}

		imageURLs = append(imageURLs, url)
	}

	arAssetURL := input.ARAssetURL
	if input.ARAsset != nil {
		url, err := srv.uploadFile(ctx, prefixARAsset, input.ARAsset, allowedARAssetName)
		if err != nil {
			return nil, "", err
		}

		arAssetURL = url
	}

	return imageURLs, arAssetURL, nil
}

func (srv *productService) uploadFile(ctx context.Context, prefix string, file *usecase.FileUpload, allowed func(*usecase.FileUpload) bool) (string, error) {
	if file.Size > maxDocumentSize {
		return "", domainerrors.ErrFileTooLarge
	}

	if !allowed(file) {
		return "", domainerrors.ErrUnsupportedFileType
	}

	key := fmt.Sprintf("%s/%s%s", prefix, uuid.New().String(), strings.ToLower(path.Ext(file.Filename)))

	url, err := srv.storage.Upload(ctx, bucketAssets, key, file.ContentType, file.Content)
	if err != nil {
		srv.log(ctx).Error("Failed to upload product media", slog.Any("error", err), slog.String("key", key))

		return "", domainerrors.ErrUploadFailed.WrapMessage("failed to store product media")
	}

	return url, nil
}

// resolveStoreID picks the store a new product belongs to. Scoped actors
// always write to their own store regardless of the requested id.
func (srv *productService) resolveStoreID(actor entity.Actor, requested string) (string, error) {
	if actor.IsScoped() {
		if actor.StoreID == "" {
			return "", domainerrors.ErrNoStoreOwned
		}

		return actor.StoreID, nil
	}

	if requested == "" {
		return "", domainerrors.ErrValidationFailed.WrapMessage("store_id is required")
	}

	return requested, nil
}

func allowedImageType(file *usecase.FileUpload) bool {
	switch file.ContentType {
	case "image/jpeg", "image/png", "image/webp":
		return true
	default:
		return false
	}
}

func allowedARAssetName(file *usecase.FileUpload) bool {
	switch strings.ToLower(path.Ext(file.Filename)) {
	case ".glb", ".gltf", ".usdz":
		return true
	default:
		return false
	}
}
