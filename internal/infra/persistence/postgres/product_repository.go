package postgres

import (
	"context"

	"elyukal/internal/domain/entity"
	domainerrors "elyukal/internal/domain/errors"
	"elyukal/internal/domain/repository"
	"elyukal/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// FindByID retrieves a single active product by its unique ID.
func (repo *productRepository) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductDomain(&productM), nil
}

// FindAll retrieves every active product, newest first.
func (repo *productRepository) FindAll(ctx context.Context) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find products")
	}

	return toProductDomainSlice(productModels), nil
}

// FindByStore retrieves the active products belonging to the given store.
func (repo *productRepository) FindByStore(ctx context.Context, storeID string) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("store_id = ?", storeID).
		Order("created_at DESC").
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find products by store")
	}

	return toProductDomainSlice(productModels), nil
}

// FindMostViewed retrieves the top active products ordered by view count.
func (repo *productRepository) FindMostViewed(ctx context.Context, limit int) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Order("views DESC").
		Limit(limit).
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find most viewed products")
	}

	return toProductDomainSlice(productModels), nil
}

// Count returns the total number of active products.
func (repo *productRepository) Count(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count products")
	}

	return count, nil
}

// CountCategories returns the number of distinct product categories in use.
func (repo *productRepository) CountCategories(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Distinct("category").
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count product categories")
	}

	return count, nil
}

// Create persists a new active product. The generated id is written back.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)
	productM.ID = 0 // Let the database assign the serial id.

	if err := repo.createModel(ctx, productM); err != nil {
		return err
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// CreateWithID persists a product under an explicit primary key.
// Used when restoring an archived product to its original id.
func (repo *productRepository) CreateWithID(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	return repo.createModel(ctx, productM)
}

func (repo *productRepository) createModel(ctx context.Context, productM *model.ProductModel) error {
	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("product id already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrStoreNotFound
		}
		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	return nil
}

// Update modifies an existing active product.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", productM.ID).
		Updates(map[string]any{
			"name":           productM.Name,
			"description":    productM.Description,
			"category":       productM.Category,
			"price_min":      productM.PriceMin,
			"price_max":      productM.PriceMax,
			"average_rating": productM.AverageRating,
			"total_reviews":  productM.TotalReviews,
			"in_stock":       productM.InStock,
			"image_urls":     productM.ImageURLs,
			"ar_asset_url":   productM.ARAssetURL,
			"address":        productM.Address,
			"latitude":       productM.Latitude,
			"longitude":      productM.Longitude,
			"town":           productM.Town,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update product")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// Delete removes an active product by id.
func (repo *productRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ProductModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete product")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// DeleteByStore removes every active product of a store.
func (repo *productRepository) DeleteByStore(ctx context.Context, storeID string) error {
	if err := repo.db.WithContext(ctx).
		Where("store_id = ?", storeID).
		Delete(&model.ProductModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete products by store")
	}

	return nil
}

// --- Mapper Functions ---

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:            data.ID,
		Name:          data.Name,
		Description:   data.Description,
		Category:      data.Category,
		PriceMin:      data.PriceMin,
		PriceMax:      data.PriceMax,
		AverageRating: data.AverageRating,
		TotalReviews:  data.TotalReviews,
		InStock:       data.InStock,
		ImageURLs:     data.ImageURLs,
		ARAssetURL:    data.ARAssetURL,
		Address:       data.Address,
		Latitude:      data.Latitude,
		Longitude:     data.Longitude,
		StoreID:       data.StoreID,
		Town:          data.Town,
		Views:         data.Views,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func toProductDomainSlice(models []*model.ProductModel) []*entity.Product {
	products := make([]*entity.Product, 0, len(models))
	for _, productM := range models {
		products = append(products, toProductDomain(productM))
	}

	return products
}

// fromProductDomain converts a domain Product entity to a GORM ProductModel.
func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:            data.ID,
		Name:          data.Name,
		Description:   data.Description,
		Category:      data.Category,
		PriceMin:      data.PriceMin,
		PriceMax:      data.PriceMax,
		AverageRating: data.AverageRating,
		TotalReviews:  data.TotalReviews,
		InStock:       data.InStock,
		ImageURLs:     datatypes.NewJSONSlice(data.ImageURLs),
		ARAssetURL:    data.ARAssetURL,
		Address:       data.Address,
		Latitude:      data.Latitude,
		Longitude:     data.Longitude,
		StoreID:       data.StoreID,
		Town:          data.Town,
		Views:         data.Views,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
