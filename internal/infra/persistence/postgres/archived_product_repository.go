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

// archivedProductRepository implements the repository.ArchivedProductRepository interface.
type archivedProductRepository struct {
	db *gorm.DB
}

// NewArchivedProductRepository is the constructor for archivedProductRepository.
func NewArchivedProductRepository(db *gorm.DB) repository.ArchivedProductRepository {
	return &archivedProductRepository{
		db: db,
	}
}

// FindByID retrieves a single archived product by its archive-table id.
func (repo *archivedProductRepository) FindByID(ctx context.Context, id int64) (*entity.ArchivedProduct, error) {
	var productM model.ArchivedProductModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrArchivedProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find archived product by ID")
	}

	return toArchivedProductDomain(&productM), nil
}

// FindByOriginalID retrieves an archived product by the id it had in the active table.
func (repo *archivedProductRepository) FindByOriginalID(ctx context.Context, originalID int64) (*entity.ArchivedProduct, error) {
	var productM model.ArchivedProductModel

	if err := repo.db.WithContext(ctx).
		Where("original_product_id = ?", originalID).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrArchivedProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find archived product by original ID")
	}

	return toArchivedProductDomain(&productM), nil
}

// FindAll retrieves every archived product, newest archival first.
func (repo *archivedProductRepository) FindAll(ctx context.Context) ([]*entity.ArchivedProduct, error) {
	var productModels []*model.ArchivedProductModel

	if err := repo.db.WithContext(ctx).
		Order("archived_at DESC").
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find archived products")
	}

	return toArchivedProductDomainSlice(productModels), nil
}

// FindByStore retrieves the archived products belonging to the given store.
func (repo *archivedProductRepository) FindByStore(ctx context.Context, storeID string) ([]*entity.ArchivedProduct, error) {
	var productModels []*model.ArchivedProductModel

	if err := repo.db.WithContext(ctx).
		Where("store_id = ?", storeID).
		Order("archived_at DESC").
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find archived products by store")
	}

	return toArchivedProductDomainSlice(productModels), nil
}

// Create persists a new archived product snapshot. The generated id is written back.
func (repo *archivedProductRepository) Create(ctx context.Context, product *entity.ArchivedProduct) error {
	productM := fromArchivedProductDomain(product)
	productM.ID = 0 // Let the database assign the serial id.

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			// A row for this original product already exists; a concurrent
			// archive won the race.
			return domainerrors.ErrConflict.WrapMessage("product already archived")
		}
		return domainerrors.NewDatabaseExecuteError(err, "failed to create archived product")
	}

	product.ID = productM.ID

	return nil
}

// Delete removes an archived product by its archive-table id.
func (repo *archivedProductRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ArchivedProductModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete archived product")
	}

	if result.RowsAffected == 0 {
		return repository.ErrArchivedProductNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toArchivedProductDomain converts a GORM ArchivedProductModel to a domain ArchivedProduct entity.
func toArchivedProductDomain(data *model.ArchivedProductModel) *entity.ArchivedProduct {
	if data == nil {
		return nil
	}

	return &entity.ArchivedProduct{
		ID:                data.ID,
		OriginalProductID: data.OriginalProductID,
		Name:              data.Name,
		Description:       data.Description,
		Category:          data.Category,
		PriceMin:          data.PriceMin,
		PriceMax:          data.PriceMax,
		AverageRating:     data.AverageRating,
		TotalReviews:      data.TotalReviews,
		ImageURLs:         data.ImageURLs,
		ARAssetURL:        data.ARAssetURL,
		Address:           data.Address,
		Latitude:          data.Latitude,
		Longitude:         data.Longitude,
		StoreID:           data.StoreID,
		Town:              data.Town,
		Views:             data.Views,
		ArchivedAt:        data.ArchivedAt,
		ArchivedBy:        data.ArchivedBy,
		ArchivedByType:    entity.ActorType(data.ArchivedByType),
		Reason:            data.Reason,
	}
}

func toArchivedProductDomainSlice(models []*model.ArchivedProductModel) []*entity.ArchivedProduct {
	products := make([]*entity.ArchivedProduct, 0, len(models))
	for _, productM := range models {
		products = append(products, toArchivedProductDomain(productM))
	}

	return products
}

// fromArchivedProductDomain converts a domain ArchivedProduct entity to a GORM ArchivedProductModel.
func fromArchivedProductDomain(data *entity.ArchivedProduct) *model.ArchivedProductModel {
	if data == nil {
		return nil
	}

	return &model.ArchivedProductModel{
		ID:                data.ID,
		OriginalProductID: data.OriginalProductID,
		Name:              data.Name,
		Description:       data.Description,
		Category:          data.Category,
		PriceMin:          data.PriceMin,
		PriceMax:          data.PriceMax,
		AverageRating:     data.AverageRating,
		TotalReviews:      data.TotalReviews,
		ImageURLs:         datatypes.NewJSONSlice(data.ImageURLs),
		ARAssetURL:        data.ARAssetURL,
		Address:           data.Address,
		Latitude:          data.Latitude,
		Longitude:         data.Longitude,
		StoreID:           data.StoreID,
		Town:              data.Town,
		Views:             data.Views,
		ArchivedAt:        data.ArchivedAt,
		ArchivedBy:        data.ArchivedBy,
		ArchivedByType:    data.ArchivedByType.String(),
		Reason:            data.Reason,
	}
}
