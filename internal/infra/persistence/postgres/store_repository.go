package postgres

import (
	"context"

	"elyukal/internal/domain/entity"
	domainerrors "elyukal/internal/domain/errors"
	"elyukal/internal/domain/repository"
	"elyukal/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// storeRepository implements the repository.StoreRepository interface.
type storeRepository struct {
	db *gorm.DB
}

// NewStoreRepository is the constructor for storeRepository.
func NewStoreRepository(db *gorm.DB) repository.StoreRepository {
	return &storeRepository{
		db: db,
	}
}

// FindByID retrieves a single store by its UUID.
func (repo *storeRepository) FindByID(ctx context.Context, id string) (*entity.Store, error) {
	var storeM model.StoreModel

	if err := repo.db.WithContext(ctx).
		Where("store_id = ?", id).
		First(&storeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to find store by ID")
	}

	return toStoreDomain(&storeM), nil
}

// FindAll retrieves every store, newest first.
func (repo *storeRepository) FindAll(ctx context.Context) ([]*entity.Store, error) {
	var storeModels []*model.StoreModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&storeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find stores")
	}

	stores := make([]*entity.Store, 0, len(storeModels))
	for _, storeM := range storeModels {
		stores = append(stores, toStoreDomain(storeM))
	}

	return stores, nil
}

// Count returns the total number of stores.
func (repo *storeRepository) Count(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.StoreModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count stores")
	}

	return count, nil
}

// Create persists a new store.
func (repo *storeRepository) Create(ctx context.Context, store *entity.Store) error {
	storeM := fromStoreDomain(store)

	if err := repo.db.WithContext(ctx).Create(storeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("store id already exists")
		}
		return domainerrors.NewDatabaseExecuteError(err, "failed to create store")
	}

	store.CreatedAt = storeM.CreatedAt
	store.UpdatedAt = storeM.UpdatedAt

	return nil
}

// Update modifies an existing store.
func (repo *storeRepository) Update(ctx context.Context, store *entity.Store) error {
	storeM := fromStoreDomain(store)

	result := repo.db.WithContext(ctx).
		Model(&model.StoreModel{}).
		Where("store_id = ?", storeM.ID).
		Updates(map[string]any{
			"name":            storeM.Name,
			"description":     storeM.Description,
			"store_image_url": storeM.StoreImageURL,
			"type":            storeM.Type,
			"rating":          storeM.Rating,
			"town":            storeM.Town,
			"latitude":        storeM.Latitude,
			"longitude":       storeM.Longitude,
			"phone":           storeM.Phone,
			"email":           storeM.Email,
			"website":         storeM.Website,
			"operating_hours": storeM.OperatingHours,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update store")
	}

	if result.RowsAffected == 0 {
		return repository.ErrStoreNotFound
	}

	return nil
}

// Delete removes a store by its UUID.
func (repo *storeRepository) Delete(ctx context.Context, id string) error {
	result := repo.db.WithContext(ctx).
		Where("store_id = ?", id).
		Delete(&model.StoreModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete store")
	}

	if result.RowsAffected == 0 {
		return repository.ErrStoreNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toStoreDomain converts a GORM StoreModel to a domain Store entity.
func toStoreDomain(data *model.StoreModel) *entity.Store {
	if data == nil {
		return nil
	}

	return &entity.Store{
		ID:             data.ID,
		Name:           data.Name,
		Description:    data.Description,
		StoreImageURL:  data.StoreImageURL,
		Type:           data.Type,
		Rating:         data.Rating,
		Town:           data.Town,
		Latitude:       data.Latitude,
		Longitude:      data.Longitude,
		Phone:          data.Phone,
		Email:          data.Email,
		Website:        data.Website,
		OperatingHours: data.OperatingHours,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// fromStoreDomain converts a domain Store entity to a GORM StoreModel.
func fromStoreDomain(data *entity.Store) *model.StoreModel {
	if data == nil {
		return nil
	}

	return &model.StoreModel{
		ID:             data.ID,
		Name:           data.Name,
		Description:    data.Description,
		StoreImageURL:  data.StoreImageURL,
		Type:           data.Type,
		Rating:         data.Rating,
		Town:           data.Town,
		Latitude:       data.Latitude,
		Longitude:      data.Longitude,
		Phone:          data.Phone,
		Email:          data.Email,
		Website:        data.Website,
		OperatingHours: data.OperatingHours,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
