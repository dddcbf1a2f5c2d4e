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

// storeUserRepository implements the repository.StoreUserRepository interface.
type storeUserRepository struct {
	db *gorm.DB
}

// NewStoreUserRepository is the constructor for storeUserRepository.
func NewStoreUserRepository(db *gorm.DB) repository.StoreUserRepository {
	return &storeUserRepository{
		db: db,
	}
}

// FindByID retrieves a single seller by their unique ID.
func (repo *storeUserRepository) FindByID(ctx context.Context, id int64) (*entity.StoreUser, error) {
	var userM model.StoreUserModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStoreUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find store user by ID")
	}

	return toStoreUserDomain(&userM), nil
}

// FindByEmail retrieves a single seller by their email address.
func (repo *storeUserRepository) FindByEmail(ctx context.Context, email string) (*entity.StoreUser, error) {
	var userM model.StoreUserModel

	if err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStoreUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find store user by email")
	}

	return toStoreUserDomain(&userM), nil
}

// FindAll retrieves every seller application, newest first.
func (repo *storeUserRepository) FindAll(ctx context.Context) ([]*entity.StoreUser, error) {
	var userModels []*model.StoreUserModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find store users")
	}

	users := make([]*entity.StoreUser, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toStoreUserDomain(userM))
	}

	return users, nil
}

// Create persists a new seller application.
func (repo *storeUserRepository) Create(ctx context.Context, user *entity.StoreUser) error {
	userM := fromStoreUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required application fields")
		}
		return domainerrors.NewDatabaseExecuteError(err, "failed to create store user")
	}

	// Update the entity with generated values
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt

	return nil
}

// CountByStatus returns the number of applications in the given status.
func (repo *storeUserRepository) CountByStatus(ctx context.Context, status entity.ApplicationStatus) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.StoreUserModel{}).
		Where("status = ?", status.String()).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count store users by status")
	}

	return count, nil
}

// UpdateStatus sets the application status of a seller.
func (repo *storeUserRepository) UpdateStatus(ctx context.Context, id int64, status entity.ApplicationStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.StoreUserModel{}).
		Where("id = ?", id).
		Update("status", status.String())

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update store user status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrStoreUserNotFound
	}

	return nil
}

// FindByStoreOwned retrieves the seller owning the given store, if any.
func (repo *storeUserRepository) FindByStoreOwned(ctx context.Context, storeID string) (*entity.StoreUser, error) {
	var userM model.StoreUserModel

	if err := repo.db.WithContext(ctx).
		Where("store_owned = ?", storeID).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStoreUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find store user by store")
	}

	return toStoreUserDomain(&userM), nil
}

// UpdateStoreOwned links a store to a seller account. An empty storeID clears
// the link; the uuid column is nulled rather than set to an empty string.
func (repo *storeUserRepository) UpdateStoreOwned(ctx context.Context, id int64, storeID string) error {
	var value any
	if storeID != "" {
		value = storeID
	}

	result := repo.db.WithContext(ctx).
		Model(&model.StoreUserModel{}).
		Where("id = ?", id).
		Update("store_owned", value)

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return repository.ErrStoreNotFound
		}

		return errors.Wrap(result.Error, "failed to update store owned")
	}

	if result.RowsAffected == 0 {
		return repository.ErrStoreUserNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toStoreUserDomain converts a GORM StoreUserModel to a domain StoreUser entity.
func toStoreUserDomain(data *model.StoreUserModel) *entity.StoreUser {
	if data == nil {
		return nil
	}

	return &entity.StoreUser{
		ID:              data.ID,
		Email:           data.Email,
		FirstName:       data.FirstName,
		LastName:        data.LastName,
		PhoneNumber:     data.PhoneNumber,
		PasswordHash:    data.PasswordHash,
		Status:          entity.ApplicationStatus(data.Status),
		StoreOwned:      data.StoreOwned,
		BusinessPermit:  data.BusinessPermit,
		ValidID:         data.ValidID,
		DTIRegistration: data.DTIRegistration,
		CreatedAt:       data.CreatedAt,
	}
}

// fromStoreUserDomain converts a domain StoreUser entity to a GORM StoreUserModel.
func fromStoreUserDomain(data *entity.StoreUser) *model.StoreUserModel {
	if data == nil {
		return nil
	}

	return &model.StoreUserModel{
		ID:              data.ID,
		Email:           data.Email,
		FirstName:       data.FirstName,
		LastName:        data.LastName,
		PhoneNumber:     data.PhoneNumber,
		PasswordHash:    data.PasswordHash,
		Status:          data.Status.String(),
		StoreOwned:      data.StoreOwned,
		BusinessPermit:  data.BusinessPermit,
		ValidID:         data.ValidID,
		DTIRegistration: data.DTIRegistration,
		CreatedAt:       data.CreatedAt,
	}
}
