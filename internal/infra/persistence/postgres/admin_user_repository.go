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

// adminUserRepository implements the repository.AdminUserRepository interface.
type adminUserRepository struct {
	db *gorm.DB
}

// NewAdminUserRepository is the constructor for adminUserRepository.
func NewAdminUserRepository(db *gorm.DB) repository.AdminUserRepository {
	return &adminUserRepository{
		db: db,
	}
}

// FindByEmail retrieves a single admin by their email address.
func (repo *adminUserRepository) FindByEmail(ctx context.Context, email string) (*entity.AdminUser, error) {
	var adminM model.AdminUserModel

	if err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&adminM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAdminUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find admin by email")
	}

	return toAdminUserDomain(&adminM), nil
}

// Create persists a new admin account.
func (repo *adminUserRepository) Create(ctx context.Context, admin *entity.AdminUser) error {
	adminM := fromAdminUserDomain(admin)

	if err := repo.db.WithContext(ctx).Create(adminM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists
		}
		return domainerrors.NewDatabaseExecuteError(err, "failed to create admin")
	}

	// Update the entity with generated values
	admin.ID = adminM.ID
	admin.CreatedAt = adminM.CreatedAt

	return nil
}

// Count returns the total number of admin accounts.
func (repo *adminUserRepository) Count(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.AdminUserModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count admins")
	}

	return count, nil
}

// --- Mapper Functions ---

// toAdminUserDomain converts a GORM AdminUserModel to a domain AdminUser entity.
func toAdminUserDomain(data *model.AdminUserModel) *entity.AdminUser {
	if data == nil {
		return nil
	}

	return &entity.AdminUser{
		ID:           data.ID,
		Email:        data.Email,
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
	}
}

// fromAdminUserDomain converts a domain AdminUser entity to a GORM AdminUserModel.
func fromAdminUserDomain(data *entity.AdminUser) *model.AdminUserModel {
	if data == nil {
		return nil
	}

	return &model.AdminUserModel{
		ID:           data.ID,
		Email:        data.Email,
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
	}
}
