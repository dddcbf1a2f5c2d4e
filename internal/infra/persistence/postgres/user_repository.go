package postgres

import (
	"context"

	"elyukal/internal/domain/entity"
	"elyukal/internal/domain/repository"
	"elyukal/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// FindByEmail retrieves a single shopper by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// FindAll retrieves every shopper account, newest first.
func (repo *userRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	var userModels []*model.UserModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find users")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toUserDomain(userM))
	}

	return users, nil
}

// Count returns the total number of shopper accounts.
func (repo *userRepository) Count(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count users")
	}

	return count, nil
}

// UpdateProfile updates the name fields of a shopper, keyed by email.
func (repo *userRepository) UpdateProfile(ctx context.Context, user *entity.User) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("email = ?", user.Email).
		Updates(map[string]any{
			"first_name": user.FirstName,
			"last_name":  user.LastName,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update user profile")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// UpdateBan sets or clears the ban fields of a shopper.
func (repo *userRepository) UpdateBan(ctx context.Context, user *entity.User) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("email = ?", user.Email).
		Updates(map[string]any{
			"is_banned":  user.IsBanned,
			"banned_at":  user.BannedAt,
			"banned_by":  user.BannedBy,
			"ban_reason": user.BanReason,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update user ban state")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:        data.ID,
		Email:     data.Email,
		FirstName: data.FirstName,
		LastName:  data.LastName,
		IsBanned:  data.IsBanned,
		BannedAt:  data.BannedAt,
		BannedBy:  data.BannedBy,
		BanReason: data.BanReason,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
