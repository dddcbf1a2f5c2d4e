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

// activityRepository implements the repository.ActivityRepository interface.
type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository is the constructor for activityRepository.
func NewActivityRepository(db *gorm.DB) repository.ActivityRepository {
	return &activityRepository{
		db: db,
	}
}

// Create persists a new activity log entry.
func (repo *activityRepository) Create(ctx context.Context, activity *entity.AdminActivity) error {
	activityM := fromActivityDomain(activity)

	if err := repo.db.WithContext(ctx).Create(activityM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create activity entry")
	}

	activity.ID = activityM.ID

	return nil
}

// FindRecent retrieves the most recent activity entries, newest first.
func (repo *activityRepository) FindRecent(ctx context.Context, limit int) ([]*entity.AdminActivity, error) {
	var activityModels []*model.AdminActivityModel

	if err := repo.db.WithContext(ctx).
		Order("timestamp DESC").
		Limit(limit).
		Find(&activityModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find recent activities")
	}

	activities := make([]*entity.AdminActivity, 0, len(activityModels))
	for _, activityM := range activityModels {
		activities = append(activities, toActivityDomain(activityM))
	}

	return activities, nil
}

// --- Mapper Functions ---

// toActivityDomain converts a GORM AdminActivityModel to a domain AdminActivity entity.
func toActivityDomain(data *model.AdminActivityModel) *entity.AdminActivity {
	if data == nil {
		return nil
	}

	return &entity.AdminActivity{
		ID:           data.ID,
		AdminName:    data.AdminName,
		ActionType:   data.ActionType,
		ResourceType: data.ResourceType,
		ResourceName: data.ResourceName,
		Timestamp:    data.Timestamp,
	}
}

// fromActivityDomain converts a domain AdminActivity entity to a GORM AdminActivityModel.
func fromActivityDomain(data *entity.AdminActivity) *model.AdminActivityModel {
	if data == nil {
		return nil
	}

	return &model.AdminActivityModel{
		ID:           data.ID,
		AdminName:    data.AdminName,
		ActionType:   data.ActionType,
		ResourceType: data.ResourceType,
		ResourceName: data.ResourceName,
		Timestamp:    data.Timestamp,
	}
}
