package repository

import (
	"context"

	"elyukal/internal/domain/entity"
)

// ActivityRepository defines the operations for the admin activity log.
type ActivityRepository interface {
	// Create persists a new activity log entry.
	Create(ctx context.Context, activity *entity.AdminActivity) error

	// FindRecent retrieves the most recent activity entries, newest first.
	FindRecent(ctx context.Context, limit int) ([]*entity.AdminActivity, error)
}
