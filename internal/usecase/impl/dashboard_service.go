package impl

import (
	"context"
	"log/slog"

	"elyukal/internal/domain/entity"
	domainerrors "elyukal/internal/domain/errors"
	"elyukal/internal/domain/repository"
	"elyukal/internal/usecase"

	"github.com/pkg/errors"
)

const recentActivityLimit = 20

// dashboardService implements the DashboardUsecase interface.
type dashboardService struct {
	products   repository.ProductRepository
	stores     repository.StoreRepository
	users      repository.UserRepository
	admins     repository.AdminUserRepository
	storeUsers repository.StoreUserRepository
	reviews    repository.ReviewRepository
	activities repository.ActivityRepository
	logger     *slog.Logger
}

// NewDashboardService is the constructor for dashboardService.
func NewDashboardService(
	products repository.ProductRepository,
	stores repository.StoreRepository,
	users repository.UserRepository,
	admins repository.AdminUserRepository,
	storeUsers repository.StoreUserRepository,
	reviews repository.ReviewRepository,
	activities repository.ActivityRepository,
	logger *slog.Logger,
) usecase.DashboardUsecase {
	return &dashboardService{
		products:   products,
		stores:     stores,
		users:      users,
		admins:     admins,
		storeUsers: storeUsers,
		reviews:    reviews,
		activities: activities,
		logger:     logger,
	}
}

// FetchStats aggregates the entity counts for the admin dashboard header.
func (srv *dashboardService) FetchStats(ctx context.Context) (*usecase.DashboardStats, error) {
	stats := &usecase.DashboardStats{}

	var err error
	if stats.TotalProducts, err = srv.products.Count(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to count products")
	}
	if stats.TotalCategories, err = srv.products.CountCategories(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to count categories")
	}
	if stats.TotalStores, err = srv.stores.Count(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to count stores")
	}
	if stats.TotalUsers, err = srv.users.Count(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to count users")
	}
	if stats.TotalReviews, err = srv.reviews.Count(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to count reviews")
	}
	if stats.AverageRating, err = srv.reviews.AverageRating(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to average ratings")
	}
	if stats.PendingApplications, err = srv.storeUsers.CountByStatus(ctx, entity.StatusPending); err != nil {
		return nil, errors.Wrap(err, "failed to count pending applications")
	}

	return stats, nil
}

// FetchStoreStats aggregates the own-store numbers for a seller from its
// active product rows.
func (srv *dashboardService) FetchStoreStats(ctx context.Context, actor entity.Actor) (*usecase.StoreDashboardStats, error) {
	if actor.StoreID == "" {
		return nil, domainerrors.ErrNoStoreOwned
	}

	products, err := srv.products.FindByStore(ctx, actor.StoreID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list store products")
	}

	stats := &usecase.StoreDashboardStats{
		TotalProducts: int64(len(products)),
	}

	var ratingSum float64
	for _, product := range products {
		stats.TotalViews += product.Views
		stats.TotalReviews += product.TotalReviews
		ratingSum += product.AverageRating * float64(product.TotalReviews)
	}

	if stats.TotalReviews > 0 {
		stats.AverageRating = ratingSum / float64(stats.TotalReviews)
	}

	return stats, nil
}

// FetchRecentActivities lists the latest admin activity log entries.
func (srv *dashboardService) FetchRecentActivities(ctx context.Context) ([]*entity.AdminActivity, error) {
	activities, err := srv.activities.FindRecent(ctx, recentActivityLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recent activities")
	}

	return activities, nil
}

// CountAdminUsers returns the total number of admin accounts.
func (srv *dashboardService) CountAdminUsers(ctx context.Context) (int64, error) {
	count, err := srv.admins.Count(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count admins")
	}

	return count, nil
}
