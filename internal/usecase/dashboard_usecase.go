package usecase

import (
	"context"

	"elyukal/internal/domain/entity"
)

// DashboardStats aggregates the headline numbers shown on the admin dashboard.
type DashboardStats struct {
	TotalProducts       int64   `json:"total_products"`
	TotalCategories     int64   `json:"total_categories"`
	TotalStores         int64   `json:"total_stores"`
	TotalUsers          int64   `json:"total_users"`
	TotalReviews        int64   `json:"total_reviews"`
	AverageRating       float64 `json:"average_rating"`
	PendingApplications int64   `json:"pending_applications"`
}

// StoreDashboardStats aggregates the numbers shown on a seller's own dashboard.
type StoreDashboardStats struct {
	TotalProducts int64   `json:"total_products"`
	TotalViews    int64   `json:"total_views"`
	TotalReviews  int64   `json:"total_reviews"`
	AverageRating float64 `json:"average_rating"`
}

// DashboardUsecase defines the read operations backing the dashboards.
type DashboardUsecase interface {
	// FetchStats aggregates the entity counts for the admin dashboard header.
	FetchStats(ctx context.Context) (*DashboardStats, error)

	// FetchStoreStats aggregates the own-store numbers for a seller.
	FetchStoreStats(ctx context.Context, actor entity.Actor) (*StoreDashboardStats, error)

	// FetchRecentActivities lists the latest admin activity log entries.
	FetchRecentActivities(ctx context.Context) ([]*entity.AdminActivity, error)

	// CountAdminUsers returns the total number of admin accounts.
	CountAdminUsers(ctx context.Context) (int64, error)
}

// CatalogUsecase defines the read operations on reference data and reviews.
type CatalogUsecase interface {
	// FetchMunicipalities lists the municipality reference rows.
	FetchMunicipalities(ctx context.Context) ([]*entity.Municipality, error)

	// FetchProductReviews lists the reviews left on a product.
	FetchProductReviews(ctx context.Context, productID int64) ([]*entity.Review, error)
}
