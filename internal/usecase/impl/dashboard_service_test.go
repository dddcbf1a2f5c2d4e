package impl

import (
	"context"
	"testing"

	"elyukal/internal/domain/entity"
	domainerrors "elyukal/internal/domain/errors"
	mockRepo "elyukal/internal/mocks/repository"
	"elyukal/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dashboardFixtures holds all test dependencies for dashboard service tests.
type dashboardFixtures struct {
	service    usecase.DashboardUsecase
	products   *mockRepo.MockProductRepository
	stores     *mockRepo.MockStoreRepository
	users      *mockRepo.MockUserRepository
	admins     *mockRepo.MockAdminUserRepository
	storeUsers *mockRepo.MockStoreUserRepository
	reviews    *mockRepo.MockReviewRepository
	activities *mockRepo.MockActivityRepository
}

func createTestDashboardService(t *testing.T) dashboardFixtures {
	products := mockRepo.NewMockProductRepository(t)
	stores := mockRepo.NewMockStoreRepository(t)
	users := mockRepo.NewMockUserRepository(t)
	admins := mockRepo.NewMockAdminUserRepository(t)
	storeUsers := mockRepo.NewMockStoreUserRepository(t)
	reviews := mockRepo.NewMockReviewRepository(t)
	activities := mockRepo.NewMockActivityRepository(t)

	service := NewDashboardService(products, stores, users, admins, storeUsers, reviews, activities, newDiscardLogger())

	return dashboardFixtures{
		service:    service,
		products:   products,
		stores:     stores,
		users:      users,
		admins:     admins,
		storeUsers: storeUsers,
		reviews:    reviews,
		activities: activities,
	}
}

func TestDashboardService_FetchStats(t *testing.T) {
	fx := createTestDashboardService(t)

	ctx := context.Background()

	fx.products.EXPECT().Count(ctx).Return(int64(12), nil)
	fx.products.EXPECT().CountCategories(ctx).Return(int64(4), nil)
	fx.stores.EXPECT().Count(ctx).Return(int64(3), nil)
	fx.users.EXPECT().Count(ctx).Return(int64(40), nil)
	fx.reviews.EXPECT().Count(ctx).Return(int64(25), nil)
	fx.reviews.EXPECT().AverageRating(ctx).Return(4.2, nil)
	fx.storeUsers.EXPECT().CountByStatus(ctx, entity.StatusPending).Return(int64(2), nil)

	stats, err := fx.service.FetchStats(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(12), stats.TotalProducts)
	assert.Equal(t, int64(4), stats.TotalCategories)
	assert.Equal(t, int64(3), stats.TotalStores)
	assert.Equal(t, int64(40), stats.TotalUsers)
	assert.Equal(t, int64(25), stats.TotalReviews)
	assert.InDelta(t, 4.2, stats.AverageRating, 0.0001)
	assert.Equal(t, int64(2), stats.PendingApplications)
}

func TestDashboardService_FetchStoreStats_WeightedAverage(t *testing.T) {
	fx := createTestDashboardService(t)

	ctx := context.Background()
	products := []*entity.Product{
		{ID: 1, Views: 10, TotalReviews: 4, AverageRating: 5.0},
		{ID: 2, Views: 30, TotalReviews: 1, AverageRating: 3.0},
		{ID: 3, Views: 5},
	}

	fx.products.EXPECT().FindByStore(ctx, "store-1").Return(products, nil)

	stats, err := fx.service.FetchStoreStats(ctx, sellerActor("store-1"))

	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalProducts)
	assert.Equal(t, int64(45), stats.TotalViews)
	assert.Equal(t, int64(5), stats.TotalReviews)
	assert.InDelta(t, 4.6, stats.AverageRating, 0.0001)
}

func TestDashboardService_FetchStoreStats_NoProducts(t *testing.T) {
	fx := createTestDashboardService(t)

	ctx := context.Background()

	fx.products.EXPECT().FindByStore(ctx, "store-1").Return(nil, nil)

	stats, err := fx.service.FetchStoreStats(ctx, sellerActor("store-1"))

	require.NoError(t, err)
	assert.Zero(t, stats.TotalProducts)
	assert.Zero(t, stats.AverageRating)
}

func TestDashboardService_FetchStoreStats_NoStoreOwned(t *testing.T) {
	fx := createTestDashboardService(t)

	stats, err := fx.service.FetchStoreStats(context.Background(), sellerActor(""))

	assert.Nil(t, stats)
	assert.True(t, errors.Is(err, domainerrors.ErrNoStoreOwned))
}

func TestDashboardService_CountAdminUsers(t *testing.T) {
	fx := createTestDashboardService(t)

	ctx := context.Background()

	fx.admins.EXPECT().Count(ctx).Return(int64(6), nil)

	count, err := fx.service.CountAdminUsers(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(6), count)
}

func TestDashboardService_FetchRecentActivities(t *testing.T) {
	fx := createTestDashboardService(t)

	ctx := context.Background()
	recent := []*entity.AdminActivity{{ID: 2}, {ID: 1}}

	fx.activities.EXPECT().FindRecent(ctx, recentActivityLimit).Return(recent, nil)

	activities, err := fx.service.FetchRecentActivities(ctx)

	require.NoError(t, err)
	assert.Len(t, activities, 2)
}
