package impl

import (
	"context"
	"testing"
	"time"

	"elyukal/internal/domain/entity"
	domainerrors "elyukal/internal/domain/errors"
	"elyukal/internal/domain/repository"
	mockRepo "elyukal/internal/mocks/repository"
	"elyukal/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userFixtures holds all test dependencies for user service tests.
type userFixtures struct {
	service   usecase.UserUsecase
	users     *mockRepo.MockUserRepository
	txManager *mockRepo.MockTransactionManager
}

func createTestUserService(t *testing.T) userFixtures {
	users := mockRepo.NewMockUserRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)

	service := NewUserService(users, txManager, newDiscardLogger())

	return userFixtures{
		service:   service,
		users:     users,
		txManager: txManager,
	}
}

func TestUserService_Ban_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	stored := &entity.User{Email: "shopper@example.com", FirstName: "Juan", LastName: "Cruz"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			factory := mockRepo.NewMockRepositoryFactory(t)
			userRepo := mockRepo.NewMockUserRepository(t)
			activityRepo := mockRepo.NewMockActivityRepository(t)

			factory.EXPECT().NewUserRepository().Return(userRepo)
			factory.EXPECT().NewActivityRepository().Return(activityRepo)

			userRepo.EXPECT().FindByEmail(ctx, stored.Email).Return(stored, nil)
			userRepo.EXPECT().
				UpdateBan(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					assert.True(t, user.IsBanned)
					assert.NotNil(t, user.BannedAt)
					assert.Equal(t, "Admin One", user.BannedBy)
					assert.Equal(t, "spam reviews", user.BanReason)
				}).
				Return(nil)
			activityRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.AdminActivity")).
				Run(func(ctx context.Context, entry *entity.AdminActivity) {
					assert.Equal(t, "Juan Cruz (banned)", entry.ResourceName)
				}).
				Return(nil)

			_ = fn(factory)
		}).
		Return(nil)

	user, err := fx.service.Ban(ctx, adminActor(), stored.Email, "spam reviews")

	require.NoError(t, err)
	assert.True(t, user.IsBanned)
}

func TestUserService_Ban_AlreadyBannedIsNoop(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	bannedAt := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	stored := &entity.User{
		Email:     "shopper@example.com",
		IsBanned:  true,
		BannedAt:  &bannedAt,
		BannedBy:  "Admin Two",
		BanReason: "fraud",
	}

	// No UpdateBan and no activity entry: the existing ban must be untouched.
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			factory := mockRepo.NewMockRepositoryFactory(t)
			userRepo := mockRepo.NewMockUserRepository(t)
			activityRepo := mockRepo.NewMockActivityRepository(t)

			factory.EXPECT().NewUserRepository().Return(userRepo)
			factory.EXPECT().NewActivityRepository().Return(activityRepo)

			userRepo.EXPECT().FindByEmail(ctx, stored.Email).Return(stored, nil)

			_ = fn(factory)
		}).
		Return(nil)

	user, err := fx.service.Ban(ctx, adminActor(), stored.Email, "spam reviews")

	require.NoError(t, err)
	assert.True(t, user.IsBanned)
	assert.Equal(t, "Admin Two", user.BannedBy)
	assert.Equal(t, "fraud", user.BanReason)
	assert.Equal(t, &bannedAt, user.BannedAt)
}

func TestUserService_Unban_NotBannedIsNoop(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	stored := &entity.User{Email: "shopper@example.com", IsBanned: false}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			factory := mockRepo.NewMockRepositoryFactory(t)
			userRepo := mockRepo.NewMockUserRepository(t)
			activityRepo := mockRepo.NewMockActivityRepository(t)

			factory.EXPECT().NewUserRepository().Return(userRepo)
			factory.EXPECT().NewActivityRepository().Return(activityRepo)

			userRepo.EXPECT().FindByEmail(ctx, stored.Email).Return(stored, nil)

			_ = fn(factory)
		}).
		Return(nil)

	user, err := fx.service.Unban(ctx, adminActor(), stored.Email)

	require.NoError(t, err)
	assert.False(t, user.IsBanned)
}

func TestUserService_Unban_ClearsBanFields(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	stored := &entity.User{
		Email:     "shopper@example.com",
		FirstName: "Juan",
		LastName:  "Cruz",
		IsBanned:  true,
		BannedBy:  "Admin One",
		BanReason: "spam reviews",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			factory := mockRepo.NewMockRepositoryFactory(t)
			userRepo := mockRepo.NewMockUserRepository(t)
			activityRepo := mockRepo.NewMockActivityRepository(t)

			factory.EXPECT().NewUserRepository().Return(userRepo)
			factory.EXPECT().NewActivityRepository().Return(activityRepo)

			userRepo.EXPECT().FindByEmail(ctx, stored.Email).Return(stored, nil)
			userRepo.EXPECT().
				UpdateBan(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					assert.False(t, user.IsBanned)
					assert.Nil(t, user.BannedAt)
					assert.Empty(t, user.BannedBy)
					assert.Empty(t, user.BanReason)
				}).
				Return(nil)
			activityRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.AdminActivity")).
				Run(func(ctx context.Context, entry *entity.AdminActivity) {
					assert.Equal(t, "Juan Cruz (unbanned)", entry.ResourceName)
				}).
				Return(nil)

			_ = fn(factory)
		}).
		Return(nil)

	user, err := fx.service.Unban(ctx, adminActor(), stored.Email)

	require.NoError(t, err)
	assert.False(t, user.IsBanned)
}

func TestUserService_UpdateProfile_UnknownUser(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			factory := mockRepo.NewMockRepositoryFactory(t)
			userRepo := mockRepo.NewMockUserRepository(t)
			activityRepo := mockRepo.NewMockActivityRepository(t)

			factory.EXPECT().NewUserRepository().Return(userRepo)
			factory.EXPECT().NewActivityRepository().Return(activityRepo)

			userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

			_ = fn(factory)
		}).
		Return(domainerrors.ErrUserNotFound)

	user, err := fx.service.UpdateProfile(ctx, adminActor(), "ghost@example.com", &usecase.UserProfileInput{FirstName: "J", LastName: "C"})

	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestUserService_FetchByEmail_NotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.users.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

	user, err := fx.service.FetchByEmail(ctx, "ghost@example.com")

	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}
