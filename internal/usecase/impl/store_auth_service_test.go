package impl

import (
	"context"
	"testing"
	"time"

	"elyukal/internal/domain/entity"
	domainerrors "elyukal/internal/domain/errors"
	"elyukal/internal/domain/repository"
	mockRepo "elyukal/internal/mocks/repository"
	mockSvc "elyukal/internal/mocks/service"
	"elyukal/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// storeAuthFixtures holds all test dependencies for seller auth service tests.
type storeAuthFixtures struct {
	service    usecase.StoreAuthUsecase
	sessions   *mockRepo.MockSessionRepository
	storeUsers *mockRepo.MockStoreUserRepository
	admins     *mockRepo.MockAdminUserRepository
	hasher     *mockSvc.MockPasswordHasher
}

func createTestStoreAuthService(t *testing.T) storeAuthFixtures {
	sessions := mockRepo.NewMockSessionRepository(t)
	storeUsers := mockRepo.NewMockStoreUserRepository(t)
	admins := mockRepo.NewMockAdminUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)

	service := NewStoreAuthService(sessions, storeUsers, admins, hasher, time.Hour, newDiscardLogger())

	return storeAuthFixtures{
		service:    service,
		sessions:   sessions,
		storeUsers: storeUsers,
		admins:     admins,
		hasher:     hasher,
	}
}

func TestStoreAuthService_Login_Success(t *testing.T) {
	fx := createTestStoreAuthService(t)

	ctx := context.Background()
	stored := &entity.StoreUser{
		ID:           5,
		Email:        "seller@example.com",
		PasswordHash: "hashed",
		Status:       entity.StatusAccepted,
	}

	fx.storeUsers.EXPECT().FindByEmail(ctx, stored.Email).Return(stored, nil)
	fx.hasher.EXPECT().Check("Password123!", "hashed").Return(true)
	fx.sessions.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Session")).
		Return(nil)

	user, token, err := fx.service.Login(ctx, stored.Email, "Password123!")

	require.NoError(t, err)
	assert.Equal(t, stored, user)
	assert.NotEmpty(t, token)
}

func TestStoreAuthService_Login_PendingApplication(t *testing.T) {
	fx := createTestStoreAuthService(t)

	ctx := context.Background()
	stored := &entity.StoreUser{
		ID:           5,
		Email:        "seller@example.com",
		PasswordHash: "hashed",
		Status:       entity.StatusPending,
	}

	fx.storeUsers.EXPECT().FindByEmail(ctx, stored.Email).Return(stored, nil)
	fx.hasher.EXPECT().Check("Password123!", "hashed").Return(true)

	user, token, err := fx.service.Login(ctx, stored.Email, "Password123!")

	assert.Nil(t, user)
	assert.Empty(t, token)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountNotApproved))
}

func TestStoreAuthService_Login_AdminEmailRejected(t *testing.T) {
	fx := createTestStoreAuthService(t)

	ctx := context.Background()

	fx.storeUsers.EXPECT().
		FindByEmail(ctx, "admin@example.com").
		Return(nil, repository.ErrStoreUserNotFound)
	fx.admins.EXPECT().
		FindByEmail(ctx, "admin@example.com").
		Return(&entity.AdminUser{ID: 1, Email: "admin@example.com"}, nil)

	user, token, err := fx.service.Login(ctx, "admin@example.com", "Password123!")

	assert.Nil(t, user)
	assert.Empty(t, token)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestStoreAuthService_Login_UnknownEmail(t *testing.T) {
	fx := createTestStoreAuthService(t)

	ctx := context.Background()

	fx.storeUsers.EXPECT().
		FindByEmail(ctx, "nobody@example.com").
		Return(nil, repository.ErrStoreUserNotFound)
	fx.admins.EXPECT().
		FindByEmail(ctx, "nobody@example.com").
		Return(nil, repository.ErrAdminUserNotFound)

	user, token, err := fx.service.Login(ctx, "nobody@example.com", "Password123!")

	assert.Nil(t, user)
	assert.Empty(t, token)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestStoreAuthService_Authenticate_Success(t *testing.T) {
	fx := createTestStoreAuthService(t)

	ctx := context.Background()
	session := &entity.Session{Token: "tok", Email: "seller@example.com", CreatedAt: time.Now().UTC()}
	stored := &entity.StoreUser{ID: 5, Email: session.Email, Status: entity.StatusAccepted}

	fx.sessions.EXPECT().FindByToken(ctx, "tok").Return(session, nil)
	fx.storeUsers.EXPECT().FindByEmail(ctx, session.Email).Return(stored, nil)

	user, err := fx.service.Authenticate(ctx, "tok")

	require.NoError(t, err)
	assert.Equal(t, stored, user)
}

func TestStoreAuthService_Authenticate_OrphanedSession(t *testing.T) {
	fx := createTestStoreAuthService(t)

	ctx := context.Background()
	session := &entity.Session{Token: "tok", Email: "ghost@example.com", CreatedAt: time.Now().UTC()}

	fx.sessions.EXPECT().FindByToken(ctx, "tok").Return(session, nil)
	fx.storeUsers.EXPECT().FindByEmail(ctx, session.Email).Return(nil, repository.ErrStoreUserNotFound)

	user, err := fx.service.Authenticate(ctx, "tok")

	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}
