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

// adminAuthFixtures holds all test dependencies for admin auth service tests.
type adminAuthFixtures struct {
	service  usecase.AdminAuthUsecase
	sessions *mockRepo.MockSessionRepository
	admins   *mockRepo.MockAdminUserRepository
	hasher   *mockSvc.MockPasswordHasher
}

func createTestAdminAuthService(t *testing.T, expiry time.Duration) adminAuthFixtures {
	sessions := mockRepo.NewMockSessionRepository(t)
	admins := mockRepo.NewMockAdminUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)

	service := NewAdminAuthService(sessions, admins, hasher, expiry, newDiscardLogger())

	return adminAuthFixtures{
		service:  service,
		sessions: sessions,
		admins:   admins,
		hasher:   hasher,
	}
}

func TestAdminAuthService_Register_Success(t *testing.T) {
	fx := createTestAdminAuthService(t, time.Hour)

	ctx := context.Background()
	creds := &usecase.AdminCredentials{
		Email:     "admin@example.com",
		FirstName: "Ada",
		LastName:  "Reyes",
		Password:  "Password123!",
	}

	fx.admins.EXPECT().
		FindByEmail(ctx, creds.Email).
		Return(nil, repository.ErrAdminUserNotFound)
	fx.hasher.EXPECT().Hash(creds.Password).Return("hashed_password", nil)
	fx.admins.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.AdminUser")).
		Run(func(ctx context.Context, admin *entity.AdminUser) {
			admin.ID = 7
		}).
		Return(nil)

	admin, err := fx.service.Register(ctx, creds)

	require.NoError(t, err)
	assert.Equal(t, creds.Email, admin.Email)
	assert.Equal(t, "hashed_password", admin.PasswordHash)
	assert.Equal(t, int64(7), admin.ID)
}

func TestAdminAuthService_Register_Duplicate(t *testing.T) {
	fx := createTestAdminAuthService(t, time.Hour)

	ctx := context.Background()
	creds := &usecase.AdminCredentials{Email: "admin@example.com", Password: "Password123!"}

	fx.admins.EXPECT().
		FindByEmail(ctx, creds.Email).
		Return(&entity.AdminUser{ID: 1, Email: creds.Email}, nil)

	admin, err := fx.service.Register(ctx, creds)

	assert.Nil(t, admin)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestAdminAuthService_Login_Success(t *testing.T) {
	fx := createTestAdminAuthService(t, time.Hour)

	ctx := context.Background()
	stored := &entity.AdminUser{ID: 3, Email: "admin@example.com", PasswordHash: "hashed"}

	fx.admins.EXPECT().FindByEmail(ctx, stored.Email).Return(stored, nil)
	fx.hasher.EXPECT().Check("Password123!", "hashed").Return(true)
	fx.sessions.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Session")).
		Run(func(ctx context.Context, session *entity.Session) {
			assert.Equal(t, stored.Email, session.Email)
			assert.Equal(t, stored.ID, session.UserID)
			assert.NotEmpty(t, session.Token)
			assert.Equal(t, time.UTC, session.CreatedAt.Location())
		}).
		Return(nil)

	admin, token, err := fx.service.Login(ctx, stored.Email, "Password123!")

	require.NoError(t, err)
	assert.Equal(t, stored, admin)
	assert.NotEmpty(t, token)
}

func TestAdminAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAdminAuthService(t, time.Hour)

	ctx := context.Background()
	stored := &entity.AdminUser{ID: 3, Email: "admin@example.com", PasswordHash: "hashed"}

	fx.admins.EXPECT().FindByEmail(ctx, stored.Email).Return(stored, nil)
	fx.hasher.EXPECT().Check("wrong", "hashed").Return(false)

	admin, token, err := fx.service.Login(ctx, stored.Email, "wrong")

	assert.Nil(t, admin)
	assert.Empty(t, token)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAdminAuthService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAdminAuthService(t, time.Hour)

	ctx := context.Background()

	fx.admins.EXPECT().
		FindByEmail(ctx, "nobody@example.com").
		Return(nil, repository.ErrAdminUserNotFound)

	admin, token, err := fx.service.Login(ctx, "nobody@example.com", "whatever")

	assert.Nil(t, admin)
	assert.Empty(t, token)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAdminAuthService_Authenticate_Success(t *testing.T) {
	fx := createTestAdminAuthService(t, time.Hour)

	ctx := context.Background()
	session := &entity.Session{Token: "tok", Email: "admin@example.com", CreatedAt: time.Now().UTC()}
	stored := &entity.AdminUser{ID: 3, Email: session.Email}

	fx.sessions.EXPECT().FindByToken(ctx, "tok").Return(session, nil)
	fx.admins.EXPECT().FindByEmail(ctx, session.Email).Return(stored, nil)

	admin, err := fx.service.Authenticate(ctx, "tok")

	require.NoError(t, err)
	assert.Equal(t, stored, admin)
}

func TestAdminAuthService_Authenticate_EmptyToken(t *testing.T) {
	fx := createTestAdminAuthService(t, time.Hour)

	admin, err := fx.service.Authenticate(context.Background(), "")

	assert.Nil(t, admin)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
}

func TestAdminAuthService_Authenticate_UnknownToken(t *testing.T) {
	fx := createTestAdminAuthService(t, time.Hour)

	ctx := context.Background()

	fx.sessions.EXPECT().FindByToken(ctx, "gone").Return(nil, repository.ErrSessionNotFound)

	admin, err := fx.service.Authenticate(ctx, "gone")

	assert.Nil(t, admin)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidSession))
}

func TestAdminAuthService_Authenticate_ExpiredSessionDeleted(t *testing.T) {
	fx := createTestAdminAuthService(t, time.Hour)

	ctx := context.Background()
	session := &entity.Session{
		Token:     "old",
		Email:     "admin@example.com",
		CreatedAt: time.Now().UTC().Add(-2 * time.Hour),
	}

	fx.sessions.EXPECT().FindByToken(ctx, "old").Return(session, nil)
	fx.sessions.EXPECT().Delete(ctx, "old").Return(nil)

	admin, err := fx.service.Authenticate(ctx, "old")

	assert.Nil(t, admin)
	assert.True(t, errors.Is(err, domainerrors.ErrSessionExpired))
}

func TestAdminAuthService_Authenticate_ExpiredCleanupFailureStillRejects(t *testing.T) {
	fx := createTestAdminAuthService(t, time.Hour)

	ctx := context.Background()
	session := &entity.Session{
		Token:     "old",
		Email:     "admin@example.com",
		CreatedAt: time.Now().UTC().Add(-2 * time.Hour),
	}

	fx.sessions.EXPECT().FindByToken(ctx, "old").Return(session, nil)
	fx.sessions.EXPECT().Delete(ctx, "old").Return(errors.New("db down"))

	admin, err := fx.service.Authenticate(ctx, "old")

	assert.Nil(t, admin)
	assert.True(t, errors.Is(err, domainerrors.ErrSessionExpired))
}

func TestAdminAuthService_Authenticate_OrphanedSession(t *testing.T) {
	fx := createTestAdminAuthService(t, time.Hour)

	ctx := context.Background()
	session := &entity.Session{Token: "tok", Email: "ghost@example.com", CreatedAt: time.Now().UTC()}

	fx.sessions.EXPECT().FindByToken(ctx, "tok").Return(session, nil)
	fx.admins.EXPECT().FindByEmail(ctx, session.Email).Return(nil, repository.ErrAdminUserNotFound)

	admin, err := fx.service.Authenticate(ctx, "tok")

	assert.Nil(t, admin)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestAdminAuthService_Logout_UnknownTokenIgnored(t *testing.T) {
	fx := createTestAdminAuthService(t, time.Hour)

	ctx := context.Background()

	fx.sessions.EXPECT().Delete(ctx, "tok").Return(nil)

	require.NoError(t, fx.service.Logout(ctx, "tok"))
	require.NoError(t, fx.service.Logout(ctx, ""))
}
