package impl

import (
	"context"
	"strings"
	"testing"

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

// sellerApplicationFixtures holds all test dependencies for application tests.
type sellerApplicationFixtures struct {
	service    usecase.SellerApplicationUsecase
	storeUsers *mockRepo.MockStoreUserRepository
	sessions   *mockRepo.MockSessionRepository
	activities *mockRepo.MockActivityRepository
	txManager  *mockRepo.MockTransactionManager
	hasher     *mockSvc.MockPasswordHasher
	storage    *mockSvc.MockFileStorage
	mailer     *mockSvc.MockMailer
}

func createTestSellerApplicationService(t *testing.T) sellerApplicationFixtures {
	storeUsers := mockRepo.NewMockStoreUserRepository(t)
	sessions := mockRepo.NewMockSessionRepository(t)
	activities := mockRepo.NewMockActivityRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	storage := mockSvc.NewMockFileStorage(t)
	mailer := mockSvc.NewMockMailer(t)

	service := NewSellerApplicationService(storeUsers, sessions, activities, txManager, hasher, storage, mailer, newDiscardLogger())

	return sellerApplicationFixtures{
		service:    service,
		storeUsers: storeUsers,
		sessions:   sessions,
		activities: activities,
		txManager:  txManager,
		hasher:     hasher,
		storage:    storage,
		mailer:     mailer,
	}
}

func testDocument(name, contentType string) *usecase.FileUpload {
	return &usecase.FileUpload{
		Filename:    name,
		ContentType: contentType,
		Size:        1024,
		Content:     strings.NewReader("document bytes"),
	}
}

func testApplicationInput() *usecase.SellerApplicationInput {
	return &usecase.SellerApplicationInput{
		Email:          "seller@example.com",
		FirstName:      "Maria",
		LastName:       "Santos",
		PhoneNumber:    "+63 912 000 0000",
		Password:       "Password123!",
		BusinessPermit: testDocument("permit.pdf", "application/pdf"),
		ValidID:        testDocument("id.png", "image/png"),
	}
}

func TestSellerApplicationService_Submit_Success(t *testing.T) {
	fx := createTestSellerApplicationService(t)

	ctx := context.Background()
	input := testApplicationInput()

	fx.storeUsers.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(nil, repository.ErrStoreUserNotFound)
	fx.storage.EXPECT().
		Upload(ctx, "permits", mock.AnythingOfType("string"), "application/pdf", mock.Anything).
		Return("https://cdn.example.com/permits/x.pdf", nil)
	fx.storage.EXPECT().
		Upload(ctx, "valid-ids", mock.AnythingOfType("string"), "image/png", mock.Anything).
		Return("https://cdn.example.com/valid-ids/y.png", nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.storeUsers.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.StoreUser")).
		Run(func(ctx context.Context, user *entity.StoreUser) {
			user.ID = 5
			assert.Equal(t, entity.StatusPending, user.Status)
			assert.Equal(t, "hashed_password", user.PasswordHash)
			assert.Equal(t, "https://cdn.example.com/permits/x.pdf", user.BusinessPermit)
			assert.Empty(t, user.DTIRegistration)
		}).
		Return(nil)
	fx.mailer.EXPECT().
		SendApplicationReceived(ctx, input.Email, "Maria Santos").
		Return(nil)

	user, err := fx.service.Submit(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, int64(5), user.ID)
	assert.Equal(t, entity.StatusPending, user.Status)
}

func TestSellerApplicationService_Submit_MailFailureTolerated(t *testing.T) {
	fx := createTestSellerApplicationService(t)

	ctx := context.Background()
	input := testApplicationInput()

	fx.storeUsers.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(nil, repository.ErrStoreUserNotFound)
	fx.storage.EXPECT().
		Upload(ctx, "permits", mock.AnythingOfType("string"), "application/pdf", mock.Anything).
		Return("https://cdn.example.com/permits/x.pdf", nil)
	fx.storage.EXPECT().
		Upload(ctx, "valid-ids", mock.AnythingOfType("string"), "image/png", mock.Anything).
		Return("https://cdn.example.com/valid-ids/y.png", nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.storeUsers.EXPECT().Create(ctx, mock.AnythingOfType("*entity.StoreUser")).Return(nil)
	fx.mailer.EXPECT().
		SendApplicationReceived(ctx, input.Email, "Maria Santos").
		Return(errors.New("smtp down"))

	user, err := fx.service.Submit(ctx, input)

	require.NoError(t, err)
	assert.NotNil(t, user)
}

func TestSellerApplicationService_Submit_DuplicateEmail(t *testing.T) {
	fx := createTestSellerApplicationService(t)

	ctx := context.Background()
	input := testApplicationInput()

	fx.storeUsers.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(&entity.StoreUser{ID: 1, Email: input.Email}, nil)

	user, err := fx.service.Submit(ctx, input)

	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestSellerApplicationService_Submit_MissingDocument(t *testing.T) {
	fx := createTestSellerApplicationService(t)

	ctx := context.Background()
	input := testApplicationInput()
	input.BusinessPermit = nil

	fx.storeUsers.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(nil, repository.ErrStoreUserNotFound)

	user, err := fx.service.Submit(ctx, input)

	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestSellerApplicationService_Submit_OversizedDocument(t *testing.T) {
	fx := createTestSellerApplicationService(t)

	ctx := context.Background()
	input := testApplicationInput()
	input.BusinessPermit.Size = 6 << 20

	fx.storeUsers.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(nil, repository.ErrStoreUserNotFound)

	user, err := fx.service.Submit(ctx, input)

	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrFileTooLarge))
}

func TestSellerApplicationService_Submit_UnsupportedDocumentType(t *testing.T) {
	fx := createTestSellerApplicationService(t)

	ctx := context.Background()
	input := testApplicationInput()
	input.BusinessPermit = testDocument("permit.exe", "application/octet-stream")

	fx.storeUsers.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(nil, repository.ErrStoreUserNotFound)

	user, err := fx.service.Submit(ctx, input)

	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrUnsupportedFileType))
}

func TestSellerApplicationService_UpdateStatus_AcceptSendsMail(t *testing.T) {
	fx := createTestSellerApplicationService(t)

	ctx := context.Background()
	stored := &entity.StoreUser{ID: 5, Email: "seller@example.com", FirstName: "Maria", LastName: "Santos", Status: entity.StatusPending}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			factory := mockRepo.NewMockRepositoryFactory(t)
			storeUserRepo := mockRepo.NewMockStoreUserRepository(t)

			factory.EXPECT().NewStoreUserRepository().Return(storeUserRepo)
			storeUserRepo.EXPECT().FindByID(ctx, int64(5)).Return(stored, nil)
			storeUserRepo.EXPECT().UpdateStatus(ctx, int64(5), entity.StatusAccepted).Return(nil)

			_ = fn(factory)
		}).
		Return(nil)
	fx.mailer.EXPECT().
		SendApplicationApproved(ctx, stored.Email, "Maria Santos").
		Return(nil)
	fx.activities.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.AdminActivity")).
		Run(func(ctx context.Context, entry *entity.AdminActivity) {
			assert.Equal(t, "seller application", entry.ResourceType)
			assert.Equal(t, "Maria Santos (accepted)", entry.ResourceName)
		}).
		Return(nil)

	user, err := fx.service.UpdateStatus(ctx, adminActor(), 5, entity.StatusAccepted)

	require.NoError(t, err)
	assert.Equal(t, entity.StatusAccepted, user.Status)
}

func TestSellerApplicationService_UpdateStatus_RejectRevokesSessions(t *testing.T) {
	fx := createTestSellerApplicationService(t)

	ctx := context.Background()
	stored := &entity.StoreUser{ID: 5, Email: "seller@example.com", FirstName: "Maria", LastName: "Santos", Status: entity.StatusAccepted}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			factory := mockRepo.NewMockRepositoryFactory(t)
			storeUserRepo := mockRepo.NewMockStoreUserRepository(t)

			factory.EXPECT().NewStoreUserRepository().Return(storeUserRepo)
			storeUserRepo.EXPECT().FindByID(ctx, int64(5)).Return(stored, nil)
			storeUserRepo.EXPECT().UpdateStatus(ctx, int64(5), entity.StatusRejected).Return(nil)

			_ = fn(factory)
		}).
		Return(nil)
	fx.sessions.EXPECT().DeleteByEmail(ctx, stored.Email).Return(nil)
	fx.mailer.EXPECT().
		SendApplicationRejected(ctx, stored.Email, "Maria Santos").
		Return(nil)
	fx.activities.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.AdminActivity")).
		Return(nil)

	user, err := fx.service.UpdateStatus(ctx, adminActor(), 5, entity.StatusRejected)

	require.NoError(t, err)
	assert.Equal(t, entity.StatusRejected, user.Status)
}

func TestSellerApplicationService_UpdateStatus_RevocationFailureTolerated(t *testing.T) {
	fx := createTestSellerApplicationService(t)

	ctx := context.Background()
	stored := &entity.StoreUser{ID: 5, Email: "seller@example.com", FirstName: "Maria", LastName: "Santos", Status: entity.StatusPending}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			factory := mockRepo.NewMockRepositoryFactory(t)
			storeUserRepo := mockRepo.NewMockStoreUserRepository(t)

			factory.EXPECT().NewStoreUserRepository().Return(storeUserRepo)
			storeUserRepo.EXPECT().FindByID(ctx, int64(5)).Return(stored, nil)
			storeUserRepo.EXPECT().UpdateStatus(ctx, int64(5), entity.StatusRejected).Return(nil)

			_ = fn(factory)
		}).
		Return(nil)
	fx.sessions.EXPECT().DeleteByEmail(ctx, stored.Email).Return(errors.New("db down"))
	fx.mailer.EXPECT().
		SendApplicationRejected(ctx, stored.Email, "Maria Santos").
		Return(nil)
	fx.activities.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.AdminActivity")).
		Return(nil)

	user, err := fx.service.UpdateStatus(ctx, adminActor(), 5, entity.StatusRejected)

	require.NoError(t, err)
	assert.Equal(t, entity.StatusRejected, user.Status)
}

func TestSellerApplicationService_UpdateStatus_UnknownStatus(t *testing.T) {
	fx := createTestSellerApplicationService(t)

	user, err := fx.service.UpdateStatus(context.Background(), adminActor(), 5, entity.ApplicationStatus("frozen"))

	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestSellerApplicationService_UpdateStatus_NotFound(t *testing.T) {
	fx := createTestSellerApplicationService(t)

	ctx := context.Background()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			factory := mockRepo.NewMockRepositoryFactory(t)
			storeUserRepo := mockRepo.NewMockStoreUserRepository(t)

			factory.EXPECT().NewStoreUserRepository().Return(storeUserRepo)
			storeUserRepo.EXPECT().FindByID(ctx, int64(99)).Return(nil, repository.ErrStoreUserNotFound)

			_ = fn(factory)
		}).
		Return(errors.Wrap(domainerrors.ErrNotFound, "application not found"))

	user, err := fx.service.UpdateStatus(ctx, adminActor(), 99, entity.StatusRejected)

	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}
