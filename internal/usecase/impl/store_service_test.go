package impl

import (
	"context"
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

// storeFixtures holds all test dependencies for store service tests.
type storeFixtures struct {
	service    usecase.StoreUsecase
	stores     *mockRepo.MockStoreRepository
	activities *mockRepo.MockActivityRepository
	txManager  *mockRepo.MockTransactionManager
	qrcodes    *mockSvc.MockQRCodeService
	storage    *mockSvc.MockFileStorage
}

func createTestStoreService(t *testing.T) storeFixtures {
	stores := mockRepo.NewMockStoreRepository(t)
	activities := mockRepo.NewMockActivityRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	qrcodes := mockSvc.NewMockQRCodeService(t)
	storage := mockSvc.NewMockFileStorage(t)

	service := NewStoreService(stores, activities, txManager, qrcodes, storage, newDiscardLogger())

	return storeFixtures{
		service:    service,
		stores:     stores,
		activities: activities,
		txManager:  txManager,
		qrcodes:    qrcodes,
		storage:    storage,
	}
}

func TestStoreService_Create_LinksOwner(t *testing.T) {
	fx := createTestStoreService(t)

	ctx := context.Background()
	input := &usecase.StoreInput{Name: "Luna Weaves", Town: "Luna", OwnerID: 5}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			factory := mockRepo.NewMockRepositoryFactory(t)
			storeRepo := mockRepo.NewMockStoreRepository(t)
			storeUserRepo := mockRepo.NewMockStoreUserRepository(t)

			factory.EXPECT().NewStoreRepository().Return(storeRepo)
			factory.EXPECT().NewStoreUserRepository().Return(storeUserRepo)

			storeRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Store")).
				Run(func(ctx context.Context, store *entity.Store) {
					assert.NotEmpty(t, store.ID)
					assert.Equal(t, "Luna Weaves", store.Name)
				}).
				Return(nil)
			storeUserRepo.EXPECT().
				FindByID(ctx, int64(5)).
				Return(&entity.StoreUser{ID: 5, Status: entity.StatusAccepted}, nil)
			storeUserRepo.EXPECT().
				UpdateStoreOwned(ctx, int64(5), mock.AnythingOfType("string")).
				Return(nil)

			_ = fn(factory)
		}).
		Return(nil)
	fx.activities.EXPECT().Create(ctx, mock.AnythingOfType("*entity.AdminActivity")).Return(nil)

	store, err := fx.service.Create(ctx, adminActor(), input)

	require.NoError(t, err)
	assert.NotEmpty(t, store.ID)
}

func TestStoreService_Create_OwnerAlreadyHasStore(t *testing.T) {
	fx := createTestStoreService(t)

	ctx := context.Background()
	input := &usecase.StoreInput{Name: "Luna Weaves", OwnerID: 5}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			factory := mockRepo.NewMockRepositoryFactory(t)
			storeRepo := mockRepo.NewMockStoreRepository(t)
			storeUserRepo := mockRepo.NewMockStoreUserRepository(t)

			factory.EXPECT().NewStoreRepository().Return(storeRepo)
			factory.EXPECT().NewStoreUserRepository().Return(storeUserRepo)

			storeRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Store")).Return(nil)
			storeUserRepo.EXPECT().
				FindByID(ctx, int64(5)).
				Return(&entity.StoreUser{ID: 5, StoreOwned: "store-other"}, nil)

			_ = fn(factory)
		}).
		Return(domainerrors.ErrStoreAlreadyOwned)

	store, err := fx.service.Create(ctx, adminActor(), input)

	assert.Nil(t, store)
	assert.True(t, errors.Is(err, domainerrors.ErrStoreAlreadyOwned))
}

func TestStoreService_Update_ForbiddenForOtherSeller(t *testing.T) {
	fx := createTestStoreService(t)

	store, err := fx.service.Update(context.Background(), sellerActor("store-1"), "store-2", &usecase.StoreInput{Name: "X"})

	assert.Nil(t, store)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestStoreService_Update_KeepsImageWithoutUpload(t *testing.T) {
	fx := createTestStoreService(t)

	ctx := context.Background()
	stored := &entity.Store{ID: "store-1", Name: "Luna Weaves", StoreImageURL: "https://cdn.example.com/assets/old.png"}
	input := &usecase.StoreInput{Name: "Luna Weaves", StoreImageURL: stored.StoreImageURL}

	fx.stores.EXPECT().FindByID(ctx, "store-1").Return(stored, nil)
	fx.stores.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Store")).
		Run(func(ctx context.Context, store *entity.Store) {
			assert.Equal(t, "https://cdn.example.com/assets/old.png", store.StoreImageURL)
		}).
		Return(nil)
	fx.activities.EXPECT().Create(ctx, mock.AnythingOfType("*entity.AdminActivity")).Return(nil)

	store, err := fx.service.Update(ctx, sellerActor("store-1"), "store-1", input)

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/assets/old.png", store.StoreImageURL)
}

func TestStoreService_Delete_RemovesProductsAndUnlinksOwner(t *testing.T) {
	fx := createTestStoreService(t)

	ctx := context.Background()
	stored := &entity.Store{ID: "store-1", Name: "Luna Weaves"}

	fx.stores.EXPECT().FindByID(ctx, "store-1").Return(stored, nil)
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			factory := mockRepo.NewMockRepositoryFactory(t)
			storeRepo := mockRepo.NewMockStoreRepository(t)
			storeUserRepo := mockRepo.NewMockStoreUserRepository(t)
			productRepo := mockRepo.NewMockProductRepository(t)

			factory.EXPECT().NewStoreRepository().Return(storeRepo)
			factory.EXPECT().NewStoreUserRepository().Return(storeUserRepo)
			factory.EXPECT().NewProductRepository().Return(productRepo)

			productRepo.EXPECT().DeleteByStore(ctx, "store-1").Return(nil)
			storeUserRepo.EXPECT().
				FindByStoreOwned(ctx, "store-1").
				Return(&entity.StoreUser{ID: 5, StoreOwned: "store-1"}, nil)
			storeUserRepo.EXPECT().UpdateStoreOwned(ctx, int64(5), "").Return(nil)
			storeRepo.EXPECT().Delete(ctx, "store-1").Return(nil)

			_ = fn(factory)
		}).
		Return(nil)
	fx.activities.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.AdminActivity")).
		Run(func(ctx context.Context, entry *entity.AdminActivity) {
			assert.Equal(t, entity.ActionDeleted, entry.ActionType)
			assert.Equal(t, "store", entry.ResourceType)
		}).
		Return(nil)

	require.NoError(t, fx.service.Delete(ctx, adminActor(), "store-1"))
}

func TestStoreService_Delete_NotFound(t *testing.T) {
	fx := createTestStoreService(t)

	ctx := context.Background()

	fx.stores.EXPECT().FindByID(ctx, "gone").Return(nil, repository.ErrStoreNotFound)

	err := fx.service.Delete(ctx, adminActor(), "gone")

	assert.True(t, errors.Is(err, domainerrors.ErrStoreNotFound))
}

func TestStoreService_GenerateQRCode_Success(t *testing.T) {
	fx := createTestStoreService(t)

	ctx := context.Background()
	png := []byte{0x89, 0x50, 0x4E, 0x47}

	fx.stores.EXPECT().FindByID(ctx, "store-1").Return(&entity.Store{ID: "store-1"}, nil)
	fx.qrcodes.EXPECT().GenerateStoreQR("store-1").Return(png, nil)

	got, err := fx.service.GenerateQRCode(ctx, "store-1")

	require.NoError(t, err)
	assert.Equal(t, png, got)
}

func TestStoreService_GenerateQRCode_UnknownStore(t *testing.T) {
	fx := createTestStoreService(t)

	ctx := context.Background()

	fx.stores.EXPECT().FindByID(ctx, "gone").Return(nil, repository.ErrStoreNotFound)

	got, err := fx.service.GenerateQRCode(ctx, "gone")

	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrStoreNotFound))
}
