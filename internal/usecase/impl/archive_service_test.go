package impl

import (
	"context"
	"testing"

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

// archiveFixtures holds all test dependencies for archive service tests.
type archiveFixtures struct {
	service    usecase.ArchiveUsecase
	products   *mockRepo.MockProductRepository
	archived   *mockRepo.MockArchivedProductRepository
	activities *mockRepo.MockActivityRepository
}

func createTestArchiveService(t *testing.T) archiveFixtures {
	products := mockRepo.NewMockProductRepository(t)
	archived := mockRepo.NewMockArchivedProductRepository(t)
	activities := mockRepo.NewMockActivityRepository(t)

	service := NewArchiveService(products, archived, activities, newDiscardLogger())

	return archiveFixtures{
		service:    service,
		products:   products,
		archived:   archived,
		activities: activities,
	}
}

func adminActor() entity.Actor {
	return entity.Actor{ID: 1, Name: "Admin One", Type: entity.ActorTypeAdmin}
}

func sellerActor(storeID string) entity.Actor {
	return entity.Actor{ID: 2, Name: "Seller One", Type: entity.ActorTypeStoreUser, StoreID: storeID}
}

func TestArchiveService_Archive_Success(t *testing.T) {
	fx := createTestArchiveService(t)

	ctx := context.Background()
	product := &entity.Product{ID: 10, Name: "Inabel Blanket", StoreID: "store-1", Views: 42}

	fx.archived.EXPECT().FindByOriginalID(ctx, int64(10)).Return(nil, repository.ErrArchivedProductNotFound)
	fx.products.EXPECT().FindByID(ctx, int64(10)).Return(product, nil)
	fx.archived.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.ArchivedProduct")).
		Run(func(ctx context.Context, snapshot *entity.ArchivedProduct) {
			snapshot.ID = 99
			assert.Equal(t, product.ID, snapshot.OriginalProductID)
			assert.Equal(t, product.Views, snapshot.Views)
			assert.Equal(t, "out of season", snapshot.Reason)
			assert.Equal(t, int64(1), snapshot.ArchivedBy)
			assert.Equal(t, entity.ActorTypeAdmin, snapshot.ArchivedByType)
		}).
		Return(nil)
	fx.products.EXPECT().Delete(ctx, int64(10)).Return(nil)
	fx.activities.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.AdminActivity")).
		Run(func(ctx context.Context, entry *entity.AdminActivity) {
			assert.Equal(t, entity.ActionEdited, entry.ActionType)
			assert.Equal(t, "Inabel Blanket (archived)", entry.ResourceName)
		}).
		Return(nil)

	snapshot, err := fx.service.Archive(ctx, adminActor(), 10, "out of season")

	require.NoError(t, err)
	assert.Equal(t, int64(99), snapshot.ID)
}

func TestArchiveService_Archive_AlreadyArchived(t *testing.T) {
	fx := createTestArchiveService(t)

	ctx := context.Background()
	existing := &entity.ArchivedProduct{ID: 99, OriginalProductID: 10, Name: "Inabel Blanket"}

	// The archive table is consulted first: no product lookup, no second
	// insert, even if the active row still exists from a half-finished archive.
	fx.archived.EXPECT().FindByOriginalID(ctx, int64(10)).Return(existing, nil)

	snapshot, err := fx.service.Archive(ctx, adminActor(), 10, "again")

	require.NoError(t, err)
	assert.Equal(t, existing, snapshot)
}

func TestArchiveService_Archive_NotFound(t *testing.T) {
	fx := createTestArchiveService(t)

	ctx := context.Background()

	fx.archived.EXPECT().FindByOriginalID(ctx, int64(10)).Return(nil, repository.ErrArchivedProductNotFound)
	fx.products.EXPECT().FindByID(ctx, int64(10)).Return(nil, repository.ErrProductNotFound)

	snapshot, err := fx.service.Archive(ctx, adminActor(), 10, "")

	assert.Nil(t, snapshot)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestArchiveService_Archive_ForbiddenForOtherStore(t *testing.T) {
	fx := createTestArchiveService(t)

	ctx := context.Background()
	product := &entity.Product{ID: 10, Name: "Inabel Blanket", StoreID: "store-1"}

	fx.archived.EXPECT().FindByOriginalID(ctx, int64(10)).Return(nil, repository.ErrArchivedProductNotFound)
	fx.products.EXPECT().FindByID(ctx, int64(10)).Return(product, nil)

	snapshot, err := fx.service.Archive(ctx, sellerActor("store-2"), 10, "")

	assert.Nil(t, snapshot)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestArchiveService_Archive_CompensatesOnDeleteFailure(t *testing.T) {
	fx := createTestArchiveService(t)

	ctx := context.Background()
	product := &entity.Product{ID: 10, Name: "Inabel Blanket", StoreID: "store-1"}

	fx.archived.EXPECT().FindByOriginalID(ctx, int64(10)).Return(nil, repository.ErrArchivedProductNotFound)
	fx.products.EXPECT().FindByID(ctx, int64(10)).Return(product, nil)
	fx.archived.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.ArchivedProduct")).
		Run(func(ctx context.Context, snapshot *entity.ArchivedProduct) {
			snapshot.ID = 99
		}).
		Return(nil)
	fx.products.EXPECT().Delete(ctx, int64(10)).Return(errors.New("db down"))
	fx.archived.EXPECT().Delete(ctx, int64(99)).Return(nil)

	snapshot, err := fx.service.Archive(ctx, adminActor(), 10, "")

	assert.Nil(t, snapshot)
	assert.True(t, errors.Is(err, domainerrors.ErrTransitionFailed))
}

func TestArchiveService_Archive_InsertFailureKeepsActiveProduct(t *testing.T) {
	fx := createTestArchiveService(t)

	ctx := context.Background()
	product := &entity.Product{ID: 10, Name: "Inabel Blanket", StoreID: "store-1"}

	fx.archived.EXPECT().FindByOriginalID(ctx, int64(10)).Return(nil, repository.ErrArchivedProductNotFound)
	fx.products.EXPECT().FindByID(ctx, int64(10)).Return(product, nil)
	// The active row is never deleted when the snapshot insert fails.
	fx.archived.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.ArchivedProduct")).
		Return(errors.New("db down"))

	snapshot, err := fx.service.Archive(ctx, adminActor(), 10, "")

	assert.Nil(t, snapshot)
	assert.True(t, errors.Is(err, domainerrors.ErrTransitionFailed))
}

func TestArchiveService_Restore_Success(t *testing.T) {
	fx := createTestArchiveService(t)

	ctx := context.Background()
	snapshot := &entity.ArchivedProduct{
		ID:                99,
		OriginalProductID: 10,
		Name:              "Inabel Blanket",
		StoreID:           "store-1",
		Views:             42,
	}

	fx.archived.EXPECT().FindByID(ctx, int64(99)).Return(snapshot, nil)
	fx.products.EXPECT().
		CreateWithID(ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(ctx context.Context, product *entity.Product) {
			assert.Equal(t, int64(10), product.ID)
			assert.True(t, product.InStock)
			assert.Equal(t, int64(42), product.Views)
		}).
		Return(nil)
	fx.archived.EXPECT().Delete(ctx, int64(99)).Return(nil)
	fx.activities.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.AdminActivity")).
		Run(func(ctx context.Context, entry *entity.AdminActivity) {
			assert.Equal(t, "Inabel Blanket (restored)", entry.ResourceName)
		}).
		Return(nil)

	product, err := fx.service.Restore(ctx, sellerActor("store-1"), 99)

	require.NoError(t, err)
	assert.Equal(t, int64(10), product.ID)
}

func TestArchiveService_Restore_CompensatesOnSnapshotDeleteFailure(t *testing.T) {
	fx := createTestArchiveService(t)

	ctx := context.Background()
	snapshot := &entity.ArchivedProduct{ID: 99, OriginalProductID: 10, Name: "Inabel Blanket", StoreID: "store-1"}

	fx.archived.EXPECT().FindByID(ctx, int64(99)).Return(snapshot, nil)
	fx.products.EXPECT().CreateWithID(ctx, mock.AnythingOfType("*entity.Product")).Return(nil)
	fx.archived.EXPECT().Delete(ctx, int64(99)).Return(errors.New("db down"))
	fx.products.EXPECT().Delete(ctx, int64(10)).Return(nil)

	product, err := fx.service.Restore(ctx, adminActor(), 99)

	assert.Nil(t, product)
	assert.True(t, errors.Is(err, domainerrors.ErrTransitionFailed))
}

func TestArchiveService_Restore_ReinsertFailureKeepsSnapshot(t *testing.T) {
	fx := createTestArchiveService(t)

	ctx := context.Background()
	snapshot := &entity.ArchivedProduct{ID: 99, OriginalProductID: 10, Name: "Inabel Blanket", StoreID: "store-1"}

	fx.archived.EXPECT().FindByID(ctx, int64(99)).Return(snapshot, nil)
	// The snapshot row is never deleted when the reinsert fails.
	fx.products.EXPECT().
		CreateWithID(ctx, mock.AnythingOfType("*entity.Product")).
		Return(errors.New("db down"))

	product, err := fx.service.Restore(ctx, adminActor(), 99)

	assert.Nil(t, product)
	assert.True(t, errors.Is(err, domainerrors.ErrTransitionFailed))
}

func TestArchiveService_PermanentlyDelete_Success(t *testing.T) {
	fx := createTestArchiveService(t)

	ctx := context.Background()
	snapshot := &entity.ArchivedProduct{ID: 99, OriginalProductID: 10, Name: "Inabel Blanket", StoreID: "store-1"}

	fx.archived.EXPECT().FindByID(ctx, int64(99)).Return(snapshot, nil)
	fx.archived.EXPECT().Delete(ctx, int64(99)).Return(nil)
	fx.activities.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.AdminActivity")).
		Run(func(ctx context.Context, entry *entity.AdminActivity) {
			assert.Equal(t, entity.ActionDeleted, entry.ActionType)
			assert.Equal(t, "Inabel Blanket (permanently deleted)", entry.ResourceName)
		}).
		Return(nil)

	require.NoError(t, fx.service.PermanentlyDelete(ctx, adminActor(), 99))
}

func TestArchiveService_PermanentlyDelete_ConcurrentDelete(t *testing.T) {
	fx := createTestArchiveService(t)

	ctx := context.Background()
	snapshot := &entity.ArchivedProduct{ID: 99, OriginalProductID: 10, Name: "Inabel Blanket", StoreID: "store-1"}

	fx.archived.EXPECT().FindByID(ctx, int64(99)).Return(snapshot, nil)
	fx.archived.EXPECT().Delete(ctx, int64(99)).Return(repository.ErrArchivedProductNotFound)

	require.NoError(t, fx.service.PermanentlyDelete(ctx, adminActor(), 99))
}

func TestArchiveService_FetchArchived_AdminSeesAll(t *testing.T) {
	fx := createTestArchiveService(t)

	ctx := context.Background()
	all := []*entity.ArchivedProduct{{ID: 1}, {ID: 2}}

	fx.archived.EXPECT().FindAll(ctx).Return(all, nil)

	products, err := fx.service.FetchArchived(ctx, adminActor())

	require.NoError(t, err)
	assert.Len(t, products, 2)
}

func TestArchiveService_FetchArchived_SellerScopedToOwnStore(t *testing.T) {
	fx := createTestArchiveService(t)

	ctx := context.Background()
	own := []*entity.ArchivedProduct{{ID: 1, StoreID: "store-1"}}

	fx.archived.EXPECT().FindByStore(ctx, "store-1").Return(own, nil)

	products, err := fx.service.FetchArchived(ctx, sellerActor("store-1"))

	require.NoError(t, err)
	assert.Len(t, products, 1)
}

func TestArchiveService_FetchArchived_SellerWithoutStore(t *testing.T) {
	fx := createTestArchiveService(t)

	products, err := fx.service.FetchArchived(context.Background(), sellerActor(""))

	assert.Nil(t, products)
	assert.True(t, errors.Is(err, domainerrors.ErrNoStoreOwned))
}
