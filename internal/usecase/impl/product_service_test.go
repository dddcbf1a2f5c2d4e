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

// productFixtures holds all test dependencies for product service tests.
type productFixtures struct {
	service    usecase.ProductUsecase
	products   *mockRepo.MockProductRepository
	activities *mockRepo.MockActivityRepository
	storage    *mockSvc.MockFileStorage
}

func createTestProductService(t *testing.T) productFixtures {
	products := mockRepo.NewMockProductRepository(t)
	activities := mockRepo.NewMockActivityRepository(t)
	storage := mockSvc.NewMockFileStorage(t)

	service := NewProductService(products, activities, storage, newDiscardLogger())

	return productFixtures{
		service:    service,
		products:   products,
		activities: activities,
		storage:    storage,
	}
}

func testImage(name, contentType string) *usecase.FileUpload {
	return &usecase.FileUpload{
		Filename:    name,
		ContentType: contentType,
		Size:        2048,
		Content:     strings.NewReader("image bytes"),
	}
}

func TestProductService_Create_AdminWithUploads(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	input := &usecase.ProductInput{
		Name:    "Basi Wine",
		StoreID: "store-1",
		Images:  []*usecase.FileUpload{testImage("basi.jpg", "image/jpeg")},
		ARAsset: testImage("basi.glb", "model/gltf-binary"),
	}

	fx.storage.EXPECT().
		Upload(ctx, "assets", mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "product-images/") && strings.HasSuffix(key, ".jpg")
		}), "image/jpeg", mock.Anything).
		Return("https://cdn.example.com/assets/basi.jpg", nil)
	fx.storage.EXPECT().
		Upload(ctx, "assets", mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "ar-assets/") && strings.HasSuffix(key, ".glb")
		}), "model/gltf-binary", mock.Anything).
		Return("https://cdn.example.com/assets/basi.glb", nil)
	fx.products.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(ctx context.Context, product *entity.Product) {
			product.ID = 10
			assert.Equal(t, []string{"https://cdn.example.com/assets/basi.jpg"}, product.ImageURLs)
			assert.Equal(t, "https://cdn.example.com/assets/basi.glb", product.ARAssetURL)
			assert.Equal(t, "store-1", product.StoreID)
		}).
		Return(nil)
	fx.activities.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.AdminActivity")).
		Run(func(ctx context.Context, entry *entity.AdminActivity) {
			assert.Equal(t, entity.ActionAdded, entry.ActionType)
			assert.Equal(t, "Basi Wine", entry.ResourceName)
		}).
		Return(nil)

	product, err := fx.service.Create(ctx, adminActor(), input)

	require.NoError(t, err)
	assert.Equal(t, int64(10), product.ID)
}

func TestProductService_Create_SellerWritesToOwnStore(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	// The requested store id is ignored for scoped actors.
	input := &usecase.ProductInput{Name: "Basi Wine", StoreID: "store-9"}

	fx.products.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(ctx context.Context, product *entity.Product) {
			assert.Equal(t, "store-1", product.StoreID)
		}).
		Return(nil)
	fx.activities.EXPECT().Create(ctx, mock.AnythingOfType("*entity.AdminActivity")).Return(nil)

	_, err := fx.service.Create(ctx, sellerActor("store-1"), input)

	require.NoError(t, err)
}

func TestProductService_Create_SellerWithoutStore(t *testing.T) {
	fx := createTestProductService(t)

	product, err := fx.service.Create(context.Background(), sellerActor(""), &usecase.ProductInput{Name: "Basi Wine"})

	assert.Nil(t, product)
	assert.True(t, errors.Is(err, domainerrors.ErrNoStoreOwned))
}

func TestProductService_Create_AdminMissingStoreID(t *testing.T) {
	fx := createTestProductService(t)

	product, err := fx.service.Create(context.Background(), adminActor(), &usecase.ProductInput{Name: "Basi Wine"})

	assert.Nil(t, product)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestProductService_Create_OversizedImage(t *testing.T) {
	fx := createTestProductService(t)

	image := testImage("big.jpg", "image/jpeg")
	image.Size = 6 << 20
	input := &usecase.ProductInput{Name: "Basi Wine", StoreID: "store-1", Images: []*usecase.FileUpload{image}}

	product, err := fx.service.Create(context.Background(), adminActor(), input)

	assert.Nil(t, product)
	assert.True(t, errors.Is(err, domainerrors.ErrFileTooLarge))
}

func TestProductService_Create_UnsupportedImageType(t *testing.T) {
	fx := createTestProductService(t)

	input := &usecase.ProductInput{
		Name:    "Basi Wine",
		StoreID: "store-1",
		Images:  []*usecase.FileUpload{testImage("notes.txt", "text/plain")},
	}

	product, err := fx.service.Create(context.Background(), adminActor(), input)

	assert.Nil(t, product)
	assert.True(t, errors.Is(err, domainerrors.ErrUnsupportedFileType))
}

func TestProductService_Create_UnsupportedARAssetExtension(t *testing.T) {
	fx := createTestProductService(t)

	input := &usecase.ProductInput{
		Name:    "Basi Wine",
		StoreID: "store-1",
		ARAsset: testImage("model.obj", "application/octet-stream"),
	}

	product, err := fx.service.Create(context.Background(), adminActor(), input)

	assert.Nil(t, product)
	assert.True(t, errors.Is(err, domainerrors.ErrUnsupportedFileType))
}

func TestProductService_Create_UploadFailure(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	input := &usecase.ProductInput{
		Name:    "Basi Wine",
		StoreID: "store-1",
		Images:  []*usecase.FileUpload{testImage("basi.jpg", "image/jpeg")},
	}

	fx.storage.EXPECT().
		Upload(ctx, "assets", mock.AnythingOfType("string"), "image/jpeg", mock.Anything).
		Return("", errors.New("bucket unreachable"))

	product, err := fx.service.Create(ctx, adminActor(), input)

	assert.Nil(t, product)
	assert.True(t, errors.Is(err, domainerrors.ErrUploadFailed))
}

func TestProductService_Update_ForbiddenForOtherStore(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	stored := &entity.Product{ID: 10, Name: "Basi Wine", StoreID: "store-1"}

	fx.products.EXPECT().FindByID(ctx, int64(10)).Return(stored, nil)

	product, err := fx.service.Update(ctx, sellerActor("store-2"), 10, &usecase.ProductInput{Name: "Basi Wine"})

	assert.Nil(t, product)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestProductService_Update_KeepsExistingImageURLs(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	stored := &entity.Product{ID: 10, Name: "Basi Wine", StoreID: "store-1"}
	input := &usecase.ProductInput{
		Name:      "Basi Wine",
		ImageURLs: []string{"https://cdn.example.com/assets/old.jpg"},
	}

	fx.products.EXPECT().FindByID(ctx, int64(10)).Return(stored, nil)
	fx.products.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(ctx context.Context, product *entity.Product) {
			assert.Equal(t, input.ImageURLs, product.ImageURLs)
		}).
		Return(nil)
	fx.activities.EXPECT().Create(ctx, mock.AnythingOfType("*entity.AdminActivity")).Return(nil)

	product, err := fx.service.Update(ctx, sellerActor("store-1"), 10, input)

	require.NoError(t, err)
	assert.Equal(t, input.ImageURLs, product.ImageURLs)
}

func TestProductService_Delete_Success(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	stored := &entity.Product{ID: 10, Name: "Basi Wine", StoreID: "store-1"}

	fx.products.EXPECT().FindByID(ctx, int64(10)).Return(stored, nil)
	fx.products.EXPECT().Delete(ctx, int64(10)).Return(nil)
	fx.activities.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.AdminActivity")).
		Run(func(ctx context.Context, entry *entity.AdminActivity) {
			assert.Equal(t, entity.ActionDeleted, entry.ActionType)
		}).
		Return(nil)

	require.NoError(t, fx.service.Delete(ctx, adminActor(), 10))
}

func TestProductService_Delete_ConcurrentDelete(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	stored := &entity.Product{ID: 10, Name: "Basi Wine", StoreID: "store-1"}

	fx.products.EXPECT().FindByID(ctx, int64(10)).Return(stored, nil)
	fx.products.EXPECT().Delete(ctx, int64(10)).Return(repository.ErrProductNotFound)

	require.NoError(t, fx.service.Delete(ctx, adminActor(), 10))
}

func TestProductService_FetchMostViewed_UsesLimit(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	top := []*entity.Product{{ID: 1}, {ID: 2}}

	fx.products.EXPECT().FindMostViewed(ctx, mostViewedLimit).Return(top, nil)

	products, err := fx.service.FetchMostViewed(ctx)

	require.NoError(t, err)
	assert.Len(t, products, 2)
}
