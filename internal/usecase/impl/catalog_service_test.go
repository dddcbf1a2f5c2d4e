package impl

import (
	"context"
	"testing"

	"elyukal/internal/domain/entity"
	mockRepo "elyukal/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_FetchMunicipalities(t *testing.T) {
	municipalities := mockRepo.NewMockMunicipalityRepository(t)
	reviews := mockRepo.NewMockReviewRepository(t)
	service := NewCatalogService(municipalities, reviews, newDiscardLogger())

	ctx := context.Background()
	stored := []*entity.Municipality{{ID: 1, Name: "Agoo"}, {ID: 2, Name: "Luna"}}

	municipalities.EXPECT().FindAll(ctx).Return(stored, nil)

	got, err := service.FetchMunicipalities(ctx)

	require.NoError(t, err)
	assert.Equal(t, stored, got)
}

func TestCatalogService_FetchProductReviews(t *testing.T) {
	municipalities := mockRepo.NewMockMunicipalityRepository(t)
	reviews := mockRepo.NewMockReviewRepository(t)
	service := NewCatalogService(municipalities, reviews, newDiscardLogger())

	ctx := context.Background()
	stored := []*entity.Review{{ID: 1, ProductID: 10, Rating: 5}}

	reviews.EXPECT().FindByProduct(ctx, int64(10)).Return(stored, nil)

	got, err := service.FetchProductReviews(ctx, 10)

	require.NoError(t, err)
	assert.Equal(t, stored, got)
}

func TestCatalogService_FetchProductReviews_RepositoryFailure(t *testing.T) {
	municipalities := mockRepo.NewMockMunicipalityRepository(t)
	reviews := mockRepo.NewMockReviewRepository(t)
	service := NewCatalogService(municipalities, reviews, newDiscardLogger())

	ctx := context.Background()

	reviews.EXPECT().FindByProduct(ctx, int64(10)).Return(nil, errors.New("connection reset"))

	got, err := service.FetchProductReviews(ctx, 10)

	assert.Nil(t, got)
	assert.Error(t, err)
}
