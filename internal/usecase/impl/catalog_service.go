package impl

import (
	"context"
	"log/slog"

	"elyukal/internal/domain/entity"
	"elyukal/internal/domain/repository"
	"elyukal/internal/usecase"

	"github.com/pkg/errors"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	municipalities repository.MunicipalityRepository
	reviews        repository.ReviewRepository
	logger         *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(
	municipalities repository.MunicipalityRepository,
	reviews repository.ReviewRepository,
	logger *slog.Logger,
) usecase.CatalogUsecase {
	return &catalogService{
		municipalities: municipalities,
		reviews:        reviews,
		logger:         logger,
	}
}

// FetchMunicipalities lists the municipality reference rows.
func (srv *catalogService) FetchMunicipalities(ctx context.Context) ([]*entity.Municipality, error) {
	municipalities, err := srv.municipalities.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list municipalities")
	}

	return municipalities, nil
}

// FetchProductReviews lists the reviews left on a product.
func (srv *catalogService) FetchProductReviews(ctx context.Context, productID int64) ([]*entity.Review, error) {
	reviews, err := srv.reviews.FindByProduct(ctx, productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list product reviews")
	}

	return reviews, nil
}
