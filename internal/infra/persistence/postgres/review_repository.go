package postgres

import (
	"context"

	"elyukal/internal/domain/entity"
	"elyukal/internal/domain/repository"
	"elyukal/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// reviewRepository implements the repository.ReviewRepository interface.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{
		db: db,
	}
}

// FindByProduct retrieves the reviews left on the given product.
func (repo *reviewRepository) FindByProduct(ctx context.Context, productID int64) ([]*entity.Review, error) {
	var reviewModels []*model.ReviewModel

	if err := repo.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Find(&reviewModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find reviews by product")
	}

	reviews := make([]*entity.Review, 0, len(reviewModels))
	for _, reviewM := range reviewModels {
		reviews = append(reviews, toReviewDomain(reviewM))
	}

	return reviews, nil
}

// Count returns the total number of reviews.
func (repo *reviewRepository) Count(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count reviews")
	}

	return count, nil
}

// AverageRating returns the mean rating across every review, 0 when there are none.
func (repo *reviewRepository) AverageRating(ctx context.Context) (float64, error) {
	var average *float64

	if err := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Select("AVG(rating)").
		Scan(&average).Error; err != nil {
		return 0, errors.Wrap(err, "failed to average review ratings")
	}

	if average == nil {
		return 0, nil
	}

	return *average, nil
}

// toReviewDomain converts a GORM ReviewModel to a domain Review entity.
func toReviewDomain(data *model.ReviewModel) *entity.Review {
	if data == nil {
		return nil
	}

	return &entity.Review{
		ID:        data.ID,
		UserID:    data.UserID,
		ProductID: data.ProductID,
		Rating:    data.Rating,
		Comment:   data.Comment,
		CreatedAt: data.CreatedAt,
	}
}

// municipalityRepository implements the repository.MunicipalityRepository interface.
type municipalityRepository struct {
	db *gorm.DB
}

// NewMunicipalityRepository is the constructor for municipalityRepository.
func NewMunicipalityRepository(db *gorm.DB) repository.MunicipalityRepository {
	return &municipalityRepository{
		db: db,
	}
}

// FindAll retrieves every municipality ordered by name.
func (repo *municipalityRepository) FindAll(ctx context.Context) ([]*entity.Municipality, error) {
	var municipalityModels []*model.MunicipalityModel

	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&municipalityModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find municipalities")
	}

	municipalities := make([]*entity.Municipality, 0, len(municipalityModels))
	for _, municipalityM := range municipalityModels {
		municipalities = append(municipalities, &entity.Municipality{
			ID:   municipalityM.ID,
			Name: municipalityM.Name,
		})
	}

	return municipalities, nil
}
