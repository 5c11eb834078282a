package repository

import (
	"errors"
	"fmt"

	"github.com/decluttit/trade-service/internal/domain"
	"github.com/decluttit/trade-service/internal/infrastructure/postgres/mappers"
	"github.com/decluttit/trade-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultReviewRepository struct {
	DB *gorm.DB
}

func NewDefaultReviewRepository(db *gorm.DB) *DefaultReviewRepository {
	return &DefaultReviewRepository{DB: db}
}

func (r *DefaultReviewRepository) CreateReview(review *domain.Review) error {
	return r.DB.Create(mappers.ToGORMReview(review)).Error
}

func (r *DefaultReviewRepository) GetReviewByReviewer(txID, reviewerID string) (*domain.Review, error) {
	var model models.ReviewModel
	if err := r.DB.First(&model, "transaction_id = ? AND reviewer_id = ?", txID, reviewerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("review for transaction %s by %s: %w", txID, reviewerID, domain.ErrNotFound)
		}
		return nil, err
	}
	return mappers.ToDomainReview(&model), nil
}

func (r *DefaultReviewRepository) GetRatingsForUser(userID string) ([]int, error) {
	var ratings []int
	err := r.DB.Model(&models.ReviewModel{}).
		Where("reviewee_id = ?", userID).
		Pluck("rating", &ratings).Error
	return ratings, err
}

func (r *DefaultReviewRepository) GetReviewsForUser(userID string, page, limit int64) ([]*domain.Review, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	query := r.DB.Model(&models.ReviewModel{}).Where("reviewee_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reviewModels []models.ReviewModel
	err := query.
		Order("created_at DESC").
		Offset(int((page - 1) * limit)).
		Limit(int(limit)).
		Find(&reviewModels).Error
	if err != nil {
		return nil, 0, err
	}

	reviews := make([]*domain.Review, 0, len(reviewModels))
	for i := range reviewModels {
		reviews = append(reviews, mappers.ToDomainReview(&reviewModels[i]))
	}
	return reviews, total, nil
}
