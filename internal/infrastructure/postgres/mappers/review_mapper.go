package mappers

import (
	"github.com/decluttit/trade-service/internal/domain"
	"github.com/decluttit/trade-service/internal/infrastructure/postgres/models"
)

func ToDomainReview(model *models.ReviewModel) *domain.Review {
	return &domain.Review{
		ID:            model.ID,
		TransactionID: model.TransactionID,
		ReviewerID:    model.ReviewerID,
		RevieweeID:    model.RevieweeID,
		Rating:        model.Rating,
		Comment:       model.Comment,
		CreatedAt:     model.CreatedAt,
	}
}

func ToGORMReview(review *domain.Review) *models.ReviewModel {
	return &models.ReviewModel{
		ID:            review.ID,
		TransactionID: review.TransactionID,
		ReviewerID:    review.ReviewerID,
		RevieweeID:    review.RevieweeID,
		Rating:        review.Rating,
		Comment:       review.Comment,
		CreatedAt:     review.CreatedAt,
	}
}
