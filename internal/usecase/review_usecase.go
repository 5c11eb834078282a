package usecase

import (
	"errors"
	"fmt"
	"time"

	"github.com/decluttit/trade-service/internal/domain"
	"github.com/google/uuid"
)

type ReviewUsecase interface {
	CreateReview(actor domain.ActorContext, txID string, rating int, comment string) (*domain.Review, error)
	GetReviewsForUser(userID string, page, limit int64) ([]*domain.Review, int64, error)
}

type DefaultReviewUsecase struct {
	reviewRepo domain.ReviewRepository
	txRepo     domain.TransactionRepository
	trustUC    TrustUsecase
}

func NewDefaultReviewUsecase(
	reviewRepo domain.ReviewRepository,
	txRepo domain.TransactionRepository,
	trustUC TrustUsecase,
) *DefaultReviewUsecase {
	return &DefaultReviewUsecase{
		reviewRepo: reviewRepo,
		txRepo:     txRepo,
		trustUC:    trustUC,
	}
}

// CreateReview records a participant's rating of the counterparty once a
// trade has been RELEASED. Reviews are immutable, one per reviewer per
// transaction.
func (uc *DefaultReviewUsecase) CreateReview(actor domain.ActorContext, txID string, rating int, comment string) (*domain.Review, error) {
	if rating < domain.MinRating || rating > domain.MaxRating {
		return nil, fmt.Errorf("rating must be within [%d, %d]: %w",
			domain.MinRating, domain.MaxRating, domain.ErrValidation)
	}

	tx, err := uc.txRepo.GetTransactionByID(txID)
	if err != nil {
		return nil, err
	}
	if !tx.Participant(actor.UserID) {
		return nil, fmt.Errorf("transaction %s: %w", txID, domain.ErrUnauthorized)
	}
	if tx.Status != domain.StatusReleased {
		return nil, fmt.Errorf("transaction %s is %s, reviews require RELEASED: %w",
			txID, tx.Status, domain.ErrConflict)
	}

	if existing, err := uc.reviewRepo.GetReviewByReviewer(txID, actor.UserID); err == nil && existing != nil {
		return nil, fmt.Errorf("review for transaction %s: %w", txID, domain.ErrConflict)
	} else if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	review := &domain.Review{
		ID:            uuid.New().String(),
		TransactionID: txID,
		ReviewerID:    actor.UserID,
		RevieweeID:    tx.Counterparty(actor.UserID),
		Rating:        rating,
		Comment:       comment,
		CreatedAt:     time.Now(),
	}
	if err := uc.reviewRepo.CreateReview(review); err != nil {
		return nil, err
	}

	// Fresh review changes the reviewee's aggregate history.
	if _, err := uc.trustUC.RecomputeTrustScore(review.RevieweeID); err != nil {
		return review, nil
	}
	return review, nil
}

func (uc *DefaultReviewUsecase) GetReviewsForUser(userID string, page, limit int64) ([]*domain.Review, int64, error) {
	return uc.reviewRepo.GetReviewsForUser(userID, page, limit)
}
