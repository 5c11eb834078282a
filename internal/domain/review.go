package domain

import "time"

const (
	MinRating = 1
	MaxRating = 5
)

type Review struct {
	ID            string
	TransactionID string
	ReviewerID    string
	RevieweeID    string
	Rating        int
	Comment       string
	CreatedAt     time.Time
}

type ReviewRepository interface {
	CreateReview(review *Review) error
	GetReviewByReviewer(txID, reviewerID string) (*Review, error)
	GetRatingsForUser(userID string) ([]int, error)
	GetReviewsForUser(userID string, page, limit int64) ([]*Review, int64, error)
}
