package usecase

import (
	"testing"

	"github.com/decluttit/trade-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type reviewFixture struct {
	*txFixture
	reviewRepo *memReviewRepo
	reviewUC   *DefaultReviewUsecase
}

func newReviewFixture(t *testing.T) *reviewFixture {
	t.Helper()

	f := newTxFixture(t)
	reviewRepo := newMemReviewRepo()
	trustUC := NewDefaultTrustUsecase(f.userRepo, f.txRepo, reviewRepo, newMemDisputeRepo(), f.publisher, zap.NewNop())
	reviewUC := NewDefaultReviewUsecase(reviewRepo, f.txRepo, trustUC)
	return &reviewFixture{txFixture: f, reviewRepo: reviewRepo, reviewUC: reviewUC}
}

// releasedTx walks a transaction through the full happy path.
func (f *reviewFixture) releasedTx(t *testing.T) *domain.Transaction {
	t.Helper()
	tx := f.create(t)
	_, err := f.uc.MarkEscrowed(tx.ID)
	require.NoError(t, err)
	_, err = f.uc.MarkShipped(f.seller(), tx.ID)
	require.NoError(t, err)
	_, err = f.uc.ConfirmReceipt(f.buyer(), tx.ID)
	require.NoError(t, err)
	released, err := f.uc.ReleaseFunds(f.buyer(), tx.ID)
	require.NoError(t, err)
	return released
}

func TestCreateReviewAfterRelease(t *testing.T) {
	f := newReviewFixture(t)
	tx := f.releasedTx(t)

	review, err := f.reviewUC.CreateReview(f.buyer(), tx.ID, 5, "smooth trade")
	require.NoError(t, err)
	assert.Equal(t, "seller-1", review.RevieweeID)
	assert.Equal(t, 5, review.Rating)

	// the review feeds the seller's trust score: 10 released + 50 review bonus
	seller, err := f.userRepo.GetUserByID("seller-1")
	require.NoError(t, err)
	assert.Equal(t, 60, seller.TrustScore)
}

func TestCreateReviewRequiresRelease(t *testing.T) {
	f := newReviewFixture(t)
	tx := f.create(t)

	_, err := f.reviewUC.CreateReview(f.buyer(), tx.ID, 4, "")
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestCreateReviewRatingBounds(t *testing.T) {
	f := newReviewFixture(t)
	tx := f.releasedTx(t)

	_, err := f.reviewUC.CreateReview(f.buyer(), tx.ID, 0, "")
	assert.ErrorIs(t, err, domain.ErrValidation)
	_, err = f.reviewUC.CreateReview(f.buyer(), tx.ID, 6, "")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCreateReviewOncePerReviewer(t *testing.T) {
	f := newReviewFixture(t)
	tx := f.releasedTx(t)

	_, err := f.reviewUC.CreateReview(f.buyer(), tx.ID, 5, "")
	require.NoError(t, err)

	_, err = f.reviewUC.CreateReview(f.buyer(), tx.ID, 1, "changed my mind")
	assert.ErrorIs(t, err, domain.ErrConflict)

	// the counterparty still gets their own review
	_, err = f.reviewUC.CreateReview(f.seller(), tx.ID, 4, "")
	assert.NoError(t, err)
}

func TestCreateReviewParticipantsOnly(t *testing.T) {
	f := newReviewFixture(t)
	tx := f.releasedTx(t)

	stranger := domain.ActorContext{UserID: "stranger-1", Role: domain.RoleUser}
	_, err := f.reviewUC.CreateReview(stranger, tx.ID, 3, "")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
