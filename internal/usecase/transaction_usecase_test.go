package usecase

import (
	"sync"
	"testing"

	"github.com/decluttit/trade-service/internal/domain"
	transactiondto "github.com/decluttit/trade-service/internal/usecase/dto/transaction"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type txFixture struct {
	txRepo      *memTransactionRepo
	listingRepo *memListingRepo
	userRepo    *memUserRepo
	publisher   *nopPublisher
	uc          *DefaultTransactionUsecase
}

func newTxFixture(t *testing.T) *txFixture {
	t.Helper()

	txRepo := newMemTransactionRepo()
	listingRepo := newMemListingRepo()
	userRepo := newMemUserRepo()
	publisher := &nopPublisher{}

	require.NoError(t, userRepo.CreateUser(&domain.User{
		ID: "buyer-1", Email: "buyer@example.com",
		VerificationLevel: domain.VerificationBasic, IsActive: true,
	}))
	require.NoError(t, userRepo.CreateUser(&domain.User{
		ID: "seller-1", Email: "seller@example.com",
		VerificationLevel: domain.VerificationBasic, IsActive: true,
	}))
	require.NoError(t, listingRepo.CreateListing(&domain.Listing{
		ID: "listing-1", SellerID: "seller-1", Title: "Road bike",
		Condition: domain.ConditionGood,
		Price:     decimal.RequireFromString("45000"),
		Status:    domain.ListingActive,
	}))

	trustUC := NewDefaultTrustUsecase(userRepo, txRepo, newMemReviewRepo(), newMemDisputeRepo(), publisher, zap.NewNop())
	uc := NewDefaultTransactionUsecase(txRepo, listingRepo, trustUC, publisher, nil, zap.NewNop())

	return &txFixture{
		txRepo:      txRepo,
		listingRepo: listingRepo,
		userRepo:    userRepo,
		publisher:   publisher,
		uc:          uc,
	}
}

func (f *txFixture) buyer() domain.ActorContext {
	return domain.ActorContext{UserID: "buyer-1", Role: domain.RoleUser}
}

func (f *txFixture) seller() domain.ActorContext {
	return domain.ActorContext{UserID: "seller-1", Role: domain.RoleUser}
}

func (f *txFixture) create(t *testing.T) *domain.Transaction {
	t.Helper()
	tx, err := f.uc.CreateTransaction(f.buyer(), &transactiondto.CreateTransactionInput{ListingID: "listing-1"})
	require.NoError(t, err)
	return tx
}

func TestCreateTransactionSnapshotsAmountAndFee(t *testing.T) {
	f := newTxFixture(t)

	tx := f.create(t)
	assert.Equal(t, domain.StatusPending, tx.Status)
	assert.True(t, tx.Amount.Equal(decimal.RequireFromString("45000")))
	assert.True(t, tx.PlatformFee.Equal(decimal.RequireFromString("3600")))
	assert.Equal(t, "buyer-1", tx.BuyerID)
	assert.Equal(t, "seller-1", tx.SellerID)
	assert.Len(t, tx.ID, 21)
}

func TestCreateTransactionRejectsOwnListing(t *testing.T) {
	f := newTxFixture(t)

	_, err := f.uc.CreateTransaction(f.seller(), &transactiondto.CreateTransactionInput{ListingID: "listing-1"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCreateTransactionRequiresActiveListing(t *testing.T) {
	f := newTxFixture(t)
	require.NoError(t, f.listingRepo.UpdateListingStatus("listing-1", domain.ListingSold))

	_, err := f.uc.CreateTransaction(f.buyer(), &transactiondto.CreateTransactionInput{ListingID: "listing-1"})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestFullEscrowLifecycle(t *testing.T) {
	f := newTxFixture(t)
	tx := f.create(t)

	escrowed, err := f.uc.MarkEscrowed(tx.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusEscrowed, escrowed.Status)
	assert.NotNil(t, escrowed.PaidAt)

	shipped, err := f.uc.MarkShipped(f.seller(), tx.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusShipped, shipped.Status)

	received, err := f.uc.ConfirmReceipt(f.buyer(), tx.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusReceived, received.Status)

	released, err := f.uc.ReleaseFunds(f.buyer(), tx.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusReleased, released.Status)
	assert.NotNil(t, released.ReleasedAt)
	assert.NotNil(t, released.CompletedAt)

	// amounts never changed across the lifecycle
	assert.True(t, released.Amount.Equal(tx.Amount))
	assert.True(t, released.PlatformFee.Equal(tx.PlatformFee))

	listing, err := f.listingRepo.GetListingByID("listing-1")
	require.NoError(t, err)
	assert.Equal(t, domain.ListingSold, listing.Status)

	// both parties earned a released transaction
	buyer, err := f.userRepo.GetUserByID("buyer-1")
	require.NoError(t, err)
	assert.Equal(t, 10, buyer.TrustScore)
	seller, err := f.userRepo.GetUserByID("seller-1")
	require.NoError(t, err)
	assert.Equal(t, 10, seller.TrustScore)
}

func TestSkippingStatesIsRejected(t *testing.T) {
	f := newTxFixture(t)
	tx := f.create(t)

	// straight to shipped without escrow
	_, err := f.uc.MarkShipped(f.seller(), tx.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidStateTransition)

	// straight to release without the middle states
	_, err = f.uc.ReleaseFunds(f.buyer(), tx.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidStateTransition)

	current, err := f.txRepo.GetTransactionByID(tx.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, current.Status)
}

func TestTransitionAuthorization(t *testing.T) {
	f := newTxFixture(t)
	tx := f.create(t)

	_, err := f.uc.MarkEscrowed(tx.ID)
	require.NoError(t, err)

	// buyer cannot mark shipped
	_, err = f.uc.MarkShipped(f.buyer(), tx.ID)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = f.uc.MarkShipped(f.seller(), tx.ID)
	require.NoError(t, err)

	// seller cannot confirm receipt or release
	_, err = f.uc.ConfirmReceipt(f.seller(), tx.ID)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = f.uc.ConfirmReceipt(f.buyer(), tx.ID)
	require.NoError(t, err)

	_, err = f.uc.ReleaseFunds(f.seller(), tx.ID)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestDoubleReleaseRejected(t *testing.T) {
	f := newTxFixture(t)
	tx := f.create(t)

	_, err := f.uc.MarkEscrowed(tx.ID)
	require.NoError(t, err)
	_, err = f.uc.MarkShipped(f.seller(), tx.ID)
	require.NoError(t, err)
	_, err = f.uc.ConfirmReceipt(f.buyer(), tx.ID)
	require.NoError(t, err)
	_, err = f.uc.ReleaseFunds(f.buyer(), tx.ID)
	require.NoError(t, err)

	_, err = f.uc.ReleaseFunds(f.buyer(), tx.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidStateTransition)
}

func TestCancelOnlyWhilePending(t *testing.T) {
	f := newTxFixture(t)
	tx := f.create(t)

	cancelled, err := f.uc.CancelTransaction(f.seller(), tx.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, cancelled.Status)

	// terminal, nothing moves it again
	_, err = f.uc.MarkEscrowed(tx.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidStateTransition)
}

func TestCancelAfterEscrowRejected(t *testing.T) {
	f := newTxFixture(t)
	tx := f.create(t)

	_, err := f.uc.MarkEscrowed(tx.ID)
	require.NoError(t, err)

	_, err = f.uc.CancelTransaction(f.buyer(), tx.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidStateTransition)
}

func TestCancelRequiresParticipant(t *testing.T) {
	f := newTxFixture(t)
	tx := f.create(t)

	stranger := domain.ActorContext{UserID: "stranger-1", Role: domain.RoleUser}
	_, err := f.uc.CancelTransaction(stranger, tx.ID)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestGetTransactionVisibility(t *testing.T) {
	f := newTxFixture(t)
	tx := f.create(t)

	_, err := f.uc.GetTransaction(f.buyer(), tx.ID)
	assert.NoError(t, err)
	_, err = f.uc.GetTransaction(f.seller(), tx.ID)
	assert.NoError(t, err)

	arbitrator := domain.ActorContext{UserID: "arb-1", Role: domain.RoleArbitrator}
	_, err = f.uc.GetTransaction(arbitrator, tx.ID)
	assert.NoError(t, err)

	stranger := domain.ActorContext{UserID: "stranger-1", Role: domain.RoleUser}
	_, err = f.uc.GetTransaction(stranger, tx.ID)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestConcurrentTransitionHasOneWinner(t *testing.T) {
	f := newTxFixture(t)
	tx := f.create(t)

	const writers = 8
	var wg sync.WaitGroup
	errs := make([]error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.uc.MarkEscrowed(tx.ID)
		}(i)
	}
	wg.Wait()

	winners := 0
	for _, err := range errs {
		if err == nil {
			winners++
		} else {
			assert.ErrorIs(t, err, domain.ErrInvalidStateTransition)
		}
	}
	assert.Equal(t, 1, winners)

	current, err := f.txRepo.GetTransactionByID(tx.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusEscrowed, current.Status)
}
