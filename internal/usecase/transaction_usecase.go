package usecase

import (
	"fmt"
	"time"

	"github.com/decluttit/trade-service/internal/domain"
	"github.com/decluttit/trade-service/internal/infrastructure/metrics"
	transactiondto "github.com/decluttit/trade-service/internal/usecase/dto/transaction"
	"github.com/jaevor/go-nanoid"
	"go.uber.org/zap"
)

type TransactionUsecase interface {
	CreateTransaction(actor domain.ActorContext, input *transactiondto.CreateTransactionInput) (*domain.Transaction, error)
	MarkEscrowed(txID string) (*domain.Transaction, error)
	MarkShipped(actor domain.ActorContext, txID string) (*domain.Transaction, error)
	ConfirmReceipt(actor domain.ActorContext, txID string) (*domain.Transaction, error)
	ReleaseFunds(actor domain.ActorContext, txID string) (*domain.Transaction, error)
	CancelTransaction(actor domain.ActorContext, txID string) (*domain.Transaction, error)
	GetTransaction(actor domain.ActorContext, txID string) (*domain.Transaction, error)
	GetTransactions(actor domain.ActorContext, page, limit int64, filters domain.TransactionFilters) ([]*domain.Transaction, int64, error)
}

type DefaultTransactionUsecase struct {
	txRepo      domain.TransactionRepository
	listingRepo domain.ListingRepository
	trustUC     TrustUsecase
	publisher   domain.EventPublisher
	metrics     *metrics.TradeMetrics
	logger      *zap.Logger
}

func NewDefaultTransactionUsecase(
	txRepo domain.TransactionRepository,
	listingRepo domain.ListingRepository,
	trustUC TrustUsecase,
	publisher domain.EventPublisher,
	tradeMetrics *metrics.TradeMetrics,
	logger *zap.Logger,
) *DefaultTransactionUsecase {
	return &DefaultTransactionUsecase{
		txRepo:      txRepo,
		listingRepo: listingRepo,
		trustUC:     trustUC,
		publisher:   publisher,
		metrics:     tradeMetrics,
		logger:      logger,
	}
}

// CreateTransaction snapshots the listing price and the platform fee and
// opens the trade in PENDING. Amount and fee are never recomputed after
// this point.
func (uc *DefaultTransactionUsecase) CreateTransaction(actor domain.ActorContext, input *transactiondto.CreateTransactionInput) (*domain.Transaction, error) {
	listing, err := uc.listingRepo.GetListingByID(input.ListingID)
	if err != nil {
		return nil, err
	}
	if listing.SellerID == actor.UserID {
		return nil, fmt.Errorf("cannot buy your own listing: %w", domain.ErrValidation)
	}
	if listing.Status != domain.ListingActive {
		return nil, fmt.Errorf("listing %s is %s, not ACTIVE: %w", listing.ID, listing.Status, domain.ErrConflict)
	}

	idGenerator, err := nanoid.Standard(21)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	tx := &domain.Transaction{
		ID:             idGenerator(),
		ListingID:      listing.ID,
		BuyerID:        actor.UserID,
		SellerID:       listing.SellerID,
		BuyerRequestID: input.BuyerRequestID,
		Amount:         listing.Price,
		PlatformFee:    PlatformFee(listing.Price),
		Status:         domain.StatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.txRepo.CreateTransaction(tx); err != nil {
		return nil, err
	}

	uc.metrics.RecordTransactionCreated(amountFloat(tx))
	uc.publishTrade(tx)
	uc.logger.Info("transaction created",
		zap.String("transaction_id", tx.ID),
		zap.String("listing_id", tx.ListingID),
		zap.String("buyer_id", tx.BuyerID),
		zap.String("amount", tx.Amount.String()),
		zap.String("platform_fee", tx.PlatformFee.String()),
	)
	return tx, nil
}

// MarkEscrowed moves PENDING -> ESCROWED. Invoked by the payment
// collaborator path (webhook or verify), never by an end user.
func (uc *DefaultTransactionUsecase) MarkEscrowed(txID string) (*domain.Transaction, error) {
	now := time.Now()
	return uc.advance(txID, domain.StatusPending, domain.StatusEscrowed, domain.TransactionPatch{PaidAt: &now})
}

func (uc *DefaultTransactionUsecase) MarkShipped(actor domain.ActorContext, txID string) (*domain.Transaction, error) {
	tx, err := uc.txRepo.GetTransactionByID(txID)
	if err != nil {
		return nil, err
	}
	if tx.SellerID != actor.UserID {
		return nil, fmt.Errorf("only the seller may mark shipped: %w", domain.ErrUnauthorized)
	}
	return uc.advance(txID, domain.StatusEscrowed, domain.StatusShipped, domain.TransactionPatch{})
}

func (uc *DefaultTransactionUsecase) ConfirmReceipt(actor domain.ActorContext, txID string) (*domain.Transaction, error) {
	tx, err := uc.txRepo.GetTransactionByID(txID)
	if err != nil {
		return nil, err
	}
	if tx.BuyerID != actor.UserID {
		return nil, fmt.Errorf("only the buyer may confirm receipt: %w", domain.ErrUnauthorized)
	}
	return uc.advance(txID, domain.StatusShipped, domain.StatusReceived, domain.TransactionPatch{})
}

// ReleaseFunds closes the happy path: RECEIVED -> RELEASED, marks the
// listing SOLD and recomputes trust for both parties.
func (uc *DefaultTransactionUsecase) ReleaseFunds(actor domain.ActorContext, txID string) (*domain.Transaction, error) {
	tx, err := uc.txRepo.GetTransactionByID(txID)
	if err != nil {
		return nil, err
	}
	if tx.BuyerID != actor.UserID {
		return nil, fmt.Errorf("only the buyer may release funds: %w", domain.ErrUnauthorized)
	}

	now := time.Now()
	released, err := uc.advance(txID, domain.StatusReceived, domain.StatusReleased, domain.TransactionPatch{
		ReleasedAt:  &now,
		CompletedAt: &now,
	})
	if err != nil {
		return nil, err
	}

	if err := uc.listingRepo.UpdateListingStatus(released.ListingID, domain.ListingSold); err != nil {
		uc.logger.Error("failed to mark listing sold",
			zap.String("listing_id", released.ListingID), zap.Error(err))
	}

	if _, err := uc.trustUC.RecomputeTrustScore(released.BuyerID); err != nil {
		uc.logger.Error("trust recompute failed", zap.String("user_id", released.BuyerID), zap.Error(err))
	}
	if _, err := uc.trustUC.RecomputeTrustScore(released.SellerID); err != nil {
		uc.logger.Error("trust recompute failed", zap.String("user_id", released.SellerID), zap.Error(err))
	}

	uc.metrics.RecordTransactionCompleted(amountFloat(released), feeFloat(released))
	return released, nil
}

// CancelTransaction is only possible while the trade is still PENDING.
func (uc *DefaultTransactionUsecase) CancelTransaction(actor domain.ActorContext, txID string) (*domain.Transaction, error) {
	tx, err := uc.txRepo.GetTransactionByID(txID)
	if err != nil {
		return nil, err
	}
	if !tx.Participant(actor.UserID) {
		return nil, fmt.Errorf("only a participant may cancel: %w", domain.ErrUnauthorized)
	}
	cancelled, err := uc.advance(txID, domain.StatusPending, domain.StatusCancelled, domain.TransactionPatch{})
	if err != nil {
		return nil, err
	}
	uc.metrics.RecordTransactionCancelled(amountFloat(cancelled))
	return cancelled, nil
}

func (uc *DefaultTransactionUsecase) GetTransaction(actor domain.ActorContext, txID string) (*domain.Transaction, error) {
	tx, err := uc.txRepo.GetTransactionByID(txID)
	if err != nil {
		return nil, err
	}
	if !tx.Participant(actor.UserID) && !actor.Arbitrator() {
		return nil, fmt.Errorf("transaction %s: %w", txID, domain.ErrUnauthorized)
	}
	return tx, nil
}

func (uc *DefaultTransactionUsecase) GetTransactions(actor domain.ActorContext, page, limit int64, filters domain.TransactionFilters) ([]*domain.Transaction, int64, error) {
	return uc.txRepo.GetTransactionsByUserID(actor.UserID, page, limit, filters)
}

// advance performs a guarded transition. The conditional update in the
// repository serializes concurrent writers: the loser observes
// ErrInvalidStateTransition instead of overwriting.
func (uc *DefaultTransactionUsecase) advance(txID string, from, to domain.TransactionStatus, patch domain.TransactionPatch) (*domain.Transaction, error) {
	tx, err := uc.txRepo.GetTransactionByID(txID)
	if err != nil {
		return nil, err
	}
	if tx.Status != from {
		return nil, transitionError(txID, tx.Status, string(from))
	}

	won, err := uc.txRepo.AdvanceStatus(txID, from, to, patch)
	if err != nil {
		return nil, err
	}
	if !won {
		current, readErr := uc.txRepo.GetTransactionByID(txID)
		if readErr != nil {
			return nil, readErr
		}
		return nil, transitionError(txID, current.Status, string(from))
	}

	updated, err := uc.txRepo.GetTransactionByID(txID)
	if err != nil {
		return nil, err
	}
	uc.publishTrade(updated)
	uc.logger.Info("transaction advanced",
		zap.String("transaction_id", txID),
		zap.String("from", string(from)),
		zap.String("to", string(to)),
	)
	return updated, nil
}

func (uc *DefaultTransactionUsecase) publishTrade(tx *domain.Transaction) {
	err := uc.publisher.PublishTrade(domain.TradeEvent{
		TransactionID: tx.ID,
		ListingID:     tx.ListingID,
		BuyerID:       tx.BuyerID,
		SellerID:      tx.SellerID,
		Status:        string(tx.Status),
		Amount:        tx.Amount.String(),
		PlatformFee:   tx.PlatformFee.String(),
	})
	if err != nil {
		uc.logger.Error("failed to publish trade event",
			zap.String("transaction_id", tx.ID), zap.Error(err))
	}
}

func transitionError(txID string, current domain.TransactionStatus, required string) error {
	return fmt.Errorf("transaction %s is %s, required %s: %w",
		txID, current, required, domain.ErrInvalidStateTransition)
}

func amountFloat(tx *domain.Transaction) float64 {
	f, _ := tx.Amount.Float64()
	return f
}

func feeFloat(tx *domain.Transaction) float64 {
	f, _ := tx.PlatformFee.Float64()
	return f
}
