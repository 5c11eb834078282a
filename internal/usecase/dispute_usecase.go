package usecase

import (
	"errors"
	"fmt"
	"time"

	"github.com/decluttit/trade-service/internal/domain"
	"github.com/decluttit/trade-service/internal/infrastructure/metrics"
	disputedto "github.com/decluttit/trade-service/internal/usecase/dto/dispute"
	"github.com/jaevor/go-nanoid"
	"go.uber.org/zap"
)

type DisputeUsecase interface {
	OpenDispute(actor domain.ActorContext, input *disputedto.OpenDisputeInput) (*domain.Dispute, error)
	AddEvidence(actor domain.ActorContext, disputeID, evidence string) (*domain.Dispute, error)
	ResolveDispute(actor domain.ActorContext, input *disputedto.ResolveDisputeInput) error
	GetDisputeByID(actor domain.ActorContext, disputeID string) (*domain.Dispute, error)
	GetDisputesByUserID(actor domain.ActorContext, page, limit int64) ([]*domain.Dispute, int64, error)
}

type DefaultDisputeUsecase struct {
	disputeRepo domain.DisputeRepository
	txRepo      domain.TransactionRepository
	trustUC     TrustUsecase
	publisher   domain.EventPublisher
	metrics     *metrics.TradeMetrics
	logger      *zap.Logger
}

func NewDefaultDisputeUsecase(
	disputeRepo domain.DisputeRepository,
	txRepo domain.TransactionRepository,
	trustUC TrustUsecase,
	publisher domain.EventPublisher,
	tradeMetrics *metrics.TradeMetrics,
	logger *zap.Logger,
) *DefaultDisputeUsecase {
	return &DefaultDisputeUsecase{
		disputeRepo: disputeRepo,
		txRepo:      txRepo,
		trustUC:     trustUC,
		publisher:   publisher,
		metrics:     tradeMetrics,
		logger:      logger,
	}
}

// OpenDispute contests a transaction and forces it to DISPUTED. At most
// one dispute may ever exist per transaction.
func (uc *DefaultDisputeUsecase) OpenDispute(actor domain.ActorContext, input *disputedto.OpenDisputeInput) (*domain.Dispute, error) {
	if input.Reason == "" {
		return nil, fmt.Errorf("dispute reason is required: %w", domain.ErrValidation)
	}

	tx, err := uc.txRepo.GetTransactionByID(input.TransactionID)
	if err != nil {
		return nil, err
	}
	if !tx.Participant(actor.UserID) {
		return nil, fmt.Errorf("transaction %s: %w", tx.ID, domain.ErrUnauthorized)
	}
	if tx.Status.Terminal() || tx.Status == domain.StatusDisputed {
		return nil, transitionError(tx.ID, tx.Status, "a non-terminal undisputed state")
	}

	if existing, err := uc.disputeRepo.GetDisputeByTransactionID(tx.ID); err == nil && existing != nil {
		return nil, fmt.Errorf("dispute for transaction %s: %w", tx.ID, domain.ErrConflict)
	} else if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	idGenerator, err := nanoid.Standard(21)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	dispute := &domain.Dispute{
		ID:            idGenerator(),
		TransactionID: tx.ID,
		ComplainantID: actor.UserID,
		RespondentID:  tx.Counterparty(actor.UserID),
		Reason:        input.Reason,
		Description:   input.Description,
		Evidence:      append([]string{}, input.Evidence...),
		Status:        domain.DisputeOpen,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.disputeRepo.CreateDispute(dispute); err != nil {
		return nil, err
	}

	won, err := uc.txRepo.AdvanceStatus(tx.ID, tx.Status, domain.StatusDisputed, domain.TransactionPatch{})
	if err != nil {
		return nil, err
	}
	if !won {
		current, readErr := uc.txRepo.GetTransactionByID(tx.ID)
		if readErr != nil {
			return nil, readErr
		}
		return nil, transitionError(tx.ID, current.Status, string(tx.Status))
	}

	uc.metrics.RecordDisputeOpened()
	uc.publishDispute(dispute)
	uc.logger.Info("dispute opened",
		zap.String("dispute_id", dispute.ID),
		zap.String("transaction_id", tx.ID),
		zap.String("complainant_id", dispute.ComplainantID),
	)
	return dispute, nil
}

// AddEvidence appends to the dispute's evidence log. Only the complainant
// may add evidence, and only while the dispute is still OPEN.
func (uc *DefaultDisputeUsecase) AddEvidence(actor domain.ActorContext, disputeID, evidence string) (*domain.Dispute, error) {
	if evidence == "" {
		return nil, fmt.Errorf("evidence must not be empty: %w", domain.ErrValidation)
	}
	dispute, err := uc.disputeRepo.GetDisputeByID(disputeID)
	if err != nil {
		return nil, err
	}
	if dispute.ComplainantID != actor.UserID {
		return nil, fmt.Errorf("only the complainant may add evidence: %w", domain.ErrUnauthorized)
	}
	if dispute.Status != domain.DisputeOpen {
		return nil, fmt.Errorf("dispute %s is already resolved: %w", disputeID, domain.ErrConflict)
	}
	if err := uc.disputeRepo.AppendEvidence(disputeID, evidence); err != nil {
		return nil, err
	}
	return uc.disputeRepo.GetDisputeByID(disputeID)
}

// ResolveDispute is the arbitrator's one-way terminal action. It settles
// the parent transaction to REFUNDED or RELEASED and recomputes the
// respondent's trust score.
func (uc *DefaultDisputeUsecase) ResolveDispute(actor domain.ActorContext, input *disputedto.ResolveDisputeInput) error {
	if !actor.Arbitrator() {
		return fmt.Errorf("dispute resolution requires an arbitrator: %w", domain.ErrUnauthorized)
	}

	dispute, err := uc.disputeRepo.GetDisputeByID(input.DisputeID)
	if err != nil {
		return err
	}
	if dispute.Status != domain.DisputeOpen {
		return fmt.Errorf("dispute %s is already resolved: %w", dispute.ID, domain.ErrConflict)
	}

	now := time.Now()
	if err := uc.disputeRepo.ResolveDispute(dispute.ID, input.Resolution, now); err != nil {
		return err
	}

	target := domain.StatusReleased
	patch := domain.TransactionPatch{ReleasedAt: &now}
	if input.RefundBuyer {
		target = domain.StatusRefunded
		patch = domain.TransactionPatch{RefundedAt: &now}
	}
	won, err := uc.txRepo.AdvanceStatus(dispute.TransactionID, domain.StatusDisputed, target, patch)
	if err != nil {
		return err
	}
	if !won {
		current, readErr := uc.txRepo.GetTransactionByID(dispute.TransactionID)
		if readErr != nil {
			return readErr
		}
		return transitionError(dispute.TransactionID, current.Status, string(domain.StatusDisputed))
	}

	if _, err := uc.trustUC.RecomputeTrustScore(dispute.RespondentID); err != nil {
		uc.logger.Error("trust recompute failed",
			zap.String("user_id", dispute.RespondentID), zap.Error(err))
	}

	uc.metrics.RecordDisputeResolved(input.RefundBuyer)
	dispute.Status = domain.DisputeResolved
	uc.publishDispute(dispute)
	uc.logger.Info("dispute resolved",
		zap.String("dispute_id", dispute.ID),
		zap.String("transaction_id", dispute.TransactionID),
		zap.Bool("refund_buyer", input.RefundBuyer),
	)
	return nil
}

func (uc *DefaultDisputeUsecase) GetDisputeByID(actor domain.ActorContext, disputeID string) (*domain.Dispute, error) {
	dispute, err := uc.disputeRepo.GetDisputeByID(disputeID)
	if err != nil {
		return nil, err
	}
	if dispute.ComplainantID != actor.UserID && dispute.RespondentID != actor.UserID && !actor.Arbitrator() {
		return nil, fmt.Errorf("dispute %s: %w", disputeID, domain.ErrUnauthorized)
	}
	return dispute, nil
}

func (uc *DefaultDisputeUsecase) GetDisputesByUserID(actor domain.ActorContext, page, limit int64) ([]*domain.Dispute, int64, error) {
	return uc.disputeRepo.GetDisputesByUserID(actor.UserID, page, limit)
}

func (uc *DefaultDisputeUsecase) publishDispute(dispute *domain.Dispute) {
	err := uc.publisher.PublishDispute(domain.DisputeEvent{
		DisputeID:     dispute.ID,
		TransactionID: dispute.TransactionID,
		ComplainantID: dispute.ComplainantID,
		RespondentID:  dispute.RespondentID,
		Status:        string(dispute.Status),
		Reason:        dispute.Reason,
	})
	if err != nil {
		uc.logger.Error("failed to publish dispute event",
			zap.String("dispute_id", dispute.ID), zap.Error(err))
	}
}
