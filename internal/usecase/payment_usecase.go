package usecase

import (
	"context"
	"fmt"

	"github.com/decluttit/trade-service/internal/domain"
	"go.uber.org/zap"
)

// EventChargeSuccess is the only webhook event kind that moves a
// transaction into escrow.
const EventChargeSuccess = "charge.success"

type PaymentUsecase interface {
	InitializePayment(ctx context.Context, actor domain.ActorContext, txID string) (*domain.PaymentInit, error)
	VerifyPayment(ctx context.Context, reference string) (*domain.Transaction, error)
	HandleWebhookEvent(eventKind, txID string) error
}

type DefaultPaymentUsecase struct {
	gateway  domain.PaymentGateway
	txRepo   domain.TransactionRepository
	userRepo domain.UserRepository
	txUC     TransactionUsecase
	logger   *zap.Logger
}

func NewDefaultPaymentUsecase(
	gateway domain.PaymentGateway,
	txRepo domain.TransactionRepository,
	userRepo domain.UserRepository,
	txUC TransactionUsecase,
	logger *zap.Logger,
) *DefaultPaymentUsecase {
	return &DefaultPaymentUsecase{
		gateway:  gateway,
		txRepo:   txRepo,
		userRepo: userRepo,
		txUC:     txUC,
		logger:   logger,
	}
}

// InitializePayment asks the gateway for a checkout session covering the
// trade amount plus the platform fee. Gateway failures surface to the
// caller; the transaction stays PENDING.
func (uc *DefaultPaymentUsecase) InitializePayment(ctx context.Context, actor domain.ActorContext, txID string) (*domain.PaymentInit, error) {
	tx, err := uc.txRepo.GetTransactionByID(txID)
	if err != nil {
		return nil, err
	}
	if tx.BuyerID != actor.UserID {
		return nil, fmt.Errorf("only the buyer may pay for transaction %s: %w", txID, domain.ErrUnauthorized)
	}
	if tx.Status != domain.StatusPending {
		return nil, fmt.Errorf("transaction %s already processed: %w", txID, domain.ErrConflict)
	}

	buyer, err := uc.userRepo.GetUserByID(tx.BuyerID)
	if err != nil {
		return nil, err
	}

	total := tx.Amount.Add(tx.PlatformFee)
	// Gateway expects minor currency units.
	amountMinor := total.Mul(minorUnitFactor).Round(0).IntPart()
	reference := fmt.Sprintf("decluttit_%s", tx.ID)

	init, err := uc.gateway.InitializePayment(ctx, buyer.Email, amountMinor, reference, tx.ID)
	if err != nil {
		return nil, err
	}
	if err := uc.txRepo.SetPaymentIntentID(tx.ID, init.Reference); err != nil {
		return nil, err
	}
	return init, nil
}

// VerifyPayment reconciles a gateway reference and escrows the
// transaction on success.
func (uc *DefaultPaymentUsecase) VerifyPayment(ctx context.Context, reference string) (*domain.Transaction, error) {
	verification, err := uc.gateway.VerifyPayment(ctx, reference)
	if err != nil {
		return nil, err
	}
	if !verification.Success {
		return nil, fmt.Errorf("payment %s not successful: %w", reference, domain.ErrExternalService)
	}
	return uc.txUC.MarkEscrowed(verification.TransactionID)
}

// HandleWebhookEvent processes an already signature-verified gateway
// event. Unknown kinds are acknowledged without any state change.
func (uc *DefaultPaymentUsecase) HandleWebhookEvent(eventKind, txID string) error {
	if eventKind != EventChargeSuccess {
		uc.logger.Debug("ignoring webhook event", zap.String("event", eventKind))
		return nil
	}
	if txID == "" {
		return fmt.Errorf("webhook event without transaction id: %w", domain.ErrValidation)
	}
	_, err := uc.txUC.MarkEscrowed(txID)
	return err
}
