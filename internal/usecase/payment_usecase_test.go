package usecase

import (
	"context"
	"testing"

	"github.com/decluttit/trade-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubGateway struct {
	initResp   *domain.PaymentInit
	initErr    error
	verifyResp *domain.PaymentVerification
	verifyErr  error

	lastEmail       string
	lastAmountMinor int64
	lastReference   string
}

func (g *stubGateway) InitializePayment(ctx context.Context, email string, amountMinor int64, reference, transactionID string) (*domain.PaymentInit, error) {
	g.lastEmail = email
	g.lastAmountMinor = amountMinor
	g.lastReference = reference
	if g.initErr != nil {
		return nil, g.initErr
	}
	if g.initResp != nil {
		return g.initResp, nil
	}
	return &domain.PaymentInit{AuthorizationURL: "https://checkout.example/" + reference, Reference: reference}, nil
}

func (g *stubGateway) VerifyPayment(ctx context.Context, reference string) (*domain.PaymentVerification, error) {
	return g.verifyResp, g.verifyErr
}

type paymentFixture struct {
	*txFixture
	gateway   *stubGateway
	paymentUC *DefaultPaymentUsecase
}

func newPaymentFixture(t *testing.T) *paymentFixture {
	t.Helper()

	f := newTxFixture(t)
	gateway := &stubGateway{}
	paymentUC := NewDefaultPaymentUsecase(gateway, f.txRepo, f.userRepo, f.uc, zap.NewNop())
	return &paymentFixture{txFixture: f, gateway: gateway, paymentUC: paymentUC}
}

func TestInitializePaymentChargesAmountPlusFee(t *testing.T) {
	f := newPaymentFixture(t)
	tx := f.create(t)

	init, err := f.paymentUC.InitializePayment(context.Background(), f.buyer(), tx.ID)
	require.NoError(t, err)

	// 45000 + 3600 fee, in minor units
	assert.Equal(t, int64(4_860_000), f.gateway.lastAmountMinor)
	assert.Equal(t, "buyer@example.com", f.gateway.lastEmail)
	assert.Equal(t, "decluttit_"+tx.ID, init.Reference)

	stored, err := f.txRepo.GetTransactionByID(tx.ID)
	require.NoError(t, err)
	assert.Equal(t, init.Reference, stored.PaymentIntentID)
	assert.Equal(t, domain.StatusPending, stored.Status)
}

func TestInitializePaymentBuyerOnly(t *testing.T) {
	f := newPaymentFixture(t)
	tx := f.create(t)

	_, err := f.paymentUC.InitializePayment(context.Background(), f.seller(), tx.ID)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestInitializePaymentOnlyWhilePending(t *testing.T) {
	f := newPaymentFixture(t)
	tx := f.create(t)
	_, err := f.uc.MarkEscrowed(tx.ID)
	require.NoError(t, err)

	_, err = f.paymentUC.InitializePayment(context.Background(), f.buyer(), tx.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestVerifyPaymentEscrowsTransaction(t *testing.T) {
	f := newPaymentFixture(t)
	tx := f.create(t)
	f.gateway.verifyResp = &domain.PaymentVerification{Success: true, TransactionID: tx.ID}

	escrowed, err := f.paymentUC.VerifyPayment(context.Background(), "decluttit_"+tx.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusEscrowed, escrowed.Status)
	assert.NotNil(t, escrowed.PaidAt)
}

func TestVerifyPaymentFailedCharge(t *testing.T) {
	f := newPaymentFixture(t)
	tx := f.create(t)
	f.gateway.verifyResp = &domain.PaymentVerification{Success: false, TransactionID: tx.ID}

	_, err := f.paymentUC.VerifyPayment(context.Background(), "decluttit_"+tx.ID)
	assert.ErrorIs(t, err, domain.ErrExternalService)

	current, err := f.txRepo.GetTransactionByID(tx.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, current.Status)
}

func TestHandleWebhookEvent(t *testing.T) {
	f := newPaymentFixture(t)
	tx := f.create(t)

	// unknown kinds are acknowledged without state change
	require.NoError(t, f.paymentUC.HandleWebhookEvent("charge.failed", tx.ID))
	current, err := f.txRepo.GetTransactionByID(tx.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, current.Status)

	// charge.success without a transaction id is malformed
	err = f.paymentUC.HandleWebhookEvent(EventChargeSuccess, "")
	assert.ErrorIs(t, err, domain.ErrValidation)

	require.NoError(t, f.paymentUC.HandleWebhookEvent(EventChargeSuccess, tx.ID))
	current, err = f.txRepo.GetTransactionByID(tx.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusEscrowed, current.Status)

	// replayed event cannot double-escrow
	err = f.paymentUC.HandleWebhookEvent(EventChargeSuccess, tx.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidStateTransition)
}
