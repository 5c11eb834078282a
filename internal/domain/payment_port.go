package domain

import "context"

// PaymentInit is the gateway's answer to a payment initialization:
// where to send the buyer, and the reference to reconcile on.
type PaymentInit struct {
	AuthorizationURL string
	Reference        string
}

type PaymentVerification struct {
	Success       bool
	TransactionID string
}

// PaymentGateway is the outbound escrow collaborator. Charge and refund
// execution live behind it; the core only consumes confirmations.
type PaymentGateway interface {
	InitializePayment(ctx context.Context, email string, amountMinor int64, reference, transactionID string) (*PaymentInit, error)
	VerifyPayment(ctx context.Context, reference string) (*PaymentVerification, error)
}
