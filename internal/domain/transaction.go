package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionStatus string

const (
	StatusPending   TransactionStatus = "PENDING"
	StatusEscrowed  TransactionStatus = "ESCROWED"
	StatusShipped   TransactionStatus = "SHIPPED"
	StatusReceived  TransactionStatus = "RECEIVED"
	StatusReleased  TransactionStatus = "RELEASED"
	StatusRefunded  TransactionStatus = "REFUNDED"
	StatusDisputed  TransactionStatus = "DISPUTED"
	StatusCancelled TransactionStatus = "CANCELLED"
)

// Terminal reports whether no further transition may leave the status.
func (s TransactionStatus) Terminal() bool {
	switch s {
	case StatusReleased, StatusRefunded, StatusCancelled:
		return true
	}
	return false
}

type Transaction struct {
	ID              string
	ListingID       string
	BuyerID         string
	SellerID        string
	BuyerRequestID  string
	Amount          decimal.Decimal
	PlatformFee     decimal.Decimal
	Status          TransactionStatus
	PaymentIntentID string
	PaidAt          *time.Time
	ReleasedAt      *time.Time
	RefundedAt      *time.Time
	CompletedAt     *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Participant reports whether userID is the buyer or the seller.
func (t *Transaction) Participant(userID string) bool {
	return t.BuyerID == userID || t.SellerID == userID
}

// Counterparty returns the other side of the trade for userID.
func (t *Transaction) Counterparty(userID string) string {
	if t.BuyerID == userID {
		return t.SellerID
	}
	return t.BuyerID
}

// TransactionPatch carries the fields set together with a status change.
type TransactionPatch struct {
	PaidAt          *time.Time
	ReleasedAt      *time.Time
	RefundedAt      *time.Time
	CompletedAt     *time.Time
	PaymentIntentID string
}

type TransactionFilters struct {
	Status TransactionStatus
}

type TransactionRepository interface {
	CreateTransaction(tx *Transaction) error
	GetTransactionByID(txID string) (*Transaction, error)
	// AdvanceStatus performs an atomic conditional update
	// (UPDATE ... WHERE id = ? AND status = ?) and reports whether
	// this writer won. A losing writer gets (false, nil).
	AdvanceStatus(txID string, from, to TransactionStatus, patch TransactionPatch) (bool, error)
	SetPaymentIntentID(txID string, paymentIntentID string) error
	GetTransactionsByUserID(userID string, page, limit int64, filters TransactionFilters) ([]*Transaction, int64, error)
	CountByUserAndStatus(userID string, status TransactionStatus) (int64, error)
}
