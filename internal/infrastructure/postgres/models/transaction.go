package models

import (
	"time"

	"github.com/decluttit/trade-service/internal/domain"
	"github.com/shopspring/decimal"
)

type TransactionModel struct {
	ID              string                   `gorm:"primaryKey"`
	ListingID       string                   `gorm:"type:uuid;not null;index"`
	BuyerID         string                   `gorm:"type:uuid;not null;index"`
	SellerID        string                   `gorm:"type:uuid;not null;index"`
	BuyerRequestID  string
	Amount          decimal.Decimal          `gorm:"type:numeric(14,2);not null"`
	PlatformFee     decimal.Decimal          `gorm:"type:numeric(14,2);not null"`
	Status          domain.TransactionStatus `gorm:"not null;index"`
	PaymentIntentID string
	PaidAt          *time.Time
	ReleasedAt      *time.Time
	RefundedAt      *time.Time
	CompletedAt     *time.Time
	CreatedAt       time.Time `gorm:"index"`
	UpdatedAt       time.Time
}

func (TransactionModel) TableName() string { return "transactions" }
