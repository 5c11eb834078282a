package models

import (
	"time"

	"github.com/decluttit/trade-service/internal/domain"
	"github.com/shopspring/decimal"
)

type BuyerRequestModel struct {
	ID                 string               `gorm:"primaryKey;type:uuid"`
	BuyerID            string               `gorm:"type:uuid;not null;index"`
	Title              string               `gorm:"not null"`
	Description        string
	CategoryID         string               `gorm:"index:idx_request_candidates"`
	MinPrice           *decimal.Decimal     `gorm:"type:numeric(14,2)"`
	MaxPrice           *decimal.Decimal     `gorm:"type:numeric(14,2)"`
	PreferredCondition domain.Condition     `gorm:"index:idx_request_candidates"`
	LocationID         string
	RadiusKm           int                  `gorm:"not null;default:25"`
	Status             domain.RequestStatus `gorm:"not null;index:idx_request_candidates"`
	ExpiresAt          *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (BuyerRequestModel) TableName() string { return "buyer_requests" }
