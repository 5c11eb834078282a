package models

import (
	"time"

	"github.com/decluttit/trade-service/internal/domain"
	"github.com/shopspring/decimal"
)

type ListingModel struct {
	ID          string               `gorm:"primaryKey;type:uuid"`
	SellerID    string               `gorm:"type:uuid;not null;index"`
	Title       string               `gorm:"not null"`
	Description string
	CategoryID  string               `gorm:"index:idx_listing_candidates"`
	Condition   domain.Condition     `gorm:"index:idx_listing_candidates"`
	Price       decimal.Decimal      `gorm:"type:numeric(14,2);not null"`
	LocationID  string
	Status      domain.ListingStatus `gorm:"not null;index:idx_listing_candidates"`
	ViewCount   int64                `gorm:"not null;default:0"`
	CreatedAt   time.Time            `gorm:"index"`
	UpdatedAt   time.Time
}

func (ListingModel) TableName() string { return "listings" }
