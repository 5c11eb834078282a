package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type ListingStatus string

const (
	ListingActive  ListingStatus = "ACTIVE"
	ListingPending ListingStatus = "PENDING"
	ListingSold    ListingStatus = "SOLD"
	ListingHidden  ListingStatus = "HIDDEN"
)

type Condition string

const (
	ConditionNew     Condition = "NEW"
	ConditionLikeNew Condition = "LIKE_NEW"
	ConditionGood    Condition = "GOOD"
	ConditionFair    Condition = "FAIR"
	ConditionPoor    Condition = "POOR"
)

func (c Condition) Valid() bool {
	switch c {
	case ConditionNew, ConditionLikeNew, ConditionGood, ConditionFair, ConditionPoor:
		return true
	}
	return false
}

type Listing struct {
	ID          string
	SellerID    string
	Title       string
	Description string
	CategoryID  string
	Condition   Condition
	Price       decimal.Decimal
	LocationID  string
	Status      ListingStatus
	ViewCount   int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ListingCandidateFilter is the typed query for matching candidates.
// Zero values mean "no constraint".
type ListingCandidateFilter struct {
	ExcludeSellerID string
	CategoryID      string
	Condition       Condition
	MinPrice        *decimal.Decimal
	MaxPrice        *decimal.Decimal
}

type ListingRepository interface {
	CreateListing(listing *Listing) error
	GetListingByID(listingID string) (*Listing, error)
	UpdateListing(listing *Listing) error
	UpdateListingStatus(listingID string, status ListingStatus) error
	IncrementViewCount(listingID string) error
	FindActiveCandidates(filter ListingCandidateFilter) ([]*Listing, error)
	GetListingsBySellerID(sellerID string, page, limit int64) ([]*Listing, int64, error)
}
