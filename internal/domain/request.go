package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type RequestStatus string

const (
	RequestActive    RequestStatus = "ACTIVE"
	RequestMatched   RequestStatus = "MATCHED"
	RequestExpired   RequestStatus = "EXPIRED"
	RequestCancelled RequestStatus = "CANCELLED"
)

const (
	MinRadiusKm = 1
	MaxRadiusKm = 500
)

type BuyerRequest struct {
	ID                 string
	BuyerID            string
	Title              string
	Description        string
	CategoryID         string
	MinPrice           *decimal.Decimal
	MaxPrice           *decimal.Decimal
	PreferredCondition Condition
	LocationID         string
	RadiusKm           int
	Status             RequestStatus
	ExpiresAt          *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// RequestCandidateFilter mirrors ListingCandidateFilter for the
// listing -> request matching direction.
type RequestCandidateFilter struct {
	ExcludeBuyerID string
	CategoryID     string
	Condition      Condition
}

type BuyerRequestRepository interface {
	CreateRequest(request *BuyerRequest) error
	GetRequestByID(requestID string) (*BuyerRequest, error)
	UpdateRequestStatus(requestID string, status RequestStatus) error
	FindActiveCandidates(filter RequestCandidateFilter) ([]*BuyerRequest, error)
	GetRequestsByBuyerID(buyerID string, page, limit int64) ([]*BuyerRequest, int64, error)
}
