package request

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateRequestInput struct {
	Title              string
	Description        string
	CategoryID         string
	MinPrice           *decimal.Decimal
	MaxPrice           *decimal.Decimal
	PreferredCondition string
	LocationID         string
	RadiusKm           int
	ExpiresAt          *time.Time
}
