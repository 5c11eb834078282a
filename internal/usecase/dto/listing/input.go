package listing

import "github.com/shopspring/decimal"

type CreateListingInput struct {
	Title       string
	Description string
	CategoryID  string
	Condition   string
	Price       decimal.Decimal
	LocationID  string
}

type UpdateListingInput struct {
	ListingID   string
	Title       *string
	Description *string
	Price       *decimal.Decimal
	Condition   *string
	Status      *string
}
