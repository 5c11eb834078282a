package transaction

type CreateTransactionInput struct {
	ListingID      string
	BuyerRequestID string
}
