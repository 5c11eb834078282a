package domain

// Events published to the message broker on core state changes.

type TradeEvent struct {
	TransactionID string `json:"transaction_id"`
	ListingID     string `json:"listing_id"`
	BuyerID       string `json:"buyer_id"`
	SellerID      string `json:"seller_id"`
	Status        string `json:"status"`
	Amount        string `json:"amount"`
	PlatformFee   string `json:"platform_fee"`
}

type DisputeEvent struct {
	DisputeID     string `json:"dispute_id"`
	TransactionID string `json:"transaction_id"`
	ComplainantID string `json:"complainant_id"`
	RespondentID  string `json:"respondent_id"`
	Status        string `json:"status"`
	Reason        string `json:"reason"`
}

type TrustScoreEvent struct {
	UserID string `json:"user_id"`
	Score  int    `json:"score"`
}

type EventPublisher interface {
	PublishTrade(event TradeEvent) error
	PublishDispute(event DisputeEvent) error
	PublishTrustScore(event TrustScoreEvent) error
}
