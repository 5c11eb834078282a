package dispute

type OpenDisputeInput struct {
	TransactionID string
	Reason        string
	Description   string
	Evidence      []string
}

type ResolveDisputeInput struct {
	DisputeID   string
	Resolution  string
	RefundBuyer bool
}
