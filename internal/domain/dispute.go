package domain

import "time"

type DisputeStatus string

const (
	DisputeOpen     DisputeStatus = "OPEN"
	DisputeResolved DisputeStatus = "RESOLVED"
)

type Dispute struct {
	ID            string
	TransactionID string
	ComplainantID string
	RespondentID  string
	Reason        string
	Description   string
	Evidence      []string
	Status        DisputeStatus
	Resolution    string
	ResolvedAt    *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type DisputeRepository interface {
	CreateDispute(dispute *Dispute) error
	GetDisputeByID(disputeID string) (*Dispute, error)
	GetDisputeByTransactionID(txID string) (*Dispute, error)
	AppendEvidence(disputeID string, evidence string) error
	ResolveDispute(disputeID string, resolution string, resolvedAt time.Time) error
	GetDisputesByUserID(userID string, page, limit int64) ([]*Dispute, int64, error)
	CountResolvedByUserID(userID string) (int64, error)
}
