package domain

// Criteria tags attached to a match score.
const (
	CriterionCategory  = "category"
	CriterionCondition = "condition"
	CriterionPrice     = "price"
	CriterionLocation  = "location"
)

// MinRequestMatchScore is the floor applied on the request -> listing path.
const MinRequestMatchScore = 50

type MatchResult struct {
	ListingID       string
	RequestID       string
	Score           int
	MatchedCriteria []string
}
