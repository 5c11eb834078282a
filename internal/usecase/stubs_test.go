package usecase

import (
	"fmt"
	"sync"
	"time"

	"github.com/decluttit/trade-service/internal/domain"
)

// In-memory repositories backing the usecase tests. They honor the same
// contracts as the postgres implementations, including the conditional
// update semantics of AdvanceStatus.

type memTransactionRepo struct {
	mu  sync.Mutex
	txs map[string]*domain.Transaction
}

func newMemTransactionRepo() *memTransactionRepo {
	return &memTransactionRepo{txs: make(map[string]*domain.Transaction)}
}

func (r *memTransactionRepo) CreateTransaction(tx *domain.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *tx
	r.txs[tx.ID] = &clone
	return nil
}

func (r *memTransactionRepo) GetTransactionByID(txID string) (*domain.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	tx, ok := r.txs[txID]
	if !ok {
		return nil, fmt.Errorf("transaction %s: %w", txID, domain.ErrNotFound)
	}
	clone := *tx
	return &clone, nil
}

func (r *memTransactionRepo) AdvanceStatus(txID string, from, to domain.TransactionStatus, patch domain.TransactionPatch) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	tx, ok := r.txs[txID]
	if !ok {
		return false, fmt.Errorf("transaction %s: %w", txID, domain.ErrNotFound)
	}
	if tx.Status != from {
		return false, nil
	}
	tx.Status = to
	if patch.PaidAt != nil {
		tx.PaidAt = patch.PaidAt
	}
	if patch.ReleasedAt != nil {
		tx.ReleasedAt = patch.ReleasedAt
	}
	if patch.RefundedAt != nil {
		tx.RefundedAt = patch.RefundedAt
	}
	if patch.CompletedAt != nil {
		tx.CompletedAt = patch.CompletedAt
	}
	if patch.PaymentIntentID != "" {
		tx.PaymentIntentID = patch.PaymentIntentID
	}
	tx.UpdatedAt = time.Now()
	return true, nil
}

func (r *memTransactionRepo) SetPaymentIntentID(txID string, paymentIntentID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	tx, ok := r.txs[txID]
	if !ok {
		return fmt.Errorf("transaction %s: %w", txID, domain.ErrNotFound)
	}
	tx.PaymentIntentID = paymentIntentID
	return nil
}

func (r *memTransactionRepo) GetTransactionsByUserID(userID string, page, limit int64, filters domain.TransactionFilters) ([]*domain.Transaction, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Transaction
	for _, tx := range r.txs {
		if tx.BuyerID != userID && tx.SellerID != userID {
			continue
		}
		if filters.Status != "" && tx.Status != filters.Status {
			continue
		}
		clone := *tx
		out = append(out, &clone)
	}
	return out, int64(len(out)), nil
}

func (r *memTransactionRepo) CountByUserAndStatus(userID string, status domain.TransactionStatus) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, tx := range r.txs {
		if (tx.BuyerID == userID || tx.SellerID == userID) && tx.Status == status {
			count++
		}
	}
	return count, nil
}

type memListingRepo struct {
	mu       sync.Mutex
	listings map[string]*domain.Listing
}

func newMemListingRepo() *memListingRepo {
	return &memListingRepo{listings: make(map[string]*domain.Listing)}
}

func (r *memListingRepo) CreateListing(listing *domain.Listing) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *listing
	r.listings[listing.ID] = &clone
	return nil
}

func (r *memListingRepo) GetListingByID(listingID string) (*domain.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	listing, ok := r.listings[listingID]
	if !ok {
		return nil, fmt.Errorf("listing %s: %w", listingID, domain.ErrNotFound)
	}
	clone := *listing
	return &clone, nil
}

func (r *memListingRepo) UpdateListing(listing *domain.Listing) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *listing
	r.listings[listing.ID] = &clone
	return nil
}

func (r *memListingRepo) UpdateListingStatus(listingID string, status domain.ListingStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	listing, ok := r.listings[listingID]
	if !ok {
		return fmt.Errorf("listing %s: %w", listingID, domain.ErrNotFound)
	}
	listing.Status = status
	return nil
}

func (r *memListingRepo) IncrementViewCount(listingID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if listing, ok := r.listings[listingID]; ok {
		listing.ViewCount++
	}
	return nil
}

func (r *memListingRepo) FindActiveCandidates(filter domain.ListingCandidateFilter) ([]*domain.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Listing
	for _, listing := range r.listings {
		if listing.Status != domain.ListingActive {
			continue
		}
		if filter.ExcludeSellerID != "" && listing.SellerID == filter.ExcludeSellerID {
			continue
		}
		if filter.CategoryID != "" && listing.CategoryID != filter.CategoryID {
			continue
		}
		if filter.Condition != "" && listing.Condition != filter.Condition {
			continue
		}
		if filter.MinPrice != nil && listing.Price.LessThan(*filter.MinPrice) {
			continue
		}
		if filter.MaxPrice != nil && listing.Price.GreaterThan(*filter.MaxPrice) {
			continue
		}
		clone := *listing
		out = append(out, &clone)
	}
	return out, nil
}

func (r *memListingRepo) GetListingsBySellerID(sellerID string, page, limit int64) ([]*domain.Listing, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Listing
	for _, listing := range r.listings {
		if listing.SellerID == sellerID {
			clone := *listing
			out = append(out, &clone)
		}
	}
	return out, int64(len(out)), nil
}

type memRequestRepo struct {
	mu       sync.Mutex
	requests map[string]*domain.BuyerRequest
}

func newMemRequestRepo() *memRequestRepo {
	return &memRequestRepo{requests: make(map[string]*domain.BuyerRequest)}
}

func (r *memRequestRepo) CreateRequest(request *domain.BuyerRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *request
	r.requests[request.ID] = &clone
	return nil
}

func (r *memRequestRepo) GetRequestByID(requestID string) (*domain.BuyerRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	request, ok := r.requests[requestID]
	if !ok {
		return nil, fmt.Errorf("request %s: %w", requestID, domain.ErrNotFound)
	}
	clone := *request
	return &clone, nil
}

func (r *memRequestRepo) UpdateRequestStatus(requestID string, status domain.RequestStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	request, ok := r.requests[requestID]
	if !ok {
		return fmt.Errorf("request %s: %w", requestID, domain.ErrNotFound)
	}
	request.Status = status
	return nil
}

func (r *memRequestRepo) FindActiveCandidates(filter domain.RequestCandidateFilter) ([]*domain.BuyerRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.BuyerRequest
	for _, request := range r.requests {
		if request.Status != domain.RequestActive {
			continue
		}
		if filter.ExcludeBuyerID != "" && request.BuyerID == filter.ExcludeBuyerID {
			continue
		}
		// preference-less requests stay in, same as the SQL's OR = '' clause
		if filter.CategoryID != "" && request.CategoryID != filter.CategoryID && request.CategoryID != "" {
			continue
		}
		if filter.Condition != "" && request.PreferredCondition != filter.Condition && request.PreferredCondition != "" {
			continue
		}
		clone := *request
		out = append(out, &clone)
	}
	return out, nil
}

func (r *memRequestRepo) GetRequestsByBuyerID(buyerID string, page, limit int64) ([]*domain.BuyerRequest, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.BuyerRequest
	for _, request := range r.requests {
		if request.BuyerID == buyerID {
			clone := *request
			out = append(out, &clone)
		}
	}
	return out, int64(len(out)), nil
}

type memDisputeRepo struct {
	mu       sync.Mutex
	disputes map[string]*domain.Dispute
}

func newMemDisputeRepo() *memDisputeRepo {
	return &memDisputeRepo{disputes: make(map[string]*domain.Dispute)}
}

func (r *memDisputeRepo) CreateDispute(dispute *domain.Dispute) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	// one dispute per transaction, same as the unique index
	for _, existing := range r.disputes {
		if existing.TransactionID == dispute.TransactionID {
			return fmt.Errorf("dispute for transaction %s: %w", dispute.TransactionID, domain.ErrConflict)
		}
	}
	clone := *dispute
	clone.Evidence = append([]string{}, dispute.Evidence...)
	r.disputes[dispute.ID] = &clone
	return nil
}

func (r *memDisputeRepo) GetDisputeByID(disputeID string) (*domain.Dispute, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	dispute, ok := r.disputes[disputeID]
	if !ok {
		return nil, fmt.Errorf("dispute %s: %w", disputeID, domain.ErrNotFound)
	}
	clone := *dispute
	clone.Evidence = append([]string{}, dispute.Evidence...)
	return &clone, nil
}

func (r *memDisputeRepo) GetDisputeByTransactionID(txID string) (*domain.Dispute, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, dispute := range r.disputes {
		if dispute.TransactionID == txID {
			clone := *dispute
			clone.Evidence = append([]string{}, dispute.Evidence...)
			return &clone, nil
		}
	}
	return nil, fmt.Errorf("dispute for transaction %s: %w", txID, domain.ErrNotFound)
}

func (r *memDisputeRepo) AppendEvidence(disputeID string, evidence string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	dispute, ok := r.disputes[disputeID]
	if !ok {
		return fmt.Errorf("dispute %s: %w", disputeID, domain.ErrNotFound)
	}
	dispute.Evidence = append(dispute.Evidence, evidence)
	return nil
}

func (r *memDisputeRepo) ResolveDispute(disputeID string, resolution string, resolvedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	dispute, ok := r.disputes[disputeID]
	if !ok {
		return fmt.Errorf("dispute %s: %w", disputeID, domain.ErrNotFound)
	}
	dispute.Status = domain.DisputeResolved
	dispute.Resolution = resolution
	dispute.ResolvedAt = &resolvedAt
	return nil
}

func (r *memDisputeRepo) GetDisputesByUserID(userID string, page, limit int64) ([]*domain.Dispute, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Dispute
	for _, dispute := range r.disputes {
		if dispute.ComplainantID == userID || dispute.RespondentID == userID {
			clone := *dispute
			out = append(out, &clone)
		}
	}
	return out, int64(len(out)), nil
}

func (r *memDisputeRepo) CountResolvedByUserID(userID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, dispute := range r.disputes {
		if dispute.Status != domain.DisputeResolved {
			continue
		}
		if dispute.ComplainantID == userID || dispute.RespondentID == userID {
			count++
		}
	}
	return count, nil
}

type memUserRepo struct {
	mu    sync.Mutex
	users map[string]*domain.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*domain.User)}
}

func (r *memUserRepo) CreateUser(user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *memUserRepo) GetUserByID(userID string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[userID]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", userID, domain.ErrNotFound)
	}
	clone := *user
	return &clone, nil
}

func (r *memUserRepo) UpdateVerificationLevel(userID string, level domain.VerificationLevel) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[userID]
	if !ok {
		return fmt.Errorf("user %s: %w", userID, domain.ErrNotFound)
	}
	user.VerificationLevel = level
	return nil
}

func (r *memUserRepo) UpdateTrustScore(userID string, score int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[userID]
	if !ok {
		return fmt.Errorf("user %s: %w", userID, domain.ErrNotFound)
	}
	user.TrustScore = score
	return nil
}

func (r *memUserRepo) DeactivateUser(userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[userID]
	if !ok {
		return fmt.Errorf("user %s: %w", userID, domain.ErrNotFound)
	}
	user.IsActive = false
	return nil
}

type memReviewRepo struct {
	mu      sync.Mutex
	reviews map[string]*domain.Review
}

func newMemReviewRepo() *memReviewRepo {
	return &memReviewRepo{reviews: make(map[string]*domain.Review)}
}

func (r *memReviewRepo) CreateReview(review *domain.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *review
	r.reviews[review.ID] = &clone
	return nil
}

func (r *memReviewRepo) GetReviewByReviewer(txID, reviewerID string) (*domain.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, review := range r.reviews {
		if review.TransactionID == txID && review.ReviewerID == reviewerID {
			clone := *review
			return &clone, nil
		}
	}
	return nil, fmt.Errorf("review for transaction %s: %w", txID, domain.ErrNotFound)
}

func (r *memReviewRepo) GetRatingsForUser(userID string) ([]int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var ratings []int
	for _, review := range r.reviews {
		if review.RevieweeID == userID {
			ratings = append(ratings, review.Rating)
		}
	}
	return ratings, nil
}

func (r *memReviewRepo) GetReviewsForUser(userID string, page, limit int64) ([]*domain.Review, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Review
	for _, review := range r.reviews {
		if review.RevieweeID == userID {
			clone := *review
			out = append(out, &clone)
		}
	}
	return out, int64(len(out)), nil
}

// nopPublisher swallows events, recording only how many were published.
type nopPublisher struct {
	mu          sync.Mutex
	tradeEvents []domain.TradeEvent
}

func (p *nopPublisher) PublishTrade(event domain.TradeEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.tradeEvents = append(p.tradeEvents, event)
	return nil
}

func (p *nopPublisher) PublishDispute(event domain.DisputeEvent) error    { return nil }
func (p *nopPublisher) PublishTrustScore(event domain.TrustScoreEvent) error { return nil }
