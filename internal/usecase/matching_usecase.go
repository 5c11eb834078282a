package usecase

import (
	"fmt"
	"sort"

	"github.com/decluttit/trade-service/internal/domain"
)

type MatchingUsecase interface {
	ScoreMatch(listing *domain.Listing, request *domain.BuyerRequest) domain.MatchResult
	FindMatchesForRequest(requestID string) ([]*MatchOutput, error)
	FindMatchesForListing(listingID string) ([]*MatchOutput, error)
}

// MatchOutput pairs a scored match with the candidate entity.
type MatchOutput struct {
	domain.MatchResult
	Listing *domain.Listing
	Request *domain.BuyerRequest
}

type DefaultMatchingUsecase struct {
	listingRepo domain.ListingRepository
	requestRepo domain.BuyerRequestRepository
}

func NewDefaultMatchingUsecase(
	listingRepo domain.ListingRepository,
	requestRepo domain.BuyerRequestRepository,
) *DefaultMatchingUsecase {
	return &DefaultMatchingUsecase{
		listingRepo: listingRepo,
		requestRepo: requestRepo,
	}
}

// ScoreMatch computes the additive compatibility score between a listing
// and a buyer request. Deterministic, order-independent, bounded 0..100.
func (uc *DefaultMatchingUsecase) ScoreMatch(listing *domain.Listing, request *domain.BuyerRequest) domain.MatchResult {
	score := 0
	criteria := []string{}

	if request.CategoryID != "" && listing.CategoryID == request.CategoryID {
		score += 30
		criteria = append(criteria, domain.CriterionCategory)
	}

	if request.PreferredCondition != "" && listing.Condition == request.PreferredCondition {
		score += 20
		criteria = append(criteria, domain.CriterionCondition)
	}

	switch {
	case request.MinPrice != nil && request.MaxPrice != nil:
		if listing.Price.GreaterThanOrEqual(*request.MinPrice) && listing.Price.LessThanOrEqual(*request.MaxPrice) {
			score += 25
			criteria = append(criteria, domain.CriterionPrice)
		}
	case request.MinPrice != nil:
		if listing.Price.GreaterThanOrEqual(*request.MinPrice) {
			score += 25
			criteria = append(criteria, domain.CriterionPrice)
		}
	case request.MaxPrice != nil:
		if listing.Price.LessThanOrEqual(*request.MaxPrice) {
			score += 25
			criteria = append(criteria, domain.CriterionPrice)
		}
	}

	// Exact location id match only, radius is not evaluated here.
	if request.LocationID != "" && listing.LocationID == request.LocationID {
		score += 25
		criteria = append(criteria, domain.CriterionLocation)
	}

	return domain.MatchResult{
		ListingID:       listing.ID,
		RequestID:       request.ID,
		Score:           score,
		MatchedCriteria: criteria,
	}
}

// FindMatchesForRequest returns ACTIVE listings scoring at least
// MinRequestMatchScore against the request, best first. Ties are broken
// by listing recency so repeated calls rank identically.
func (uc *DefaultMatchingUsecase) FindMatchesForRequest(requestID string) ([]*MatchOutput, error) {
	request, err := uc.requestRepo.GetRequestByID(requestID)
	if err != nil {
		return nil, fmt.Errorf("find matches for request %s: %w", requestID, err)
	}

	filter := domain.ListingCandidateFilter{
		ExcludeSellerID: request.BuyerID,
		CategoryID:      request.CategoryID,
		Condition:       request.PreferredCondition,
		MinPrice:        request.MinPrice,
		MaxPrice:        request.MaxPrice,
	}
	listings, err := uc.listingRepo.FindActiveCandidates(filter)
	if err != nil {
		return nil, err
	}

	matches := make([]*MatchOutput, 0, len(listings))
	for _, listing := range listings {
		result := uc.ScoreMatch(listing, request)
		if result.Score < domain.MinRequestMatchScore {
			continue
		}
		matches = append(matches, &MatchOutput{
			MatchResult: result,
			Listing:     listing,
			Request:     request,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].Listing.CreatedAt.After(matches[j].Listing.CreatedAt)
	})

	return matches, nil
}

// FindMatchesForListing returns all ACTIVE requests compatible with the
// listing. Unlike the request path there is no score floor here.
func (uc *DefaultMatchingUsecase) FindMatchesForListing(listingID string) ([]*MatchOutput, error) {
	listing, err := uc.listingRepo.GetListingByID(listingID)
	if err != nil {
		return nil, fmt.Errorf("find matches for listing %s: %w", listingID, err)
	}

	filter := domain.RequestCandidateFilter{
		ExcludeBuyerID: listing.SellerID,
		CategoryID:     listing.CategoryID,
		Condition:      listing.Condition,
	}
	requests, err := uc.requestRepo.FindActiveCandidates(filter)
	if err != nil {
		return nil, err
	}

	matches := make([]*MatchOutput, 0, len(requests))
	for _, request := range requests {
		result := uc.ScoreMatch(listing, request)
		matches = append(matches, &MatchOutput{
			MatchResult: result,
			Listing:     listing,
			Request:     request,
		})
	}

	return matches, nil
}
