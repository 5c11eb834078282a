package usecase

import (
	"fmt"
	"time"

	"github.com/decluttit/trade-service/internal/domain"
	listingdto "github.com/decluttit/trade-service/internal/usecase/dto/listing"
	"github.com/google/uuid"
)

type ListingUsecase interface {
	CreateListing(actor domain.ActorContext, input *listingdto.CreateListingInput) (*domain.Listing, error)
	UpdateListing(actor domain.ActorContext, input *listingdto.UpdateListingInput) (*domain.Listing, error)
	GetListingByID(listingID string) (*domain.Listing, error)
	GetListingsBySellerID(sellerID string, page, limit int64) ([]*domain.Listing, int64, error)
}

type DefaultListingUsecase struct {
	listingRepo domain.ListingRepository
}

func NewDefaultListingUsecase(listingRepo domain.ListingRepository) *DefaultListingUsecase {
	return &DefaultListingUsecase{listingRepo: listingRepo}
}

func (uc *DefaultListingUsecase) CreateListing(actor domain.ActorContext, input *listingdto.CreateListingInput) (*domain.Listing, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("listing title is required: %w", domain.ErrValidation)
	}
	if !input.Price.IsPositive() {
		return nil, fmt.Errorf("listing price must be positive: %w", domain.ErrValidation)
	}
	condition := domain.Condition(input.Condition)
	if !condition.Valid() {
		return nil, fmt.Errorf("unknown condition %q: %w", input.Condition, domain.ErrValidation)
	}

	now := time.Now()
	listing := &domain.Listing{
		ID:          uuid.New().String(),
		SellerID:    actor.UserID,
		Title:       input.Title,
		Description: input.Description,
		CategoryID:  input.CategoryID,
		Condition:   condition,
		Price:       input.Price,
		LocationID:  input.LocationID,
		Status:      domain.ListingActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.listingRepo.CreateListing(listing); err != nil {
		return nil, err
	}
	return listing, nil
}

// UpdateListing mutates seller-editable fields. Status changes through
// this path are limited to ACTIVE/HIDDEN; SOLD is set only by the
// transaction lifecycle on fund release.
func (uc *DefaultListingUsecase) UpdateListing(actor domain.ActorContext, input *listingdto.UpdateListingInput) (*domain.Listing, error) {
	listing, err := uc.listingRepo.GetListingByID(input.ListingID)
	if err != nil {
		return nil, err
	}
	if listing.SellerID != actor.UserID {
		return nil, fmt.Errorf("listing %s: %w", listing.ID, domain.ErrUnauthorized)
	}

	if input.Title != nil {
		listing.Title = *input.Title
	}
	if input.Description != nil {
		listing.Description = *input.Description
	}
	if input.Price != nil {
		if !input.Price.IsPositive() {
			return nil, fmt.Errorf("listing price must be positive: %w", domain.ErrValidation)
		}
		listing.Price = *input.Price
	}
	if input.Condition != nil {
		condition := domain.Condition(*input.Condition)
		if !condition.Valid() {
			return nil, fmt.Errorf("unknown condition %q: %w", *input.Condition, domain.ErrValidation)
		}
		listing.Condition = condition
	}
	if input.Status != nil {
		status := domain.ListingStatus(*input.Status)
		if status != domain.ListingActive && status != domain.ListingHidden {
			return nil, fmt.Errorf("sellers may only set ACTIVE or HIDDEN: %w", domain.ErrValidation)
		}
		listing.Status = status
	}

	listing.UpdatedAt = time.Now()
	if err := uc.listingRepo.UpdateListing(listing); err != nil {
		return nil, err
	}
	return listing, nil
}

func (uc *DefaultListingUsecase) GetListingByID(listingID string) (*domain.Listing, error) {
	listing, err := uc.listingRepo.GetListingByID(listingID)
	if err != nil {
		return nil, err
	}
	if err := uc.listingRepo.IncrementViewCount(listingID); err == nil {
		listing.ViewCount++
	}
	return listing, nil
}

func (uc *DefaultListingUsecase) GetListingsBySellerID(sellerID string, page, limit int64) ([]*domain.Listing, int64, error) {
	return uc.listingRepo.GetListingsBySellerID(sellerID, page, limit)
}
