package mappers

import (
	"github.com/decluttit/trade-service/internal/domain"
	"github.com/decluttit/trade-service/internal/infrastructure/postgres/models"
)

func ToDomainListing(model *models.ListingModel) *domain.Listing {
	return &domain.Listing{
		ID:          model.ID,
		SellerID:    model.SellerID,
		Title:       model.Title,
		Description: model.Description,
		CategoryID:  model.CategoryID,
		Condition:   model.Condition,
		Price:       model.Price,
		LocationID:  model.LocationID,
		Status:      model.Status,
		ViewCount:   model.ViewCount,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}

func ToGORMListing(listing *domain.Listing) *models.ListingModel {
	return &models.ListingModel{
		ID:          listing.ID,
		SellerID:    listing.SellerID,
		Title:       listing.Title,
		Description: listing.Description,
		CategoryID:  listing.CategoryID,
		Condition:   listing.Condition,
		Price:       listing.Price,
		LocationID:  listing.LocationID,
		Status:      listing.Status,
		ViewCount:   listing.ViewCount,
		CreatedAt:   listing.CreatedAt,
		UpdatedAt:   listing.UpdatedAt,
	}
}

func ToDomainRequest(model *models.BuyerRequestModel) *domain.BuyerRequest {
	return &domain.BuyerRequest{
		ID:                 model.ID,
		BuyerID:            model.BuyerID,
		Title:              model.Title,
		Description:        model.Description,
		CategoryID:         model.CategoryID,
		MinPrice:           model.MinPrice,
		MaxPrice:           model.MaxPrice,
		PreferredCondition: model.PreferredCondition,
		LocationID:         model.LocationID,
		RadiusKm:           model.RadiusKm,
		Status:             model.Status,
		ExpiresAt:          model.ExpiresAt,
		CreatedAt:          model.CreatedAt,
		UpdatedAt:          model.UpdatedAt,
	}
}

func ToGORMRequest(request *domain.BuyerRequest) *models.BuyerRequestModel {
	return &models.BuyerRequestModel{
		ID:                 request.ID,
		BuyerID:            request.BuyerID,
		Title:              request.Title,
		Description:        request.Description,
		CategoryID:         request.CategoryID,
		MinPrice:           request.MinPrice,
		MaxPrice:           request.MaxPrice,
		PreferredCondition: request.PreferredCondition,
		LocationID:         request.LocationID,
		RadiusKm:           request.RadiusKm,
		Status:             request.Status,
		ExpiresAt:          request.ExpiresAt,
		CreatedAt:          request.CreatedAt,
		UpdatedAt:          request.UpdatedAt,
	}
}
