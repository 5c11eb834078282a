package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/decluttit/trade-service/internal/domain"
	"github.com/decluttit/trade-service/internal/infrastructure/postgres/mappers"
	"github.com/decluttit/trade-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultListingRepository struct {
	DB *gorm.DB
}

func NewDefaultListingRepository(db *gorm.DB) *DefaultListingRepository {
	return &DefaultListingRepository{DB: db}
}

func (r *DefaultListingRepository) CreateListing(listing *domain.Listing) error {
	return r.DB.Create(mappers.ToGORMListing(listing)).Error
}

func (r *DefaultListingRepository) GetListingByID(listingID string) (*domain.Listing, error) {
	var model models.ListingModel
	if err := r.DB.First(&model, "id = ?", listingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("listing %s: %w", listingID, domain.ErrNotFound)
		}
		return nil, err
	}
	return mappers.ToDomainListing(&model), nil
}

func (r *DefaultListingRepository) UpdateListing(listing *domain.Listing) error {
	return r.DB.Save(mappers.ToGORMListing(listing)).Error
}

func (r *DefaultListingRepository) UpdateListingStatus(listingID string, status domain.ListingStatus) error {
	return r.DB.Model(&models.ListingModel{}).
		Where("id = ?", listingID).
		Updates(map[string]interface{}{"status": status, "updated_at": time.Now()}).Error
}

func (r *DefaultListingRepository) IncrementViewCount(listingID string) error {
	return r.DB.Model(&models.ListingModel{}).
		Where("id = ?", listingID).
		Update("view_count", gorm.Expr("view_count + 1")).Error
}

// FindActiveCandidates applies the same constraints server-side that the
// matching engine scores on, so the candidate set stays small.
func (r *DefaultListingRepository) FindActiveCandidates(filter domain.ListingCandidateFilter) ([]*domain.Listing, error) {
	query := r.DB.Model(&models.ListingModel{}).
		Where("status = ?", domain.ListingActive).
		Where("seller_id <> ?", filter.ExcludeSellerID)

	if filter.CategoryID != "" {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if filter.Condition != "" {
		query = query.Where("condition = ?", filter.Condition)
	}
	if filter.MinPrice != nil {
		query = query.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", *filter.MaxPrice)
	}

	var listingModels []models.ListingModel
	if err := query.Find(&listingModels).Error; err != nil {
		return nil, err
	}

	listings := make([]*domain.Listing, 0, len(listingModels))
	for i := range listingModels {
		listings = append(listings, mappers.ToDomainListing(&listingModels[i]))
	}
	return listings, nil
}

func (r *DefaultListingRepository) GetListingsBySellerID(sellerID string, page, limit int64) ([]*domain.Listing, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	query := r.DB.Model(&models.ListingModel{}).Where("seller_id = ?", sellerID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var listingModels []models.ListingModel
	err := query.
		Order("created_at DESC").
		Offset(int((page - 1) * limit)).
		Limit(int(limit)).
		Find(&listingModels).Error
	if err != nil {
		return nil, 0, err
	}

	listings := make([]*domain.Listing, 0, len(listingModels))
	for i := range listingModels {
		listings = append(listings, mappers.ToDomainListing(&listingModels[i]))
	}
	return listings, total, nil
}
