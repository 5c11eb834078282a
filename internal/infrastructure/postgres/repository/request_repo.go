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

type DefaultBuyerRequestRepository struct {
	DB *gorm.DB
}

func NewDefaultBuyerRequestRepository(db *gorm.DB) *DefaultBuyerRequestRepository {
	return &DefaultBuyerRequestRepository{DB: db}
}

func (r *DefaultBuyerRequestRepository) CreateRequest(request *domain.BuyerRequest) error {
	return r.DB.Create(mappers.ToGORMRequest(request)).Error
}

func (r *DefaultBuyerRequestRepository) GetRequestByID(requestID string) (*domain.BuyerRequest, error) {
	var model models.BuyerRequestModel
	if err := r.DB.First(&model, "id = ?", requestID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("request %s: %w", requestID, domain.ErrNotFound)
		}
		return nil, err
	}
	return mappers.ToDomainRequest(&model), nil
}

func (r *DefaultBuyerRequestRepository) UpdateRequestStatus(requestID string, status domain.RequestStatus) error {
	return r.DB.Model(&models.BuyerRequestModel{}).
		Where("id = ?", requestID).
		Updates(map[string]interface{}{"status": status, "updated_at": time.Now()}).Error
}

func (r *DefaultBuyerRequestRepository) FindActiveCandidates(filter domain.RequestCandidateFilter) ([]*domain.BuyerRequest, error) {
	query := r.DB.Model(&models.BuyerRequestModel{}).
		Where("status = ?", domain.RequestActive).
		Where("buyer_id <> ?", filter.ExcludeBuyerID)

	if filter.CategoryID != "" {
		query = query.Where("category_id = ? OR category_id = ''", filter.CategoryID)
	}
	if filter.Condition != "" {
		query = query.Where("preferred_condition = ? OR preferred_condition = ''", filter.Condition)
	}

	var requestModels []models.BuyerRequestModel
	if err := query.Find(&requestModels).Error; err != nil {
		return nil, err
	}

	requests := make([]*domain.BuyerRequest, 0, len(requestModels))
	for i := range requestModels {
		requests = append(requests, mappers.ToDomainRequest(&requestModels[i]))
	}
	return requests, nil
}

func (r *DefaultBuyerRequestRepository) GetRequestsByBuyerID(buyerID string, page, limit int64) ([]*domain.BuyerRequest, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	query := r.DB.Model(&models.BuyerRequestModel{}).Where("buyer_id = ?", buyerID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var requestModels []models.BuyerRequestModel
	err := query.
		Order("created_at DESC").
		Offset(int((page - 1) * limit)).
		Limit(int(limit)).
		Find(&requestModels).Error
	if err != nil {
		return nil, 0, err
	}

	requests := make([]*domain.BuyerRequest, 0, len(requestModels))
	for i := range requestModels {
		requests = append(requests, mappers.ToDomainRequest(&requestModels[i]))
	}
	return requests, total, nil
}
