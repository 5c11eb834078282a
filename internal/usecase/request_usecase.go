package usecase

import (
	"fmt"
	"time"

	"github.com/decluttit/trade-service/internal/domain"
	requestdto "github.com/decluttit/trade-service/internal/usecase/dto/request"
	"github.com/google/uuid"
)

type RequestUsecase interface {
	CreateRequest(actor domain.ActorContext, input *requestdto.CreateRequestInput) (*domain.BuyerRequest, error)
	CancelRequest(actor domain.ActorContext, requestID string) error
	GetRequestByID(requestID string) (*domain.BuyerRequest, error)
	GetRequestsByBuyerID(buyerID string, page, limit int64) ([]*domain.BuyerRequest, int64, error)
}

type DefaultRequestUsecase struct {
	requestRepo domain.BuyerRequestRepository
}

func NewDefaultRequestUsecase(requestRepo domain.BuyerRequestRepository) *DefaultRequestUsecase {
	return &DefaultRequestUsecase{requestRepo: requestRepo}
}

func (uc *DefaultRequestUsecase) CreateRequest(actor domain.ActorContext, input *requestdto.CreateRequestInput) (*domain.BuyerRequest, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("request title is required: %w", domain.ErrValidation)
	}
	if input.RadiusKm < domain.MinRadiusKm || input.RadiusKm > domain.MaxRadiusKm {
		return nil, fmt.Errorf("radius must be within [%d, %d] km: %w",
			domain.MinRadiusKm, domain.MaxRadiusKm, domain.ErrValidation)
	}
	if input.MinPrice != nil && input.MinPrice.IsNegative() {
		return nil, fmt.Errorf("min price must not be negative: %w", domain.ErrValidation)
	}
	if input.MinPrice != nil && input.MaxPrice != nil && input.MinPrice.GreaterThan(*input.MaxPrice) {
		return nil, fmt.Errorf("min price exceeds max price: %w", domain.ErrValidation)
	}
	condition := domain.Condition(input.PreferredCondition)
	if input.PreferredCondition != "" && !condition.Valid() {
		return nil, fmt.Errorf("unknown condition %q: %w", input.PreferredCondition, domain.ErrValidation)
	}

	now := time.Now()
	request := &domain.BuyerRequest{
		ID:                 uuid.New().String(),
		BuyerID:            actor.UserID,
		Title:              input.Title,
		Description:        input.Description,
		CategoryID:         input.CategoryID,
		MinPrice:           input.MinPrice,
		MaxPrice:           input.MaxPrice,
		PreferredCondition: condition,
		LocationID:         input.LocationID,
		RadiusKm:           input.RadiusKm,
		Status:             domain.RequestActive,
		ExpiresAt:          input.ExpiresAt,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := uc.requestRepo.CreateRequest(request); err != nil {
		return nil, err
	}
	return request, nil
}

func (uc *DefaultRequestUsecase) CancelRequest(actor domain.ActorContext, requestID string) error {
	request, err := uc.requestRepo.GetRequestByID(requestID)
	if err != nil {
		return err
	}
	if request.BuyerID != actor.UserID {
		return fmt.Errorf("request %s: %w", requestID, domain.ErrUnauthorized)
	}
	if request.Status != domain.RequestActive {
		return fmt.Errorf("request %s is %s, not ACTIVE: %w", requestID, request.Status, domain.ErrConflict)
	}
	return uc.requestRepo.UpdateRequestStatus(requestID, domain.RequestCancelled)
}

func (uc *DefaultRequestUsecase) GetRequestByID(requestID string) (*domain.BuyerRequest, error) {
	return uc.requestRepo.GetRequestByID(requestID)
}

func (uc *DefaultRequestUsecase) GetRequestsByBuyerID(buyerID string, page, limit int64) ([]*domain.BuyerRequest, int64, error) {
	return uc.requestRepo.GetRequestsByBuyerID(buyerID, page, limit)
}
