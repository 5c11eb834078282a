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

type DefaultDisputeRepository struct {
	DB *gorm.DB
}

func NewDefaultDisputeRepository(db *gorm.DB) *DefaultDisputeRepository {
	return &DefaultDisputeRepository{DB: db}
}

func (r *DefaultDisputeRepository) CreateDispute(dispute *domain.Dispute) error {
	if err := r.DB.Create(mappers.ToGORMDispute(dispute)).Error; err != nil {
		// unique index on transaction_id, one dispute per transaction
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("dispute for transaction %s: %w", dispute.TransactionID, domain.ErrConflict)
		}
		return err
	}
	return nil
}

func (r *DefaultDisputeRepository) GetDisputeByID(disputeID string) (*domain.Dispute, error) {
	var model models.DisputeModel
	if err := r.DB.First(&model, "id = ?", disputeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("dispute %s: %w", disputeID, domain.ErrNotFound)
		}
		return nil, err
	}
	return mappers.ToDomainDispute(&model), nil
}

func (r *DefaultDisputeRepository) GetDisputeByTransactionID(txID string) (*domain.Dispute, error) {
	var model models.DisputeModel
	if err := r.DB.First(&model, "transaction_id = ?", txID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("dispute for transaction %s: %w", txID, domain.ErrNotFound)
		}
		return nil, err
	}
	return mappers.ToDomainDispute(&model), nil
}

// AppendEvidence pushes onto the evidence array in place, preserving
// insertion order.
func (r *DefaultDisputeRepository) AppendEvidence(disputeID string, evidence string) error {
	return r.DB.Model(&models.DisputeModel{}).
		Where("id = ?", disputeID).
		Updates(map[string]interface{}{
			"evidence":   gorm.Expr("array_append(evidence, ?)", evidence),
			"updated_at": time.Now(),
		}).Error
}

func (r *DefaultDisputeRepository) ResolveDispute(disputeID string, resolution string, resolvedAt time.Time) error {
	return r.DB.Model(&models.DisputeModel{}).
		Where("id = ? AND status = ?", disputeID, domain.DisputeOpen).
		Updates(map[string]interface{}{
			"status":      domain.DisputeResolved,
			"resolution":  resolution,
			"resolved_at": resolvedAt,
			"updated_at":  resolvedAt,
		}).Error
}

func (r *DefaultDisputeRepository) GetDisputesByUserID(userID string, page, limit int64) ([]*domain.Dispute, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	query := r.DB.Model(&models.DisputeModel{}).
		Where("complainant_id = ? OR respondent_id = ?", userID, userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var disputeModels []models.DisputeModel
	err := query.
		Order("created_at DESC").
		Offset(int((page - 1) * limit)).
		Limit(int(limit)).
		Find(&disputeModels).Error
	if err != nil {
		return nil, 0, err
	}

	disputes := make([]*domain.Dispute, 0, len(disputeModels))
	for i := range disputeModels {
		disputes = append(disputes, mappers.ToDomainDispute(&disputeModels[i]))
	}
	return disputes, total, nil
}

func (r *DefaultDisputeRepository) CountResolvedByUserID(userID string) (int64, error) {
	var count int64
	err := r.DB.Model(&models.DisputeModel{}).
		Where("(complainant_id = ? OR respondent_id = ?) AND status = ?",
			userID, userID, domain.DisputeResolved).
		Count(&count).Error
	return count, err
}
