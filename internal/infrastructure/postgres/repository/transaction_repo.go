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

type DefaultTransactionRepository struct {
	DB *gorm.DB
}

func NewDefaultTransactionRepository(db *gorm.DB) *DefaultTransactionRepository {
	return &DefaultTransactionRepository{DB: db}
}

func (r *DefaultTransactionRepository) CreateTransaction(tx *domain.Transaction) error {
	model := mappers.ToGORMTransaction(tx)
	return r.DB.Create(model).Error
}

func (r *DefaultTransactionRepository) GetTransactionByID(txID string) (*domain.Transaction, error) {
	var model models.TransactionModel
	if err := r.DB.First(&model, "id = ?", txID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("transaction %s: %w", txID, domain.ErrNotFound)
		}
		return nil, err
	}
	return mappers.ToDomainTransaction(&model), nil
}

// AdvanceStatus runs the conditional UPDATE that serializes concurrent
// transition attempts. Zero rows affected means another writer got there
// first (or the precondition never held).
func (r *DefaultTransactionRepository) AdvanceStatus(txID string, from, to domain.TransactionStatus, patch domain.TransactionPatch) (bool, error) {
	updates := map[string]interface{}{
		"status":     to,
		"updated_at": time.Now(),
	}
	if patch.PaidAt != nil {
		updates["paid_at"] = *patch.PaidAt
	}
	if patch.ReleasedAt != nil {
		updates["released_at"] = *patch.ReleasedAt
	}
	if patch.RefundedAt != nil {
		updates["refunded_at"] = *patch.RefundedAt
	}
	if patch.CompletedAt != nil {
		updates["completed_at"] = *patch.CompletedAt
	}
	if patch.PaymentIntentID != "" {
		updates["payment_intent_id"] = patch.PaymentIntentID
	}

	result := r.DB.Model(&models.TransactionModel{}).
		Where("id = ? AND status = ?", txID, from).
		Updates(updates)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

func (r *DefaultTransactionRepository) SetPaymentIntentID(txID string, paymentIntentID string) error {
	return r.DB.Model(&models.TransactionModel{}).
		Where("id = ?", txID).
		Update("payment_intent_id", paymentIntentID).Error
}

func (r *DefaultTransactionRepository) GetTransactionsByUserID(userID string, page, limit int64, filters domain.TransactionFilters) ([]*domain.Transaction, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	query := r.DB.Model(&models.TransactionModel{}).
		Where("buyer_id = ? OR seller_id = ?", userID, userID)
	if filters.Status != "" {
		query = query.Where("status = ?", filters.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var txModels []models.TransactionModel
	err := query.
		Order("created_at DESC").
		Offset(int((page - 1) * limit)).
		Limit(int(limit)).
		Find(&txModels).Error
	if err != nil {
		return nil, 0, err
	}

	transactions := make([]*domain.Transaction, 0, len(txModels))
	for i := range txModels {
		transactions = append(transactions, mappers.ToDomainTransaction(&txModels[i]))
	}
	return transactions, total, nil
}

func (r *DefaultTransactionRepository) CountByUserAndStatus(userID string, status domain.TransactionStatus) (int64, error) {
	var count int64
	err := r.DB.Model(&models.TransactionModel{}).
		Where("(buyer_id = ? OR seller_id = ?) AND status = ?", userID, userID, status).
		Count(&count).Error
	return count, err
}
