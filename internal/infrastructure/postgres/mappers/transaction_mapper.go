package mappers

import (
	"github.com/decluttit/trade-service/internal/domain"
	"github.com/decluttit/trade-service/internal/infrastructure/postgres/models"
)

func ToDomainTransaction(model *models.TransactionModel) *domain.Transaction {
	return &domain.Transaction{
		ID:              model.ID,
		ListingID:       model.ListingID,
		BuyerID:         model.BuyerID,
		SellerID:        model.SellerID,
		BuyerRequestID:  model.BuyerRequestID,
		Amount:          model.Amount,
		PlatformFee:     model.PlatformFee,
		Status:          model.Status,
		PaymentIntentID: model.PaymentIntentID,
		PaidAt:          model.PaidAt,
		ReleasedAt:      model.ReleasedAt,
		RefundedAt:      model.RefundedAt,
		CompletedAt:     model.CompletedAt,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	}
}

func ToGORMTransaction(tx *domain.Transaction) *models.TransactionModel {
	return &models.TransactionModel{
		ID:              tx.ID,
		ListingID:       tx.ListingID,
		BuyerID:         tx.BuyerID,
		SellerID:        tx.SellerID,
		BuyerRequestID:  tx.BuyerRequestID,
		Amount:          tx.Amount,
		PlatformFee:     tx.PlatformFee,
		Status:          tx.Status,
		PaymentIntentID: tx.PaymentIntentID,
		PaidAt:          tx.PaidAt,
		ReleasedAt:      tx.ReleasedAt,
		RefundedAt:      tx.RefundedAt,
		CompletedAt:     tx.CompletedAt,
		CreatedAt:       tx.CreatedAt,
		UpdatedAt:       tx.UpdatedAt,
	}
}
