package mappers

import (
	"github.com/decluttit/trade-service/internal/domain"
	"github.com/decluttit/trade-service/internal/infrastructure/postgres/models"
)

func ToDomainDispute(model *models.DisputeModel) *domain.Dispute {
	return &domain.Dispute{
		ID:            model.ID,
		TransactionID: model.TransactionID,
		ComplainantID: model.ComplainantID,
		RespondentID:  model.RespondentID,
		Reason:        model.Reason,
		Description:   model.Description,
		Evidence:      append([]string{}, model.Evidence...),
		Status:        model.Status,
		Resolution:    model.Resolution,
		ResolvedAt:    model.ResolvedAt,
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
	}
}

func ToGORMDispute(dispute *domain.Dispute) *models.DisputeModel {
	return &models.DisputeModel{
		ID:            dispute.ID,
		TransactionID: dispute.TransactionID,
		ComplainantID: dispute.ComplainantID,
		RespondentID:  dispute.RespondentID,
		Reason:        dispute.Reason,
		Description:   dispute.Description,
		Evidence:      append([]string{}, dispute.Evidence...),
		Status:        dispute.Status,
		Resolution:    dispute.Resolution,
		ResolvedAt:    dispute.ResolvedAt,
		CreatedAt:     dispute.CreatedAt,
		UpdatedAt:     dispute.UpdatedAt,
	}
}
