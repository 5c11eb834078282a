package mappers

import (
	"github.com/decluttit/trade-service/internal/domain"
	"github.com/decluttit/trade-service/internal/infrastructure/postgres/models"
)

func ToDomainUser(model *models.UserModel) *domain.User {
	return &domain.User{
		ID:                model.ID,
		Email:             model.Email,
		FullName:          model.FullName,
		Phone:             model.Phone,
		VerificationLevel: model.VerificationLevel,
		TrustScore:        model.TrustScore,
		IsActive:          model.IsActive,
		CreatedAt:         model.CreatedAt,
		UpdatedAt:         model.UpdatedAt,
	}
}

func ToGORMUser(user *domain.User) *models.UserModel {
	return &models.UserModel{
		ID:                user.ID,
		Email:             user.Email,
		FullName:          user.FullName,
		Phone:             user.Phone,
		VerificationLevel: user.VerificationLevel,
		TrustScore:        user.TrustScore,
		IsActive:          user.IsActive,
		CreatedAt:         user.CreatedAt,
		UpdatedAt:         user.UpdatedAt,
	}
}
