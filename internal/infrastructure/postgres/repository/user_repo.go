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

type DefaultUserRepository struct {
	DB *gorm.DB
}

func NewDefaultUserRepository(db *gorm.DB) *DefaultUserRepository {
	return &DefaultUserRepository{DB: db}
}

func (r *DefaultUserRepository) CreateUser(user *domain.User) error {
	return r.DB.Create(mappers.ToGORMUser(user)).Error
}

func (r *DefaultUserRepository) GetUserByID(userID string) (*domain.User, error) {
	var model models.UserModel
	if err := r.DB.First(&model, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %s: %w", userID, domain.ErrNotFound)
		}
		return nil, err
	}
	return mappers.ToDomainUser(&model), nil
}

func (r *DefaultUserRepository) UpdateVerificationLevel(userID string, level domain.VerificationLevel) error {
	return r.DB.Model(&models.UserModel{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{"verification_level": level, "updated_at": time.Now()}).Error
}

func (r *DefaultUserRepository) UpdateTrustScore(userID string, score int) error {
	return r.DB.Model(&models.UserModel{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{"trust_score": score, "updated_at": time.Now()}).Error
}

// DeactivateUser soft-disables the account. User rows are never deleted.
func (r *DefaultUserRepository) DeactivateUser(userID string) error {
	return r.DB.Model(&models.UserModel{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{"is_active": false, "updated_at": time.Now()}).Error
}
