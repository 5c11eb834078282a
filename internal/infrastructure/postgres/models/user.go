package models

import (
	"time"

	"github.com/decluttit/trade-service/internal/domain"
)

type UserModel struct {
	ID                string                   `gorm:"primaryKey;type:uuid"`
	Email             string                   `gorm:"not null;uniqueIndex"`
	FullName          string
	Phone             string
	VerificationLevel domain.VerificationLevel `gorm:"not null;default:BASIC"`
	TrustScore        int                      `gorm:"not null;default:0"`
	IsActive          bool                     `gorm:"not null;default:true"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (UserModel) TableName() string { return "users" }
