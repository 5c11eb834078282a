package models

import (
	"time"

	"github.com/decluttit/trade-service/internal/domain"
	"github.com/lib/pq"
)

type DisputeModel struct {
	ID            string               `gorm:"primaryKey"`
	TransactionID string               `gorm:"not null;uniqueIndex"`
	ComplainantID string               `gorm:"type:uuid;not null;index"`
	RespondentID  string               `gorm:"type:uuid;not null;index"`
	Reason        string               `gorm:"not null"`
	Description   string
	Evidence      pq.StringArray       `gorm:"type:text[]"`
	Status        domain.DisputeStatus `gorm:"not null;index"`
	Resolution    string
	ResolvedAt    *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (DisputeModel) TableName() string { return "disputes" }
