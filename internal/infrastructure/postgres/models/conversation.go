package models

import "time"

type ConversationModel struct {
	ID            string `gorm:"primaryKey;type:uuid"`
	TransactionID string `gorm:"not null;uniqueIndex"`
	CreatedAt     time.Time
}

func (ConversationModel) TableName() string { return "conversations" }

type MessageModel struct {
	ID             string `gorm:"primaryKey;type:uuid"`
	ConversationID string `gorm:"type:uuid;not null;index"`
	SenderID       string `gorm:"type:uuid;not null"`
	Body           string `gorm:"not null"`
	IsRead         bool   `gorm:"not null;default:false"`
	CreatedAt      time.Time
}

func (MessageModel) TableName() string { return "messages" }
