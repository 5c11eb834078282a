package models

import "time"

type ReviewModel struct {
	ID            string `gorm:"primaryKey;type:uuid"`
	TransactionID string `gorm:"not null;uniqueIndex:idx_review_once,priority:1"`
	ReviewerID    string `gorm:"type:uuid;not null;uniqueIndex:idx_review_once,priority:2"`
	RevieweeID    string `gorm:"type:uuid;not null;index"`
	Rating        int    `gorm:"not null"`
	Comment       string
	CreatedAt     time.Time
}

func (ReviewModel) TableName() string { return "reviews" }
