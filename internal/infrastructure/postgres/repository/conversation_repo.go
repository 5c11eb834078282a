package repository

import (
	"errors"
	"time"

	"github.com/decluttit/trade-service/internal/domain"
	"github.com/decluttit/trade-service/internal/infrastructure/postgres/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DefaultConversationRepository struct {
	DB *gorm.DB
}

func NewDefaultConversationRepository(db *gorm.DB) *DefaultConversationRepository {
	return &DefaultConversationRepository{DB: db}
}

func (r *DefaultConversationRepository) GetOrCreateByTransactionID(txID string) (*domain.Conversation, error) {
	var model models.ConversationModel
	err := r.DB.First(&model, "transaction_id = ?", txID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		model = models.ConversationModel{
			ID:            uuid.New().String(),
			TransactionID: txID,
			CreatedAt:     time.Now(),
		}
		err = r.DB.Create(&model).Error
	}
	if err != nil {
		return nil, err
	}
	return &domain.Conversation{
		ID:            model.ID,
		TransactionID: model.TransactionID,
		CreatedAt:     model.CreatedAt,
	}, nil
}

func (r *DefaultConversationRepository) AppendMessage(message *domain.Message) error {
	return r.DB.Create(&models.MessageModel{
		ID:             message.ID,
		ConversationID: message.ConversationID,
		SenderID:       message.SenderID,
		Body:           message.Body,
		IsRead:         message.IsRead,
		CreatedAt:      message.CreatedAt,
	}).Error
}

func (r *DefaultConversationRepository) GetMessages(conversationID string, limit int64) ([]*domain.Message, error) {
	if limit < 1 {
		limit = 50
	}

	var messageModels []models.MessageModel
	err := r.DB.Where("conversation_id = ?", conversationID).
		Order("created_at ASC").
		Limit(int(limit)).
		Find(&messageModels).Error
	if err != nil {
		return nil, err
	}

	messages := make([]*domain.Message, 0, len(messageModels))
	for i := range messageModels {
		m := messageModels[i]
		messages = append(messages, &domain.Message{
			ID:             m.ID,
			ConversationID: m.ConversationID,
			SenderID:       m.SenderID,
			Body:           m.Body,
			IsRead:         m.IsRead,
			CreatedAt:      m.CreatedAt,
		})
	}
	return messages, nil
}

func (r *DefaultConversationRepository) MarkMessagesRead(conversationID, readerID string) error {
	return r.DB.Model(&models.MessageModel{}).
		Where("conversation_id = ? AND sender_id <> ? AND is_read = false", conversationID, readerID).
		Update("is_read", true).Error
}
