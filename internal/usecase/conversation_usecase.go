package usecase

import (
	"fmt"
	"time"

	"github.com/decluttit/trade-service/internal/domain"
	"github.com/google/uuid"
)

type ConversationUsecase interface {
	SendMessage(actor domain.ActorContext, txID, body string) (*domain.Message, error)
	GetMessages(actor domain.ActorContext, txID string, limit int64) ([]*domain.Message, error)
}

type DefaultConversationUsecase struct {
	conversationRepo domain.ConversationRepository
	txRepo           domain.TransactionRepository
}

func NewDefaultConversationUsecase(
	conversationRepo domain.ConversationRepository,
	txRepo domain.TransactionRepository,
) *DefaultConversationUsecase {
	return &DefaultConversationUsecase{
		conversationRepo: conversationRepo,
		txRepo:           txRepo,
	}
}

func (uc *DefaultConversationUsecase) SendMessage(actor domain.ActorContext, txID, body string) (*domain.Message, error) {
	if body == "" {
		return nil, fmt.Errorf("message body must not be empty: %w", domain.ErrValidation)
	}
	conversation, err := uc.conversationFor(actor, txID)
	if err != nil {
		return nil, err
	}

	message := &domain.Message{
		ID:             uuid.New().String(),
		ConversationID: conversation.ID,
		SenderID:       actor.UserID,
		Body:           body,
		CreatedAt:      time.Now(),
	}
	if err := uc.conversationRepo.AppendMessage(message); err != nil {
		return nil, err
	}
	return message, nil
}

// GetMessages returns the conversation log and marks messages addressed
// to the reader as read.
func (uc *DefaultConversationUsecase) GetMessages(actor domain.ActorContext, txID string, limit int64) ([]*domain.Message, error) {
	conversation, err := uc.conversationFor(actor, txID)
	if err != nil {
		return nil, err
	}
	messages, err := uc.conversationRepo.GetMessages(conversation.ID, limit)
	if err != nil {
		return nil, err
	}
	_ = uc.conversationRepo.MarkMessagesRead(conversation.ID, actor.UserID)
	return messages, nil
}

func (uc *DefaultConversationUsecase) conversationFor(actor domain.ActorContext, txID string) (*domain.Conversation, error) {
	tx, err := uc.txRepo.GetTransactionByID(txID)
	if err != nil {
		return nil, err
	}
	if !tx.Participant(actor.UserID) {
		return nil, fmt.Errorf("transaction %s: %w", txID, domain.ErrUnauthorized)
	}
	return uc.conversationRepo.GetOrCreateByTransactionID(txID)
}
