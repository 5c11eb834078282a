package domain

import "time"

type Conversation struct {
	ID            string
	TransactionID string
	CreatedAt     time.Time
}

type Message struct {
	ID             string
	ConversationID string
	SenderID       string
	Body           string
	IsRead         bool
	CreatedAt      time.Time
}

type ConversationRepository interface {
	GetOrCreateByTransactionID(txID string) (*Conversation, error)
	AppendMessage(message *Message) error
	GetMessages(conversationID string, limit int64) ([]*Message, error)
	MarkMessagesRead(conversationID, readerID string) error
}
