package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"conversational-task-management/internal/model"
)

// ErrNotFound is returned when the requested conversation does not exist.
var ErrNotFound = errors.New("conversation not found in store")

// ConversationRepository is the interface for conversation data access.
type ConversationRepository interface {
	CreateConversation(ctx context.Context, c model.Conversation) (model.Conversation, error)
	GetConversation(ctx context.Context, id uuid.UUID) (model.Conversation, error)

	// SaveMessage appends a message and bumps the conversation's updated
	// time.
	SaveMessage(ctx context.Context, m model.Message) (model.Message, error)

	// ListMessages returns the last limit messages of a conversation in
	// chronological order. limit <= 0 means all.
	ListMessages(ctx context.Context, conversationID uuid.UUID, limit int) ([]model.Message, error)

	// LastAssistantMessage returns the most recent assistant message, or
	// ErrNotFound when there is none.
	LastAssistantMessage(ctx context.Context, conversationID uuid.UUID) (model.Message, error)
}
