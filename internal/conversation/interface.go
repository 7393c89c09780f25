package conversation

import (
	"context"

	"github.com/google/uuid"

	"conversational-task-management/internal/model"
)

// UseCase defines the business logic interface for conversation persistence.
// Conversations are owned: any access to another user's conversation returns
// ErrNotOwner.
type UseCase interface {
	// GetOrCreate loads an existing conversation or starts a new one when
	// id is nil.
	GetOrCreate(ctx context.Context, sc model.Scope, id *uuid.UUID) (model.Conversation, error)

	// SaveMessage appends one message to a conversation. The state blob is
	// only meaningful on assistant messages.
	SaveMessage(ctx context.Context, sc model.Scope, input SaveMessageInput) (model.Message, error)

	// History returns the most recent messages in chronological order,
	// bounded by limit.
	History(ctx context.Context, sc model.Scope, conversationID uuid.UUID, limit int) ([]model.Message, error)

	// LastState returns the state blob of the most recent assistant message,
	// or nil when the conversation has none.
	LastState(ctx context.Context, sc model.Scope, conversationID uuid.UUID) ([]byte, error)
}
