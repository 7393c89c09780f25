package model

import (
	"time"

	"github.com/google/uuid"
)

// MessageRole identifies the sender of a message.
type MessageRole string

const (
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
	RoleSystem    MessageRole = "system"
)

// Conversation groups related messages into one chat session owned by a user.
type Conversation struct {
	ID        uuid.UUID
	UserID    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Message is a single immutable entry in a conversation. Assistant messages
// carry the serialized dialogue state blob that the next turn reads back;
// that blob is the only cross-turn persistence point.
type Message struct {
	ID             uuid.UUID
	ConversationID uuid.UUID
	Role           MessageRole
	Content        string
	Language       string // detected language of the turn ("english" or "urdu")
	StateBlob      []byte // opaque serialized dialogue state, assistant messages only
	Timestamp      time.Time
}
