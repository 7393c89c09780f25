package conversation

import (
	"github.com/google/uuid"

	"conversational-task-management/internal/model"
)

// SaveMessageInput is the input for appending a message to a conversation.
type SaveMessageInput struct {
	ConversationID uuid.UUID
	Role           model.MessageRole
	Content        string
	Language       string
	StateBlob      []byte // assistant messages only
}
