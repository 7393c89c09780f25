package chat

import (
	"github.com/google/uuid"

	"conversational-task-management/internal/chat/language"
)

// ProcessInput is the input for one dialogue turn.
type ProcessInput struct {
	// ConversationID continues an existing conversation; nil starts a new one.
	ConversationID *uuid.UUID
	Message        string
}

// ToolCall records one task operation executed during a turn.
type ToolCall struct {
	Tool    string `json:"tool"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	TaskID  int    `json:"task_id,omitempty"`
}

// ProcessOutput is the result of one dialogue turn.
type ProcessOutput struct {
	ConversationID uuid.UUID
	MessageID      uuid.UUID
	Reply          string
	Language       language.Language
	Model          string
	ToolCalls      []ToolCall
}
