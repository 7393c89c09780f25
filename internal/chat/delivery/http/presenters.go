package http

import (
	"github.com/google/uuid"

	"conversational-task-management/internal/chat"
)

// --- Request DTOs ---

type sendMessageReq struct {
	ConversationID string `json:"conversation_id" binding:"omitempty,uuid"`
	Message        string `json:"message"         binding:"required,max=2000"`
}

func (r sendMessageReq) toInput() chat.ProcessInput {
	in := chat.ProcessInput{Message: r.Message}
	if r.ConversationID != "" {
		if id, err := uuid.Parse(r.ConversationID); err == nil {
			in.ConversationID = &id
		}
	}
	return in
}

// --- Response DTOs ---

type sendMessageResp struct {
	ConversationID string       `json:"conversation_id"`
	MessageID      string       `json:"message_id"`
	Response       string       `json:"response"`
	Metadata       metadataResp `json:"metadata"`
}

type metadataResp struct {
	Language  string          `json:"language"`
	Model     string          `json:"model,omitempty"`
	ToolCalls []chat.ToolCall `json:"tool_calls,omitempty"`
}

func (h *handler) newSendMessageResp(out chat.ProcessOutput) sendMessageResp {
	return sendMessageResp{
		ConversationID: out.ConversationID.String(),
		MessageID:      out.MessageID.String(),
		Response:       out.Reply,
		Metadata: metadataResp{
			Language:  string(out.Language),
			Model:     out.Model,
			ToolCalls: out.ToolCalls,
		},
	}
}
