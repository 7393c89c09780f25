package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"conversational-task-management/internal/chat"
	"conversational-task-management/internal/conversation"
	"conversational-task-management/pkg/response"
)

// respondError translates domain errors into HTTP responses. Tool failures
// never reach here; they ride inside a successful turn's metadata.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, chat.ErrEmptyMessage), errors.Is(err, chat.ErrMessageTooLong):
		response.Error(c, err, nil)
	case errors.Is(err, conversation.ErrNotFound):
		response.NotFound(c)
	case errors.Is(err, conversation.ErrNotOwner):
		response.Forbidden(c)
	default:
		response.InternalError(c, err)
	}
}
