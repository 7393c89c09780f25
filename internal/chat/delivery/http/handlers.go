package http

import (
	"github.com/gin-gonic/gin"

	"conversational-task-management/internal/middleware"
	"conversational-task-management/pkg/response"
)

// SendMessage godoc
// @Summary     Send a chat message
// @Description Processes one dialogue turn: runs the implied task operation and returns the assistant reply.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string         true "Caller user id"
// @Param       body      body   sendMessageReq true "Message and optional conversation id"
// @Success     200 {object} sendMessageResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     403 {object} response.Resp "Forbidden - conversation owned by another user"
// @Failure     404 {object} response.Resp "Conversation not found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat/messages [POST]
func (h *handler) SendMessage(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processSendMessageReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ProcessMessage(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ProcessMessage: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newSendMessageResp(output))
}
