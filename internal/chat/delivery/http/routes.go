package http

import (
	"github.com/gin-gonic/gin"

	"conversational-task-management/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	messages := rg.Group("/messages")
	{
		messages.POST("", mw.Auth(), mw.RateLimit(), h.SendMessage)
	}
}
