package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"conversational-task-management/internal/model"
	"conversational-task-management/pkg/response"
)

const (
	// UserIDHeader carries the authenticated user identity, set by the
	// gateway in front of this service.
	UserIDHeader = "X-User-ID"

	scopeKey = "scope"
)

// Auth extracts the caller scope from the user id header and stores it on
// the gin context. Requests without an identity are rejected.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.GetHeader(UserIDHeader))
		if userID == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(scopeKey, model.Scope{UserID: userID})
		c.Next()
	}
}

// GetScope returns the caller scope stored by Auth. The second return is
// false on routes that skipped the Auth middleware.
func GetScope(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}, false
	}
	sc, ok := v.(model.Scope)
	return sc, ok
}
