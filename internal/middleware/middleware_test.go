package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"conversational-task-management/internal/middleware"
	"conversational-task-management/internal/model"
)

type mockLogger struct{}

func (mockLogger) Debug(context.Context, ...any)           {}
func (mockLogger) Debugf(context.Context, string, ...any)  {}
func (mockLogger) Info(context.Context, ...any)            {}
func (mockLogger) Infof(context.Context, string, ...any)   {}
func (mockLogger) Warn(context.Context, ...any)            {}
func (mockLogger) Warnf(context.Context, string, ...any)   {}
func (mockLogger) Error(context.Context, ...any)           {}
func (mockLogger) Errorf(context.Context, string, ...any)  {}
func (mockLogger) Fatal(context.Context, ...any)           {}
func (mockLogger) Fatalf(context.Context, string, ...any)  {}
func (mockLogger) DPanic(context.Context, ...any)          {}
func (mockLogger) DPanicf(context.Context, string, ...any) {}
func (mockLogger) Panic(context.Context, ...any)           {}
func (mockLogger) Panicf(context.Context, string, ...any)  {}

func newRouter(mw middleware.Middleware, handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/chat", mw.Auth(), mw.RateLimit(), handler)
	return r
}

func doRequest(r *gin.Engine, userID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/chat", nil)
	if userID != "" {
		req.Header.Set(middleware.UserIDHeader, userID)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuth(t *testing.T) {
	mw := middleware.New(mockLogger{}, 0)

	var captured model.Scope
	r := newRouter(mw, func(c *gin.Context) {
		sc, ok := middleware.GetScope(c)
		if !ok {
			t.Error("expected scope on context")
		}
		captured = sc
		c.Status(http.StatusOK)
	})

	t.Run("missing user id", func(t *testing.T) {
		if w := doRequest(r, ""); w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("scope from header", func(t *testing.T) {
		if w := doRequest(r, "user-7"); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if captured.UserID != "user-7" {
			t.Errorf("expected scope user-7, got %q", captured.UserID)
		}
	})
}

func TestRateLimitPerUser(t *testing.T) {
	// One request per minute, burst 1: the second immediate request from the
	// same user must be throttled, another user is unaffected.
	mw := middleware.New(mockLogger{}, 1)
	r := newRouter(mw, func(c *gin.Context) { c.Status(http.StatusOK) })

	if w := doRequest(r, "user-a"); w.Code != http.StatusOK {
		t.Fatalf("first request: expected 200, got %d", w.Code)
	}
	if w := doRequest(r, "user-a"); w.Code != http.StatusTooManyRequests {
		t.Fatalf("second request: expected 429, got %d", w.Code)
	}
	if w := doRequest(r, "user-b"); w.Code != http.StatusOK {
		t.Fatalf("other user: expected 200, got %d", w.Code)
	}
}
