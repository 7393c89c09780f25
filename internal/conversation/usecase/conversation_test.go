package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"conversational-task-management/internal/conversation"
	"conversational-task-management/internal/conversation/repository/memory"
	"conversational-task-management/internal/conversation/usecase"
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

var (
	owner    = model.Scope{UserID: "user-1"}
	intruder = model.Scope{UserID: "user-2"}
)

func TestConversationLifecycle(t *testing.T) {
	ctx := context.Background()
	uc := usecase.New(mockLogger{}, memory.New())

	created, err := uc.GetOrCreate(ctx, owner, nil)
	if err != nil {
		t.Fatalf("GetOrCreate(nil): %v", err)
	}
	if created.ID == uuid.Nil {
		t.Fatal("new conversation must get an ID")
	}

	loaded, err := uc.GetOrCreate(ctx, owner, &created.ID)
	if err != nil {
		t.Fatalf("GetOrCreate(existing): %v", err)
	}
	if loaded.ID != created.ID {
		t.Errorf("loaded %s, want %s", loaded.ID, created.ID)
	}

	if _, err := uc.GetOrCreate(ctx, intruder, &created.ID); !errors.Is(err, conversation.ErrNotOwner) {
		t.Errorf("intruder access = %v, want ErrNotOwner", err)
	}

	unknown := uuid.New()
	if _, err := uc.GetOrCreate(ctx, owner, &unknown); !errors.Is(err, conversation.ErrNotFound) {
		t.Errorf("unknown id = %v, want ErrNotFound", err)
	}
}

func TestHistoryWindow(t *testing.T) {
	ctx := context.Background()
	uc := usecase.New(mockLogger{}, memory.New())

	c, err := uc.GetOrCreate(ctx, owner, nil)
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}

	for i := 0; i < 12; i++ {
		role := model.RoleUser
		if i%2 == 1 {
			role = model.RoleAssistant
		}
		if _, err := uc.SaveMessage(ctx, owner, conversation.SaveMessageInput{
			ConversationID: c.ID,
			Role:           role,
			Content:        "m",
		}); err != nil {
			t.Fatalf("SaveMessage %d: %v", i, err)
		}
	}

	history, err := uc.History(ctx, owner, c.ID, 10)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(history) != 10 {
		t.Errorf("history len = %d, want window of 10", len(history))
	}
}

func TestLastState(t *testing.T) {
	ctx := context.Background()
	uc := usecase.New(mockLogger{}, memory.New())

	c, _ := uc.GetOrCreate(ctx, owner, nil)

	blob, err := uc.LastState(ctx, owner, c.ID)
	if err != nil {
		t.Fatalf("LastState on fresh conversation: %v", err)
	}
	if blob != nil {
		t.Errorf("fresh conversation state = %s, want nil", blob)
	}

	if _, err := uc.SaveMessage(ctx, owner, conversation.SaveMessageInput{
		ConversationID: c.ID, Role: model.RoleUser, Content: "add a task",
	}); err != nil {
		t.Fatalf("SaveMessage: %v", err)
	}
	if _, err := uc.SaveMessage(ctx, owner, conversation.SaveMessageInput{
		ConversationID: c.ID, Role: model.RoleAssistant, Content: "what's it called?",
		StateBlob: []byte(`{"intent":"adding_task"}`),
	}); err != nil {
		t.Fatalf("SaveMessage: %v", err)
	}

	blob, err = uc.LastState(ctx, owner, c.ID)
	if err != nil {
		t.Fatalf("LastState: %v", err)
	}
	if string(blob) != `{"intent":"adding_task"}` {
		t.Errorf("state blob = %s, want the assistant's blob", blob)
	}

	if _, err := uc.LastState(ctx, intruder, c.ID); !errors.Is(err, conversation.ErrNotOwner) {
		t.Errorf("intruder LastState = %v, want ErrNotOwner", err)
	}
}
