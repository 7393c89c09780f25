package usecase_test

import (
	"context"
	"errors"
	"testing"

	"conversational-task-management/internal/model"
	"conversational-task-management/internal/task"
	"conversational-task-management/internal/task/usecase"
)

func strPtr(s string) *string { return &s }

func TestUpdate(t *testing.T) {
	t.Run("Nil Fields Keep Stored Values", func(t *testing.T) {
		repo := &mockRepo{
			getFunc: func(id int) (model.Task, error) {
				return model.Task{ID: id, UserID: scope.UserID, Title: "buy milk", Priority: model.PriorityHigh, Category: "errands"}, nil
			},
		}
		uc := usecase.New(mockLogger{}, repo, nil, "UTC")
		updated, err := uc.Update(context.Background(), scope, task.UpdateInput{ID: 7, Title: strPtr("buy oat milk")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Title != "buy oat milk" {
			t.Errorf("title = %q, want %q", updated.Title, "buy oat milk")
		}
		if updated.Priority != model.PriorityHigh || updated.Category != "errands" {
			t.Errorf("untouched fields changed: %+v", updated)
		}
	})

	t.Run("Blank Title Rejected", func(t *testing.T) {
		uc := usecase.New(mockLogger{}, &mockRepo{}, nil, "UTC")
		if _, err := uc.Update(context.Background(), scope, task.UpdateInput{ID: 7, Title: strPtr("   ")}); !errors.Is(err, task.ErrTitleRequired) {
			t.Errorf("got %v, want ErrTitleRequired", err)
		}
	})

	t.Run("Invalid Priority Rejected", func(t *testing.T) {
		uc := usecase.New(mockLogger{}, &mockRepo{}, nil, "UTC")
		if _, err := uc.Update(context.Background(), scope, task.UpdateInput{ID: 7, Priority: strPtr("urgent-ish")}); !errors.Is(err, task.ErrInvalidPriority) {
			t.Errorf("got %v, want ErrInvalidPriority", err)
		}
	})

	t.Run("Not Found", func(t *testing.T) {
		uc := usecase.New(mockLogger{}, &mockRepo{}, nil, "UTC")
		if _, err := uc.Update(context.Background(), scope, task.UpdateInput{ID: 99, Title: strPtr("renamed")}); !errors.Is(err, task.ErrNotFound) {
			t.Errorf("got %v, want ErrNotFound", err)
		}
	})

	t.Run("Ownership Enforced", func(t *testing.T) {
		repo := &mockRepo{
			getFunc: func(id int) (model.Task, error) {
				return model.Task{ID: id, UserID: "someone-else"}, nil
			},
		}
		uc := usecase.New(mockLogger{}, repo, nil, "UTC")
		if _, err := uc.Update(context.Background(), scope, task.UpdateInput{ID: 7, Title: strPtr("renamed")}); !errors.Is(err, task.ErrNotOwner) {
			t.Errorf("got %v, want ErrNotOwner", err)
		}
	})
}
