package usecase_test

import (
	"context"
	"errors"
	"testing"

	"conversational-task-management/internal/model"
	"conversational-task-management/internal/task"
	"conversational-task-management/internal/task/repository"
	"conversational-task-management/internal/task/usecase"
)

func TestList(t *testing.T) {
	t.Run("Defaults Status And Limit", func(t *testing.T) {
		repo := &mockRepo{
			listFunc: func(opt repository.ListTasksOptions) ([]model.Task, error) {
				if opt.Status != task.StatusAll {
					t.Errorf("status = %q, want all", opt.Status)
				}
				if opt.Limit != task.DefaultListLimit {
					t.Errorf("limit = %d, want %d", opt.Limit, task.DefaultListLimit)
				}
				if opt.UserID != scope.UserID {
					t.Errorf("userID = %q, want scoped to caller", opt.UserID)
				}
				return []model.Task{{ID: 2}, {ID: 1}}, nil
			},
		}
		uc := usecase.New(mockLogger{}, repo, nil, "UTC")
		out, err := uc.List(context.Background(), scope, task.ListInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Count != 2 || len(out.Tasks) != 2 {
			t.Errorf("count = %d, want 2", out.Count)
		}
	})

	t.Run("Invalid Status", func(t *testing.T) {
		uc := usecase.New(mockLogger{}, &mockRepo{}, nil, "UTC")
		if _, err := uc.List(context.Background(), scope, task.ListInput{Status: "done"}); !errors.Is(err, task.ErrInvalidStatus) {
			t.Errorf("got %v, want ErrInvalidStatus", err)
		}
	})

	t.Run("Invalid Limit", func(t *testing.T) {
		uc := usecase.New(mockLogger{}, &mockRepo{}, nil, "UTC")
		for _, limit := range []int{-1, 101} {
			if _, err := uc.List(context.Background(), scope, task.ListInput{Limit: limit}); !errors.Is(err, task.ErrInvalidLimit) {
				t.Errorf("limit=%d: got %v, want ErrInvalidLimit", limit, err)
			}
		}
	})

	t.Run("Repository Failure", func(t *testing.T) {
		repo := &mockRepo{
			listFunc: func(repository.ListTasksOptions) ([]model.Task, error) {
				return nil, errors.New("store unavailable")
			},
		}
		uc := usecase.New(mockLogger{}, repo, nil, "UTC")
		if _, err := uc.List(context.Background(), scope, task.ListInput{}); err == nil {
			t.Error("expected repository error to surface")
		}
	})
}
