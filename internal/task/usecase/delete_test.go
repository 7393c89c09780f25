package usecase_test

import (
	"context"
	"errors"
	"testing"

	"conversational-task-management/internal/model"
	"conversational-task-management/internal/task"
	"conversational-task-management/internal/task/usecase"
)

func TestDelete(t *testing.T) {
	t.Run("Deletes Owned Task", func(t *testing.T) {
		deleted := 0
		repo := &mockRepo{
			getFunc: func(id int) (model.Task, error) {
				return model.Task{ID: id, UserID: scope.UserID}, nil
			},
			deleteFunc: func(id int) error {
				deleted = id
				return nil
			},
		}
		uc := usecase.New(mockLogger{}, repo, nil, "UTC")
		if err := uc.Delete(context.Background(), scope, 5); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if deleted != 5 {
			t.Errorf("deleted id = %d, want 5", deleted)
		}
	})

	t.Run("Second Delete Returns Not Found", func(t *testing.T) {
		// Default mockRepo.Get returns the store's not-found sentinel.
		uc := usecase.New(mockLogger{}, &mockRepo{}, nil, "UTC")
		if err := uc.Delete(context.Background(), scope, 5); !errors.Is(err, task.ErrNotFound) {
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
		if err := uc.Delete(context.Background(), scope, 5); !errors.Is(err, task.ErrNotOwner) {
			t.Errorf("got %v, want ErrNotOwner", err)
		}
	})
}

func TestSearchByTitle(t *testing.T) {
	t.Run("Empty Fragment", func(t *testing.T) {
		uc := usecase.New(mockLogger{}, &mockRepo{}, nil, "UTC")
		if _, err := uc.SearchByTitle(context.Background(), scope, "  "); !errors.Is(err, task.ErrEmptyFragment) {
			t.Errorf("got %v, want ErrEmptyFragment", err)
		}
	})

	t.Run("Scopes To User", func(t *testing.T) {
		repo := &mockRepo{
			searchFunc: func(userID, fragment string) ([]model.Task, error) {
				if userID != scope.UserID {
					t.Errorf("userID = %q, want caller scope", userID)
				}
				return []model.Task{{ID: 3, Title: "Lunch"}}, nil
			},
		}
		uc := usecase.New(mockLogger{}, repo, nil, "UTC")
		matches, err := uc.SearchByTitle(context.Background(), scope, "lunch")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(matches) != 1 || matches[0].ID != 3 {
			t.Errorf("matches = %+v, want single ID 3", matches)
		}
	})
}
