package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"conversational-task-management/internal/model"
	"conversational-task-management/internal/task"
	"conversational-task-management/internal/task/repository"
	"conversational-task-management/internal/task/usecase"
	"conversational-task-management/pkg/gcalendar"
)

var scope = model.Scope{UserID: "user-1"}

func TestCreate(t *testing.T) {
	t.Run("Defaults Priority To Medium", func(t *testing.T) {
		uc := usecase.New(mockLogger{}, &mockRepo{}, nil, "UTC")
		created, err := uc.Create(context.Background(), scope, task.CreateInput{Title: "buy milk"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.Priority != model.PriorityMedium {
			t.Errorf("priority = %q, want medium", created.Priority)
		}
	})

	t.Run("Trims Title", func(t *testing.T) {
		repo := &mockRepo{
			createFunc: func(opt repository.CreateTaskOptions) (model.Task, error) {
				if opt.Title != "buy milk" {
					t.Errorf("stored title = %q, want trimmed", opt.Title)
				}
				return model.Task{ID: 1, Title: opt.Title}, nil
			},
		}
		uc := usecase.New(mockLogger{}, repo, nil, "UTC")
		if _, err := uc.Create(context.Background(), scope, task.CreateInput{Title: "  buy milk  "}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("Validation Errors", func(t *testing.T) {
		uc := usecase.New(mockLogger{}, &mockRepo{}, nil, "UTC")
		tests := []struct {
			name  string
			input task.CreateInput
			want  error
		}{
			{"Empty Title", task.CreateInput{Title: "   "}, task.ErrTitleRequired},
			{"Title Too Long", task.CreateInput{Title: strings.Repeat("a", 201)}, task.ErrTitleTooLong},
			{"Description Too Long", task.CreateInput{Title: "x", Description: strings.Repeat("d", 1001)}, task.ErrDescriptionTooLong},
			{"Bad Priority", task.CreateInput{Title: "x", Priority: "urgent-ish"}, task.ErrInvalidPriority},
			{"Category Too Long", task.CreateInput{Title: "x", Category: strings.Repeat("c", 51)}, task.ErrCategoryTooLong},
		}
		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				if _, err := uc.Create(context.Background(), scope, tc.input); !errors.Is(err, tc.want) {
					t.Errorf("got %v, want %v", err, tc.want)
				}
			})
		}
	})

	t.Run("Mirrors Due Dated Task To Calendar", func(t *testing.T) {
		cal := &mockCalendarClient{}
		due := time.Date(2026, 1, 18, 10, 0, 0, 0, time.UTC)
		uc := usecase.New(mockLogger{}, &mockRepo{}, cal, "UTC")
		if _, err := uc.Create(context.Background(), scope, task.CreateInput{Title: "dentist", DueDate: &due}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cal.calls != 1 {
			t.Errorf("calendar calls = %d, want 1", cal.calls)
		}
	})

	t.Run("Skips Calendar Without Due Date", func(t *testing.T) {
		cal := &mockCalendarClient{}
		uc := usecase.New(mockLogger{}, &mockRepo{}, cal, "UTC")
		if _, err := uc.Create(context.Background(), scope, task.CreateInput{Title: "dentist"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cal.calls != 0 {
			t.Errorf("calendar calls = %d, want 0", cal.calls)
		}
	})

	t.Run("Calendar Failure Is Non Fatal", func(t *testing.T) {
		cal := &mockCalendarClient{
			createFunc: func(_ gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
				return nil, errors.New("quota exceeded")
			},
		}
		due := time.Date(2026, 1, 18, 10, 0, 0, 0, time.UTC)
		uc := usecase.New(mockLogger{}, &mockRepo{}, cal, "UTC")
		if _, err := uc.Create(context.Background(), scope, task.CreateInput{Title: "dentist", DueDate: &due}); err != nil {
			t.Fatalf("create must not fail on calendar error, got %v", err)
		}
	})

	t.Run("Repository Failure", func(t *testing.T) {
		repo := &mockRepo{
			createFunc: func(repository.CreateTaskOptions) (model.Task, error) {
				return model.Task{}, errors.New("store unavailable")
			},
		}
		uc := usecase.New(mockLogger{}, repo, nil, "UTC")
		if _, err := uc.Create(context.Background(), scope, task.CreateInput{Title: "x"}); err == nil {
			t.Error("expected repository error to surface")
		}
	})
}
