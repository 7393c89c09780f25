package repository

import (
	"context"
	"errors"

	"conversational-task-management/internal/model"
)

// ErrNotFound is returned when the requested task does not exist.
// The usecase maps it to its own domain error.
var ErrNotFound = errors.New("task not found in store")

// TaskRepository is the interface for task data access operations.
type TaskRepository interface {
	Create(ctx context.Context, opt CreateTaskOptions) (model.Task, error)
	Get(ctx context.Context, id int) (model.Task, error)
	List(ctx context.Context, opt ListTasksOptions) ([]model.Task, error)
	Update(ctx context.Context, t model.Task) (model.Task, error)
	Delete(ctx context.Context, id int) error

	// SearchByTitle returns the user's tasks whose title contains fragment,
	// case-insensitively, in insertion order.
	SearchByTitle(ctx context.Context, userID, fragment string) ([]model.Task, error)
}
