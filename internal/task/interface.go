package task

import (
	"context"

	"conversational-task-management/internal/model"
)

// UseCase defines the business logic interface for the task domain.
// All operations are scoped to the calling user; cross-user access returns
// ErrNotOwner.
type UseCase interface {
	// Create validates the input and stores a new task. A due-dated task is
	// mirrored to the calendar when a calendar client is configured.
	Create(ctx context.Context, sc model.Scope, input CreateInput) (model.Task, error)

	// List returns the user's tasks filtered by status and due date,
	// newest first.
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)

	// Complete marks a task as completed and stamps the completion time.
	Complete(ctx context.Context, sc model.Scope, id int) (model.Task, error)

	// Delete removes a task permanently. Deleting an already-deleted task
	// returns ErrNotFound.
	Delete(ctx context.Context, sc model.Scope, id int) error

	// Update modifies the provided fields of an existing task.
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (model.Task, error)

	// SearchByTitle finds the user's tasks whose title contains the fragment,
	// case-insensitively.
	SearchByTitle(ctx context.Context, sc model.Scope, fragment string) ([]model.Task, error)
}
