package task

import (
	"time"

	"conversational-task-management/internal/model"
)

// List status filters.
const (
	StatusAll       = "all"
	StatusActive    = "active"
	StatusCompleted = "completed"
)

// DefaultListLimit applies when the caller does not bound the result set.
const DefaultListLimit = 100

// CreateInput is the input for creating a single task.
// UserID is carried in model.Scope, not here.
type CreateInput struct {
	Title       string
	Description string
	DueDate     *time.Time
	Priority    string // high/medium/low, empty defaults to medium
	Category    string
}

// ListInput is the input for listing tasks.
type ListInput struct {
	Status    string     // all/active/completed, empty defaults to all
	DueBefore *time.Time // only tasks due at or before this instant
	Limit     int        // 1-100, zero defaults to DefaultListLimit
}

// ListOutput is the result of a list operation, newest first.
type ListOutput struct {
	Tasks []model.Task
	Count int
}

// UpdateInput is the input for updating a task. Nil fields are left
// untouched; a non-nil field replaces the stored value.
type UpdateInput struct {
	ID          int
	Title       *string
	Description *string
	DueDate     *time.Time
	Priority    *string
	Category    *string
}
