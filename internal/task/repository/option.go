package repository

import "time"

// CreateTaskOptions holds the parameters for storing a new task.
// Validation happens in the usecase; the repository stores what it is given.
type CreateTaskOptions struct {
	UserID      string
	Title       string
	Description string
	DueDate     *time.Time
	Priority    string
	Category    string
}

// ListTasksOptions holds the parameters for listing tasks.
type ListTasksOptions struct {
	UserID    string
	Status    string     // all/active/completed
	DueBefore *time.Time // only tasks due at or before this instant
	Limit     int        // max number of results
}
