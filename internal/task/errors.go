package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrTitleRequired      = errors.New("title cannot be empty")
	ErrTitleTooLong       = errors.New("title must be 200 characters or less")
	ErrDescriptionTooLong = errors.New("description must be 1000 characters or less")
	ErrInvalidPriority    = errors.New("priority must be 'high', 'medium', or 'low'")
	ErrCategoryTooLong    = errors.New("category must be 50 characters or less")
	ErrInvalidStatus      = errors.New("status must be 'all', 'active', or 'completed'")
	ErrInvalidLimit       = errors.New("limit must be between 1 and 100")
	ErrEmptyFragment      = errors.New("search fragment is empty")
	ErrNotFound           = errors.New("task not found")
	ErrNotOwner           = errors.New("task does not belong to this user")
)
