package model

import "time"

// Priority levels for a task.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Task represents a single todo item owned by a user.
type Task struct {
	ID          int        // Durable identifier, assigned by the store
	UserID      string     // Owner, enforced on every mutation
	Title       string     // 1-200 characters
	Description string     // Optional, max 1000 characters
	Completed   bool
	DueDate     *time.Time // Optional
	Priority    string     // high, medium or low; defaults to medium
	Category    string     // Optional free string, max 50 characters
	CreatedAt   time.Time
	UpdatedAt   time.Time
	CompletedAt *time.Time
}

// ValidPriority reports whether p is one of the supported priority levels.
func ValidPriority(p string) bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}
