package usecase

import (
	"context"

	"conversational-task-management/pkg/gcalendar"
)

// CalendarClient abstracts the Google Calendar client for testability.
type CalendarClient interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

const (
	maxTitleLen       = 200
	maxDescriptionLen = 1000
	maxCategoryLen    = 50
	maxListLimit      = 100

	// Mirrored calendar events default to a one-hour block.
	defaultEventMinutes = 60
)
