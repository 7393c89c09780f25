package usecase

import (
	"conversational-task-management/internal/task/repository"
	pkgLog "conversational-task-management/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.TaskRepository
	calendar CalendarClient
	timezone string
}

// New creates a new task UseCase instance. calendar may be nil; due-dated
// tasks are then not mirrored anywhere.
func New(
	l pkgLog.Logger,
	repo repository.TaskRepository,
	calendar CalendarClient,
	timezone string,
) *implUseCase {
	return &implUseCase{
		l:        l,
		repo:     repo,
		calendar: calendar,
		timezone: timezone,
	}
}
