package usecase

import (
	"context"

	"conversational-task-management/internal/model"
	"conversational-task-management/internal/task"
	"conversational-task-management/internal/task/repository"
)

// List returns the user's tasks filtered by status and due date, newest first.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input task.ListInput) (task.ListOutput, error) {
	status := input.Status
	if status == "" {
		status = task.StatusAll
	}
	switch status {
	case task.StatusAll, task.StatusActive, task.StatusCompleted:
	default:
		return task.ListOutput{}, task.ErrInvalidStatus
	}

	limit := input.Limit
	if limit == 0 {
		limit = task.DefaultListLimit
	}
	if limit < 1 || limit > maxListLimit {
		return task.ListOutput{}, task.ErrInvalidLimit
	}

	tasks, err := uc.repo.List(ctx, repository.ListTasksOptions{
		UserID:    sc.UserID,
		Status:    status,
		DueBefore: input.DueBefore,
		Limit:     limit,
	})
	if err != nil {
		uc.l.Errorf(ctx, "List: failed for user=%s: %v", sc.UserID, err)
		return task.ListOutput{}, err
	}

	uc.l.Infof(ctx, "List: user=%s status=%s count=%d", sc.UserID, status, len(tasks))
	return task.ListOutput{Tasks: tasks, Count: len(tasks)}, nil
}
