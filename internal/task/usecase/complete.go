package usecase

import (
	"context"
	"errors"
	"time"

	"conversational-task-management/internal/model"
	"conversational-task-management/internal/task"
	"conversational-task-management/internal/task/repository"
)

// Complete marks a task as completed and stamps the completion time.
// Completing an already-completed task refreshes the timestamp rather than
// failing.
func (uc *implUseCase) Complete(ctx context.Context, sc model.Scope, id int) (model.Task, error) {
	t, err := uc.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Task{}, task.ErrNotFound
		}
		uc.l.Errorf(ctx, "Complete: failed to load task %d: %v", id, err)
		return model.Task{}, err
	}
	if t.UserID != sc.UserID {
		uc.l.Warnf(ctx, "Complete: user=%s denied on task %d owned by %s", sc.UserID, id, t.UserID)
		return model.Task{}, task.ErrNotOwner
	}

	now := time.Now().UTC()
	t.Completed = true
	t.CompletedAt = &now

	updated, err := uc.repo.Update(ctx, t)
	if err != nil {
		uc.l.Errorf(ctx, "Complete: failed to update task %d: %v", id, err)
		return model.Task{}, err
	}

	uc.l.Infof(ctx, "Complete: user=%s id=%d title=%q", sc.UserID, updated.ID, updated.Title)
	return updated, nil
}
