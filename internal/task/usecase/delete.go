package usecase

import (
	"context"
	"errors"

	"conversational-task-management/internal/model"
	"conversational-task-management/internal/task"
	"conversational-task-management/internal/task/repository"
)

// Delete removes a task permanently. A second delete of the same ID returns
// ErrNotFound.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id int) error {
	t, err := uc.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return task.ErrNotFound
		}
		uc.l.Errorf(ctx, "Delete: failed to load task %d: %v", id, err)
		return err
	}
	if t.UserID != sc.UserID {
		uc.l.Warnf(ctx, "Delete: user=%s denied on task %d owned by %s", sc.UserID, id, t.UserID)
		return task.ErrNotOwner
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return task.ErrNotFound
		}
		uc.l.Errorf(ctx, "Delete: failed to delete task %d: %v", id, err)
		return err
	}

	uc.l.Infof(ctx, "Delete: user=%s id=%d title=%q", sc.UserID, id, t.Title)
	return nil
}
