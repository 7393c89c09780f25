package usecase

import (
	"context"
	"errors"
	"strings"

	"conversational-task-management/internal/model"
	"conversational-task-management/internal/task"
	"conversational-task-management/internal/task/repository"
)

// Update modifies the provided fields of an existing task. Nil fields keep
// their stored values.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input task.UpdateInput) (model.Task, error) {
	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return model.Task{}, task.ErrTitleRequired
		}
		if len(title) > maxTitleLen {
			return model.Task{}, task.ErrTitleTooLong
		}
	}
	if input.Description != nil && len(*input.Description) > maxDescriptionLen {
		return model.Task{}, task.ErrDescriptionTooLong
	}
	if input.Priority != nil && !model.ValidPriority(strings.ToLower(*input.Priority)) {
		return model.Task{}, task.ErrInvalidPriority
	}
	if input.Category != nil && len(*input.Category) > maxCategoryLen {
		return model.Task{}, task.ErrCategoryTooLong
	}

	t, err := uc.repo.Get(ctx, input.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Task{}, task.ErrNotFound
		}
		uc.l.Errorf(ctx, "Update: failed to load task %d: %v", input.ID, err)
		return model.Task{}, err
	}
	if t.UserID != sc.UserID {
		uc.l.Warnf(ctx, "Update: user=%s denied on task %d owned by %s", sc.UserID, input.ID, t.UserID)
		return model.Task{}, task.ErrNotOwner
	}

	if input.Title != nil {
		t.Title = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		t.Description = strings.TrimSpace(*input.Description)
	}
	if input.DueDate != nil {
		t.DueDate = input.DueDate
	}
	if input.Priority != nil {
		t.Priority = strings.ToLower(*input.Priority)
	}
	if input.Category != nil {
		t.Category = strings.TrimSpace(*input.Category)
	}

	updated, err := uc.repo.Update(ctx, t)
	if err != nil {
		uc.l.Errorf(ctx, "Update: failed to update task %d: %v", input.ID, err)
		return model.Task{}, err
	}

	uc.l.Infof(ctx, "Update: user=%s id=%d", sc.UserID, updated.ID)
	return updated, nil
}
