package usecase

import (
	"context"
	"strings"

	"conversational-task-management/internal/model"
	"conversational-task-management/internal/task"
)

// SearchByTitle finds the user's tasks whose title contains the fragment,
// case-insensitively, in store order.
func (uc *implUseCase) SearchByTitle(ctx context.Context, sc model.Scope, fragment string) ([]model.Task, error) {
	if strings.TrimSpace(fragment) == "" {
		return nil, task.ErrEmptyFragment
	}

	matches, err := uc.repo.SearchByTitle(ctx, sc.UserID, fragment)
	if err != nil {
		uc.l.Errorf(ctx, "SearchByTitle: failed for user=%s fragment=%q: %v", sc.UserID, fragment, err)
		return nil, err
	}

	uc.l.Debugf(ctx, "SearchByTitle: user=%s fragment=%q matches=%d", sc.UserID, fragment, len(matches))
	return matches, nil
}
