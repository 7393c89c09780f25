package usecase

import (
	"context"
	"strings"
	"time"

	"conversational-task-management/internal/model"
	"conversational-task-management/internal/task"
	"conversational-task-management/internal/task/repository"
	"conversational-task-management/pkg/gcalendar"
)

// Create validates the input and stores a new task.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateInput) (model.Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return model.Task{}, task.ErrTitleRequired
	}
	if len(title) > maxTitleLen {
		return model.Task{}, task.ErrTitleTooLong
	}

	description := strings.TrimSpace(input.Description)
	if len(description) > maxDescriptionLen {
		return model.Task{}, task.ErrDescriptionTooLong
	}

	priority := strings.ToLower(strings.TrimSpace(input.Priority))
	if priority == "" {
		priority = model.PriorityMedium
	}
	if !model.ValidPriority(priority) {
		return model.Task{}, task.ErrInvalidPriority
	}

	category := strings.TrimSpace(input.Category)
	if len(category) > maxCategoryLen {
		return model.Task{}, task.ErrCategoryTooLong
	}

	created, err := uc.repo.Create(ctx, repository.CreateTaskOptions{
		UserID:      sc.UserID,
		Title:       title,
		Description: description,
		DueDate:     input.DueDate,
		Priority:    priority,
		Category:    category,
	})
	if err != nil {
		uc.l.Errorf(ctx, "Create: failed to store task %q: %v", title, err)
		return model.Task{}, err
	}

	uc.l.Infof(ctx, "Create: user=%s id=%d title=%q priority=%s", sc.UserID, created.ID, created.Title, created.Priority)

	// Non-blocking mirror; a calendar failure never fails the create.
	uc.tryMirrorToCalendar(ctx, created)

	return created, nil
}

func (uc *implUseCase) tryMirrorToCalendar(ctx context.Context, t model.Task) {
	if uc.calendar == nil || t.DueDate == nil {
		return
	}

	start := *t.DueDate
	_, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  "primary",
		Summary:     t.Title,
		Description: t.Description,
		StartTime:   start,
		EndTime:     start.Add(defaultEventMinutes * time.Minute),
		Timezone:    uc.timezone,
	})
	if err != nil {
		uc.l.Warnf(ctx, "Create: calendar mirror failed for task %d (non-fatal): %v", t.ID, err)
		return
	}
	uc.l.Infof(ctx, "Create: mirrored task %d to calendar", t.ID)
}
