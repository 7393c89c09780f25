// Package memory provides an in-process task store. It backs the task
// usecase in development and tests; the repository interface is the seam for
// a durable store.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"conversational-task-management/internal/model"
	"conversational-task-management/internal/task/repository"
)

type implRepository struct {
	mu     sync.RWMutex
	tasks  map[int]model.Task
	nextID int

	// nowFunc is swappable for deterministic tests.
	nowFunc func() time.Time
}

// New creates an empty in-memory task repository.
func New() *implRepository {
	return &implRepository{
		tasks:   make(map[int]model.Task),
		nextID:  1,
		nowFunc: time.Now,
	}
}

func (r *implRepository) Create(_ context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.nowFunc().UTC()
	t := model.Task{
		ID:          r.nextID,
		UserID:      opt.UserID,
		Title:       opt.Title,
		Description: opt.Description,
		DueDate:     opt.DueDate,
		Priority:    opt.Priority,
		Category:    opt.Category,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	r.tasks[t.ID] = t
	r.nextID++
	return t, nil
}

func (r *implRepository) Get(_ context.Context, id int) (model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.tasks[id]
	if !ok {
		return model.Task{}, repository.ErrNotFound
	}
	return t, nil
}

func (r *implRepository) List(_ context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Task, 0)
	for _, t := range r.tasks {
		if t.UserID != opt.UserID {
			continue
		}
		switch opt.Status {
		case "active":
			if t.Completed {
				continue
			}
		case "completed":
			if !t.Completed {
				continue
			}
		}
		if opt.DueBefore != nil {
			if t.DueDate == nil || t.DueDate.After(*opt.DueBefore) {
				continue
			}
		}
		out = append(out, t)
	}

	// Newest first; ID breaks creation-time ties deterministically.
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})

	if opt.Limit > 0 && len(out) > opt.Limit {
		out = out[:opt.Limit]
	}
	return out, nil
}

func (r *implRepository) Update(_ context.Context, t model.Task) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tasks[t.ID]; !ok {
		return model.Task{}, repository.ErrNotFound
	}
	t.UpdatedAt = r.nowFunc().UTC()
	r.tasks[t.ID] = t
	return t, nil
}

func (r *implRepository) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tasks[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.tasks, id)
	return nil
}

func (r *implRepository) SearchByTitle(_ context.Context, userID, fragment string) ([]model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	needle := strings.ToLower(strings.TrimSpace(fragment))
	if needle == "" {
		return nil, nil
	}

	out := make([]model.Task, 0)
	for _, t := range r.tasks {
		if t.UserID != userID {
			continue
		}
		if strings.Contains(strings.ToLower(t.Title), needle) {
			out = append(out, t)
		}
	}

	// Insertion order.
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
