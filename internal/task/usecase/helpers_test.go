package usecase_test

import (
	"context"

	"conversational-task-management/internal/model"
	"conversational-task-management/internal/task/repository"
	"conversational-task-management/pkg/gcalendar"
)

// mockLogger satisfies pkg/log.Logger with no-ops.
type mockLogger struct{}

func (mockLogger) Debug(context.Context, ...any)           {}
func (mockLogger) Debugf(context.Context, string, ...any)  {}
func (mockLogger) Info(context.Context, ...any)            {}
func (mockLogger) Infof(context.Context, string, ...any)   {}
func (mockLogger) Warn(context.Context, ...any)            {}
func (mockLogger) Warnf(context.Context, string, ...any)   {}
func (mockLogger) Error(context.Context, ...any)           {}
func (mockLogger) Errorf(context.Context, string, ...any)  {}
func (mockLogger) Fatal(context.Context, ...any)           {}
func (mockLogger) Fatalf(context.Context, string, ...any)  {}
func (mockLogger) DPanic(context.Context, ...any)          {}
func (mockLogger) DPanicf(context.Context, string, ...any) {}
func (mockLogger) Panic(context.Context, ...any)           {}
func (mockLogger) Panicf(context.Context, string, ...any)  {}

// mockRepo implements repository.TaskRepository with injectable behavior.
type mockRepo struct {
	createFunc func(opt repository.CreateTaskOptions) (model.Task, error)
	getFunc    func(id int) (model.Task, error)
	listFunc   func(opt repository.ListTasksOptions) ([]model.Task, error)
	updateFunc func(t model.Task) (model.Task, error)
	deleteFunc func(id int) error
	searchFunc func(userID, fragment string) ([]model.Task, error)
}

func (m *mockRepo) Create(_ context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	if m.createFunc == nil {
		return model.Task{ID: 1, UserID: opt.UserID, Title: opt.Title, Priority: opt.Priority, Category: opt.Category, DueDate: opt.DueDate, Description: opt.Description}, nil
	}
	return m.createFunc(opt)
}

func (m *mockRepo) Get(_ context.Context, id int) (model.Task, error) {
	if m.getFunc == nil {
		return model.Task{}, repository.ErrNotFound
	}
	return m.getFunc(id)
}

func (m *mockRepo) List(_ context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	if m.listFunc == nil {
		return nil, nil
	}
	return m.listFunc(opt)
}

func (m *mockRepo) Update(_ context.Context, t model.Task) (model.Task, error) {
	if m.updateFunc == nil {
		return t, nil
	}
	return m.updateFunc(t)
}

func (m *mockRepo) Delete(_ context.Context, id int) error {
	if m.deleteFunc == nil {
		return nil
	}
	return m.deleteFunc(id)
}

func (m *mockRepo) SearchByTitle(_ context.Context, userID, fragment string) ([]model.Task, error) {
	if m.searchFunc == nil {
		return nil, nil
	}
	return m.searchFunc(userID, fragment)
}

// mockCalendarClient records mirror attempts.
type mockCalendarClient struct {
	createFunc func(req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
	calls      int
}

func (m *mockCalendarClient) CreateEvent(_ context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	m.calls++
	if m.createFunc == nil {
		return &gcalendar.Event{ID: "evt-1"}, nil
	}
	return m.createFunc(req)
}
