package resolve_test

import (
	"context"
	"errors"
	"testing"

	"conversational-task-management/internal/chat/resolve"
	"conversational-task-management/internal/chat/state"
	"conversational-task-management/internal/model"
)

type mockLookup struct {
	searchFunc func(ctx context.Context, sc model.Scope, fragment string) ([]model.Task, error)
}

func (m *mockLookup) SearchByTitle(ctx context.Context, sc model.Scope, fragment string) ([]model.Task, error) {
	if m.searchFunc == nil {
		return nil, nil
	}
	return m.searchFunc(ctx, sc, fragment)
}

var scope = model.Scope{UserID: "user-1"}

func TestResolvePositional(t *testing.T) {
	r := resolve.NewResolver(&mockLookup{})
	prior := state.State{
		TaskMapping: state.TaskMapping{1: 42, 2: 7},
		TaskCount:   2,
	}

	id, ok := r.Resolve(context.Background(), scope, "complete task 1", prior)
	if !ok {
		t.Fatal("expected reference to resolve")
	}
	if id != 42 {
		t.Errorf("id = %d, want positional lookup to yield 42, not literal 1", id)
	}
}

func TestResolveDirectIDWithoutMapping(t *testing.T) {
	r := resolve.NewResolver(&mockLookup{})

	id, ok := r.Resolve(context.Background(), scope, "complete task 36", state.State{})
	if !ok {
		t.Fatal("expected reference to resolve")
	}
	if id != 36 {
		t.Errorf("id = %d, want literal ID 36", id)
	}
}

func TestResolveNumberOutsideMappingRange(t *testing.T) {
	r := resolve.NewResolver(&mockLookup{})
	prior := state.State{
		TaskMapping: state.TaskMapping{1: 42, 2: 7},
		TaskCount:   2,
	}

	// 36 > task_count, so the number falls through to the direct-ID tier.
	id, ok := r.Resolve(context.Background(), scope, "delete task 36", prior)
	if !ok || id != 36 {
		t.Errorf("got (%d, %v), want (36, true)", id, ok)
	}
}

func TestResolveNumberFormats(t *testing.T) {
	r := resolve.NewResolver(&mockLookup{})

	tests := []struct {
		message string
		want    int
	}{
		{"mark task 1 as completed", 1},
		{"delete task #3", 3},
		{"complete id 12", 12},
	}
	for _, tc := range tests {
		id, ok := r.Resolve(context.Background(), scope, tc.message, state.State{})
		if !ok || id != tc.want {
			t.Errorf("Resolve(%q) = (%d, %v), want (%d, true)", tc.message, id, ok, tc.want)
		}
	}
}

func TestResolveByTitle(t *testing.T) {
	lookup := &mockLookup{
		searchFunc: func(_ context.Context, _ model.Scope, fragment string) ([]model.Task, error) {
			if fragment != "lunch" {
				t.Errorf("fragment = %q, want %q", fragment, "lunch")
			}
			return []model.Task{{ID: 9, Title: "Lunch with Bob"}}, nil
		},
	}
	r := resolve.NewResolver(lookup)

	id, ok := r.Resolve(context.Background(), scope, "mark the lunch task as done", state.State{})
	if !ok || id != 9 {
		t.Errorf("got (%d, %v), want (9, true)", id, ok)
	}
}

func TestResolveTitlePrefersExactMatch(t *testing.T) {
	lookup := &mockLookup{
		searchFunc: func(_ context.Context, _ model.Scope, _ string) ([]model.Task, error) {
			return []model.Task{
				{ID: 5, Title: "Lunch with Bob"},
				{ID: 8, Title: "Lunch"},
			}, nil
		},
	}
	r := resolve.NewResolver(lookup)

	id, ok := r.Resolve(context.Background(), scope, "complete the lunch task", state.State{})
	if !ok || id != 8 {
		t.Errorf("got (%d, %v), want exact-title match 8", id, ok)
	}
}

func TestResolveTitleFirstMatchTieBreak(t *testing.T) {
	lookup := &mockLookup{
		searchFunc: func(_ context.Context, _ model.Scope, _ string) ([]model.Task, error) {
			return []model.Task{
				{ID: 5, Title: "Lunch with Bob"},
				{ID: 6, Title: "Team lunch prep"},
			}, nil
		},
	}
	r := resolve.NewResolver(lookup)

	id, ok := r.Resolve(context.Background(), scope, "complete the lunch task", state.State{})
	if !ok || id != 5 {
		t.Errorf("got (%d, %v), want first match 5", id, ok)
	}
}

func TestResolveTitleAtEndOfMessage(t *testing.T) {
	lookup := &mockLookup{
		searchFunc: func(_ context.Context, _ model.Scope, fragment string) ([]model.Task, error) {
			if fragment != "buy groceries" {
				t.Errorf("fragment = %q, want %q", fragment, "buy groceries")
			}
			return []model.Task{{ID: 3, Title: "Buy groceries"}}, nil
		},
	}
	r := resolve.NewResolver(lookup)

	id, ok := r.Resolve(context.Background(), scope, "delete buy groceries", state.State{})
	if !ok || id != 3 {
		t.Errorf("got (%d, %v), want (3, true)", id, ok)
	}
}

func TestResolveUnresolved(t *testing.T) {
	r := resolve.NewResolver(&mockLookup{})

	tests := []string{
		"hello there",
		"",
		"what should I do next",
	}
	for _, message := range tests {
		if id, ok := r.Resolve(context.Background(), scope, message, state.State{}); ok {
			t.Errorf("Resolve(%q) = (%d, true), want unresolved", message, id)
		}
	}
}

func TestResolveSearchFailureFallsThrough(t *testing.T) {
	lookup := &mockLookup{
		searchFunc: func(_ context.Context, _ model.Scope, _ string) ([]model.Task, error) {
			return nil, errors.New("store unavailable")
		},
	}
	r := resolve.NewResolver(lookup)

	if id, ok := r.Resolve(context.Background(), scope, "complete the lunch task", state.State{}); ok {
		t.Errorf("got (%d, true), want unresolved on search failure", id)
	}
}
