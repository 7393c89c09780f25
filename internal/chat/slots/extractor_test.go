package slots_test

import (
	"testing"
	"time"

	"conversational-task-management/internal/chat/intent"
	"conversational-task-management/internal/chat/slots"
	"conversational-task-management/internal/chat/state"
	"conversational-task-management/pkg/datemath"
)

// Saturday, so "next monday" and friends resolve deterministically.
var now = time.Date(2026, time.January, 17, 10, 0, 0, 0, time.UTC)

func newExtractor(t *testing.T) *slots.Extractor {
	t.Helper()
	p, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	return slots.NewExtractor(p)
}

func TestExtractStructuredFields(t *testing.T) {
	e := newExtractor(t)

	got := e.Extract("Task Title: Buy milk, Priority: high, Category: shopping", state.State{}, now)
	if got.Title != "Buy milk" {
		t.Errorf("title = %q, want %q", got.Title, "Buy milk")
	}
	if got.Priority != "high" {
		t.Errorf("priority = %q, want high", got.Priority)
	}
	if got.Category != "shopping" {
		t.Errorf("category = %q, want shopping", got.Category)
	}
}

func TestExtractStructuredDueDate(t *testing.T) {
	e := newExtractor(t)

	got := e.Extract("Due date: tomorrow", state.State{Intent: intent.IntentAddingTask}, now)
	if got.DueDate == "" {
		t.Fatal("expected due date to be filled")
	}
	due, err := time.Parse(time.RFC3339, got.DueDate)
	if err != nil {
		t.Fatalf("due date not RFC3339: %v", err)
	}
	if due.Day() != 18 {
		t.Errorf("due = %v, want Jan 18", due)
	}
	// A field answer must not leak into the title.
	if got.Title != "" {
		t.Errorf("title should stay empty, got %q", got.Title)
	}
}

func TestExtractTitleTemplates(t *testing.T) {
	e := newExtractor(t)

	tests := []struct {
		name    string
		message string
		want    string
	}{
		{"Add to my tasks", "Add buy milk to my tasks", "buy milk"},
		{"Add a task to", "add a task to buy groceries tomorrow", "buy groceries"},
		{"Add task colon", "add task: finish the report", "finish the report"},
		{"Remind me", "remind me to call mom tomorrow", "call mom"},
		{"Roman Urdu suffix", "doodh lena ka task banao", "doodh lena"},
		{"Roman Urdu prefix", "task banao doodh lena", "doodh lena"},
		{"Karna hai", "gari dhona karna hai", "gari dhona"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := e.Extract(tc.message, state.State{}, now)
			if got.Title != tc.want {
				t.Errorf("Extract(%q).Title = %q, want %q", tc.message, got.Title, tc.want)
			}
		})
	}
}

func TestExtractUrduScriptTitle(t *testing.T) {
	e := newExtractor(t)

	got := e.Extract("دودھ لینا کا کام شامل کرو", state.State{}, now)
	if got.Title != "دودھ لینا" {
		t.Errorf("title = %q, want %q", got.Title, "دودھ لینا")
	}
}

func TestExtractTitleStripsTrailingSlots(t *testing.T) {
	e := newExtractor(t)

	got := e.Extract("add a task to buy groceries tomorrow, high priority", state.State{}, now)
	if got.Title != "buy groceries" {
		t.Errorf("title = %q, want %q", got.Title, "buy groceries")
	}
	if got.Priority != "high" {
		t.Errorf("priority = %q, want high", got.Priority)
	}
	if got.DueDate == "" {
		t.Error("expected due date from trailing temporal phrase")
	}
}

func TestExtractBareAnswerMidDialogue(t *testing.T) {
	e := newExtractor(t)
	prior := state.State{Intent: intent.IntentAddingTask}

	got := e.Extract("call the dentist", prior, now)
	if got.Title != "call the dentist" {
		t.Errorf("title = %q, want %q", got.Title, "call the dentist")
	}
}

func TestExtractBareAnswerRequiresAddingState(t *testing.T) {
	e := newExtractor(t)

	// No dialogue in flight: a bare phrase is not a title.
	got := e.Extract("call the dentist", state.State{}, now)
	if got.Title != "" {
		t.Errorf("title should stay empty without adding_task state, got %q", got.Title)
	}
}

func TestExtractCommandNeverBecomesTitle(t *testing.T) {
	e := newExtractor(t)
	prior := state.State{Intent: intent.IntentAddingTask}

	got := e.Extract("add a task please", prior, now)
	if got.Title != "" {
		t.Errorf("command message must not become a title, got %q", got.Title)
	}
}

func TestExtractDoesNotOverwriteTitle(t *testing.T) {
	e := newExtractor(t)
	prior := state.State{Intent: intent.IntentAddingTask, Title: "buy milk"}

	got := e.Extract("Task Title: something else", prior, now)
	if got.Title != "buy milk" {
		t.Errorf("title = %q, want the prior %q kept", got.Title, "buy milk")
	}
}

func TestExtractStructuredPriorityOverwrites(t *testing.T) {
	e := newExtractor(t)
	prior := state.State{Intent: intent.IntentAddingTask, Title: "buy milk", Priority: "low"}

	got := e.Extract("priority: high", prior, now)
	if got.Priority != "high" {
		t.Errorf("priority = %q, want structured field to overwrite", got.Priority)
	}
}

func TestExtractNaturalPriorityKeepsPrior(t *testing.T) {
	e := newExtractor(t)
	prior := state.State{Intent: intent.IntentAddingTask, Title: "buy milk", Priority: "low"}

	got := e.Extract("this is urgent", prior, now)
	if got.Priority != "low" {
		t.Errorf("priority = %q, natural mention must not overwrite", got.Priority)
	}
}

func TestExtractBilingualPriorityAndCategory(t *testing.T) {
	e := newExtractor(t)

	got := e.Extract("yeh zaroori hai, kharidari", state.State{}, now)
	if got.Priority != "high" {
		t.Errorf("priority = %q, want high from zaroori", got.Priority)
	}
	if got.Category != "shopping" {
		t.Errorf("category = %q, want shopping from kharidari", got.Category)
	}
}

func TestExtractNaturalDueDate(t *testing.T) {
	e := newExtractor(t)

	got := e.Extract("submit report agle hafte", state.State{}, now)
	if got.DueDate == "" {
		t.Fatal("expected due date from agle hafte")
	}
	due, _ := time.Parse(time.RFC3339, got.DueDate)
	if due.Day() != 24 {
		t.Errorf("due = %v, want Jan 24", due)
	}
}
