// Package state holds the dialogue state carried between chat turns.
//
// The state round-trips through a JSON serialization boundary as an opaque
// blob on the most recent assistant message. JSON stringifies integer map
// keys, so decoding must coerce key types back instead of assuming they
// survived unchanged.
package state

import (
	"encoding/json"
	"strconv"
	"strings"

	"conversational-task-management/internal/chat/intent"
)

// TaskMapping translates a 1-based display position from the last list
// operation to a durable task identifier.
type TaskMapping map[int]int

// UnmarshalJSON coerces stringified keys (and, defensively, stringified
// values) back to integers. Unconvertible entries are skipped, never fatal.
func (m *TaskMapping) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		// Malformed mapping degrades to empty rather than failing the turn.
		*m = TaskMapping{}
		return nil
	}

	out := make(TaskMapping, len(raw))
	for k, v := range raw {
		pos, err := strconv.Atoi(strings.TrimSpace(k))
		if err != nil {
			continue
		}
		switch val := v.(type) {
		case float64:
			out[pos] = int(val)
		case string:
			if id, convErr := strconv.Atoi(strings.TrimSpace(val)); convErr == nil {
				out[pos] = id
			}
		case json.Number:
			if id, convErr := strconv.Atoi(val.String()); convErr == nil {
				out[pos] = id
			}
		}
	}
	*m = out
	return nil
}

// State is the dialogue state for one conversation, fully replaced each turn
// except during multi-turn slot filling for adding_task, where newly
// extracted slots merge into the carried-over partial state.
type State struct {
	Intent intent.Intent `json:"intent,omitempty"`

	// Partially filled task slots.
	Title    string `json:"title,omitempty"`
	Priority string `json:"priority,omitempty"`
	Category string `json:"category,omitempty"`
	DueDate  string `json:"due_date,omitempty"` // ISO-8601

	// Position->ID mapping from the last list operation.
	TaskMapping      TaskMapping `json:"task_mapping,omitempty"`
	TaskCount        int         `json:"task_count,omitempty"`
	MappingCreatedAt string      `json:"mapping_created_at,omitempty"` // advisory, no expiry enforced
}

// IsEmpty reports whether the state carries nothing across turns.
func (s State) IsEmpty() bool {
	return s.Intent == "" && s.Title == "" && s.Priority == "" &&
		s.Category == "" && s.DueDate == "" && len(s.TaskMapping) == 0
}

// IsAddingTask reports whether the dialogue is mid slot-filling for a new task.
func (s State) IsAddingTask() bool {
	return s.Intent == intent.IntentAddingTask
}

// ReadyToCreate reports whether enough slots are filled to create the task.
// Title is the only required slot; everything else has a default.
func (s State) ReadyToCreate() bool {
	return s.Title != ""
}

// Encode serializes the state for persistence on an assistant message.
// An empty state encodes to nil so no blob is stored at all.
func (s State) Encode() []byte {
	if s.IsEmpty() {
		return nil
	}
	data, err := json.Marshal(s)
	if err != nil {
		return nil
	}
	return data
}

// Decode reads a persisted state blob. Any decode failure yields an empty
// state; a broken blob must never break the turn.
func Decode(blob []byte) State {
	if len(blob) == 0 {
		return State{}
	}
	var s State
	if err := json.Unmarshal(blob, &s); err != nil {
		return State{}
	}
	return s
}
