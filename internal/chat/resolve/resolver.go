// Package resolve turns an utterance that refers to an existing task into a
// durable task ID.
package resolve

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"conversational-task-management/internal/chat/state"
	"conversational-task-management/internal/model"
)

// TaskLookup is the search collaborator. Implementations match the fragment
// against task titles case-insensitively, scoped to the user, and return
// candidates in store-defined order.
type TaskLookup interface {
	SearchByTitle(ctx context.Context, sc model.Scope, fragment string) ([]model.Task, error)
}

// Resolver resolves task references with a three-tier priority: positional
// lookup through the last list's position mapping, then title search, then
// the raw number as a durable ID.
type Resolver struct {
	lookup TaskLookup
}

func NewResolver(lookup TaskLookup) *Resolver {
	return &Resolver{lookup: lookup}
}

var (
	// A bare number after "task" or "id", with an optional #.
	numberRe = regexp.MustCompile(`(?i)\b(?:task|id)\s*#?(\d+)\b`)

	// Verb-anchored title fragments, tried only when no number was found.
	titlePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:complete|delete|mark|finish)\s+(?:the\s+)?([a-zA-Z][a-zA-Z0-9\s]+?)\s+(?:task|as)\b`),
		regexp.MustCompile(`(?i)(?:complete|delete|mark|finish)\s+([a-zA-Z][a-zA-Z0-9\s]+)$`),
	}
)

// Resolve extracts a task reference from message and resolves it against
// prior state and the task store. The second return is false when no
// reference could be identified at all.
//
// A low number that equals a valid position is always treated as positional
// when a mapping exists, even if the user meant a literal ID. That ambiguity
// is accepted: positions are what the user just saw.
func (r *Resolver) Resolve(ctx context.Context, sc model.Scope, message string, prior state.State) (int, bool) {
	if number, ok := extractNumber(message); ok {
		if len(prior.TaskMapping) > 0 && number >= 1 && number <= prior.TaskCount {
			if id, found := prior.TaskMapping[number]; found {
				return id, true
			}
		}
		// No usable mapping: the number is the durable ID itself.
		return number, true
	}

	fragment := extractTitleFragment(message)
	if fragment == "" {
		return 0, false
	}

	matches, err := r.lookup.SearchByTitle(ctx, sc, fragment)
	if err != nil || len(matches) == 0 {
		// A failed search is indistinguishable from no match here; the
		// orchestrator reports the reference as unresolved either way.
		return 0, false
	}
	for _, task := range matches {
		if strings.EqualFold(task.Title, fragment) {
			return task.ID, true
		}
	}
	return matches[0].ID, true
}

func extractNumber(message string) (int, bool) {
	m := numberRe.FindStringSubmatch(message)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

func extractTitleFragment(message string) string {
	for _, p := range titlePatterns {
		if m := p.FindStringSubmatch(message); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}
