// Package slots extracts task fields (title, priority, category, due date)
// from a chat message, merging them into the dialogue state carried over
// from previous turns.
package slots

import (
	"regexp"
	"strings"
	"time"

	"conversational-task-management/internal/chat/intent"
	"conversational-task-management/internal/chat/state"
	"conversational-task-management/internal/model"
	"conversational-task-management/pkg/datemath"
)

// Extractor fills task slots from free-form bilingual messages.
type Extractor struct {
	dates *datemath.Parser
}

// NewExtractor creates a slot extractor backed by the given date parser.
func NewExtractor(dates *datemath.Parser) *Extractor {
	return &Extractor{dates: dates}
}

// Structured-field patterns. These always win over natural-language
// fallbacks for their slot.
var (
	titleFieldRe    = regexp.MustCompile(`(?i)(?:task\s+)?title\s*[:\-]\s*(.+?)\s*(?:$|\n|,\s*(?:priority|category|due))`)
	priorityFieldRe = regexp.MustCompile(`(?i)priority\s*[:\-]\s*([^\s,.!؟?]+)`)
	categoryFieldRe = regexp.MustCompile(`(?i)category\s*[:\-]\s*([^,\n.!؟?]+)`)
	dueFieldRe      = regexp.MustCompile(`(?i)due(?:\s*date)?\s*[:\-]\s*(.+?)\s*(?:$|\n|,)`)
)

// Natural-language title templates, tried in order. Urdu forms first, then
// English; the capture is the raw title before keyword trimming.
var titleTemplates = []*regexp.Regexp{
	// Urdu script: "X کا کام شامل کرو" / "X کا ٹاسک بناؤ"
	regexp.MustCompile(`(.+?)\s*کا\s*(?:کام|ٹاسک)\s*(?:شامل|بناؤ|بنائیں)`),
	// Roman Urdu: "X ka task banao", "task banao X", "X karna hai"
	regexp.MustCompile(`(?i)(.+?)\s+ka\s+task\s+(?:banao|bana\s+do)`),
	regexp.MustCompile(`(?i)task\s+(?:banao|bana\s+do)\s+(.+)$`),
	regexp.MustCompile(`(?i)(.+?)\s+karna\s+hai`),
	// English structured-ish: "add task: X"
	regexp.MustCompile(`(?i)\badd\s+(?:a\s+)?(?:new\s+)?task\s*[:\-]\s*(.+)$`),
	// "add X to my tasks"
	regexp.MustCompile(`(?i)\badd\s+(.+?)\s+to\s+(?:my\s+)?(?:task|todo)s?(?:\s+list)?\b`),
	// "add a task to X" / "create a task for X"
	regexp.MustCompile(`(?i)\badd\s+(?:a\s+)?(?:new\s+)?task\s+(?:to\s+|for\s+|called\s+|named\s+)?(.+)$`),
	regexp.MustCompile(`(?i)\bcreate\s+(?:a\s+)?(?:new\s+)?task\s+(?:to\s+|for\s+|called\s+|named\s+)?(.+)$`),
	regexp.MustCompile(`(?i)\bremind\s+me\s+to\s+(.+)$`),
}

// trailingNoiseRe strips temporal and priority phrases off the end of an
// extracted title, e.g. "buy milk tomorrow" or "finish report high priority".
var trailingNoiseRe = regexp.MustCompile(`(?i)\s*(?:` +
	`(?:(?:by|due|on|before|until|for|tak|ko)\s+)?` +
	`(?:today|tomorrow|next\s+week|aaj|kal|agle\s+hafte|` +
	`monday|tuesday|wednesday|thursday|friday|saturday|sunday|` +
	`pir|somwar|mangal|budh|jumerat|jumma|hafta|itwar|` +
	`آج|کل|اگلے\s+ہفتے|\d{4}-\d{2}-\d{2})` +
	`|(?:with\s+)?(?:high|medium|low)\s+priority` +
	`|priority\s+(?:high|medium|low)` +
	`)\s*[.،,!]?\s*$`)

// politenessRe removes filler that must never end up inside a title.
var politenessRe = regexp.MustCompile(`(?i)\b(?:please|plz|kindly|meherbani\s+se)\b|برائے\s*مہربانی`)

// fieldLabelRe removes any structured "label: value" segment when the whole
// cleaned message is about to become the title.
var fieldLabelRe = regexp.MustCompile(`(?i)(?:task\s+title|title|priority|category|due(?:\s*date)?)\s*[:\-]\s*[^,\n]*`)

// temporalAnywhereRe removes standalone date phrases when cleaning a
// mid-dialogue answer into a title.
var temporalAnywhereRe = regexp.MustCompile(`(?i)\b(?:today|tomorrow|next\s+week|aaj|kal|agle\s+hafte)\b|آج|کل|اگلے\s+ہفتے`)

// Priority vocabulary, bilingual, mapped to canonical lowercase tokens.
var priorityVocab = []struct {
	re    *regexp.Regexp
	value string
}{
	{regexp.MustCompile(`(?i)\b(?:high|urgent|zaroori)\s+priority\b`), model.PriorityHigh},
	{regexp.MustCompile(`(?i)\bpriority\s+high\b`), model.PriorityHigh},
	{regexp.MustCompile(`(?i)\burgent\b`), model.PriorityHigh},
	{regexp.MustCompile(`(?i)\bzaroori\b`), model.PriorityHigh},
	{regexp.MustCompile(`ضروری|اہم`), model.PriorityHigh},
	{regexp.MustCompile(`(?i)\bmedium\s+priority\b`), model.PriorityMedium},
	{regexp.MustCompile(`(?i)\bpriority\s+medium\b`), model.PriorityMedium},
	{regexp.MustCompile(`درمیانہ`), model.PriorityMedium},
	{regexp.MustCompile(`(?i)\blow\s+priority\b`), model.PriorityLow},
	{regexp.MustCompile(`(?i)\bpriority\s+low\b`), model.PriorityLow},
	{regexp.MustCompile(`(?i)\bkam\s+zaroori\b`), model.PriorityLow},
	{regexp.MustCompile(`کم\s*ضروری`), model.PriorityLow},
}

// Category vocabulary: personal, work, shopping in three scripts.
var categoryVocab = []struct {
	re    *regexp.Regexp
	value string
}{
	{regexp.MustCompile(`(?i)\bpersonal\b`), "personal"},
	{regexp.MustCompile(`(?i)\bzati\b`), "personal"},
	{regexp.MustCompile(`ذاتی`), "personal"},
	{regexp.MustCompile(`(?i)\bwork\b`), "work"},
	{regexp.MustCompile(`(?i)\bdaftar\b`), "work"},
	{regexp.MustCompile(`دفتر`), "work"},
	{regexp.MustCompile(`(?i)\bshopping\b`), "shopping"},
	{regexp.MustCompile(`(?i)\bkharidari\b`), "shopping"},
	{regexp.MustCompile(`خریداری`), "shopping"},
}

// priorityAliases canonicalizes a structured priority value.
var priorityAliases = map[string]string{
	"high":    model.PriorityHigh,
	"urgent":  model.PriorityHigh,
	"zyada":   model.PriorityHigh,
	"zaroori": model.PriorityHigh,
	"زیادہ":   model.PriorityHigh,
	"اہم":     model.PriorityHigh,
	"medium":  model.PriorityMedium,
	"normal":  model.PriorityMedium,
	"درمیانہ": model.PriorityMedium,
	"low":     model.PriorityLow,
	"kam":     model.PriorityLow,
	"کم":      model.PriorityLow,
}

const maxCategoryLen = 50

// Extract merges slots found in message into a copy of prior. Structured
// fields win over natural-language fallbacks and may overwrite a previously
// filled slot; title is the exception: it is only filled when absent.
func (e *Extractor) Extract(message string, prior state.State, now time.Time) state.State {
	merged := prior

	e.extractTitle(message, &merged)
	e.extractPriority(message, &merged)
	e.extractCategory(message, &merged)
	e.extractDueDate(message, &merged, now)

	return merged
}

func (e *Extractor) extractTitle(message string, s *state.State) {
	if s.Title != "" {
		return
	}

	// Structured field first.
	if m := titleFieldRe.FindStringSubmatch(message); m != nil {
		if title := strings.TrimSpace(m[1]); title != "" {
			s.Title = title
			return
		}
	}

	// Phrase templates, Urdu then English.
	for _, re := range titleTemplates {
		m := re.FindStringSubmatch(message)
		if m == nil {
			continue
		}
		if title := trimSlotKeywords(m[1]); title != "" {
			s.Title = title
			return
		}
	}

	// Mid slot-filling: the whole cleaned message is the answer to
	// "what's the task called?". Only a message with no intent of its own
	// qualifies, otherwise "add a task" would become its own title.
	if s.IsAddingTask() && intent.Classify(message) == intent.IntentNone {
		if title := cleanBareAnswer(message); title != "" {
			s.Title = title
		}
	}
}

func (e *Extractor) extractPriority(message string, s *state.State) {
	// Structured field targets the slot explicitly and may overwrite.
	if m := priorityFieldRe.FindStringSubmatch(message); m != nil {
		if canonical, ok := priorityAliases[strings.ToLower(strings.TrimSpace(m[1]))]; ok {
			s.Priority = canonical
			return
		}
	}

	if s.Priority != "" {
		return
	}
	for _, v := range priorityVocab {
		if v.re.MatchString(message) {
			s.Priority = v.value
			return
		}
	}
}

func (e *Extractor) extractCategory(message string, s *state.State) {
	if m := categoryFieldRe.FindStringSubmatch(message); m != nil {
		raw := strings.ToLower(strings.TrimSpace(m[1]))
		for _, v := range categoryVocab {
			if v.re.MatchString(raw) {
				s.Category = v.value
				return
			}
		}
		if raw != "" {
			if len(raw) > maxCategoryLen {
				raw = raw[:maxCategoryLen]
			}
			s.Category = raw
			return
		}
	}

	if s.Category != "" {
		return
	}
	for _, v := range categoryVocab {
		if v.re.MatchString(message) {
			s.Category = v.value
			return
		}
	}
}

func (e *Extractor) extractDueDate(message string, s *state.State, now time.Time) {
	// Structured field may overwrite.
	if m := dueFieldRe.FindStringSubmatch(message); m != nil {
		if due, ok := e.dates.Parse(m[1], now); ok {
			s.DueDate = due.Format(time.RFC3339)
			return
		}
	}

	if s.DueDate != "" {
		return
	}
	if due, ok := e.dates.Parse(message, now); ok {
		s.DueDate = due.Format(time.RFC3339)
	}
}

// trimSlotKeywords strips trailing temporal, priority and connector phrases
// from a captured title until nothing more matches.
func trimSlotKeywords(title string) string {
	title = strings.TrimSpace(title)
	for {
		trimmed := trailingNoiseRe.ReplaceAllString(title, "")
		trimmed = strings.TrimRight(strings.TrimSpace(trimmed), ".,،!")
		if trimmed == title {
			return title
		}
		title = trimmed
	}
}

// cleanBareAnswer turns a mid-dialogue answer into a title by removing
// field labels, date phrases and politeness filler.
func cleanBareAnswer(message string) string {
	cleaned := fieldLabelRe.ReplaceAllString(message, " ")
	cleaned = temporalAnywhereRe.ReplaceAllString(cleaned, " ")
	cleaned = politenessRe.ReplaceAllString(cleaned, " ")
	cleaned = strings.Join(strings.Fields(cleaned), " ")
	cleaned = strings.Trim(cleaned, " .,،!؟?")
	return trimSlotKeywords(cleaned)
}
