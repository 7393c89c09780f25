package intent

import "regexp"

// Intent is the classified user goal for one turn.
type Intent string

const (
	IntentAddingTask     Intent = "adding_task"
	IntentListingTasks   Intent = "listing_tasks"
	IntentCompletingTask Intent = "completing_task"
	IntentDeletingTask   Intent = "deleting_task"
	IntentNone           Intent = "none"
)

// Family pairs one intent with the patterns that detect it. Each family
// covers English, Roman Urdu and Urdu script forms.
type Family struct {
	Intent   Intent
	Patterns []*regexp.Regexp
}

var deletePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bdelete\b`),
	regexp.MustCompile(`(?i)\bremove\b`),
	regexp.MustCompile(`(?i)\berase\b`),
	regexp.MustCompile(`(?i)\b(hatao|hata\s+do|mita\s+do|mitao)\b`),
	regexp.MustCompile(`حذف`),
	regexp.MustCompile(`مٹا`),
	regexp.MustCompile(`ہٹا`),
	regexp.MustCompile(`ڈیلیٹ`),
}

var completePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bcomplete\b`),
	regexp.MustCompile(`(?i)\bcompleted\b`),
	regexp.MustCompile(`(?i)\bfinish(ed)?\b`),
	regexp.MustCompile(`(?i)\bmark\b`),
	regexp.MustCompile(`(?i)\bdone\b`),
	regexp.MustCompile(`(?i)\bmukammal\b`),
	regexp.MustCompile(`(?i)\bho\s+gaya\b`),
	regexp.MustCompile(`(?i)\bhogaya\b`),
	regexp.MustCompile(`مکمل`),
	regexp.MustCompile(`ہو\s*گیا`),
	regexp.MustCompile(`پورا`),
}

var addPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\badd\b`),
	regexp.MustCompile(`(?i)\bcreate\b`),
	regexp.MustCompile(`(?i)\bnew\s+task\b`),
	regexp.MustCompile(`(?i)\bremind\s+me\b`),
	regexp.MustCompile(`(?i)\b(banao|bana\s+do)\b`),
	regexp.MustCompile(`(?i)\bshamil\b`),
	regexp.MustCompile(`(?i)\byaad\s+dilana\b`),
	regexp.MustCompile(`شامل`),
	regexp.MustCompile(`بناؤ`),
	regexp.MustCompile(`نیا\s+کام`),
	regexp.MustCompile(`یاد\s+دہانی`),
}

var listPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\blist\b`),
	regexp.MustCompile(`(?i)\bshow\b`),
	regexp.MustCompile(`(?i)\bdisplay\b`),
	regexp.MustCompile(`(?i)\bview\b`),
	regexp.MustCompile(`(?i)\bmy\s+tasks\b`),
	regexp.MustCompile(`(?i)\bwhat\b.*\btasks?\b`),
	regexp.MustCompile(`(?i)\b(dikhao|dikhayen|dikha\s+do)\b`),
	regexp.MustCompile(`(?i)\bfehrist\b`),
	regexp.MustCompile(`دکھاؤ`),
	regexp.MustCompile(`دکھائیں`),
	regexp.MustCompile(`فہرست`),
}

// ClassificationOrder is the fixed evaluation order of pattern families:
// delete, complete, add, list. The order is load-bearing, not incidental:
// "mark task done" must not be caught by a list pattern and "delete the
// task" must win over "task" substrings in add patterns. Do not reorder.
var ClassificationOrder = []Family{
	{IntentDeletingTask, deletePatterns},
	{IntentCompletingTask, completePatterns},
	{IntentAddingTask, addPatterns},
	{IntentListingTasks, listPatterns},
}

// Classify maps a raw message to an intent by evaluating the pattern
// families in ClassificationOrder and returning on the first family with any
// matching pattern. No match across all families returns IntentNone; the
// orchestrator then decides whether prior state implies an ongoing dialogue.
func Classify(message string) Intent {
	if message == "" {
		return IntentNone
	}

	for _, family := range ClassificationOrder {
		for _, p := range family.Patterns {
			if p.MatchString(message) {
				return family.Intent
			}
		}
	}
	return IntentNone
}
