package usecase

import (
	"fmt"
	"strings"
	"time"

	"conversational-task-management/internal/chat/language"
	"conversational-task-management/internal/chat/state"
	"conversational-task-management/internal/model"
)

// toolOutcome captures what a task operation actually did during a turn.
// Failures live here as values; they never abort the turn.
type toolOutcome struct {
	tool    string
	success bool
	err     string

	task   *model.Task
	tasks  []model.Task
	taskID int

	// unresolved marks a complete/delete turn whose task reference could not
	// be identified; no tool ran.
	unresolved bool
	// awaitingTitle marks an adding turn still missing the title slot.
	awaitingTitle bool
}

// turnResult is the outcome of the intent transition for one turn: the state
// to persist on the assistant message, plus what (if anything) was executed.
type turnResult struct {
	next    state.State
	outcome *toolOutcome
}

// summarize renders the turn outcome as a system note for the completion
// service. Notes are English regardless of the user's language; the reply
// language is governed by the system prompt.
func summarize(turn turnResult) string {
	o := turn.outcome
	if o == nil {
		return ""
	}

	switch {
	case o.awaitingTitle:
		return "The user wants to add a task but no title is known yet. Ask what the task should be called."

	case o.unresolved:
		return "The user referred to an existing task that could not be identified. " +
			"Ask them to list their tasks first or to name the task exactly."

	case o.err != "":
		if o.taskID > 0 {
			return fmt.Sprintf("Tool %s failed for task %d: %s. Apologize and relay the problem.", o.tool, o.taskID, o.err)
		}
		return fmt.Sprintf("Tool %s failed: %s. Apologize and relay the problem.", o.tool, o.err)

	case o.tool == toolAddTask:
		return fmt.Sprintf("Tool add_task succeeded: created task %d %q with priority %s%s.",
			o.task.ID, o.task.Title, o.task.Priority, dueSuffix(o.task.DueDate))

	case o.tool == toolListTasks:
		if len(o.tasks) == 0 {
			return "Tool list_tasks returned no tasks. Tell the user their list is empty."
		}
		var b strings.Builder
		fmt.Fprintf(&b, "Tool list_tasks returned %d task(s). Present them as this numbered list:\n", len(o.tasks))
		for i, t := range o.tasks {
			fmt.Fprintf(&b, "%d. %s (ID %d, priority %s%s)\n", i+1, t.Title, t.ID, t.Priority, dueSuffix(t.DueDate))
		}
		return strings.TrimRight(b.String(), "\n")

	case o.tool == toolCompleteTask:
		return fmt.Sprintf("Tool complete_task succeeded: task %d %q is now completed.", o.task.ID, o.task.Title)

	case o.tool == toolDeleteTask:
		return fmt.Sprintf("Tool delete_task succeeded: task %d was deleted.", o.taskID)
	}
	return ""
}

func dueSuffix(due *time.Time) string {
	if due == nil {
		return ""
	}
	return ", due " + due.Format("2006-01-02")
}

// fallbackReply produces the templated bilingual reply used when the
// completion service is unavailable. Every turn still gets exactly one reply.
func fallbackReply(lang language.Language, turn turnResult) string {
	urdu := lang == language.Urdu
	o := turn.outcome

	if o == nil {
		if urdu {
			return "معذرت، سروس عارضی طور پر دستیاب نہیں ہے۔ براہ کرم دوبارہ کوشش کریں۔"
		}
		return "AI service temporarily unavailable. Please try again."
	}

	switch {
	case o.awaitingTitle:
		if urdu {
			return "کام کا نام کیا رکھوں؟"
		}
		return "What should the task be called?"

	case o.unresolved:
		if urdu {
			return "مجھے معلوم نہیں ہو سکا کہ آپ کا مطلب کون سا کام ہے۔ پہلے اپنے کاموں کی فہرست دیکھیں یا کام کا نام بتائیں۔"
		}
		return "I could not identify which task you meant. Please list your tasks first or specify the task by name."

	case o.err != "":
		if urdu {
			return "معذرت، یہ کارروائی ناکام ہو گئی: " + o.err
		}
		return "Sorry, that operation failed: " + o.err

	case o.tool == toolAddTask:
		if urdu {
			return fmt.Sprintf("کام %q بن گیا۔", o.task.Title)
		}
		return fmt.Sprintf("Task %q created.", o.task.Title)

	case o.tool == toolListTasks:
		return renderTaskList(urdu, o.tasks)

	case o.tool == toolCompleteTask:
		if urdu {
			return fmt.Sprintf("کام %q مکمل ہو گیا۔", o.task.Title)
		}
		return fmt.Sprintf("Task %q marked as completed.", o.task.Title)

	case o.tool == toolDeleteTask:
		if urdu {
			return fmt.Sprintf("کام %d حذف ہو گیا۔", o.taskID)
		}
		return fmt.Sprintf("Task %d deleted.", o.taskID)
	}

	if urdu {
		return "معذرت، سروس عارضی طور پر دستیاب نہیں ہے۔ براہ کرم دوبارہ کوشش کریں۔"
	}
	return "AI service temporarily unavailable. Please try again."
}

func renderTaskList(urdu bool, tasks []model.Task) string {
	if len(tasks) == 0 {
		if urdu {
			return "آپ کا کوئی کام نہیں ہے۔"
		}
		return "You have no tasks."
	}

	var b strings.Builder
	if urdu {
		fmt.Fprintf(&b, "آپ کے %d کام ہیں:\n", len(tasks))
	} else {
		fmt.Fprintf(&b, "You have %d task(s):\n", len(tasks))
	}
	for i, t := range tasks {
		fmt.Fprintf(&b, "%d. %s\n", i+1, t.Title)
	}
	return strings.TrimRight(b.String(), "\n")
}
