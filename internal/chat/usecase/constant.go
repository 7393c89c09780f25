package usecase

const (
	// maxConversationHistory bounds the context window sent to the
	// completion service.
	maxConversationHistory = 10

	maxTokens   = 1000
	temperature = 0.7

	maxMessageLen = 2000
)

// Tool names recorded in reply metadata.
const (
	toolAddTask      = "add_task"
	toolListTasks    = "list_tasks"
	toolCompleteTask = "complete_task"
	toolDeleteTask   = "delete_task"
)
