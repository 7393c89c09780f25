package chat

import (
	"context"

	"conversational-task-management/internal/model"
)

// UseCase defines the business logic interface for the chat domain.
type UseCase interface {
	// ProcessMessage runs one dialogue turn: classify intent, fill slots or
	// resolve a task reference, execute the matching task operation, then ask
	// the completion service for the reply. Every call yields exactly one
	// assistant reply; downstream failures surface in the reply and the tool
	// call metadata, never as an error from a tool.
	ProcessMessage(ctx context.Context, sc model.Scope, input ProcessInput) (ProcessOutput, error)
}
