package usecase

import (
	"context"
	"time"

	"conversational-task-management/internal/chat/resolve"
	"conversational-task-management/internal/chat/slots"
	"conversational-task-management/internal/conversation"
	"conversational-task-management/internal/task"
	"conversational-task-management/pkg/llmprovider"
	pkgLog "conversational-task-management/pkg/log"
)

// Completer is the completion-service collaborator; satisfied by
// llmprovider.Manager.
type Completer interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

type implUseCase struct {
	l             pkgLog.Logger
	tasks         task.UseCase
	conversations conversation.UseCase
	resolver      *resolve.Resolver
	extractor     *slots.Extractor
	completer     Completer

	nowFunc func() time.Time
}

// New creates a new chat UseCase instance. The resolver is built on the task
// usecase's title search.
func New(
	l pkgLog.Logger,
	tasks task.UseCase,
	conversations conversation.UseCase,
	extractor *slots.Extractor,
	completer Completer,
) *implUseCase {
	return &implUseCase{
		l:             l,
		tasks:         tasks,
		conversations: conversations,
		resolver:      resolve.NewResolver(tasks),
		extractor:     extractor,
		completer:     completer,
		nowFunc:       time.Now,
	}
}
