package usecase

import (
	"conversational-task-management/internal/conversation/repository"
	pkgLog "conversational-task-management/pkg/log"
)

type implUseCase struct {
	l    pkgLog.Logger
	repo repository.ConversationRepository
}

// New creates a new conversation UseCase instance.
func New(l pkgLog.Logger, repo repository.ConversationRepository) *implUseCase {
	return &implUseCase{
		l:    l,
		repo: repo,
	}
}
