package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"conversational-task-management/internal/conversation"
	"conversational-task-management/internal/conversation/repository"
	"conversational-task-management/internal/model"
)

// GetOrCreate loads an existing conversation or starts a new one when id is
// nil.
func (uc *implUseCase) GetOrCreate(ctx context.Context, sc model.Scope, id *uuid.UUID) (model.Conversation, error) {
	if id == nil {
		created, err := uc.repo.CreateConversation(ctx, model.Conversation{UserID: sc.UserID})
		if err != nil {
			uc.l.Errorf(ctx, "GetOrCreate: failed to create conversation for user=%s: %v", sc.UserID, err)
			return model.Conversation{}, err
		}
		uc.l.Infof(ctx, "GetOrCreate: user=%s started conversation %s", sc.UserID, created.ID)
		return created, nil
	}

	c, err := uc.load(ctx, sc, *id)
	if err != nil {
		return model.Conversation{}, err
	}
	return c, nil
}

// SaveMessage appends one message to an owned conversation.
func (uc *implUseCase) SaveMessage(ctx context.Context, sc model.Scope, input conversation.SaveMessageInput) (model.Message, error) {
	if _, err := uc.load(ctx, sc, input.ConversationID); err != nil {
		return model.Message{}, err
	}

	saved, err := uc.repo.SaveMessage(ctx, model.Message{
		ConversationID: input.ConversationID,
		Role:           input.Role,
		Content:        input.Content,
		Language:       input.Language,
		StateBlob:      input.StateBlob,
	})
	if err != nil {
		uc.l.Errorf(ctx, "SaveMessage: failed for conversation=%s: %v", input.ConversationID, err)
		return model.Message{}, err
	}
	return saved, nil
}

// History returns the most recent messages in chronological order.
func (uc *implUseCase) History(ctx context.Context, sc model.Scope, conversationID uuid.UUID, limit int) ([]model.Message, error) {
	if _, err := uc.load(ctx, sc, conversationID); err != nil {
		return nil, err
	}

	messages, err := uc.repo.ListMessages(ctx, conversationID, limit)
	if err != nil {
		uc.l.Errorf(ctx, "History: failed for conversation=%s: %v", conversationID, err)
		return nil, err
	}
	return messages, nil
}

// LastState returns the state blob of the most recent assistant message.
// A conversation with no assistant messages yet has no state; that is nil,
// not an error.
func (uc *implUseCase) LastState(ctx context.Context, sc model.Scope, conversationID uuid.UUID) ([]byte, error) {
	if _, err := uc.load(ctx, sc, conversationID); err != nil {
		return nil, err
	}

	last, err := uc.repo.LastAssistantMessage(ctx, conversationID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		uc.l.Errorf(ctx, "LastState: failed for conversation=%s: %v", conversationID, err)
		return nil, err
	}
	return last.StateBlob, nil
}

func (uc *implUseCase) load(ctx context.Context, sc model.Scope, id uuid.UUID) (model.Conversation, error) {
	c, err := uc.repo.GetConversation(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Conversation{}, conversation.ErrNotFound
		}
		uc.l.Errorf(ctx, "load: failed to get conversation %s: %v", id, err)
		return model.Conversation{}, err
	}
	if c.UserID != sc.UserID {
		uc.l.Warnf(ctx, "load: user=%s denied on conversation %s owned by %s", sc.UserID, id, c.UserID)
		return model.Conversation{}, conversation.ErrNotOwner
	}
	return c, nil
}
