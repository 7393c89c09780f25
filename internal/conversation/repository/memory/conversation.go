// Package memory provides an in-process conversation store.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"conversational-task-management/internal/conversation/repository"
	"conversational-task-management/internal/model"
)

type implRepository struct {
	mu            sync.RWMutex
	conversations map[uuid.UUID]model.Conversation
	messages      map[uuid.UUID][]model.Message

	nowFunc func() time.Time
}

// New creates an empty in-memory conversation repository.
func New() *implRepository {
	return &implRepository{
		conversations: make(map[uuid.UUID]model.Conversation),
		messages:      make(map[uuid.UUID][]model.Message),
		nowFunc:       time.Now,
	}
}

func (r *implRepository) CreateConversation(_ context.Context, c model.Conversation) (model.Conversation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.nowFunc().UTC()
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	c.CreatedAt = now
	c.UpdatedAt = now
	r.conversations[c.ID] = c
	return c, nil
}

func (r *implRepository) GetConversation(_ context.Context, id uuid.UUID) (model.Conversation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.conversations[id]
	if !ok {
		return model.Conversation{}, repository.ErrNotFound
	}
	return c, nil
}

func (r *implRepository) SaveMessage(_ context.Context, m model.Message) (model.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.conversations[m.ConversationID]
	if !ok {
		return model.Message{}, repository.ErrNotFound
	}

	now := r.nowFunc().UTC()
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.Timestamp.IsZero() {
		m.Timestamp = now
	}
	r.messages[m.ConversationID] = append(r.messages[m.ConversationID], m)

	c.UpdatedAt = now
	r.conversations[m.ConversationID] = c
	return m, nil
}

func (r *implRepository) ListMessages(_ context.Context, conversationID uuid.UUID, limit int) ([]model.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := r.messages[conversationID]
	if limit > 0 && len(all) > limit {
		all = all[len(all)-limit:]
	}
	out := make([]model.Message, len(all))
	copy(out, all)
	return out, nil
}

func (r *implRepository) LastAssistantMessage(_ context.Context, conversationID uuid.UUID) (model.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := r.messages[conversationID]
	for i := len(all) - 1; i >= 0; i-- {
		if all[i].Role == model.RoleAssistant {
			return all[i], nil
		}
	}
	return model.Message{}, repository.ErrNotFound
}
