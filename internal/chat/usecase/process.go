package usecase

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"conversational-task-management/internal/chat"
	"conversational-task-management/internal/chat/intent"
	"conversational-task-management/internal/chat/language"
	"conversational-task-management/internal/chat/state"
	"conversational-task-management/internal/conversation"
	"conversational-task-management/internal/model"
	"conversational-task-management/internal/task"
	"conversational-task-management/pkg/llmprovider"
)

// ProcessMessage runs one dialogue turn: detect language, classify intent,
// execute the implied task operation, then generate exactly one reply. Tool
// failures surface in the reply and metadata, never as a returned error.
func (uc *implUseCase) ProcessMessage(ctx context.Context, sc model.Scope, input chat.ProcessInput) (chat.ProcessOutput, error) {
	message := strings.TrimSpace(input.Message)
	switch n := utf8.RuneCountInString(message); {
	case n == 0:
		return chat.ProcessOutput{}, chat.ErrEmptyMessage
	case n > maxMessageLen:
		return chat.ProcessOutput{}, chat.ErrMessageTooLong
	}

	conv, err := uc.conversations.GetOrCreate(ctx, sc, input.ConversationID)
	if err != nil {
		uc.l.Errorf(ctx, "chat.ProcessMessage.GetOrCreate: %v", err)
		return chat.ProcessOutput{}, err
	}

	lang := language.Detect(message)

	blob, err := uc.conversations.LastState(ctx, sc, conv.ID)
	if err != nil {
		// Ownership was already checked by GetOrCreate; a broken state read
		// degrades to a stateless turn.
		uc.l.Warnf(ctx, "chat.ProcessMessage.LastState: %v", err)
		blob = nil
	}
	prior := state.Decode(blob)

	if _, err := uc.conversations.SaveMessage(ctx, sc, conversation.SaveMessageInput{
		ConversationID: conv.ID,
		Role:           model.RoleUser,
		Content:        message,
		Language:       string(lang),
	}); err != nil {
		uc.l.Errorf(ctx, "chat.ProcessMessage.SaveMessage(user): %v", err)
		return chat.ProcessOutput{}, err
	}

	// Tools run strictly before the reply is generated; the completion
	// service only ever narrates outcomes that already happened.
	turn := uc.executeTurn(ctx, sc, message, prior)

	history, err := uc.conversations.History(ctx, sc, conv.ID, maxConversationHistory)
	if err != nil {
		uc.l.Warnf(ctx, "chat.ProcessMessage.History: %v", err)
		history = nil
	}

	reply, modelName := uc.completeReply(ctx, lang, history, turn)

	saved, err := uc.conversations.SaveMessage(ctx, sc, conversation.SaveMessageInput{
		ConversationID: conv.ID,
		Role:           model.RoleAssistant,
		Content:        reply,
		Language:       string(lang),
		StateBlob:      turn.next.Encode(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "chat.ProcessMessage.SaveMessage(assistant): %v", err)
		return chat.ProcessOutput{}, err
	}

	return chat.ProcessOutput{
		ConversationID: conv.ID,
		MessageID:      saved.ID,
		Reply:          reply,
		Language:       lang,
		Model:          modelName,
		ToolCalls:      toolCallMetadata(turn),
	}, nil
}

// executeTurn applies the intent transition table. Carried-over adding_task
// state upgrades an unclassified message into a slot-filling continuation;
// everything else fully replaces the prior state.
func (uc *implUseCase) executeTurn(ctx context.Context, sc model.Scope, message string, prior state.State) turnResult {
	effective := intent.Classify(message)
	if effective == intent.IntentNone && prior.IsAddingTask() {
		effective = intent.IntentAddingTask
	}

	switch effective {
	case intent.IntentAddingTask:
		return uc.turnAdd(ctx, sc, message, prior)
	case intent.IntentListingTasks:
		return uc.turnList(ctx, sc)
	case intent.IntentCompletingTask:
		return uc.turnResolveAnd(ctx, sc, message, prior, toolCompleteTask)
	case intent.IntentDeletingTask:
		return uc.turnResolveAnd(ctx, sc, message, prior, toolDeleteTask)
	default:
		// Small talk with nothing carried over: empty state, no tool.
		return turnResult{next: state.State{}}
	}
}

func (uc *implUseCase) turnAdd(ctx context.Context, sc model.Scope, message string, prior state.State) turnResult {
	base := state.State{}
	if prior.IsAddingTask() {
		base = prior
	}
	merged := uc.extractor.Extract(message, base, uc.nowFunc())
	merged.Intent = intent.IntentAddingTask

	if !merged.ReadyToCreate() {
		// Keep the partial slots and ask for the title.
		return turnResult{next: merged, outcome: &toolOutcome{awaitingTitle: true}}
	}

	in := task.CreateInput{
		Title:    merged.Title,
		Priority: merged.Priority,
		Category: merged.Category,
	}
	if merged.DueDate != "" {
		if due, err := time.Parse(time.RFC3339, merged.DueDate); err == nil {
			in.DueDate = &due
		}
	}

	created, err := uc.tasks.Create(ctx, sc, in)
	if err != nil {
		uc.l.Warnf(ctx, "chat.turnAdd.Create: user=%s: %v", sc.UserID, err)
		// Slots stay filled so the user can correct and retry.
		return turnResult{next: merged, outcome: &toolOutcome{tool: toolAddTask, err: err.Error()}}
	}

	uc.l.Infof(ctx, "chat.turnAdd: created task=%d user=%s", created.ID, sc.UserID)
	return turnResult{
		next:    state.State{},
		outcome: &toolOutcome{tool: toolAddTask, success: true, task: &created, taskID: created.ID},
	}
}

// turnList rebuilds the position mapping from scratch on every list.
func (uc *implUseCase) turnList(ctx context.Context, sc model.Scope) turnResult {
	out, err := uc.tasks.List(ctx, sc, task.ListInput{Status: task.StatusAll})
	if err != nil {
		uc.l.Warnf(ctx, "chat.turnList: user=%s: %v", sc.UserID, err)
		return turnResult{next: state.State{}, outcome: &toolOutcome{tool: toolListTasks, err: err.Error()}}
	}

	next := state.State{
		Intent:           intent.IntentListingTasks,
		TaskCount:        len(out.Tasks),
		MappingCreatedAt: uc.nowFunc().UTC().Format(time.RFC3339),
	}
	if len(out.Tasks) > 0 {
		next.TaskMapping = make(state.TaskMapping, len(out.Tasks))
		for i, t := range out.Tasks {
			next.TaskMapping[i+1] = t.ID
		}
	}

	return turnResult{
		next:    next,
		outcome: &toolOutcome{tool: toolListTasks, success: true, tasks: out.Tasks},
	}
}

// turnResolveAnd resolves the task reference and runs complete or delete.
// The prior state (including any position mapping) is preserved unchanged so
// follow-up references keep working.
func (uc *implUseCase) turnResolveAnd(ctx context.Context, sc model.Scope, message string, prior state.State, tool string) turnResult {
	id, ok := uc.resolver.Resolve(ctx, sc, message, prior)
	if !ok {
		return turnResult{next: prior, outcome: &toolOutcome{tool: tool, unresolved: true}}
	}

	switch tool {
	case toolCompleteTask:
		done, err := uc.tasks.Complete(ctx, sc, id)
		if err != nil {
			uc.l.Warnf(ctx, "chat.turnResolveAnd.Complete: task=%d user=%s: %v", id, sc.UserID, err)
			return turnResult{next: prior, outcome: &toolOutcome{tool: tool, taskID: id, err: err.Error()}}
		}
		return turnResult{next: prior, outcome: &toolOutcome{tool: tool, success: true, task: &done, taskID: id}}

	default:
		if err := uc.tasks.Delete(ctx, sc, id); err != nil {
			uc.l.Warnf(ctx, "chat.turnResolveAnd.Delete: task=%d user=%s: %v", id, sc.UserID, err)
			return turnResult{next: prior, outcome: &toolOutcome{tool: tool, taskID: id, err: err.Error()}}
		}
		return turnResult{next: prior, outcome: &toolOutcome{tool: tool, success: true, taskID: id}}
	}
}

// completeReply asks the completion service for the reply, feeding it the
// bounded history plus a system note describing what the tools actually did.
// Any failure falls back to a templated reply; the turn never goes silent.
func (uc *implUseCase) completeReply(ctx context.Context, lang language.Language, history []model.Message, turn turnResult) (reply, modelName string) {
	req := &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{
			Role:  "system",
			Parts: []llmprovider.Part{{Text: buildSystemPrompt(lang)}},
		},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}

	for _, m := range history {
		role := "user"
		if m.Role == model.RoleAssistant {
			role = "assistant"
		}
		req.Messages = append(req.Messages, llmprovider.Message{
			Role:  role,
			Parts: []llmprovider.Part{{Text: m.Content}},
		})
	}

	if note := summarize(turn); note != "" {
		req.Messages = append(req.Messages, llmprovider.Message{
			Role:  "system",
			Parts: []llmprovider.Part{{Text: note}},
		})
	}

	resp, err := uc.completer.GenerateContent(ctx, req)
	if err != nil {
		uc.l.Errorf(ctx, "chat.completeReply: completion failed: %v", err)
		return fallbackReply(lang, turn), ""
	}

	for _, part := range resp.Content.Parts {
		if text := strings.TrimSpace(part.Text); text != "" {
			return text, resp.ModelName
		}
	}

	uc.l.Warnf(ctx, "chat.completeReply: empty completion from provider=%s", resp.ProviderName)
	return fallbackReply(lang, turn), resp.ModelName
}

func toolCallMetadata(turn turnResult) []chat.ToolCall {
	o := turn.outcome
	if o == nil || o.tool == "" || o.unresolved {
		return nil
	}
	return []chat.ToolCall{{
		Tool:    o.tool,
		Success: o.success,
		Error:   o.err,
		TaskID:  o.taskID,
	}}
}
