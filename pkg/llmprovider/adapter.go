package llmprovider

import (
	"context"
	"encoding/json"
	"fmt"

	"conversational-task-management/pkg/deepseek"
	"conversational-task-management/pkg/openrouter"
)

// OpenRouterAdapter adapts pkg/openrouter to the llmprovider.Provider
// interface
type OpenRouterAdapter struct {
	client openrouter.IOpenRouter
}

// NewOpenRouterAdapter creates a new OpenRouter adapter
func NewOpenRouterAdapter(client openrouter.IOpenRouter) *OpenRouterAdapter {
	return &OpenRouterAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *OpenRouterAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	orReq := &openrouter.Request{
		Messages:    convertToWireMessages(req.Messages),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}

	if req.SystemInstruction != nil && len(req.SystemInstruction.Parts) > 0 {
		systemMsg := openrouter.Message{
			Role:    "system",
			Content: req.SystemInstruction.Parts[0].Text,
		}
		orReq.Messages = append([]openrouter.Message{systemMsg}, orReq.Messages...)
	}

	if len(req.Tools) > 0 {
		orReq.Tools = convertToWireTools(req.Tools)
	}

	resp, err := a.client.GenerateContent(ctx, orReq)
	if err != nil {
		return nil, fmt.Errorf("openrouter: %w", err)
	}

	return convertFromWireResponse(resp, "openrouter"), nil
}

// Name returns the provider name
func (a *OpenRouterAdapter) Name() string {
	return "openrouter"
}

// Model returns the model name
func (a *OpenRouterAdapter) Model() string {
	return a.client.Model()
}

// DeepSeekAdapter adapts pkg/deepseek to the llmprovider.Provider interface
type DeepSeekAdapter struct {
	client deepseek.IDeepSeek
	model  string
}

// NewDeepSeekAdapter creates a new DeepSeek adapter
func NewDeepSeekAdapter(client deepseek.IDeepSeek, model string) *DeepSeekAdapter {
	if model == "" {
		model = deepseek.DefaultModel
	}
	return &DeepSeekAdapter{client: client, model: model}
}

// GenerateContent implements Provider interface
func (a *DeepSeekAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	wire := convertToWireMessages(req.Messages)
	dsMessages := make([]deepseek.Message, len(wire))
	for i, m := range wire {
		dsMessages[i] = convertToDeepSeekMessage(m)
	}
	dsReq := &deepseek.Request{
		Messages:    dsMessages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}

	if req.SystemInstruction != nil && len(req.SystemInstruction.Parts) > 0 {
		systemMsg := deepseek.Message{
			Role:    "system",
			Content: req.SystemInstruction.Parts[0].Text,
		}
		dsReq.Messages = append([]deepseek.Message{systemMsg}, dsReq.Messages...)
	}

	for _, t := range convertToWireTools(req.Tools) {
		dsReq.Tools = append(dsReq.Tools, deepseek.Tool{
			Type: t.Type,
			Function: deepseek.FunctionDef{
				Name:        t.Function.Name,
				Description: t.Function.Description,
				Parameters:  t.Function.Parameters,
			},
		})
	}

	resp, err := a.client.GenerateContent(ctx, dsReq)
	if err != nil {
		return nil, fmt.Errorf("deepseek: %w", err)
	}

	orResp := &openrouter.Response{
		ID:    resp.ID,
		Model: resp.Model,
		Usage: openrouter.Usage(resp.Usage),
	}
	for _, ch := range resp.Choices {
		orResp.Choices = append(orResp.Choices, openrouter.Choice{
			Index:        ch.Index,
			Message:      convertDeepSeekMessage(ch.Message),
			FinishReason: ch.FinishReason,
		})
	}
	return convertFromWireResponse(orResp, "deepseek"), nil
}

// Name returns the provider name
func (a *DeepSeekAdapter) Name() string {
	return "deepseek"
}

// Model returns the model name
func (a *DeepSeekAdapter) Model() string {
	return a.model
}

func convertToDeepSeekMessage(m openrouter.Message) deepseek.Message {
	out := deepseek.Message{
		Role:       m.Role,
		Content:    m.Content,
		Name:       m.Name,
		ToolCallID: m.ToolCallID,
	}
	for _, tc := range m.ToolCalls {
		out.ToolCalls = append(out.ToolCalls, deepseek.ToolCall{
			ID:   tc.ID,
			Type: tc.Type,
			Function: deepseek.FunctionCall{
				Name:      tc.Function.Name,
				Arguments: tc.Function.Arguments,
			},
		})
	}
	return out
}

func convertDeepSeekMessage(m deepseek.Message) openrouter.Message {
	out := openrouter.Message{
		Role:       m.Role,
		Content:    m.Content,
		Name:       m.Name,
		ToolCallID: m.ToolCallID,
	}
	for _, tc := range m.ToolCalls {
		out.ToolCalls = append(out.ToolCalls, openrouter.ToolCall{
			ID:   tc.ID,
			Type: tc.Type,
			Function: openrouter.FunctionCall{
				Name:      tc.Function.Name,
				Arguments: tc.Function.Arguments,
			},
		})
	}
	return out
}

// Conversion helpers between the normalized shapes and the OpenAI wire
// format shared by both providers.

func convertToWireMessages(msgs []Message) []openrouter.Message {
	messages := make([]openrouter.Message, 0, len(msgs))
	for _, msg := range msgs {
		wireMsg := openrouter.Message{
			Role: msg.Role,
		}

		if len(msg.Parts) > 0 && msg.Parts[0].Text != "" {
			wireMsg.Content = msg.Parts[0].Text
		}

		if len(msg.Parts) > 0 && msg.Parts[0].FunctionCall != nil {
			fc := msg.Parts[0].FunctionCall
			argsJSON, _ := json.Marshal(fc.Args)
			wireMsg.ToolCalls = []openrouter.ToolCall{
				{
					ID:   "call_" + fc.Name,
					Type: "function",
					Function: openrouter.FunctionCall{
						Name:      fc.Name,
						Arguments: string(argsJSON),
					},
				},
			}
		}

		if len(msg.Parts) > 0 && msg.Parts[0].FunctionResponse != nil {
			fr := msg.Parts[0].FunctionResponse
			wireMsg.Role = "tool"
			wireMsg.ToolCallID = "call_" + fr.Name
			wireMsg.Name = fr.Name
			responseJSON, _ := json.Marshal(fr.Response)
			wireMsg.Content = string(responseJSON)
		}

		messages = append(messages, wireMsg)
	}
	return messages
}

func convertToWireTools(tools []Tool) []openrouter.Tool {
	wireTools := make([]openrouter.Tool, len(tools))
	for i, t := range tools {
		wireTools[i] = openrouter.Tool{
			Type: "function",
			Function: openrouter.FunctionDef{
				Name:        t.Name,
				Description: t.Description,
				Parameters:  t.Parameters,
			},
		}
	}
	return wireTools
}

func convertFromWireResponse(resp *openrouter.Response, providerName string) *Response {
	usage := &Usage{
		InputTokens:  resp.Usage.PromptTokens,
		OutputTokens: resp.Usage.CompletionTokens,
		TotalTokens:  resp.Usage.TotalTokens,
	}

	if len(resp.Choices) == 0 {
		return &Response{
			Content:      Message{Role: "assistant", Parts: []Part{}},
			ProviderName: providerName,
			ModelName:    resp.Model,
			Usage:        usage,
		}
	}

	choice := resp.Choices[0]
	parts := []Part{}

	if choice.Message.Content != "" {
		parts = append(parts, Part{Text: choice.Message.Content})
	}

	if len(choice.Message.ToolCalls) > 0 {
		tc := choice.Message.ToolCalls[0]
		var args map[string]interface{}
		json.Unmarshal([]byte(tc.Function.Arguments), &args)
		parts = append(parts, Part{
			FunctionCall: &FunctionCall{
				Name: tc.Function.Name,
				Args: args,
			},
		})
	}

	return &Response{
		Content:      Message{Role: "assistant", Parts: parts},
		ProviderName: providerName,
		ModelName:    resp.Model,
		Usage:        usage,
	}
}
