package domain

import (
	"context"
)

// AssistantUsage contains token usage for one model round.
type AssistantUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Add returns the sum of both usages.
func (u AssistantUsage) Add(other AssistantUsage) AssistantUsage {
	return AssistantUsage{
		PromptTokens:     u.PromptTokens + other.PromptTokens,
		CompletionTokens: u.CompletionTokens + other.CompletionTokens,
		TotalTokens:      u.TotalTokens + other.TotalTokens,
	}
}

// AssistantMessage represents a message exchanged with the model.
type AssistantMessage struct {
	Role       ChatRole
	Content    string
	ToolCallID *string
	ToolCalls  []ToolInvocationRequest
}

// AssistantTurnRequest is the domain request for one model round.
type AssistantTurnRequest struct {
	Model    string
	Messages []AssistantMessage
	// Optional generation settings.
	Temperature      *float64
	TopP             *float64
	MaxTokens        *int
	FrequencyPenalty *float64
	Tools            []ToolDescriptor
}

// AssistantTurnResponse is either a plain reply or a set of tool calls.
type AssistantTurnResponse struct {
	Content   string
	ToolCalls []ToolInvocationRequest
	Usage     AssistantUsage
}

// RequestsTools reports whether the model asked for tool invocations.
func (r AssistantTurnResponse) RequestsTools() bool {
	return len(r.ToolCalls) > 0
}

// Assistant is the model backend.
type Assistant interface {
	// RunTurn sends the conversation and tool descriptors and returns the model reply.
	// Failures are reported as *BackendErr.
	RunTurn(ctx context.Context, req AssistantTurnRequest) (AssistantTurnResponse, error)
}
