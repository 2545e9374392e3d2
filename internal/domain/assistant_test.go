package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssistantUsage_Add(t *testing.T) {
	a := AssistantUsage{PromptTokens: 10, CompletionTokens: 5, TotalTokens: 15}
	b := AssistantUsage{PromptTokens: 3, CompletionTokens: 2, TotalTokens: 5}

	assert.Equal(t, AssistantUsage{PromptTokens: 13, CompletionTokens: 7, TotalTokens: 20}, a.Add(b))
	assert.Equal(t, a, a.Add(AssistantUsage{}))
}

func TestAssistantTurnResponse_RequestsTools(t *testing.T) {
	tests := map[string]struct {
		resp AssistantTurnResponse
		want bool
	}{
		"plain-reply": {
			resp: AssistantTurnResponse{Content: "Hello!"},
			want: false,
		},
		"tool-call": {
			resp: AssistantTurnResponse{ToolCalls: []ToolInvocationRequest{{ID: "1", Name: "get_ticket_price"}}},
			want: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.resp.RequestsTools())
		})
	}
}
