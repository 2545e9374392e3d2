package modelrunner

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-ai-fareassist/internal/common"
	"github.com/cleitonmarx/symbiont-ai-fareassist/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func ticketPriceDescriptor() domain.ToolDescriptor {
	return domain.ToolDescriptor{
		Name:        "get_ticket_price",
		Description: "Get the price of a return ticket to the destination city.",
		Fields: []domain.ToolField{
			{Name: "destination_city", Type: domain.ToolFieldType_String, Description: "The city that the customer wants to travel to", Required: true},
		},
	}
}

func TestAssistantClient_RunTurn(t *testing.T) {
	req := domain.AssistantTurnRequest{
		Model: "test-model",
		Messages: []domain.AssistantMessage{
			{Role: domain.ChatRole_User, Content: "How much is a ticket to London?"},
		},
		Tools: []domain.ToolDescriptor{ticketPriceDescriptor()},
	}

	tests := map[string]struct {
		status       int
		body         string
		apiKey       string
		wantAuth     string
		expectedResp domain.AssistantTurnResponse
		wantErr      bool
		wantStatus   int
		wantTransit  bool
	}{
		"tool-call-requested": {
			status: http.StatusOK,
			body: `{"choices":[{"index":0,"finish_reason":"tool_calls","message":{"role":"assistant","tool_calls":[
				{"id":"call-1","type":"function","function":{"name":"get_ticket_price","arguments":"{\"destination_city\":\"London\"}"}}
			]}}],"usage":{"prompt_tokens":40,"completion_tokens":12,"total_tokens":52}}`,
			apiKey:   "secret",
			wantAuth: "Bearer secret",
			expectedResp: domain.AssistantTurnResponse{
				ToolCalls: []domain.ToolInvocationRequest{
					{ID: "call-1", Name: "get_ticket_price", Arguments: `{"destination_city":"London"}`},
				},
				Usage: domain.AssistantUsage{PromptTokens: 40, CompletionTokens: 12, TotalTokens: 52},
			},
		},
		"plain-reply-without-usage": {
			status: http.StatusOK,
			body:   `{"choices":[{"message":{"role":"assistant","content":"Hi, how can I help?"}}]}`,
			expectedResp: domain.AssistantTurnResponse{
				Content: "Hi, how can I help?",
			},
		},
		"rate-limited-is-transient": {
			status:      http.StatusTooManyRequests,
			body:        `{"error":"slow down"}`,
			wantErr:     true,
			wantStatus:  http.StatusTooManyRequests,
			wantTransit: true,
		},
		"unavailable-is-transient": {
			status:      http.StatusServiceUnavailable,
			body:        `overloaded`,
			wantErr:     true,
			wantStatus:  http.StatusServiceUnavailable,
			wantTransit: true,
		},
		"unauthorized-is-not-transient": {
			status:     http.StatusUnauthorized,
			body:       `{"error":"bad key"}`,
			wantErr:    true,
			wantStatus: http.StatusUnauthorized,
		},
		"no-choices": {
			status:     http.StatusOK,
			body:       `{"choices":[]}`,
			wantErr:    true,
			wantStatus: http.StatusOK,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var gotAuth string
			var gotReq ChatRequest
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/v1/chat/completions", r.URL.Path)
				gotAuth = r.Header.Get("Authorization")
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			adapter := NewAssistantClientAdapter(NewAPIClient(server.URL, tt.apiKey, server.Client()), nil)
			resp, err := adapter.RunTurn(context.Background(), req)

			assert.Equal(t, tt.wantAuth, gotAuth)
			assert.Equal(t, "auto", gotReq.ToolChoice)
			require.Len(t, gotReq.Tools, 1)
			assert.Equal(t, "get_ticket_price", gotReq.Tools[0].Function.Name)

			if tt.wantErr {
				require.Error(t, err)
				var backendErr *domain.BackendErr
				require.ErrorAs(t, err, &backendErr)
				assert.Equal(t, tt.wantStatus, backendErr.StatusCode)
				assert.Equal(t, tt.wantTransit, backendErr.Transient)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedResp, resp)
		})
	}
}

func TestAssistantClient_RunTurn_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	adapter := NewAssistantClientAdapter(NewAPIClient(url, "", http.DefaultClient), nil)
	_, err := adapter.RunTurn(context.Background(), domain.AssistantTurnRequest{
		Model:    "test-model",
		Messages: []domain.AssistantMessage{{Role: domain.ChatRole_User, Content: "hi"}},
	})

	require.Error(t, err)
	assert.True(t, domain.IsTransientBackendErr(err))
}

func TestToChatRequest(t *testing.T) {
	temperature := 0.2
	got := toChatRequest(domain.AssistantTurnRequest{
		Model:       "test-model",
		Temperature: &temperature,
		Messages: []domain.AssistantMessage{
			{Role: domain.ChatRole_System, Content: "You are a helpful assistant."},
			{
				Role: domain.ChatRole_Assistant,
				ToolCalls: []domain.ToolInvocationRequest{
					{ID: "call-1", Name: "get_ticket_price", Arguments: `{"destination_city":"Paris"}`},
				},
			},
			{Role: domain.ChatRole_Tool, ToolCallID: common.Ptr("call-1"), Content: "status: ok"},
		},
		Tools: []domain.ToolDescriptor{ticketPriceDescriptor()},
	})

	assert.Equal(t, "test-model", got.Model)
	assert.Equal(t, &temperature, got.Temperature)
	require.Len(t, got.Messages, 3)
	assert.Equal(t, "system", got.Messages[0].Role)
	assert.Equal(t, []ToolCall{{
		ID:       "call-1",
		Type:     "function",
		Function: ToolCallFunction{Name: "get_ticket_price", Arguments: `{"destination_city":"Paris"}`},
	}}, got.Messages[1].ToolCalls)
	assert.Equal(t, common.Ptr("call-1"), got.Messages[2].ToolCallID)

	require.Len(t, got.Tools, 1)
	params := got.Tools[0].Function.Parameters
	assert.Equal(t, "object", params["type"])
	assert.Equal(t, []string{"destination_city"}, params["required"])
	assert.Equal(t, false, params["additionalProperties"])
}

func TestToChatRequest_NoTools(t *testing.T) {
	got := toChatRequest(domain.AssistantTurnRequest{
		Model:    "test-model",
		Messages: []domain.AssistantMessage{{Role: domain.ChatRole_User, Content: "hi"}},
	})
	assert.Empty(t, got.Tools)
	assert.Empty(t, got.ToolChoice)
}

func TestAssistantClient_RunTurn_RateLimited(t *testing.T) {
	tests := map[string]struct {
		context       func(t *testing.T) context.Context
		drainBurst    bool
		wantCalls     int32
		wantErr       bool
		wantTransient bool
		wantStatus    int
	}{
		"slot-available": {
			context: func(t *testing.T) context.Context { return t.Context() },
			wantCalls: 1,
		},
		"next-slot-after-deadline": {
			context: func(t *testing.T) context.Context {
				ctx, cancel := context.WithTimeout(t.Context(), time.Second)
				t.Cleanup(cancel)
				return ctx
			},
			drainBurst:    true,
			wantErr:       true,
			wantTransient: true,
			wantStatus:    http.StatusTooManyRequests,
		},
		"canceled-while-waiting": {
			context: func(t *testing.T) context.Context {
				ctx, cancel := context.WithCancel(t.Context())
				cancel()
				return ctx
			},
			drainBurst: true,
			wantErr:    true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var calls atomic.Int32
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls.Add(1)
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"choices":[{"index":0,"message":{"role":"assistant","content":"hi"}}]}`))
			}))
			defer server.Close()

			limiter := rate.NewLimiter(rate.Every(time.Hour), 1)
			if tt.drainBurst {
				require.True(t, limiter.Allow())
			}
			adapter := NewAssistantClientAdapter(NewAPIClient(server.URL, "", server.Client()), limiter)

			_, err := adapter.RunTurn(tt.context(t), domain.AssistantTurnRequest{
				Model:    "test-model",
				Messages: []domain.AssistantMessage{{Role: domain.ChatRole_User, Content: "hi"}},
			})

			assert.Equal(t, tt.wantCalls, calls.Load())
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			var backendErr *domain.BackendErr
			require.ErrorAs(t, err, &backendErr)
			assert.Equal(t, tt.wantTransient, backendErr.Transient)
			assert.Equal(t, tt.wantStatus, backendErr.StatusCode)
		})
	}
}

func TestNewRequestLimiter(t *testing.T) {
	assert.Nil(t, newRequestLimiter(0))

	limiter := newRequestLimiter(600)
	require.NotNil(t, limiter)
	assert.Equal(t, 20, limiter.Burst())

	assert.Equal(t, 1, newRequestLimiter(10).Burst())
}

func TestInitAssistantClient_Initialize(t *testing.T) {
	i := InitAssistantClient{
		HttpClient:        http.DefaultClient,
		ModelHost:         "http://localhost:12434/engines",
		APIKey:            "-",
		RequestsPerMinute: 600,
	}

	_, err := i.Initialize(context.Background())
	require.NoError(t, err)

	assistant, err := depend.Resolve[domain.Assistant]()
	require.NoError(t, err)
	assert.Equal(t, "", assistant.(AssistantClient).client.apiKey)

	_, err = depend.Resolve[domain.AssistantModelCatalog]()
	assert.NoError(t, err)
}

func TestAssistantClient_ListModels(t *testing.T) {
	tests := map[string]struct {
		response   string
		statusCode int
		expectErr  bool
		expected   []domain.ModelInfo
	}{
		"success": {
			statusCode: http.StatusOK,
			response: `{
				"object": "list",
				"data": [
					{ "id": "docker.io/ai/qwen3-embedding", "owned_by": "docker" },
					{ "id": "docker.io/ai/gpt-oss", "owned_by": "docker" },
					{ "id": "gpt-4o-mini", "owned_by": "openai" }
				]
			}`,
			expected: []domain.ModelInfo{
				{Name: "ai/gpt-oss", OwnedBy: "docker"},
				{Name: "gpt-4o-mini", OwnedBy: "openai"},
			},
		},
		"empty-list": {
			statusCode: http.StatusOK,
			response:   `{"object": "list", "data": []}`,
			expected:   []domain.ModelInfo{},
		},
		"server-error": {
			statusCode: http.StatusInternalServerError,
			response:   "Internal Server Error",
			expectErr:  true,
		},
		"invalid-json": {
			statusCode: http.StatusOK,
			response:   `{invalid json}`,
			expectErr:  true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, "/v1/models", r.URL.Path)
				assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
				w.WriteHeader(tt.statusCode)
				w.Write([]byte(tt.response)) //nolint:errcheck
			}))
			defer server.Close()

			adapter := NewAssistantClientAdapter(NewAPIClient(server.URL, "sk-test", server.Client()), nil)

			models, err := adapter.ListModels(context.Background())
			if tt.expectErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, models)
		})
	}
}
