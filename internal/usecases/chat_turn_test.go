package usecases

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-ai-fareassist/internal/adapters/outbound/memory"
	"github.com/cleitonmarx/symbiont-ai-fareassist/internal/assistant"
	"github.com/cleitonmarx/symbiont-ai-fareassist/internal/assistant/actions"
	"github.com/cleitonmarx/symbiont-ai-fareassist/internal/common"
	"github.com/cleitonmarx/symbiont-ai-fareassist/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedTime = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

var defaultSettings = ChatTurnSettings{
	Model:               "ai/qwen3",
	MaxToolCallsPerTurn: 2,
	HistoryMaxMessages:  20,
	MaxRoundAttempts:    3,
	RetryWaitMin:        time.Millisecond,
	RetryWaitMax:        time.Millisecond,
	CallTimeout:         time.Second,
}

// fareTools wires the real registry and dispatcher over a fixture price table.
func fareTools(t *testing.T, timeProvider domain.CurrentTimeProvider) (*assistant.ToolRegistry, assistant.Dispatcher) {
	t.Helper()
	table, err := domain.NewPriceTable("USD", map[string]int{
		"london": 799,
		"paris":  899,
		"tokyo":  1400,
		"berlin": 499,
	})
	require.NoError(t, err)
	rule, err := domain.NewDiscountRule(10)
	require.NoError(t, err)

	registry, err := assistant.NewToolRegistry(
		actions.NewTicketPriceAction(table),
		actions.NewDiscountedPriceAction(table, rule),
	)
	require.NoError(t, err)

	auditor := assistant.NewLogAuditor(slog.New(slog.DiscardHandler), nil)
	return registry, assistant.NewDispatcher(registry, auditor, timeProvider)
}

func fixedClock(t *testing.T) *domain.MockCurrentTimeProvider {
	clock := domain.NewMockCurrentTimeProvider(t)
	clock.EXPECT().Now().Return(fixedTime).Maybe()
	return clock
}

// scriptRounds makes the assistant mock answer each model round with the next
// scripted response and records the requests it received.
func scriptRounds(
	m *domain.MockAssistant,
	rounds ...func(req domain.AssistantTurnRequest) (domain.AssistantTurnResponse, error),
) *[]domain.AssistantTurnRequest {
	var requests []domain.AssistantTurnRequest
	m.EXPECT().
		RunTurn(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, req domain.AssistantTurnRequest) (domain.AssistantTurnResponse, error) {
			requests = append(requests, req)
			return rounds[len(requests)-1](req)
		}).
		Times(len(rounds))
	return &requests
}

func toolCall(id, name, args string) func(domain.AssistantTurnRequest) (domain.AssistantTurnResponse, error) {
	return toolCalls(domain.ToolInvocationRequest{ID: id, Name: name, Arguments: args})
}

func toolCalls(calls ...domain.ToolInvocationRequest) func(domain.AssistantTurnRequest) (domain.AssistantTurnResponse, error) {
	return func(domain.AssistantTurnRequest) (domain.AssistantTurnResponse, error) {
		return domain.AssistantTurnResponse{
			ToolCalls: calls,
			Usage:     domain.AssistantUsage{PromptTokens: 100, CompletionTokens: 10, TotalTokens: 110},
		}, nil
	}
}

func reply(content string) func(domain.AssistantTurnRequest) (domain.AssistantTurnResponse, error) {
	return func(domain.AssistantTurnRequest) (domain.AssistantTurnResponse, error) {
		return domain.AssistantTurnResponse{
			Content: content,
			Usage:   domain.AssistantUsage{PromptTokens: 150, CompletionTokens: 20, TotalTokens: 170},
		}, nil
	}
}

func failWith(err error) func(domain.AssistantTurnRequest) (domain.AssistantTurnResponse, error) {
	return func(domain.AssistantTurnRequest) (domain.AssistantTurnResponse, error) {
		return domain.AssistantTurnResponse{}, err
	}
}

func noSleep(context.Context, time.Duration) error { return nil }

func lastToolMessage(t *testing.T, req domain.AssistantTurnRequest) domain.AssistantMessage {
	t.Helper()
	last := req.Messages[len(req.Messages)-1]
	require.Equal(t, domain.ChatRole_Tool, last.Role)
	return last
}

func TestChatTurnImpl_Execute_Scenarios(t *testing.T) {
	roundTrip := []TurnState{
		TurnState_AwaitingUserInput,
		TurnState_ModelRound1,
		TurnState_ToolDispatch,
		TurnState_ModelRound2,
		TurnState_AwaitingUserInput,
	}

	tests := map[string]struct {
		message         string
		rounds          func(t *testing.T) []func(domain.AssistantTurnRequest) (domain.AssistantTurnResponse, error)
		expectedReply   string
		expectedOutcome TurnOutcome
		expectedTrace   []TurnState
		assertResults   func(t *testing.T, results []domain.ToolResult)
	}{
		"ticket-price-for-london": {
			message: "How much to London?",
			rounds: func(t *testing.T) []func(domain.AssistantTurnRequest) (domain.AssistantTurnResponse, error) {
				return []func(domain.AssistantTurnRequest) (domain.AssistantTurnResponse, error){
					toolCall("call-1", "get_ticket_price", `{"destination_city":"London"}`),
					func(req domain.AssistantTurnRequest) (domain.AssistantTurnResponse, error) {
						toolMsg := lastToolMessage(t, req)
						assert.Equal(t, common.Ptr("call-1"), toolMsg.ToolCallID)
						assert.Contains(t, toolMsg.Content, "799")
						return reply("A return ticket to London is 799 USD.")(req)
					},
				}
			},
			expectedReply:   "A return ticket to London is 799 USD.",
			expectedOutcome: TurnOutcome_Replied,
			expectedTrace:   roundTrip,
			assertResults: func(t *testing.T, results []domain.ToolResult) {
				require.Len(t, results, 1)
				assert.Equal(t, domain.ToolResultStatus_OK, results[0].Status)
				assert.Equal(t, 799, results[0].Payload["price"])
			},
		},
		"discounted-price-for-tokyo": {
			message: "sale price for Tokyo",
			rounds: func(t *testing.T) []func(domain.AssistantTurnRequest) (domain.AssistantTurnResponse, error) {
				return []func(domain.AssistantTurnRequest) (domain.AssistantTurnResponse, error){
					toolCall("call-1", "get_discounted_price", `{"destination_city":"tokyo"}`),
					func(req domain.AssistantTurnRequest) (domain.AssistantTurnResponse, error) {
						assert.Contains(t, lastToolMessage(t, req).Content, "1260")
						return reply("Tokyo is on sale for 1260 USD.")(req)
					},
				}
			},
			expectedReply:   "Tokyo is on sale for 1260 USD.",
			expectedOutcome: TurnOutcome_Replied,
			expectedTrace:   roundTrip,
			assertResults: func(t *testing.T, results []domain.ToolResult) {
				require.Len(t, results, 1)
				assert.Equal(t, 1260, results[0].Payload["price"])
				assert.Less(t, results[0].Payload["price"], results[0].Payload["base_price"])
			},
		},
		"no-pricing-question": {
			message: "Hi there!",
			rounds: func(t *testing.T) []func(domain.AssistantTurnRequest) (domain.AssistantTurnResponse, error) {
				return []func(domain.AssistantTurnRequest) (domain.AssistantTurnResponse, error){
					reply("Hello! How can I help you with your trip?"),
				}
			},
			expectedReply:   "Hello! How can I help you with your trip?",
			expectedOutcome: TurnOutcome_Replied,
			expectedTrace: []TurnState{
				TurnState_AwaitingUserInput,
				TurnState_ModelRound1,
				TurnState_AwaitingUserInput,
			},
			assertResults: func(t *testing.T, results []domain.ToolResult) {
				assert.Empty(t, results)
			},
		},
		"unknown-city-is-relayed": {
			message: "How much to Atlantis?",
			rounds: func(t *testing.T) []func(domain.AssistantTurnRequest) (domain.AssistantTurnResponse, error) {
				return []func(domain.AssistantTurnRequest) (domain.AssistantTurnResponse, error){
					toolCall("call-1", "get_ticket_price", `{"destination_city":"Atlantis"}`),
					func(req domain.AssistantTurnRequest) (domain.AssistantTurnResponse, error) {
						assert.Contains(t, lastToolMessage(t, req).Content, "not_found")
						return reply("Sorry, we have no fare listed for Atlantis.")(req)
					},
				}
			},
			expectedReply:   "Sorry, we have no fare listed for Atlantis.",
			expectedOutcome: TurnOutcome_Replied,
			expectedTrace:   roundTrip,
			assertResults: func(t *testing.T, results []domain.ToolResult) {
				require.Len(t, results, 1)
				assert.Equal(t, domain.ToolResultStatus_NotFound, results[0].Status)
			},
		},
		"unknown-tool-is-reported-to-the-model": {
			message: "Book me a flight to Paris",
			rounds: func(t *testing.T) []func(domain.AssistantTurnRequest) (domain.AssistantTurnResponse, error) {
				return []func(domain.AssistantTurnRequest) (domain.AssistantTurnResponse, error){
					toolCall("call-1", "book_flight", `{"destination_city":"Paris"}`),
					func(req domain.AssistantTurnRequest) (domain.AssistantTurnResponse, error) {
						content := lastToolMessage(t, req).Content
						assert.Contains(t, content, "error")
						assert.Contains(t, content, "book_flight")
						return reply("Sorry, I can only look up ticket prices.")(req)
					},
				}
			},
			expectedReply:   "Sorry, I can only look up ticket prices.",
			expectedOutcome: TurnOutcome_Replied,
			expectedTrace:   roundTrip,
			assertResults: func(t *testing.T, results []domain.ToolResult) {
				require.Len(t, results, 1)
				assert.Equal(t, domain.ToolResultStatus_Error, results[0].Status)
				assert.Equal(t, "book_flight", results[0].ToolName)
				assert.Equal(t, domain.ToolErrorCode_UnknownTool, results[0].ErrorCode)
			},
		},
		"schema-violation-is-reported-to-the-model": {
			message: "How much to London?",
			rounds: func(t *testing.T) []func(domain.AssistantTurnRequest) (domain.AssistantTurnResponse, error) {
				return []func(domain.AssistantTurnRequest) (domain.AssistantTurnResponse, error){
					toolCall("call-1", "get_ticket_price", `{"city":"London"}`),
					reply("Sorry, which city would you like to fly to?"),
				}
			},
			expectedReply:   "Sorry, which city would you like to fly to?",
			expectedOutcome: TurnOutcome_Replied,
			expectedTrace:   roundTrip,
			assertResults: func(t *testing.T, results []domain.ToolResult) {
				require.Len(t, results, 1)
				assert.Equal(t, domain.ToolResultStatus_Error, results[0].Status)
				assert.Contains(t, results[0].Error, "city")
				assert.Equal(t, domain.ToolErrorCode_SchemaViolation, results[0].ErrorCode)
			},
		},
		"same-tool-twice-is-dispatched-independently": {
			message: "Compare London and Paris",
			rounds: func(t *testing.T) []func(domain.AssistantTurnRequest) (domain.AssistantTurnResponse, error) {
				return []func(domain.AssistantTurnRequest) (domain.AssistantTurnResponse, error){
					toolCalls(
						domain.ToolInvocationRequest{ID: "call-1", Name: "get_ticket_price", Arguments: `{"destination_city":"London"}`},
						domain.ToolInvocationRequest{ID: "call-2", Name: "get_ticket_price", Arguments: `{"destination_city":"Paris"}`},
					),
					func(req domain.AssistantTurnRequest) (domain.AssistantTurnResponse, error) {
						n := len(req.Messages)
						assert.Equal(t, common.Ptr("call-1"), req.Messages[n-2].ToolCallID)
						assert.Equal(t, common.Ptr("call-2"), req.Messages[n-1].ToolCallID)
						return reply("London is 799 USD and Paris is 899 USD.")(req)
					},
				}
			},
			expectedReply:   "London is 799 USD and Paris is 899 USD.",
			expectedOutcome: TurnOutcome_Replied,
			expectedTrace:   roundTrip,
			assertResults: func(t *testing.T, results []domain.ToolResult) {
				require.Len(t, results, 2)
				assert.Equal(t, 799, results[0].Payload["price"])
				assert.Equal(t, 899, results[1].Payload["price"])
			},
		},
		"empty-final-reply-falls-back": {
			message: "How much to Berlin?",
			rounds: func(t *testing.T) []func(domain.AssistantTurnRequest) (domain.AssistantTurnResponse, error) {
				return []func(domain.AssistantTurnRequest) (domain.AssistantTurnResponse, error){
					toolCall("call-1", "get_ticket_price", `{"destination_city":"Berlin"}`),
					reply("  "),
				}
			},
			expectedReply:   fallbackReply,
			expectedOutcome: TurnOutcome_Replied,
			expectedTrace:   roundTrip,
			assertResults: func(t *testing.T, results []domain.ToolResult) {
				require.Len(t, results, 1)
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			clock := fixedClock(t)
			registry, dispatcher := fareTools(t, clock)
			repo := memory.NewSessionRepository()
			model := domain.NewMockAssistant(t)
			requests := scriptRounds(model, tt.rounds(t)...)

			uc := NewChatTurnImpl(repo, clock, model, registry, dispatcher, NewSessionLocks(), defaultSettings)
			got, err := uc.Execute(t.Context(), tt.message)
			require.NoError(t, err)

			assert.Equal(t, tt.expectedReply, got.Reply)
			assert.Equal(t, tt.expectedOutcome, got.Outcome)
			assert.Equal(t, tt.expectedTrace, got.Trace)
			tt.assertResults(t, got.ToolResults)

			// Every round sees the system prompt, the user message and the tool descriptors.
			for _, req := range *requests {
				assert.Equal(t, domain.ChatRole_System, req.Messages[0].Role)
				assert.Contains(t, req.Messages[0].Content, "2026-03-14")
				assert.Equal(t, tt.message, req.Messages[1].Content)
				assert.Equal(t, registry.DescribeAll(), req.Tools)
			}

			history, err := repo.ListMessages(t.Context(), got.SessionID, 0)
			require.NoError(t, err)
			require.NotEmpty(t, history)
			assert.Equal(t, domain.ChatRole_User, history[0].Role)
			assert.Equal(t, tt.message, history[0].Content)
			assert.Equal(t, tt.expectedReply, history[len(history)-1].Content)

			// user + reply, plus the tool-call message and one tool message per result.
			expectedLen := 2
			if len(got.ToolResults) > 0 {
				expectedLen += 1 + len(got.ToolResults)
			}
			assert.Len(t, history, expectedLen)
		})
	}
}

func TestChatTurnImpl_Execute_PersistsToolExchange(t *testing.T) {
	clock := fixedClock(t)
	registry, dispatcher := fareTools(t, clock)
	repo := memory.NewSessionRepository()
	model := domain.NewMockAssistant(t)
	scriptRounds(model,
		toolCall("call-1", "get_ticket_price", `{"destination_city":"London"}`),
		reply("A return ticket to London is 799 USD."),
	)

	uc := NewChatTurnImpl(repo, clock, model, registry, dispatcher, NewSessionLocks(), defaultSettings)
	got, err := uc.Execute(t.Context(), "How much to London?")
	require.NoError(t, err)

	history, err := repo.ListMessages(t.Context(), got.SessionID, 0)
	require.NoError(t, err)
	require.Len(t, history, 4)

	assert.Equal(t, domain.ChatRole_User, history[0].Role)
	assert.Equal(t, domain.ChatRole_Assistant, history[1].Role)
	assert.Equal(t, []domain.ToolInvocationRequest{
		{ID: "call-1", Name: "get_ticket_price", Arguments: `{"destination_city":"London"}`},
	}, history[1].ToolCalls)
	assert.Equal(t, domain.ChatRole_Tool, history[2].Role)
	assert.Equal(t, common.Ptr("call-1"), history[2].ToolCallID)
	assert.Equal(t, domain.ChatRole_Assistant, history[3].Role)
	assert.Equal(t, "A return ticket to London is 799 USD.", history[3].Content)

	session, found, err := repo.GetSession(t.Context(), got.SessionID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, fixedTime, session.LastActivityAt)

	assert.Equal(t, domain.AssistantUsage{PromptTokens: 250, CompletionTokens: 30, TotalTokens: 280}, got.Usage)
}

func TestChatTurnImpl_Execute_ToolLimit(t *testing.T) {
	tests := map[string]struct {
		rounds        []func(domain.AssistantTurnRequest) (domain.AssistantTurnResponse, error)
		expectedTrace []TurnState
		dispatched    int
	}{
		"first-round-over-limit": {
			rounds: []func(domain.AssistantTurnRequest) (domain.AssistantTurnResponse, error){
				toolCalls(
					domain.ToolInvocationRequest{ID: "call-1", Name: "get_ticket_price", Arguments: `{"destination_city":"London"}`},
					domain.ToolInvocationRequest{ID: "call-2", Name: "get_ticket_price", Arguments: `{"destination_city":"Paris"}`},
					domain.ToolInvocationRequest{ID: "call-3", Name: "get_ticket_price", Arguments: `{"destination_city":"Tokyo"}`},
				),
			},
			expectedTrace: []TurnState{
				TurnState_AwaitingUserInput,
				TurnState_ModelRound1,
				TurnState_AwaitingUserInput,
			},
			dispatched: 0,
		},
		"cumulative-calls-over-limit": {
			rounds: []func(domain.AssistantTurnRequest) (domain.AssistantTurnResponse, error){
				toolCalls(
					domain.ToolInvocationRequest{ID: "call-1", Name: "get_ticket_price", Arguments: `{"destination_city":"London"}`},
					domain.ToolInvocationRequest{ID: "call-2", Name: "get_ticket_price", Arguments: `{"destination_city":"Paris"}`},
				),
				toolCall("call-3", "get_discounted_price", `{"destination_city":"Paris"}`),
			},
			expectedTrace: []TurnState{
				TurnState_AwaitingUserInput,
				TurnState_ModelRound1,
				TurnState_ToolDispatch,
				TurnState_ModelRound2,
				TurnState_AwaitingUserInput,
			},
			dispatched: 2,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			clock := fixedClock(t)
			registry, _ := fareTools(t, clock)
			dispatcher := domain.NewMockToolDispatcher(t)
			if tt.dispatched > 0 {
				dispatcher.EXPECT().
					Dispatch(mock.Anything, mock.Anything).
					RunAndReturn(func(ctx context.Context, req domain.ToolInvocationRequest) (domain.ToolResult, error) {
						return domain.ToolResult{CallID: req.ID, ToolName: req.Name, Status: domain.ToolResultStatus_OK}, nil
					}).
					Times(tt.dispatched)
			}
			model := domain.NewMockAssistant(t)
			scriptRounds(model, tt.rounds...)
			repo := memory.NewSessionRepository()

			uc := NewChatTurnImpl(repo, clock, model, registry, dispatcher, NewSessionLocks(), defaultSettings)
			got, err := uc.Execute(t.Context(), "Prices for London, Paris and Tokyo?")
			require.NoError(t, err)

			assert.Equal(t, TurnOutcome_ToolLimitExceeded, got.Outcome)
			assert.Contains(t, got.Reply, "more than 2 price lookups")
			assert.Equal(t, tt.expectedTrace, got.Trace)
			assert.Len(t, got.ToolResults, tt.dispatched)

			history, err := repo.ListMessages(t.Context(), got.SessionID, 0)
			require.NoError(t, err)
			assert.Equal(t, got.Reply, history[len(history)-1].Content)
			assert.True(t, history[len(history)-1].Notice)
			for _, msg := range history {
				if msg.Role == domain.ChatRole_Assistant && len(msg.ToolCalls) > 0 {
					assert.LessOrEqual(t, len(msg.ToolCalls), 2)
				}
			}
		})
	}
}

func TestChatTurnImpl_Execute_BackendFailures(t *testing.T) {
	rateLimited := domain.NewBackendErr(true, http.StatusTooManyRequests, errors.New("non-2xx response: 429 Too Many Requests"))
	unauthorized := domain.NewBackendErr(false, http.StatusUnauthorized, errors.New("non-2xx response: 401 Unauthorized: invalid api key"))

	tests := map[string]struct {
		rounds          []func(domain.AssistantTurnRequest) (domain.AssistantTurnResponse, error)
		expectedReply   string
		expectedOutcome TurnOutcome
	}{
		"transient-error-is-retried": {
			rounds: []func(domain.AssistantTurnRequest) (domain.AssistantTurnResponse, error){
				failWith(rateLimited),
				reply("Hello!"),
			},
			expectedReply:   "Hello!",
			expectedOutcome: TurnOutcome_Replied,
		},
		"transient-errors-exhaust-attempts": {
			rounds: []func(domain.AssistantTurnRequest) (domain.AssistantTurnResponse, error){
				failWith(rateLimited),
				failWith(rateLimited),
				failWith(rateLimited),
			},
			expectedReply:   backendUnavailableReply,
			expectedOutcome: TurnOutcome_BackendFailure,
		},
		"non-transient-error-aborts": {
			rounds: []func(domain.AssistantTurnRequest) (domain.AssistantTurnResponse, error){
				failWith(unauthorized),
			},
			expectedReply:   backendFailureReply,
			expectedOutcome: TurnOutcome_BackendFailure,
		},
		"second-round-failure-after-dispatch": {
			rounds: []func(domain.AssistantTurnRequest) (domain.AssistantTurnResponse, error){
				toolCall("call-1", "get_ticket_price", `{"destination_city":"London"}`),
				failWith(unauthorized),
			},
			expectedReply:   backendFailureReply,
			expectedOutcome: TurnOutcome_BackendFailure,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			clock := fixedClock(t)
			registry, dispatcher := fareTools(t, clock)
			model := domain.NewMockAssistant(t)
			scriptRounds(model, tt.rounds...)

			repo := memory.NewSessionRepository()
			uc := NewChatTurnImpl(repo, clock, model, registry, dispatcher, NewSessionLocks(), defaultSettings)
			uc.retrier.sleep = noSleep

			got, err := uc.Execute(t.Context(), "How much to London?")
			require.NoError(t, err)
			assert.Equal(t, tt.expectedOutcome, got.Outcome)
			assert.Equal(t, tt.expectedReply, got.Reply)
			assert.NotContains(t, got.Reply, "invalid api key")

			history, err := repo.ListMessages(t.Context(), got.SessionID, 0)
			require.NoError(t, err)
			last := history[len(history)-1]
			assert.Equal(t, tt.expectedReply, last.Content)
			assert.Equal(t, tt.expectedOutcome == TurnOutcome_BackendFailure, last.Notice)
		})
	}
}

func TestChatTurnImpl_Execute_CallTimeout(t *testing.T) {
	clock := fixedClock(t)
	registry, dispatcher := fareTools(t, clock)
	model := domain.NewMockAssistant(t)
	model.EXPECT().
		RunTurn(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, req domain.AssistantTurnRequest) (domain.AssistantTurnResponse, error) {
			<-ctx.Done()
			return domain.AssistantTurnResponse{}, domain.NewBackendErr(true, 0, ctx.Err())
		}).
		Once()

	settings := defaultSettings
	settings.MaxRoundAttempts = 1
	settings.CallTimeout = 10 * time.Millisecond

	uc := NewChatTurnImpl(memory.NewSessionRepository(), clock, model, registry, dispatcher, NewSessionLocks(), settings)
	got, err := uc.Execute(t.Context(), "How much to London?")
	require.NoError(t, err)
	assert.Equal(t, TurnOutcome_BackendFailure, got.Outcome)
	assert.Equal(t, backendUnavailableReply, got.Reply)
}

func TestChatTurnImpl_Execute_ContinuesSession(t *testing.T) {
	clock := fixedClock(t)
	registry, dispatcher := fareTools(t, clock)
	repo := memory.NewSessionRepository()

	sessionID := uuid.New()
	require.NoError(t, repo.CreateSession(t.Context(), domain.Session{ID: sessionID, CreatedAt: fixedTime, LastActivityAt: fixedTime}))
	require.NoError(t, repo.AppendMessages(t.Context(), sessionID, fixedTime, []domain.SessionMessage{
		{ID: uuid.New(), SessionID: sessionID, Role: domain.ChatRole_Tool, ToolCallID: common.Ptr("old-call"), Content: "status: ok"},
		{ID: uuid.New(), SessionID: sessionID, Role: domain.ChatRole_User, Content: "How much to London?"},
		{ID: uuid.New(), SessionID: sessionID, Role: domain.ChatRole_Assistant, Content: "A return ticket to London is 799 USD."},
	}))

	model := domain.NewMockAssistant(t)
	requests := scriptRounds(model, reply("You're welcome!"))

	settings := defaultSettings
	settings.HistoryMaxMessages = 3

	uc := NewChatTurnImpl(repo, clock, model, registry, dispatcher, NewSessionLocks(), settings)
	got, err := uc.Execute(t.Context(), "Thanks!", WithSessionID(sessionID))
	require.NoError(t, err)
	assert.Equal(t, sessionID, got.SessionID)

	require.Len(t, *requests, 1)
	msgs := (*requests)[0].Messages
	require.Len(t, msgs, 4)
	assert.Equal(t, domain.ChatRole_System, msgs[0].Role)
	assert.Equal(t, "How much to London?", msgs[1].Content)
	assert.Equal(t, "A return ticket to London is 799 USD.", msgs[2].Content)
	assert.Equal(t, "Thanks!", msgs[3].Content)

	history, err := repo.ListMessages(t.Context(), sessionID, 0)
	require.NoError(t, err)
	assert.Len(t, history, 5)
}

func TestChatTurnImpl_Execute_NoticesStayOutOfModelContext(t *testing.T) {
	clock := fixedClock(t)
	registry, dispatcher := fareTools(t, clock)
	repo := memory.NewSessionRepository()

	sessionID := uuid.New()
	require.NoError(t, repo.CreateSession(t.Context(), domain.Session{ID: sessionID, CreatedAt: fixedTime, LastActivityAt: fixedTime}))
	require.NoError(t, repo.AppendMessages(t.Context(), sessionID, fixedTime, []domain.SessionMessage{
		{ID: uuid.New(), SessionID: sessionID, Role: domain.ChatRole_User, Content: "How much to London?"},
		{ID: uuid.New(), SessionID: sessionID, Role: domain.ChatRole_Assistant, Content: backendUnavailableReply, Notice: true},
	}))

	model := domain.NewMockAssistant(t)
	requests := scriptRounds(model, reply("Hello again!"))

	uc := NewChatTurnImpl(repo, clock, model, registry, dispatcher, NewSessionLocks(), defaultSettings)
	_, err := uc.Execute(t.Context(), "Are you there?", WithSessionID(sessionID))
	require.NoError(t, err)

	require.Len(t, *requests, 1)
	msgs := (*requests)[0].Messages
	require.Len(t, msgs, 3)
	assert.Equal(t, "How much to London?", msgs[1].Content)
	assert.Equal(t, "Are you there?", msgs[2].Content)
	for _, msg := range msgs {
		assert.NotEqual(t, backendUnavailableReply, msg.Content)
	}

	history, err := repo.ListMessages(t.Context(), sessionID, 0)
	require.NoError(t, err)
	require.Len(t, history, 4)
	assert.True(t, history[1].Notice)
	assert.False(t, history[3].Notice)
}

func TestChatTurnImpl_Execute_SessionClosedMidTurn(t *testing.T) {
	tests := map[string]struct {
		teardown func(t *testing.T, repo domain.SessionRepository, locks *SessionLocks, clock domain.CurrentTimeProvider, sessionID uuid.UUID)
	}{
		"deleted": {
			teardown: func(t *testing.T, repo domain.SessionRepository, locks *SessionLocks, clock domain.CurrentTimeProvider, sessionID uuid.UUID) {
				require.NoError(t, NewDeleteSessionImpl(repo, locks).Execute(t.Context(), sessionID))
			},
		},
		"expired": {
			teardown: func(t *testing.T, repo domain.SessionRepository, locks *SessionLocks, clock domain.CurrentTimeProvider, sessionID uuid.UUID) {
				removed, err := NewExpireIdleSessionsImpl(repo, clock, locks, 30*time.Minute).Execute(t.Context())
				require.NoError(t, err)
				assert.Equal(t, 1, removed)
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			clock := fixedClock(t)
			registry, dispatcher := fareTools(t, clock)
			repo := memory.NewSessionRepository()
			locks := NewSessionLocks()

			sessionID := uuid.New()
			idleSince := fixedTime.Add(-time.Hour)
			require.NoError(t, repo.CreateSession(t.Context(), domain.Session{ID: sessionID, CreatedAt: idleSince, LastActivityAt: idleSince}))

			started := make(chan struct{})
			var cancelled atomic.Bool
			model := domain.NewMockAssistant(t)
			model.EXPECT().
				RunTurn(mock.Anything, mock.Anything).
				RunAndReturn(func(ctx context.Context, req domain.AssistantTurnRequest) (domain.AssistantTurnResponse, error) {
					close(started)
					<-ctx.Done()
					cancelled.Store(true)
					return domain.AssistantTurnResponse{}, domain.NewBackendErr(false, 0, ctx.Err())
				}).
				Once()

			uc := NewChatTurnImpl(repo, clock, model, registry, dispatcher, locks, defaultSettings)

			type turnOutput struct {
				result TurnResult
				err    error
			}
			done := make(chan turnOutput, 1)
			go func() {
				result, err := uc.Execute(context.Background(), "How much to London?", WithSessionID(sessionID))
				done <- turnOutput{result: result, err: err}
			}()

			<-started
			tt.teardown(t, repo, locks, clock, sessionID)

			out := <-done
			require.NoError(t, out.err)
			assert.True(t, cancelled.Load())
			assert.Equal(t, TurnOutcome_SessionClosed, out.result.Outcome)
			assert.Equal(t, sessionClosedReply, out.result.Reply)
			assert.Equal(t, sessionID, out.result.SessionID)

			_, found, err := repo.GetSession(t.Context(), sessionID)
			require.NoError(t, err)
			assert.False(t, found)
			assert.Equal(t, 0, locks.len())
		})
	}
}

func TestChatTurnImpl_Execute_Errors(t *testing.T) {
	unknownSession := uuid.New()

	tests := map[string]struct {
		message         string
		opts            []ChatTurnOption
		setExpectations func(repo *domain.MockSessionRepository, clock *domain.MockCurrentTimeProvider)
		assertErr       func(t *testing.T, err error)
	}{
		"empty-message": {
			message: "   ",
			assertErr: func(t *testing.T, err error) {
				var validationErr *domain.ValidationErr
				assert.ErrorAs(t, err, &validationErr)
			},
		},
		"unknown-session": {
			message: "Hello",
			opts:    []ChatTurnOption{WithSessionID(unknownSession)},
			setExpectations: func(repo *domain.MockSessionRepository, clock *domain.MockCurrentTimeProvider) {
				clock.EXPECT().Now().Return(fixedTime).Once()
				repo.EXPECT().
					GetSession(mock.Anything, unknownSession).
					Return(domain.Session{}, false, nil).
					Once()
			},
			assertErr: func(t *testing.T, err error) {
				var notFoundErr *domain.NotFoundErr
				assert.ErrorAs(t, err, &notFoundErr)
			},
		},
		"create-session-error": {
			message: "Hello",
			setExpectations: func(repo *domain.MockSessionRepository, clock *domain.MockCurrentTimeProvider) {
				clock.EXPECT().Now().Return(fixedTime).Once()
				repo.EXPECT().
					CreateSession(mock.Anything, mock.Anything).
					Return(errors.New("database error")).
					Once()
			},
			assertErr: func(t *testing.T, err error) {
				assert.EqualError(t, err, "database error")
			},
		},
		"history-error": {
			message: "Hello",
			setExpectations: func(repo *domain.MockSessionRepository, clock *domain.MockCurrentTimeProvider) {
				clock.EXPECT().Now().Return(fixedTime).Once()
				repo.EXPECT().
					CreateSession(mock.Anything, mock.Anything).
					Return(nil).
					Once()
				repo.EXPECT().
					ListMessages(mock.Anything, mock.Anything, 20).
					Return(nil, errors.New("database error")).
					Once()
			},
			assertErr: func(t *testing.T, err error) {
				assert.EqualError(t, err, "database error")
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			repo := domain.NewMockSessionRepository(t)
			clock := domain.NewMockCurrentTimeProvider(t)
			if tt.setExpectations != nil {
				tt.setExpectations(repo, clock)
			}

			uc := NewChatTurnImpl(
				repo,
				clock,
				domain.NewMockAssistant(t),
				domain.NewMockToolCatalog(t),
				domain.NewMockToolDispatcher(t),
				NewSessionLocks(),
				defaultSettings,
			)
			_, err := uc.Execute(t.Context(), tt.message, tt.opts...)
			require.Error(t, err)
			tt.assertErr(t, err)
		})
	}
}

func TestChatTurnImpl_Execute_PersistError(t *testing.T) {
	clock := fixedClock(t)
	registry, dispatcher := fareTools(t, clock)
	repo := domain.NewMockSessionRepository(t)
	repo.EXPECT().CreateSession(mock.Anything, mock.Anything).Return(nil).Once()
	repo.EXPECT().ListMessages(mock.Anything, mock.Anything, 20).Return([]domain.SessionMessage{}, nil).Once()
	repo.EXPECT().
		AppendMessages(mock.Anything, mock.Anything, fixedTime, mock.MatchedBy(func(msgs []domain.SessionMessage) bool {
			return len(msgs) == 2 && msgs[0].Role == domain.ChatRole_User && msgs[1].Role == domain.ChatRole_Assistant
		})).
		Return(errors.New("database error")).
		Once()

	model := domain.NewMockAssistant(t)
	scriptRounds(model, reply("Hello!"))

	uc := NewChatTurnImpl(repo, clock, model, registry, dispatcher, NewSessionLocks(), defaultSettings)
	_, err := uc.Execute(t.Context(), "Hi")
	assert.EqualError(t, err, "database error")
}

func TestChatTurnImpl_Execute_SerializesSameSession(t *testing.T) {
	clock := fixedClock(t)
	registry, dispatcher := fareTools(t, clock)
	repo := memory.NewSessionRepository()
	sessionID := uuid.New()
	require.NoError(t, repo.CreateSession(t.Context(), domain.Session{ID: sessionID}))

	var inFlight, maxInFlight atomic.Int32
	model := domain.NewMockAssistant(t)
	model.EXPECT().
		RunTurn(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, req domain.AssistantTurnRequest) (domain.AssistantTurnResponse, error) {
			n := inFlight.Add(1)
			if n > maxInFlight.Load() {
				maxInFlight.Store(n)
			}
			time.Sleep(5 * time.Millisecond)
			inFlight.Add(-1)
			return domain.AssistantTurnResponse{Content: "ok"}, nil
		}).
		Times(4)

	uc := NewChatTurnImpl(repo, clock, model, registry, dispatcher, NewSessionLocks(), defaultSettings)

	errs := make(chan error, 4)
	for i := range 4 {
		go func() {
			_, err := uc.Execute(context.Background(), strings.Repeat("?", i+1), WithSessionID(sessionID))
			errs <- err
		}()
	}
	for range 4 {
		require.NoError(t, <-errs)
	}

	assert.Equal(t, int32(1), maxInFlight.Load())
	assert.Equal(t, 0, uc.locks.len())

	history, err := repo.ListMessages(t.Context(), sessionID, 0)
	require.NoError(t, err)
	assert.Len(t, history, 8)
}

func TestInitChatTurn_Initialize(t *testing.T) {
	tests := map[string]struct {
		maxToolCalls int
		expectErr    bool
	}{
		"registers-use-case": {maxToolCalls: 2},
		"rejects-zero-limit": {maxToolCalls: 0, expectErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			i := InitChatTurn{
				SessionRepo:         domain.NewMockSessionRepository(t),
				TimeProvider:        domain.NewMockCurrentTimeProvider(t),
				Assistant:           domain.NewMockAssistant(t),
				Catalog:             domain.NewMockToolCatalog(t),
				Dispatcher:          domain.NewMockToolDispatcher(t),
				Locks:               NewSessionLocks(),
				Model:               "ai/qwen3",
				MaxToolCallsPerTurn: tt.maxToolCalls,
				MaxRoundAttempts:    3,
			}

			_, err := i.Initialize(t.Context())
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			r, err := depend.Resolve[ChatTurn]()
			assert.NoError(t, err)
			assert.NotNil(t, r)
		})
	}
}
