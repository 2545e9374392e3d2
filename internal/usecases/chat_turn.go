package usecases

import (
	"context"
	"embed"
	"fmt"
	"strings"
	"time"

	"github.com/cleitonmarx/symbiont-ai-fareassist/internal/common"
	"github.com/cleitonmarx/symbiont-ai-fareassist/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-fareassist/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.yaml.in/yaml/v3"
)

const (
	// Keep tool calling deterministic to reduce malformed function arguments.
	CHAT_TEMPERATURE = 0.2
	CHAT_TOP_P       = 0.7

	fallbackReply           = "Sorry, I could not process your request. Please try again."
	toolLimitReply          = "Sorry, answering that needs more than %d price lookups. Please ask about fewer destinations at a time."
	backendUnavailableReply = "Error: the assistant is temporarily unavailable. Please try again in a moment."
	backendFailureReply     = "Error: the assistant could not process your request."
	sessionClosedReply      = "This conversation was closed before the reply was ready."
)

//go:embed prompts/chat.yml
var chatPrompt embed.FS

// TurnState is a state of the per-turn conversation state machine.
type TurnState string

const (
	TurnState_AwaitingUserInput TurnState = "AWAITING_USER_INPUT"
	TurnState_ModelRound1       TurnState = "MODEL_ROUND_1"
	TurnState_ToolDispatch      TurnState = "TOOL_DISPATCH"
	TurnState_ModelRound2       TurnState = "MODEL_ROUND_2"
)

// TurnOutcome tells how a turn ended.
type TurnOutcome string

const (
	TurnOutcome_Replied           TurnOutcome = "replied"
	TurnOutcome_ToolLimitExceeded TurnOutcome = "tool_limit_exceeded"
	TurnOutcome_BackendFailure    TurnOutcome = "backend_failure"
	TurnOutcome_SessionClosed     TurnOutcome = "session_closed"
)

// TurnResult is the user-facing outcome of one turn.
type TurnResult struct {
	SessionID   uuid.UUID
	Reply       string
	Outcome     TurnOutcome
	ToolResults []domain.ToolResult
	// Trace lists the states visited, starting and ending at AWAITING_USER_INPUT.
	Trace []TurnState
	Usage domain.AssistantUsage
}

// ChatTurnParams holds optional parameters for ChatTurn execution.
type ChatTurnParams struct {
	SessionID *uuid.UUID
}

// ChatTurnOption defines a functional option for configuring ChatTurnParams.
type ChatTurnOption func(*ChatTurnParams)

// WithSessionID continues an existing session instead of starting a new one.
func WithSessionID(sessionID uuid.UUID) ChatTurnOption {
	return func(params *ChatTurnParams) {
		params.SessionID = &sessionID
	}
}

// ChatTurn defines the interface for the ChatTurn use case
type ChatTurn interface {
	// Execute runs one user turn and persists it to the session history.
	// Backend failures and tool limits are reported through TurnResult.Outcome.
	Execute(ctx context.Context, userMessage string, opts ...ChatTurnOption) (TurnResult, error)
}

// ChatTurnSettings tunes the model rounds of a turn.
type ChatTurnSettings struct {
	Model               string
	MaxToolCallsPerTurn int
	HistoryMaxMessages  int
	MaxRoundAttempts    int
	RetryWaitMin        time.Duration
	RetryWaitMax        time.Duration
	CallTimeout         time.Duration
}

// ChatTurnImpl is the implementation of the ChatTurn use case
type ChatTurnImpl struct {
	sessionRepo  domain.SessionRepository
	timeProvider domain.CurrentTimeProvider
	assistant    domain.Assistant
	catalog      domain.ToolCatalog
	dispatcher   domain.ToolDispatcher
	settings     ChatTurnSettings
	retrier      roundRetrier
	locks        *SessionLocks
}

// NewChatTurnImpl creates a new instance of ChatTurnImpl
func NewChatTurnImpl(
	sessionRepo domain.SessionRepository,
	timeProvider domain.CurrentTimeProvider,
	assistant domain.Assistant,
	catalog domain.ToolCatalog,
	dispatcher domain.ToolDispatcher,
	locks *SessionLocks,
	settings ChatTurnSettings,
) ChatTurnImpl {
	return ChatTurnImpl{
		sessionRepo:  sessionRepo,
		timeProvider: timeProvider,
		assistant:    assistant,
		catalog:      catalog,
		dispatcher:   dispatcher,
		settings:     settings,
		retrier: newRoundRetrier(
			settings.MaxRoundAttempts,
			settings.RetryWaitMin,
			settings.RetryWaitMax,
			settings.CallTimeout,
		),
		locks: locks,
	}
}

// turnState is the conversation owned by a single turn.
type turnState struct {
	messages     []domain.AssistantMessage
	newMessages  []turnMessage
	pendingCalls []domain.ToolInvocationRequest
	toolCalls    int
	result       TurnResult
	err          error
}

// turnMessage is a message produced by the turn, waiting to be persisted.
type turnMessage struct {
	domain.AssistantMessage
	notice bool
}

func (t *turnState) append(msg domain.AssistantMessage) {
	t.messages = append(t.messages, msg)
	t.newMessages = append(t.newMessages, turnMessage{AssistantMessage: msg})
}

func (t *turnState) finish(outcome TurnOutcome, reply string) {
	t.result.Outcome = outcome
	t.result.Reply = reply
	t.append(domain.AssistantMessage{Role: domain.ChatRole_Assistant, Content: reply})
}

// finishWithNotice ends the turn with a reply written by the service.
func (t *turnState) finishWithNotice(outcome TurnOutcome, reply string) {
	t.finish(outcome, reply)
	t.newMessages[len(t.newMessages)-1].notice = true
}

// Execute runs one user turn and persists it to the session history.
func (ct ChatTurnImpl) Execute(ctx context.Context, userMessage string, opts ...ChatTurnOption) (TurnResult, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if strings.TrimSpace(userMessage) == "" {
		err := domain.NewValidationErr("message cannot be empty")
		telemetry.RecordErrorAndStatus(span, err)
		return TurnResult{}, err
	}

	params := &ChatTurnParams{}
	for _, opt := range opts {
		opt(params)
	}

	sessionID := uuid.New()
	if params.SessionID != nil {
		sessionID = *params.SessionID
	}
	span.SetAttributes(attribute.String("session.id", sessionID.String()))

	// Model rounds run on turnCtx so deleting the session stops them.
	turnCtx, unlock := ct.locks.lockTurn(spanCtx, sessionID)
	defer unlock()

	now := ct.timeProvider.Now()
	session, err := ct.openSession(spanCtx, sessionID, params.SessionID == nil, now)
	if telemetry.RecordErrorAndStatus(span, err) {
		return TurnResult{}, err
	}

	messages, err := ct.buildMessages(spanCtx, session.ID, now)
	if telemetry.RecordErrorAndStatus(span, err) {
		return TurnResult{}, err
	}

	turn := &turnState{
		messages: messages,
		result: TurnResult{
			SessionID: session.ID,
			Trace:     []TurnState{TurnState_AwaitingUserInput},
		},
	}
	turn.append(domain.AssistantMessage{Role: domain.ChatRole_User, Content: userMessage})

	ct.run(turnCtx, turn)

	if sessionClosed(turnCtx) {
		turn.result.Outcome = TurnOutcome_SessionClosed
		turn.result.Reply = sessionClosedReply
		turn.err = context.Cause(turnCtx)
	} else if err := ct.persistTurn(spanCtx, session.ID, now, turn.newMessages); telemetry.RecordErrorAndStatus(span, err) {
		return TurnResult{}, err
	}

	RecordLLMTokensUsed(spanCtx, turn.result.Usage.PromptTokens, turn.result.Usage.CompletionTokens)
	RecordChatTurn(spanCtx, turn.result.Outcome)

	span.SetAttributes(
		attribute.String("turn.outcome", string(turn.result.Outcome)),
		attribute.Int("turn.tool_calls", turn.toolCalls),
	)
	telemetry.RecordErrorAndStatus(span, turn.err)

	return turn.result, nil
}

// run drives AWAITING_USER_INPUT -> MODEL_ROUND_1 -> (TOOL_DISPATCH -> MODEL_ROUND_2)? -> AWAITING_USER_INPUT.
// A model round that asks for tools beyond the per-turn limit ends the turn without dispatching.
func (ct ChatTurnImpl) run(ctx context.Context, turn *turnState) {
	state := TurnState_ModelRound1
	for state != TurnState_AwaitingUserInput {
		turn.result.Trace = append(turn.result.Trace, state)
		switch state {
		case TurnState_ModelRound1, TurnState_ModelRound2:
			state = ct.modelRound(ctx, state, turn)
		case TurnState_ToolDispatch:
			state = ct.dispatchTools(ctx, turn)
		}
	}
	turn.result.Trace = append(turn.result.Trace, TurnState_AwaitingUserInput)
}

func (ct ChatTurnImpl) modelRound(ctx context.Context, round TurnState, turn *turnState) TurnState {
	req := domain.AssistantTurnRequest{
		Model:       ct.settings.Model,
		Messages:    turn.messages,
		Temperature: common.Ptr(CHAT_TEMPERATURE),
		TopP:        common.Ptr(CHAT_TOP_P),
		Tools:       ct.catalog.DescribeAll(),
	}

	startedAt := time.Now()
	resp, err := ct.retrier.run(ctx, round, func(ctx context.Context) (domain.AssistantTurnResponse, error) {
		return ct.assistant.RunTurn(ctx, req)
	})
	RecordLLMRoundDuration(ctx, round, time.Since(startedAt), err)
	if err != nil {
		turn.err = err
		turn.finishWithNotice(TurnOutcome_BackendFailure, replyForBackendErr(err))
		return TurnState_AwaitingUserInput
	}
	turn.result.Usage = turn.result.Usage.Add(resp.Usage)

	if !resp.RequestsTools() {
		reply := strings.TrimSpace(resp.Content)
		if reply == "" {
			turn.finishWithNotice(TurnOutcome_Replied, fallbackReply)
			return TurnState_AwaitingUserInput
		}
		turn.finish(TurnOutcome_Replied, reply)
		return TurnState_AwaitingUserInput
	}

	requested := turn.toolCalls + len(resp.ToolCalls)
	if requested > ct.settings.MaxToolCallsPerTurn {
		turn.err = domain.NewToolCallLimitExceededErr(ct.settings.MaxToolCallsPerTurn, requested)
		turn.finishWithNotice(TurnOutcome_ToolLimitExceeded, fmt.Sprintf(toolLimitReply, ct.settings.MaxToolCallsPerTurn))
		return TurnState_AwaitingUserInput
	}

	calls := make([]domain.ToolInvocationRequest, len(resp.ToolCalls))
	for i, call := range resp.ToolCalls {
		if call.ID == "" {
			call.ID = "call_" + uuid.NewString()
		}
		calls[i] = call
	}
	turn.pendingCalls = calls
	turn.append(domain.AssistantMessage{
		Role:      domain.ChatRole_Assistant,
		Content:   resp.Content,
		ToolCalls: calls,
	})
	return TurnState_ToolDispatch
}

// dispatchTools runs the pending calls one by one. Dispatch errors are fed
// back to the model as error tool results.
func (ct ChatTurnImpl) dispatchTools(ctx context.Context, turn *turnState) TurnState {
	for _, call := range turn.pendingCalls {
		telemetry.AddEvent(ctx, ct.catalog.StatusMessage(call.Name), attribute.String("tool.name", call.Name))

		result, err := ct.dispatcher.Dispatch(ctx, call)
		if err != nil {
			result.CallID = call.ID
			result.ToolName = call.Name
			result = result.Failed(err)
		}
		turn.result.ToolResults = append(turn.result.ToolResults, result)
		turn.append(result.Message())
	}
	turn.toolCalls += len(turn.pendingCalls)
	turn.pendingCalls = nil
	return TurnState_ModelRound2
}

func replyForBackendErr(err error) string {
	if domain.IsTransientBackendErr(err) {
		return backendUnavailableReply
	}
	return backendFailureReply
}

// openSession creates a new session or loads the requested one.
func (ct ChatTurnImpl) openSession(ctx context.Context, sessionID uuid.UUID, create bool, now time.Time) (domain.Session, error) {
	if create {
		session := domain.Session{
			ID:             sessionID,
			CreatedAt:      now,
			LastActivityAt: now,
		}
		if err := ct.sessionRepo.CreateSession(ctx, session); err != nil {
			return domain.Session{}, err
		}
		return session, nil
	}

	session, found, err := ct.sessionRepo.GetSession(ctx, sessionID)
	if err != nil {
		return domain.Session{}, err
	}
	if !found {
		return domain.Session{}, domain.NewNotFoundErr(fmt.Sprintf("session %s not found", sessionID))
	}
	return session, nil
}

// buildSystemPrompt loads the embedded prompt and stamps it with the current date.
func (ct ChatTurnImpl) buildSystemPrompt(now time.Time) ([]domain.AssistantMessage, error) {
	file, err := chatPrompt.Open("prompts/chat.yml")
	if err != nil {
		return nil, fmt.Errorf("failed to open chat prompt: %w", err)
	}
	defer file.Close() //nolint:errcheck

	messages := []domain.AssistantMessage{}
	err = yaml.NewDecoder(file).Decode(&messages)
	if err != nil {
		return nil, fmt.Errorf("failed to decode chat prompt: %w", err)
	}
	for i, msg := range messages {
		if msg.Role == domain.ChatRole_System {
			messages[i].Content = fmt.Sprintf(msg.Content, now.Format(time.DateOnly))
		}
	}
	return messages, nil
}

// buildMessages returns the system prompt followed by the recent session history.
func (ct ChatTurnImpl) buildMessages(ctx context.Context, sessionID uuid.UUID, now time.Time) ([]domain.AssistantMessage, error) {
	systemPrompt, err := ct.buildSystemPrompt(now)
	if err != nil {
		return nil, err
	}

	history, err := ct.sessionRepo.ListMessages(ctx, sessionID, ct.settings.HistoryMaxMessages)
	if err != nil {
		return nil, err
	}

	// The window may cut through a tool exchange; start at the first user message.
	start := len(history)
	for i, msg := range history {
		if msg.Role == domain.ChatRole_User {
			start = i
			break
		}
	}
	history = history[start:]

	messages := make([]domain.AssistantMessage, 0, len(systemPrompt)+len(history)+1)
	messages = append(messages, systemPrompt...)
	for _, msg := range history {
		if msg.Notice {
			continue
		}
		messages = append(messages, msg.ToAssistantMessage())
	}
	return messages, nil
}

// persistTurn appends the messages produced by the turn to the session history.
func (ct ChatTurnImpl) persistTurn(ctx context.Context, sessionID uuid.UUID, now time.Time, messages []turnMessage) error {
	sessionMessages := make([]domain.SessionMessage, 0, len(messages))
	for _, msg := range messages {
		sessionMsg := domain.SessionMessage{
			ID:         uuid.New(),
			SessionID:  sessionID,
			Role:       msg.Role,
			Content:    msg.Content,
			ToolCallID: msg.ToolCallID,
			ToolCalls:  msg.ToolCalls,
			CreatedAt:  now,
			Notice:     msg.notice,
		}
		if err := sessionMsg.Validate(); err != nil {
			return err
		}
		sessionMessages = append(sessionMessages, sessionMsg)
	}
	return ct.sessionRepo.AppendMessages(ctx, sessionID, now, sessionMessages)
}

// InitChatTurn is the initializer for the ChatTurn use case
type InitChatTurn struct {
	SessionRepo  domain.SessionRepository   `resolve:""`
	TimeProvider domain.CurrentTimeProvider `resolve:""`
	Assistant    domain.Assistant           `resolve:""`
	Catalog      domain.ToolCatalog         `resolve:""`
	Dispatcher   domain.ToolDispatcher      `resolve:""`
	Locks        *SessionLocks              `resolve:""`
	Model        string                     `config:"LLM_MODEL"`
	// Maximum number of tool calls the model may request in a single turn
	MaxToolCallsPerTurn int           `config:"LLM_MAX_TOOL_CALLS_PER_TURN" default:"2"`
	MaxRoundAttempts    int           `config:"LLM_MAX_ROUND_ATTEMPTS" default:"3"`
	RetryWaitMin        time.Duration `config:"LLM_RETRY_WAIT_MIN" default:"500ms"`
	RetryWaitMax        time.Duration `config:"LLM_RETRY_WAIT_MAX" default:"4s"`
	CallTimeout         time.Duration `config:"LLM_CALL_TIMEOUT" default:"30s"`
	HistoryMaxMessages  int           `config:"CHAT_HISTORY_MAX_MESSAGES" default:"20"`
}

// Initialize registers the ChatTurn use case in the dependency container
func (i InitChatTurn) Initialize(ctx context.Context) (context.Context, error) {
	if i.MaxToolCallsPerTurn < 1 {
		return ctx, fmt.Errorf("LLM_MAX_TOOL_CALLS_PER_TURN must be at least 1, got %d", i.MaxToolCallsPerTurn)
	}
	depend.Register[ChatTurn](NewChatTurnImpl(
		i.SessionRepo,
		i.TimeProvider,
		i.Assistant,
		i.Catalog,
		i.Dispatcher,
		i.Locks,
		ChatTurnSettings{
			Model:               i.Model,
			MaxToolCallsPerTurn: i.MaxToolCallsPerTurn,
			HistoryMaxMessages:  i.HistoryMaxMessages,
			MaxRoundAttempts:    i.MaxRoundAttempts,
			RetryWaitMin:        i.RetryWaitMin,
			RetryWaitMax:        i.RetryWaitMax,
			CallTimeout:         i.CallTimeout,
		},
	))
	return ctx, nil
}
