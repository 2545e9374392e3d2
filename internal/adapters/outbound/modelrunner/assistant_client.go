package modelrunner

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/cleitonmarx/symbiont-ai-fareassist/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-fareassist/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/time/rate"
)

// AssistantClient adapts APIClient to domain.Assistant.
type AssistantClient struct {
	client  APIClient
	limiter *rate.Limiter
}

// NewAssistantClientAdapter creates a new adapter. A nil limiter disables pacing.
func NewAssistantClientAdapter(client APIClient, limiter *rate.Limiter) AssistantClient {
	return AssistantClient{client: client, limiter: limiter}
}

// newRequestLimiter paces outgoing requests to requestsPerMinute with a two second burst.
func newRequestLimiter(requestsPerMinute int) *rate.Limiter {
	if requestsPerMinute <= 0 {
		return nil
	}
	burst := requestsPerMinute / 30
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Every(time.Minute/time.Duration(requestsPerMinute)), burst)
}

// waitForSlot blocks until the limiter admits a request. A wait that cannot
// finish before the deadline is reported as a transient 429 so the caller backs off.
func (a AssistantClient) waitForSlot(ctx context.Context) *domain.BackendErr {
	if a.limiter == nil {
		return nil
	}
	err := a.limiter.Wait(ctx)
	if err == nil {
		return nil
	}
	if ctx.Err() == nil {
		return domain.NewBackendErr(true, http.StatusTooManyRequests, err)
	}
	return toBackendErr(err)
}

// RunTurn implements domain.Assistant.
func (a AssistantClient) RunTurn(ctx context.Context, req domain.AssistantTurnRequest) (domain.AssistantTurnResponse, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if err := a.waitForSlot(spanCtx); err != nil {
		span.SetAttributes(attribute.Bool("llm.error.transient", err.Transient))
		telemetry.RecordErrorAndStatus(span, err)
		return domain.AssistantTurnResponse{}, err
	}

	resp, err := a.client.Chat(spanCtx, toChatRequest(req))
	if err != nil {
		backendErr := toBackendErr(err)
		span.SetAttributes(attribute.Bool("llm.error.transient", backendErr.Transient))
		telemetry.RecordErrorAndStatus(span, backendErr)
		return domain.AssistantTurnResponse{}, backendErr
	}
	if len(resp.Choices) == 0 {
		backendErr := domain.NewBackendErr(false, http.StatusOK, errors.New("no choices in response"))
		telemetry.RecordErrorAndStatus(span, backendErr)
		return domain.AssistantTurnResponse{}, backendErr
	}

	msg := resp.Choices[0].Message
	res := domain.AssistantTurnResponse{Content: msg.Content}
	for _, tc := range msg.ToolCalls {
		res.ToolCalls = append(res.ToolCalls, domain.ToolInvocationRequest{
			ID:        tc.ID,
			Name:      tc.Function.Name,
			Arguments: tc.Function.Arguments,
		})
	}
	if resp.Usage != nil {
		res.Usage = domain.AssistantUsage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		}
	}

	span.SetAttributes(attribute.Int("llm.tool_calls", len(res.ToolCalls)))
	telemetry.RecordErrorAndStatus(span, nil)
	return res, nil
}

// ListModels implements domain.AssistantModelCatalog. Embedding models are left out.
func (a AssistantClient) ListModels(ctx context.Context) ([]domain.ModelInfo, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	resp, err := a.client.Models(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	models := make([]domain.ModelInfo, 0, len(resp.Data))
	for _, m := range resp.Data {
		if strings.Contains(m.ID, "embed") {
			continue
		}
		models = append(models, domain.ModelInfo{
			Name:    strings.TrimPrefix(m.ID, "docker.io/"),
			OwnedBy: m.OwnedBy,
		})
	}
	return models, nil
}

func toChatRequest(req domain.AssistantTurnRequest) ChatRequest {
	adapterReq := ChatRequest{
		Model:            req.Model,
		Temperature:      req.Temperature,
		MaxTokens:        req.MaxTokens,
		TopP:             req.TopP,
		FrequencyPenalty: req.FrequencyPenalty,
		Messages:         make([]ChatMessage, len(req.Messages)),
	}

	for i, msg := range req.Messages {
		adpMsg := ChatMessage{
			Role:       string(msg.Role),
			ToolCallID: msg.ToolCallID,
			Content:    msg.Content,
		}
		for _, call := range msg.ToolCalls {
			adpMsg.ToolCalls = append(adpMsg.ToolCalls, ToolCall{
				ID:   call.ID,
				Type: "function",
				Function: ToolCallFunction{
					Name:      call.Name,
					Arguments: call.Arguments,
				},
			})
		}
		adapterReq.Messages[i] = adpMsg
	}

	if len(req.Tools) > 0 {
		adapterReq.Tools = make([]Tool, len(req.Tools))
		adapterReq.ToolChoice = "auto"
	}
	for i, d := range req.Tools {
		adapterReq.Tools[i] = Tool{
			Type: "function",
			Function: ToolFunc{
				Description: d.Description,
				Name:        d.Name,
				Parameters:  d.JSONSchema(),
			},
		}
	}

	return adapterReq
}

// InitAssistantClient initializes the assistant client dependency.
type InitAssistantClient struct {
	HttpClient        *http.Client `resolve:""`
	ModelHost         string       `config:"LLM_MODEL_HOST"`
	APIKey            string       `config:"LLM_API_KEY" default:"-"`
	RequestsPerMinute int          `config:"LLM_REQUESTS_PER_MINUTE" default:"600"`
}

// Initialize registers domain.Assistant.
func (i InitAssistantClient) Initialize(ctx context.Context) (context.Context, error) {
	apiKey := i.APIKey
	if apiKey == "-" {
		apiKey = ""
	}
	adapter := NewAssistantClientAdapter(
		NewAPIClient(i.ModelHost, apiKey, i.HttpClient),
		newRequestLimiter(i.RequestsPerMinute),
	)
	depend.Register[domain.Assistant](adapter)
	depend.Register[domain.AssistantModelCatalog](adapter)
	return ctx, nil
}
