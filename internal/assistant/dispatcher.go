package assistant

import (
	"context"
	"errors"
	"fmt"

	"github.com/cleitonmarx/symbiont-ai-fareassist/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-fareassist/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Dispatcher resolves model-issued tool calls against the registry.
type Dispatcher struct {
	registry     *ToolRegistry
	auditor      domain.DispatchAuditor
	timeProvider domain.CurrentTimeProvider
}

// NewDispatcher creates a new Dispatcher.
func NewDispatcher(registry *ToolRegistry, auditor domain.DispatchAuditor, timeProvider domain.CurrentTimeProvider) Dispatcher {
	return Dispatcher{
		registry:     registry,
		auditor:      auditor,
		timeProvider: timeProvider,
	}
}

// Dispatch looks the tool up, validates and normalizes the arguments, runs the tool
// and records the dispatch before returning. The result is populated on every path.
func (d Dispatcher) Dispatch(ctx context.Context, req domain.ToolInvocationRequest) (domain.ToolResult, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("tool.name", req.Name),
		attribute.String("tool.call_id", req.ID),
	))
	defer span.End()

	startedAt := d.timeProvider.Now()
	result, err := d.dispatch(spanCtx, req)
	if err != nil {
		result = result.Failed(err)
	}

	d.auditor.Record(spanCtx, domain.DispatchRecord{
		CallID:    req.ID,
		ToolName:  req.Name,
		Arguments: req.Arguments,
		Status:    result.Status,
		Result:    result.Payload,
		Error:     result.Error,
		Duration:  d.timeProvider.Now().Sub(startedAt),
		At:        startedAt,
	})
	RecordToolDispatch(spanCtx, req.Name, result.Status)

	span.SetAttributes(attribute.String("tool.status", string(result.Status)))
	telemetry.RecordErrorAndStatus(span, err)
	return result, err
}

func (d Dispatcher) dispatch(ctx context.Context, req domain.ToolInvocationRequest) (domain.ToolResult, error) {
	result := domain.ToolResult{
		CallID:   req.ID,
		ToolName: req.Name,
	}

	tool, ok := d.registry.Lookup(req.Name)
	if !ok {
		return result, domain.NewUnknownToolErr(req.Name)
	}

	args, err := req.DecodeArguments()
	if err != nil {
		return result, err
	}

	normalized, err := validateArguments(tool.Descriptor(), args)
	if err != nil {
		return result, err
	}

	output, err := tool.Execute(ctx, normalized)
	if err != nil {
		var schemaErr *domain.SchemaValidationErr
		if errors.As(err, &schemaErr) {
			return result, schemaErr
		}
		return result, domain.NewToolExecutionErr(req.Name, err)
	}

	switch output.Status {
	case domain.ToolResultStatus_OK, domain.ToolResultStatus_NotFound:
	default:
		return result, domain.NewToolExecutionErr(req.Name, fmt.Errorf("unexpected result status %q", output.Status))
	}

	result.Status = output.Status
	result.Payload = output.Payload
	return result, nil
}

// InitToolDispatcher registers the Dispatcher.
type InitToolDispatcher struct {
	Registry     *ToolRegistry              `resolve:""`
	Auditor      domain.DispatchAuditor     `resolve:""`
	TimeProvider domain.CurrentTimeProvider `resolve:""`
}

// Initialize registers the Dispatcher as the domain.ToolDispatcher.
func (i InitToolDispatcher) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.ToolDispatcher](NewDispatcher(i.Registry, i.Auditor, i.TimeProvider))
	return ctx, nil
}
