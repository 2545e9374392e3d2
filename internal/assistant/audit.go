package assistant

import (
	"context"
	"log/slog"

	"github.com/cleitonmarx/symbiont-ai-fareassist/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
)

// LogAuditor writes every dispatch as a structured log record and, when a publisher
// is configured, forwards it. Publishing failures are logged and never surface.
type LogAuditor struct {
	logger    *slog.Logger
	publisher domain.AuditPublisher
}

// NewLogAuditor creates a new LogAuditor. publisher may be nil.
func NewLogAuditor(logger *slog.Logger, publisher domain.AuditPublisher) LogAuditor {
	return LogAuditor{
		logger:    logger,
		publisher: publisher,
	}
}

// Record implements domain.DispatchAuditor.
func (a LogAuditor) Record(ctx context.Context, record domain.DispatchRecord) {
	attrs := []slog.Attr{
		slog.String("call_id", record.CallID),
		slog.String("tool", record.ToolName),
		slog.String("arguments", record.Arguments),
		slog.String("status", string(record.Status)),
		slog.Duration("duration", record.Duration),
	}
	if len(record.Result) > 0 {
		attrs = append(attrs, slog.Any("result", record.Result))
	}
	level := slog.LevelInfo
	if record.Error != "" {
		level = slog.LevelWarn
		attrs = append(attrs, slog.String("error", record.Error))
	}
	a.logger.LogAttrs(ctx, level, "tool dispatch", attrs...)

	if a.publisher == nil {
		return
	}
	if err := a.publisher.PublishDispatch(ctx, record); err != nil {
		a.logger.WarnContext(ctx, "failed to publish tool dispatch audit record",
			slog.String("call_id", record.CallID),
			slog.String("error", err.Error()),
		)
	}
}

// InitDispatchAuditor registers the LogAuditor. The audit publisher is optional.
type InitDispatchAuditor struct {
	Logger *slog.Logger `resolve:""`
}

// Initialize registers the domain.DispatchAuditor.
func (i InitDispatchAuditor) Initialize(ctx context.Context) (context.Context, error) {
	publisher, _ := depend.Resolve[domain.AuditPublisher]()
	depend.Register[domain.DispatchAuditor](NewLogAuditor(i.Logger, publisher))
	return ctx, nil
}
