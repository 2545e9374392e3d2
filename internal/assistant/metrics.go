package assistant

import (
	"context"

	"github.com/cleitonmarx/symbiont-ai-fareassist/internal/domain"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	meter          = otel.Meter("assistant")
	ToolDispatches metric.Int64Counter
)

func init() {
	var err error
	ToolDispatches, err = meter.Int64Counter(
		"tool_dispatch_total",
		metric.WithDescription("Total tool dispatches by tool and result status"),
	)
	if err != nil {
		panic(err)
	}
}

// RecordToolDispatch counts one dispatch.
func RecordToolDispatch(ctx context.Context, toolName string, status domain.ToolResultStatus) {
	ToolDispatches.Add(ctx, 1, metric.WithAttributes(
		attribute.String("tool", toolName),
		attribute.String("status", string(status)),
	))
}
