package usecases

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	meter           = otel.Meter("usecases")
	LLMTokensUsed   metric.Int64Counter
	LLMRoundRetries metric.Int64Counter
	ChatTurns       metric.Int64Counter
	LLMRoundLatency metric.Float64Histogram
)

func init() {
	var err error
	// Tokens consumed by LLM (input + output)
	LLMTokensUsed, err = meter.Int64Counter(
		"llm_tokens_used_total",
		metric.WithDescription("Total LLM tokens consumed"),
	)
	if err != nil {
		panic(err)
	}

	LLMRoundRetries, err = meter.Int64Counter(
		"llm_round_retries_total",
		metric.WithDescription("Model rounds retried after a transient backend failure"),
	)
	if err != nil {
		panic(err)
	}

	LLMRoundLatency, err = meter.Float64Histogram(
		"llm_round_duration_seconds",
		metric.WithDescription("Model round latency, retries included"),
		metric.WithUnit("s"),
	)
	if err != nil {
		panic(err)
	}

	ChatTurns, err = meter.Int64Counter(
		"chat_turns_total",
		metric.WithDescription("Completed chat turns by outcome"),
	)
	if err != nil {
		panic(err)
	}
}

// RecordLLMTokensUsed records the number of tokens used in an LLM chat operation.
func RecordLLMTokensUsed(ctx context.Context, promptTokens, completionTokens int) {
	LLMTokensUsed.Add(ctx, int64(promptTokens), metric.WithAttributes(
		attribute.String("token_type", "prompt"),
	))
	LLMTokensUsed.Add(ctx, int64(completionTokens), metric.WithAttributes(
		attribute.String("token_type", "completion"),
	))
}

// RecordLLMRoundRetry records one retried model round.
func RecordLLMRoundRetry(ctx context.Context, round TurnState) {
	LLMRoundRetries.Add(ctx, 1, metric.WithAttributes(
		attribute.String("round", string(round)),
	))
}

// RecordChatTurn records a finished turn.
func RecordChatTurn(ctx context.Context, outcome TurnOutcome) {
	ChatTurns.Add(ctx, 1, metric.WithAttributes(
		attribute.String("outcome", string(outcome)),
	))
}

// RecordLLMRoundDuration records how long a model round took, retries included.
func RecordLLMRoundDuration(ctx context.Context, round TurnState, d time.Duration, err error) {
	LLMRoundLatency.Record(ctx, d.Seconds(), metric.WithAttributes(
		attribute.String("round", string(round)),
		attribute.Bool("failed", err != nil),
	))
}
