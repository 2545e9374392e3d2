package pubsub

import (
	"context"
	"encoding/json"
	"log"

	pubsubV2 "cloud.google.com/go/pubsub/v2"
	"github.com/cleitonmarx/symbiont-ai-fareassist/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-fareassist/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// AuditPublisher implements domain.AuditPublisher using Google Cloud Pub/Sub.
type AuditPublisher struct {
	client *pubsubV2.Client
	topic  string
}

// NewAuditPublisher creates a new AuditPublisher that publishes to topic.
func NewAuditPublisher(client *pubsubV2.Client, topic string) AuditPublisher {
	return AuditPublisher{
		client: client,
		topic:  topic,
	}
}

// PublishDispatch publishes the dispatch record as a JSON message and waits for the server ack.
func (p AuditPublisher) PublishDispatch(ctx context.Context, record domain.DispatchRecord) error {
	spanCtx, span := telemetry.Start(ctx,
		trace.WithAttributes(
			attribute.String("call_id", record.CallID),
			attribute.String("tool", record.ToolName),
			attribute.String("topic", p.topic),
		),
	)
	defer span.End()

	payload, err := json.Marshal(record)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	result := p.client.Publisher(p.topic).Publish(spanCtx, &pubsubV2.Message{
		Data: payload,
		Attributes: map[string]string{
			"tool_name": record.ToolName,
			"status":    string(record.Status),
			"call_id":   record.CallID,
		},
	})

	_, err = result.Get(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// InitAuditPublisher registers the AuditPublisher when a Pub/Sub client is available.
type InitAuditPublisher struct {
	Logger *log.Logger `resolve:""`
	Topic  string      `config:"PUBSUB_AUDIT_TOPIC" default:"tool-dispatch-audit"`
}

// Initialize registers the AuditPublisher as the implementation of domain.AuditPublisher.
func (i InitAuditPublisher) Initialize(ctx context.Context) (context.Context, error) {
	client, err := depend.Resolve[*pubsubV2.Client]()
	if err != nil {
		return ctx, nil
	}
	i.Logger.Printf("InitAuditPublisher: publishing dispatch audit records to topic %q", i.Topic)
	depend.Register[domain.AuditPublisher](NewAuditPublisher(client, i.Topic))
	return ctx, nil
}
