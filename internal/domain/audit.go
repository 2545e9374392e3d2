package domain

import (
	"context"
	"time"
)

// DispatchRecord is the audit entry written for every tool dispatch.
type DispatchRecord struct {
	CallID    string           `json:"call_id"`
	ToolName  string           `json:"tool_name"`
	Arguments string           `json:"arguments"`
	Status    ToolResultStatus `json:"status"`
	Result    map[string]any   `json:"result,omitempty"`
	Error     string           `json:"error,omitempty"`
	Duration  time.Duration    `json:"duration_ns"`
	At        time.Time        `json:"at"`
}

// DispatchAuditor records dispatches. It must not fail the dispatch.
type DispatchAuditor interface {
	Record(ctx context.Context, record DispatchRecord)
}

// AuditPublisher ships dispatch records to an external sink.
type AuditPublisher interface {
	PublishDispatch(ctx context.Context, record DispatchRecord) error
}
