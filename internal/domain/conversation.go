package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Session is one conversation between a user and the assistant.
// Its message history is the input of the next turn.
type Session struct {
	ID             uuid.UUID
	CreatedAt      time.Time
	LastActivityAt time.Time
}

// SessionMessage is one persisted message of a session.
type SessionMessage struct {
	ID         uuid.UUID
	SessionID  uuid.UUID
	Role       ChatRole
	Content    string
	ToolCallID *string
	ToolCalls  []ToolInvocationRequest
	CreatedAt  time.Time
	// Notice marks a reply written by the service rather than the model, such as
	// a backend failure or tool limit message. It is shown to the user but never
	// sent back to the model.
	Notice bool
}

// Validate checks if the message has valid data.
func (m SessionMessage) Validate() error {
	if m.SessionID == uuid.Nil {
		return NewValidationErr("session message must belong to a session")
	}
	if !m.Role.IsValid() {
		return NewValidationErr("invalid chat role: " + string(m.Role))
	}
	if m.Role == ChatRole_Tool && m.ToolCallID == nil {
		return NewValidationErr("tool messages must carry a tool call id")
	}
	return nil
}

// ToAssistantMessage converts the persisted message into a model message.
func (m SessionMessage) ToAssistantMessage() AssistantMessage {
	return AssistantMessage{
		Role:       m.Role,
		Content:    m.Content,
		ToolCallID: m.ToolCallID,
		ToolCalls:  m.ToolCalls,
	}
}

// SessionRepository defines the interface for session persistence.
type SessionRepository interface {
	// CreateSession persists a new session.
	CreateSession(ctx context.Context, session Session) error
	// GetSession returns the session with the given ID and a boolean indicating if it was found.
	GetSession(ctx context.Context, id uuid.UUID) (Session, bool, error)
	// AppendMessages appends messages to the session history and bumps its activity time.
	AppendMessages(ctx context.Context, sessionID uuid.UUID, at time.Time, messages []SessionMessage) error
	// ListMessages returns the session messages ordered by creation.
	// If limit is greater than 0, only the last N messages are returned.
	ListMessages(ctx context.Context, sessionID uuid.UUID, limit int) ([]SessionMessage, error)
	// DeleteSession removes the session and its messages.
	DeleteSession(ctx context.Context, id uuid.UUID) error
	// ListIdleSessions returns the IDs of sessions with no activity since the given time.
	ListIdleSessions(ctx context.Context, idleSince time.Time) ([]uuid.UUID, error)
}
