// Package memory keeps session history in process memory. It is the default
// store when no database is configured; history is lost on restart.
package memory

import (
	"context"
	"fmt"
	"log"
	"slices"
	"sync"
	"time"

	"github.com/cleitonmarx/symbiont-ai-fareassist/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-fareassist/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

type sessionEntry struct {
	session  domain.Session
	messages []domain.SessionMessage
}

// SessionRepository is an in-memory domain.SessionRepository.
type SessionRepository struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*sessionEntry
}

// NewSessionRepository creates an empty SessionRepository.
func NewSessionRepository() *SessionRepository {
	return &SessionRepository{sessions: make(map[uuid.UUID]*sessionEntry)}
}

// CreateSession stores a new session. Reusing an ID is an error.
func (r *SessionRepository) CreateSession(ctx context.Context, session domain.Session) error {
	_, span := telemetry.Start(ctx)
	defer span.End()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sessions[session.ID]; exists {
		err := fmt.Errorf("session %s already exists", session.ID)
		telemetry.RecordErrorAndStatus(span, err)
		return err
	}
	r.sessions[session.ID] = &sessionEntry{session: session}
	return nil
}

// GetSession returns the session with the given ID.
func (r *SessionRepository) GetSession(ctx context.Context, id uuid.UUID) (domain.Session, bool, error) {
	_, span := telemetry.Start(ctx)
	defer span.End()

	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, found := r.sessions[id]
	if !found {
		return domain.Session{}, false, nil
	}
	return entry.session, true, nil
}

// AppendMessages appends messages to the session and bumps its activity time.
func (r *SessionRepository) AppendMessages(ctx context.Context, sessionID uuid.UUID, at time.Time, messages []domain.SessionMessage) error {
	_, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int("messages", len(messages)),
	))
	defer span.End()

	r.mu.Lock()
	defer r.mu.Unlock()

	entry, found := r.sessions[sessionID]
	if !found {
		err := domain.NewNotFoundErr(fmt.Sprintf("session %s not found", sessionID))
		telemetry.RecordErrorAndStatus(span, err)
		return err
	}
	entry.messages = append(entry.messages, messages...)
	if at.After(entry.session.LastActivityAt) {
		entry.session.LastActivityAt = at
	}
	return nil
}

// ListMessages returns the session messages in insertion order.
// If limit > 0, only the latest N messages are returned.
func (r *SessionRepository) ListMessages(ctx context.Context, sessionID uuid.UUID, limit int) ([]domain.SessionMessage, error) {
	_, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int("limit", limit),
	))
	defer span.End()

	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, found := r.sessions[sessionID]
	if !found {
		return []domain.SessionMessage{}, nil
	}
	msgs := entry.messages
	if limit > 0 && len(msgs) > limit {
		msgs = msgs[len(msgs)-limit:]
	}
	return slices.Clone(msgs), nil
}

// DeleteSession removes the session and its messages. Unknown IDs are ignored.
func (r *SessionRepository) DeleteSession(ctx context.Context, id uuid.UUID) error {
	_, span := telemetry.Start(ctx)
	defer span.End()

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, id)
	return nil
}

// ListIdleSessions returns the sessions whose last activity is before idleSince,
// least recently used first.
func (r *SessionRepository) ListIdleSessions(ctx context.Context, idleSince time.Time) ([]uuid.UUID, error) {
	_, span := telemetry.Start(ctx)
	defer span.End()

	r.mu.RLock()
	defer r.mu.RUnlock()

	var idle []domain.Session
	for _, entry := range r.sessions {
		if entry.session.LastActivityAt.Before(idleSince) {
			idle = append(idle, entry.session)
		}
	}
	slices.SortFunc(idle, func(a, b domain.Session) int {
		return a.LastActivityAt.Compare(b.LastActivityAt)
	})

	var ids []uuid.UUID
	for _, session := range idle {
		ids = append(ids, session.ID)
	}
	span.SetAttributes(attribute.Int("sessions.idle", len(ids)))
	return ids, nil
}

// InitSessionRepository registers the in-memory repository unless another
// domain.SessionRepository was registered before it.
type InitSessionRepository struct {
	Logger *log.Logger `resolve:""`
}

// Initialize registers the in-memory domain.SessionRepository when needed.
func (i InitSessionRepository) Initialize(ctx context.Context) (context.Context, error) {
	if _, err := depend.Resolve[domain.SessionRepository](); err == nil {
		return ctx, nil
	}
	i.Logger.Println("InitSessionRepository: no database configured, keeping sessions in memory")
	depend.Register[domain.SessionRepository](NewSessionRepository())
	return ctx, nil
}
