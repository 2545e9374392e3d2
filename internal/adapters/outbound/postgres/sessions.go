package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"slices"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/symbiont-ai-fareassist/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-fareassist/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var sessionFields = []string{
	"id",
	"created_at",
	"last_activity_at",
}

var sessionMessageFields = []string{
	"id",
	"session_id",
	"chat_role",
	"content",
	"tool_call_id",
	"tool_calls",
	"created_at",
	"notice",
}

// SessionRepository persists chat sessions and their history in Postgres.
type SessionRepository struct {
	db *sql.DB
	sb squirrel.StatementBuilderType
}

// NewSessionRepository creates a new SessionRepository.
func NewSessionRepository(db *sql.DB) SessionRepository {
	return SessionRepository{
		db: db,
		sb: newStatementBuilder(db),
	}
}

// CreateSession inserts a new session.
func (r SessionRepository) CreateSession(ctx context.Context, session domain.Session) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	_, err := r.sb.
		Insert("chat_sessions").
		Columns(sessionFields...).
		Values(session.ID, session.CreatedAt, session.LastActivityAt).
		ExecContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// GetSession retrieves a session by ID.
func (r SessionRepository) GetSession(ctx context.Context, id uuid.UUID) (domain.Session, bool, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	var session domain.Session
	err := r.sb.
		Select(sessionFields...).
		From("chat_sessions").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		QueryRowContext(spanCtx).
		Scan(
			&session.ID,
			&session.CreatedAt,
			&session.LastActivityAt,
		)
	if err == sql.ErrNoRows {
		return domain.Session{}, false, nil
	}
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Session{}, false, err
	}
	return session, true, nil
}

// AppendMessages stores the messages and bumps the session activity time in one transaction.
func (r SessionRepository) AppendMessages(ctx context.Context, sessionID uuid.UUID, at time.Time, messages []domain.SessionMessage) error {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int("messages", len(messages)),
	))
	defer span.End()

	err := inTx(spanCtx, r.db, func(sb squirrel.StatementBuilderType) error {
		res, err := sb.
			Update("chat_sessions").
			Set("last_activity_at", at).
			Where(squirrel.Eq{"id": sessionID}).
			ExecContext(spanCtx)
		if err != nil {
			return err
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return domain.NewNotFoundErr(fmt.Sprintf("session %s not found", sessionID))
		}

		if len(messages) == 0 {
			return nil
		}

		insertQry := sb.
			Insert("chat_session_messages").
			Columns(sessionMessageFields...)
		for _, msg := range messages {
			var toolCalls any
			if len(msg.ToolCalls) > 0 {
				b, err := json.Marshal(msg.ToolCalls)
				if err != nil {
					return err
				}
				toolCalls = b
			}
			insertQry = insertQry.Values(
				msg.ID,
				sessionID,
				msg.Role,
				msg.Content,
				msg.ToolCallID,
				toolCalls,
				msg.CreatedAt,
				msg.Notice,
			)
		}
		_, err = insertQry.ExecContext(spanCtx)
		return err
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// ListMessages retrieves the session messages in insertion order.
// If limit > 0, only the latest N messages are returned.
func (r SessionRepository) ListMessages(ctx context.Context, sessionID uuid.UUID, limit int) ([]domain.SessionMessage, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int("limit", limit),
	))
	defer span.End()

	qry := r.sb.
		Select(sessionMessageFields...).
		From("chat_session_messages").
		Where(squirrel.Eq{"session_id": sessionID}).
		OrderBy("seq DESC")
	if limit > 0 {
		qry = qry.Limit(uint64(limit))
	}

	rows, err := qry.QueryContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	msgs := []domain.SessionMessage{}
	for rows.Next() {
		var (
			m      domain.SessionMessage
			tcJSON []byte
		)
		if err := rows.Scan(
			&m.ID,
			&m.SessionID,
			&m.Role,
			&m.Content,
			&m.ToolCallID,
			&tcJSON,
			&m.CreatedAt,
			&m.Notice,
		); telemetry.RecordErrorAndStatus(span, err) {
			return nil, err
		}
		if len(tcJSON) > 0 {
			if err := json.Unmarshal(tcJSON, &m.ToolCalls); telemetry.RecordErrorAndStatus(span, err) {
				return nil, err
			}
		}
		msgs = append(msgs, m)
	}
	if err := rows.Err(); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	// Fetched newest first; callers expect chronological order.
	slices.Reverse(msgs)
	return msgs, nil
}

// DeleteSession removes the session. Its messages are removed by cascade.
func (r SessionRepository) DeleteSession(ctx context.Context, id uuid.UUID) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	_, err := r.sb.
		Delete("chat_sessions").
		Where(squirrel.Eq{"id": id}).
		ExecContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// ListIdleSessions returns the sessions with no activity since idleSince, least recently used first.
func (r SessionRepository) ListIdleSessions(ctx context.Context, idleSince time.Time) ([]uuid.UUID, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	rows, err := r.sb.
		Select("id").
		From("chat_sessions").
		Where(squirrel.Lt{"last_activity_at": idleSince}).
		OrderBy("last_activity_at").
		QueryContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); telemetry.RecordErrorAndStatus(span, err) {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	span.SetAttributes(attribute.Int("sessions.idle", len(ids)))
	return ids, nil
}

// InitSessionRepository registers the Postgres domain.SessionRepository when a
// database connection was initialized.
type InitSessionRepository struct {
	Logger *log.Logger `resolve:""`
}

// Initialize registers the SessionRepository in the dependency container.
func (i InitSessionRepository) Initialize(ctx context.Context) (context.Context, error) {
	db, err := depend.Resolve[*sql.DB]()
	if err != nil {
		return ctx, nil
	}
	i.Logger.Println("InitSessionRepository: storing sessions in postgres")
	depend.Register[domain.SessionRepository](NewSessionRepository(db))
	return ctx, nil
}
