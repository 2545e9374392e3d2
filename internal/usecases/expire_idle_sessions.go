package usecases

import (
	"context"
	"time"

	"github.com/cleitonmarx/symbiont-ai-fareassist/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-fareassist/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
)

// ExpireIdleSessions defines the interface for the ExpireIdleSessions use case
type ExpireIdleSessions interface {
	// Execute removes sessions idle for longer than the configured TTL and returns how many were removed.
	Execute(ctx context.Context) (int, error)
}

// ExpireIdleSessionsImpl is the implementation of the ExpireIdleSessions use case
type ExpireIdleSessionsImpl struct {
	sessionRepo  domain.SessionRepository
	timeProvider domain.CurrentTimeProvider
	locks        *SessionLocks
	idleTTL      time.Duration
}

// NewExpireIdleSessionsImpl creates a new instance of ExpireIdleSessionsImpl
func NewExpireIdleSessionsImpl(
	sessionRepo domain.SessionRepository,
	timeProvider domain.CurrentTimeProvider,
	locks *SessionLocks,
	idleTTL time.Duration,
) ExpireIdleSessionsImpl {
	return ExpireIdleSessionsImpl{
		sessionRepo:  sessionRepo,
		timeProvider: timeProvider,
		locks:        locks,
		idleTTL:      idleTTL,
	}
}

// Execute removes sessions idle for longer than the configured TTL, cancelling
// any turn still running on them. It stops at the first failed removal.
func (uc ExpireIdleSessionsImpl) Execute(ctx context.Context) (int, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	idleSince := uc.timeProvider.Now().Add(-uc.idleTTL)
	ids, err := uc.sessionRepo.ListIdleSessions(spanCtx, idleSince)
	if telemetry.RecordErrorAndStatus(span, err) {
		return 0, err
	}

	removed := 0
	for _, id := range ids {
		if err := closeSession(spanCtx, uc.sessionRepo, uc.locks, id); telemetry.RecordErrorAndStatus(span, err) {
			span.SetAttributes(attribute.Int("sessions.removed", removed))
			return removed, err
		}
		removed++
	}
	span.SetAttributes(attribute.Int("sessions.removed", removed))
	return removed, nil
}

// InitExpireIdleSessions is the initializer for the ExpireIdleSessions use case
type InitExpireIdleSessions struct {
	SessionRepo  domain.SessionRepository   `resolve:""`
	TimeProvider domain.CurrentTimeProvider `resolve:""`
	Locks        *SessionLocks              `resolve:""`
	IdleTTL      time.Duration              `config:"SESSION_IDLE_TTL" default:"30m"`
}

// Initialize registers the ExpireIdleSessions use case in the dependency container
func (i InitExpireIdleSessions) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ExpireIdleSessions](NewExpireIdleSessionsImpl(i.SessionRepo, i.TimeProvider, i.Locks, i.IdleTTL))
	return ctx, nil
}
