package usecases

import (
	"context"
	"fmt"

	"github.com/cleitonmarx/symbiont-ai-fareassist/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-fareassist/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
)

// DeleteSession defines the interface for deleting a session usecase
type DeleteSession interface {
	Execute(ctx context.Context, sessionID uuid.UUID) error
}

// DeleteSessionImpl implements the DeleteSession usecase
type DeleteSessionImpl struct {
	sessionRepo domain.SessionRepository
	locks       *SessionLocks
}

// NewDeleteSessionImpl creates a new DeleteSessionImpl instance
func NewDeleteSessionImpl(sessionRepo domain.SessionRepository, locks *SessionLocks) DeleteSessionImpl {
	return DeleteSessionImpl{sessionRepo: sessionRepo, locks: locks}
}

// Execute deletes the session and its history. A turn running on the session
// is cancelled first.
func (uc DeleteSessionImpl) Execute(ctx context.Context, sessionID uuid.UUID) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	_, found, err := uc.sessionRepo.GetSession(spanCtx, sessionID)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	if !found {
		err := domain.NewNotFoundErr(fmt.Sprintf("session %s not found", sessionID))
		telemetry.RecordErrorAndStatus(span, err)
		return err
	}

	err = closeSession(spanCtx, uc.sessionRepo, uc.locks, sessionID)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// InitDeleteSession is the initializer for the DeleteSession usecase
type InitDeleteSession struct {
	SessionRepo domain.SessionRepository `resolve:""`
	Locks       *SessionLocks            `resolve:""`
}

// Initialize registers the DeleteSession usecase in the dependency container
func (i InitDeleteSession) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[DeleteSession](NewDeleteSessionImpl(i.SessionRepo, i.Locks))
	return ctx, nil
}
