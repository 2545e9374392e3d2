package usecases

import (
	"context"
	"fmt"

	"github.com/cleitonmarx/symbiont-ai-fareassist/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-fareassist/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
)

// ListSessionMessages defines the interface for the ListSessionMessages use case
type ListSessionMessages interface {
	Query(ctx context.Context, sessionID uuid.UUID) ([]domain.SessionMessage, error)
}

// ListSessionMessagesImpl is the implementation of the ListSessionMessages use case
type ListSessionMessagesImpl struct {
	sessionRepo domain.SessionRepository
}

// NewListSessionMessagesImpl creates a new instance of ListSessionMessagesImpl
func NewListSessionMessagesImpl(sessionRepo domain.SessionRepository) ListSessionMessagesImpl {
	return ListSessionMessagesImpl{sessionRepo: sessionRepo}
}

// Query returns the user and assistant messages of a session.
func (lsm ListSessionMessagesImpl) Query(ctx context.Context, sessionID uuid.UUID) ([]domain.SessionMessage, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	_, found, err := lsm.sessionRepo.GetSession(spanCtx, sessionID)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	if !found {
		err := domain.NewNotFoundErr(fmt.Sprintf("session %s not found", sessionID))
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}

	messages, err := lsm.sessionRepo.ListMessages(spanCtx, sessionID, 0)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	// Filter out tool exchanges before returning to the user
	visible := []domain.SessionMessage{}
	for _, msg := range messages {
		if msg.Role != domain.ChatRole_Tool && len(msg.Content) > 0 {
			visible = append(visible, msg)
		}
	}
	return visible, nil
}

// InitListSessionMessages is the initializer for the ListSessionMessages use case
type InitListSessionMessages struct {
	SessionRepo domain.SessionRepository `resolve:""`
}

// Initialize registers the ListSessionMessages use case in the dependency container
func (i InitListSessionMessages) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ListSessionMessages](NewListSessionMessagesImpl(i.SessionRepo))
	return ctx, nil
}
