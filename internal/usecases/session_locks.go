package usecases

import (
	"context"
	"errors"
	"sync"

	"github.com/cleitonmarx/symbiont-ai-fareassist/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
)

// errSessionClosed is the cancellation cause of a turn whose session was torn down.
var errSessionClosed = errors.New("session closed")

// SessionLocks serializes the work done on a session. Turns hold the lock for
// their whole run; deleting or expiring a session first cancels the turn in
// flight, then waits for the lock. Entries are dropped once nobody holds or
// waits for them.
type SessionLocks struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*sessionLock
}

type sessionLock struct {
	mu      sync.Mutex
	refs    int
	closing int
	cancel  context.CancelCauseFunc
}

// NewSessionLocks creates an empty SessionLocks.
func NewSessionLocks() *SessionLocks {
	return &SessionLocks{locks: make(map[uuid.UUID]*sessionLock)}
}

func (s *SessionLocks) entry(id uuid.UUID) *sessionLock {
	l, ok := s.locks[id]
	if !ok {
		l = &sessionLock{}
		s.locks[id] = l
	}
	l.refs++
	return l
}

func (s *SessionLocks) release(id uuid.UUID, l *sessionLock) {
	l.mu.Unlock()
	s.mu.Lock()
	l.refs--
	if l.refs == 0 {
		delete(s.locks, id)
	}
	s.mu.Unlock()
}

// lockTurn blocks until the session is free. The returned context is cancelled
// with errSessionClosed when the session is torn down while the turn runs, or
// right away when a teardown is already waiting.
func (s *SessionLocks) lockTurn(ctx context.Context, id uuid.UUID) (context.Context, func()) {
	s.mu.Lock()
	l := s.entry(id)
	s.mu.Unlock()

	l.mu.Lock()

	turnCtx, cancel := context.WithCancelCause(ctx)
	s.mu.Lock()
	l.cancel = cancel
	if l.closing > 0 {
		cancel(errSessionClosed)
	}
	s.mu.Unlock()

	return turnCtx, func() {
		s.mu.Lock()
		l.cancel = nil
		s.mu.Unlock()
		cancel(nil)
		s.release(id, l)
	}
}

// lockTeardown cancels the turn running on the session, if any, and blocks
// until the session is free.
func (s *SessionLocks) lockTeardown(id uuid.UUID) func() {
	s.mu.Lock()
	l := s.entry(id)
	l.closing++
	if l.cancel != nil {
		l.cancel(errSessionClosed)
	}
	s.mu.Unlock()

	l.mu.Lock()
	return func() {
		s.mu.Lock()
		l.closing--
		s.mu.Unlock()
		s.release(id, l)
	}
}

func (s *SessionLocks) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.locks)
}

// sessionClosed reports whether ctx was cancelled by a session teardown.
func sessionClosed(ctx context.Context) bool {
	return errors.Is(context.Cause(ctx), errSessionClosed)
}

// closeSession deletes a session once any turn running on it has stopped.
func closeSession(ctx context.Context, repo domain.SessionRepository, locks *SessionLocks, id uuid.UUID) error {
	unlock := locks.lockTeardown(id)
	defer unlock()
	return repo.DeleteSession(ctx, id)
}

// InitSessionLocks registers the SessionLocks shared by the session use cases.
type InitSessionLocks struct{}

// Initialize registers SessionLocks in the dependency container.
func (i InitSessionLocks) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register(NewSessionLocks())
	return ctx, nil
}
