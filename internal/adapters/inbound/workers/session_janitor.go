package workers

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/cleitonmarx/symbiont-ai-fareassist/internal/usecases"
)

// SessionJanitor is a runnable that periodically removes idle chat sessions.
type SessionJanitor struct {
	ExpireIdleSessions  usecases.ExpireIdleSessions `resolve:""`
	Logger              *log.Logger                 `resolve:""`
	Interval            time.Duration               `config:"SESSION_JANITOR_INTERVAL" default:"1m"`
	workerExecutionChan chan struct{}
}

// Run starts the periodic cleanup of idle sessions.
func (j SessionJanitor) Run(ctx context.Context) error {
	j.Logger.Println("SessionJanitor: running...")
	ticker := time.NewTicker(j.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			removed, err := j.ExpireIdleSessions.Execute(ctx)
			switch {
			case err != nil && !errors.Is(err, context.Canceled):
				j.Logger.Printf("SessionJanitor: error expiring idle sessions: %v", err)
			case removed > 0:
				j.Logger.Printf("SessionJanitor: removed %d idle sessions", removed)
			}
			if j.workerExecutionChan != nil {
				j.workerExecutionChan <- struct{}{}
			}
		case <-ctx.Done():
			j.Logger.Println("SessionJanitor: stopping...")
			return nil
		}
	}
}
