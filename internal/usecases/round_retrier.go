package usecases

import (
	"context"
	"time"

	"github.com/cleitonmarx/symbiont-ai-fareassist/internal/domain"
	"github.com/hashicorp/go-retryablehttp"
)

// roundRetrier runs one model round with a per-call timeout and retries
// transient backend failures with exponential backoff.
type roundRetrier struct {
	maxAttempts int
	waitMin     time.Duration
	waitMax     time.Duration
	callTimeout time.Duration
	sleep       func(ctx context.Context, d time.Duration) error
}

func newRoundRetrier(maxAttempts int, waitMin, waitMax, callTimeout time.Duration) roundRetrier {
	return roundRetrier{
		maxAttempts: max(maxAttempts, 1),
		waitMin:     waitMin,
		waitMax:     waitMax,
		callTimeout: callTimeout,
		sleep:       sleepContext,
	}
}

// run calls fn until it succeeds, fails with a non-transient error, the attempts
// are exhausted or ctx is done. The last error is returned.
func (r roundRetrier) run(
	ctx context.Context,
	round TurnState,
	fn func(ctx context.Context) (domain.AssistantTurnResponse, error),
) (domain.AssistantTurnResponse, error) {
	var lastErr error
	for attempt := range r.maxAttempts {
		if attempt > 0 {
			RecordLLMRoundRetry(ctx, round)
			wait := retryablehttp.DefaultBackoff(r.waitMin, r.waitMax, attempt-1, nil)
			if err := r.sleep(ctx, wait); err != nil {
				return domain.AssistantTurnResponse{}, lastErr
			}
		}

		callCtx, cancel := r.withTimeout(ctx)
		resp, err := fn(callCtx)
		cancel()
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if !domain.IsTransientBackendErr(err) || ctx.Err() != nil {
			return domain.AssistantTurnResponse{}, err
		}
	}
	return domain.AssistantTurnResponse{}, lastErr
}

func (r roundRetrier) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.callTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, r.callTimeout)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
