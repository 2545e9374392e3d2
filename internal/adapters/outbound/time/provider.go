package time

import (
	"context"
	"fmt"
	"time"

	"github.com/cleitonmarx/symbiont-ai-fareassist/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
)

// CurrentTimeProvider is an implementation of domain.CurrentTimeProvider using the standard time package.
// Times are reported in the configured location.
type CurrentTimeProvider struct {
	location *time.Location
}

// NewCurrentTimeProvider creates a CurrentTimeProvider for loc. A nil loc means UTC.
func NewCurrentTimeProvider(loc *time.Location) CurrentTimeProvider {
	if loc == nil {
		loc = time.UTC
	}
	return CurrentTimeProvider{location: loc}
}

// Now returns the current time.
func (ts CurrentTimeProvider) Now() time.Time {
	if ts.location == nil {
		return time.Now().UTC()
	}
	return time.Now().In(ts.location)
}

// InitCurrentTimeProvider initializes the CurrentTimeProvider and registers it in the dependency container.
type InitCurrentTimeProvider struct {
	TimeZone string `config:"TIME_ZONE" default:"UTC"`
}

// Initialize registers the CurrentTimeProvider in the dependency container.
func (its InitCurrentTimeProvider) Initialize(ctx context.Context) (context.Context, error) {
	loc, err := time.LoadLocation(its.TimeZone)
	if err != nil {
		return ctx, fmt.Errorf("invalid TIME_ZONE %q: %w", its.TimeZone, err)
	}
	depend.Register[domain.CurrentTimeProvider](NewCurrentTimeProvider(loc))
	return ctx, nil
}
