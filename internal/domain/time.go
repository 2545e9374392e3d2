package domain

import "time"

// CurrentTimeProvider provides the current time.
// Sessions and audit records are stamped through it so tests can pin the clock.
type CurrentTimeProvider interface {
	Now() time.Time
}
