// clock/clock.go
/* Package clock provides the time source for request spacing, backoff sleeps and token ages.
The real implementation is backed by clockwork; tests use Fake. */
package clock

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
)

// Clock reports the current time and suspends the caller for a duration.
type Clock interface {
	Now() time.Time
	Sleep(ctx context.Context, d time.Duration) error
}

type clockworkClock struct {
	clk clockwork.Clock
}

// New returns a Clock backed by the system wall clock.
func New() Clock {
	return FromClockwork(clockwork.NewRealClock())
}

// FromClockwork adapts any clockwork.Clock.
func FromClockwork(clk clockwork.Clock) Clock {
	return &clockworkClock{clk: clk}
}

func (c *clockworkClock) Now() time.Time {
	return c.clk.Now()
}

// Sleep blocks for d or until ctx is done, whichever comes first.
func (c *clockworkClock) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	select {
	case <-c.clk.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
