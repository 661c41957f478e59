package clock

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// Fake is a Clock whose Sleep advances time instantly instead of blocking.
// Every requested sleep is recorded so callers can assert on backoff schedules.
type Fake struct {
	clockwork.FakeClock

	mu     sync.Mutex
	sleeps []time.Duration
}

// NewFake returns a Fake starting at the given time.
func NewFake(start time.Time) *Fake {
	return &Fake{FakeClock: clockwork.NewFakeClockAt(start)}
}

// Sleep records d and advances the fake clock by it.
func (f *Fake) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if d <= 0 {
		return nil
	}
	f.mu.Lock()
	f.sleeps = append(f.sleeps, d)
	f.mu.Unlock()
	f.Advance(d)
	return nil
}

// Sleeps returns a copy of every duration passed to Sleep.
func (f *Fake) Sleeps() []time.Duration {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]time.Duration, len(f.sleeps))
	copy(out, f.sleeps)
	return out
}

// TotalSlept sums all recorded sleeps.
func (f *Fake) TotalSlept() time.Duration {
	var total time.Duration
	for _, d := range f.Sleeps() {
		total += d
	}
	return total
}
