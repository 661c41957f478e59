package ratehandler

import (
	"context"
	"sync"
	"time"

	"github.com/deploymenttheory/go-api-sdk-planningcenter/clock"
	"golang.org/x/time/rate"
)

// Governor enforces a minimum delay between consecutive physical requests.
// It is a limiter with a burst of one, so an idle client may send immediately
// while back-to-back callers are queued delay apart.
type Governor struct {
	mu      sync.Mutex
	limiter *rate.Limiter
	clock   clock.Clock
	delay   time.Duration
	// last is the send time handed to the most recent caller. rate.Every converts delay
	// through float64 seconds, so reservations alone can land a nanosecond early.
	last time.Time
}

// NewGovernor returns a Governor spacing requests by delay. A delay <= 0 disables spacing.
func NewGovernor(delay time.Duration, clk clock.Clock) *Governor {
	limit := rate.Inf
	if delay > 0 {
		limit = rate.Every(delay)
	}
	if clk == nil {
		clk = clock.New()
	}
	return &Governor{
		limiter: rate.NewLimiter(limit, 1),
		clock:   clk,
		delay:   delay,
	}
}

// Delay returns the configured minimum gap.
func (g *Governor) Delay() time.Duration {
	return g.delay
}

// Wait blocks until the caller may send. The slot is reserved before sleeping, so
// concurrent callers queue in order. A cancelled wait gives its slot back.
func (g *Governor) Wait(ctx context.Context) error {
	g.mu.Lock()
	now := g.clock.Now()
	reservation := g.limiter.ReserveN(now, 1)
	wait := reservation.DelayFrom(now)
	if g.delay > 0 && !g.last.IsZero() {
		if floor := g.last.Add(g.delay).Sub(now); wait < floor {
			wait = floor
		}
	}
	previous := g.last
	slot := now.Add(wait)
	g.last = slot
	g.mu.Unlock()

	if wait <= 0 {
		return nil
	}
	if err := g.clock.Sleep(ctx, wait); err != nil {
		g.mu.Lock()
		reservation.CancelAt(g.clock.Now())
		if g.last.Equal(slot) {
			g.last = previous
		}
		g.mu.Unlock()
		return err
	}
	return nil
}
