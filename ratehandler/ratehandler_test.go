// ratehandler/ratehandler_test.go
package ratehandler

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/deploymenttheory/go-api-sdk-planningcenter/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func TestRateLimitWait(t *testing.T) {
	tests := []struct {
		name         string
		retryAfter   string
		retryCount   int
		expectedWait time.Duration
	}{
		{"retry after seconds", "3", 1, 3 * time.Second},
		{"retry after zero", "0", 2, 0},
		{"http date in future", epoch.Add(90 * time.Second).Format(http.TimeFormat), 1, 90 * time.Second},
		{"http date in past", epoch.Add(-time.Minute).Format(http.TimeFormat), 1, 0},
		{"absent first retry", "", 1, 2 * time.Second},
		{"absent third retry", "", 3, 6 * time.Second},
		{"unparseable", "soon", 2, 4 * time.Second},
		{"negative", "-5", 1, 2 * time.Second},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header := http.Header{}
			if tt.retryAfter != "" {
				header.Set("Retry-After", tt.retryAfter)
			}
			wait, raw := RateLimitWait(header, tt.retryCount, epoch)
			assert.Equal(t, tt.expectedWait, wait)
			assert.Equal(t, tt.retryAfter, raw)
		})
	}
}

func TestTransientBackoff(t *testing.T) {
	assert.Equal(t, time.Second, TransientBackoff(1))
	assert.Equal(t, 2*time.Second, TransientBackoff(2))
	assert.Equal(t, 3*time.Second, TransientBackoff(3))
}

func TestGovernorSpacing(t *testing.T) {
	fake := clock.NewFake(epoch)
	g := NewGovernor(100*time.Millisecond, fake)
	ctx := context.Background()

	require.NoError(t, g.Wait(ctx))
	assert.Empty(t, fake.Sleeps(), "first request is not delayed")

	require.NoError(t, g.Wait(ctx))
	require.NoError(t, g.Wait(ctx))
	assert.Equal(t, []time.Duration{100 * time.Millisecond, 100 * time.Millisecond}, fake.Sleeps())
	assert.Equal(t, epoch.Add(200*time.Millisecond), fake.Now())
}

func TestGovernorPartialElapsed(t *testing.T) {
	fake := clock.NewFake(epoch)
	g := NewGovernor(100*time.Millisecond, fake)
	ctx := context.Background()

	require.NoError(t, g.Wait(ctx))
	fake.Advance(30 * time.Millisecond)
	require.NoError(t, g.Wait(ctx))

	sleeps := fake.Sleeps()
	require.Len(t, sleeps, 1)
	assert.InDelta(t, float64(70*time.Millisecond), float64(sleeps[0]), float64(time.Microsecond))
}

func TestGovernorNeverUndercutsDelay(t *testing.T) {
	for _, delay := range []time.Duration{30 * time.Millisecond, 70 * time.Millisecond, 333 * time.Millisecond} {
		t.Run(delay.String(), func(t *testing.T) {
			fake := clock.NewFake(epoch)
			g := NewGovernor(delay, fake)
			ctx := context.Background()

			previous := fake.Now()
			require.NoError(t, g.Wait(ctx))
			for i := 0; i < 5; i++ {
				require.NoError(t, g.Wait(ctx))
				assert.GreaterOrEqual(t, fake.Now().Sub(previous), delay)
				previous = fake.Now()
			}
		})
	}
}

func TestGovernorIdleDoesNotDelay(t *testing.T) {
	fake := clock.NewFake(epoch)
	g := NewGovernor(100*time.Millisecond, fake)
	ctx := context.Background()

	require.NoError(t, g.Wait(ctx))
	fake.Advance(time.Second)
	require.NoError(t, g.Wait(ctx))
	assert.Empty(t, fake.Sleeps())
}

func TestGovernorDisabled(t *testing.T) {
	fake := clock.NewFake(epoch)
	g := NewGovernor(0, fake)
	for i := 0; i < 5; i++ {
		require.NoError(t, g.Wait(context.Background()))
	}
	assert.Empty(t, fake.Sleeps())
	assert.Equal(t, time.Duration(0), g.Delay())
}

func TestGovernorCancelledWait(t *testing.T) {
	fake := clock.NewFake(epoch)
	g := NewGovernor(100*time.Millisecond, fake)
	require.NoError(t, g.Wait(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, g.Wait(ctx), context.Canceled)
}

func TestGovernorRealClockSpacing(t *testing.T) {
	g := NewGovernor(20*time.Millisecond, clock.New())
	ctx := context.Background()

	var mu sync.Mutex
	var stamps []time.Time
	var wg sync.WaitGroup
	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, g.Wait(ctx))
			mu.Lock()
			stamps = append(stamps, time.Now())
			mu.Unlock()
		}()
	}
	wg.Wait()

	require.Len(t, stamps, 3)
	first, last := stamps[0], stamps[0]
	for _, s := range stamps {
		if s.Before(first) {
			first = s
		}
		if s.After(last) {
			last = s
		}
	}
	assert.GreaterOrEqual(t, last.Sub(first), 35*time.Millisecond)
}
