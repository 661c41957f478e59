// ratehandler/ratehandler.go
/* Package ratehandler spaces outbound requests and computes the waits used by the retry
controller. Spacing is a minimum gap between consecutive attempts, not a windowed quota. */
package ratehandler

import (
	"net/http"
	"strconv"
	"strings"
	"time"
)

const (
	// RateLimitBaseDelay is multiplied by the retry count when a 429 has no usable Retry-After.
	RateLimitBaseDelay = 2 * time.Second
	// TransientBaseDelay is multiplied by the retry count after a transport error.
	TransientBaseDelay = 1 * time.Second
)

// RateLimitWait returns how long to wait after a 429 on the given retry count (1-based),
// together with the raw Retry-After value for logging. Retry-After may be delta seconds
// or an HTTP date; anything unparseable falls back to linear backoff.
func RateLimitWait(header http.Header, retryCount int, now time.Time) (time.Duration, string) {
	retryAfter := strings.TrimSpace(header.Get("Retry-After"))
	if retryAfter != "" {
		if seconds, err := strconv.Atoi(retryAfter); err == nil && seconds >= 0 {
			return time.Duration(seconds) * time.Second, retryAfter
		}
		if date, err := http.ParseTime(retryAfter); err == nil {
			if wait := date.Sub(now); wait > 0 {
				return wait, retryAfter
			}
			return 0, retryAfter
		}
	}
	return RateLimitBaseDelay * time.Duration(retryCount), retryAfter
}

// TransientBackoff returns the linear wait after a transport error on the given retry count.
func TransientBackoff(retryCount int) time.Duration {
	return TransientBaseDelay * time.Duration(retryCount)
}
