// httpclient/errors.go
package httpclient

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration matches any *ConfigurationError.
	ErrConfiguration = errors.New("invalid client configuration")
	// ErrRateLimitExceeded matches any *RateLimitExceededError.
	ErrRateLimitExceeded = errors.New("rate limit exceeded")
	// ErrExhaustedRetries matches any *ExhaustedRetriesError.
	ErrExhaustedRetries = errors.New("retries exhausted")
)

// ConfigurationError is returned by BuildClient when the configuration or the
// credentials cannot produce a working client.
type ConfigurationError struct {
	Field  string
	Reason string
	Err    error
}

func (e *ConfigurationError) Error() string {
	msg := "invalid configuration"
	if e.Field != "" {
		msg += ": " + e.Field
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ConfigurationError) Is(target error) bool { return target == ErrConfiguration }

func (e *ConfigurationError) Unwrap() error { return e.Err }

// RateLimitExceededError is returned when the server keeps answering 429 after the
// retry budget is spent.
type RateLimitExceededError struct {
	Attempts   int
	RetryAfter string
}

func (e *RateLimitExceededError) Error() string {
	if e.RetryAfter != "" {
		return fmt.Sprintf("rate limit exceeded after %d attempts (retry-after %s)", e.Attempts, e.RetryAfter)
	}
	return fmt.Sprintf("rate limit exceeded after %d attempts", e.Attempts)
}

func (e *RateLimitExceededError) Is(target error) bool { return target == ErrRateLimitExceeded }

// ExhaustedRetriesError is returned when the retry loop ends without a terminal outcome,
// which happens when repeated 401s each trigger a successful refresh.
type ExhaustedRetriesError struct {
	Attempts int
}

func (e *ExhaustedRetriesError) Error() string {
	return fmt.Sprintf("request failed after %d attempts", e.Attempts)
}

func (e *ExhaustedRetriesError) Is(target error) bool { return target == ErrExhaustedRetries }

// waitError marks a sleep or spacing wait that was cut short by the context.
func waitError(err error) error {
	return fmt.Errorf("request wait interrupted: %w", err)
}
