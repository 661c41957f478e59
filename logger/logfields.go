// logger/logfields.go
package logger

import (
	"time"

	"go.uber.org/zap"
)

// Field keys shared across packages.
const (
	FieldEvent     = "event"
	FieldRequestID = "request_id"
)

// LogRequestStart logs a single physical HTTP attempt being sent.
func (d *defaultLogger) LogRequestStart(requestID string, method string, url string, attempt int) {
	d.Debug("HTTP request started",
		zap.String(FieldEvent, "request_start"),
		zap.String(FieldRequestID, requestID),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("attempt", attempt),
	)
}

// LogRequestEnd logs the completion of a physical HTTP attempt.
func (d *defaultLogger) LogRequestEnd(requestID string, method string, url string, statusCode int, duration time.Duration) {
	d.Debug("HTTP request completed",
		zap.String(FieldEvent, "request_end"),
		zap.String(FieldRequestID, requestID),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status_code", statusCode),
		zap.Duration("duration", duration),
	)
}

// LogRetryAttempt logs a retry scheduled after a failed attempt.
func (d *defaultLogger) LogRetryAttempt(requestID string, method string, url string, attempt int, reason string, waitDuration time.Duration, err error) {
	fields := []zap.Field{
		zap.String(FieldEvent, "retry_attempt"),
		zap.String(FieldRequestID, requestID),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("attempt", attempt),
		zap.String("reason", reason),
		zap.Duration("wait_duration", waitDuration),
	}
	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	d.Warn("HTTP request retry", fields...)
}

// LogRateLimiting logs a 429 response and the wait chosen for it.
func (d *defaultLogger) LogRateLimiting(requestID string, method string, url string, retryAfter string, waitDuration time.Duration) {
	d.Warn("HTTP request rate-limited",
		zap.String(FieldEvent, "rate_limited"),
		zap.String(FieldRequestID, requestID),
		zap.String("method", method),
		zap.String("url", url),
		zap.String("retry_after", retryAfter),
		zap.Duration("wait_duration", waitDuration),
	)
}

// LogTokenRefresh logs the outcome of a refresh token exchange.
// trigger is "proactive" or "reactive".
func (d *defaultLogger) LogTokenRefresh(trigger string, success bool, err error) {
	fields := []zap.Field{
		zap.String(FieldEvent, "token_refresh"),
		zap.String("trigger", trigger),
		zap.Bool("success", success),
	}
	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	if success {
		d.Info("Access token refreshed", fields...)
		return
	}
	d.Warn("Access token refresh failed", fields...)
}
