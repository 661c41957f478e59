// logger/logger.go
// Ref: https://betterstack.com/community/guides/logging/go/zap/#logging-errors-with-zap
package logger

import (
	"errors"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger interface with structured logging capabilities at various levels.
type Logger interface {
	GetLogLevel() LogLevel
	SetLevel(level LogLevel)
	With(fields ...zapcore.Field) Logger
	Debug(msg string, fields ...zapcore.Field)
	Info(msg string, fields ...zapcore.Field)
	Warn(msg string, fields ...zapcore.Field)
	Error(msg string, fields ...zapcore.Field) error

	LogRequestStart(requestID string, method string, url string, attempt int)
	LogRequestEnd(requestID string, method string, url string, statusCode int, duration time.Duration)
	LogRetryAttempt(requestID string, method string, url string, attempt int, reason string, waitDuration time.Duration, err error)
	LogRateLimiting(requestID string, method string, url string, retryAfter string, waitDuration time.Duration)
	LogTokenRefresh(trigger string, success bool, err error)
}

// defaultLogger is an implementation of the Logger interface using Uber's zap logging library.
// The logLevel field gates what reaches the underlying zap core.
type defaultLogger struct {
	logger   *zap.Logger
	logLevel LogLevel
}

// NewLogger wraps an existing zap logger, e.g. one built by zaptest/observer.
func NewLogger(z *zap.Logger, level LogLevel) Logger {
	return &defaultLogger{logger: z, logLevel: level}
}

// NewNopLogger returns a Logger that discards everything.
func NewNopLogger() Logger {
	return &defaultLogger{logger: zap.NewNop(), logLevel: LogLevelNone}
}

func (d *defaultLogger) GetLogLevel() LogLevel {
	return d.logLevel
}

func (d *defaultLogger) SetLevel(level LogLevel) {
	d.logLevel = level
}

// With returns a child logger that includes fields on every entry.
func (d *defaultLogger) With(fields ...zapcore.Field) Logger {
	return &defaultLogger{
		logger:   d.logger.With(fields...),
		logLevel: d.logLevel,
	}
}

func (d *defaultLogger) Debug(msg string, fields ...zapcore.Field) {
	if d.logLevel <= LogLevelDebug {
		d.logger.Debug(msg, fields...)
	}
}

func (d *defaultLogger) Info(msg string, fields ...zapcore.Field) {
	if d.logLevel <= LogLevelInfo {
		d.logger.Info(msg, fields...)
	}
}

func (d *defaultLogger) Warn(msg string, fields ...zapcore.Field) {
	if d.logLevel <= LogLevelWarn {
		d.logger.Warn(msg, fields...)
	}
}

// Error logs a message at the Error level and returns it as an error value so call
// sites can log and return in one statement.
func (d *defaultLogger) Error(msg string, fields ...zapcore.Field) error {
	if d.logLevel <= LogLevelError {
		d.logger.Error(msg, fields...)
	}
	return errors.New(msg)
}
