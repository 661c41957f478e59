package logger

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObserved(level LogLevel) (Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return NewLogger(zap.New(core), level), logs
}

func TestParseLogLevelFromString(t *testing.T) {
	tests := []struct {
		levelStr      string
		expectedLevel LogLevel
	}{
		{"LogLevelDebug", LogLevelDebug},
		{"LogLevelInfo", LogLevelInfo},
		{"LogLevelWarn", LogLevelWarn},
		{"LogLevelError", LogLevelError},
		{"LogLevelNone", LogLevelNone},
		{"Invalid", LogLevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.levelStr, func(t *testing.T) {
			assert.Equal(t, tt.expectedLevel, ParseLogLevelFromString(tt.levelStr))
		})
	}
}

func TestLogLevelStringRoundTrip(t *testing.T) {
	for _, level := range []LogLevel{LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError, LogLevelNone} {
		assert.Equal(t, level, ParseLogLevelFromString(level.String()))
	}
}

func TestLevelGating(t *testing.T) {
	log, logs := newObserved(LogLevelWarn)

	log.Debug("debug message")
	log.Info("info message")
	log.Warn("warn message")
	err := log.Error("error message")

	require.Error(t, err)
	assert.Equal(t, "error message", err.Error())
	require.Equal(t, 2, logs.Len())
	assert.Equal(t, "warn message", logs.All()[0].Message)
	assert.Equal(t, "error message", logs.All()[1].Message)
}

func TestErrorReturnsErrorEvenWhenSilenced(t *testing.T) {
	log, logs := newObserved(LogLevelNone)
	err := log.Error("still returned")
	assert.EqualError(t, err, "still returned")
	assert.Equal(t, 0, logs.Len())
}

func TestWithCarriesFieldsAndLevel(t *testing.T) {
	log, logs := newObserved(LogLevelInfo)
	child := log.With(zap.String("component", "engine"))

	assert.Equal(t, LogLevelInfo, child.GetLogLevel())
	child.Info("hello")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "engine", logs.All()[0].ContextMap()["component"])
}

func TestSetLevel(t *testing.T) {
	log, logs := newObserved(LogLevelInfo)
	log.Debug("hidden")
	log.SetLevel(LogLevelDebug)
	log.Debug("shown")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "shown", logs.All()[0].Message)
}

func TestStructuredEvents(t *testing.T) {
	log, logs := newObserved(LogLevelDebug)

	log.LogRequestStart("req-1", "GET", "/people/v2/people", 1)
	log.LogRequestEnd("req-1", "GET", "/people/v2/people", 200, 15*time.Millisecond)
	log.LogRetryAttempt("req-1", "GET", "/people/v2/people", 2, "transport error", time.Second, errors.New("boom"))
	log.LogRateLimiting("req-1", "GET", "/people/v2/people", "3", 3*time.Second)
	log.LogTokenRefresh("reactive", true, nil)
	log.LogTokenRefresh("proactive", false, errors.New("denied"))

	entries := logs.All()
	require.Len(t, entries, 6)

	events := make([]string, 0, len(entries))
	for _, e := range entries {
		events = append(events, e.ContextMap()[FieldEvent].(string))
	}
	assert.Equal(t, []string{"request_start", "request_end", "retry_attempt", "rate_limited", "token_refresh", "token_refresh"}, events)

	assert.Equal(t, zapcore.WarnLevel, entries[2].Level)
	assert.Equal(t, "boom", entries[2].ContextMap()["error"])
	assert.Equal(t, zapcore.InfoLevel, entries[4].Level)
	assert.Equal(t, zapcore.WarnLevel, entries[5].Level)
}

func TestReorderRequestID(t *testing.T) {
	fields := []zapcore.Field{
		zap.String("method", "GET"),
		zap.String("url", "/x"),
		zap.String(FieldRequestID, "abc"),
	}
	reordered := reorderRequestID(fields)

	require.Len(t, reordered, 3)
	assert.Equal(t, FieldRequestID, reordered[0].Key)
	assert.Equal(t, "method", reordered[1].Key)
	assert.Equal(t, "url", reordered[2].Key)

	unchanged := []zapcore.Field{zap.String("method", "GET")}
	assert.Equal(t, unchanged, reorderRequestID(unchanged))
}

func TestRequestIDCoreWritesThroughWrapper(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	z := zap.New(&requestIDCore{core})

	z.Info("msg", zap.String("method", "GET"), zap.String(FieldRequestID, "abc"))

	require.Equal(t, 1, logs.Len())
	ctx := logs.All()[0].Context
	require.Len(t, ctx, 2)
	assert.Equal(t, FieldRequestID, ctx[0].Key)
}

func TestBuildLogger(t *testing.T) {
	log := BuildLogger(LogLevelWarn, "console", "\t")
	assert.Equal(t, LogLevelWarn, log.GetLogLevel())

	log = BuildLogger(LogLevelDebug, "json", "")
	assert.Equal(t, LogLevelDebug, log.GetLogLevel())
}
