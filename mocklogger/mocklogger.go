// mocklogger/mocklogger.go
package mocklogger

import (
	"time"

	"github.com/deploymenttheory/go-api-sdk-planningcenter/logger"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// MockLogger is a testify mock of logger.Logger. Expectations are matched on the
// message and the field slice, so tests usually pass mock.Anything for fields.
type MockLogger struct {
	mock.Mock
	logLevel logger.LogLevel
}

// NewMockLogger returns a MockLogger at debug level.
func NewMockLogger() *MockLogger {
	return &MockLogger{logLevel: logger.LogLevelDebug}
}

var _ logger.Logger = (*MockLogger)(nil)

func (m *MockLogger) GetLogLevel() logger.LogLevel {
	return m.logLevel
}

func (m *MockLogger) SetLevel(level logger.LogLevel) {
	m.logLevel = level
}

// With returns m itself so expectations set on the parent still match.
func (m *MockLogger) With(fields ...zap.Field) logger.Logger {
	return m
}

func (m *MockLogger) Debug(msg string, fields ...zap.Field) {
	m.Called(msg, fields)
}

func (m *MockLogger) Info(msg string, fields ...zap.Field) {
	m.Called(msg, fields)
}

func (m *MockLogger) Warn(msg string, fields ...zap.Field) {
	m.Called(msg, fields)
}

// Error records the call and returns the error configured with Return, if any.
func (m *MockLogger) Error(msg string, fields ...zap.Field) error {
	args := m.Called(msg, fields)
	if len(args) == 0 {
		return nil
	}
	return args.Error(0)
}

func (m *MockLogger) LogRequestStart(requestID string, method string, url string, attempt int) {
	m.Called(requestID, method, url, attempt)
}

func (m *MockLogger) LogRequestEnd(requestID string, method string, url string, statusCode int, duration time.Duration) {
	m.Called(requestID, method, url, statusCode, duration)
}

func (m *MockLogger) LogRetryAttempt(requestID string, method string, url string, attempt int, reason string, waitDuration time.Duration, err error) {
	m.Called(requestID, method, url, attempt, reason, waitDuration, err)
}

func (m *MockLogger) LogRateLimiting(requestID string, method string, url string, retryAfter string, waitDuration time.Duration) {
	m.Called(requestID, method, url, retryAfter, waitDuration)
}

func (m *MockLogger) LogTokenRefresh(trigger string, success bool, err error) {
	m.Called(trigger, success, err)
}
