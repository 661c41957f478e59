package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type LogLevel int

const (
	LogLevelDebug LogLevel = -1
	LogLevelInfo  LogLevel = 0
	LogLevelWarn  LogLevel = 1
	LogLevelError LogLevel = 2
	// LogLevelNone silences the logger entirely.
	LogLevelNone LogLevel = 10
)

// ParseLogLevelFromString converts a configuration string such as "LogLevelDebug" to a LogLevel.
// Unknown values map to LogLevelInfo.
func ParseLogLevelFromString(levelStr string) LogLevel {
	switch levelStr {
	case "LogLevelDebug":
		return LogLevelDebug
	case "LogLevelInfo":
		return LogLevelInfo
	case "LogLevelWarn":
		return LogLevelWarn
	case "LogLevelError":
		return LogLevelError
	case "LogLevelNone":
		return LogLevelNone
	default:
		return LogLevelInfo
	}
}

// String is the inverse of ParseLogLevelFromString.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "LogLevelDebug"
	case LogLevelInfo:
		return "LogLevelInfo"
	case LogLevelWarn:
		return "LogLevelWarn"
	case LogLevelError:
		return "LogLevelError"
	case LogLevelNone:
		return "LogLevelNone"
	default:
		return "LogLevelInfo"
	}
}

// convertToZapLevel converts the custom LogLevel to a zapcore.Level
func convertToZapLevel(level LogLevel) zapcore.Level {
	switch level {
	case LogLevelDebug:
		return zap.DebugLevel
	case LogLevelInfo:
		return zap.InfoLevel
	case LogLevelWarn:
		return zap.WarnLevel
	case LogLevelError:
		return zap.ErrorLevel
	case LogLevelNone:
		return zap.FatalLevel + 1
	default:
		return zap.InfoLevel
	}
}
