// logger/config.go
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// BuildLogger creates a zap backed Logger writing to stdout.
// Supported encodings are "json" and "console"; consoleSeparator only applies to the latter.
// The function panics if zap cannot be initialised.
func BuildLogger(logLevel LogLevel, encoding string, consoleSeparator string) Logger {
	encoderCfg := zap.NewProductionEncoderConfig()

	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.RFC3339TimeEncoder
	encoderCfg.MessageKey = "msg"
	encoderCfg.LevelKey = "level"
	encoderCfg.NameKey = "logger"
	encoderCfg.StacktraceKey = "stacktrace"
	encoderCfg.LineEnding = zapcore.DefaultLineEnding
	encoderCfg.EncodeDuration = zapcore.StringDurationEncoder
	encoderCfg.EncodeName = zapcore.FullNameEncoder

	if encoding == "console" {
		encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoderCfg.ConsoleSeparator = consoleSeparator
	} else {
		encoding = "json"
		encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	config := zap.Config{
		Level:             zap.NewAtomicLevelAt(convertToZapLevel(logLevel)),
		Development:       false,
		Encoding:          encoding,
		DisableCaller:     true,
		DisableStacktrace: true,
		Sampling:          nil,
		EncoderConfig:     encoderCfg,
		OutputPaths:       []string{"stdout"},
		// zap's own internal errors only
		ErrorOutputPaths: []string{"stderr"},
	}

	logger := zap.Must(config.Build())

	return &defaultLogger{
		logger:   zap.New(&requestIDCore{logger.Core()}),
		logLevel: logLevel,
	}
}
