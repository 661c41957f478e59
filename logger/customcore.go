package logger

import (
	"go.uber.org/zap/zapcore"
)

// requestIDCore moves the request_id field to the front of every entry.
type requestIDCore struct {
	zapcore.Core
}

func (c *requestIDCore) With(fields []zapcore.Field) zapcore.Core {
	return &requestIDCore{c.Core.With(fields)}
}

func (c *requestIDCore) Write(entry zapcore.Entry, fields []zapcore.Field) error {
	return c.Core.Write(entry, reorderRequestID(fields))
}

// Check must route through the wrapper, otherwise Write would bypass it.
func (c *requestIDCore) Check(entry zapcore.Entry, checkedEntry *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(entry.Level) {
		return checkedEntry.AddCore(entry, c)
	}
	return checkedEntry
}

func reorderRequestID(fields []zapcore.Field) []zapcore.Field {
	idx := -1
	for i, field := range fields {
		if field.Key == FieldRequestID {
			idx = i
			break
		}
	}
	if idx <= 0 {
		return fields
	}
	reordered := make([]zapcore.Field, 0, len(fields))
	reordered = append(reordered, fields[idx])
	reordered = append(reordered, fields[:idx]...)
	return append(reordered, fields[idx+1:]...)
}
