package log

import "context"

type contextKey struct{}

var loggerContextKey = contextKey{}

// SetContextLogger returns a copy of ctx carrying lg. A nil lg stores a
// NoopLogger.
func SetContextLogger(ctx context.Context, lg Logger) context.Context {
	if lg == nil {
		lg = NewNoopLogger()
	}
	return context.WithValue(ctx, loggerContextKey, lg)
}

// FromContext returns the logger stored in ctx, or a NoopLogger.
func FromContext(ctx context.Context) Logger {
	if l, ok := ctx.Value(loggerContextKey).(Logger); ok {
		return l
	}
	return NewNoopLogger()
}
