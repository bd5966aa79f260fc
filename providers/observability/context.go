package observability

import "context"

// contextKey is a private type for context keys to avoid collisions
type contextKey struct{}

var loggerContextKey = contextKey{}

// FromContext extracts a Logger from the context.
// Returns nil if no logger is present; callers are expected to guard with
// a nil check, which keeps the uninstrumented path allocation-free.
func FromContext(ctx context.Context) Logger {
	if ctx == nil {
		return nil
	}
	logger, _ := ctx.Value(loggerContextKey).(Logger)
	return logger
}

// ContextWith returns a new context with the given logger attached.
func ContextWith(ctx context.Context, logger Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, loggerContextKey, logger)
}
