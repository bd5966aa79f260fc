package slogobs

import (
	"context"
	"log/slog"

	"github.com/AxWise-GmbH/axwise-flow-sub001/providers/observability"
)

// LevelTrace sits below slog.LevelDebug and is emitted by [Observer.Trace].
// It is filtered out unless explicitly enabled via [WithLevel] or the
// AXWISE_LOG_LEVEL environment variable.
const LevelTrace = slog.LevelDebug - 4

// Observer implements observability.Logger using Go's standard library slog.
// It routes structured log events through a slog.Logger, making it suitable
// for lightweight diagnostics without external dependencies.
type Observer struct {
	logger *slog.Logger
}

// New creates a new slog-based observer with functional options.
// If no options are provided, it uses environment variables for configuration
// (AXWISE_LOG_FORMAT and AXWISE_LOG_LEVEL), defaulting to compact format and
// INFO level.
//
// Example usage:
//
//	// Use defaults from environment
//	observer := slogobs.New()
//
//	// Explicit configuration
//	observer := slogobs.New(
//	    slogobs.WithFormat(slogobs.FormatJSON),
//	    slogobs.WithLevel(slog.LevelDebug),
//	)
//
//	// Use existing logger
//	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
//	observer := slogobs.New(slogobs.WithLogger(logger))
func New(opts ...Option) *Observer {
	cfg := applyOptions(opts...)

	logger := cfg.logger
	if logger == nil {
		handlerOpts := &slog.HandlerOptions{Level: cfg.level}
		switch cfg.format {
		case FormatJSON:
			logger = slog.New(slog.NewJSONHandler(cfg.output, handlerOpts))
		default:
			logger = slog.New(slog.NewTextHandler(cfg.output, handlerOpts))
		}
	}

	return &Observer{logger: logger}
}

// Ensure Observer implements observability.Logger
var _ observability.Logger = (*Observer)(nil)

// Trace logs a message at TRACE level (below DEBUG) with optional structured attributes.
// TRACE is the most granular level and carries per-parse detail.
func (o *Observer) Trace(ctx context.Context, msg string, attrs ...observability.Attribute) {
	o.log(ctx, LevelTrace, msg, attrs...)
}

// Debug logs a message at DEBUG level with optional structured attributes.
// Use this for detailed diagnostic information useful during development.
func (o *Observer) Debug(ctx context.Context, msg string, attrs ...observability.Attribute) {
	o.log(ctx, slog.LevelDebug, msg, attrs...)
}

// Info logs a message at INFO level with optional structured attributes.
// Use this for general operational events that confirm normal behavior.
func (o *Observer) Info(ctx context.Context, msg string, attrs ...observability.Attribute) {
	o.log(ctx, slog.LevelInfo, msg, attrs...)
}

// Warn logs a message at WARN level with optional structured attributes.
// Use this for unexpected situations that are recoverable but worth investigating.
func (o *Observer) Warn(ctx context.Context, msg string, attrs ...observability.Attribute) {
	o.log(ctx, slog.LevelWarn, msg, attrs...)
}

// Error logs a message at ERROR level with optional structured attributes.
// Use this for failures that affect the current operation and require attention.
func (o *Observer) Error(ctx context.Context, msg string, attrs ...observability.Attribute) {
	o.log(ctx, slog.LevelError, msg, attrs...)
}

func (o *Observer) log(ctx context.Context, level slog.Level, msg string, attrs ...observability.Attribute) {
	logAttrs := make([]slog.Attr, 0, len(attrs))
	for _, attr := range attrs {
		logAttrs = append(logAttrs, slog.Any(attr.Key, attr.Value))
	}
	o.logger.LogAttrs(ctx, level, msg, logAttrs...)
}
