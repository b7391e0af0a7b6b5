package logging

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// Attribute keys for the IDs that follow a request through the logs.
const (
	KeyRequestID     = "request_id"
	KeyCorrelationID = "correlation_id"
	KeyTraceID       = "trace_id"
)

type ctxKey struct{}

var defaultLogger atomic.Pointer[slog.Logger]

func init() {
	defaultLogger.Store(slog.Default())
}

// Default returns the logger used when a context carries none.
func Default() *slog.Logger {
	return defaultLogger.Load()
}

// SetDefault replaces Default and slog's default logger.
func SetDefault(logger *slog.Logger) {
	defaultLogger.Store(logger)
	slog.SetDefault(logger)
}

// FromContext returns the logger carried by ctx, or Default.
func FromContext(ctx context.Context) *slog.Logger {
	return FromContextOr(ctx, Default())
}

// FromContextOr returns the logger carried by ctx, or fallback.
func FromContextOr(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if ctx == nil {
		return fallback
	}

	if logger, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok {
		return logger
	}

	return fallback
}

// WithContext returns a copy of ctx carrying logger.
func WithContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

// With adds attrs to the logger carried by ctx.
func With(ctx context.Context, attrs ...any) context.Context {
	return WithContext(ctx, FromContext(ctx).With(attrs...))
}

// WithRequestID tags the context logger with a request ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return With(ctx, slog.String(KeyRequestID, id))
}

// WithCorrelationID tags the context logger with a correlation ID.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return With(ctx, slog.String(KeyCorrelationID, id))
}

// WithTraceID tags the context logger with an OpenTelemetry trace ID.
func WithTraceID(ctx context.Context, id string) context.Context {
	return With(ctx, slog.String(KeyTraceID, id))
}
