package log

import "context"

// Logger is the logging interface used across the service.
// All methods take a context so request-scoped fields can be attached later
// without changing call sites.
type Logger interface {
	Debug(ctx context.Context, args ...any)
	Debugf(ctx context.Context, format string, args ...any)

	Info(ctx context.Context, args ...any)
	Infof(ctx context.Context, format string, args ...any)

	Warn(ctx context.Context, args ...any)
	Warnf(ctx context.Context, format string, args ...any)

	Error(ctx context.Context, args ...any)
	Errorf(ctx context.Context, format string, args ...any)
}
