package logging

import (
	"context"

	"go.uber.org/zap"
)

type loggerKey struct{}

// LoggerFromContext returns the logger attached by Middleware, or the process logger.
func LoggerFromContext(ctx context.Context) *zap.Logger {
	if ctx != nil {
		if l, _ := ctx.Value(loggerKey{}).(*zap.Logger); l != nil {
			return l
		}
	}
	return Logger()
}

// LogInfo logs msg at info level with the request-scoped logger.
func LogInfo(ctx context.Context, msg string, fields ...zap.Field) {
	LoggerFromContext(ctx).Info(msg, fields...)
}

// LogError logs msg at error level, adding err as the "error" field when non-nil.
func LogError(ctx context.Context, msg string, err error, fields ...zap.Field) {
	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	LoggerFromContext(ctx).Error(msg, fields...)
}

func withLogger(ctx context.Context, l *zap.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, loggerKey{}, l)
}
