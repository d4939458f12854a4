package middleware

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/localnerve/marketdb/internal/session"
	"go.uber.org/zap"
)

type loggerKey struct{}

// WithCommandID tags every run of next with a fresh command id. The tagged
// logger is available to next through Logger.
func WithCommandID(name string, next Command) Command {
	return func(ctx context.Context, s *session.Session) error {
		fields := []zap.Field{
			zap.String("command", name),
			zap.String("command_id", uuid.NewString()),
		}
		if s != nil {
			fields = append(fields, zap.String("user", s.Name))
		}
		log := zap.L().With(fields...)
		ctx = context.WithValue(ctx, loggerKey{}, log)

		start := time.Now()
		err := next(ctx, s)
		log.Debug("command finished", zap.Duration("elapsed", time.Since(start)), zap.Error(err))
		return err
	}
}

// Logger returns the command logger stored in ctx, or the global logger
func Logger(ctx context.Context) *zap.Logger {
	if log, ok := ctx.Value(loggerKey{}).(*zap.Logger); ok {
		return log
	}
	return zap.L()
}
