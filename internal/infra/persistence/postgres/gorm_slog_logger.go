package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"blog/config"
	deliverycontext "blog/internal/delivery/context"
)

// gormSlogLogger routes GORM output through slog. Records go to the
// request-scoped logger when the context carries one, so SQL lines share the
// request_id and user_id of the HTTP request that issued them.
type gormSlogLogger struct {
	base          *slog.Logger
	level         logger.LogLevel
	slowThreshold time.Duration
}

func newGormSlogLogger(base *slog.Logger, cfg *config.Config) logger.Interface {
	l := &gormSlogLogger{base: base, level: logger.Warn}
	if cfg != nil {
		if cfg.Env.Debug {
			l.level = logger.Info
		}
		l.slowThreshold = cfg.Env.Log.SlowQuery
	}

	return l
}

func (l *gormSlogLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *gormSlogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Info, slog.LevelInfo, msg, args...)
}

func (l *gormSlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Warn, slog.LevelWarn, msg, args...)
}

func (l *gormSlogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Error, slog.LevelError, msg, args...)
}

func (l *gormSlogLogger) printf(ctx context.Context, threshold logger.LogLevel, level slog.Level, msg string, args ...any) {
	if l.base == nil || l.level < threshold {
		return
	}

	l.logger(ctx).LogAttrs(ctx, level, "GORM", slog.String("message", fmt.Sprintf(msg, args...)))
}

// Trace logs failed, slow, and (at Info) all queries. Missing rows are a normal
// outcome for lookups and unique violations are expected when two first logins
// race, so neither is reported as an error.
func (l *gormSlogLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.base == nil || l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)

	var (
		level slog.Level
		msg   string
		extra []slog.Attr
	)

	switch {
	case err != nil && errors.Is(err, gorm.ErrRecordNotFound):
		if l.level < logger.Info {
			return
		}
		level, msg = slog.LevelDebug, "GORM record not found"
	case err != nil && isUniqueConstraintViolation(err):
		if l.level < logger.Warn {
			return
		}
		level, msg = slog.LevelWarn, "GORM unique violation"
		extra = append(extra, slog.String("error", err.Error()))
	case err != nil:
		if l.level < logger.Error {
			return
		}
		level, msg = slog.LevelError, "GORM query failed"
		extra = append(extra, slog.String("error", err.Error()))
	case l.slowThreshold > 0 && elapsed > l.slowThreshold:
		if l.level < logger.Warn {
			return
		}
		level, msg = slog.LevelWarn, "GORM slow query"
		extra = append(extra, slog.Duration("slow_threshold", l.slowThreshold))
	default:
		if l.level < logger.Info {
			return
		}
		level, msg = slog.LevelInfo, "GORM query"
	}

	sql, rows := fc()
	attrs := append([]slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	}, extra...)

	l.logger(ctx).LogAttrs(ctx, level, msg, attrs...)
}

func (l *gormSlogLogger) logger(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, l.base)
}
