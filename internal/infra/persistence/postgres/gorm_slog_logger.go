package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"pricealert/config"
	deliverycontext "pricealert/internal/delivery/context"
	"pricealert/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const defaultSlowQueryThreshold = 200 * time.Millisecond

// queryLogger routes GORM output through slog. Statements issued inside a request or a
// dispatch pass are logged with that scope's logger, so they carry its request_id and alert_id.
type queryLogger struct {
	logger        *slog.Logger
	level         logger.LogLevel
	slowThreshold time.Duration
}

func newGormSlogLogger(baseLogger *slog.Logger, cfg *config.Config) logger.Interface {
	l := &queryLogger{
		logger:        baseLogger,
		level:         logger.Warn,
		slowThreshold: defaultSlowQueryThreshold,
	}
	if cfg != nil {
		if cfg.Env.Debug {
			l.level = logger.Info
		}
		if cfg.Env.SlowQueryThreshold > 0 {
			l.slowThreshold = cfg.Env.SlowQueryThreshold
		}
	}

	return l
}

func (l *queryLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *queryLogger) Info(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Info, slog.LevelInfo, msg, args)
}

func (l *queryLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Warn, slog.LevelWarn, msg, args)
}

func (l *queryLogger) Error(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Error, slog.LevelError, msg, args)
}

func (l *queryLogger) message(ctx context.Context, threshold logger.LogLevel, level slog.Level, msg string, args []any) {
	if l.level < threshold {
		return
	}
	out := l.scoped(ctx)
	if out == nil {
		return
	}

	out.LogAttrs(ctx, level, "[Postgres] "+fmt.Sprintf(msg, args...))
}

func (l *queryLogger) Trace(ctx context.Context, begin time.Time, sqlAndRowsFn func() (string, int64), err error) {
	if l.level == logger.Silent {
		return
	}
	out := l.scoped(ctx)
	if out == nil {
		return
	}

	elapsed := time.Since(begin)

	switch {
	case l.level >= logger.Error && err != nil && !expectedQueryError(err):
		attrs := append(queryAttrs(sqlAndRowsFn, elapsed), slog.Any("error", err))
		out.LogAttrs(ctx, slog.LevelError, "[Postgres] Query failed", attrs...)
	case l.level >= logger.Warn && l.slowThreshold > 0 && elapsed > l.slowThreshold:
		attrs := append(queryAttrs(sqlAndRowsFn, elapsed), slog.Duration("slow_threshold", l.slowThreshold))
		out.LogAttrs(ctx, slog.LevelWarn, "[Postgres] Slow query", attrs...)
	case l.level >= logger.Info:
		out.LogAttrs(ctx, slog.LevelDebug, "[Postgres] Query", queryAttrs(sqlAndRowsFn, elapsed)...)
	}
}

// scoped prefers the logger stored in ctx by the API middleware or the dispatch pass.
func (l *queryLogger) scoped(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return l.logger
	}

	return deliverycontext.GetLoggerOrDefault(ctx, l.logger)
}

// expectedQueryError filters errors the repositories turn into domain results: a missing
// row is ErrAlertNotFound, and a cancelled pass is reported by the pass itself.
func expectedQueryError(err error) bool {
	return errors.IsAny(err, gorm.ErrRecordNotFound, context.Canceled)
}

func queryAttrs(sqlAndRowsFn func() (string, int64), elapsed time.Duration) []slog.Attr {
	sql, rows := sqlAndRowsFn()

	return []slog.Attr{
		slog.String("operation", statementVerb(sql)),
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	}
}

// statementVerb returns the leading SQL keyword, e.g. SELECT or UPDATE.
func statementVerb(sql string) string {
	verb, _, _ := strings.Cut(strings.TrimSpace(sql), " ")

	return strings.ToUpper(verb)
}
