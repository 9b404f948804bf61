package db

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"petcare-go/pkg/logger"
)

// gormLogger routes gorm's query log into the application logger. Missing
// rows are an expected outcome for lookups and are not logged.
type gormLogger struct {
	log       logger.Logger
	level     gormlogger.LogLevel
	slowQuery time.Duration
}

func NewGormLogger(log logger.Logger, slowQuery time.Duration) gormlogger.Interface {
	return &gormLogger{log: log.With("component", "gorm"), level: gormlogger.Warn, slowQuery: slowQuery}
}

func (l *gormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	clone := *l
	clone.level = level
	return &clone
}

func (l *gormLogger) Info(_ context.Context, message string, args ...interface{}) {
	if l.level >= gormlogger.Info {
		l.log.Info(message, "args", args)
	}
}

func (l *gormLogger) Warn(_ context.Context, message string, args ...interface{}) {
	if l.level >= gormlogger.Warn {
		l.log.Warn(message, "args", args)
	}
}

func (l *gormLogger) Error(_ context.Context, message string, args ...interface{}) {
	if l.level >= gormlogger.Error {
		l.log.Error(message, "args", args)
	}
}

func (l *gormLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.level >= gormlogger.Error:
		sql, rows := fc()
		l.log.InternalError("db: query failed", err, "sql", sql, "rows", rows, "elapsed", elapsed)
	case l.slowQuery > 0 && elapsed > l.slowQuery && l.level >= gormlogger.Warn:
		sql, rows := fc()
		l.log.Warn("db: slow query", "sql", sql, "rows", rows, "elapsed", elapsed)
	case l.level >= gormlogger.Info:
		sql, rows := fc()
		l.log.Debug("db: query", "sql", sql, "rows", rows, "elapsed", elapsed)
	}
}
