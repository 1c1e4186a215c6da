package logger

import (
	"context"
	"log/slog"
	"runtime"
	"time"
)

// Interface is the logger handed to services and handlers. The plain and
// the w-suffixed methods take the same alternating key/value pairs.
type Interface interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	With(args ...any) Interface
	Named(name string) Interface

	Debugw(msg string, keysAndValues ...interface{})
	Infow(msg string, keysAndValues ...interface{})
	Warnw(msg string, keysAndValues ...interface{})
	Errorw(msg string, keysAndValues ...interface{})
}

// slogLogger keeps plain, the logger without the name attribute, so a
// second Named call replaces the name instead of repeating the key.
type slogLogger struct {
	plain  *slog.Logger
	logger *slog.Logger
	name   string
}

// NewLogger wraps the process logger.
func NewLogger() Interface {
	return NewLoggerWithSlog(Get())
}

func NewLoggerWithSlog(slogLog *slog.Logger) Interface {
	return &slogLogger{plain: slogLog, logger: slogLog}
}

// NewNop returns a logger that discards everything. Used by tests.
func NewNop() Interface {
	return NewLoggerWithSlog(slog.New(slog.DiscardHandler))
}

// log records the caller of the exported method as the source, not this
// file.
func (l *slogLogger) log(level slog.Level, msg string, args []any) {
	ctx := context.Background()
	if !l.logger.Enabled(ctx, level) {
		return
	}

	var pcs [1]uintptr
	runtime.Callers(3, pcs[:])
	r := slog.NewRecord(time.Now(), level, msg, pcs[0])
	r.Add(args...)
	_ = l.logger.Handler().Handle(ctx, r)
}

func (l *slogLogger) Debug(msg string, args ...any) { l.log(slog.LevelDebug, msg, args) }
func (l *slogLogger) Info(msg string, args ...any)  { l.log(slog.LevelInfo, msg, args) }
func (l *slogLogger) Warn(msg string, args ...any)  { l.log(slog.LevelWarn, msg, args) }
func (l *slogLogger) Error(msg string, args ...any) { l.log(slog.LevelError, msg, args) }

func (l *slogLogger) Debugw(msg string, keysAndValues ...interface{}) {
	l.log(slog.LevelDebug, msg, keysAndValues)
}

func (l *slogLogger) Infow(msg string, keysAndValues ...interface{}) {
	l.log(slog.LevelInfo, msg, keysAndValues)
}

func (l *slogLogger) Warnw(msg string, keysAndValues ...interface{}) {
	l.log(slog.LevelWarn, msg, keysAndValues)
}

func (l *slogLogger) Errorw(msg string, keysAndValues ...interface{}) {
	l.log(slog.LevelError, msg, keysAndValues)
}

func (l *slogLogger) With(args ...any) Interface {
	return &slogLogger{plain: l.plain.With(args...), logger: l.logger.With(args...), name: l.name}
}

// Named appends name to the logger's dotted name: "http" then "user.handler"
// gives logger=http.user.handler.
func (l *slogLogger) Named(name string) Interface {
	full := name
	if l.name != "" {
		full = l.name + "." + name
	}
	return &slogLogger{plain: l.plain, logger: l.plain.With("logger", full), name: full}
}
