// Package logger provides structured logging setup using Go's slog package.
package logger

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// Logger is a thin printf-style facade over slog used across the service.
type Logger struct {
	sl *slog.Logger
}

// New creates a Logger writing JSON records to stdout at the given level.
// Records automatically carry the correlation_id from the context, if any.
func New(level string) *Logger {
	handlerOpts := &slog.HandlerOptions{
		Level: parseLevel(level),
	}

	var handler slog.Handler = slog.NewJSONHandler(os.Stdout, handlerOpts)
	handler = NewCorrelationHandler(handler)

	sl := slog.New(handler)
	slog.SetDefault(sl)

	return &Logger{sl: sl}
}

func (l *Logger) Debug(format string, args ...any) {
	l.sl.Debug(fmt.Sprintf(format, args...))
}

func (l *Logger) Info(format string, args ...any) {
	l.sl.Info(fmt.Sprintf(format, args...))
}

func (l *Logger) Warn(format string, args ...any) {
	l.sl.Warn(fmt.Sprintf(format, args...))
}

func (l *Logger) Error(format string, args ...any) {
	l.sl.Error(fmt.Sprintf(format, args...))
}

// Fatal logs the error and terminates the process.
func (l *Logger) Fatal(err error) {
	l.sl.Error(err.Error())
	os.Exit(1)
}

func (l *Logger) DebugCtx(ctx context.Context, format string, args ...any) {
	l.sl.DebugContext(ctx, fmt.Sprintf(format, args...))
}

func (l *Logger) InfoCtx(ctx context.Context, format string, args ...any) {
	l.sl.InfoContext(ctx, fmt.Sprintf(format, args...))
}

func (l *Logger) WarnCtx(ctx context.Context, format string, args ...any) {
	l.sl.WarnContext(ctx, fmt.Sprintf(format, args...))
}

func (l *Logger) ErrorCtx(ctx context.Context, format string, args ...any) {
	l.sl.ErrorContext(ctx, fmt.Sprintf(format, args...))
}

// parseLevel converts string level to slog.Level.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
