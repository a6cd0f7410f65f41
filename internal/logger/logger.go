// Package logger wraps log/slog with a process-wide JSON logger and
// helpers for the attributes this service logs everywhere.
package logger

import (
	"context"
	"log/slog"
	"os"
)

var defaultLogger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
	Level: slog.LevelInfo,
}))

// SetLogger replaces the process-wide logger. Tests use it to capture
// output.
func SetLogger(l *slog.Logger) {
	defaultLogger = l
}

// GetLogger returns the process-wide logger.
func GetLogger() *slog.Logger {
	return defaultLogger
}

// Default is an alias for GetLogger.
func Default() *slog.Logger {
	return defaultLogger
}

func Info(msg string, args ...any)  { defaultLogger.Info(msg, args...) }
func Warn(msg string, args ...any)  { defaultLogger.Warn(msg, args...) }
func Error(msg string, args ...any) { defaultLogger.Error(msg, args...) }
func Debug(msg string, args ...any) { defaultLogger.Debug(msg, args...) }

func InfoContext(ctx context.Context, msg string, args ...any) {
	defaultLogger.InfoContext(ctx, msg, args...)
}

func WarnContext(ctx context.Context, msg string, args ...any) {
	defaultLogger.WarnContext(ctx, msg, args...)
}

func ErrorContext(ctx context.Context, msg string, args ...any) {
	defaultLogger.ErrorContext(ctx, msg, args...)
}

// Fatal logs at error level and exits.
func Fatal(msg string, args ...any) {
	defaultLogger.Error(msg, args...)
	os.Exit(1)
}

// WithRequestID returns a logger carrying the request_id attribute.
func WithRequestID(requestID string) *slog.Logger {
	return defaultLogger.With(slog.String("request_id", requestID))
}

// WithSlug returns a logger carrying the slug attribute.
func WithSlug(slug string) *slog.Logger {
	return defaultLogger.With(slog.String("slug", slug))
}

// WithFields returns a logger carrying the given attributes.
func WithFields(attrs ...slog.Attr) *slog.Logger {
	args := make([]any, len(attrs))
	for i, attr := range attrs {
		args[i] = attr
	}
	return defaultLogger.With(args...)
}
