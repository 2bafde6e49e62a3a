package logger

import (
	"context"
	"log/slog"
	"os"
)

// Logger defines the structured logging interface used across the service.
// Arguments following the message are slog key/value pairs.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Fatal(msg string, args ...interface{})
	// With returns a Logger that adds args to every record.
	With(args ...interface{}) Logger
}

// LevelCritical sits above slog.LevelError for the "critical" setting
const LevelCritical = slog.LevelError + 4

// SlogLogger implements Logger on top of a slog.Logger
type SlogLogger struct {
	logger *slog.Logger
}

// NewSlogLogger wraps an existing slog handler
func NewSlogLogger(handler slog.Handler) *SlogLogger {
	return &SlogLogger{logger: slog.New(handler)}
}

// Debug logs a debug message.
func (l *SlogLogger) Debug(msg string, args ...interface{}) {
	l.logger.Debug(msg, args...)
}

// Info logs an informational message.
func (l *SlogLogger) Info(msg string, args ...interface{}) {
	l.logger.Info(msg, args...)
}

// Warn logs a warning message.
func (l *SlogLogger) Warn(msg string, args ...interface{}) {
	l.logger.Warn(msg, args...)
}

// Error logs an error message.
func (l *SlogLogger) Error(msg string, args ...interface{}) {
	l.logger.Error(msg, args...)
}

// Fatal logs at critical level and exits.
func (l *SlogLogger) Fatal(msg string, args ...interface{}) {
	l.logger.Log(context.Background(), LevelCritical, msg, args...)
	os.Exit(1)
}

// With returns a child logger carrying args.
func (l *SlogLogger) With(args ...interface{}) Logger {
	return &SlogLogger{logger: l.logger.With(args...)}
}
