package logger

import (
	"io"
	"log/slog"
	"os"
)

// NewConsoleLogger creates a logger writing human readable lines to stdout.
func NewConsoleLogger(level string) Logger {
	return newConsoleLogger(os.Stdout, level)
}

func newConsoleLogger(w io.Writer, level string) *SlogLogger {
	opts := &slog.HandlerOptions{
		Level: parseLevel(level),
	}
	return NewSlogLogger(slog.NewTextHandler(w, opts))
}
