package logger

import (
	"log/slog"

	"github.com/MGTheTrain/specfem-web/internal/pkg/config"
	"github.com/natefinch/lumberjack"
)

// NewFileLogger creates a logger writing JSON records to a rotated file.
func NewFileLogger(settings *config.LoggerSettings) Logger {
	writer := &lumberjack.Logger{
		Filename:   settings.FilePath,
		MaxSize:    settings.MaxSize,
		MaxBackups: settings.MaxBackups,
		MaxAge:     settings.MaxAge,
		Compress:   settings.Compress,
	}

	opts := &slog.HandlerOptions{
		Level: parseLevel(settings.LogLevel),
	}
	return NewSlogLogger(slog.NewJSONHandler(writer, opts))
}
