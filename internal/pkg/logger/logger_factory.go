package logger

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/MGTheTrain/specfem-web/internal/pkg/config"
)

// ErrNotInitialized is returned by GetLogger before InitLogger succeeded
var ErrNotInitialized = errors.New("logger not initialized: call InitLogger first")

var (
	loggerInstance Logger
	loggerErr      error
	loggerOnce     sync.Once
)

var levels = map[string]slog.Level{
	config.LogLevelDebug:    slog.LevelDebug,
	config.LogLevelInfo:     slog.LevelInfo,
	config.LogLevelWarning:  slog.LevelWarn,
	config.LogLevelError:    slog.LevelError,
	config.LogLevelCritical: LevelCritical,
}

// InitLogger builds the process-wide logger from settings. Only the first
// call has an effect; later calls return its result.
func InitLogger(settings *config.LoggerSettings) error {
	loggerOnce.Do(func() {
		loggerInstance, loggerErr = newLogger(settings)
	})
	return loggerErr
}

// GetLogger returns the logger built by InitLogger
func GetLogger() (Logger, error) {
	if loggerInstance == nil {
		return nil, ErrNotInitialized
	}
	return loggerInstance, nil
}

func newLogger(settings *config.LoggerSettings) (Logger, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid logger settings: %w", err)
	}

	if settings.ToFile() {
		return NewFileLogger(settings), nil
	}
	return NewConsoleLogger(settings.LogLevel), nil
}

// parseLevel maps a log_level setting to its slog level, info when unknown
func parseLevel(level string) slog.Level {
	if l, ok := levels[level]; ok {
		return l
	}
	return slog.LevelInfo
}
