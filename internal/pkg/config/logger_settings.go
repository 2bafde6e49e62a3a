package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Log levels accepted by log_level
const (
	LogLevelDebug    = "debug"
	LogLevelInfo     = "info"
	LogLevelWarning  = "warning"
	LogLevelError    = "error"
	LogLevelCritical = "critical"
)

// Log sinks accepted by log_type
const (
	LogTypeConsole = "console"
	LogTypeFile    = "file"
)

// LoggerSettings selects the log sink and level. The rotation fields apply
// to the file sink only and are then required.
type LoggerSettings struct {
	LogLevel   string `mapstructure:"log_level" validate:"required,oneof=debug info warning error critical"`
	LogType    string `mapstructure:"log_type" validate:"required,oneof=console file"`
	FilePath   string `mapstructure:"file_path" validate:"required_if=LogType file"`
	MaxSize    int    `mapstructure:"max_size" validate:"required_if=LogType file,omitempty,min=1,max=100"`
	MaxBackups int    `mapstructure:"max_backups" validate:"required_if=LogType file,omitempty,min=1,max=10"`
	MaxAge     int    `mapstructure:"max_age" validate:"required_if=LogType file,omitempty,min=1,max=365"`
	Compress   bool   `mapstructure:"compress"`

	// RequestLogging emits one line per served HTTP request.
	RequestLogging bool `mapstructure:"request_logging"`
}

// Validate checks the level, the sink and, for the file sink, the rotation limits
func (s *LoggerSettings) Validate() error {
	if err := validator.New().Struct(s); err != nil {
		return fmt.Errorf("validation failed for LoggerSettings: %w", err)
	}
	return nil
}

// ToFile reports whether records are written to a rotated file
func (s *LoggerSettings) ToFile() bool {
	return s.LogType == LogTypeFile
}
