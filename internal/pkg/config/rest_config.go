package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment variables overriding file settings,
// e.g. SPECFEM_DATABASE_DSN overrides database.dsn.
const EnvPrefix = "SPECFEM"

// RestConfig holds the settings of the REST API server
type RestConfig struct {
	Port           string           `mapstructure:"port" validate:"required,numeric"`
	AllowedOrigins []string         `mapstructure:"allowed_origins"`
	Database       DatabaseSettings `mapstructure:"database"`
	Logger         LoggerSettings   `mapstructure:"logger"`
	Auth           AuthSettings     `mapstructure:"auth"`
}

// Validate checks the server settings and every nested settings block
func (c *RestConfig) Validate() error {
	validate := validator.New()
	if err := validate.Var(c.Port, "required,numeric"); err != nil {
		return fmt.Errorf("validation failed for port: %w", err)
	}

	return errors.Join(c.Database.Validate(), c.Logger.Validate(), c.Auth.Validate())
}

// CLIConfig holds the settings needed by the administrative command line tool
type CLIConfig struct {
	Database DatabaseSettings `mapstructure:"database"`
	Logger   LoggerSettings   `mapstructure:"logger"`
}

// Validate checks every nested settings block
func (c *CLIConfig) Validate() error {
	return errors.Join(c.Database.Validate(), c.Logger.Validate())
}

// InitializeRestConfig reads the REST server configuration from a YAML file
func InitializeRestConfig(path string) (*RestConfig, error) {
	var cfg RestConfig
	if err := load(path, &cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rest config: %w", err)
	}

	return &cfg, nil
}

// InitializeCLIConfig reads the CLI configuration from a YAML file. A missing
// path falls back to the defaults: an in-memory sqlite database and console logging.
func InitializeCLIConfig(path string) (*CLIConfig, error) {
	var cfg CLIConfig
	if err := load(path, &cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid cli config: %w", err)
	}

	return &cfg, nil
}

func load(path string, out interface{}) error {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	if err := v.Unmarshal(out); err != nil {
		return fmt.Errorf("failed to decode config: %w", err)
	}

	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("allowed_origins", []string{"*"})

	v.SetDefault("database.type", SqliteDbType)
	v.SetDefault("database.dsn", "")
	v.SetDefault("database.name", "")

	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)
	v.SetDefault("logger.file_path", "")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 28)
	v.SetDefault("logger.compress", true)
	v.SetDefault("logger.request_logging", true)

	v.SetDefault("auth.secret_key", "")
	v.SetDefault("auth.token_ttl", 12*time.Hour)
	v.SetDefault("auth.cookie_name", DefaultSessionCookie)
	v.SetDefault("auth.secure_cookie", false)
}
