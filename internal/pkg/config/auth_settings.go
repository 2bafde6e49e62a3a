package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// DefaultSessionCookie is the cookie carrying the signed session token
const DefaultSessionCookie = "specfem_session"

// AuthSettings configures session tokens issued on login
type AuthSettings struct {
	SecretKey    string        `mapstructure:"secret_key" validate:"required,min=32"`
	TokenTTL     time.Duration `mapstructure:"token_ttl" validate:"required,min=1m"`
	CookieName   string        `mapstructure:"cookie_name" validate:"required"`
	SecureCookie bool          `mapstructure:"secure_cookie"`
}

// Validate checks that all fields in AuthSettings are valid
func (s *AuthSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for AuthSettings: %w", err)
	}

	return nil
}
