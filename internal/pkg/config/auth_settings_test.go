//go:build unit
// +build unit

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAuthSettingsValidation(t *testing.T) {
	secret := "0123456789abcdef0123456789abcdef"

	tests := []struct {
		name          string
		settings      *AuthSettings
		expectedError bool
	}{
		{
			name:     "valid settings",
			settings: &AuthSettings{SecretKey: secret, TokenTTL: time.Hour, CookieName: DefaultSessionCookie},
		},
		{
			name:          "short secret",
			settings:      &AuthSettings{SecretKey: "short", TokenTTL: time.Hour, CookieName: DefaultSessionCookie},
			expectedError: true,
		},
		{
			name:          "ttl below one minute",
			settings:      &AuthSettings{SecretKey: secret, TokenTTL: time.Second, CookieName: DefaultSessionCookie},
			expectedError: true,
		},
		{
			name:          "missing cookie name",
			settings:      &AuthSettings{SecretKey: secret, TokenTTL: time.Hour},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
