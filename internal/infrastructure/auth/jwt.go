package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/MGTheTrain/specfem-web/internal/domain/users"
	"github.com/MGTheTrain/specfem-web/internal/pkg/config"
	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for tokens that are malformed, forged or expired
var ErrInvalidToken = errors.New("invalid session token")

const issuer = "specfem-web"

// Claims carries the signed-in user as the token subject
type Claims struct {
	jwt.RegisteredClaims
}

type jwtSessionTokens struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTSessionTokens creates SessionTokens signed with HS256
func NewJWTSessionTokens(settings *config.AuthSettings) (users.SessionTokens, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &jwtSessionTokens{
		secret: []byte(settings.SecretKey),
		ttl:    settings.TokenTTL,
		now:    time.Now,
	}, nil
}

func (s *jwtSessionTokens) Issue(userID string) (string, error) {
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

func (s *jwtSessionTokens) Verify(tokenString string) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
