package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken   = errors.New("invalid token")
	ErrMalformedToken = errors.New("malformed token")
	ErrExpiredToken   = errors.New("token has expired")
)

// Claims represents the session token claims
type Claims struct {
	Identity string `json:"identity"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies signed session tokens. Tokens carry no
// expiry claim unless a non-zero TTL is configured; legacy clients hold
// tokens indefinitely.
type TokenService struct {
	secretKey []byte
	ttl       time.Duration
}

// NewTokenService creates a new token service. A zero ttl disables expiry.
func NewTokenService(secretKey string, ttl time.Duration) *TokenService {
	return &TokenService{
		secretKey: []byte(secretKey),
		ttl:       ttl,
	}
}

// Issue creates a signed token bound to the given identity
func (s *TokenService) Issue(identity string) (string, error) {
	claims := Claims{
		Identity: identity,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
			Subject:  identity,
		},
	}
	if s.ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(s.ttl))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

// Verify checks the token signature and returns the bound identity
func (s *TokenService) Verify(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secretKey, nil
	})

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return "", ErrMalformedToken
		case errors.Is(err, jwt.ErrTokenExpired):
			return "", ErrExpiredToken
		default:
			return "", ErrInvalidToken
		}
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return "", ErrInvalidToken
	}

	return claims.Identity, nil
}

// TTL returns the configured token lifetime, zero when expiry is disabled
func (s *TokenService) TTL() time.Duration {
	return s.ttl
}
