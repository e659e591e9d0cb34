package auth

import (
	"errors"
	"strings"
	"time"

	"jobmarket_backend/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every validation failure: malformed input, wrong
// signature, expiry, unexpected algorithm. Callers never see the distinction;
// the concrete cause is only logged server-side.
var ErrInvalidToken = errors.New("invalid token")

// Claims carried in every access token.
type Claims struct {
	UserID string          `json:"uid"`
	Role   models.UserRole `json:"role"`
	jwt.RegisteredClaims
}

// TokenManager issues and validates HS256 access tokens.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenManager(secret string, ttlMinutes int) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		ttl:    time.Duration(ttlMinutes) * time.Minute,
	}
}

// TTL returns the configured token lifetime.
func (m *TokenManager) TTL() time.Duration {
	return m.ttl
}

// Issue signs a token for the given user with issued-at and expiry claims.
func (m *TokenManager) Issue(userID string, role models.UserRole) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Validate parses and verifies a token, failing closed on any error.
func (m *TokenManager) Validate(raw string) (*Claims, error) {
	if raw == "" {
		return nil, ErrInvalidToken
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.UserID == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// BearerToken extracts the raw token from an Authorization header value.
func BearerToken(header string) (string, bool) {
	if !strings.HasPrefix(header, "Bearer ") {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	if token == "" {
		return "", false
	}
	return token, true
}
