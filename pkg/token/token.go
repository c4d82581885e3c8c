package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims carried by an author token. AuthorID identifies the logged-in
// author, ID (jti) ties the token to its Redis session.
type Claims struct {
	AuthorID string `json:"authorId"`
	jwt.RegisteredClaims
}

// Manager signs and verifies author tokens.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{secret: []byte(secret), ttl: ttl}
}

// TTL reports the token lifetime, used to bound the session record.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Generate issues a signed token for the given author id and returns the
// token string together with its session id (jti).
func (m *Manager) Generate(authorID string) (string, string, error) {
	sessionID := uuid.NewString()
	now := time.Now()

	claims := Claims{
		AuthorID: authorID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", "", err
	}
	return signed, sessionID, nil
}

// Verify parses and validates a token string.
func (m *Manager) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}

	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !parsed.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	if claims.AuthorID == "" {
		return nil, fmt.Errorf("token carries no author id")
	}

	return claims, nil
}
