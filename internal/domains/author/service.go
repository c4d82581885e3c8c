package author

import (
	"context"
	"time"
)

// Service is the author business logic layer.
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*Author, error)
	Login(ctx context.Context, req LoginRequest) (*LoginResult, error)
	Logout(ctx context.Context, sessionID string) error
}

// SessionStore tracks issued tokens so they can expire and be revoked.
type SessionStore interface {
	Start(ctx context.Context, sessionID, authorID string, ttl time.Duration) error
	Revoke(ctx context.Context, sessionID string) error
}
