package session

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "blog:session:"

// Store keeps one Redis entry per issued token, keyed by the token's
// session id (jti). A token whose entry is gone, either revoked by logout
// or expired by TTL, is no longer accepted by the verifier.
type Store struct {
	client *redis.Client
}

func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

// Start records a fresh session. TTL matches the token lifetime so Redis
// expires stale sessions on its own.
func (s *Store) Start(ctx context.Context, sessionID, authorID string, ttl time.Duration) error {
	return s.client.Set(ctx, keyPrefix+sessionID, authorID, ttl).Err()
}

// IsActive reports whether the session still exists.
func (s *Store) IsActive(ctx context.Context, sessionID string) (bool, error) {
	err := s.client.Get(ctx, keyPrefix+sessionID).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Revoke deletes the session record, invalidating its token immediately.
func (s *Store) Revoke(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, keyPrefix+sessionID).Err()
}
