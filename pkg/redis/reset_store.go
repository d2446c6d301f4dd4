package redis

import (
	"context"
	"fmt"
	"time"

	"cardwallet.backend/pkg/crypto"
)

// ResetStore hands out single-use password reset tokens. Only the bcrypt
// hash of the token is stored; the plaintext goes to the user once and is
// never recoverable from Redis.
type ResetStore struct {
	ttl time.Duration
}

// NewResetStore creates a new reset store
func NewResetStore(ttl time.Duration) *ResetStore {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &ResetStore{ttl: ttl}
}

func resetKey(entityType string, entityID int64) string {
	return fmt.Sprintf("reset:%s:%d", entityType, entityID)
}

// IssueToken generates a reset token for the entity and stores its hash.
// Issuing a new token replaces any outstanding one.
func (s *ResetStore) IssueToken(ctx context.Context, entityType string, entityID int64) (string, error) {
	token, err := crypto.GenerateRandomToken(16)
	if err != nil {
		return "", err
	}

	hash, err := crypto.HashPassword(token)
	if err != nil {
		return "", err
	}

	if err := Set(ctx, resetKey(entityType, entityID), hash, s.ttl); err != nil {
		return "", err
	}
	return token, nil
}

// VerifyToken checks a presented token and consumes it on success.
func (s *ResetStore) VerifyToken(ctx context.Context, entityType string, entityID int64, token string) (bool, error) {
	key := resetKey(entityType, entityID)
	hash, err := Get(ctx, key)
	if err != nil {
		return false, err
	}

	if !crypto.CheckPassword(token, hash) {
		return false, nil
	}

	if err := Del(ctx, key); err != nil {
		return false, err
	}
	return true, nil
}
