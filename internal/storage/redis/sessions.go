// Package redis keeps refresh-token sessions in Redis. Each token is stored under
// refresh:<token> with the owning user ID as value and the refresh lifetime as TTL.
package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"taskhub-api/internal/storage"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "refresh:"

// SessionRepo implements storage.SessionRepository on a go-redis client.
type SessionRepo struct {
	rdb *redis.Client
}

// NewSessionRepo creates a new SessionRepo.
func NewSessionRepo(rdb *redis.Client) *SessionRepo {
	return &SessionRepo{rdb: rdb}
}

var _ storage.SessionRepository = (*SessionRepo)(nil)

func key(token string) string { return keyPrefix + token }

func (r *SessionRepo) Store(ctx context.Context, token string, userID int64, ttl time.Duration) error {
	if err := r.rdb.Set(ctx, key(token), userID, ttl).Err(); err != nil {
		return fmt.Errorf("store refresh token: %w", err)
	}
	return nil
}

// Consume reads and deletes the token in one round trip so a token can be used once.
func (r *SessionRepo) Consume(ctx context.Context, token string) (int64, error) {
	val, err := r.rdb.GetDel(ctx, key(token)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, storage.ErrNotFound
		}
		return 0, fmt.Errorf("consume refresh token: %w", err)
	}
	userID, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("corrupt refresh token value %q: %w", val, err)
	}
	return userID, nil
}

func (r *SessionRepo) Revoke(ctx context.Context, token string) error {
	if err := r.rdb.Del(ctx, key(token)).Err(); err != nil {
		return fmt.Errorf("revoke refresh token: %w", err)
	}
	return nil
}
