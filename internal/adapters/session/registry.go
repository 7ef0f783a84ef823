package session

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "session:"

// Registry tracks live sessions in Redis so a token can be revoked before it expires.
type Registry struct{ c *redis.Client }

func NewRegistry(c *redis.Client) *Registry { return &Registry{c: c} }

func (r *Registry) Put(ctx context.Context, id, userID string, ttl time.Duration) error {
	return r.c.Set(ctx, keyPrefix+id, userID, ttl).Err()
}

// Lookup returns the user of a live session, or ok=false when it is unknown,
// expired or revoked.
func (r *Registry) Lookup(ctx context.Context, id string) (string, bool, error) {
	v, err := r.c.Get(ctx, keyPrefix+id).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

// Revoke deletes the session and reports whether it was live.
func (r *Registry) Revoke(ctx context.Context, id string) (bool, error) {
	n, err := r.c.Del(ctx, keyPrefix+id).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
