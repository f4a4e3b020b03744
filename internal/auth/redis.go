package auth

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

var _ Denylist = (*RedisDenylist)(nil)

const denylistKeyPrefix = "aureon:denylist:"

// RedisDenylist implements Denylist using a Redis key per token with a
// native TTL, so expired entries disappear without any sweeping.
type RedisDenylist struct {
	client    *redis.Client
	retention time.Duration
}

func NewRedisDenylist(client *redis.Client, retention time.Duration) *RedisDenylist {
	if retention <= 0 {
		retention = 24 * time.Hour
	}
	return &RedisDenylist{client: client, retention: retention}
}

func (d *RedisDenylist) Revoke(ctx context.Context, token string, insertedAt time.Time) error {
	// SET is idempotent: revoking an already-revoked token refreshes the
	// TTL, which only ever extends denial past the token's own expiry.
	return d.client.Set(ctx, denylistKeyPrefix+token, insertedAt.UTC().Format(time.RFC3339), d.retention).Err()
}

func (d *RedisDenylist) IsRevoked(ctx context.Context, token string) (bool, error) {
	err := d.client.Get(ctx, denylistKeyPrefix+token).Err()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
