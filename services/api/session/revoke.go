package session

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

const revokedPrefix = "sgsb:session:revoked:"

// Revoker keeps a denylist of token ids in redis. Entries expire with the token.
type Revoker struct {
	client *redis.Client
}

func NewRevoker(client *redis.Client) *Revoker {
	return &Revoker{client: client}
}

// Revoke denies jti until the given time. Past times are ignored.
func (r *Revoker) Revoke(ctx context.Context, jti string, until time.Time) error {
	if jti == "" {
		return nil
	}
	ttl := time.Until(until)
	if ttl <= 0 {
		return nil
	}
	return r.client.Set(ctx, revokedPrefix+jti, "1", ttl).Err()
}

// IsRevoked reports whether jti was revoked.
func (r *Revoker) IsRevoked(ctx context.Context, jti string) (bool, error) {
	if jti == "" {
		return false, nil
	}
	err := r.client.Get(ctx, revokedPrefix+jti).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Ping checks connectivity.
func (r *Revoker) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
