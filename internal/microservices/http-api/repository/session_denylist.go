package repository

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// SessionDenylist remembers revoked session token ids until they expire
type SessionDenylist interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type redisSessionDenylist struct {
	client *redis.Client
}

// NewSessionDenylist returns a Redis-backed denylist, or a no-op one when client is nil
func NewSessionDenylist(client *redis.Client) SessionDenylist {
	if client == nil {
		return noopSessionDenylist{}
	}
	return &redisSessionDenylist{client: client}
}

func denylistKey(tokenID string) string {
	return "session:revoked:" + tokenID
}

func (d *redisSessionDenylist) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		// already expired, nothing to remember
		return nil
	}
	return d.client.Set(ctx, denylistKey(tokenID), 1, ttl).Err()
}

func (d *redisSessionDenylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	err := d.client.Get(ctx, denylistKey(tokenID)).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

type noopSessionDenylist struct{}

func (noopSessionDenylist) Revoke(context.Context, string, time.Duration) error { return nil }

func (noopSessionDenylist) IsRevoked(context.Context, string) (bool, error) { return false, nil }
