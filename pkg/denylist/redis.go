package denylist

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/limbo/manifest/pkg/cleanup"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "manifest:revoked:"

type RedisConfig struct {
	URL      string // redis:// or rediss://
	Password string // overrides the password in URL when set
}

type Redis struct {
	client redis.UniversalClient
	now    func() time.Time
}

// NewRedis connects and pings the server. The client is closed by the
// cleanup jobs on shutdown.
func NewRedis(ctx context.Context, cfg RedisConfig) (*Redis, error) {
	if cfg.URL == "" {
		return nil, errors.New("redis: url not configured")
	}
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("redis: invalid url: %w", err)
	}
	if cfg.Password != "" {
		opts.Password = cfg.Password
	}
	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis: ping: %w", err)
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing redis client",
		F:    client.Close,
	})
	return NewRedisWithClient(client), nil
}

func NewRedisWithClient(client redis.UniversalClient) *Redis {
	return &Redis{
		client: client,
		now:    time.Now,
	}
}

func (r *Redis) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	ttl := expiresAt.Sub(r.now())
	if ttl <= 0 {
		return nil
	}
	if err := r.client.Set(ctx, keyPrefix+tokenID, 1, ttl).Err(); err != nil {
		return fmt.Errorf("revoking token: %w", err)
	}
	return nil
}

func (r *Redis) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := r.client.Exists(ctx, keyPrefix+tokenID).Result()
	if err != nil {
		return false, fmt.Errorf("checking revoked token: %w", err)
	}
	return n > 0, nil
}
