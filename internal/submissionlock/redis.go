package submissionlock

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ministryofjustice/laa-data-claims-event-service/internal/domain"
	"github.com/ministryofjustice/laa-data-claims-event-service/internal/platform/config"
	"github.com/ministryofjustice/laa-data-claims-event-service/pkg/sentinel"
)

const keyPrefix = "submission-validation-lock:"

// RedisLock implements Lock on Redis SET NX with expiry, so the lock is
// shared across consumer instances and self-heals if a holder crashes.
type RedisLock struct {
	client *redis.Client
}

// Connect dials Redis from the service configuration and verifies the
// connection. An empty URL returns nil, nil; callers fall back to the
// in-process lock.
func Connect(cfg config.RedisConfig) (*RedisLock, error) {
	if cfg.URL == "" {
		return nil, nil
	}

	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}
	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns
	opts.DialTimeout = cfg.DialTimeout
	opts.ReadTimeout = cfg.ReadTimeout
	opts.WriteTimeout = cfg.WriteTimeout

	client := redis.NewClient(opts)

	timeout := cfg.DialTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	pingCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &RedisLock{client: client}, nil
}

// NewRedisLock wraps an existing client. Connect is the usual entry point;
// this exists for callers that manage the client themselves.
func NewRedisLock(client *redis.Client) (*RedisLock, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client is required")
	}
	return &RedisLock{client: client}, nil
}

func (l *RedisLock) Acquire(ctx context.Context, id domain.SubmissionID, ttl time.Duration) (bool, error) {
	ok, err := l.client.SetNX(ctx, keyPrefix+id.String(), "1", ttl).Result()
	if err != nil {
		return false, fmt.Errorf("acquiring lock for %s: %v: %w", id, err, sentinel.ErrUnavailable)
	}
	return ok, nil
}

func (l *RedisLock) Release(ctx context.Context, id domain.SubmissionID) error {
	if err := l.client.Del(ctx, keyPrefix+id.String()).Err(); err != nil {
		return fmt.Errorf("releasing lock for %s: %v: %w", id, err, sentinel.ErrUnavailable)
	}
	return nil
}

// Health reports whether the lock's Redis connection is usable. Wired into
// the readiness probe.
func (l *RedisLock) Health(ctx context.Context) error {
	return l.client.Ping(ctx).Err()
}

func (l *RedisLock) Close() error {
	return l.client.Close()
}
