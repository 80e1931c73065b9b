package testkit

import (
	"context"
	"fmt"

	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

// RedisModule is the Redis instance shared by the provider cache and the task queue.
type RedisModule struct {
	container *tcredis.RedisContainer
	addr      string
}

// Addr returns host:port, the form go-redis and asynq expect.
func (r *RedisModule) Addr() string { return r.addr }

func (r *RedisModule) name() string { return "redis " + r.addr }

// Terminate stops the container. External instances are left alone.
func (r *RedisModule) Terminate(ctx context.Context) error {
	if r.container == nil {
		return nil
	}
	return r.container.Terminate(ctx)
}

// StartRedis starts a Redis container, or wraps cfg.RedisAddr when set.
func StartRedis(ctx context.Context, cfg *Config) (*RedisModule, error) {
	if cfg.RedisAddr != "" {
		return &RedisModule{addr: cfg.RedisAddr}, nil
	}

	ctr, err := tcredis.Run(ctx, cfg.RedisImage)
	if err != nil {
		return nil, fmt.Errorf("start redis container: %w", err)
	}

	addr, err := ctr.Endpoint(ctx, "")
	if err != nil {
		_ = ctr.Terminate(ctx)
		return nil, fmt.Errorf("redis endpoint: %w", err)
	}
	return &RedisModule{container: ctr, addr: addr}, nil
}
