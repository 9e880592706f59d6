package workload

import (
	"context"
	"time"

	"github.com/dlshle/minbench/errors"
	"github.com/go-redis/redis"
)

const (
	redisPingName = "redis-ping"

	redisDialTimeout = 2 * time.Second
)

type redisPingWorkload struct {
	client *redis.Client
}

func newRedisPingWorkload(ctx context.Context, cfg Config) (Workload, error) {
	client := redis.NewClient(&redis.Options{
		Addr:        cfg.RedisAddr,
		DB:          cfg.RedisDB,
		DialTimeout: redisDialTimeout,
	}).WithContext(ctx)
	// fail at setup rather than on the first measured run
	if err := client.Ping().Err(); err != nil {
		me := errors.MultiErrorWith(errors.Errorf("redis %s unreachable: %w", cfg.RedisAddr, err))
		me.Add(client.Close())
		return nil, me.ErrorOrNil()
	}
	return &redisPingWorkload{client: client}, nil
}

func (w *redisPingWorkload) Name() string {
	return redisPingName
}

func (w *redisPingWorkload) Run() error {
	return w.client.Ping().Err()
}

func (w *redisPingWorkload) Close() error {
	return w.client.Close()
}
