package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// operationTimeout caps every cache round trip so a degraded Redis never
// meaningfully delays a request; a timed-out call is treated as a miss.
const operationTimeout = 2 * time.Second

// Redis implements Store on a Redis server.
type Redis struct {
	rdb *redis.Client
}

// NewRedis connects a Redis-backed Store. The connection is lazy; a server
// that is down at startup only degrades reads, it does not fail boot.
func NewRedis(addr, password string, db int) *Redis {
	return &Redis{
		rdb: redis.NewClient(&redis.Options{
			Addr:         addr,
			Password:     password,
			DB:           db,
			DialTimeout:  operationTimeout,
			ReadTimeout:  operationTimeout,
			WriteTimeout: operationTimeout,
		}),
	}
}

// Ping verifies connectivity. Useful for health checks and startup logging.
func (r *Redis) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, operationTimeout)
	defer cancel()
	return r.rdb.Ping(ctx).Err()
}

// Close closes the underlying client. Implements io.Closer.
func (r *Redis) Close() error {
	return r.rdb.Close()
}

func (r *Redis) Get(ctx context.Context, key string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, operationTimeout)
	defer cancel()

	val, err := r.rdb.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrMiss
		}
		return "", err
	}
	return val, nil
}

func (r *Redis) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, operationTimeout)
	defer cancel()
	return r.rdb.Set(ctx, key, value, ttl).Err()
}

func (r *Redis) Del(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, operationTimeout)
	defer cancel()
	return r.rdb.Del(ctx, keys...).Err()
}
