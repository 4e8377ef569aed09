// Package cache provides the shared key-value cache used by read paths.
//
// The cache is strictly best-effort: every read path must work, at full
// correctness, with the cache absent or failing. The backing store stays the
// source of truth; this package only shortens the path to it.
package cache

import (
	"context"
	"errors"
	"time"
)

// ErrMiss is returned by Store.Get when the key is not present.
var ErrMiss = errors.New("cache: key not found")

// Store is the capability the rest of the application depends on. Handlers
// and services receive it injected; nothing holds a process-wide client.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}

// Disabled is a Store for deployments without a cache backend. Get always
// misses, writes succeed silently, so read-through callers degrade to their
// loaders without any special casing.
type Disabled struct{}

func (Disabled) Get(ctx context.Context, key string) (string, error) {
	return "", ErrMiss
}

func (Disabled) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	return nil
}

func (Disabled) Del(ctx context.Context, keys ...string) error {
	return nil
}
