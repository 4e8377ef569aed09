package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"
)

// Per-resource TTLs. Today's attendance is deliberately short: it doubles as
// the bound on staleness after a clock action when invalidation fails.
const (
	TTLTodayAttendance   = 60 * time.Second
	TTLEmployeeDirectory = time.Hour
	TTLDocuments         = time.Hour
	TTLLeaveRequests     = 5 * time.Minute
	TTLNotices           = time.Hour
	TTLHolidays          = time.Hour
	TTLPolicies          = 24 * time.Hour
	TTLSettings          = 24 * time.Hour
)

// GetOrLoad reads key from the store, falling back to loader on a miss or on
// any cache failure. The result is written back best-effort with the given
// TTL. Cache errors never propagate: a loader success is a read success, a
// loader failure is the only failure. This is a fail-open cache, not a
// fail-open data layer.
func GetOrLoad[T any](ctx context.Context, store Store, key string, ttl time.Duration, loader func(ctx context.Context) (T, error)) (T, error) {
	cached, err := store.Get(ctx, key)
	if err == nil {
		var value T
		if err := json.Unmarshal([]byte(cached), &value); err == nil {
			return value, nil
		}
		// A corrupt entry is a miss; the loader result will overwrite it.
		slog.Warn("cache entry not decodable, reloading", "key", key)
	} else if !errors.Is(err, ErrMiss) {
		slog.Warn("cache read failed, falling back to source", "key", key, "error", err)
	}

	value, err := loader(ctx)
	if err != nil {
		var zero T
		return zero, err
	}

	if encoded, err := json.Marshal(value); err == nil {
		if err := store.Set(ctx, key, string(encoded), ttl); err != nil {
			slog.Warn("cache write failed", "key", key, "error", err)
		}
	}

	return value, nil
}

// Invalidate drops keys best-effort. Callers rely on the resource TTL as the
// staleness bound when the delete itself fails.
func Invalidate(ctx context.Context, store Store, keys ...string) {
	if err := store.Del(ctx, keys...); err != nil {
		slog.Warn("cache invalidation failed", "keys", keys, "error", err)
	}
}
