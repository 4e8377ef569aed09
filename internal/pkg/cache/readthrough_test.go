package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type profile struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestGetOrLoad_MissLoadsAndFills(t *testing.T) {
	mr := miniredis.RunT(t)
	store := NewRedis(mr.Addr(), "", 0)
	defer store.Close()

	ctx := context.Background()
	loaderCalls := 0
	loader := func(ctx context.Context) (profile, error) {
		loaderCalls++
		return profile{ID: "emp-1", Name: "Asha"}, nil
	}

	got, err := GetOrLoad(ctx, store, EmployeeKey("emp-1"), TTLEmployeeDirectory, loader)
	require.NoError(t, err)
	assert.Equal(t, "Asha", got.Name)
	assert.Equal(t, 1, loaderCalls)

	// The entry must now be in the cache with the requested TTL.
	assert.True(t, mr.Exists(EmployeeKey("emp-1")))
	assert.Equal(t, TTLEmployeeDirectory, mr.TTL(EmployeeKey("emp-1")))

	// A second read is served from the cache, not the loader.
	got, err = GetOrLoad(ctx, store, EmployeeKey("emp-1"), TTLEmployeeDirectory, loader)
	require.NoError(t, err)
	assert.Equal(t, "Asha", got.Name)
	assert.Equal(t, 1, loaderCalls)
}

func TestGetOrLoad_ExpiredEntryReloads(t *testing.T) {
	mr := miniredis.RunT(t)
	store := NewRedis(mr.Addr(), "", 0)
	defer store.Close()

	ctx := context.Background()
	loaderCalls := 0
	loader := func(ctx context.Context) (profile, error) {
		loaderCalls++
		return profile{ID: "emp-2"}, nil
	}

	_, err := GetOrLoad(ctx, store, TodayAttendanceKey("emp-2", "2025-06-15"), TTLTodayAttendance, loader)
	require.NoError(t, err)

	mr.FastForward(TTLTodayAttendance + time.Second)

	_, err = GetOrLoad(ctx, store, TodayAttendanceKey("emp-2", "2025-06-15"), TTLTodayAttendance, loader)
	require.NoError(t, err)
	assert.Equal(t, 2, loaderCalls)
}

func TestGetOrLoad_CacheDownFailsOpen(t *testing.T) {
	mr := miniredis.RunT(t)
	store := NewRedis(mr.Addr(), "", 0)
	defer store.Close()

	// Kill the backend before the read.
	mr.Close()

	got, err := GetOrLoad(context.Background(), store, EmployeeKey("emp-3"), TTLEmployeeDirectory, func(ctx context.Context) (profile, error) {
		return profile{ID: "emp-3", Name: "Ravi"}, nil
	})
	require.NoError(t, err, "cache failure must never fail the read")
	assert.Equal(t, "Ravi", got.Name)
}

func TestGetOrLoad_CorruptEntryReloads(t *testing.T) {
	mr := miniredis.RunT(t)
	store := NewRedis(mr.Addr(), "", 0)
	defer store.Close()

	require.NoError(t, mr.Set(EmployeeKey("emp-4"), "{not json"))

	got, err := GetOrLoad(context.Background(), store, EmployeeKey("emp-4"), TTLEmployeeDirectory, func(ctx context.Context) (profile, error) {
		return profile{ID: "emp-4", Name: "Mei"}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "Mei", got.Name)
}

func TestGetOrLoad_LoaderErrorPropagates(t *testing.T) {
	mr := miniredis.RunT(t)
	store := NewRedis(mr.Addr(), "", 0)
	defer store.Close()

	wantErr := errors.New("store unreachable")
	_, err := GetOrLoad(context.Background(), store, EmployeeKey("emp-5"), TTLEmployeeDirectory, func(ctx context.Context) (profile, error) {
		return profile{}, wantErr
	})
	assert.ErrorIs(t, err, wantErr, "the backing store is not fail-open")
}

func TestGetOrLoad_NilResultRoundTrips(t *testing.T) {
	mr := miniredis.RunT(t)
	store := NewRedis(mr.Addr(), "", 0)
	defer store.Close()

	ctx := context.Background()
	loaderCalls := 0
	loader := func(ctx context.Context) (*profile, error) {
		loaderCalls++
		return nil, nil
	}

	key := TodayAttendanceKey("emp-6", "2025-06-15")
	got, err := GetOrLoad(ctx, store, key, TTLTodayAttendance, loader)
	require.NoError(t, err)
	assert.Nil(t, got)

	// "no record today" is cached too, to keep absent-heavy days cheap.
	got, err = GetOrLoad(ctx, store, key, TTLTodayAttendance, loader)
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.Equal(t, 1, loaderCalls)
}

func TestRedis_GetMiss(t *testing.T) {
	mr := miniredis.RunT(t)
	store := NewRedis(mr.Addr(), "", 0)
	defer store.Close()

	_, err := store.Get(context.Background(), "nothing-here")
	assert.ErrorIs(t, err, ErrMiss)
}

func TestDisabled_AlwaysMisses(t *testing.T) {
	var store Disabled
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k", "v", time.Minute))
	_, err := store.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrMiss)
	assert.NoError(t, store.Del(ctx, "k"))
}

func TestInvalidate_DropsKey(t *testing.T) {
	mr := miniredis.RunT(t)
	store := NewRedis(mr.Addr(), "", 0)
	defer store.Close()

	ctx := context.Background()
	require.NoError(t, store.Set(ctx, TodayAttendanceKey("emp-7", "2025-06-15"), "{}", TTLTodayAttendance))

	Invalidate(ctx, store, TodayAttendanceKey("emp-7", "2025-06-15"))
	assert.False(t, mr.Exists(TodayAttendanceKey("emp-7", "2025-06-15")))
}

func TestKeys_DistinctResourcesNeverCollide(t *testing.T) {
	keys := []string{
		TodayAttendanceKey("emp-1", "2025-06-15"),
		TodayAttendanceKey("emp-1", "2025-06-16"),
		TodayAttendanceKey("emp-2", "2025-06-15"),
		EmployeeDirectoryKey(1, 20),
		EmployeeKey("emp-1"),
		DocumentListKey(1, 20),
		DocumentKey("doc-1"),
		LeaveRequestsKey("emp-1", "pending", 1, 20),
		LeaveRequestsKey("emp-1", "", 1, 20),
		HolidaysKey("2025-01-01", "2025-12-31"),
		NoticeListKey(1, 20),
		PolicyKey("remote-work"),
		GeofenceKey(),
	}
	seen := make(map[string]bool, len(keys))
	for _, k := range keys {
		assert.False(t, seen[k], "duplicate key %q", k)
		seen[k] = true
	}

	// Identical requests must map to the same key.
	assert.Equal(t, TodayAttendanceKey("emp-1", "2025-06-15"), TodayAttendanceKey("emp-1", "2025-06-15"))
}
