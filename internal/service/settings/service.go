package settings

import (
	"context"
	"fmt"

	"github.com/workforcehq/workforce-backend-go/internal/domain/settings"
	"github.com/workforcehq/workforce-backend-go/internal/pkg/cache"
)

type SettingsServiceImpl struct {
	repo  settings.SettingsRepository
	cache cache.Store
}

func NewSettingsService(repo settings.SettingsRepository, cacheStore cache.Store) settings.SettingsService {
	return &SettingsServiceImpl{
		repo:  repo,
		cache: cacheStore,
	}
}

// GetGeofence implements settings.SettingsService. Served through the same
// cache entry the clock-in path reads, so both see one view of the config.
func (s *SettingsServiceImpl) GetGeofence(ctx context.Context) (*settings.GeofenceConfig, error) {
	cfg, err := cache.GetOrLoad(ctx, s.cache, cache.GeofenceKey(), cache.TTLSettings, func(ctx context.Context) (*settings.GeofenceConfig, error) {
		return s.repo.GetGeofence(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get geofence settings: %w", err)
	}
	return cfg, nil
}

// UpdateGeofence implements settings.SettingsService.
func (s *SettingsServiceImpl) UpdateGeofence(ctx context.Context, req settings.UpdateGeofenceRequest) (settings.GeofenceConfig, error) {
	if err := req.Validate(); err != nil {
		return settings.GeofenceConfig{}, err
	}

	updated, err := s.repo.UpsertGeofence(ctx, settings.GeofenceConfig{
		OfficeLatitude:  &req.OfficeLatitude,
		OfficeLongitude: &req.OfficeLongitude,
		RadiusMeters:    req.RadiusMeters,
	})
	if err != nil {
		return settings.GeofenceConfig{}, fmt.Errorf("failed to update geofence settings: %w", err)
	}

	// Without invalidation the clock-in path would keep enforcing the old
	// boundary until the long settings TTL runs out.
	cache.Invalidate(ctx, s.cache, cache.GeofenceKey())

	return updated, nil
}

// GetPolicy implements settings.SettingsService.
func (s *SettingsServiceImpl) GetPolicy(ctx context.Context, key string) (settings.CompanyPolicy, error) {
	return cache.GetOrLoad(ctx, s.cache, cache.PolicyKey(key), cache.TTLPolicies, func(ctx context.Context) (settings.CompanyPolicy, error) {
		return s.repo.GetPolicy(ctx, key)
	})
}
