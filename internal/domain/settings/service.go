package settings

import "context"

type SettingsService interface {
	// GetGeofence returns the office geofence, or nil when unconfigured.
	GetGeofence(ctx context.Context) (*GeofenceConfig, error)

	// UpdateGeofence replaces the geofence (admin) and invalidates its
	// cache entry so the next clock-in sees the new boundary.
	UpdateGeofence(ctx context.Context, req UpdateGeofenceRequest) (GeofenceConfig, error)

	// GetPolicy returns one policy document, through the long-TTL cache.
	GetPolicy(ctx context.Context, key string) (CompanyPolicy, error)
}
