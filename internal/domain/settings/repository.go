package settings

import "context"

// SettingsRepository reads and writes company-wide settings.
type SettingsRepository interface {
	// GetGeofence returns the geofence singleton, or nil when it has never
	// been configured.
	GetGeofence(ctx context.Context) (*GeofenceConfig, error)

	// UpsertGeofence replaces the geofence singleton.
	UpsertGeofence(ctx context.Context, cfg GeofenceConfig) (GeofenceConfig, error)

	// GetPolicy returns one policy document by key.
	// Returns ErrPolicyNotFound when absent.
	GetPolicy(ctx context.Context, key string) (CompanyPolicy, error)
}
