package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/workforcehq/workforce-backend-go/internal/domain/settings"
	"github.com/workforcehq/workforce-backend-go/internal/pkg/database"
)

type settingsRepository struct {
	db *database.DB
}

func NewSettingsRepository(db *database.DB) settings.SettingsRepository {
	return &settingsRepository{db: db}
}

// The geofence is a singleton row keyed by a fixed id.
const geofenceRowID = "geofence"

// GetGeofence implements settings.SettingsRepository.
func (s *settingsRepository) GetGeofence(ctx context.Context) (*settings.GeofenceConfig, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT office_latitude, office_longitude, radius_meters, updated_at
		FROM company_settings
		WHERE id = $1
	`

	var cfg settings.GeofenceConfig
	err := q.QueryRow(ctx, query, geofenceRowID).Scan(
		&cfg.OfficeLatitude, &cfg.OfficeLongitude, &cfg.RadiusMeters, &cfg.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // never configured, geofencing is off
		}
		return nil, fmt.Errorf("failed to get geofence settings: %w", err)
	}

	return &cfg, nil
}

// UpsertGeofence implements settings.SettingsRepository.
func (s *settingsRepository) UpsertGeofence(ctx context.Context, cfg settings.GeofenceConfig) (settings.GeofenceConfig, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		INSERT INTO company_settings (id, office_latitude, office_longitude, radius_meters, updated_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (id) DO UPDATE
		SET office_latitude = EXCLUDED.office_latitude,
			office_longitude = EXCLUDED.office_longitude,
			radius_meters = EXCLUDED.radius_meters,
			updated_at = NOW()
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query,
		geofenceRowID, cfg.OfficeLatitude, cfg.OfficeLongitude, cfg.RadiusMeters,
	).Scan(&cfg.UpdatedAt)
	if err != nil {
		return settings.GeofenceConfig{}, fmt.Errorf("failed to upsert geofence settings: %w", err)
	}

	return cfg, nil
}

// GetPolicy implements settings.SettingsRepository.
func (s *settingsRepository) GetPolicy(ctx context.Context, key string) (settings.CompanyPolicy, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT key, title, body, updated_at
		FROM company_policies
		WHERE key = $1
	`

	var policy settings.CompanyPolicy
	err := q.QueryRow(ctx, query, key).Scan(
		&policy.Key, &policy.Title, &policy.Body, &policy.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return settings.CompanyPolicy{}, settings.ErrPolicyNotFound
		}
		return settings.CompanyPolicy{}, fmt.Errorf("failed to get policy: %w", err)
	}

	return policy, nil
}
