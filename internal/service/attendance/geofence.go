package attendance

import (
	"context"
	"fmt"

	"github.com/workforcehq/workforce-backend-go/internal/domain/attendance"
	"github.com/workforcehq/workforce-backend-go/internal/pkg/cache"
	"github.com/workforcehq/workforce-backend-go/internal/pkg/utils"
)

// checkGeofence admits or denies a clock action by location. Geofencing is
// opt-in: a request without coordinates, or a company without a configured
// office, always passes. When the configuration cannot be fetched from the
// cache or the store, the action is denied rather than silently permitted.
func (a *AttendanceServiceImpl) checkGeofence(ctx context.Context, lat, lng *float64) error {
	if lat == nil || lng == nil {
		return nil
	}

	cfg, err := cache.GetOrLoad(ctx, a.cache, cache.GeofenceKey(), cache.TTLSettings, a.settingsRepo.GetGeofence)
	if err != nil {
		return fmt.Errorf("%w: %v", attendance.ErrGeofenceUnavailable, err)
	}

	if !cfg.IsConfigured() {
		return nil
	}

	distance := utils.CalculateHaversineDistance(*lat, *lng, *cfg.OfficeLatitude, *cfg.OfficeLongitude)
	if radius := cfg.Radius(); distance > radius {
		return &attendance.OutOfRangeError{
			DistanceMeters: distance,
			RadiusMeters:   radius,
		}
	}

	return nil
}
