package attendance

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	domain "github.com/workforcehq/workforce-backend-go/internal/domain/attendance"
	"github.com/workforcehq/workforce-backend-go/internal/domain/settings"
)

const (
	officeLat = 19.0760
	officeLng = 72.8777
)

func geofenceFixture(t *testing.T, cfg *settings.GeofenceConfig, repoErr error) *AttendanceServiceImpl {
	t.Helper()
	fx := newServiceFixture(t)
	fx.settings.geofence = cfg
	fx.settings.err = repoErr
	fx.setNow(time.Date(2025, 6, 16, 9, 0, 0, 0, time.UTC))
	return fx.svc
}

func TestCheckGeofence_AtOfficePermitted(t *testing.T) {
	svc := geofenceFixture(t, &settings.GeofenceConfig{
		OfficeLatitude:  ptr(officeLat),
		OfficeLongitude: ptr(officeLng),
	}, nil)

	err := svc.checkGeofence(context.Background(), ptr(officeLat), ptr(officeLng))
	assert.NoError(t, err)
}

func TestCheckGeofence_OutsideRadiusDenied(t *testing.T) {
	svc := geofenceFixture(t, &settings.GeofenceConfig{
		OfficeLatitude:  ptr(officeLat),
		OfficeLongitude: ptr(officeLng),
	}, nil)

	// Roughly 150m due north of the office, past the 100m default radius.
	err := svc.checkGeofence(context.Background(), ptr(officeLat+0.0013478), ptr(officeLng))
	require.Error(t, err)

	var oor *domain.OutOfRangeError
	require.ErrorAs(t, err, &oor)
	assert.InDelta(t, 150, oor.DistanceMeters, 1)
	assert.Equal(t, float64(settings.DefaultGeofenceRadiusMeters), oor.RadiusMeters)
	assert.Contains(t, err.Error(), "150m")
}

func TestCheckGeofence_CustomRadiusHonored(t *testing.T) {
	svc := geofenceFixture(t, &settings.GeofenceConfig{
		OfficeLatitude:  ptr(officeLat),
		OfficeLongitude: ptr(officeLng),
		RadiusMeters:    200,
	}, nil)

	err := svc.checkGeofence(context.Background(), ptr(officeLat+0.0013478), ptr(officeLng))
	assert.NoError(t, err)
}

func TestCheckGeofence_NoConfigPermits(t *testing.T) {
	svc := geofenceFixture(t, nil, nil)

	err := svc.checkGeofence(context.Background(), ptr(officeLat), ptr(officeLng))
	assert.NoError(t, err)
}

func TestCheckGeofence_PartialConfigPermits(t *testing.T) {
	svc := geofenceFixture(t, &settings.GeofenceConfig{
		OfficeLatitude: ptr(officeLat),
	}, nil)

	err := svc.checkGeofence(context.Background(), ptr(officeLat), ptr(officeLng))
	assert.NoError(t, err)
}

func TestCheckGeofence_MissingLocationSkipsCheck(t *testing.T) {
	svc := geofenceFixture(t, &settings.GeofenceConfig{
		OfficeLatitude:  ptr(officeLat),
		OfficeLongitude: ptr(officeLng),
	}, nil)

	assert.NoError(t, svc.checkGeofence(context.Background(), nil, nil))
}

func TestCheckGeofence_ConfigFetchFailureFailsClosed(t *testing.T) {
	svc := geofenceFixture(t, nil, errors.New("connection refused"))

	err := svc.checkGeofence(context.Background(), ptr(officeLat), ptr(officeLng))
	assert.ErrorIs(t, err, domain.ErrGeofenceUnavailable)
}
