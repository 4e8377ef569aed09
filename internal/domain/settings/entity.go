package settings

import "time"

// DefaultGeofenceRadiusMeters applies when the configured radius is absent
// or non-positive.
const DefaultGeofenceRadiusMeters = 100

// GeofenceConfig is the company-wide office geofence. A nil office
// coordinate means geofencing is not configured and every location is
// admitted. Externally managed; the attendance core only reads it.
type GeofenceConfig struct {
	OfficeLatitude  *float64 `json:"office_latitude"`
	OfficeLongitude *float64 `json:"office_longitude"`
	RadiusMeters    float64  `json:"radius_meters"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// IsConfigured reports whether an office coordinate is present.
func (g *GeofenceConfig) IsConfigured() bool {
	return g != nil && g.OfficeLatitude != nil && g.OfficeLongitude != nil
}

// Radius returns the configured radius or the default.
func (g *GeofenceConfig) Radius() float64 {
	if g == nil || g.RadiusMeters <= 0 {
		return DefaultGeofenceRadiusMeters
	}
	return g.RadiusMeters
}

// CompanyPolicy is a keyed policy document (e.g. "remote-work").
type CompanyPolicy struct {
	Key       string    `json:"key"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	UpdatedAt time.Time `json:"updated_at"`
}
