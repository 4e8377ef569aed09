package settings

import (
	"github.com/workforcehq/workforce-backend-go/internal/pkg/validator"
)

type UpdateGeofenceRequest struct {
	OfficeLatitude  float64 `json:"office_latitude"`
	OfficeLongitude float64 `json:"office_longitude"`
	RadiusMeters    float64 `json:"radius_meters"`
}

func (r *UpdateGeofenceRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidLatitude(r.OfficeLatitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "office_latitude",
			Message: "latitude must be between -90 and 90",
		})
	}
	if !validator.IsValidLongitude(r.OfficeLongitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "office_longitude",
			Message: "longitude must be between -180 and 180",
		})
	}
	if r.RadiusMeters < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "radius_meters",
			Message: "radius_meters must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
