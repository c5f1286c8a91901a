package company

import "errors"

var (
	ErrCompanyNotFound       = errors.New("company not found")
	ErrGeofenceNotConfigured = errors.New("geofencing is enabled but no geofence is configured")
)
