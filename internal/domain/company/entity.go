package company

import "time"

// Company is the tenant record. The engine reads its geofencing configuration
// to gate clock-in/out; company CRUD belongs to the directory service.
type Company struct {
	ID   string
	Name string

	GeofencingEnabled    bool
	GeofenceLatitude     *float64
	GeofenceLongitude    *float64
	GeofenceRadiusMeters *float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// GeofenceConfigured reports whether a usable geofence center and radius
// exist. When geofencing is enabled but not configured the attendance path
// fails closed.
func (c Company) GeofenceConfigured() bool {
	return c.GeofenceLatitude != nil && c.GeofenceLongitude != nil &&
		c.GeofenceRadiusMeters != nil && *c.GeofenceRadiusMeters > 0
}
