package domain

import (
	"errors"
	"time"
)

var ErrInvalidCoordinate = errors.New("coordinate out of range")
var ErrNegativeAccuracy = errors.New("accuracy must not be negative")
var ErrBranchNotFound = errors.New("branch not found")

// Coordinate is a WGS84 geographic point. Immutable value type.
type Coordinate struct {
	Latitude  float64 `json:"latitude" bson:"latitude"`
	Longitude float64 `json:"longitude" bson:"longitude"`
}

// Validate reports whether the coordinate lies within valid WGS84 ranges.
// Out-of-range coordinates must be rejected at the boundary before any
// distance math runs on them.
func (c Coordinate) Validate() error {
	if c.Latitude < -90 || c.Latitude > 90 || c.Longitude < -180 || c.Longitude > 180 {
		return ErrInvalidCoordinate
	}
	return nil
}

// LocationReading is a single GPS fix reported by an untrusted client device
// at clock-in/out time. Created once per clock attempt, never mutated.
type LocationReading struct {
	Coordinate Coordinate `json:"coordinate" bson:"coordinate"`
	// AccuracyMeters is the device-reported uncertainty radius; lower is more precise.
	AccuracyMeters float64   `json:"accuracy_meters" bson:"accuracy_meters"`
	Timestamp      time.Time `json:"timestamp" bson:"timestamp"`
	DeviceID       string    `json:"device_id,omitempty" bson:"device_id,omitempty"`
	UserAgent      string    `json:"user_agent,omitempty" bson:"user_agent,omitempty"`
}

// Validate checks the reading's coordinate ranges and accuracy sign.
func (r LocationReading) Validate() error {
	if err := r.Coordinate.Validate(); err != nil {
		return err
	}
	if r.AccuracyMeters < 0 {
		return ErrNegativeAccuracy
	}
	return nil
}

// WorkplaceGeofence is a workplace's reference point plus the radius within
// which a clock event counts as physically present. Owned by the branch
// collaborator; this engine only reads it.
type WorkplaceGeofence struct {
	Center       Coordinate `json:"center" bson:"center"`
	RadiusMeters float64    `json:"radius_meters" bson:"radius_meters"`
}

// Branch is a workplace entry in the branch registry.
type Branch struct {
	ID       string            `json:"id" bson:"_id"`
	Name     string            `json:"name" bson:"name"`
	Geofence WorkplaceGeofence `json:"geofence" bson:"geofence"`
}

// CaptureError enumerates device-side geolocation capture failures. The codes
// are owned by the client capture collaborator; the engine only maps them to
// stable user-facing messages on the audit path.
type CaptureError string

const (
	CapturePermissionDenied    CaptureError = "permission_denied"
	CapturePositionUnavailable CaptureError = "position_unavailable"
	CaptureTimeout             CaptureError = "timeout"
	CaptureUnsupported         CaptureError = "unsupported"
)

// Message returns the stable user-facing message for a capture error.
func (e CaptureError) Message() string {
	switch e {
	case CapturePermissionDenied:
		return "location permission denied"
	case CapturePositionUnavailable:
		return "position unavailable"
	case CaptureTimeout:
		return "location request timed out"
	case CaptureUnsupported:
		return "geolocation not supported on this device"
	default:
		return "unknown capture error"
	}
}
