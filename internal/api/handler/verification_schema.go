package handler

import (
	"time"

	"github.com/nopkhun/restaurant-scheduling-sub000/internal/core/domain"
	"github.com/nopkhun/restaurant-scheduling-sub000/internal/core/ports"
)

// coordinateRequest enforces WGS84 ranges at the boundary so malformed
// coordinates never reach the distance math.
type coordinateRequest struct {
	Latitude  float64 `json:"latitude"  validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
}

type readingRequest struct {
	Coordinate     coordinateRequest `json:"coordinate"`
	AccuracyMeters float64           `json:"accuracy_meters" validate:"gte=0"`
	Timestamp      time.Time         `json:"timestamp"       validate:"required"`
	DeviceID       string            `json:"device_id"`
	UserAgent      string            `json:"user_agent"`
}

type geofenceRequest struct {
	Center       coordinateRequest `json:"center"`
	RadiusMeters float64           `json:"radius_meters" validate:"gte=0"`
}

// verifyLocationRequest drives the standalone hard gate. The geofence comes
// either inline or resolved from the branch registry via branch_id.
type verifyLocationRequest struct {
	Reading  readingRequest   `json:"reading"`
	BranchID string           `json:"branch_id"`
	Geofence *geofenceRequest `json:"geofence"`
	ClientIP string           `json:"client_ip" validate:"omitempty,ip"`
}

type verifyLocationResponse struct {
	Verified       bool    `json:"verified"`
	Reason         string  `json:"reason,omitempty"`
	Message        string  `json:"message,omitempty"`
	DistanceMeters float64 `json:"distance_meters,omitempty"`
	AccuracyMeters float64 `json:"accuracy_meters"`
	Location       string  `json:"location"`
}

// validateClockEventRequest drives the full anti-spoofing evaluation. The
// history and accepted clock-in slices are supplied by the caller, which owns
// the location log; this service never looks them up itself.
type validateClockEventRequest struct {
	EmployeeID       string              `json:"employee_id" validate:"required"`
	Reading          readingRequest      `json:"reading"`
	BranchID         string              `json:"branch_id"`
	Geofence         *geofenceRequest    `json:"geofence"`
	ClientIP         string              `json:"client_ip" validate:"omitempty,ip"`
	History          []readingRequest    `json:"location_history"`
	AcceptedClockIns []coordinateRequest `json:"accepted_clock_ins"`
	CaptureError     string              `json:"capture_error" validate:"omitempty,oneof=permission_denied position_unavailable timeout unsupported"`
}

type movementCheckRequest struct {
	Previous readingRequest `json:"previous"`
	Current  readingRequest `json:"current"`
}

type movementCheckResponse struct {
	Suspicious bool    `json:"suspicious"`
	SpeedKmh   float64 `json:"speed_kmh,omitempty"`
}

type auditRecordResponse struct {
	ID           string                    `json:"id"`
	EmployeeID   string                    `json:"employee_id"`
	BranchID     string                    `json:"branch_id,omitempty"`
	Location     string                    `json:"location"`
	Result       domain.AntiSpoofingResult `json:"result"`
	CaptureError string                    `json:"capture_error,omitempty"`
	CreatedAt    time.Time                 `json:"created_at"`
}

func toReading(r readingRequest) domain.LocationReading {
	return domain.LocationReading{
		Coordinate: domain.Coordinate{
			Latitude:  r.Coordinate.Latitude,
			Longitude: r.Coordinate.Longitude,
		},
		AccuracyMeters: r.AccuracyMeters,
		Timestamp:      r.Timestamp,
		DeviceID:       r.DeviceID,
		UserAgent:      r.UserAgent,
	}
}

func toReadings(rs []readingRequest) []domain.LocationReading {
	out := make([]domain.LocationReading, 0, len(rs))
	for _, r := range rs {
		out = append(out, toReading(r))
	}
	return out
}

func toCoordinates(cs []coordinateRequest) []domain.Coordinate {
	out := make([]domain.Coordinate, 0, len(cs))
	for _, c := range cs {
		out = append(out, domain.Coordinate{Latitude: c.Latitude, Longitude: c.Longitude})
	}
	return out
}

func toGeofence(g *geofenceRequest) domain.WorkplaceGeofence {
	return domain.WorkplaceGeofence{
		Center: domain.Coordinate{
			Latitude:  g.Center.Latitude,
			Longitude: g.Center.Longitude,
		},
		RadiusMeters: g.RadiusMeters,
	}
}

func toAuditResponse(rec *ports.AuditRecord, location string) auditRecordResponse {
	return auditRecordResponse{
		ID:           rec.ID,
		EmployeeID:   rec.EmployeeID,
		BranchID:     rec.BranchID,
		Location:     location,
		Result:       rec.Result,
		CaptureError: string(rec.CaptureError),
		CreatedAt:    rec.CreatedAt,
	}
}
