package ports

import (
	"context"

	"github.com/nopkhun/restaurant-scheduling-sub000/internal/core/domain"
)

// ValidationContext is the caller-supplied context for one anti-spoofing
// evaluation. The engine never retains any of it across calls: the caller
// (the time-tracking subsystem) owns the append-only location log and passes
// bounded slices of it per call.
type ValidationContext struct {
	EmployeeID string
	Geofence   domain.WorkplaceGeofence
	// History is the employee's recent location readings, ordered by time.
	History []domain.LocationReading
	// AcceptedClockIns are the coordinates of previously accepted clock-in
	// events, used by the clustering analyzer.
	AcceptedClockIns []domain.Coordinate
	// ClientIP enables the best-effort IP cross-check when non-empty.
	ClientIP string
}

// VerificationService is the mandatory pass/fail location gate.
type VerificationService interface {
	// VerifyLocation runs the hard gate: accuracy threshold, geofence radius,
	// optional IP cross-check. The returned error is reserved for malformed
	// input; a failed check comes back as Verified=false with a reason.
	VerifyLocation(ctx context.Context, reading domain.LocationReading, fence domain.WorkplaceGeofence, clientIP string) (domain.VerificationResult, error)
}

// AntiSpoofingService aggregates the hard gate and the heuristic analyzers
// into a bounded composite risk judgment.
type AntiSpoofingService interface {
	Validate(ctx context.Context, reading domain.LocationReading, vctx ValidationContext) (domain.AntiSpoofingResult, error)
}

// IPLocator resolves a client IP to a coarse coordinate. Implementations are
// best-effort: any error (timeout, network failure, malformed response) is
// treated by callers as "check skipped", never as a blocking failure.
type IPLocator interface {
	Locate(ctx context.Context, ip string) (domain.Coordinate, error)
}
