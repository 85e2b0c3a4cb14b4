package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/nopkhun/restaurant-scheduling-sub000/internal/core/domain"
	"github.com/nopkhun/restaurant-scheduling-sub000/internal/core/geo"
	"github.com/nopkhun/restaurant-scheduling-sub000/internal/core/ports"
)

// Default gate tunables. Empirically chosen; override through VerifierConfig.
const (
	DefaultAccuracyThresholdM   = 100.0
	DefaultGeofenceRadiusM      = 50.0
	DefaultIPMismatchThresholdM = 10000.0
)

// VerifierConfig carries the gate thresholds. Zero values fall back to the
// package defaults.
type VerifierConfig struct {
	AccuracyThresholdM   float64
	DefaultRadiusM       float64
	IPMismatchThresholdM float64
}

func (c VerifierConfig) withDefaults() VerifierConfig {
	if c.AccuracyThresholdM <= 0 {
		c.AccuracyThresholdM = DefaultAccuracyThresholdM
	}
	if c.DefaultRadiusM <= 0 {
		c.DefaultRadiusM = DefaultGeofenceRadiusM
	}
	if c.IPMismatchThresholdM <= 0 {
		c.IPMismatchThresholdM = DefaultIPMismatchThresholdM
	}
	return c
}

// LocationVerifier is the mandatory pass/fail gate in front of every clock
// event. Stateless: safe for concurrent use across employees.
type LocationVerifier struct {
	cfg     VerifierConfig
	locator ports.IPLocator
	log     zerolog.Logger
}

// NewLocationVerifier builds a verifier. locator may be nil to disable the
// IP cross-check entirely (the latency escape hatch for strict deployments).
func NewLocationVerifier(cfg VerifierConfig, locator ports.IPLocator, log zerolog.Logger) *LocationVerifier {
	return &LocationVerifier{cfg: cfg.withDefaults(), locator: locator, log: log}
}

// VerifyLocation runs the gate checks in order, short-circuiting on the first
// failure. The returned error is reserved for malformed input; every
// enumerated gate failure comes back as Verified=false with its reason.
func (v *LocationVerifier) VerifyLocation(ctx context.Context, reading domain.LocationReading, fence domain.WorkplaceGeofence, clientIP string) (domain.VerificationResult, error) {
	// 1. Fail fast on malformed input before any distance math.
	if err := reading.Validate(); err != nil {
		return domain.VerificationResult{}, fmt.Errorf("verify location: %w", err)
	}
	if err := fence.Center.Validate(); err != nil {
		return domain.VerificationResult{}, fmt.Errorf("verify location: geofence: %w", err)
	}

	result := domain.VerificationResult{AccuracyMeters: reading.AccuracyMeters}

	// 2. Accuracy threshold.
	if reading.AccuracyMeters > v.cfg.AccuracyThresholdM {
		result.Reason = domain.ReasonAccuracyTooLow
		return result, nil
	}

	// 3. Geofence radius.
	radius := fence.RadiusMeters
	if radius <= 0 {
		radius = v.cfg.DefaultRadiusM
	}
	result.DistanceMeters = geo.Distance(reading.Coordinate, fence.Center)
	if result.DistanceMeters > radius {
		result.Reason = domain.ReasonOutsideRadius
		return result, nil
	}

	// 4. Best-effort IP cross-check: one attempt, degrade to skip on any
	// lookup failure. Never blocks the clock path on provider trouble.
	if v.locator != nil && clientIP != "" {
		ipCoord, err := v.locator.Locate(ctx, clientIP)
		if err != nil {
			v.log.Debug().Err(err).Str("ip", clientIP).Msg("ip lookup unavailable, cross-check skipped")
		} else if geo.Distance(reading.Coordinate, ipCoord) > v.cfg.IPMismatchThresholdM {
			result.Reason = domain.ReasonIPMismatch
			return result, nil
		}
	}

	result.Verified = true
	return result, nil
}
