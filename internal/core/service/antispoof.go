package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/nopkhun/restaurant-scheduling-sub000/internal/core/analyzer"
	"github.com/nopkhun/restaurant-scheduling-sub000/internal/core/domain"
	"github.com/nopkhun/restaurant-scheduling-sub000/internal/core/ports"
)

// Aggregation tunables. Gate failures accumulate into the score like any
// other signal; a separate hard-gate path may still block the action.
const (
	WeightGateAccuracy   = 15
	WeightGateRadius     = 30
	WeightGateIPMismatch = 25

	// DefaultRiskThreshold is the is_valid cut-off: score < threshold is
	// considered valid. Overridable through AggregatorConfig.
	DefaultRiskThreshold = 50

	// RiskScoreMax caps the composite score. Several simultaneously strong
	// signals saturate at the same maximum as a single strong one; kept
	// as-is pending product review of the aggregation formula.
	RiskScoreMax = 100
)

// AggregatorConfig carries the aggregator tunables. Zero values fall back to
// the package defaults.
type AggregatorConfig struct {
	RiskThreshold  int
	MovementWindow int
}

// AntiSpoofingService orchestrates the hard gate and the heuristic analyzers
// into one bounded risk judgment. Pure with respect to its inputs: identical
// reading+context always produce the identical result, no state is shared
// across invocations.
type AntiSpoofingService struct {
	verifier *LocationVerifier
	cfg      AggregatorConfig
	log      zerolog.Logger
}

// NewAntiSpoofingService builds the aggregator on top of a verifier.
func NewAntiSpoofingService(verifier *LocationVerifier, cfg AggregatorConfig, log zerolog.Logger) *AntiSpoofingService {
	if cfg.RiskThreshold <= 0 {
		cfg.RiskThreshold = DefaultRiskThreshold
	}
	if cfg.MovementWindow <= 0 {
		cfg.MovementWindow = analyzer.DefaultMovementWindow
	}
	return &AntiSpoofingService{verifier: verifier, cfg: cfg, log: log}
}

// Validate runs the full pipeline and returns the composite verdict. The
// returned error is reserved for malformed input; heuristic risk never
// surfaces as an error.
func (s *AntiSpoofingService) Validate(ctx context.Context, reading domain.LocationReading, vctx ports.ValidationContext) (domain.AntiSpoofingResult, error) {
	score := 0
	var flags []domain.RiskFlag
	details := make(map[string]any)

	// 1. Mandatory gate. A failure becomes a weighted contribution here;
	// the standalone gate path decides separately whether to block.
	vres, err := s.verifier.VerifyLocation(ctx, reading, vctx.Geofence, vctx.ClientIP)
	if err != nil {
		return domain.AntiSpoofingResult{}, fmt.Errorf("anti-spoofing: %w", err)
	}
	details["verification"] = map[string]any{
		"verified":        vres.Verified,
		"reason":          string(vres.Reason),
		"distance_meters": vres.DistanceMeters,
		"accuracy_meters": vres.AccuracyMeters,
	}
	if !vres.Verified {
		switch vres.Reason {
		case domain.ReasonAccuracyTooLow:
			score += WeightGateAccuracy
			flags = append(flags, domain.FlagAccuracyTooLow)
		case domain.ReasonOutsideRadius:
			score += WeightGateRadius
			flags = append(flags, domain.FlagOutsideRadius)
		case domain.ReasonIPMismatch:
			score += WeightGateIPMismatch
			flags = append(flags, domain.FlagIPMismatch)
		}
	}

	// 2. Heuristic analyzers. Independent and side-effect-free; each skips
	// itself when the history slice is too short to judge.
	outcomes := []struct {
		name string
		out  analyzer.Outcome
	}{
		{"movement", analyzer.AnalyzeMovement(vctx.History, reading, s.cfg.MovementWindow)},
		{"accuracy_pattern", analyzer.AnalyzeAccuracyPattern(vctx.History, reading)},
		{"clustering", analyzer.AnalyzeLocationClustering(vctx.AcceptedClockIns, reading.Coordinate)},
		{"time_pattern", analyzer.AnalyzeTimePattern(vctx.History)},
		{"device", analyzer.AnalyzeDeviceConsistency(vctx.History)},
	}
	for _, o := range outcomes {
		if !o.out.Evaluated {
			continue
		}
		score += o.out.Risk
		flags = append(flags, o.out.Flags...)
		details[o.name] = o.out.Details
	}

	// 3. Clamp and decide.
	if score > RiskScoreMax {
		score = RiskScoreMax
	}
	if score < 0 {
		score = 0
	}
	result := domain.AntiSpoofingResult{
		IsValid:   score < s.cfg.RiskThreshold,
		RiskScore: score,
		Flags:     flags,
		Details:   details,
	}

	s.log.Info().
		Str("employee_id", vctx.EmployeeID).
		Int("risk_score", score).
		Bool("is_valid", result.IsValid).
		Int("flags", len(flags)).
		Msg("clock event evaluated")

	return result, nil
}
