package domain

// FailReason enumerates the hard verification failures. A hard failure blocks
// the clock action outright, unlike a heuristic flag which only raises risk.
type FailReason string

const (
	ReasonAccuracyTooLow FailReason = "ACCURACY_TOO_LOW"
	ReasonOutsideRadius  FailReason = "OUTSIDE_RADIUS"
	ReasonIPMismatch     FailReason = "IP_MISMATCH"
)

// Message returns the user-facing text surfaced verbatim by the API layer.
func (r FailReason) Message() string {
	switch r {
	case ReasonAccuracyTooLow:
		return "GPS accuracy too low"
	case ReasonOutsideRadius:
		return "outside allowed radius"
	case ReasonIPMismatch:
		return "IP location does not match GPS location"
	default:
		return "verification failed"
	}
}

// VerificationResult is the outcome of the mandatory location gate.
type VerificationResult struct {
	Verified bool `json:"verified"`
	// Reason is set only when Verified is false.
	Reason FailReason `json:"reason,omitempty"`
	// DistanceMeters is the distance to the geofence center, when computed.
	DistanceMeters float64 `json:"distance_meters,omitempty"`
	AccuracyMeters float64 `json:"accuracy_meters"`
}

// RiskFlag is a closed enumeration of the suspicion signals the engine can
// raise. Hard gate reasons double as risk flags inside the aggregator.
type RiskFlag string

const (
	FlagAccuracyTooLow            RiskFlag = "ACCURACY_TOO_LOW"
	FlagOutsideRadius             RiskFlag = "OUTSIDE_RADIUS"
	FlagIPMismatch                RiskFlag = "IP_MISMATCH"
	FlagSuspiciousMovement        RiskFlag = "SUSPICIOUS_MOVEMENT"
	FlagImpossibleSpeed           RiskFlag = "IMPOSSIBLE_SPEED"
	FlagConsistentPerfectAccuracy RiskFlag = "CONSISTENT_PERFECT_ACCURACY"
	FlagLocationClustering        RiskFlag = "LOCATION_CLUSTERING"
	FlagTimePatternAnomaly        RiskFlag = "TIME_PATTERN_ANOMALY"
	FlagDeviceInconsistency       RiskFlag = "DEVICE_INCONSISTENCY"
	FlagUserAgentVariety          RiskFlag = "USER_AGENT_VARIETY"
)

// AntiSpoofingResult is the composite verdict returned to the time-tracking
// subsystem. Heuristic risk is advisory: policy outside this engine decides
// whether a high score blocks the action or only flags it for review.
type AntiSpoofingResult struct {
	IsValid bool `json:"is_valid"`
	// RiskScore is clamped to [0,100]; not a certainty measure.
	RiskScore int        `json:"risk_score"`
	Flags     []RiskFlag `json:"flags"`
	// Details carries per-analyzer diagnostic payloads, preserved for
	// audit and manual review.
	Details map[string]any `json:"details"`
}

// HasFlag reports whether the result raised the given flag.
func (r AntiSpoofingResult) HasFlag(f RiskFlag) bool {
	for _, got := range r.Flags {
		if got == f {
			return true
		}
	}
	return false
}
