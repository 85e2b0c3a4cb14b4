// Package analyzer implements the heuristic anti-spoofing analyzers. Each
// analyzer is a pure function over a caller-supplied history slice and
// returns an Outcome that distinguishes "not enough data" from "evaluated
// and clean" — an analyzer that skipped contributes no flags and no risk.
package analyzer

import (
	"github.com/nopkhun/restaurant-scheduling-sub000/internal/core/domain"
)

// Risk weights and decision thresholds. All tunables are named here rather
// than inline so they can be recalibrated without hunting through the code.
const (
	// Movement (§ speed between consecutive readings).
	RapidSpeedKmh         = 100.0
	ImpossibleSpeedKmh    = 200.0
	WeightRapidChange     = 10
	WeightRapidChangeCap  = 30
	WeightImpossibleSpeed = 40
	DefaultMovementWindow = 5

	// Accuracy pattern.
	AccuracyMinSamples         = 3
	AccuracyWindow             = 10
	PerfectAccuracyMeters      = 5.0
	PerfectAccuracyShare       = 0.8
	PerfectAccuracyMaxVariance = 2.0
	WeightPerfectAccuracy      = 20

	// Location clustering.
	ClusterMinPoints      = 5
	ClusterRadiusMeters   = 10.0
	ClusterDominanceRatio = 0.9
	ClusterMinMembers     = 10
	WeightClustering      = 25

	// Time pattern.
	TimePatternMinEntries    = 5
	TimePatternMinIntervals  = 5
	TimePatternVarianceRatio = 0.1
	WeightTimePattern        = 15

	// Device consistency.
	DeviceMinEntries       = 3
	MaxDistinctDevices     = 3
	MaxDistinctUserAgents  = 2
	WeightDeviceVariety    = 20
	WeightUserAgentVariety = 10
)

// Outcome is the result of one analyzer run.
type Outcome struct {
	// Evaluated is false when the analyzer had too little history to judge.
	// A skipped analyzer carries no flags and zero risk.
	Evaluated bool
	Risk      int
	Flags     []domain.RiskFlag
	// Details is the analyzer's diagnostic payload, kept for audit.
	Details map[string]any
}

// NotEnoughData is the outcome of an analyzer that skipped.
func NotEnoughData() Outcome {
	return Outcome{Evaluated: false}
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

func variance(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	m := mean(xs)
	var sum float64
	for _, x := range xs {
		d := x - m
		sum += d * d
	}
	return sum / float64(len(xs))
}

// tail returns the last n elements of readings (all of them when fewer).
func tail(readings []domain.LocationReading, n int) []domain.LocationReading {
	if len(readings) <= n {
		return readings
	}
	return readings[len(readings)-n:]
}
