package analyzer

import (
	"github.com/nopkhun/restaurant-scheduling-sub000/internal/core/domain"
)

// AnalyzeAccuracyPattern looks for suspiciously perfect and invariant GPS
// accuracy across the last AccuracyWindow historical samples plus the current
// one. Real GPS noise is rarely this tight; a fixed high-precision value is
// typical of spoofing tools. Skips below AccuracyMinSamples of history.
func AnalyzeAccuracyPattern(history []domain.LocationReading, current domain.LocationReading) Outcome {
	if len(history) < AccuracyMinSamples {
		return NotEnoughData()
	}

	recent := tail(history, AccuracyWindow)
	samples := make([]float64, 0, len(recent)+1)
	for _, r := range recent {
		samples = append(samples, r.AccuracyMeters)
	}
	samples = append(samples, current.AccuracyMeters)

	var perfect int
	for _, a := range samples {
		if a <= PerfectAccuracyMeters {
			perfect++
		}
	}
	ratio := float64(perfect) / float64(len(samples))
	v := variance(samples)

	out := Outcome{
		Evaluated: true,
		Details: map[string]any{
			"samples":       len(samples),
			"mean_accuracy": mean(samples),
			"variance":      v,
			"perfect_ratio": ratio,
		},
	}
	if ratio > PerfectAccuracyShare && v < PerfectAccuracyMaxVariance {
		out.Flags = append(out.Flags, domain.FlagConsistentPerfectAccuracy)
		out.Risk += WeightPerfectAccuracy
	}
	return out
}
