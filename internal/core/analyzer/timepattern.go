package analyzer

import (
	"github.com/nopkhun/restaurant-scheduling-sub000/internal/core/domain"
)

// AnalyzeTimePattern examines the gaps between consecutive history entries.
// Humans clock in at ragged intervals; mechanically regular gaps (variance
// below TimePatternVarianceRatio of the mean, across more than
// TimePatternMinIntervals intervals) suggest scripted submissions. Skips
// below TimePatternMinEntries history entries.
func AnalyzeTimePattern(history []domain.LocationReading) Outcome {
	if len(history) < TimePatternMinEntries {
		return NotEnoughData()
	}

	deltas := make([]float64, 0, len(history)-1)
	for i := 1; i < len(history); i++ {
		deltas = append(deltas, history[i].Timestamp.Sub(history[i-1].Timestamp).Seconds())
	}

	m := mean(deltas)
	v := variance(deltas)

	out := Outcome{
		Evaluated: true,
		Details: map[string]any{
			"intervals":         len(deltas),
			"mean_interval_sec": m,
			"interval_variance": v,
		},
	}
	if len(deltas) > TimePatternMinIntervals && m > 0 && v < TimePatternVarianceRatio*m {
		out.Flags = append(out.Flags, domain.FlagTimePatternAnomaly)
		out.Risk += WeightTimePattern
	}
	return out
}
