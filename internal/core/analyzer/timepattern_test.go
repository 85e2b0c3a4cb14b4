package analyzer

import (
	"testing"
	"time"

	"github.com/nopkhun/restaurant-scheduling-sub000/internal/core/domain"
)

func historyAt(t0 time.Time, offsets ...time.Duration) []domain.LocationReading {
	out := make([]domain.LocationReading, 0, len(offsets))
	for _, off := range offsets {
		out = append(out, domain.LocationReading{
			Coordinate: domain.Coordinate{Latitude: 13.7563, Longitude: 100.5018},
			Timestamp:  t0.Add(off),
		})
	}
	return out
}

func TestAnalyzeTimePattern_TooFewEntries(t *testing.T) {
	t0 := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	history := historyAt(t0, 0, time.Hour, 2*time.Hour, 3*time.Hour)

	if out := AnalyzeTimePattern(history); out.Evaluated {
		t.Error("expected not-enough-data below 5 entries")
	}
}

func TestAnalyzeTimePattern_MechanicalIntervals(t *testing.T) {
	t0 := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	// Eight submissions exactly one hour apart: zero variance over 7
	// intervals, the signature of a scripted client.
	history := historyAt(t0,
		0, time.Hour, 2*time.Hour, 3*time.Hour,
		4*time.Hour, 5*time.Hour, 6*time.Hour, 7*time.Hour)

	out := AnalyzeTimePattern(history)
	if !out.Evaluated {
		t.Fatal("expected evaluation")
	}
	if len(out.Flags) != 1 || out.Flags[0] != domain.FlagTimePatternAnomaly {
		t.Errorf("flags = %v, want [TIME_PATTERN_ANOMALY]", out.Flags)
	}
	if out.Risk != WeightTimePattern {
		t.Errorf("risk = %d, want %d", out.Risk, WeightTimePattern)
	}
}

func TestAnalyzeTimePattern_HumanJitter(t *testing.T) {
	t0 := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	// Human clock-ins drift by many minutes day to day.
	history := historyAt(t0,
		0, 61*time.Minute, 140*time.Minute, 185*time.Minute,
		270*time.Minute, 310*time.Minute, 400*time.Minute, 475*time.Minute)

	out := AnalyzeTimePattern(history)
	if !out.Evaluated {
		t.Fatal("expected evaluation")
	}
	if len(out.Flags) != 0 || out.Risk != 0 {
		t.Errorf("irregular intervals flagged: flags=%v risk=%d", out.Flags, out.Risk)
	}
}

func TestAnalyzeTimePattern_RegularButShort(t *testing.T) {
	t0 := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	// Five entries give only four intervals — below the minimum interval
	// count, evaluated but never flagged however regular they are.
	history := historyAt(t0, 0, time.Hour, 2*time.Hour, 3*time.Hour, 4*time.Hour)

	out := AnalyzeTimePattern(history)
	if !out.Evaluated {
		t.Fatal("expected evaluation at exactly 5 entries")
	}
	if len(out.Flags) != 0 {
		t.Errorf("four perfectly regular intervals flagged: %v", out.Flags)
	}
}
