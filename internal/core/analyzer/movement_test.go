package analyzer

import (
	"testing"
	"time"

	"github.com/nopkhun/restaurant-scheduling-sub000/internal/core/domain"
)

func reading(lat, lng float64, ts time.Time) domain.LocationReading {
	return domain.LocationReading{
		Coordinate: domain.Coordinate{Latitude: lat, Longitude: lng},
		Timestamp:  ts,
	}
}

func TestDetectSuspiciousMovement_WalkingPace(t *testing.T) {
	t0 := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	// ~100 m apart, 60 s elapsed: about 6 km/h.
	prev := reading(13.7563, 100.5018, t0)
	curr := reading(13.7572, 100.5018, t0.Add(time.Minute))

	if DetectSuspiciousMovement(prev, curr) {
		t.Error("walking-pace transition flagged as suspicious")
	}
}

func TestDetectSuspiciousMovement_TeleportJump(t *testing.T) {
	t0 := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	// ~27 km apart, 60 s elapsed: about 1620 km/h.
	prev := reading(13.7563, 100.5018, t0)
	curr := reading(13.9993, 100.5018, t0.Add(time.Minute))

	if !DetectSuspiciousMovement(prev, curr) {
		t.Error("27 km in one minute not flagged as suspicious")
	}
}

func TestDetectSuspiciousMovement_IdenticalTimestamps(t *testing.T) {
	t0 := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	prev := reading(13.7563, 100.5018, t0)
	curr := reading(13.7663, 100.5018, t0)

	// Zero elapsed time means infinite speed, never a division error.
	if !DetectSuspiciousMovement(prev, curr) {
		t.Error("zero-elapsed transition not flagged as suspicious")
	}
}

func TestAnalyzeMovement_NoHistory(t *testing.T) {
	t0 := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	out := AnalyzeMovement(nil, reading(13.7563, 100.5018, t0), 0)
	if out.Evaluated {
		t.Error("expected not-enough-data without history")
	}
	if out.Risk != 0 || len(out.Flags) != 0 {
		t.Errorf("skipped analyzer must contribute nothing, got risk=%d flags=%v", out.Risk, out.Flags)
	}
}

func TestAnalyzeMovement_StationaryHistory(t *testing.T) {
	t0 := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	var history []domain.LocationReading
	for i := 0; i < 5; i++ {
		history = append(history, reading(13.7563, 100.5018, t0.Add(time.Duration(i)*time.Hour)))
	}
	curr := reading(13.7564, 100.5018, t0.Add(5*time.Hour))

	out := AnalyzeMovement(history, curr, 0)
	if !out.Evaluated {
		t.Fatal("expected evaluation with history present")
	}
	if out.Risk != 0 || len(out.Flags) != 0 {
		t.Errorf("stationary history produced risk=%d flags=%v", out.Risk, out.Flags)
	}
}

func TestAnalyzeMovement_RapidChangesCapped(t *testing.T) {
	t0 := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	// Alternate between two points ~27 km apart every minute: every pair is
	// both rapid (>100 km/h) and impossible (>200 km/h).
	var history []domain.LocationReading
	for i := 0; i < 5; i++ {
		lat := 13.7563
		if i%2 == 1 {
			lat = 13.9993
		}
		history = append(history, reading(lat, 100.5018, t0.Add(time.Duration(i)*time.Minute)))
	}
	curr := reading(13.7563, 100.5018, t0.Add(5*time.Minute))

	out := AnalyzeMovement(history, curr, 0)
	if !out.Evaluated {
		t.Fatal("expected evaluation")
	}

	hasRapid, hasImpossible := false, false
	for _, f := range out.Flags {
		if f == domain.FlagSuspiciousMovement {
			hasRapid = true
		}
		if f == domain.FlagImpossibleSpeed {
			hasImpossible = true
		}
	}
	if !hasRapid || !hasImpossible {
		t.Errorf("expected both movement flags, got %v", out.Flags)
	}

	// 5 rapid pairs at 10 each cap at 30, plus the flat impossible penalty.
	if out.Risk != WeightRapidChangeCap+WeightImpossibleSpeed {
		t.Errorf("risk = %d, want %d", out.Risk, WeightRapidChangeCap+WeightImpossibleSpeed)
	}
}

func TestAnalyzeMovement_DoesNotMutateHistory(t *testing.T) {
	t0 := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	history := make([]domain.LocationReading, 0, 8)
	for i := 0; i < 3; i++ {
		history = append(history, reading(13.7563, 100.5018, t0.Add(time.Duration(i)*time.Hour)))
	}
	snapshot := make([]domain.LocationReading, len(history))
	copy(snapshot, history)

	AnalyzeMovement(history, reading(13.7563, 100.5018, t0.Add(4*time.Hour)), 0)

	for i := range history {
		if history[i] != snapshot[i] {
			t.Fatalf("caller history mutated at index %d", i)
		}
	}
}
