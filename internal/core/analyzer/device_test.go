package analyzer

import (
	"testing"
	"time"

	"github.com/nopkhun/restaurant-scheduling-sub000/internal/core/domain"
)

func deviceReading(deviceID, userAgent string, ts time.Time) domain.LocationReading {
	return domain.LocationReading{
		Coordinate: domain.Coordinate{Latitude: 13.7563, Longitude: 100.5018},
		Timestamp:  ts,
		DeviceID:   deviceID,
		UserAgent:  userAgent,
	}
}

func TestAnalyzeDeviceConsistency_NoMetadata(t *testing.T) {
	t0 := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	history := []domain.LocationReading{
		deviceReading("", "", t0),
		deviceReading("", "", t0.Add(time.Hour)),
		deviceReading("", "", t0.Add(2*time.Hour)),
		deviceReading("", "", t0.Add(3*time.Hour)),
	}
	if out := AnalyzeDeviceConsistency(history); out.Evaluated {
		t.Error("expected not-enough-data when no entry carries metadata")
	}
}

func TestAnalyzeDeviceConsistency_SingleDevice(t *testing.T) {
	t0 := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	var history []domain.LocationReading
	for i := 0; i < 6; i++ {
		history = append(history, deviceReading("phone-1", "Mozilla/5.0", t0.Add(time.Duration(i)*time.Hour)))
	}
	out := AnalyzeDeviceConsistency(history)
	if !out.Evaluated {
		t.Fatal("expected evaluation")
	}
	if len(out.Flags) != 0 || out.Risk != 0 {
		t.Errorf("single device flagged: flags=%v risk=%d", out.Flags, out.Risk)
	}
}

func TestAnalyzeDeviceConsistency_TooManyDevices(t *testing.T) {
	t0 := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	history := []domain.LocationReading{
		deviceReading("phone-1", "Mozilla/5.0", t0),
		deviceReading("phone-2", "Mozilla/5.0", t0.Add(time.Hour)),
		deviceReading("phone-3", "Mozilla/5.0", t0.Add(2*time.Hour)),
		deviceReading("phone-4", "Mozilla/5.0", t0.Add(3*time.Hour)),
	}
	out := AnalyzeDeviceConsistency(history)
	if !out.Evaluated {
		t.Fatal("expected evaluation")
	}
	if len(out.Flags) != 1 || out.Flags[0] != domain.FlagDeviceInconsistency {
		t.Errorf("flags = %v, want [DEVICE_INCONSISTENCY]", out.Flags)
	}
	if out.Risk != WeightDeviceVariety {
		t.Errorf("risk = %d, want %d", out.Risk, WeightDeviceVariety)
	}
}

func TestAnalyzeDeviceConsistency_UserAgentChurn(t *testing.T) {
	t0 := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	history := []domain.LocationReading{
		deviceReading("phone-1", "agent-a", t0),
		deviceReading("phone-1", "agent-b", t0.Add(time.Hour)),
		deviceReading("phone-1", "agent-c", t0.Add(2*time.Hour)),
	}
	out := AnalyzeDeviceConsistency(history)
	if !out.Evaluated {
		t.Fatal("expected evaluation")
	}
	if len(out.Flags) != 1 || out.Flags[0] != domain.FlagUserAgentVariety {
		t.Errorf("flags = %v, want [USER_AGENT_VARIETY]", out.Flags)
	}
	if out.Risk != WeightUserAgentVariety {
		t.Errorf("risk = %d, want %d", out.Risk, WeightUserAgentVariety)
	}
	if out.Details["distinct_user_agents"] != 3 {
		t.Errorf("details missing user agent count: %v", out.Details)
	}
}
