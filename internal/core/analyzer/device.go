package analyzer

import (
	"github.com/nopkhun/restaurant-scheduling-sub000/internal/core/domain"
)

// AnalyzeDeviceConsistency counts the distinct devices and user agents seen
// across recent history. More than MaxDistinctDevices devices raises the
// device-inconsistency flag; more than MaxDistinctUserAgents user agents adds
// a smaller, separately reported contribution. Skips unless at least
// DeviceMinEntries history entries carry device metadata.
func AnalyzeDeviceConsistency(history []domain.LocationReading) Outcome {
	withMeta := 0
	devices := make(map[string]struct{})
	agents := make(map[string]struct{})
	for _, r := range history {
		if r.DeviceID == "" && r.UserAgent == "" {
			continue
		}
		withMeta++
		if r.DeviceID != "" {
			devices[r.DeviceID] = struct{}{}
		}
		if r.UserAgent != "" {
			agents[r.UserAgent] = struct{}{}
		}
	}
	if withMeta < DeviceMinEntries {
		return NotEnoughData()
	}

	out := Outcome{
		Evaluated: true,
		Details: map[string]any{
			"entries_with_metadata": withMeta,
			"distinct_devices":      len(devices),
			"distinct_user_agents":  len(agents),
		},
	}
	if len(devices) > MaxDistinctDevices {
		out.Flags = append(out.Flags, domain.FlagDeviceInconsistency)
		out.Risk += WeightDeviceVariety
	}
	if len(agents) > MaxDistinctUserAgents {
		out.Flags = append(out.Flags, domain.FlagUserAgentVariety)
		out.Risk += WeightUserAgentVariety
	}
	return out
}
