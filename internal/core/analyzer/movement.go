package analyzer

import (
	"math"

	"github.com/nopkhun/restaurant-scheduling-sub000/internal/core/domain"
	"github.com/nopkhun/restaurant-scheduling-sub000/internal/core/geo"
)

// SpeedBetween returns the implied travel speed between two readings in km/h.
// A non-positive elapsed time is treated as infinite speed — two readings at
// the same instant from different places cannot be explained by travel.
func SpeedBetween(prev, curr domain.LocationReading) float64 {
	elapsed := curr.Timestamp.Sub(prev.Timestamp).Seconds()
	if elapsed <= 0 {
		return math.Inf(1)
	}
	meters := geo.Distance(prev.Coordinate, curr.Coordinate)
	return meters / elapsed * 3.6
}

// DetectSuspiciousMovement reports whether the transition between two
// readings exceeds the rapid-movement speed threshold. Reusable primitive,
// exposed standalone to collaborators.
func DetectSuspiciousMovement(prev, curr domain.LocationReading) bool {
	return SpeedBetween(prev, curr) > RapidSpeedKmh
}

// AnalyzeMovement inspects the implied speeds across the last window history
// readings plus the current one. Each consecutive pair faster than
// RapidSpeedKmh counts as a rapid change (risk 10 per pair, capped at 30);
// any pair above ImpossibleSpeedKmh adds a flat impossible-speed penalty.
func AnalyzeMovement(history []domain.LocationReading, current domain.LocationReading, window int) Outcome {
	if window <= 0 {
		window = DefaultMovementWindow
	}
	if len(history) == 0 {
		return NotEnoughData()
	}

	recent := tail(history, window)
	points := make([]domain.LocationReading, 0, len(recent)+1)
	points = append(points, recent...)
	points = append(points, current)

	var rapid int
	var impossible, instantJump bool
	maxSpeed := 0.0
	for i := 1; i < len(points); i++ {
		speed := SpeedBetween(points[i-1], points[i])
		if math.IsInf(speed, 1) {
			// Zero elapsed time: infinite speed, always suspicious. Kept out
			// of max_speed_kmh so the details stay JSON-encodable.
			instantJump = true
		} else if speed > maxSpeed {
			maxSpeed = speed
		}
		if speed > RapidSpeedKmh {
			rapid++
		}
		if speed > ImpossibleSpeedKmh {
			impossible = true
		}
	}

	out := Outcome{
		Evaluated: true,
		Details: map[string]any{
			"pairs_checked":      len(points) - 1,
			"rapid_changes":      rapid,
			"max_speed_kmh":      maxSpeed,
			"zero_interval_pair": instantJump,
		},
	}
	if rapid > 0 {
		out.Flags = append(out.Flags, domain.FlagSuspiciousMovement)
		risk := rapid * WeightRapidChange
		if risk > WeightRapidChangeCap {
			risk = WeightRapidChangeCap
		}
		out.Risk += risk
	}
	if impossible {
		out.Flags = append(out.Flags, domain.FlagImpossibleSpeed)
		out.Risk += WeightImpossibleSpeed
	}
	return out
}
