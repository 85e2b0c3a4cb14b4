package analyzer

import (
	"github.com/nopkhun/restaurant-scheduling-sub000/internal/core/domain"
	"github.com/nopkhun/restaurant-scheduling-sub000/internal/core/geo"
)

// AnalyzeLocationClustering greedily clusters the coordinates of previously
// accepted clock-ins (plus the current reading) with a ClusterRadiusMeters
// proximity radius: a point joins the first cluster whose seed is within the
// radius, otherwise it seeds a new cluster. Natural GPS drift spreads
// check-ins across many small clusters; one near-identical coordinate
// dominating many independent check-ins indicates a fixed or spoofed
// location. Skips below ClusterMinPoints accepted clock-ins.
func AnalyzeLocationClustering(accepted []domain.Coordinate, current domain.Coordinate) Outcome {
	if len(accepted) < ClusterMinPoints {
		return NotEnoughData()
	}

	points := make([]domain.Coordinate, 0, len(accepted)+1)
	points = append(points, accepted...)
	points = append(points, current)

	type cluster struct {
		seed domain.Coordinate
		size int
	}
	var clusters []*cluster
	for _, p := range points {
		joined := false
		for _, c := range clusters {
			if geo.Distance(c.seed, p) <= ClusterRadiusMeters {
				c.size++
				joined = true
				break
			}
		}
		if !joined {
			clusters = append(clusters, &cluster{seed: p, size: 1})
		}
	}

	largest := 0
	for _, c := range clusters {
		if c.size > largest {
			largest = c.size
		}
	}
	ratio := float64(largest) / float64(len(points))

	out := Outcome{
		Evaluated: true,
		Details: map[string]any{
			"points":          len(points),
			"clusters":        len(clusters),
			"largest_cluster": largest,
			"dominance_ratio": ratio,
		},
	}
	if ratio > ClusterDominanceRatio && largest > ClusterMinMembers {
		out.Flags = append(out.Flags, domain.FlagLocationClustering)
		out.Risk += WeightClustering
	}
	return out
}
