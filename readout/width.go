package readout

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/dabreegster/road-bundler/areas"
	"github.com/dabreegster/road-bundler/config"
	"github.com/dabreegster/road-bundler/core"
	"github.com/dabreegster/road-bundler/geometry"
)

// WidthProbeStepMeters and WidthProbeReachMeters are spec.md §9's
// road-width probe tolerances, initialized from config.Default.
var (
	WidthProbeStepMeters  = config.Default.WidthProbeStepMeters
	WidthProbeReachMeters = config.Default.WidthProbeReachMeters
)

// EdgeWidthEstimate is one sample point's perpendicular probe result.
type EdgeWidthEstimate struct {
	At orb.Point
	// Left and Right are the nearest building-edge hit on each side,
	// valid only when Hit is true.
	Left, Right orb.Point
	WidthMeters float64
	Hit         bool
}

// EstimateRoadWidth samples e's linestring every WidthProbeStepMeters
// and, at each sample, casts a perpendicular ray WidthProbeReachMeters
// to either side, reporting the nearest building-polygon edge each ray
// hits. The distance between the two hits is a building-to-building
// separation estimate, not a measured curb-to-curb width (the original
// source makes the same approximation).
//
// Grounded on original_source/width.rs's debug_road_width /
// points_along_line / project_away / shortest_line_hitting_polygon;
// ported onto this repo's geometry.StepAlongLine, geometry.ProjectAway,
// and geometry.SegmentIntersection rather than the Rust `geo` crate's
// Densify/Euclidean/line_intersection.
func EstimateRoadWidth(a *areas.Areas, e *core.Edge) []EdgeWidthEstimate {
	samples := geometry.StepAlongLine(e.Linestring, WidthProbeStepMeters)

	out := make([]EdgeWidthEstimate, 0, len(samples))
	for _, s := range samples {
		est := EdgeWidthEstimate{At: s.Point}
		left, leftOK := nearestBuildingHit(a, s.Point, s.Bearing-90)
		right, rightOK := nearestBuildingHit(a, s.Point, s.Bearing+90)
		if leftOK && rightOK {
			est.Left, est.Right = left, right
			est.WidthMeters = planar.Distance(left, right)
			est.Hit = true
		}
		out = append(out, est)
	}
	return out
}

// nearestBuildingHit casts a ray from pt along bearingDegrees out to
// WidthProbeReachMeters and returns the closest point at which it
// crosses any indexed building polygon's exterior ring.
func nearestBuildingHit(a *areas.Areas, pt orb.Point, bearingDegrees float64) (orb.Point, bool) {
	far := geometry.ProjectAway(pt, bearingDegrees, WidthProbeReachMeters)
	ray := orb.Bound{Min: pt, Max: pt}.Extend(far)

	var best orb.Point
	var bestDist float64
	found := false

	for _, poly := range a.BuildingPolygonsNear(ray) {
		for _, ring := range poly {
			for i := 0; i < len(ring)-1; i++ {
				hit, ok := geometry.SegmentIntersection(pt, far, ring[i], ring[i+1])
				if !ok {
					continue
				}
				d := dist2(pt, hit)
				if !found || d < bestDist {
					best = hit
					bestDist = d
					found = true
				}
			}
		}
	}
	return best, found
}

func dist2(a, b orb.Point) float64 {
	dx, dy := a[0]-b[0], a[1]-b[1]
	return dx*dx + dy*dy
}

// ApplyTolerances overwrites this package's tolerance variables from t,
// so a config.Load override reaches EstimateRoadWidth instead of only
// the compiled-in config.Default.
func ApplyTolerances(t config.Tolerances) {
	WidthProbeStepMeters = t.WidthProbeStepMeters
	WidthProbeReachMeters = t.WidthProbeReachMeters
}
