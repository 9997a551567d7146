package geometry

import (
	"math"

	"github.com/paulmach/orb"
)

// ClosestKind distinguishes the three outcomes of a closest-point
// query, mirroring the tri-state the original source's geometry
// library exposes (Intersection / SinglePoint / Indeterminate). orb
// has no equivalent — its helpers just return a point — so callers
// that need to treat "no well-defined closest point" as a detection
// failure (spec §7) go through this wrapper instead.
type ClosestKind int

const (
	// ClosestSingle is the ordinary case: point lies strictly closest
	// to one location on the target geometry.
	ClosestSingle ClosestKind = iota
	// ClosestOnBoundary means point itself lies exactly on the target
	// geometry (distance 0).
	ClosestOnBoundary
	// ClosestIndeterminate means the target geometry is degenerate
	// (empty, or every candidate point tied) and no meaningful closest
	// point exists.
	ClosestIndeterminate
)

// ClosestResult is the outcome of a closest-point query.
type ClosestResult struct {
	Kind  ClosestKind
	Point orb.Point
}

// ClosestPointOnSegment projects pt onto the segment a-b and reports
// which of the three ClosestKind cases applies.
func ClosestPointOnSegment(a, b, pt orb.Point) ClosestResult {
	dx, dy := b[0]-a[0], b[1]-a[1]
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return ClosestResult{Kind: ClosestIndeterminate}
	}

	t := ((pt[0]-a[0])*dx + (pt[1]-a[1])*dy) / lenSq
	t = math.Max(0, math.Min(1, t))
	proj := orb.Point{a[0] + t*dx, a[1] + t*dy}

	if proj == pt {
		return ClosestResult{Kind: ClosestOnBoundary, Point: proj}
	}
	return ClosestResult{Kind: ClosestSingle, Point: proj}
}

// ClosestPointOnLineString returns the closest point on ls to pt,
// scanning every segment. ClosestIndeterminate if ls has fewer than
// two points or every segment has zero length.
func ClosestPointOnLineString(ls orb.LineString, pt orb.Point) ClosestResult {
	if len(ls) < 2 {
		return ClosestResult{Kind: ClosestIndeterminate}
	}

	best := ClosestResult{Kind: ClosestIndeterminate}
	bestDist := math.Inf(1)
	for i := 0; i < len(ls)-1; i++ {
		r := ClosestPointOnSegment(ls[i], ls[i+1], pt)
		if r.Kind == ClosestIndeterminate {
			continue
		}
		d := dist2(r.Point, pt)
		if d < bestDist {
			bestDist = d
			best = r
		}
	}
	return best
}

func dist2(a, b orb.Point) float64 {
	dx, dy := a[0]-b[0], a[1]-b[1]
	return dx*dx + dy*dy
}
