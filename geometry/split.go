package geometry

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// LocatePoint returns the fraction along ls (0 at the start, 1 at the
// end) that pt's projection falls at. pt should already be a point on
// or very near ls (typically the output of ClosestPointOnLineString).
func LocatePoint(ls orb.LineString, pt orb.Point) float64 {
	total := planar.Length(ls)
	if total == 0 {
		return 0
	}

	var travelled float64
	best := 0.0
	bestDist := infinity
	for i := 0; i < len(ls)-1; i++ {
		a, b := ls[i], ls[i+1]
		segLen := planar.Distance(a, b)
		r := ClosestPointOnSegment(a, b, pt)
		if r.Kind != ClosestIndeterminate {
			if d := dist2(r.Point, pt); d < bestDist {
				bestDist = d
				along := travelled
				if segLen > 0 {
					along += planar.Distance(a, r.Point)
				}
				best = along / total
			}
		}
		travelled += segLen
	}
	return best
}

// SplitAtFractions splits ls at the given ascending, deduplicated
// fractions in (0, 1), returning len(fractions)+1 sub-linestrings in
// order. Fractions outside (0, 1) are ignored.
//
// Grounded on the original source's split_center, which sorts and
// dedups line_locate_point fractions before calling LineSplitMany.
func SplitAtFractions(ls orb.LineString, fractions []float64) []orb.LineString {
	clean := sortFractions(filterOpenUnit(fractions))
	if len(clean) == 0 {
		return []orb.LineString{ls}
	}

	total := planar.Length(ls)
	targets := make([]float64, len(clean))
	for i, f := range clean {
		targets[i] = f * total
	}

	var out []orb.LineString
	var current orb.LineString
	current = append(current, ls[0])

	var travelled float64
	targetIdx := 0
	for i := 0; i < len(ls)-1; i++ {
		a, b := ls[i], ls[i+1]
		segLen := planar.Distance(a, b)
		segStart := travelled
		for targetIdx < len(targets) && targets[targetIdx] <= segStart+segLen {
			t := 0.0
			if segLen > 0 {
				t = (targets[targetIdx] - segStart) / segLen
			}
			splitPt := orb.Point{a[0] + t*(b[0]-a[0]), a[1] + t*(b[1]-a[1])}
			current = append(current, splitPt)
			out = append(out, current)
			current = orb.LineString{splitPt}
			targetIdx++
		}
		current = append(current, b)
		travelled += segLen
	}
	out = append(out, current)
	return out
}

func filterOpenUnit(fractions []float64) []float64 {
	out := fractions[:0:0]
	for _, f := range fractions {
		if f > 0 && f < 1 {
			out = append(out, f)
		}
	}
	return out
}
