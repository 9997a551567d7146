package geometry

import (
	"math"

	"github.com/paulmach/orb"
)

// SegmentIntersection reports the single point where segments a1-a2
// and b1-b2 cross, if any. Parallel or non-crossing segments report ok
// == false — callers (the road-width probe) skip those candidates
// rather than treating it as an error.
func SegmentIntersection(a1, a2, b1, b2 orb.Point) (orb.Point, bool) {
	r := orb.Point{a2[0] - a1[0], a2[1] - a1[1]}
	s := orb.Point{b2[0] - b1[0], b2[1] - b1[1]}

	denom := cross(r, s)
	if denom == 0 {
		return orb.Point{}, false
	}

	qp := orb.Point{b1[0] - a1[0], b1[1] - a1[1]}
	t := cross(qp, s) / denom
	u := cross(qp, r) / denom
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return orb.Point{}, false
	}

	return orb.Point{a1[0] + t*r[0], a1[1] + t*r[1]}, true
}

func cross(a, b orb.Point) float64 {
	return a[0]*b[1] - a[1]*b[0]
}

// ProjectAway returns the point distance meters from pt along
// bearingDegrees (same convention as Bearing: North 0°, clockwise).
// Inverse of Bearing for a pure translation.
func ProjectAway(pt orb.Point, bearingDegrees, distance float64) orb.Point {
	rad := bearingDegrees * (math.Pi / 180)
	return orb.Point{
		pt[0] + distance*math.Sin(rad),
		pt[1] + distance*math.Cos(rad),
	}
}
