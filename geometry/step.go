package geometry

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// StepPoint is one sample produced by StepAlongLine: a point and the
// bearing of the segment it falls on.
type StepPoint struct {
	Point   orb.Point
	Bearing float64
}

// StepAlongLine walks linestring at regular intervals, returning a
// point and segment bearing at each step. Always includes the start
// and end point, even if interval doesn't evenly divide the length.
//
// Grounded on the original source's step_along_line: linear scan per
// step rather than a running cursor, since linestrings here are short
// (single street segments, not whole routes).
func StepAlongLine(ls orb.LineString, interval float64) []StepPoint {
	length := planar.Length(ls)

	var out []StepPoint
	for dist := 0.0; dist < length; dist += interval {
		out = append(out, pointAtDistance(ls, dist))
	}
	out = append(out, pointAtDistance(ls, length))
	return out
}

// pointAtDistance walks ls's segments until cumulative length reaches
// dist, and returns the interpolated point there plus that segment's
// bearing. If dist overshoots (floating point slop at the very end),
// the last segment's endpoint is returned.
func pointAtDistance(ls orb.LineString, dist float64) StepPoint {
	remaining := dist
	for i := 0; i < len(ls)-1; i++ {
		a, b := ls[i], ls[i+1]
		segLen := planar.Distance(a, b)
		if segLen == 0 {
			continue
		}
		if remaining <= segLen {
			t := remaining / segLen
			pt := orb.Point{
				a[0] + t*(b[0]-a[0]),
				a[1] + t*(b[1]-a[1]),
			}
			return StepPoint{Point: pt, Bearing: Bearing(a, b)}
		}
		remaining -= segLen
	}
	a, b := ls[len(ls)-2], ls[len(ls)-1]
	return StepPoint{Point: b, Bearing: Bearing(a, b)}
}

// PointAtDistance exposes pointAtDistance's point-only result, used by
// commands that need one interpolated point rather than a full walk.
func PointAtDistance(ls orb.LineString, dist float64) orb.Point {
	return pointAtDistance(ls, dist).Point
}
