package geometry

import (
	"sort"

	"github.com/paulmach/orb"
)

// endpointHit is where on a boundary the start or end of some other
// linestring projects most closely.
type endpointHit struct {
	segmentIndex int
	point        orb.Point
}

// coordsNearEndpoints finds, for each point in ring's segments, the
// closest approach to closestTo's first and last points.
func coordsNearEndpoints(ring orb.LineString, closestTo orb.LineString) (start, end endpointHit) {
	first := closestTo[0]
	last := closestTo[len(closestTo)-1]

	bestStartDist, bestEndDist := infinity, infinity
	for i := 0; i < len(ring)-1; i++ {
		a, b := ring[i], ring[i+1]

		if r := ClosestPointOnSegment(a, b, first); r.Kind != ClosestIndeterminate {
			if d := dist2(r.Point, first); d < bestStartDist {
				bestStartDist = d
				start = endpointHit{segmentIndex: i, point: r.Point}
			}
		}
		if r := ClosestPointOnSegment(a, b, last); r.Kind != ClosestIndeterminate {
			if d := dist2(r.Point, last); d < bestEndDist {
				bestEndDist = d
				end = endpointHit{segmentIndex: i, point: r.Point}
			}
		}
	}
	return start, end
}

const infinity = 1e300

// SliceNearEndpointsRing splits a closed ring (a polygon's exterior, or
// one of its holes; first point == last point) into the two
// complementary arcs that run from the point nearest closestTo's start
// to the point nearest its end, going each way around.
// LinestringAlongPolygon (along_polygon.go) is the caller: it picks
// whichever arc's midpoint comes closest to closestTo's own midpoint.
//
// Grounded on the original source's SliceNearEndpoints impl for
// Polygon, including the wrap-around stitching when the end segment
// index precedes the start segment index.
func SliceNearEndpointsRing(ring orb.LineString, closestTo orb.LineString) (forward, backward orb.LineString) {
	start, end := coordsNearEndpoints(ring, closestTo)

	assemble := func(fromIdx, toIdx int, fromPt, toPt orb.Point) orb.LineString {
		var coords orb.LineString
		switch {
		case fromIdx < toIdx:
			coords = append(coords, ring[fromIdx:toIdx+1]...)
			coords[0] = fromPt
			coords = append(coords, toPt)
		case fromIdx == toIdx && dist2(ring[fromIdx], fromPt) <= dist2(ring[fromIdx], toPt):
			coords = orb.LineString{fromPt, toPt}
		default:
			coords = append(coords, ring[fromIdx:]...)
			coords[0] = fromPt
			coords = append(coords, ring[:toIdx+1]...)
			coords = append(coords, toPt)
		}
		return dedupConsecutive(coords)
	}

	forward = assemble(start.segmentIndex, end.segmentIndex, start.point, end.point)
	backward = assemble(end.segmentIndex, start.segmentIndex, end.point, start.point)
	return forward, backward
}

func dedupConsecutive(ls orb.LineString) orb.LineString {
	out := ls[:0:0]
	for i, p := range ls {
		if i == 0 || p != ls[i-1] {
			out = append(out, p)
		}
	}
	return out
}

// sortFractions sorts fractional positions ascending and removes
// duplicates, matching the original source's split_center's
// sort-then-dedup of line_locate_point fractions.
func sortFractions(fractions []float64) []float64 {
	sort.Float64s(fractions)
	out := fractions[:0]
	for i, f := range fractions {
		if i == 0 || f != fractions[i-1] {
			out = append(out, f)
		}
	}
	return out
}
