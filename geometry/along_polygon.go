package geometry

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// LinestringAlongPolygon implements spec.md §4.5's
// linestring_along_polygon test: ls is considered to run alongside
// polygon's boundary — rather than cut across its interior — if one of
// the two complementary arcs SliceNearEndpointsRing produces against
// polygon's exterior ring (or, recursively, any of its holes) has a
// midpoint within maxMidpointDistance of ls's own midpoint.
//
// Grounded on the original source's linestring_along_polygon, which
// runs the identical midpoint-distance test against the exterior ring
// and recurses into every interior ring (hole) of the polygon.
func LinestringAlongPolygon(ls orb.LineString, polygon orb.Polygon, maxMidpointDistance float64) bool {
	if len(ls) < 2 || len(polygon) == 0 {
		return false
	}
	lsMid := midpointOf(ls)

	for _, ring := range polygon {
		if len(ring) < 2 {
			continue
		}
		forward, backward := SliceNearEndpointsRing(orb.LineString(ring), ls)
		if arcMatches(forward, lsMid, maxMidpointDistance) {
			return true
		}
		if arcMatches(backward, lsMid, maxMidpointDistance) {
			return true
		}
	}
	return false
}

func arcMatches(arc orb.LineString, lsMid orb.Point, maxMidpointDistance float64) bool {
	if len(arc) < 2 {
		return false
	}
	return planar.Distance(lsMid, midpointOf(arc)) <= maxMidpointDistance
}

func midpointOf(ls orb.LineString) orb.Point {
	return PointAtDistance(ls, planar.Length(ls)/2)
}
