package core

import "github.com/paulmach/orb"

// ReplaceIntersection rewires every edge incident to old so that it is
// instead incident to replacement, then removes old (now empty).
// old and replacement must be distinct existing intersections.
//
// If extend is true, each rewired edge's linestring grows a new vertex
// at the old-side end equal to replacement.Point, so the line visibly
// reaches the new intersection instead of stopping short at old's
// former location (dog_leg.rs's collapse_edge and the centroid
// collapse both rely on this to keep lines looking continuous after
// an endpoint moves to a different point). If extend is false, the
// linestring is left entirely as-is and only the Src/Dst reference
// changes — used when replacement.Point already coincides with
// old.Point.
func (g *Graph) ReplaceIntersection(old, replacement IntersectionID, extend bool) {
	if old == replacement {
		panic("core: ReplaceIntersection: old and replacement must be distinct")
	}
	oldI, ok := g.Intersections[old]
	if !ok {
		panic("core: ReplaceIntersection: unknown old intersection")
	}
	replI, ok := g.Intersections[replacement]
	if !ok {
		panic("core: ReplaceIntersection: unknown replacement intersection")
	}

	for _, eid := range append([]EdgeID(nil), oldI.Edges...) {
		e := g.Edges[eid]
		atSrc := e.Src == old
		atDst := e.Dst == old
		if atSrc {
			e.Src = replacement
		}
		if atDst {
			e.Dst = replacement
		}
		if extend {
			// A self-loop on old (atSrc && atDst) needs both ends
			// extended in this same pass; a normal edge needs exactly
			// the one end that referenced old.
			if atSrc {
				extendLinestringEnd(e, true, replI.Point)
			}
			if atDst {
				extendLinestringEnd(e, false, replI.Point)
			}
		}
		if !replI.hasEdge(eid) {
			replI.Edges = append(replI.Edges, eid)
		}
	}
	oldI.Edges = nil
	g.RemoveEmptyIntersection(old)
}

// extendLinestringEnd inserts newPoint as a new leading (atSrc) or
// trailing point of ls, preserving every existing vertex including the
// old endpoint.
func extendLinestringEnd(e *Edge, atSrc bool, newPoint orb.Point) {
	if atSrc {
		e.Linestring = append(orb.LineString{newPoint}, e.Linestring...)
	} else {
		e.Linestring = append(e.Linestring, newPoint)
	}
}
