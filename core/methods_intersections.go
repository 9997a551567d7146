package core

import "github.com/paulmach/orb"

// CreateIntersection inserts a new, edge-less synthetic intersection
// at point and returns it. Used by commands that split a linestring
// (dog-leg midpoints, dual-carriageway split points).
func (g *Graph) CreateIntersection(point orb.Point) *Intersection {
	i := &Intersection{
		ID:         g.NewIntersectionID(),
		Point:      point,
		Provenance: ProvenanceSynthetic,
	}
	g.Intersections[i.ID] = i
	return i
}

// RemoveEmptyIntersection deletes an intersection with no incident
// edges. Panics if it still has edges — callers must RemoveEdge or
// rewire first; an intersection with live edges is never silently
// dropped, per spec §7's invariant tier (this is a primitive bug, not
// a detection failure).
func (g *Graph) RemoveEmptyIntersection(id IntersectionID) {
	i, ok := g.Intersections[id]
	if !ok {
		panic("core: RemoveEmptyIntersection: unknown intersection id")
	}
	if len(i.Edges) != 0 {
		panic("core: RemoveEmptyIntersection: intersection still has incident edges")
	}
	delete(g.Intersections, id)
}

// RemoveAllEmptyIntersections sweeps the graph for degree-0
// intersections and removes them. Commands that can strand several
// intersections (commands.RemoveAllServiceRoads and
// commands.RemoveAllSidepaths) call this once at the end rather than
// reasoning about strandedness inline.
func (g *Graph) RemoveAllEmptyIntersections() {
	var empty []IntersectionID
	for id, i := range g.Intersections {
		if len(i.Edges) == 0 {
			empty = append(empty, id)
		}
	}
	for _, id := range empty {
		g.RemoveEmptyIntersection(id)
	}
}

// Degree returns the number of incident edges at an intersection,
// counting a self-loop edge once (matching the Edges invariant).
func (g *Graph) Degree(id IntersectionID) int {
	i, ok := g.Intersections[id]
	if !ok {
		panic("core: Degree: unknown intersection id")
	}
	return len(i.Edges)
}

// EdgesAt returns the live Edge values incident to an intersection, in
// incidence-list order.
func (g *Graph) EdgesAt(id IntersectionID) []*Edge {
	i, ok := g.Intersections[id]
	if !ok {
		panic("core: EdgesAt: unknown intersection id")
	}
	out := make([]*Edge, 0, len(i.Edges))
	for _, eid := range i.Edges {
		out = append(out, g.Edges[eid])
	}
	return out
}
