package core

import "github.com/paulmach/orb"

// NewEdgeID allocates and returns a fresh, never-before-used EdgeID.
func (g *Graph) NewEdgeID() EdgeID {
	id := g.nextEdgeID
	g.nextEdgeID++
	return id
}

// NewIntersectionID allocates and returns a fresh, never-before-used
// IntersectionID.
func (g *Graph) NewIntersectionID() IntersectionID {
	id := g.nextIntersectionID
	g.nextIntersectionID++
	return id
}

// CreateEdge inserts a new live edge with a freshly allocated id and
// registers it on both endpoints' incidence lists. Panics if src or
// dst doesn't exist or the linestring has fewer than 2 points — those
// are primitive bugs in a caller, not user-facing conditions.
func (g *Graph) CreateEdge(src, dst IntersectionID, ls orb.LineString, kind EdgeKind) *Edge {
	if len(ls) < 2 {
		panic("core: CreateEdge: linestring must have at least 2 points")
	}
	srcI, ok := g.Intersections[src]
	if !ok {
		panic("core: CreateEdge: unknown src intersection")
	}
	dstI, ok := g.Intersections[dst]
	if !ok {
		panic("core: CreateEdge: unknown dst intersection")
	}

	e := &Edge{
		ID:         g.NewEdgeID(),
		Src:        src,
		Dst:        dst,
		Linestring: ls,
		Kind:       kind,
	}
	g.Edges[e.ID] = e

	if !srcI.hasEdge(e.ID) {
		srcI.Edges = append(srcI.Edges, e.ID)
	}
	if dst != src && !dstI.hasEdge(e.ID) {
		dstI.Edges = append(dstI.Edges, e.ID)
	}
	return e
}

// RemoveEdge deletes a live edge and unregisters it from both
// endpoints' incidence lists. Panics if id doesn't exist.
func (g *Graph) RemoveEdge(id EdgeID) {
	e, ok := g.Edges[id]
	if !ok {
		panic("core: RemoveEdge: unknown edge id")
	}
	removeFromIncidence(g.Intersections[e.Src], id)
	if e.Dst != e.Src {
		removeFromIncidence(g.Intersections[e.Dst], id)
	}
	delete(g.Edges, id)
}

func removeFromIncidence(i *Intersection, id EdgeID) {
	if i == nil {
		return
	}
	out := i.Edges[:0]
	for _, e := range i.Edges {
		if e != id {
			out = append(out, e)
		}
	}
	i.Edges = out
}

// OtherEndpoint returns the intersection at the opposite end of edge
// from the given one. Panics if from isn't an endpoint of edge.
func (e *Edge) OtherEndpoint(from IntersectionID) IntersectionID {
	switch from {
	case e.Src:
		return e.Dst
	case e.Dst:
		return e.Src
	default:
		panic("core: OtherEndpoint: intersection is not an endpoint of edge")
	}
}

// EndpointFor returns the endpoint id of edge that sits at linestring
// index 0 (Src) or len-1 (Dst), used by commands that walk a
// linestring end and need the owning intersection.
func (e *Edge) EndpointFor(isStart bool) IntersectionID {
	if isStart {
		return e.Src
	}
	return e.Dst
}
