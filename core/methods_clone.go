package core

import "github.com/paulmach/orb"

// Clone returns a deep copy of the graph: a fresh arena with its own
// maps and slices, safe to mutate independently of g. OriginalEdges is
// immutable after ingest, so its map is the only one allowed a shallow
// value copy of its entries (the OriginalEdge struct itself holds no
// mutable reference types callers touch after ingest other than Tags,
// which is copied too).
//
// Used by the session package to snapshot the original graph once at
// ingest and to materialize undo/replay targets without re-ingesting.
func (g *Graph) Clone() *Graph {
	out := &Graph{
		Edges:              make(map[EdgeID]*Edge, len(g.Edges)),
		Intersections:      make(map[IntersectionID]*Intersection, len(g.Intersections)),
		OriginalEdges:      make(map[OriginalEdgeID]OriginalEdge, len(g.OriginalEdges)),
		BoundaryPolygon:    clonePolygon(g.BoundaryPolygon),
		nextEdgeID:         g.nextEdgeID,
		nextIntersectionID: g.nextIntersectionID,
	}

	for id, e := range g.Edges {
		out.Edges[id] = &Edge{
			ID:         e.ID,
			Src:        e.Src,
			Dst:        e.Dst,
			Linestring: append(e.Linestring[:0:0], e.Linestring...),
			Kind:       e.Kind.Clone(),
		}
	}
	for id, i := range g.Intersections {
		out.Intersections[id] = &Intersection{
			ID:           i.ID,
			Point:        i.Point,
			Edges:        append([]EdgeID(nil), i.Edges...),
			Provenance:   i.Provenance,
			SourceNodeID: i.SourceNodeID,
		}
	}
	for id, oe := range g.OriginalEdges {
		tags := make(map[string]string, len(oe.Tags))
		for k, v := range oe.Tags {
			tags[k] = v
		}
		oe.Tags = tags
		out.OriginalEdges[id] = oe
	}

	return out
}

func clonePolygon(p orb.Polygon) orb.Polygon {
	out := make(orb.Polygon, len(p))
	for i, ring := range p {
		out[i] = append([]orb.Point(nil), ring...)
	}
	return out
}

// Clone deep-copies an EdgeKind's buckets so mutating the clone's sets
// never aliases the original's. Used by Graph.Clone and by commands
// that attribute one merged kind to several new sub-edges (each needs
// its own independent bucket maps).
func (k EdgeKind) Clone() EdgeKind {
	if k.Motorized != nil {
		return EdgeKind{Motorized: &MotorizedKind{
			Roads:        cloneSet(k.Motorized.Roads),
			ServiceRoads: cloneSet(k.Motorized.ServiceRoads),
			Sidepaths:    cloneSet(k.Motorized.Sidepaths),
			Connectors:   cloneSet(k.Motorized.Connectors),
		}}
	}
	if k.Nonmotorized != nil {
		return EdgeKind{Nonmotorized: &NonmotorizedKind{Edges: cloneSet(k.Nonmotorized.Edges)}}
	}
	return EdgeKind{}
}

func cloneSet(in map[OriginalEdgeID]struct{}) map[OriginalEdgeID]struct{} {
	out := make(map[OriginalEdgeID]struct{}, len(in))
	for id := range in {
		out[id] = struct{}{}
	}
	return out
}
