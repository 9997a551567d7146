package core

import (
	"fmt"
	"sort"

	"github.com/paulmach/orb"
)

// EdgeID identifies a currently live edge. Ids are never reused after
// removal; the allocator is monotonic (see methods_edges.go).
type EdgeID uint64

// IntersectionID identifies a currently live intersection. Same
// allocation discipline as EdgeID.
type IntersectionID uint64

// OriginalEdgeID points into the Graph's immutable OriginalEdge
// snapshot. Stable for the lifetime of a session; never reallocated.
type OriginalEdgeID uint64

// IntersectionProvenance records whether an Intersection came from the
// ingested source graph or was synthesized by a rewrite command.
type IntersectionProvenance int

const (
	// ProvenanceOriginal means the intersection corresponds to a node
	// in the ingested source graph.
	ProvenanceOriginal IntersectionProvenance = iota
	// ProvenanceSynthetic means a command created this intersection
	// (e.g. a dog-leg midpoint, a collapsed-face centroid).
	ProvenanceSynthetic
)

// Intersection is a junction: a point with an ordered list of incident
// edges. Invariant: edges == {e : e.Src == id || e.Dst == id}, no
// duplicates, and Point never changes after creation.
type Intersection struct {
	ID         IntersectionID
	Point      orb.Point
	Edges      []EdgeID
	Provenance IntersectionProvenance
	// SourceNodeID is only meaningful when Provenance ==
	// ProvenanceOriginal; it names the ingested node this intersection
	// came from.
	SourceNodeID uint64
}

// hasEdge reports whether id is already recorded as incident.
func (i *Intersection) hasEdge(id EdgeID) bool {
	for _, e := range i.Edges {
		if e == id {
			return true
		}
	}
	return false
}

// OriginalEdge is the immutable snapshot of an edge as it appeared in
// the ingested source graph. Never mutated; the source of truth for
// tags and identity even after the live Edge it came from has been
// consolidated away.
type OriginalEdge struct {
	SourceWayID   uint64
	SourceNode1ID uint64
	SourceNode2ID uint64
	Tags          map[string]string
}

// Tag returns the value of a tag key, and whether it was present.
func (e OriginalEdge) Tag(key string) (string, bool) {
	v, ok := e.Tags[key]
	return v, ok
}

// Is reports whether tag key has exactly value value.
func (e OriginalEdge) Is(key, value string) bool {
	v, ok := e.Tags[key]
	return ok && v == value
}

// Has reports whether tag key is present with any value.
func (e OriginalEdge) Has(key string) bool {
	_, ok := e.Tags[key]
	return ok
}

// Edge is a live, directed edge between two intersections.
//
// Invariants (restored before every command returns; see the session
// package): linestring has >= 2 points; its first point equals
// intersections[src].Point and its last equals intersections[dst].Point,
// modulo the exact-vs-1e-6m tolerance spec.md §8 allows after
// ReplaceIntersection with extend=true.
type Edge struct {
	ID         EdgeID
	Src, Dst   IntersectionID
	Linestring orb.LineString
	Kind       EdgeKind
}

// Graph is the mutable planar multigraph: the arena of edges and
// intersections, the immutable original-edge snapshot, fresh-id
// allocators, and the ingested boundary polygon.
//
// Not safe for concurrent use; see doc.go.
type Graph struct {
	Edges         map[EdgeID]*Edge
	Intersections map[IntersectionID]*Intersection
	OriginalEdges map[OriginalEdgeID]OriginalEdge

	BoundaryPolygon orb.Polygon

	nextEdgeID         EdgeID
	nextIntersectionID IntersectionID
}

// NewGraph returns an empty Graph with the given boundary polygon and
// counters starting at 1 (0 is reserved as a never-allocated sentinel
// id, matching the "fresh, never zero" discipline original_source's
// Rust newtypes get for free from non-zero invariants elsewhere).
func NewGraph(boundary orb.Polygon) *Graph {
	return &Graph{
		Edges:           make(map[EdgeID]*Edge),
		Intersections:   make(map[IntersectionID]*Intersection),
		OriginalEdges:   make(map[OriginalEdgeID]OriginalEdge),
		BoundaryPolygon: boundary,

		nextEdgeID:         1,
		nextIntersectionID: 1,
	}
}

// InputIntersection describes one intersection of the ingested source
// graph, as handed to the engine by the (out of scope) ingester.
type InputIntersection struct {
	ID           IntersectionID
	Point        orb.Point
	SourceNodeID uint64
}

// InputEdge describes one directed edge of the ingested source graph.
type InputEdge struct {
	ID         EdgeID
	Src, Dst   IntersectionID
	Linestring orb.LineString
	// SourceWayID/Node1ID/Node2ID identify this edge in the ingester's
	// own id space; OriginalEdgeID is derived from EdgeID (see
	// NewGraphFromInput).
	SourceWayID   uint64
	SourceNode1ID uint64
	SourceNode2ID uint64
	Tags          map[string]string
}

// BuildInput is the external-collaborator contract of spec.md §6: an
// already-planarised directed graph in a metric frame, plus the
// boundary polygon of the ingested region.
type BuildInput struct {
	Intersections []InputIntersection
	Edges         []InputEdge
	Boundary      orb.Polygon
}

// NewGraphFromInput builds the initial Graph from an ingested source
// graph, classifying every edge's initial EdgeKind from its tags (see
// kind.go). Counters are seeded at max(existing id)+1, matching
// graph.rs's Graph::new.
func NewGraphFromInput(in BuildInput) (*Graph, error) {
	g := NewGraph(in.Boundary)

	for _, ii := range in.Intersections {
		if _, dup := g.Intersections[ii.ID]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateIntersectionID, ii.ID)
		}
		g.Intersections[ii.ID] = &Intersection{
			ID:           ii.ID,
			Point:        ii.Point,
			Provenance:   ProvenanceOriginal,
			SourceNodeID: ii.SourceNodeID,
		}
		if ii.ID >= g.nextIntersectionID {
			g.nextIntersectionID = ii.ID + 1
		}
	}

	for _, ie := range in.Edges {
		if _, dup := g.Edges[ie.ID]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateEdgeID, ie.ID)
		}
		if len(ie.Linestring) < 2 {
			return nil, fmt.Errorf("%w: edge %d", ErrShortLinestring, ie.ID)
		}
		src, ok := g.Intersections[ie.Src]
		if !ok {
			return nil, fmt.Errorf("%w: edge %d src %d", ErrDanglingEndpoint, ie.ID, ie.Src)
		}
		dst, ok := g.Intersections[ie.Dst]
		if !ok {
			return nil, fmt.Errorf("%w: edge %d dst %d", ErrDanglingEndpoint, ie.ID, ie.Dst)
		}

		oid := OriginalEdgeID(ie.ID)
		g.OriginalEdges[oid] = OriginalEdge{
			SourceWayID:   ie.SourceWayID,
			SourceNode1ID: ie.SourceNode1ID,
			SourceNode2ID: ie.SourceNode2ID,
			Tags:          ie.Tags,
		}

		g.Edges[ie.ID] = &Edge{
			ID:         ie.ID,
			Src:        ie.Src,
			Dst:        ie.Dst,
			Linestring: ie.Linestring,
			Kind:       InitiallyClassify(oid, ie.Tags),
		}
		src.Edges = append(src.Edges, ie.ID)
		if ie.Dst != ie.Src {
			dst.Edges = append(dst.Edges, ie.ID)
		} else {
			// self-loop: recorded once already via src==dst map entry
		}
		if ie.ID >= g.nextEdgeID {
			g.nextEdgeID = ie.ID + 1
		}
	}

	return g, nil
}

// SortedOriginalEdgeIDs returns ids in ascending order, for
// deterministic output (read-out adapters, tests).
func SortedOriginalEdgeIDs(set map[OriginalEdgeID]struct{}) []OriginalEdgeID {
	out := make([]OriginalEdgeID, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
