package fixtures

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/dabreegster/road-bundler/core"
)

// Constructor appends one scenario's intersections and edges to b.
// Constructors never panic; they report a problem (a coordinate reused
// across scenarios, say) as an error, matching the teacher's
// builder.Constructor sentinel-error contract.
type Constructor func(b *Builder) error

// Builder accumulates InputIntersections/InputEdges under a shared,
// monotonic id allocation so multiple Constructors can compose into
// one graph without id collisions.
type Builder struct {
	boundary      orb.Polygon
	intersections []core.InputIntersection
	edges         []core.InputEdge

	nextIntersectionID core.IntersectionID
	nextEdgeID         core.EdgeID
}

// NewBuilder starts an empty Builder with the given boundary polygon.
func NewBuilder(boundary orb.Polygon) *Builder {
	return &Builder{
		boundary:           boundary,
		nextIntersectionID: 1,
		nextEdgeID:         1,
	}
}

// Intersection allocates a fresh IntersectionID at point and records
// it for ingest.
func (b *Builder) Intersection(point orb.Point) core.IntersectionID {
	id := b.nextIntersectionID
	b.nextIntersectionID++
	b.intersections = append(b.intersections, core.InputIntersection{
		ID:           id,
		Point:        point,
		SourceNodeID: uint64(id),
	})
	return id
}

// Edge allocates a fresh EdgeID from src to dst along ls, tagged tags.
func (b *Builder) Edge(src, dst core.IntersectionID, ls orb.LineString, tags map[string]string) core.EdgeID {
	id := b.nextEdgeID
	b.nextEdgeID++
	b.edges = append(b.edges, core.InputEdge{
		ID:            id,
		Src:           src,
		Dst:           dst,
		Linestring:    ls,
		SourceWayID:   uint64(id),
		SourceNode1ID: uint64(src),
		SourceNode2ID: uint64(dst),
		Tags:          tags,
	})
	return id
}

// Build ingests everything accumulated so far into a *core.Graph.
func (b *Builder) Build() (*core.Graph, error) {
	return core.NewGraphFromInput(core.BuildInput{
		Boundary:      b.boundary,
		Intersections: b.intersections,
		Edges:         b.edges,
	})
}

// BuildGraph creates a Builder over boundary, applies every Constructor
// in order, and ingests the result. Any Constructor error is wrapped
// with the index that failed and returned immediately — no partial
// graph is returned on error.
func BuildGraph(boundary orb.Polygon, cons ...Constructor) (*core.Graph, error) {
	b := NewBuilder(boundary)
	for i, c := range cons {
		if c == nil {
			return nil, fmt.Errorf("fixtures: nil constructor at index %d", i)
		}
		if err := c(b); err != nil {
			return nil, fmt.Errorf("fixtures: constructor %d: %w", i, err)
		}
	}
	return b.Build()
}

// DefaultBoundary is a generous square boundary polygon big enough to
// hold every scenario in this package without touching its edge.
func DefaultBoundary() orb.Polygon {
	return orb.Polygon{{
		{-100, -100}, {200, -100}, {200, 100}, {-100, 100}, {-100, -100},
	}}
}
