package commands_test

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"

	"github.com/dabreegster/road-bundler/commands"
	"github.com/dabreegster/road-bundler/core"
	"github.com/dabreegster/road-bundler/faces"
)

// A small square roundabout-like face: four boundary edges forming a
// ring, each with one outward spoke attached at a corner.
func buildRoundaboutScenario(t *testing.T) (*core.Graph, *faces.Face) {
	t.Helper()
	g := buildGraph(t,
		[]core.InputIntersection{
			{ID: 1, Point: orb.Point{0, 0}},
			{ID: 2, Point: orb.Point{10, 0}},
			{ID: 3, Point: orb.Point{10, 10}},
			{ID: 4, Point: orb.Point{0, 10}},
			{ID: 5, Point: orb.Point{-10, 0}}, // spoke off intersection 1
		},
		[]core.InputEdge{
			{ID: 1, Src: 1, Dst: 2, Linestring: line(0, 0, 10, 0), Tags: map[string]string{"highway": "residential"}},
			{ID: 2, Src: 2, Dst: 3, Linestring: line(10, 0, 10, 10), Tags: map[string]string{"highway": "residential"}},
			{ID: 3, Src: 3, Dst: 4, Linestring: line(10, 10, 0, 10), Tags: map[string]string{"highway": "residential"}},
			{ID: 4, Src: 4, Dst: 1, Linestring: line(0, 10, 0, 0), Tags: map[string]string{"highway": "residential"}},
			{ID: 5, Src: 1, Dst: 5, Linestring: line(0, 0, -10, 0), Tags: map[string]string{"highway": "residential"}},
		},
	)
	face := &faces.Face{
		Kind:                  faces.RoadArtifact,
		Polygon:               orb.Polygon{{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}}},
		BoundaryEdges:         []core.EdgeID{1, 2, 3, 4},
		BoundaryIntersections: []core.IntersectionID{1, 2, 3, 4},
	}
	return g, face
}

func TestCollapseToCentroid_RemovesRingAndReattachesSpoke(t *testing.T) {
	g, face := buildRoundaboutScenario(t)

	commands.CollapseToCentroid(g, face)

	require.NotContains(t, g.Intersections, core.IntersectionID(2))
	require.NotContains(t, g.Intersections, core.IntersectionID(3))
	require.NotContains(t, g.Intersections, core.IntersectionID(4))
	require.NotContains(t, g.Intersections, core.IntersectionID(1))

	require.Len(t, g.Edges, 1)
	var spoke *core.Edge
	for _, e := range g.Edges {
		spoke = e
	}
	require.Equal(t, orb.Point{-10, 0}, spoke.Linestring[len(spoke.Linestring)-1])
	require.InDelta(t, 5, spoke.Linestring[0][0], 1e-9)
	require.InDelta(t, 5, spoke.Linestring[0][1], 1e-9)
}

func TestCollapseToCentroid_SweepsIsolatedBoundaryIntersections(t *testing.T) {
	g := buildGraph(t,
		[]core.InputIntersection{
			{ID: 1, Point: orb.Point{0, 0}},
			{ID: 2, Point: orb.Point{10, 0}},
			{ID: 3, Point: orb.Point{10, 10}},
			{ID: 4, Point: orb.Point{0, 10}},
		},
		[]core.InputEdge{
			{ID: 1, Src: 1, Dst: 2, Linestring: line(0, 0, 10, 0), Tags: map[string]string{"highway": "residential"}},
			{ID: 2, Src: 2, Dst: 3, Linestring: line(10, 0, 10, 10), Tags: map[string]string{"highway": "residential"}},
			{ID: 3, Src: 3, Dst: 4, Linestring: line(10, 10, 0, 10), Tags: map[string]string{"highway": "residential"}},
			{ID: 4, Src: 4, Dst: 1, Linestring: line(0, 10, 0, 0), Tags: map[string]string{"highway": "residential"}},
		},
	)
	face := &faces.Face{
		Kind:                  faces.RoadArtifact,
		Polygon:               orb.Polygon{{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}}},
		BoundaryEdges:         []core.EdgeID{1, 2, 3, 4},
		BoundaryIntersections: []core.IntersectionID{1, 2, 3, 4},
	}

	commands.CollapseToCentroid(g, face)

	require.Empty(t, g.Edges)
	require.Empty(t, g.Intersections)
}
