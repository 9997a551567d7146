package commands_test

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"

	"github.com/dabreegster/road-bundler/commands"
	"github.com/dabreegster/road-bundler/core"
)

func TestCollapseDegenerateIntersection_MergesDisjointRoads(t *testing.T) {
	g := buildGraph(t,
		[]core.InputIntersection{
			{ID: 1, Point: orb.Point{0, 0}},
			{ID: 2, Point: orb.Point{10, 0}},
			{ID: 3, Point: orb.Point{20, 5}},
		},
		[]core.InputEdge{
			{ID: 1, Src: 1, Dst: 2, Linestring: line(0, 0, 5, 0, 10, 0), Tags: map[string]string{"highway": "residential", "name": "Main"}},
			{ID: 2, Src: 2, Dst: 3, Linestring: line(10, 0, 15, 2, 20, 5), Tags: map[string]string{"highway": "residential", "name": "Main"}},
		},
	)

	ok, reason := commands.CollapseDegenerateIntersection(g, 2)
	require.True(t, ok)
	require.Empty(t, reason)

	require.NotContains(t, g.Intersections, core.IntersectionID(2))
	require.Len(t, g.Edges, 1)

	var merged *core.Edge
	for _, e := range g.Edges {
		merged = e
	}
	require.Equal(t, core.IntersectionID(1), merged.Src)
	require.Equal(t, core.IntersectionID(3), merged.Dst)
	require.Equal(t, orb.Point{0, 0}, merged.Linestring[0])
	require.Equal(t, orb.Point{20, 5}, merged.Linestring[len(merged.Linestring)-1])
	require.ElementsMatch(t,
		core.SortedOriginalEdgeIDs(merged.Kind.Motorized.Roads),
		[]core.OriginalEdgeID{1, 2},
	)
}

func TestCollapseDegenerateIntersection_NoopWhenDegreeNotTwo(t *testing.T) {
	g := buildGraph(t,
		[]core.InputIntersection{
			{ID: 1, Point: orb.Point{0, 0}},
			{ID: 2, Point: orb.Point{10, 0}},
			{ID: 3, Point: orb.Point{0, 10}},
			{ID: 4, Point: orb.Point{10, 10}},
		},
		[]core.InputEdge{
			{ID: 1, Src: 1, Dst: 2, Linestring: line(0, 0, 10, 0), Tags: map[string]string{"highway": "residential"}},
			{ID: 2, Src: 1, Dst: 3, Linestring: line(0, 0, 0, 10), Tags: map[string]string{"highway": "residential"}},
			{ID: 3, Src: 1, Dst: 4, Linestring: line(0, 0, 10, 10), Tags: map[string]string{"highway": "residential"}},
		},
	)

	ok, reason := commands.CollapseDegenerateIntersection(g, 1)
	require.False(t, ok)
	require.NotEmpty(t, reason)
	require.Len(t, g.Edges, 3)
}

func TestCollapseDegenerateIntersection_NoopWhenKindsDontMerge(t *testing.T) {
	g := buildGraph(t,
		[]core.InputIntersection{
			{ID: 1, Point: orb.Point{0, 0}},
			{ID: 2, Point: orb.Point{10, 0}},
			{ID: 3, Point: orb.Point{20, 0}},
		},
		[]core.InputEdge{
			{ID: 1, Src: 1, Dst: 2, Linestring: line(0, 0, 10, 0), Tags: map[string]string{"highway": "residential"}},
			{ID: 2, Src: 2, Dst: 3, Linestring: line(10, 0, 20, 0), Tags: map[string]string{"highway": "footway"}},
		},
	)

	ok, reason := commands.CollapseDegenerateIntersection(g, 2)
	require.False(t, ok)
	require.NotEmpty(t, reason)
	require.Len(t, g.Edges, 2)
}
