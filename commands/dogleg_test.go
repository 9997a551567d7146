package commands_test

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"

	"github.com/dabreegster/road-bundler/commands"
	"github.com/dabreegster/road-bundler/core"
)

// buildDogLegScenario matches spec.md §8's concrete dog-leg scenario:
// J1 and J2 are 3m apart on edge E ("Main"); J1 also carries a
// same-named continuation (so it's degree 3) and a side road S1
// arriving at bearing 90°; J2 symmetrically carries a continuation
// and a side road S2 arriving at bearing 270°.
func buildDogLegScenario(t *testing.T) (*core.Graph, core.EdgeID) {
	t.Helper()
	g := buildGraph(t,
		[]core.InputIntersection{
			{ID: 1, Point: orb.Point{0, 0}},  // J1
			{ID: 2, Point: orb.Point{3, 0}},  // J2
			{ID: 3, Point: orb.Point{-5, 0}}, // S1 far end
			{ID: 4, Point: orb.Point{8, 0}},  // S2 far end
			{ID: 5, Point: orb.Point{0, -5}}, // Main continuation at J1
			{ID: 6, Point: orb.Point{3, 5}},  // Main continuation at J2
		},
		[]core.InputEdge{
			{ID: 1, Src: 1, Dst: 2, Linestring: line(0, 0, 3, 0), Tags: map[string]string{"highway": "residential", "name": "Main"}},
			{ID: 2, Src: 3, Dst: 1, Linestring: line(-5, 0, 0, 0), Tags: map[string]string{"highway": "residential", "name": "Side1"}},
			{ID: 3, Src: 2, Dst: 4, Linestring: line(3, 0, 8, 0), Tags: map[string]string{"highway": "residential", "name": "Side2"}},
			{ID: 4, Src: 1, Dst: 5, Linestring: line(0, 0, 0, -5), Tags: map[string]string{"highway": "residential", "name": "Main"}},
			{ID: 5, Src: 2, Dst: 6, Linestring: line(3, 0, 3, 5), Tags: map[string]string{"highway": "residential", "name": "Main"}},
		},
	)
	return g, 1
}

func TestIsDogLeg_MatchesConcreteScenario(t *testing.T) {
	g, eID := buildDogLegScenario(t)
	require.True(t, commands.IsDogLeg(g, g.Edges[eID]))
}

func TestCollapseEdge_DogLegTrimsSidesAndExtendsMain(t *testing.T) {
	g, eID := buildDogLegScenario(t)
	e := g.Edges[eID]

	commands.CollapseEdge(g, e)

	require.NotContains(t, g.Intersections, core.IntersectionID(1))
	require.NotContains(t, g.Intersections, core.IntersectionID(2))
	require.NotContains(t, g.Edges, eID)

	var mid *core.Intersection
	for _, i := range g.Intersections {
		if i.Provenance == core.ProvenanceSynthetic {
			require.Nil(t, mid, "expected exactly one synthetic intersection")
			mid = i
		}
	}
	require.NotNil(t, mid)
	require.InDelta(t, 1.5, mid.Point[0], 1e-9)
	require.InDelta(t, 0, mid.Point[1], 1e-9)

	main1 := g.Edges[4]
	require.Equal(t, mid.Point, main1.Linestring[0])
	main2 := g.Edges[5]
	require.Equal(t, mid.Point, main2.Linestring[0])

	side1 := g.Edges[2]
	require.Len(t, side1.Linestring, 3)
	require.Equal(t, orb.Point{-5, 0}, side1.Linestring[0])
	require.InDelta(t, -1, side1.Linestring[1][0], 1e-9)
	require.Equal(t, mid.Point, side1.Linestring[2])

	side2 := g.Edges[3]
	require.Len(t, side2.Linestring, 3)
	require.Equal(t, mid.Point, side2.Linestring[0])
	require.InDelta(t, 4, side2.Linestring[1][0], 1e-9)
	require.Equal(t, orb.Point{8, 0}, side2.Linestring[2])
}

func TestCollapseEdge_PlainCollapseWhenNotDogLeg(t *testing.T) {
	g := buildGraph(t,
		[]core.InputIntersection{
			{ID: 1, Point: orb.Point{0, 0}},
			{ID: 2, Point: orb.Point{3, 0}},
			{ID: 3, Point: orb.Point{-5, 0}},
		},
		[]core.InputEdge{
			{ID: 1, Src: 1, Dst: 2, Linestring: line(0, 0, 3, 0), Tags: map[string]string{"highway": "residential"}},
			{ID: 2, Src: 3, Dst: 1, Linestring: line(-5, 0, 0, 0), Tags: map[string]string{"highway": "residential"}},
		},
	)
	e := g.Edges[1]
	require.False(t, commands.IsDogLeg(g, e))

	commands.CollapseEdge(g, e)

	require.NotContains(t, g.Edges, core.EdgeID(1))
	side := g.Edges[2]
	require.Len(t, side.Linestring, 3)
	require.Equal(t, orb.Point{-5, 0}, side.Linestring[0])
	require.Equal(t, orb.Point{0, 0}, side.Linestring[1])
	require.InDelta(t, 1.5, side.Linestring[2][0], 1e-9)
}
