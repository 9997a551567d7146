package faces_test

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"

	"github.com/dabreegster/road-bundler/areas"
	"github.com/dabreegster/road-bundler/core"
	"github.com/dabreegster/road-bundler/faces"
)

// splitSquare builds a 10x10 square boundary with a horizontal chord
// at y=5 splitting it into two faces. The boundary ring's own
// vertices include the chord's endpoints, so the arrangement stitches
// cleanly (see faces/arrangement.go's stitching limitation note).
func splitSquare(t *testing.T, tags map[string]string) *core.Graph {
	t.Helper()
	boundary := orb.Polygon{{
		{0, 0}, {10, 0}, {10, 5}, {10, 10}, {0, 10}, {0, 5}, {0, 0},
	}}
	g, err := core.NewGraphFromInput(core.BuildInput{
		Boundary: boundary,
		Intersections: []core.InputIntersection{
			{ID: 1, Point: orb.Point{0, 5}},
			{ID: 2, Point: orb.Point{10, 5}},
		},
		Edges: []core.InputEdge{
			{ID: 1, Src: 1, Dst: 2, Linestring: orb.LineString{{0, 5}, {10, 5}}, Tags: tags},
		},
	})
	require.NoError(t, err)
	return g
}

func TestDecompose_SplitsTwoFaces(t *testing.T) {
	g := splitSquare(t, map[string]string{"highway": "residential"})
	a := areas.Build(nil)

	fs := faces.Decompose(g, a)
	require.Len(t, fs, 2)

	totalArea := 0.0
	for _, f := range fs {
		totalArea += polygonArea(f.Polygon)
		require.Contains(t, f.BoundaryEdges, core.EdgeID(1))
	}
	require.InDelta(t, 100, totalArea, 1e-6)
}

func TestDecompose_ClassifiesRoadArtifactByDefault(t *testing.T) {
	g := splitSquare(t, map[string]string{"highway": "residential"})
	a := areas.Build(nil)

	for _, f := range faces.Decompose(g, a) {
		require.Equal(t, faces.RoadArtifact, f.Kind)
	}
}

func TestDecompose_ClassifiesUrbanBlockWithBuildingCentroid(t *testing.T) {
	g := splitSquare(t, map[string]string{"highway": "residential"})
	a := areas.Build([]areas.InputArea{
		{Kind: areas.Building, Polygon: orb.Polygon{{{1, 1}, {2, 1}, {2, 2}, {1, 2}, {1, 1}}}},
	})

	var sawUrbanBlock bool
	for _, f := range faces.Decompose(g, a) {
		if f.Kind == faces.UrbanBlock {
			sawUrbanBlock = true
			require.Equal(t, 1, f.NumBuildings)
		}
	}
	require.True(t, sawUrbanBlock)
}

func TestDecompose_NonmotorizedOnlyBoundaryIsNotSidepathArtifact(t *testing.T) {
	g := splitSquare(t, map[string]string{"highway": "footway"})
	a := areas.Build(nil)

	// Add a motorized edge sharing the same boundary cycle by reusing
	// one face's intersections isn't straightforward with one chord;
	// instead verify the chord alone (nonmotorized-only boundary)
	// does NOT classify as SidepathArtifact, since that requires both
	// kinds present on the same face boundary.
	for _, f := range faces.Decompose(g, a) {
		require.NotEqual(t, faces.SidepathArtifact, f.Kind)
	}
}

func TestDecompose_AttachesInternalEdgeForDanglingStub(t *testing.T) {
	g := splitSquare(t, map[string]string{"highway": "residential"})

	stubTip := g.CreateIntersection(orb.Point{2, 2}).ID
	stubBase := g.CreateIntersection(orb.Point{2, 3}).ID
	stub := g.CreateEdge(stubBase, stubTip, orb.LineString{{2, 3}, {2, 2}}, core.EdgeKind{
		Motorized: &core.MotorizedKind{ServiceRoads: map[core.OriginalEdgeID]struct{}{99: {}}},
	})

	a := areas.Build(nil)
	fs := faces.Decompose(g, a)

	var containing *faces.Face
	for _, f := range fs {
		for _, id := range f.InternalEdges {
			if id == stub.ID {
				containing = f
			}
		}
	}
	require.NotNil(t, containing, "expected the dangling stub to be internal to the lower half face")
	require.NotContains(t, containing.BoundaryEdges, stub.ID)
}

func polygonArea(p orb.Polygon) float64 {
	ring := p[0]
	var sum float64
	for i := 0; i < len(ring)-1; i++ {
		sum += ring[i][0]*ring[i+1][1] - ring[i+1][0]*ring[i][1]
	}
	if sum < 0 {
		sum = -sum
	}
	return sum / 2
}
