package areas_test

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"

	"github.com/dabreegster/road-bundler/areas"
)

func square(x0, y0, x1, y1 float64) orb.Polygon {
	return orb.Polygon{{
		{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}, {x0, y0},
	}}
}

func TestCentroid_UnitSquare(t *testing.T) {
	c, ok := areas.Centroid(square(0, 0, 10, 10))
	require.True(t, ok)
	require.InDelta(t, 5, c[0], 1e-9)
	require.InDelta(t, 5, c[1], 1e-9)
}

func TestCentroid_EmptyPolygonReturnsFalse(t *testing.T) {
	c, ok := areas.Centroid(orb.Polygon{})
	require.False(t, ok)
	require.Equal(t, orb.Point{}, c)
}

func TestContains_InsideAndOutside(t *testing.T) {
	poly := square(0, 0, 10, 10)
	require.True(t, areas.Contains(poly, orb.Point{5, 5}))
	require.False(t, areas.Contains(poly, orb.Point{20, 20}))
}

func TestContains_HoleExcludesInterior(t *testing.T) {
	outer := square(0, 0, 10, 10)[0]
	hole := square(2, 2, 8, 8)[0]
	poly := orb.Polygon{outer, hole}

	require.True(t, areas.Contains(poly, orb.Point{1, 1}))
	require.False(t, areas.Contains(poly, orb.Point{5, 5}))
}

func TestBuild_CountsCentroidsByGroup(t *testing.T) {
	a := areas.Build([]areas.InputArea{
		{Kind: areas.Building, Polygon: square(0, 0, 2, 2)},
		{Kind: areas.Building, Polygon: square(10, 10, 12, 12)},
		{Kind: areas.Park, Polygon: square(0, 0, 2, 2)},
	})

	face := square(-1, -1, 20, 20)
	require.Equal(t, 2, a.CountBuildingCentroidsIn(face))
	require.Equal(t, 1, a.CountOtherCentroidsIn(face))
}

func TestBuild_CountRespectsFaceBoundary(t *testing.T) {
	a := areas.Build([]areas.InputArea{
		{Kind: areas.Building, Polygon: square(0, 0, 2, 2)},
		{Kind: areas.Building, Polygon: square(100, 100, 102, 102)},
	})

	face := square(-1, -1, 20, 20)
	require.Equal(t, 1, a.CountBuildingCentroidsIn(face))
}
