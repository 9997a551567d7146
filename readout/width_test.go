package readout_test

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"

	"github.com/dabreegster/road-bundler/areas"
	"github.com/dabreegster/road-bundler/fixtures"
	"github.com/dabreegster/road-bundler/readout"
)

func TestEstimateRoadWidth_HitsBuildingsOnBothSides(t *testing.T) {
	var f fixtures.Sidepath
	g, err := fixtures.BuildGraph(fixtures.DefaultBoundary(), f.Constructor())
	require.NoError(t, err)

	northBuilding := orb.Polygon{{{-5, 10}, {105, 10}, {105, 20}, {-5, 20}, {-5, 10}}}
	southBuilding := orb.Polygon{{{-5, -20}, {105, -20}, {105, -10}, {-5, -10}, {-5, -20}}}
	a := areas.Build([]areas.InputArea{
		{Kind: areas.Building, Polygon: northBuilding},
		{Kind: areas.Building, Polygon: southBuilding},
	})

	ests := readout.EstimateRoadWidth(a, g.Edges[f.Road])
	require.NotEmpty(t, ests)
	for _, e := range ests {
		require.True(t, e.Hit, "sample at %v should hit a building on each side", e.At)
		require.InDelta(t, 20.0, e.WidthMeters, 1e-6)
	}
}

func TestEstimateRoadWidth_NoHitWithoutNearbyBuildings(t *testing.T) {
	var f fixtures.Sidepath
	g, err := fixtures.BuildGraph(fixtures.DefaultBoundary(), f.Constructor())
	require.NoError(t, err)

	a := areas.Build(nil)
	ests := readout.EstimateRoadWidth(a, g.Edges[f.Road])
	require.NotEmpty(t, ests)
	for _, e := range ests {
		require.False(t, e.Hit)
	}
}
