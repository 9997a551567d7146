package geometry_test

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"

	"github.com/dabreegster/road-bundler/geometry"
)

// test_linestring_along_polygon's fixture from spec.md §8 scenario 5,
// given here as the literal WKT the scenario names plus the orb
// coordinates it decodes to (orb has no WKT parser wired into this
// repo, so the literal values are spelled out directly rather than
// parsed at test time):
//
//	POLYGON((0 0, 10 0, 10 10, 0 10, 0 0))
//	LINESTRING(1 0.3, 5 0.2, 9 0.3)
func alongPolygonFixture() (orb.Polygon, orb.LineString) {
	polygon := orb.Polygon{{
		{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0},
	}}
	ls := orb.LineString{{1, 0.3}, {5, 0.2}, {9, 0.3}}
	return polygon, ls
}

func TestLinestringAlongPolygon_SpecScenario5(t *testing.T) {
	polygon, ls := alongPolygonFixture()
	require.True(t, geometry.LinestringAlongPolygon(ls, polygon, 1.5))
}

func TestLinestringAlongPolygon_DiagonalAcrossInteriorIsFalse(t *testing.T) {
	polygon, _ := alongPolygonFixture()
	diagonal := orb.LineString{{0, 0}, {10, 10}}
	require.False(t, geometry.LinestringAlongPolygon(diagonal, polygon, 1.5))
}

func TestLinestringAlongPolygon_MatchesAgainstAHole(t *testing.T) {
	outer := orb.Ring{{0, 0}, {20, 0}, {20, 20}, {0, 20}, {0, 0}}
	hole := orb.Ring{{5, 5}, {15, 5}, {15, 15}, {5, 15}, {5, 5}}
	polygon := orb.Polygon{outer, hole}

	alongHole := orb.LineString{{6, 5.3}, {10, 5.2}, {14, 5.3}}
	require.True(t, geometry.LinestringAlongPolygon(alongHole, polygon, 1.5))
}

func TestLinestringAlongPolygon_EmptyInputsAreFalse(t *testing.T) {
	require.False(t, geometry.LinestringAlongPolygon(nil, orb.Polygon{}, 1.5))
	require.False(t, geometry.LinestringAlongPolygon(orb.LineString{{0, 0}}, orb.Polygon{{{0, 0}, {1, 0}, {0, 0}}}, 1.5))
}
