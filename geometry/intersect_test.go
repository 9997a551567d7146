package geometry_test

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"

	"github.com/dabreegster/road-bundler/geometry"
)

func TestSegmentIntersection_Crossing(t *testing.T) {
	pt, ok := geometry.SegmentIntersection(
		orb.Point{0, 5}, orb.Point{10, 5},
		orb.Point{5, 0}, orb.Point{5, 10},
	)
	require.True(t, ok)
	require.Equal(t, orb.Point{5, 5}, pt)
}

func TestSegmentIntersection_Parallel(t *testing.T) {
	_, ok := geometry.SegmentIntersection(
		orb.Point{0, 0}, orb.Point{10, 0},
		orb.Point{0, 5}, orb.Point{10, 5},
	)
	require.False(t, ok)
}

func TestSegmentIntersection_NonCrossingWithinInfiniteLines(t *testing.T) {
	_, ok := geometry.SegmentIntersection(
		orb.Point{0, 0}, orb.Point{1, 0},
		orb.Point{5, -5}, orb.Point{5, 5},
	)
	require.False(t, ok)
}

func TestProjectAway_NorthIsPositiveY(t *testing.T) {
	pt := geometry.ProjectAway(orb.Point{0, 0}, 0, 10)
	require.InDelta(t, 0, pt[0], 1e-9)
	require.InDelta(t, 10, pt[1], 1e-9)
}

func TestProjectAway_EastIsPositiveX(t *testing.T) {
	pt := geometry.ProjectAway(orb.Point{0, 0}, 90, 10)
	require.InDelta(t, 10, pt[0], 1e-9)
	require.InDelta(t, 0, pt[1], 1e-9)
}
