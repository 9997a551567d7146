package geometry_test

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"

	"github.com/dabreegster/road-bundler/geometry"
)

func TestAverageLinestrings_ParallelLines(t *testing.T) {
	ls1 := orb.LineString{{0, 0}, {30, 0}}
	ls2 := orb.LineString{{0, 4}, {30, 4}}

	avg, ok := geometry.AverageLinestrings(ls1, ls2)
	require.True(t, ok)
	for _, pt := range avg {
		require.InDelta(t, 2, pt[1], 1e-9)
	}
	require.InDelta(t, 0, avg[0][0], 1e-9)
	require.InDelta(t, 30, avg[len(avg)-1][0], 1e-9)
}

func TestAverageLinestrings_OppositeDirectionStillAverages(t *testing.T) {
	ls1 := orb.LineString{{0, 0}, {30, 0}}
	ls2 := orb.LineString{{30, 4}, {0, 4}}

	avg, ok := geometry.AverageLinestrings(ls1, ls2)
	require.True(t, ok)
	for _, pt := range avg {
		require.InDelta(t, 2, pt[1], 1e-9)
	}
}

func TestAverageLinestrings_ShortLineYieldsStartAndEnd(t *testing.T) {
	ls1 := orb.LineString{{0, 0}, {1, 0}}
	ls2 := orb.LineString{{0, 4}, {1, 4}}

	_, ok := geometry.AverageLinestrings(ls1, ls2)
	require.True(t, ok, "two points is the minimum viable output")
}
