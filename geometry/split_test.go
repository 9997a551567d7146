package geometry_test

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"

	"github.com/dabreegster/road-bundler/geometry"
)

func TestSplitAtFractions_NoFractionsReturnsWhole(t *testing.T) {
	ls := orb.LineString{{0, 0}, {10, 0}}
	out := geometry.SplitAtFractions(ls, nil)
	require.Len(t, out, 1)
	require.Equal(t, ls, out[0])
}

func TestSplitAtFractions_SingleMidpoint(t *testing.T) {
	ls := orb.LineString{{0, 0}, {10, 0}}
	out := geometry.SplitAtFractions(ls, []float64{0.5})
	require.Len(t, out, 2)
	require.Equal(t, orb.Point{5, 0}, out[0][len(out[0])-1])
	require.Equal(t, orb.Point{5, 0}, out[1][0])
}

func TestSplitAtFractions_MultipleSortedDeduped(t *testing.T) {
	ls := orb.LineString{{0, 0}, {20, 0}}
	out := geometry.SplitAtFractions(ls, []float64{0.75, 0.25, 0.25})
	require.Len(t, out, 3)
	require.Equal(t, orb.Point{5, 0}, out[0][len(out[0])-1])
	require.Equal(t, orb.Point{15, 0}, out[1][len(out[1])-1])
}

func TestLocatePoint_Midpoint(t *testing.T) {
	ls := orb.LineString{{0, 0}, {10, 0}}
	f := geometry.LocatePoint(ls, orb.Point{5, 0})
	require.InDelta(t, 0.5, f, 1e-9)
}
