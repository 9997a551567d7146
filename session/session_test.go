package session_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dabreegster/road-bundler/core"
	"github.com/dabreegster/road-bundler/fixtures"
	"github.com/dabreegster/road-bundler/session"
)

func TestRemoveEdge_LogsAndSweeps(t *testing.T) {
	var f fixtures.DogLeg
	g, err := fixtures.BuildGraph(fixtures.DefaultBoundary(), f.Constructor())
	require.NoError(t, err)

	s := session.NewFromGraph(g, nil, nil)
	before := len(s.Graph().Edges)

	s.RemoveEdge(f.S1)
	require.Len(t, s.Graph().Edges, before-1)
	require.Equal(t, []string{"remove_edge"}, s.CommandLog())
}

func TestCollapseAllDegenerateIntersections_RemovesTarget(t *testing.T) {
	var f fixtures.Degenerate
	g, err := fixtures.BuildGraph(fixtures.DefaultBoundary(), f.Constructor())
	require.NoError(t, err)

	s := session.NewFromGraph(g, nil, nil)
	n := s.CollapseAllDegenerateIntersections()
	require.Equal(t, 1, n)
	require.NotContains(t, s.Graph().Intersections, f.I)
}

func TestFixAllDogLegs_CollapsesTheDogLeg(t *testing.T) {
	var f fixtures.DogLeg
	g, err := fixtures.BuildGraph(fixtures.DefaultBoundary(), f.Constructor())
	require.NoError(t, err)

	s := session.NewFromGraph(g, nil, nil)
	n := s.FixAllDogLegs()
	require.Equal(t, 1, n)
	require.NotContains(t, s.Graph().Edges, f.E)
}

func TestFixAllDualCarriageways_CollapsesTheGroup(t *testing.T) {
	var f fixtures.DualCarriageway
	g, err := fixtures.BuildGraph(fixtures.DefaultBoundary(), f.Constructor())
	require.NoError(t, err)

	s := session.NewFromGraph(g, nil, nil)
	before := len(s.Graph().Edges)
	n := s.FixAllDualCarriageways()
	require.Greater(t, n, 0)
	require.Less(t, len(s.Graph().Edges), before)
}

func TestRemoveAllSidepaths_AbsorbsSidepath(t *testing.T) {
	var f fixtures.Sidepath
	g, err := fixtures.BuildGraph(fixtures.DefaultBoundary(), f.Constructor())
	require.NoError(t, err)

	s := session.NewFromGraph(g, nil, nil)
	n := s.RemoveAllSidepaths()
	require.Greater(t, n, 0)
	require.NotContains(t, s.Graph().Edges, f.Path)
}

func TestUndo_RestoresPriorState(t *testing.T) {
	var f fixtures.DogLeg
	g, err := fixtures.BuildGraph(fixtures.DefaultBoundary(), f.Constructor())
	require.NoError(t, err)

	s := session.NewFromGraph(g, nil, nil)
	s.RemoveEdge(f.S1)
	require.NotContains(t, s.Graph().Edges, f.S1)

	require.NoError(t, s.Undo())
	require.Contains(t, s.Graph().Edges, f.S1)
	require.Empty(t, s.CommandLog())
}

func TestUndo_EmptyLogErrors(t *testing.T) {
	var f fixtures.Degenerate
	g, err := fixtures.BuildGraph(fixtures.DefaultBoundary(), f.Constructor())
	require.NoError(t, err)

	s := session.NewFromGraph(g, nil, nil)
	require.ErrorIs(t, s.Undo(), session.ErrNothingToUndo)
}

func TestUndo_ReplaysPrefixInOrder(t *testing.T) {
	var f fixtures.Degenerate
	g, err := fixtures.BuildGraph(fixtures.DefaultBoundary(), f.Constructor())
	require.NoError(t, err)

	s := session.NewFromGraph(g, nil, nil)
	s.RemoveEdge(f.A)

	var survivor core.EdgeID
	for id := range s.Graph().Edges {
		survivor = id
	}
	s.RemoveEdge(survivor)
	require.Empty(t, s.Graph().Edges)

	require.NoError(t, s.Undo())
	require.Len(t, s.Graph().Edges, 1)
	require.NotContains(t, s.Graph().Edges, f.A)
}
