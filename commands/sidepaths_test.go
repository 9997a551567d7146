package commands_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dabreegster/road-bundler/areas"
	"github.com/dabreegster/road-bundler/commands"
	"github.com/dabreegster/road-bundler/faces"
	"github.com/dabreegster/road-bundler/fixtures"
)

func TestRemoveAllSidepaths_AbsorbsIntoRoad(t *testing.T) {
	var f fixtures.Sidepath
	g, err := fixtures.BuildGraph(fixtures.DefaultBoundary(), f.Constructor())
	require.NoError(t, err)

	fs := faces.Decompose(g, areas.Build(nil))

	removed := commands.RemoveAllSidepaths(g, fs)
	require.Greater(t, removed, 0)

	require.NotContains(t, g.Edges, f.Path)
	require.NotContains(t, g.Edges, f.ConnectorNear)
	require.NotContains(t, g.Edges, f.ConnectorFar)

	road, ok := g.Edges[f.Road]
	require.True(t, ok, "the road edge itself is never removed")
	require.NotNil(t, road.Kind.Motorized)
	require.NotEmpty(t, road.Kind.Motorized.Sidepaths)
	require.NotEmpty(t, road.Kind.Motorized.Connectors)
}

func TestRemoveAllSidepaths_NoopWithoutSidepathArtifactFaces(t *testing.T) {
	var f fixtures.Degenerate
	g, err := fixtures.BuildGraph(fixtures.DefaultBoundary(), f.Constructor())
	require.NoError(t, err)

	fs := faces.Decompose(g, areas.Build(nil))
	removed := commands.RemoveAllSidepaths(g, fs)
	require.Equal(t, 0, removed)
}
