package commands

import (
	"github.com/dabreegster/road-bundler/core"
	"github.com/dabreegster/road-bundler/faces"
	"github.com/dabreegster/road-bundler/geometry"
)

// RemoveAllSidepaths absorbs every SidepathArtifact face's nonmotorized
// boundary into the nearby parallel road edges, then deletes the
// sidepath and connector geometry outright. A sidepath fragment can
// legitimately border two SidepathArtifact faces (one on each side of
// the road it runs along), so removal guards against an edge already
// gone by the time its second face is processed.
//
// Grounded on original_source/sidepath.rs's merge_sidepath,
// generalized per spec.md §4.6 to the many-to-many bearing-matched
// absorption (the original just deletes every nonmotorized boundary
// edge without attributing provenance to a road).
func RemoveAllSidepaths(g *core.Graph, fs []*faces.Face) int {
	removed := map[core.EdgeID]bool{}

	for _, f := range fs {
		if f.Kind != faces.SidepathArtifact {
			continue
		}
		processSidepathFace(g, f, removed)
	}

	g.RemoveAllEmptyIntersections()
	return len(removed)
}

func processSidepathFace(g *core.Graph, f *faces.Face, removed map[core.EdgeID]bool) {
	var roadEdges, nonmotorizedEdges []core.EdgeID
	for _, eid := range f.BoundaryEdges {
		e, ok := g.Edges[eid]
		if !ok {
			continue
		}
		if e.Kind.Motorized != nil {
			roadEdges = append(roadEdges, eid)
		} else {
			nonmotorizedEdges = append(nonmotorizedEdges, eid)
		}
	}
	if len(roadEdges) == 0 || len(nonmotorizedEdges) == 0 {
		return
	}

	roadBearings := make(map[core.EdgeID]float64, len(roadEdges))
	for _, eid := range roadEdges {
		roadBearings[eid] = geometry.LinestringBearing(g.Edges[eid].Linestring)
	}

	var sidepathEdges, connectorEdges []core.EdgeID
	for _, eid := range nonmotorizedEdges {
		bearing := geometry.LinestringBearing(g.Edges[eid].Linestring)
		parallel := false
		for _, rb := range roadBearings {
			if roughlyParallel(bearing, rb, sidepathParallelTolerance) {
				parallel = true
				break
			}
		}
		if parallel {
			sidepathEdges = append(sidepathEdges, eid)
		} else {
			connectorEdges = append(connectorEdges, eid)
		}
	}

	sidepathOriginals := collectOriginals(g, sidepathEdges)
	connectorOriginals := collectOriginals(g, connectorEdges)

	for _, eid := range roadEdges {
		e := g.Edges[eid]
		if !anyParallel(roadBearings[eid], sidepathEdges, g) {
			continue
		}
		for id := range sidepathOriginals {
			e.Kind.Motorized.Sidepaths[id] = struct{}{}
		}
		for id := range connectorOriginals {
			e.Kind.Motorized.Connectors[id] = struct{}{}
		}
	}

	for _, eid := range append(append([]core.EdgeID{}, sidepathEdges...), connectorEdges...) {
		if removed[eid] {
			continue
		}
		if _, ok := g.Edges[eid]; !ok {
			continue
		}
		g.RemoveEdge(eid)
		removed[eid] = true
	}
}

func anyParallel(roadBearing float64, sidepathEdges []core.EdgeID, g *core.Graph) bool {
	for _, eid := range sidepathEdges {
		b := geometry.LinestringBearing(g.Edges[eid].Linestring)
		if roughlyParallel(roadBearing, b, sidepathParallelTolerance) {
			return true
		}
	}
	return false
}

func collectOriginals(g *core.Graph, edges []core.EdgeID) map[core.OriginalEdgeID]struct{} {
	out := map[core.OriginalEdgeID]struct{}{}
	for _, eid := range edges {
		e, ok := g.Edges[eid]
		if !ok {
			continue
		}
		if e.Kind.Nonmotorized != nil {
			for id := range e.Kind.Nonmotorized.Edges {
				out[id] = struct{}{}
			}
		}
	}
	return out
}
