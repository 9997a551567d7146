package commands

import (
	"github.com/dabreegster/road-bundler/areas"
	"github.com/dabreegster/road-bundler/core"
	"github.com/dabreegster/road-bundler/faces"
)

// CollapseToCentroid removes every boundary edge of face (typically a
// small roundabout-like polygon) and drags each surviving connecting
// edge into a single new synthetic intersection at the face's
// centroid, extending their linestrings to reach it. The removed
// edges' OriginalEdgeIDs are dropped — an acknowledged provenance
// loss the original design leaves as an open question rather than
// invent a destination bucket for them.
//
// Grounded on original_source/faces.rs's collapse_to_centroid.
func CollapseToCentroid(g *core.Graph, face *faces.Face) {
	for _, eid := range face.BoundaryEdges {
		g.RemoveEdge(eid)
	}

	centroid, ok := areas.Centroid(face.Polygon)
	if !ok {
		return
	}
	centroidI := g.CreateIntersection(centroid)

	for _, iid := range face.BoundaryIntersections {
		if iid == centroidI.ID {
			continue
		}
		if g.Degree(iid) == 0 {
			g.RemoveEmptyIntersection(iid)
			continue
		}
		g.ReplaceIntersection(iid, centroidI.ID, true)
	}
	if g.Degree(centroidI.ID) == 0 {
		g.RemoveEmptyIntersection(centroidI.ID)
	}
}
