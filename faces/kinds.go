package faces

import "github.com/dabreegster/road-bundler/core"

// Kind classifies a face by what it contains, in strict precedence
// order: see classify.
type Kind int

const (
	// RoadArtifact is the fallback kind: no building or other-area
	// centroid, not a mix of motorized and nonmotorized boundary edges,
	// and no parking-aisle boundary edge. A face bounded only by
	// nonmotorized edges is a RoadArtifact too. The usual target of
	// the rewrite commands.
	RoadArtifact Kind = iota
	// UrbanBlock contains at least one building centroid (or, as a
	// fallback, has a parking-aisle boundary edge).
	UrbanBlock
	// OtherArea contains at least one non-building area centroid
	// (park, water) and no building centroid.
	OtherArea
	// SidepathArtifact mixes motorized and nonmotorized boundary edges
	// — typically the sliver between a road and its parallel sidepath.
	SidepathArtifact
)

func (k Kind) String() string {
	switch k {
	case UrbanBlock:
		return "urban block"
	case OtherArea:
		return "other area"
	case SidepathArtifact:
		return "sidepath artifact"
	default:
		return "road artifact"
	}
}

// classify applies spec's FaceKind precedence: building centroid count,
// then other-area centroid count, then mixed motorized/nonmotorized
// boundary, then parking-aisle fallback, then plain road artifact.
func classify(g *core.Graph, boundaryEdges []core.EdgeID, numBuildings, numOtherAreas int) Kind {
	if numBuildings > 0 {
		return UrbanBlock
	}
	if numOtherAreas > 0 {
		return OtherArea
	}

	var sawMotorized, sawNonmotorized bool
	for _, eid := range boundaryEdges {
		e, ok := g.Edges[eid]
		if !ok {
			continue
		}
		if e.Kind.Motorized != nil {
			sawMotorized = true
		}
		if e.Kind.Nonmotorized != nil {
			sawNonmotorized = true
		}
	}
	if sawMotorized && sawNonmotorized {
		return SidepathArtifact
	}

	for _, eid := range boundaryEdges {
		e, ok := g.Edges[eid]
		if !ok {
			continue
		}
		if e.Kind.IsServiceRoad() && e.Kind.IsParkingAisle(g) {
			return UrbanBlock
		}
	}

	return RoadArtifact
}
