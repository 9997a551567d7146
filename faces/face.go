package faces

import (
	"github.com/paulmach/orb"

	"github.com/dabreegster/road-bundler/core"
)

// FaceID identifies one face of a decomposition. Ids are assigned in
// discovery order and only meaningful within a single Decompose call —
// they don't survive a graph mutation.
type FaceID int

// Face is one planar region bounded by a cycle of live edges (and,
// where the region touches the outside world, by the graph's boundary
// polygon).
type Face struct {
	ID       FaceID
	Polygon  orb.Polygon
	Kind     Kind
	NumBuildings int

	// BoundaryEdges are the live edges whose geometry runs along this
	// face's perimeter.
	BoundaryEdges []core.EdgeID
	// BoundaryIntersections are the graph intersections touched by
	// BoundaryEdges.
	BoundaryIntersections []core.IntersectionID
	// ConnectingEdges are edges incident to a BoundaryIntersection that
	// are not themselves boundary edges of this face — side roads and
	// other connections poking into the face.
	ConnectingEdges []core.EdgeID
	// InternalEdges are live edges wholly inside this face's polygon
	// that are not part of its boundary cycle at all — a driveway or
	// short stub that dead-ends inside a block, touching no other
	// geometry. Classified by the §4.5 rule: not along-boundary, and
	// the face polygon contains the edge.
	InternalEdges []core.EdgeID
}
