package faces

import (
	"sort"

	"github.com/paulmach/orb"

	"github.com/dabreegster/road-bundler/core"
	"github.com/dabreegster/road-bundler/geometry"
)

// vertexID is a shared id space across real graph intersections
// (using their IntersectionID value directly) and synthetic vertices
// introduced to stitch the boundary polygon ring into the arrangement
// (negative, freshly allocated). Reusing IntersectionID values lets
// face-to-graph lookups skip a translation table.
type vertexID int64

// stitchTolerance is how close a boundary-ring vertex must be to an
// existing graph intersection to be treated as the same point, rather
// than a fresh synthetic vertex. The ingested graph is expected to
// already snap intersections that sit on the boundary to it exactly;
// this just absorbs floating point slop.
const stitchTolerance = 1e-6

// arrangementEdge is one segment of the combined edge set the face
// tracer walks: either a live graph edge or a piece of the boundary
// polygon's ring.
type arrangementEdge struct {
	Src, Dst   vertexID
	Linestring orb.LineString
	GraphEdge  core.EdgeID
	IsGraph    bool
}

type arrangement struct {
	edges   []arrangementEdge
	points  map[vertexID]orb.Point
	outDarts map[vertexID][]dart
}

// dart is one directed traversal of an arrangementEdge.
type dart struct {
	edge    int // index into arrangement.edges
	forward bool
}

func (d dart) from(a *arrangement) vertexID {
	e := a.edges[d.edge]
	if d.forward {
		return e.Src
	}
	return e.Dst
}

func (d dart) to(a *arrangement) vertexID {
	e := a.edges[d.edge]
	if d.forward {
		return e.Dst
	}
	return e.Src
}

// orientedLine returns this dart's geometry in its direction of travel.
func (d dart) orientedLine(a *arrangement) orb.LineString {
	ls := a.edges[d.edge].Linestring
	if d.forward {
		return ls
	}
	rev := append(orb.LineString(nil), ls...)
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return rev
}

func (d dart) reverse() dart {
	return dart{edge: d.edge, forward: !d.forward}
}

func buildArrangement(g *core.Graph) *arrangement {
	a := &arrangement{
		points:   make(map[vertexID]orb.Point),
		outDarts: make(map[vertexID][]dart),
	}

	for id, i := range g.Intersections {
		a.points[vertexID(id)] = i.Point
	}

	ids := make([]core.EdgeID, 0, len(g.Edges))
	for id := range g.Edges {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		e := g.Edges[id]
		a.edges = append(a.edges, arrangementEdge{
			Src:        vertexID(e.Src),
			Dst:        vertexID(e.Dst),
			Linestring: e.Linestring,
			GraphEdge:  id,
			IsGraph:    true,
		})
	}

	a.stitchBoundary(g.BoundaryPolygon)
	a.buildOutDarts()
	return a
}

// stitchBoundary adds the boundary polygon's exterior ring to the
// arrangement, reusing a graph intersection's vertex id wherever a
// ring vertex coincides with it within stitchTolerance, and minting a
// fresh negative synthetic vertex id otherwise.
func (a *arrangement) stitchBoundary(boundary orb.Polygon) {
	if len(boundary) == 0 || len(boundary[0]) < 2 {
		return
	}
	ring := boundary[0]

	nextSynthetic := vertexID(-1)
	vertexFor := func(pt orb.Point) vertexID {
		for id, p := range a.points {
			if nearlyEqual(p, pt) {
				return id
			}
		}
		id := nextSynthetic
		nextSynthetic--
		a.points[id] = pt
		return id
	}

	ids := make([]vertexID, len(ring))
	for i, pt := range ring {
		ids[i] = vertexFor(pt)
	}

	for i := 0; i < len(ring)-1; i++ {
		if ids[i] == ids[i+1] {
			continue
		}
		a.edges = append(a.edges, arrangementEdge{
			Src:        ids[i],
			Dst:        ids[i+1],
			Linestring: orb.LineString{ring[i], ring[i+1]},
		})
	}
}

func nearlyEqual(a, b orb.Point) bool {
	dx := a[0] - b[0]
	dy := a[1] - b[1]
	return dx*dx+dy*dy <= stitchTolerance*stitchTolerance
}

func (a *arrangement) buildOutDarts() {
	for idx, e := range a.edges {
		a.outDarts[e.Src] = append(a.outDarts[e.Src], dart{edge: idx, forward: true})
		a.outDarts[e.Dst] = append(a.outDarts[e.Dst], dart{edge: idx, forward: false})
	}
	for v, darts := range a.outDarts {
		sortDartsByBearing(a, v, darts)
	}
}

// sortDartsByBearing orders the darts leaving v clockwise by the
// bearing of their first segment, so the face tracer can find "the
// next dart clockwise after a given one" by simple index arithmetic.
func sortDartsByBearing(a *arrangement, v vertexID, darts []dart) {
	bearing := func(d dart) float64 {
		ls := d.orientedLine(a)
		return geometry.Bearing(ls[0], ls[1])
	}
	sort.Slice(darts, func(i, j int) bool { return bearing(darts[i]) < bearing(darts[j]) })
	a.outDarts[v] = darts
}

// next returns the dart that continues the same face boundary after d.
func (a *arrangement) next(d dart) dart {
	v := d.to(a)
	rev := d.reverse()
	siblings := a.outDarts[v]
	for i, s := range siblings {
		if s.edge == rev.edge && s.forward == rev.forward {
			return siblings[(i+1)%len(siblings)]
		}
	}
	panic("faces: reverse dart not found in its own vertex's dart list")
}
