package faces

import (
	"github.com/paulmach/orb"

	"github.com/dabreegster/road-bundler/areas"
	"github.com/dabreegster/road-bundler/config"
	"github.com/dabreegster/road-bundler/core"
	"github.com/dabreegster/road-bundler/geometry"
)

// dartKey identifies a dart for the visited-set, independent of the
// arrangement that produced it.
type dartKey struct {
	edge    int
	forward bool
}

// Decompose traces the planar faces cut out of g's boundary polygon by
// its live edges, and classifies each one.
//
// This is a straight-line-graph face trace (the rotation-system
// algorithm: at each vertex, order outgoing darts by bearing, and the
// face to one side of a dart continues at the next dart clockwise
// after its reverse), not the polygon-boolean slice the original
// source uses — see DESIGN.md for why, and the general-position
// assumption this relies on: no two edges cross except at a shared
// endpoint, true for an already-planarised street network.
func Decompose(g *core.Graph, a *areas.Areas) []*Face {
	arr := buildArrangement(g)

	visited := make(map[dartKey]bool)
	var cycles [][]dart

	for idx := range arr.edges {
		for _, forward := range []bool{true, false} {
			start := dart{edge: idx, forward: forward}
			key := dartKey{idx, forward}
			if visited[key] {
				continue
			}
			var cycle []dart
			d := start
			for {
				k := dartKey{d.edge, d.forward}
				if visited[k] {
					break
				}
				visited[k] = true
				cycle = append(cycle, d)
				d = arr.next(d)
				if d == start {
					break
				}
			}
			if len(cycle) > 0 {
				cycles = append(cycles, cycle)
			}
		}
	}

	polys := make([]orb.Polygon, len(cycles))
	areaOf := make([]float64, len(cycles))
	for i, cycle := range cycles {
		polys[i] = cyclePolygon(arr, cycle)
		areaOf[i] = shoelaceArea(polys[i][0])
	}

	outer := -1
	outerArea := 0.0
	for i, ar := range areaOf {
		abs := ar
		if abs < 0 {
			abs = -abs
		}
		if abs > outerArea {
			outerArea = abs
			outer = i
		}
	}

	var out []*Face
	for i, cycle := range cycles {
		if i == outer {
			continue
		}
		out = append(out, buildFace(g, a, FaceID(len(out)), polys[i], cycle, arr))
	}
	attachInternalEdges(g, out)
	return out
}

// attachInternalEdges fills in each face's InternalEdges: live edges
// that are not part of that face's own boundary cycle, whose midpoint
// falls inside the face's polygon, and that don't themselves run along
// the polygon's boundary per geometry.LinestringAlongPolygon (§4.5's
// linestring_along_polygon test) — a service lane or short cul-de-sac
// hugging the perimeter is a boundary-adjacent artifact, not the
// isolated interior stub this field is for.
// A short dead-end stub that dangles into a block without touching
// any other edge is the typical case: it traces as a degenerate,
// near-zero-area dart cycle of its own rather than joining a face's
// boundary, so it never appears in any face's BoundaryEdges.
func attachInternalEdges(g *core.Graph, fs []*Face) {
	for _, f := range fs {
		boundary := make(map[core.EdgeID]bool, len(f.BoundaryEdges))
		for _, id := range f.BoundaryEdges {
			boundary[id] = true
		}
		for id, e := range g.Edges {
			if boundary[id] {
				continue
			}
			mid := midpoint(e.Linestring)
			if !areas.Contains(f.Polygon, mid) {
				continue
			}
			if geometry.LinestringAlongPolygon(e.Linestring, f.Polygon, config.Default.AlongPolygonMidpointMeters) {
				continue
			}
			f.InternalEdges = append(f.InternalEdges, id)
		}
	}
}

func midpoint(ls orb.LineString) orb.Point {
	i := len(ls) / 2
	if len(ls)%2 == 1 {
		return ls[i]
	}
	a, b := ls[i-1], ls[i]
	return orb.Point{(a[0] + b[0]) / 2, (a[1] + b[1]) / 2}
}

func cyclePolygon(arr *arrangement, cycle []dart) orb.Polygon {
	var ring orb.Ring
	for _, d := range cycle {
		ls := d.orientedLine(arr)
		ring = append(ring, ls[:len(ls)-1]...)
	}
	if len(ring) > 0 {
		ring = append(ring, ring[0])
	}
	return orb.Polygon{ring}
}

func shoelaceArea(ring orb.Ring) float64 {
	var sum float64
	for i := 0; i < len(ring)-1; i++ {
		sum += ring[i][0]*ring[i+1][1] - ring[i+1][0]*ring[i][1]
	}
	return sum / 2
}

func buildFace(g *core.Graph, a *areas.Areas, id FaceID, poly orb.Polygon, cycle []dart, arr *arrangement) *Face {
	edgeSet := map[core.EdgeID]bool{}
	intersectionSet := map[core.IntersectionID]bool{}
	var boundaryEdges []core.EdgeID
	for _, d := range cycle {
		e := arr.edges[d.edge]
		if !e.IsGraph {
			continue
		}
		if !edgeSet[e.GraphEdge] {
			edgeSet[e.GraphEdge] = true
			boundaryEdges = append(boundaryEdges, e.GraphEdge)
		}
		for _, v := range [2]vertexID{e.Src, e.Dst} {
			if v > 0 {
				intersectionSet[core.IntersectionID(v)] = true
			}
		}
	}

	var boundaryIntersections []core.IntersectionID
	for i := range intersectionSet {
		boundaryIntersections = append(boundaryIntersections, i)
	}

	connectingSet := map[core.EdgeID]bool{}
	for _, i := range boundaryIntersections {
		for _, eid := range g.Intersections[i].Edges {
			if !edgeSet[eid] {
				connectingSet[eid] = true
			}
		}
	}
	var connectingEdges []core.EdgeID
	for e := range connectingSet {
		connectingEdges = append(connectingEdges, e)
	}

	numBuildings := a.CountBuildingCentroidsIn(poly)
	numOther := a.CountOtherCentroidsIn(poly)

	return &Face{
		ID:                     id,
		Polygon:                poly,
		NumBuildings:           numBuildings,
		BoundaryEdges:          boundaryEdges,
		BoundaryIntersections:  boundaryIntersections,
		ConnectingEdges:        connectingEdges,
		Kind:                   classify(g, boundaryEdges, numBuildings, numOther),
	}
}
