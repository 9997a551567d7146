package commands

import (
	"github.com/paulmach/orb"

	"github.com/dabreegster/road-bundler/core"
	"github.com/dabreegster/road-bundler/faces"
	"github.com/dabreegster/road-bundler/geometry"
)

// CollapseDualCarriageway detects whether face is a dual-carriageway
// artifact — a RoadArtifact bounded on each long side by a group of
// oneway, same-named edges running opposite directions — and, if so,
// replaces the whole group with a single centerline edge, split at
// every side-street attachment along the way.
//
// Grounded on original_source/dual_carriageway.rs's detection
// (DualCarriageway::maybe_new) and faces.rs's edge-removal/
// replace_intersection primitives; the coalesce/average/split/rewrite
// pipeline is this repo's own generalization per spec.md §4.6, since
// the original source only ships detection, not execution.
func CollapseDualCarriageway(g *core.Graph, face *faces.Face) (bool, DetectionFailure) {
	if face.Kind != faces.RoadArtifact {
		return false, reasonNotRoadArtifact
	}

	group := detectDualCarriagewayGroup(g, face)
	if group == nil {
		return false, reasonNoOneways
	}
	if len(group) < 2 {
		return false, reasonNotEnoughEdges
	}

	bearings := make([]float64, len(group))
	for i, eid := range group {
		bearings[i] = geometry.LinestringBearing(g.Edges[eid].Linestring)
	}
	classes := classifyBearings(bearings, dualCarriagewayBearingGap)

	var sideA, sideB []core.EdgeID
	for i, eid := range group {
		if classes[i] == 0 {
			sideA = append(sideA, eid)
		} else {
			sideB = append(sideB, eid)
		}
	}
	if len(sideA) == 0 || len(sideB) == 0 {
		return false, reasonNotEnoughEdges
	}

	lsA, okA := coalesceSide(g, sideA)
	lsB, okB := coalesceSide(g, sideB)
	if !okA || !okB {
		return false, reasonSidesDidntCoalesce
	}

	centerline, ok := geometry.AverageLinestrings(lsA, lsB)
	if !ok {
		return false, reasonAverageTooFewSamples
	}

	rewriteDualCarriageway(g, group, centerline)
	return true, ""
}

// detectDualCarriagewayGroup selects face's oneway, named boundary
// edges, groups them by name, and returns the largest group (nil if
// none qualify).
func detectDualCarriagewayGroup(g *core.Graph, face *faces.Face) []core.EdgeID {
	byName := map[string][]core.EdgeID{}
	for _, eid := range face.BoundaryEdges {
		e, ok := g.Edges[eid]
		if !ok || !e.Kind.IsOnewayRoad(g) {
			continue
		}
		name, ok := e.Kind.RoadName(g)
		if !ok {
			continue
		}
		byName[name] = append(byName[name], eid)
	}

	var best []core.EdgeID
	for _, edges := range byName {
		if len(edges) > len(best) {
			best = edges
		}
	}
	return best
}

// coalesceSide joins a set of edges that share endpoints pairwise into
// a single linestring, flipping orientation as needed. Fails unless
// the edges form exactly one simple path (the degree-2 join algorithm
// of spec.md §4.6 step 3).
func coalesceSide(g *core.Graph, edgeIDs []core.EdgeID) (orb.LineString, bool) {
	if len(edgeIDs) == 0 {
		return nil, false
	}

	type piece struct {
		src, dst core.IntersectionID
		ls       orb.LineString
	}
	remaining := make([]piece, len(edgeIDs))
	for i, id := range edgeIDs {
		e := g.Edges[id]
		remaining[i] = piece{e.Src, e.Dst, e.Linestring}
	}

	chain := remaining[0]
	remaining = remaining[1:]

	for len(remaining) > 0 {
		found := false
		for idx, p := range remaining {
			switch {
			case p.src == chain.dst:
				chain.ls = append(chain.ls, p.ls[1:]...)
				chain.dst = p.dst
			case p.dst == chain.dst:
				rev := reversed(p.ls)
				chain.ls = append(chain.ls, rev[1:]...)
				chain.dst = p.src
			case p.dst == chain.src:
				chain.ls = append(append(orb.LineString(nil), p.ls[:len(p.ls)-1]...), chain.ls...)
				chain.src = p.src
			case p.src == chain.src:
				rev := reversed(p.ls)
				chain.ls = append(append(orb.LineString(nil), rev[:len(rev)-1]...), chain.ls...)
				chain.src = p.dst
			default:
				continue
			}
			found = true
			remaining = append(remaining[:idx], remaining[idx+1:]...)
			break
		}
		if !found {
			return nil, false
		}
	}
	return chain.ls, true
}

// rewriteDualCarriageway removes every edge in group, creates a fresh
// synthetic intersection at the centerline's two ends and at every
// interior attachment point, lays one new edge per resulting segment
// carrying the union of all removed edges' OriginalEdgeIDs (a known
// coarse per-sub-edge approximation), and reattaches
// whatever was still hanging off the old group intersections to the
// nearest new one.
func rewriteDualCarriageway(g *core.Graph, group []core.EdgeID, centerline orb.LineString) {
	groupPoints := map[core.IntersectionID]orb.Point{}
	merged := core.EdgeKind{}
	for _, eid := range group {
		e := g.Edges[eid]
		groupPoints[e.Src] = g.Intersections[e.Src].Point
		groupPoints[e.Dst] = g.Intersections[e.Dst].Point
		if m, ok := merged.Merge(e.Kind); ok {
			merged = m
		} else if merged.Motorized == nil && merged.Nonmotorized == nil {
			merged = e.Kind.Clone()
		}
	}

	var fractions []float64
	for _, pt := range groupPoints {
		r := geometry.ClosestPointOnLineString(centerline, pt)
		if r.Kind == geometry.ClosestIndeterminate {
			continue
		}
		fractions = append(fractions, geometry.LocatePoint(centerline, r.Point))
	}

	segments := geometry.SplitAtFractions(centerline, fractions)

	for _, eid := range group {
		g.RemoveEdge(eid)
	}

	nodes := make([]*core.Intersection, 0, len(segments)+1)
	nodes = append(nodes, g.CreateIntersection(segments[0][0]))
	for _, seg := range segments {
		nodes = append(nodes, g.CreateIntersection(seg[len(seg)-1]))
	}

	for i, seg := range segments {
		g.CreateEdge(nodes[i].ID, nodes[i+1].ID, seg, merged.Clone())
	}

	for old, pt := range groupPoints {
		if g.Degree(old) == 0 {
			g.RemoveEmptyIntersection(old)
			continue
		}
		nearest := nodes[0]
		best := dist2Points(pt, nearest.Point)
		for _, n := range nodes[1:] {
			if d := dist2Points(pt, n.Point); d < best {
				best = d
				nearest = n
			}
		}
		g.ReplaceIntersection(old, nearest.ID, true)
	}
}

func dist2Points(a, b orb.Point) float64 {
	dx, dy := a[0]-b[0], a[1]-b[1]
	return dx*dx + dy*dy
}
