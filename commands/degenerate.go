package commands

import (
	"github.com/paulmach/orb"

	"github.com/dabreegster/road-bundler/core"
)

// CollapseDegenerateIntersection merges the two edges incident to a
// degree-two intersection into one edge running between their far
// endpoints, dropping the intersection. A no-op (DetectionFailure,
// never a panic) if the intersection isn't degree two, its two
// incident edges are actually the same edge, or the two edges' kinds
// can't merge (a Motorized edge meeting a Nonmotorized one).
//
// Grounded on original_source/clean.rs's collapse_degenerate_intersection.
func CollapseDegenerateIntersection(g *core.Graph, id core.IntersectionID) (bool, DetectionFailure) {
	i := g.Intersections[id]
	if len(i.Edges) != 2 || i.Edges[0] == i.Edges[1] {
		return false, reasonNotDegreeTwo
	}

	e1 := g.Edges[i.Edges[0]]
	e2 := g.Edges[i.Edges[1]]
	merged, ok := e1.Kind.Merge(e2.Kind)
	if !ok {
		return false, reasonKindsDontMerge
	}

	// Orient e1 to end at id, e2 to start at id, then concatenate.
	far1 := e1.Src
	pts1 := e1.Linestring
	if e1.Src == id {
		far1 = e1.Dst
		pts1 = reversed(pts1)
	}

	far2 := e2.Dst
	pts2 := e2.Linestring
	if e2.Src != id {
		far2 = e2.Src
		pts2 = reversed(pts2)
	}

	combined := append(append(orb.LineString(nil), pts1...), pts2...)

	g.RemoveEdge(e1.ID)
	g.RemoveEdge(e2.ID)
	g.RemoveEmptyIntersection(id)

	g.CreateEdge(far1, far2, combined, merged)
	return true, ""
}

func reversed(ls orb.LineString) orb.LineString {
	out := append(orb.LineString(nil), ls...)
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}
