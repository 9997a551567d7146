package commands

import "github.com/dabreegster/road-bundler/core"

// RemoveEdge deletes id and sweeps either endpoint left with no
// remaining incidence. Grounded on original_source/clean.rs's
// remove_edge.
func RemoveEdge(g *core.Graph, id core.EdgeID) {
	e := g.Edges[id]
	src, dst := e.Src, e.Dst
	g.RemoveEdge(id)
	if g.Degree(src) == 0 {
		g.RemoveEmptyIntersection(src)
	}
	if dst != src && g.Degree(dst) == 0 {
		g.RemoveEmptyIntersection(dst)
	}
}

// RemoveAllServiceRoads removes every edge whose kind reports
// IsServiceRoad, then sweeps every intersection left empty. Grounded
// on original_source/clean.rs's remove_all_service_roads.
func RemoveAllServiceRoads(g *core.Graph) int {
	var targets []core.EdgeID
	for id, e := range g.Edges {
		if e.Kind.IsServiceRoad() {
			targets = append(targets, id)
		}
	}
	for _, id := range targets {
		g.RemoveEdge(id)
	}
	g.RemoveAllEmptyIntersections()
	return len(targets)
}
