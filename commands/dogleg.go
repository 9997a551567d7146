package commands

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/dabreegster/road-bundler/config"
	"github.com/dabreegster/road-bundler/core"
	"github.com/dabreegster/road-bundler/geometry"
)

// DogLegMaxLength and DogLegBearingCutoff are the numeric tolerances
// of spec.md §9, initialized from config.Default.
var (
	DogLegMaxLength     = config.Default.DogLegMaxLengthMeters
	DogLegBearingCutoff = config.Default.DogLegBearingCutoffDegrees
)

// dogLegStubLength is how far back from the tip a dog-leg's side
// road is trimmed before the inserted stub connects it to the
// synthetic midpoint.
const dogLegStubLength = 1.0

// IsDogLeg reports whether e is a short connector joining two
// otherwise-parallel roads across a minor digitisation offset, per
// spec.md §4.6: length at most DogLegMaxLength; both endpoints degree
// three; after discounting the side edges that share e's road name,
// each endpoint has exactly one remaining side edge; those two side
// edges, oriented to point into e, have bearings differing by at
// least DogLegBearingCutoff (i.e. they approach from different
// sides, not the same one).
func IsDogLeg(g *core.Graph, e *core.Edge) bool {
	if planar.Length(e.Linestring) > DogLegMaxLength {
		return false
	}
	if g.Degree(e.Src) != 3 || g.Degree(e.Dst) != 3 {
		return false
	}

	name, hasName := e.Kind.RoadName(g)

	side1, ok1 := uniqueSideEdge(g, e.Src, e.ID, name, hasName)
	if !ok1 {
		return false
	}
	side2, ok2 := uniqueSideEdge(g, e.Dst, e.ID, name, hasName)
	if !ok2 {
		return false
	}

	b1 := bearingInto(side1, e.Src)
	b2 := bearingInto(side2, e.Dst)
	return geometry.AngleDiff(b1, b2) >= DogLegBearingCutoff
}

// uniqueSideEdge returns the one edge at intersection i, other than
// exclude, that doesn't share roadName (when roadName is present) —
// failing unless there's exactly one such edge.
func uniqueSideEdge(g *core.Graph, i core.IntersectionID, exclude core.EdgeID, roadName string, hasName bool) (*core.Edge, bool) {
	var candidates []*core.Edge
	for _, e := range g.EdgesAt(i) {
		if e.ID == exclude {
			continue
		}
		if hasName {
			if n, ok := e.Kind.RoadName(g); ok && n == roadName {
				continue
			}
		}
		candidates = append(candidates, e)
	}
	if len(candidates) != 1 {
		return nil, false
	}
	return candidates[0], true
}

// bearingInto returns the bearing of e's linestring oriented so it
// points towards endpoint at, i.e. arriving at at.
func bearingInto(e *core.Edge, at core.IntersectionID) float64 {
	if e.Dst == at {
		return geometry.LinestringBearing(e.Linestring)
	}
	return geometry.LinestringBearing(reversed(e.Linestring))
}

// CollapseEdge removes e and fuses its two endpoints into one
// synthetic intersection at e's midpoint. Every edge that was
// incident on either old endpoint is extended to reach the new
// midpoint. If e IsDogLeg, the two side roads identified by the
// detector additionally have their tip trimmed back
// dogLegStubLength metres and an inserted straight stub connects the
// trimmed tip to the midpoint, instead of the plain extension, so the
// merge doesn't leave a visible kink where the two roads used to
// offset around each other.
//
// Grounded on original_source/dog_leg.rs's collapse_edge, generalized
// per spec.md §4.6 to the dog-leg trim-and-stub execution.
func CollapseEdge(g *core.Graph, e *core.Edge) {
	isDogLeg := IsDogLeg(g, e)

	var side1, side2 *core.Edge
	var side1Orig, side2Orig orb.LineString
	if isDogLeg {
		name, hasName := e.Kind.RoadName(g)
		side1, _ = uniqueSideEdge(g, e.Src, e.ID, name, hasName)
		side2, _ = uniqueSideEdge(g, e.Dst, e.ID, name, hasName)
		side1Orig = append(orb.LineString(nil), side1.Linestring...)
		side2Orig = append(orb.LineString(nil), side2.Linestring...)
	}

	mid := geometry.PointAtDistance(e.Linestring, planar.Length(e.Linestring)/2)

	src, dst := e.Src, e.Dst
	g.RemoveEdge(e.ID)

	midI := g.CreateIntersection(mid)
	g.ReplaceIntersection(src, midI.ID, true)
	g.ReplaceIntersection(dst, midI.ID, true)

	if !isDogLeg {
		return
	}

	side1.Linestring = trimAndStub(side1Orig, side1.Src == midI.ID, mid)
	side2.Linestring = trimAndStub(side2Orig, side2.Src == midI.ID, mid)
}

// trimAndStub shortens origLS by dogLegStubLength at the end nearest
// mid (the end ReplaceIntersection already relocated to mid), then
// reattaches a straight segment from the shortened tip to mid —
// replacing the contiguous extension ReplaceIntersection performed
// with a short inserted stub. If origLS is too short to trim a full
// stub length, the original tip is kept and just connected to mid.
func trimAndStub(origLS orb.LineString, atSrc bool, mid orb.Point) orb.LineString {
	total := planar.Length(origLS)
	if total <= dogLegStubLength {
		if atSrc {
			return append(orb.LineString{mid}, origLS...)
		}
		return append(append(orb.LineString(nil), origLS...), mid)
	}

	if atSrc {
		frac := dogLegStubLength / total
		parts := geometry.SplitAtFractions(origLS, []float64{frac})
		suffix := parts[len(parts)-1]
		out := orb.LineString{mid}
		return append(out, suffix...)
	}

	frac := (total - dogLegStubLength) / total
	parts := geometry.SplitAtFractions(origLS, []float64{frac})
	prefix := append(orb.LineString(nil), parts[0]...)
	return append(prefix, mid)
}
