package fixtures

import (
	"github.com/paulmach/orb"

	"github.com/dabreegster/road-bundler/core"
)

// DogLeg builds spec.md §8's concrete dog-leg scenario: J1 and J2 are
// 3m apart on edge E ("Main"); J1 also carries a same-named
// continuation (making it degree 3) and a side road S1 arriving at
// bearing 90°; J2 symmetrically carries a continuation and a side
// road S2 arriving at bearing 270°. commands.IsDogLeg(g, g.Edges[f.E])
// reports true against the graph this produces.
type DogLeg struct {
	J1, J2         core.IntersectionID
	E, S1, S2      core.EdgeID
	MainContinueJ1 core.EdgeID
	MainContinueJ2 core.EdgeID
}

// Constructor returns a Constructor that builds this scenario into b
// and records the produced ids onto f.
func (f *DogLeg) Constructor() Constructor {
	return func(b *Builder) error {
		f.J1 = b.Intersection(orb.Point{0, 0})
		f.J2 = b.Intersection(orb.Point{3, 0})
		s1Far := b.Intersection(orb.Point{-5, 0})
		s2Far := b.Intersection(orb.Point{8, 0})
		mainContinueJ1Far := b.Intersection(orb.Point{0, -5})
		mainContinueJ2Far := b.Intersection(orb.Point{3, 5})

		mainTags := map[string]string{"highway": "residential", "name": "Main"}
		f.E = b.Edge(f.J1, f.J2, orb.LineString{{0, 0}, {3, 0}}, mainTags)
		f.S1 = b.Edge(s1Far, f.J1, orb.LineString{{-5, 0}, {0, 0}}, map[string]string{"highway": "residential", "name": "Side1"})
		f.S2 = b.Edge(f.J2, s2Far, orb.LineString{{3, 0}, {8, 0}}, map[string]string{"highway": "residential", "name": "Side2"})
		f.MainContinueJ1 = b.Edge(f.J1, mainContinueJ1Far, orb.LineString{{0, 0}, {0, -5}}, mainTags)
		f.MainContinueJ2 = b.Edge(f.J2, mainContinueJ2Far, orb.LineString{{3, 0}, {3, 5}}, mainTags)
		return nil
	}
}

// DualCarriageway builds a small rectangular RoadArtifact face bounded
// by two oneway "Main" carriageways running opposite directions (the
// bottom one split at a side-street attachment, so the detector's
// same-name oneway group has three members across two bearing sides)
// plus two unnamed rungs that close the rectangle, and a side street
// ("Cross") hanging off the split point — the connector
// CollapseDualCarriageway's step 5 projects onto the averaged
// centerline and splits at.
type DualCarriageway struct {
	A, M, B, C, D, X core.IntersectionID
	Bottom1, Bottom2 core.EdgeID
	Top              core.EdgeID
	RungLeft         core.EdgeID
	RungRight        core.EdgeID
	Connector        core.EdgeID
}

func (f *DualCarriageway) Constructor() Constructor {
	return func(b *Builder) error {
		f.A = b.Intersection(orb.Point{0, 0})
		f.M = b.Intersection(orb.Point{25, 0})
		f.B = b.Intersection(orb.Point{50, 0})
		f.C = b.Intersection(orb.Point{50, 5})
		f.D = b.Intersection(orb.Point{0, 5})
		f.X = b.Intersection(orb.Point{25, -10})

		mainTags := map[string]string{"highway": "primary", "name": "Main", "oneway": "yes"}
		f.Bottom1 = b.Edge(f.A, f.M, orb.LineString{{0, 0}, {25, 0}}, mainTags)
		f.Bottom2 = b.Edge(f.M, f.B, orb.LineString{{25, 0}, {50, 0}}, mainTags)
		f.Top = b.Edge(f.C, f.D, orb.LineString{{50, 5}, {0, 5}}, mainTags)
		f.RungLeft = b.Edge(f.A, f.D, orb.LineString{{0, 0}, {0, 5}}, map[string]string{"highway": "residential"})
		f.RungRight = b.Edge(f.B, f.C, orb.LineString{{50, 0}, {50, 5}}, map[string]string{"highway": "residential"})
		f.Connector = b.Edge(f.M, f.X, orb.LineString{{25, 0}, {25, -10}}, map[string]string{"highway": "residential", "name": "Cross"})
		return nil
	}
}

// Degenerate builds spec.md §8's concrete degenerate-intersection
// scenario: I has exactly two incident edges, A (from X to I, 3
// points) and B (from I to Y, 4 points), both Motorized with disjoint
// roads sets (disjoint because every ingested edge gets its own
// OriginalEdgeID regardless of shared tags).
type Degenerate struct {
	X, I, Y core.IntersectionID
	A, B    core.EdgeID
}

func (f *Degenerate) Constructor() Constructor {
	return func(b *Builder) error {
		f.X = b.Intersection(orb.Point{0, 0})
		f.I = b.Intersection(orb.Point{10, 0})
		f.Y = b.Intersection(orb.Point{25, 0})

		f.A = b.Edge(f.X, f.I, orb.LineString{{0, 0}, {5, 1}, {10, 0}}, map[string]string{"highway": "residential", "name": "First"})
		f.B = b.Edge(f.I, f.Y, orb.LineString{{10, 0}, {15, 1}, {20, -1}, {25, 0}}, map[string]string{"highway": "residential", "name": "Second"})
		return nil
	}
}

// Sidepath builds a SidepathArtifact face: a motorized road, a
// parallel footway running alongside it, and two perpendicular
// footway connectors closing the strip between them into a face whose
// boundary mixes motorized and nonmotorized edges.
type Sidepath struct {
	RoadSrc, RoadDst         core.IntersectionID
	PathSrc, PathDst         core.IntersectionID
	Road, Path               core.EdgeID
	ConnectorNear, ConnectorFar core.EdgeID
}

func (f *Sidepath) Constructor() Constructor {
	return func(b *Builder) error {
		f.RoadSrc = b.Intersection(orb.Point{0, 0})
		f.RoadDst = b.Intersection(orb.Point{100, 0})
		f.PathSrc = b.Intersection(orb.Point{0, 5})
		f.PathDst = b.Intersection(orb.Point{100, 5})

		f.Road = b.Edge(f.RoadSrc, f.RoadDst, orb.LineString{{0, 0}, {100, 0}}, map[string]string{"highway": "primary", "name": "Main"})
		f.Path = b.Edge(f.PathSrc, f.PathDst, orb.LineString{{0, 5}, {100, 5}}, map[string]string{"highway": "footway"})
		f.ConnectorNear = b.Edge(f.RoadSrc, f.PathSrc, orb.LineString{{0, 0}, {0, 5}}, map[string]string{"highway": "footway"})
		f.ConnectorFar = b.Edge(f.RoadDst, f.PathDst, orb.LineString{{100, 0}, {100, 5}}, map[string]string{"highway": "footway"})
		return nil
	}
}
