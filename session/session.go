package session

import (
	"github.com/sirupsen/logrus"

	"github.com/dabreegster/road-bundler/areas"
	"github.com/dabreegster/road-bundler/commands"
	"github.com/dabreegster/road-bundler/core"
	"github.com/dabreegster/road-bundler/faces"
)

// logEntry is one replayable step of the command log: apply mutates a
// graph the same way the live call did. Face-targeted commands close
// over a value copy of the resolved Face rather than its FaceID, since
// a FaceID is only valid for the decomposition that produced it (§5) —
// the copy's BoundaryEdges/BoundaryIntersections reference ids that
// remain stable across a Clone+replay.
type logEntry struct {
	desc  string
	apply func(g *core.Graph)
}

// Session owns the original graph, the current graph, the areas
// index, the last face decomposition, and the append-only command log.
// Not safe for concurrent use, matching core.Graph (see spec.md §5).
type Session struct {
	original *core.Graph
	graph    *core.Graph
	areas    *areas.Areas
	faces    []*faces.Face
	log      []logEntry
	logger   *logrus.Entry
}

// New ingests input and areaInputs into a fresh Session, with faces
// decomposed once up front. A nil logger defaults to logrus's standard
// logger, matching the teacher's package-level-logger-by-default style.
func New(input core.BuildInput, areaInputs []areas.InputArea, logger *logrus.Entry) (*Session, error) {
	g, err := core.NewGraphFromInput(input)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}

	s := &Session{
		original: g.Clone(),
		graph:    g,
		areas:    areas.Build(areaInputs),
		logger:   logger,
	}
	s.recomputeFaces()
	return s, nil
}

// NewFromGraph wraps an already-ingested graph (e.g. one produced by
// the fixtures package) in a Session, without going through
// NewGraphFromInput a second time.
func NewFromGraph(g *core.Graph, areaInputs []areas.InputArea, logger *logrus.Entry) *Session {
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}
	s := &Session{
		original: g.Clone(),
		graph:    g,
		areas:    areas.Build(areaInputs),
		logger:   logger,
	}
	s.recomputeFaces()
	return s
}

// Graph returns the current, live graph. Callers must not retain
// pointers into it across a command; ids are the only stable handle.
func (s *Session) Graph() *core.Graph { return s.graph }

// Original returns the immutable ingested graph, unaffected by any
// command.
func (s *Session) Original() *core.Graph { return s.original }

// Faces returns the face decomposition produced by the most recent
// command (or by ingest, if no command has run yet). Valid only until
// the next mutating call.
func (s *Session) Faces() []*faces.Face { return s.faces }

// CommandLog returns the description of every command applied so far,
// oldest first, for diagnostics.
func (s *Session) CommandLog() []string {
	out := make([]string, len(s.log))
	for i, e := range s.log {
		out[i] = e.desc
	}
	return out
}

func (s *Session) recomputeFaces() {
	s.faces = faces.Decompose(s.graph, s.areas)
	s.logger.WithFields(logrus.Fields{
		"edges": len(s.graph.Edges),
		"faces": len(s.faces),
	}).Debug("session: recomputed faces")
}

func (s *Session) faceByID(id faces.FaceID) (*faces.Face, bool) {
	for _, f := range s.faces {
		if f.ID == id {
			return f, true
		}
	}
	return nil, false
}

func (s *Session) record(desc string, apply func(g *core.Graph)) {
	s.log = append(s.log, logEntry{desc: desc, apply: apply})
	s.recomputeFaces()
	s.logger.WithField("command", desc).Info("session: applied command")
}

// RemoveEdge deletes id, sweeping either endpoint left empty.
func (s *Session) RemoveEdge(id core.EdgeID) {
	apply := func(g *core.Graph) { commands.RemoveEdge(g, id) }
	apply(s.graph)
	s.record("remove_edge", apply)
}

// RemoveAllServiceRoads removes every service-road edge in one pass
// and returns how many were removed. Idempotent: applying it twice in
// a row removes 0 the second time.
func (s *Session) RemoveAllServiceRoads() int {
	var n int
	apply := func(g *core.Graph) { n = commands.RemoveAllServiceRoads(g) }
	apply(s.graph)
	s.record("remove_all_service_roads", apply)
	return n
}

// RemoveAllSidepaths absorbs every SidepathArtifact face's nonmotorized
// boundary into its parallel road edges in one pass.
func (s *Session) RemoveAllSidepaths() int {
	var n int
	apply := func(g *core.Graph) {
		fs := faces.Decompose(g, s.areas)
		n = commands.RemoveAllSidepaths(g, fs)
	}
	apply(s.graph)
	s.record("remove_all_sidepaths", apply)
	return n
}

// CollapseDegenerateIntersection collapses the two edges at a
// degree-two intersection into one, returning false with a
// DetectionFailure reason if the precondition doesn't hold (a
// precondition failure, per spec.md §7 — silently no-op, nothing is
// logged).
func (s *Session) CollapseDegenerateIntersection(id core.IntersectionID) (bool, commands.DetectionFailure) {
	var ok bool
	var reason commands.DetectionFailure
	apply := func(g *core.Graph) { ok, reason = commands.CollapseDegenerateIntersection(g, id) }
	apply(s.graph)
	if !ok {
		return false, reason
	}
	s.record("collapse_degenerate_intersection", apply)
	return true, ""
}

// CollapseAllDegenerateIntersections repeatedly finds a degree-two
// intersection and collapses it, until no unit application succeeds.
// Each round rescans from scratch, so an intersection whose edges
// can't merge is skipped rather than retried forever — the monotonic
// progress spec.md §5 requires for batch-fixer termination.
func (s *Session) CollapseAllDegenerateIntersections() int {
	count := 0
	for {
		applied := false
		for id, i := range s.graph.Intersections {
			if len(i.Edges) != 2 || i.Edges[0] == i.Edges[1] {
				continue
			}
			if ok, _ := s.CollapseDegenerateIntersection(id); ok {
				count++
				applied = true
				break
			}
		}
		if !applied {
			break
		}
	}
	return count
}

// CollapseEdge collapses e into a synthetic midpoint intersection,
// following the dog-leg trim-and-stub execution if commands.IsDogLeg
// reports e as one, or a
// plain extension otherwise. Reports false if id no longer names a
// live edge.
func (s *Session) CollapseEdge(id core.EdgeID) bool {
	if _, ok := s.graph.Edges[id]; !ok {
		return false
	}
	apply := func(g *core.Graph) {
		if e, ok := g.Edges[id]; ok {
			commands.CollapseEdge(g, e)
		}
	}
	apply(s.graph)
	s.record("collapse_edge", apply)
	return true
}

// FixAllDogLegs repeatedly finds a dog-leg edge and collapses it,
// until none remain. Each collapse always removes the short edge, so
// the live edge count strictly decreases every round — termination is
// immediate.
func (s *Session) FixAllDogLegs() int {
	count := 0
	for {
		var target core.EdgeID
		found := false
		for id, e := range s.graph.Edges {
			if commands.IsDogLeg(s.graph, e) {
				target = id
				found = true
				break
			}
		}
		if !found {
			break
		}
		s.CollapseEdge(target)
		count++
	}
	return count
}

// CollapseToCentroid collapses the face identified by id (valid only
// against the Faces() most recently returned) to its centroid.
// Reports false if id doesn't name a current face.
func (s *Session) CollapseToCentroid(id faces.FaceID) bool {
	face, ok := s.faceByID(id)
	if !ok {
		return false
	}
	faceCopy := *face
	apply := func(g *core.Graph) { commands.CollapseToCentroid(g, &faceCopy) }
	apply(s.graph)
	s.record("collapse_to_centroid", apply)
	return true
}

// CollapseDualCarriageway collapses the dual-carriageway group bounding
// the face identified by id into a single averaged centerline.
func (s *Session) CollapseDualCarriageway(id faces.FaceID) (bool, commands.DetectionFailure) {
	face, ok := s.faceByID(id)
	if !ok {
		return false, commands.DetectionFailure("unknown face id")
	}
	return s.collapseDualCarriageway(face)
}

func (s *Session) collapseDualCarriageway(face *faces.Face) (bool, commands.DetectionFailure) {
	faceCopy := *face
	var ok bool
	var reason commands.DetectionFailure
	apply := func(g *core.Graph) { ok, reason = commands.CollapseDualCarriageway(g, &faceCopy) }
	apply(s.graph)
	if !ok {
		return false, reason
	}
	s.record("collapse_dual_carriageway", apply)
	return true, ""
}

// FixAllDualCarriageways repeatedly finds a RoadArtifact face whose
// boundary collapses as a dual carriageway and collapses it, until no
// remaining RoadArtifact face qualifies.
func (s *Session) FixAllDualCarriageways() int {
	count := 0
	for {
		applied := false
		for _, f := range s.faces {
			if f.Kind != faces.RoadArtifact {
				continue
			}
			if ok, _ := s.collapseDualCarriageway(f); ok {
				count++
				applied = true
				break
			}
		}
		if !applied {
			break
		}
	}
	return count
}

// Undo clones the original graph, pops the last logged command, and
// replays the remaining prefix, matching spec.md §4.6's Undo
// definition exactly. Returns ErrNothingToUndo if the log is empty.
func (s *Session) Undo() error {
	if len(s.log) == 0 {
		return ErrNothingToUndo
	}
	prefix := s.log[:len(s.log)-1]
	s.graph = s.original.Clone()
	for _, e := range prefix {
		e.apply(s.graph)
	}
	s.log = append([]logEntry(nil), prefix...)
	s.recomputeFaces()
	s.logger.Info("session: undo")
	return nil
}
