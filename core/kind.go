package core

// EdgeKind is the tagged variant from spec.md §3: an edge is either
// Motorized (with four original-edge buckets) or Nonmotorized (one
// bucket). There is no third state and no subclassing — IsMotorized
// is a predicate on which pointer is non-nil, never a type switch.
type EdgeKind struct {
	Motorized    *MotorizedKind
	Nonmotorized *NonmotorizedKind
}

// MotorizedKind buckets the original edges that make up a consolidated
// motorized edge. roads is the dominant identity; the other three
// buckets accumulate associated service roads, absorbed sidepaths, and
// their connectors as commands consolidate the graph.
type MotorizedKind struct {
	Roads        map[OriginalEdgeID]struct{}
	ServiceRoads map[OriginalEdgeID]struct{}
	Sidepaths    map[OriginalEdgeID]struct{}
	Connectors   map[OriginalEdgeID]struct{}
}

// NonmotorizedKind buckets original footway/cycleway edges that stand
// alone (not yet merged into a motorized edge's sidepaths).
type NonmotorizedKind struct {
	Edges map[OriginalEdgeID]struct{}
}

func newMotorized() *MotorizedKind {
	return &MotorizedKind{
		Roads:        map[OriginalEdgeID]struct{}{},
		ServiceRoads: map[OriginalEdgeID]struct{}{},
		Sidepaths:    map[OriginalEdgeID]struct{}{},
		Connectors:   map[OriginalEdgeID]struct{}{},
	}
}

// nonmotorizedHighwayValues are the highway tag values classified as
// Nonmotorized at ingest time. spec.md §9's open question flags
// highway=pedestrian as inconsistently handled across variants of the
// original source; this repo picks the inclusive set, per the spec's
// own resolution.
var nonmotorizedHighwayValues = map[string]bool{
	"footway":    true,
	"cycleway":   true,
	"elevator":   true,
	"path":       true,
	"pedestrian": true,
	"platform":   true,
	"steps":      true,
	"track":      true,
}

// serviceHighwayValues are highway tag values classified as service
// roads (Motorized, but only the service_roads bucket populated).
var serviceHighwayValues = map[string]bool{
	"corridor": true,
	"service":  true,
}

// InitiallyClassify assigns the initial EdgeKind for a freshly ingested
// edge from its highway tag, per spec.md §4.4.
func InitiallyClassify(id OriginalEdgeID, tags map[string]string) EdgeKind {
	highway := tags["highway"]

	if nonmotorizedHighwayValues[highway] {
		return EdgeKind{Nonmotorized: &NonmotorizedKind{
			Edges: map[OriginalEdgeID]struct{}{id: {}},
		}}
	}

	m := newMotorized()
	if serviceHighwayValues[highway] {
		m.ServiceRoads[id] = struct{}{}
	} else {
		m.Roads[id] = struct{}{}
	}
	return EdgeKind{Motorized: m}
}

// Merge combines two EdgeKinds. Motorized ⊕ Motorized is a setwise
// union of all four buckets; Nonmotorized ⊕ Nonmotorized is a setwise
// union of the one bucket. Cross-variant merges are forbidden and
// return (EdgeKind{}, false) — callers (CollapseDegenerateIntersection)
// treat that as a precondition failure, a silent no-op per spec.md §7.
func (k EdgeKind) Merge(other EdgeKind) (EdgeKind, bool) {
	if k.Motorized != nil && other.Motorized != nil {
		merged := newMotorized()
		unionInto(merged.Roads, k.Motorized.Roads, other.Motorized.Roads)
		unionInto(merged.ServiceRoads, k.Motorized.ServiceRoads, other.Motorized.ServiceRoads)
		unionInto(merged.Sidepaths, k.Motorized.Sidepaths, other.Motorized.Sidepaths)
		unionInto(merged.Connectors, k.Motorized.Connectors, other.Motorized.Connectors)
		return EdgeKind{Motorized: merged}, true
	}
	if k.Nonmotorized != nil && other.Nonmotorized != nil {
		edges := map[OriginalEdgeID]struct{}{}
		unionInto(edges, k.Nonmotorized.Edges, other.Nonmotorized.Edges)
		return EdgeKind{Nonmotorized: &NonmotorizedKind{Edges: edges}}, true
	}
	return EdgeKind{}, false
}

func unionInto(dst map[OriginalEdgeID]struct{}, srcs ...map[OriginalEdgeID]struct{}) {
	for _, src := range srcs {
		for id := range src {
			dst[id] = struct{}{}
		}
	}
}

// ToSimple classifies the edge's dominant bucket for display, per
// spec.md §4.4: the first non-empty bucket in road / service road /
// sidepath / connector order, else nonmotorized.
func (k EdgeKind) ToSimple() string {
	if k.Motorized != nil {
		m := k.Motorized
		switch {
		case len(m.Roads) > 0:
			return "road"
		case len(m.ServiceRoads) > 0:
			return "service road"
		case len(m.Sidepaths) > 0:
			return "sidepath"
		default:
			// Normally one bucket is non-empty; this is a documented
			// fallback for edges that somehow have none (original_source
			// kinds.rs has the same TODO-flagged fallback).
			return "connector"
		}
	}
	return "nonmotorized"
}

// IsServiceRoad reports whether this is a Motorized edge whose roads
// bucket is empty and service_roads bucket is not.
func (k EdgeKind) IsServiceRoad() bool {
	return k.Motorized != nil && len(k.Motorized.Roads) == 0 && len(k.Motorized.ServiceRoads) > 0
}

// IsOnewayRoad reports whether every constituent of the roads bucket
// is tagged oneway=yes. False for non-Motorized kinds; true for an
// empty roads bucket (vacuous truth is not special-cased here;
// callers that need "has edges AND all oneway" check len(Roads) too).
func (k EdgeKind) IsOnewayRoad(g *Graph) bool {
	if k.Motorized == nil {
		return false
	}
	for id := range k.Motorized.Roads {
		if !g.OriginalEdges[id].Is("oneway", "yes") {
			return false
		}
	}
	return true
}

// IsParkingAisle reports whether the roads bucket is empty and every
// constituent of the service_roads bucket is tagged
// service=parking_aisle, per spec.md §4.4's "(and no roads)" clause.
// False, not vacuously true, for an empty service_roads bucket: a
// MotorizedKind with nothing in either bucket has nothing to call a
// parking aisle.
func (k EdgeKind) IsParkingAisle(g *Graph) bool {
	if k.Motorized == nil {
		return false
	}
	if len(k.Motorized.Roads) != 0 || len(k.Motorized.ServiceRoads) == 0 {
		return false
	}
	for id := range k.Motorized.ServiceRoads {
		if !g.OriginalEdges[id].Is("service", "parking_aisle") {
			return false
		}
	}
	return true
}

// RoadName returns the road's name iff every roads constituent shares
// exactly one name tag value.
func (k EdgeKind) RoadName(g *Graph) (string, bool) {
	if k.Motorized == nil || len(k.Motorized.Roads) == 0 {
		return "", false
	}
	names := map[string]struct{}{}
	for id := range k.Motorized.Roads {
		name, ok := g.OriginalEdges[id].Tag("name")
		if !ok {
			return "", false
		}
		names[name] = struct{}{}
	}
	if len(names) != 1 {
		return "", false
	}
	for name := range names {
		return name, true
	}
	panic("unreachable")
}
