package core

import "errors"

// Sentinel errors for core graph construction. Runtime invariant
// violations (removing an edge or intersection that doesn't exist,
// removing a non-empty intersection via the empty-only primitive) are
// not sentinels: they panic, per spec §7 — they indicate a bug in a
// primitive, not a user-visible input condition.
var (
	// ErrDanglingEndpoint indicates an input edge referenced an
	// intersection id that wasn't declared.
	ErrDanglingEndpoint = errors.New("core: edge references unknown intersection")

	// ErrShortLinestring indicates an edge's linestring had fewer than
	// two points.
	ErrShortLinestring = errors.New("core: linestring must have at least 2 points")

	// ErrDuplicateEdgeID indicates two input edges shared an id.
	ErrDuplicateEdgeID = errors.New("core: duplicate edge id")

	// ErrDuplicateIntersectionID indicates two input intersections shared an id.
	ErrDuplicateIntersectionID = errors.New("core: duplicate intersection id")
)
