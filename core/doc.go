// Package core defines the mutable planar graph at the heart of the
// road-bundler engine: Intersection, Edge, EdgeKind, OriginalEdge, and
// the Graph arena that owns them.
//
// Graph is an arena of handles, not a pointer graph: every cross
// reference (an Edge's src/dst, an Intersection's edge list) is an
// opaque id (IntersectionID, EdgeID), never a pointer. This makes
// cloning the graph for undo, and replaying a command log against a
// fresh clone, an O(V+E) copy instead of a deep-pointer-graph
// traversal.
//
// The graph is not safe for concurrent use. Commands run to
// completion synchronously and the session that owns the graph is the
// sole mutator; see the session package.
//
// This file declares nothing itself; see types.go, kind.go,
// methods_*.go, errors.go.
package core
