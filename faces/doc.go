// Package faces decomposes a graph's boundary polygon into the planar
// faces cut out by its live edges, and classifies each face by what it
// contains: a building-anchored urban block, some other area, a
// sidepath artifact, or a plain road-bounded gap.
//
// Faces are derived, not stored on the graph: any graph mutation
// invalidates the previous decomposition, and callers (the session
// package) recompute it after every command.
package faces
