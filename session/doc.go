// Package session owns the single mutable Graph a user edits: the
// immutable original snapshot, the current graph, the areas index, the
// replayable command log, and the last face decomposition. It wraps
// the commands package's primitive rewrites with face bookkeeping,
// logging, and undo, matching spec.md §2 item 7 and §4.6's session-level
// batch fixers and undo.
//
// Grounded on original_source/backend/src/lib.rs's RoadBundler struct
// (graph + faces owned together, recomputed after each edit) generalized
// to the fuller command-log/undo/batch-fixer surface spec.md §6
// describes, since lib.rs itself only exposes getWays/getFaces.
package session
