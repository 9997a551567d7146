// Package commands is the rewrite library: the atomic, face- or
// element-scoped transformations that consolidate the digitisation
// artifacts of a street network into a cleaner centerline graph.
//
// Commands add and remove edges and intersections through a
// *core.Graph's primitives (core.CreateEdge, core.RemoveEdge,
// core.ReplaceIntersection, ...). Two write fields of a live edge in
// place: CollapseEdge reassigns the side roads' Linestring, and
// RemoveAllSidepaths adds ids to a road's Sidepaths and Connectors
// sets. A command never
// recomputes face decomposition itself — that is the caller's job
// (see the session package), so a batch of commands can run back to
// back before paying for a re-decomposition.
//
// Two failure shapes appear throughout, matching the taxonomy of
// spec §7: a precondition failure is a silent no-op (nothing to do,
// not a bug), while a detection failure is returned as a reason
// string for a caller that wants to report it as diagnostic output
// without aborting anything.
package commands
