// Package roadbundler simplifies a planarised street network into a
// centerline graph: dual carriageways collapse to one averaged edge,
// sidewalks and cycleways traced alongside a road are absorbed into
// it, dog-leg connectors and degenerate two-edge intersections merge
// away, and service roads/parking aisles are dropped.
//
// It is a planar graph rewriting engine, not an ingestion or rendering
// tool. A caller builds an initial graph plus an area index (see
// core.NewGraphFromInput and areas.Build), wraps them in a
// session.Session, and applies commands from the commands package —
// either one at a time or via the session's batch fixers
// (FixAllDualCarriageways, FixAllDogLegs,
// CollapseAllDegenerateIntersections, RemoveAllSidepaths,
// RemoveAllServiceRoads). Every command is replayable: Session.Undo
// clones the original graph and replays the logged prefix.
//
// The package layout mirrors the pipeline:
//
//	geometry/ — bearing, step-along-line, closest-point, averaging,
//	            polygon slicing near a reference linestring
//	areas/    — rtree-indexed building and other-area polygons/centroids
//	core/     — the mutable planar graph: Intersection, Edge, EdgeKind
//	faces/    — face decomposition and classification
//	commands/ — the rewrite library operating on core+faces
//	session/  — owns graph+faces+log, exposes commands and undo
//	readout/  — GeoJSON feature adapters for a consumer
//	config/   — the numeric tolerances the kernel and commands use
//	fixtures/ — deterministic test graphs for the scenarios above
//	cmd/road-bundlerctl/ — a CLI driving fixture scenarios end to end
package roadbundler
