// Package geometry is the planar geometry kernel the rewrite commands
// build on: bearing, step-along-line sampling, closest-point
// projection, linestring averaging, boundary slicing, and fraction
// splitting.
//
// Everything here operates in the same metric, planar frame as
// core.Graph — no spherical corrections, no reprojection. Distances
// and lengths are plain Euclidean, via orb/planar.
package geometry
