// Package readout converts the live graph into the GeoJSON feature
// stream spec.md §4.7 describes: per-edge, per-intersection, and
// per-face features carrying derived attributes, plus a road-width
// probe and a small ad hoc debug overlay builder.
//
// Grounded on original_source/backend/src/lib.rs's get_ways/get_faces
// (feature conversion), width.rs (the road-width probe), and
// debugger.rs (the overlay builder).
package readout
