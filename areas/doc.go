// Package areas indexes building, park, and water footprints so the
// face classifier can cheaply ask "does this face contain a building
// centroid" without a linear scan over every area in the region.
//
// Grounded on the original source's areas.rs: two rtrees per area
// group (polygons and centroids), bulk-loaded once at ingest.
package areas
