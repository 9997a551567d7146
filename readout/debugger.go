package readout

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Debugger accumulates ad hoc labeled line and point features into one
// feature collection, meant to be rendered as a single overlay layer.
//
// Grounded directly on original_source/backend/src/debugger.rs's
// Debugger (mercator + Vec<Feature> there; orb/geojson's
// FeatureCollection fills the role the Rust geojson crate's GeoJson
// value plays there).
type Debugger struct {
	fc *geojson.FeatureCollection
}

// NewDebugger returns an empty Debugger.
func NewDebugger() *Debugger {
	return &Debugger{fc: geojson.NewFeatureCollection()}
}

// Line appends a labeled line feature.
func (d *Debugger) Line(ls orb.LineString, label, color string, width int, opacity float64) {
	f := geojson.NewFeature(ls)
	f.Properties["label"] = label
	f.Properties["color"] = color
	f.Properties["width"] = width
	f.Properties["opacity"] = opacity
	d.fc.Append(f)
}

// Circle appends a labeled point feature.
func (d *Debugger) Circle(pt orb.Point, label, color string, radius int) {
	f := geojson.NewFeature(pt)
	f.Properties["label"] = label
	f.Properties["color"] = color
	f.Properties["radius"] = radius
	d.fc.Append(f)
}

// Build returns the accumulated feature collection.
func (d *Debugger) Build() *geojson.FeatureCollection {
	return d.fc
}
