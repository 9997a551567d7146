package readout

import (
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"

	"github.com/dabreegster/road-bundler/core"
	"github.com/dabreegster/road-bundler/faces"
	"github.com/dabreegster/road-bundler/geometry"
)

// EdgeFeature converts a live edge into a GeoJSON feature carrying the
// derived attributes spec.md §4.7 names: kind, simple_kind, length,
// bearing, and associated_originals (every OriginalEdgeID attributed to
// the edge across all of its EdgeKind's buckets, sorted for
// determinism).
func EdgeFeature(e *core.Edge) *geojson.Feature {
	f := geojson.NewFeature(e.Linestring)
	f.ID = uint64(e.ID)
	f.Properties["kind"] = edgeKindName(e.Kind)
	f.Properties["simple_kind"] = e.Kind.ToSimple()
	f.Properties["length"] = planar.Length(e.Linestring)
	f.Properties["bearing"] = geometry.LinestringBearing(e.Linestring)
	f.Properties["associated_originals"] = core.SortedOriginalEdgeIDs(associatedOriginals(e.Kind))
	return f
}

// EdgeFeatures converts every live edge in g into a feature collection.
func EdgeFeatures(g *core.Graph) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, e := range g.Edges {
		fc.Append(EdgeFeature(e))
	}
	return fc
}

// IntersectionFeature converts a live intersection into a GeoJSON
// point feature.
func IntersectionFeature(i *core.Intersection) *geojson.Feature {
	f := geojson.NewFeature(i.Point)
	f.ID = uint64(i.ID)
	return f
}

// IntersectionFeatures converts every live intersection in g into a
// feature collection.
func IntersectionFeatures(g *core.Graph) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, i := range g.Intersections {
		fc.Append(IntersectionFeature(i))
	}
	return fc
}

// FaceFeature converts a decomposed face into a GeoJSON polygon
// feature. dcReason and sidepathReason are the
// attempted_dc_detect_result / attempted_sidepath_detect_result
// spec.md §4.7 names — the empty string if the corresponding command
// was never attempted against this face, or a commands.DetectionFailure
// string if it was and declined. readout never re-runs detection
// itself; callers that actually invoked CollapseDualCarriageway or
// RemoveAllSidepaths against this face pass the result through.
// overlay, if non-nil, is embedded as the face's debug_overlay.
func FaceFeature(face *faces.Face, dcReason, sidepathReason string, overlay *geojson.FeatureCollection) *geojson.Feature {
	f := geojson.NewFeature(face.Polygon)
	f.ID = int(face.ID)
	f.Properties["kind"] = face.Kind.String()
	f.Properties["attempted_dc_detect_result"] = dcReason
	f.Properties["attempted_sidepath_detect_result"] = sidepathReason
	if overlay != nil {
		f.Properties["debug_overlay"] = overlay
	}
	return f
}

func edgeKindName(k core.EdgeKind) string {
	if k.Motorized != nil {
		return "motorized"
	}
	return "nonmotorized"
}

func associatedOriginals(k core.EdgeKind) map[core.OriginalEdgeID]struct{} {
	out := map[core.OriginalEdgeID]struct{}{}
	if k.Motorized != nil {
		for id := range k.Motorized.Roads {
			out[id] = struct{}{}
		}
		for id := range k.Motorized.ServiceRoads {
			out[id] = struct{}{}
		}
		for id := range k.Motorized.Sidepaths {
			out[id] = struct{}{}
		}
		for id := range k.Motorized.Connectors {
			out[id] = struct{}{}
		}
	}
	if k.Nonmotorized != nil {
		for id := range k.Nonmotorized.Edges {
			out[id] = struct{}{}
		}
	}
	return out
}
