package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Tolerances collects the numeric thresholds spec.md §9 documents as
// "explicit, design choices, not accidents": the along-polygon
// midpoint distance, the dog-leg length/bearing cutoffs, the
// parallel-sidepath and dual-carriageway bearing cutoffs, the
// average-line step, and the road-width probe step/reach.
type Tolerances struct {
	// AlongPolygonMidpointMeters is the midpoint-distance cutoff
	// faces.attachInternalEdges (faces/decompose.go) passes to
	// geometry.LinestringAlongPolygon. faces reads it from Default
	// directly and has no ApplyTolerances function, so a value loaded
	// by Load does not reach face decomposition.
	AlongPolygonMidpointMeters float64

	// DogLegMaxLengthMeters and DogLegBearingCutoffDegrees bound
	// commands.IsDogLeg (commands/dogleg.go).
	DogLegMaxLengthMeters      float64
	DogLegBearingCutoffDegrees float64

	// SidepathParallelToleranceDegrees bounds commands.roughlyParallel
	// as used by RemoveAllSidepaths (commands/sidepaths.go).
	SidepathParallelToleranceDegrees float64

	// DualCarriagewayBearingGapDegrees is the sorted-bearing bisection
	// gap commands.classifyBearings uses (commands/bearings.go).
	DualCarriagewayBearingGapDegrees float64

	// AverageLineStepMeters is geometry.AverageLinestrings' sampling
	// step (geometry/average.go).
	AverageLineStepMeters float64

	// WidthProbeStepMeters and WidthProbeReachMeters parameterize
	// readout.EstimateRoadWidth's perpendicular-ray probe
	// (readout/width.go).
	WidthProbeStepMeters  float64
	WidthProbeReachMeters float64
}

// Default holds the literal values spec.md §9 names. The commands,
// geometry and readout packages initialize their own package-level
// variables from Default fields, and faces reads
// AlongPolygonMidpointMeters from Default directly; none of them
// repeats the literal, so this struct is the single place that
// documents them.
var Default = Tolerances{
	AlongPolygonMidpointMeters:       1.5,
	DogLegMaxLengthMeters:            5.0,
	DogLegBearingCutoffDegrees:       30.0,
	SidepathParallelToleranceDegrees: 30.0,
	DualCarriagewayBearingGapDegrees: 45.0,
	AverageLineStepMeters:            10.0,
	WidthProbeStepMeters:             10.0,
	WidthProbeReachMeters:            50.0,
}

// Load reads an optional YAML tolerances file (and ROADBUNDLER_*
// environment variable overrides) via viper, starting from Default
// for any key the file/environment doesn't set. An empty path loads
// environment overrides only. A missing file at a non-empty path is
// an error; a present-but-unreadable/malformed one is too.
func Load(path string) (Tolerances, error) {
	v := viper.New()
	v.SetEnvPrefix("ROADBUNDLER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v, Default)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Tolerances{}, fmt.Errorf("config: reading %s: %w", path, err)
		}
	}

	out := Default
	if err := v.Unmarshal(&out); err != nil {
		return Tolerances{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	return out, nil
}

func setDefaults(v *viper.Viper, t Tolerances) {
	v.SetDefault("alongpolygonmidpointmeters", t.AlongPolygonMidpointMeters)
	v.SetDefault("doglegmaxlengthmeters", t.DogLegMaxLengthMeters)
	v.SetDefault("doglegbearingcutoffdegrees", t.DogLegBearingCutoffDegrees)
	v.SetDefault("sidepathparalleltolerancedegrees", t.SidepathParallelToleranceDegrees)
	v.SetDefault("dualcarriagewaybearinggapdegrees", t.DualCarriagewayBearingGapDegrees)
	v.SetDefault("averagelinestepmeters", t.AverageLineStepMeters)
	v.SetDefault("widthprobestepmeters", t.WidthProbeStepMeters)
	v.SetDefault("widthprobereachmeters", t.WidthProbeReachMeters)
}
