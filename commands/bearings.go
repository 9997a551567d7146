package commands

import (
	"sort"

	"github.com/dabreegster/road-bundler/config"
	"github.com/dabreegster/road-bundler/geometry"
)

// dualCarriagewayBearingGap is the bisection cutoff from spec.md §9:
// walking sorted bearings, a gap bigger than this starts a new class.
var dualCarriagewayBearingGap = config.Default.DualCarriagewayBearingGapDegrees

// sidepathParallelTolerance is the ±30° (mod 180°, anti-parallel
// counts) cutoff a road edge's bearing must fall within one of a
// sidepath's bearings to be considered running alongside it.
var sidepathParallelTolerance = config.Default.SidepathParallelToleranceDegrees

// classifyBearings bisects a set of bearings into two classes by
// sorting them and flipping the current class every time the gap to
// the previous bearing (wrapping at 360°) exceeds gap degrees. The
// two directions of a dual carriageway differ by roughly 180°, and
// edges on the same side cluster tightly, so this robustly separates
// them; the labels 0/1 are otherwise arbitrary.
//
// Grounded on spec.md §4.6 step 2 and the worked examples in §8.1.
func classifyBearings(bearings []float64, gap float64) []int {
	n := len(bearings)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool { return bearings[order[i]] < bearings[order[j]] })

	classes := make([]int, n)
	current := 0
	for i, idx := range order {
		if i > 0 {
			prev := bearings[order[i-1]]
			d := bearings[idx] - prev
			if d < 0 {
				d += 360
			}
			if d > gap {
				current = 1 - current
			}
		}
		classes[idx] = current
	}
	return classes
}

// roughlyParallel reports whether two bearings point the same
// direction, within tolerance degrees, counting an exact reverse
// (anti-parallel, 180° apart) as parallel too.
func roughlyParallel(a, b, tolerance float64) bool {
	return geometry.AreParallel(a, b, tolerance)
}

// ApplyTolerances overwrites this package's tolerance variables from t,
// so a config.Load override actually reaches IsDogLeg, classifyBearings
// and roughlyParallel instead of only the compiled-in config.Default.
func ApplyTolerances(t config.Tolerances) {
	DogLegMaxLength = t.DogLegMaxLengthMeters
	DogLegBearingCutoff = t.DogLegBearingCutoffDegrees
	dualCarriagewayBearingGap = t.DualCarriagewayBearingGapDegrees
	sidepathParallelTolerance = t.SidepathParallelToleranceDegrees
}
