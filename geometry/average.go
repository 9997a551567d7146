package geometry

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/dabreegster/road-bundler/config"
)

// AverageStepSize is the sampling interval AverageLinestrings walks
// ls1 at, per spec.md §9. Initialized from config.Default so a
// tolerances override file changes it everywhere it's consulted.
var AverageStepSize = config.Default.AverageLineStepMeters

// AverageLinestrings walks ls1 at AverageStepSize, finds the closest
// point on ls2 to each sample, and averages the pair. ls1 and ls2 are
// expected to run roughly alongside each other (a dual carriageway's
// two directions), possibly in opposite digitization order — the
// closest-point search doesn't care about direction.
//
// ls1 is always sampled at its start and its end, whatever
// AverageStepSize is. Returns false if fewer than two usable points
// were produced (ls2 degenerate at every sample, or ls1 of zero
// length).
func AverageLinestrings(ls1, ls2 orb.LineString) (orb.LineString, bool) {
	length := planar.Length(ls1)

	var pts orb.LineString
	for distance := 0.0; ; {
		pt1 := PointAtDistance(ls1, distance)
		r := ClosestPointOnLineString(ls2, pt1)
		if r.Kind != ClosestIndeterminate {
			pts = append(pts, orb.Point{
				(pt1[0] + r.Point[0]) / 2,
				(pt1[1] + r.Point[1]) / 2,
			})
		}

		if distance == length {
			break
		}
		distance += AverageStepSize
		if distance > length {
			distance = length
		}
	}

	if len(pts) < 2 {
		return nil, false
	}
	return pts, true
}

// ApplyTolerances overwrites this package's tolerance variables from t,
// so a config.Load override reaches AverageLinestrings instead of only
// the compiled-in config.Default.
func ApplyTolerances(t config.Tolerances) {
	AverageStepSize = t.AverageLineStepMeters
}
