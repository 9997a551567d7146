package geometry

import (
	"math"

	"github.com/paulmach/orb"
)

// Bearing returns the compass bearing in degrees from origin to
// destination: North is 0°, East is 90°, South is 180°, West is 270°,
// increasing clockwise. Note the argument order to Atan2 — the angle
// is measured clockwise from the +y (north) axis, not the usual
// counterclockwise-from-+x math convention, so dx and dy are swapped
// relative to a textbook atan2(y, x) call.
func Bearing(origin, destination orb.Point) float64 {
	dx := destination[0] - origin[0]
	dy := destination[1] - origin[1]
	deg := math.Atan2(dx, dy) * 180 / math.Pi
	return math.Mod(deg+360, 360)
}

// LinestringBearing returns the bearing from a linestring's first
// point to its last point.
func LinestringBearing(ls orb.LineString) float64 {
	return Bearing(ls[0], ls[len(ls)-1])
}

// AngleDiff returns the smallest absolute difference between two
// bearings in degrees, in [0, 180].
func AngleDiff(a, b float64) float64 {
	d := math.Mod(math.Abs(a-b), 360)
	if d > 180 {
		d = 360 - d
	}
	return d
}

// AreParallel reports whether two bearings are within tolerance
// degrees of pointing the same direction, treating a bearing and its
// exact reverse (180° apart) as parallel too — two linestrings that
// run alongside each other are frequently digitized in opposite
// directions.
func AreParallel(a, b, tolerance float64) bool {
	diff := AngleDiff(a, b)
	return diff <= tolerance || math.Abs(diff-180) <= tolerance
}
