package commands

// DetectionFailure is a non-fatal reason a detection step declined to
// find a target; CollapseDualCarriageway and
// CollapseDegenerateIntersection return one. It is
// never an error in the Go sense of something a caller must check;
// callers that want to surface it do so, and batch fixers just treat
// a non-empty reason as "move on to the next candidate".
type DetectionFailure string

const (
	reasonNotRoadArtifact   DetectionFailure = "not a road artifact"
	reasonNoOneways         DetectionFailure = "no oneways"
	reasonNotEnoughEdges    DetectionFailure = "not enough edges"
	reasonSidesDidntCoalesce DetectionFailure = "sides didn't coalesce"
	reasonAverageTooFewSamples DetectionFailure = "average needs at least 2 samples"
	reasonNotDegreeTwo      DetectionFailure = "intersection is not degree two"
	reasonKindsDontMerge    DetectionFailure = "edge kinds cannot merge"
)
