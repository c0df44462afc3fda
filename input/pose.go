package input

import "math"

// DefaultPoseMargin is the hysteresis band around each lane boundary
const DefaultPoseMargin = 0.04

// Lane boundaries on the normalized horizontal axis
var poseBounds = [...]float64{1.0 / 3.0, 2.0 / 3.0}

var poseLanes = [...]string{"left", "center", "right"}

// PoseClassifier turns a normalized body x coordinate into a lane name
// The frame is split into thirds; crossing into a neighbouring lane requires
// moving Margin past the shared boundary. Not safe for concurrent use
type PoseClassifier struct {
	Mirror bool    // Selfie cameras report x flipped
	Margin float64 // Hysteresis half-width, 0 disables

	last int
	init bool
}

// NewPoseClassifier creates a classifier with the default margin
func NewPoseClassifier(mirror bool) *PoseClassifier {
	return &PoseClassifier{Mirror: mirror, Margin: DefaultPoseMargin}
}

// Classify maps x in [0,1] to a lane; out-of-range input is rejected
func (p *PoseClassifier) Classify(x float64) (string, bool) {
	if !(x >= 0 && x <= 1) {
		return "", false
	}
	if p.Mirror {
		x = 1 - x
	}

	lane := rawLane(x)
	if p.init && p.holds(lane, x) {
		lane = p.last
	}

	p.last = lane
	p.init = true
	return poseLanes[lane], true
}

// Reset forgets the previous lane
func (p *PoseClassifier) Reset() {
	p.init = false
}

func rawLane(x float64) int {
	switch {
	case x < poseBounds[0]:
		return 0
	case x < poseBounds[1]:
		return 1
	default:
		return 2
	}
}

// holds reports whether x is still within Margin of the boundary between
// the previous lane and its neighbour lane
func (p *PoseClassifier) holds(lane int, x float64) bool {
	if p.Margin <= 0 || lane == p.last {
		return false
	}
	if lane-p.last != 1 && p.last-lane != 1 {
		return false
	}
	boundary := poseBounds[min(lane, p.last)]
	return math.Abs(x-boundary) < p.Margin
}
