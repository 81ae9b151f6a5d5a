package paopao

import "math"

// Hand landmark indices following the MediaPipe hand-landmarker convention.
// Only a subset is named; the classifier works from tips and MCP knuckles.
const (
	Wrist        = 0
	ThumbCMC     = 1
	ThumbMCP     = 2
	ThumbIP      = 3
	ThumbTip     = 4
	IndexMCP     = 5
	IndexPIP     = 6
	IndexDIP     = 7
	IndexTip     = 8
	MiddleMCP    = 9
	MiddlePIP    = 10
	MiddleDIP    = 11
	MiddleTip    = 12
	RingMCP      = 13
	RingPIP      = 14
	RingDIP      = 15
	RingTip      = 16
	PinkyMCP     = 17
	PinkyPIP     = 18
	PinkyDIP     = 19
	PinkyTip     = 20
	NumLandmarks = 21
)

// HandSample is one raw hand observation for a tick: 21 landmarks in
// normalized [0,1] space plus the detector's handedness label.
type HandSample struct {
	Points     []Vec2
	Handedness string // "Left" or "Right"
}

// Valid reports whether the sample can be used this tick. Malformed samples
// (wrong landmark count, non-finite coordinates) are dropped rather than
// propagated; the caller keeps its previous smoothing state.
func (s HandSample) Valid() bool {
	if len(s.Points) != NumLandmarks {
		return false
	}
	for _, p := range s.Points {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) ||
			math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			return false
		}
	}
	return true
}

// toScreen scales normalized landmarks into world-space pixels.
func (s HandSample) toScreen(w, h float64) [NumLandmarks]Vec2 {
	var out [NumLandmarks]Vec2
	for i, p := range s.Points {
		out[i] = Vec2{X: p.X * w, Y: p.Y * h}
	}
	return out
}
