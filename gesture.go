package paopao

// Gesture is a discrete hand pose.
type Gesture uint8

const (
	GestureNone Gesture = iota
	GesturePinch
	GestureFist
	GesturePoint
	GestureOpenHand
)

// String returns the gesture's name.
func (g Gesture) String() string {
	switch g {
	case GesturePinch:
		return "pinch"
	case GestureFist:
		return "fist"
	case GesturePoint:
		return "point"
	case GestureOpenHand:
		return "open_hand"
	default:
		return "none"
	}
}

// Classification thresholds in screen-space pixels.
const (
	pinchThreshold  = 40.0 // thumb tip to index tip
	curlThreshold   = 55.0 // finger tip to its MCP
	extendThreshold = 70.0 // index tip to its MCP for a point
	historyCap      = 5    // majority-vote window
)

// fingers pairs each non-thumb fingertip with its MCP knuckle.
var fingers = [4][2]int{
	{IndexTip, IndexMCP},
	{MiddleTip, MiddleMCP},
	{RingTip, RingMCP},
	{PinkyTip, PinkyMCP},
}

// ClassifyGesture maps a screen-space landmark set to a raw gesture using
// geometric heuristics. It is a pure function: identical landmarks always
// produce identical results. Priority order matters — pinch wins over fist,
// fist over point, and open hand is the fallback.
func ClassifyGesture(lm [NumLandmarks]Vec2) Gesture {
	pinchDist := dist(lm[ThumbTip], lm[IndexTip])
	if pinchDist < pinchThreshold {
		return GesturePinch
	}

	curled := 0
	for _, f := range fingers {
		if dist(lm[f[0]], lm[f[1]]) < curlThreshold {
			curled++
		}
	}
	indexExt := dist(lm[IndexTip], lm[IndexMCP])
	if curled >= 3 && indexExt <= extendThreshold {
		// A strongly extended index with the rest curled is a point, not
		// a fist, even though three fingers are curled.
		return GestureFist
	}

	middleExt := dist(lm[MiddleTip], lm[MiddleMCP])
	if indexExt > extendThreshold &&
		(middleExt < curlThreshold || indexExt > middleExt*1.4) {
		return GesturePoint
	}

	return GestureOpenHand
}

// gestureHistory is a fixed-capacity ring of raw classifications used to
// debounce the per-frame output. Acting on raw classifications causes
// visible flicker between adjacent poses (point/open-hand toggling as
// fingers partially curl), so the stable gesture is the ring's majority.
type gestureHistory struct {
	ring   [historyCap]Gesture
	n      int // filled slots, up to historyCap
	head   int // next write position
	stable Gesture
}

// push records a raw classification and returns the updated stable gesture:
// the most frequent value in the window, ties broken by keeping the
// previous stable gesture if it is among the tied values, else the
// first-seen of them.
func (h *gestureHistory) push(raw Gesture) Gesture {
	h.ring[h.head] = raw
	h.head = (h.head + 1) % historyCap
	if h.n < historyCap {
		h.n++
	}

	var counts [5]int
	for i := 0; i < h.n; i++ {
		counts[h.ring[i]]++
	}

	best := 0
	for _, c := range counts {
		if c > best {
			best = c
		}
	}

	if counts[h.stable] == best {
		return h.stable
	}
	// Oldest-first scan so the first-seen tied value wins.
	for i := 0; i < h.n; i++ {
		idx := i
		if h.n == historyCap {
			idx = (h.head + i) % historyCap
		}
		if counts[h.ring[idx]] == best {
			h.stable = h.ring[idx]
			break
		}
	}
	return h.stable
}
