package paopao

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in a scenario script.
type scriptStep struct {
	Action  string  `json:"action"`
	Gesture string  `json:"gesture,omitempty"`
	X       float64 `json:"x,omitempty"`
	Y       float64 `json:"y,omitempty"`
	FromX   float64 `json:"fromX,omitempty"`
	FromY   float64 `json:"fromY,omitempty"`
	ToX     float64 `json:"toX,omitempty"`
	ToY     float64 `json:"toY,omitempty"`
	Frames  int     `json:"frames,omitempty"`
}

// scenarioScript is the top-level JSON structure.
type scenarioScript struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner sequences injected pointer events and synthetic hand
// gestures across frames for automated scenario runs. Call Step once per
// frame before Tick.
//
// Supported actions: "click", "drag" (fromX/fromY/toX/toY/frames), "wait"
// (frames), and "gesture" (gesture name at x/y held for frames).
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool

	gesture     Gesture
	gestureAt   Vec2
	gestureLeft int
	frame       float64 // synthetic camera clock for PushHands
}

// LoadScript parses a JSON scenario script.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var script scenarioScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse scenario script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse scenario script: no steps")
	}
	return &ScriptRunner{steps: script.Steps}, nil
}

// Done reports whether all steps have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Step advances the script by one frame, feeding the sim whatever input the
// current step calls for.
func (r *ScriptRunner) Step(s *Sim) {
	if r.done {
		return
	}
	r.frame++

	// A held gesture feeds one sample per frame until it expires.
	if r.gestureLeft > 0 {
		r.gestureLeft--
		s.PushHands(r.frame, SyntheticSample(r.gesture, r.gestureAt, s.cfg.Width, s.cfg.Height))
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(s.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "click":
		s.InjectClick(st.X, st.Y)
	case "drag":
		frames := st.Frames
		if frames < 2 {
			frames = 2
		}
		s.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, frames)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "gesture":
		frames := st.Frames
		if frames < 1 {
			frames = 1
		}
		r.gesture = gestureByName(st.Gesture)
		r.gestureAt = Vec2{X: st.X, Y: st.Y}
		r.gestureLeft = frames - 1
		s.PushHands(r.frame, SyntheticSample(r.gesture, r.gestureAt, s.cfg.Width, s.cfg.Height))
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && r.gestureLeft == 0 && len(s.injectQueue) == 0 {
		r.done = true
	}
}

// gestureByName maps script gesture names to Gesture values.
func gestureByName(name string) Gesture {
	switch name {
	case "pinch":
		return GesturePinch
	case "fist":
		return GestureFist
	case "point":
		return GesturePoint
	case "open_hand":
		return GestureOpenHand
	default:
		return GestureNone
	}
}

// SyntheticSample builds a plausible 21-landmark hand sample whose raw
// classification is the requested gesture, centered (middle MCP) at the
// given world position. Used by scripted scenarios and tests.
func SyntheticSample(g Gesture, center Vec2, w, h float64) HandSample {
	// Layout in world pixels first: knuckle row around the center, wrist
	// below, thumb off to the side.
	var lm [NumLandmarks]Vec2
	mcps := [4]Vec2{
		{center.X - 30, center.Y}, // index
		{center.X, center.Y},      // middle
		{center.X + 30, center.Y}, // ring
		{center.X + 60, center.Y}, // pinky
	}
	lm[Wrist] = Vec2{center.X, center.Y + 120}
	lm[IndexMCP], lm[MiddleMCP], lm[RingMCP], lm[PinkyMCP] = mcps[0], mcps[1], mcps[2], mcps[3]

	thumb := Vec2{center.X - 90, center.Y + 40}
	extended := func(m Vec2) Vec2 { return Vec2{m.X, m.Y - 100} }
	curled := func(m Vec2) Vec2 { return Vec2{m.X, m.Y - 20} }

	tips := [4]Vec2{}
	switch g {
	case GesturePinch:
		tips = [4]Vec2{extended(mcps[0]), extended(mcps[1]), extended(mcps[2]), extended(mcps[3])}
		thumb = tips[0] // thumb tip meets index tip
	case GestureFist:
		tips = [4]Vec2{curled(mcps[0]), curled(mcps[1]), curled(mcps[2]), curled(mcps[3])}
	case GesturePoint:
		tips = [4]Vec2{extended(mcps[0]), curled(mcps[1]), curled(mcps[2]), curled(mcps[3])}
	default: // open hand
		tips = [4]Vec2{extended(mcps[0]), extended(mcps[1]), extended(mcps[2]), extended(mcps[3])}
	}
	lm[IndexTip], lm[MiddleTip], lm[RingTip], lm[PinkyTip] = tips[0], tips[1], tips[2], tips[3]

	// Thumb chain and intermediate joints: interpolated, the classifier
	// only reads tips and MCPs.
	lm[ThumbTip] = thumb
	lm[ThumbIP] = Vec2{lerp(lm[Wrist].X, thumb.X, 0.7), lerp(lm[Wrist].Y, thumb.Y, 0.7)}
	lm[ThumbMCP] = Vec2{lerp(lm[Wrist].X, thumb.X, 0.45), lerp(lm[Wrist].Y, thumb.Y, 0.45)}
	lm[ThumbCMC] = Vec2{lerp(lm[Wrist].X, thumb.X, 0.2), lerp(lm[Wrist].Y, thumb.Y, 0.2)}
	joints := [4][2]int{
		{IndexPIP, IndexDIP},
		{MiddlePIP, MiddleDIP},
		{RingPIP, RingDIP},
		{PinkyPIP, PinkyDIP},
	}
	for i, j := range joints {
		lm[j[0]] = Vec2{lerp(mcps[i].X, tips[i].X, 0.4), lerp(mcps[i].Y, tips[i].Y, 0.4)}
		lm[j[1]] = Vec2{lerp(mcps[i].X, tips[i].X, 0.7), lerp(mcps[i].Y, tips[i].Y, 0.7)}
	}

	points := make([]Vec2, NumLandmarks)
	for i, p := range lm {
		points[i] = Vec2{X: p.X / w, Y: p.Y / h}
	}
	return HandSample{Points: points, Handedness: "Right"}
}
