package paopao

import "math"

// Pointer modality: mouse or touch input mapped onto the same semantics as
// the hand gestures. Holding the pointer still grows a bubble (pinch),
// dragging past the dead zone paints a trail (open hand), and a quick
// click fires a repulsion pulse (fist).
const (
	defaultDragDeadZone = 4.0 // pixels before a press becomes a drag
	clickMaxTicks       = 12  // longest press that still counts as a click
)

// pointerState tracks one pointer across press, move, and release.
type pointerState struct {
	down      bool
	dragging  bool
	ticksDown int

	x, y           float64
	startX, startY float64
	prevX, prevY   float64 // position at the previous tick, for velocity

	creation    *ActiveCreation
	trailAnchor Vec2
	hasAnchor   bool
}

// PointerDown begins a press at (x, y) in world coordinates.
func (s *Sim) PointerDown(x, y float64) {
	p := &s.pointer
	p.down = true
	p.dragging = false
	p.ticksDown = 0
	p.x, p.y = x, y
	p.startX, p.startY = x, y
	p.prevX, p.prevY = x, y
}

// PointerMove updates the pointer position. Moving beyond the drag dead
// zone while pressed converts the press into a drag: any half-grown
// creation is discarded and trail painting begins.
func (s *Sim) PointerMove(x, y float64) {
	p := &s.pointer
	p.x, p.y = x, y
	if !p.down || p.dragging {
		return
	}
	if math.Hypot(x-p.startX, y-p.startY) > defaultDragDeadZone {
		p.dragging = true
		p.creation = nil
		p.trailAnchor = Vec2{X: x, Y: y}
		p.hasAnchor = true
	}
}

// PointerUp ends the press. A quick click fires a fist pulse at the release
// point; a held (non-drag) press commits its creation if it grew enough.
func (s *Sim) PointerUp(x, y float64) {
	p := &s.pointer
	if !p.down {
		return
	}
	p.x, p.y = x, y
	p.down = false
	p.hasAnchor = false

	if p.dragging {
		p.dragging = false
		p.creation = nil
		return
	}

	if p.ticksDown <= clickMaxTicks {
		p.creation = nil
		s.applyFist(Vec2{X: x, Y: y})
		return
	}

	c := p.creation
	p.creation = nil
	if c == nil || c.Radius < pinchCommitRadius {
		return
	}
	b := s.store.add(c.Pos, Vec2{X: 0, Y: -pinchLift}, c.Radius, s.spawn.randTheme(), s.now, false)
	if b != nil {
		s.spawn.cluster(b, s.now)
	}
}

// tickPointer advances the held pointer once per tick: growth while held
// still, trail emission while dragging.
func (s *Sim) tickPointer() {
	p := &s.pointer
	if !p.down {
		return
	}
	p.ticksDown++
	vx := p.x - p.prevX
	vy := p.y - p.prevY
	p.prevX, p.prevY = p.x, p.y

	if p.dragging {
		s.pointerTrail(p, vx, vy)
		return
	}

	if p.ticksDown <= clickMaxTicks {
		// Still ambiguous between click and hold; don't grow yet.
		return
	}
	if p.creation == nil {
		p.creation = &ActiveCreation{Pos: Vec2{X: p.x, Y: p.y}, Radius: pinchStartRadius}
		return
	}
	c := p.creation
	c.Pos.X = lerp(c.Pos.X, p.x, pinchFollow)
	c.Pos.Y = lerp(c.Pos.Y, p.y, pinchFollow)
	c.Radius += pinchGrowth
	c.Elapsed++
}

// pointerTrail mirrors the open-hand trail: emit small trail bubbles along
// the drag once it travels beyond the step distance.
func (s *Sim) pointerTrail(p *pointerState, vx, vy float64) {
	cur := Vec2{X: p.x, Y: p.y}
	d := dist(cur, p.trailAnchor)
	if d < trailStep {
		return
	}
	n := int(d / trailStep)
	if n > trailMaxPerTick {
		n = trailMaxPerTick
	}
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		pos := Vec2{
			X: lerp(p.trailAnchor.X, cur.X, t),
			Y: lerp(p.trailAnchor.Y, cur.Y, t),
		}
		vel := Vec2{
			X: vx*trailInherit + (s.rng.Float64()-0.5)*trailJitter,
			Y: vy*trailInherit + (s.rng.Float64()-0.5)*trailJitter,
		}
		radius := trailRadiusMin + s.rng.Float64()*(trailRadiusMax-trailRadiusMin)
		s.store.add(pos, vel, radius, s.spawn.randTheme(), s.now, true)
	}
	p.trailAnchor = cur
}
