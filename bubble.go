package paopao

// BubbleState is the lifecycle state of a bubble.
//
// Floating is the sole initial state. Frozen is entered only through a
// point-gesture contact branch. Shattered is terminal and means the bubble
// bursts into shards and is removed within the same tick; it never survives
// a tick boundary.
type BubbleState uint8

const (
	StateFloating BubbleState = iota
	StateFrozen
	StateShattered
)

// String returns the state's name.
func (s BubbleState) String() string {
	switch s {
	case StateFrozen:
		return "frozen"
	case StateShattered:
		return "shattered"
	default:
		return "floating"
	}
}

// Bubble is a single soft-body bubble. Bubbles are owned exclusively by the
// Store; everything else reads them through snapshots.
type Bubble struct {
	ID       uint64
	Pos      Vec2
	Vel      Vec2
	Radius   float64
	Mass     float64 // always Radius²; maintained by setRadius
	Theme    Theme
	Rotation float64
	Spin     float64 // angular velocity per tick

	State      BubbleState
	StateTimer float64 // seconds since entering Frozen
	Born       float64 // creation time in seconds; drives the pop grace period
	IsTrail    bool    // trail bubbles use stickier merge thresholds

	dead bool // marked for removal; compacted at the end of the tick phase
}

// Element returns the bubble's physical family, derived from its theme.
func (b *Bubble) Element() Element {
	return b.Theme.Element()
}

// setRadius updates the radius and keeps the mass invariant (mass = r²).
func (b *Bubble) setRadius(r float64) {
	if r > maxRadius {
		r = maxRadius
	}
	b.Radius = r
	b.Mass = r * r
}

// Age returns seconds since creation.
func (b *Bubble) Age(now float64) float64 {
	return now - b.Born
}

// InGrace reports whether the bubble is still immune to point-gesture
// popping. Freshly spawned trails would otherwise pop themselves instantly.
func (b *Bubble) InGrace(now float64) bool {
	return b.Age(now) < graceSeconds
}

// transition applies a state change and returns whether it was legal.
// Illegal transitions (anything out of Shattered, or Floating straight to
// Shattered) are rejected without mutation.
func (b *Bubble) transition(to BubbleState) bool {
	switch {
	case b.State == StateFloating && to == StateFrozen:
		b.State = StateFrozen
		b.StateTimer = 0
		b.Vel.X *= 0.05
		b.Vel.Y *= 0.05
		b.Spin = 0
		return true
	case b.State == StateFrozen && to == StateShattered:
		b.State = StateShattered
		return true
	default:
		return false
	}
}
