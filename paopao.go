package paopao

import (
	"math"
	"math/rand/v2"
)

// Vec2 is a 2D vector used for positions, offsets, and velocities
// throughout the API. The coordinate system has its origin at the top-left,
// with Y increasing downward; "up" is negative Y, so rising bubbles carry
// negative vertical velocity.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. Used for world bounds and cheap
// bounding-box rejection in the collision scan.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Range is a general-purpose min/max range, used for particle lifetimes,
// speeds, sizes, and spawn jitter.
type Range struct {
	Min, Max float64
}

// Random returns a random float64 in [Min, Max].
func (r Range) Random() float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + rand.Float64()*(r.Max-r.Min)
}

// randomIn is Random drawn from a specific source, for deterministic runs.
func (r Range) randomIn(rng *rand.Rand) float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// dist returns the Euclidean distance between a and b.
func dist(a, b Vec2) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// lerp linearly interpolates between a and b by t.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// clamp limits v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Theme is the symbolic color family of a bubble. Themes are cosmetic but
// deterministic per instance, and each maps to a fixed Element that governs
// which transition odds apply on point-gesture contact.
type Theme uint8

const (
	ThemeOcean Theme = iota
	ThemeMeadow
	ThemeSunset
	ThemeEmber
	ThemeGlacier
	ThemeAurora
	themeCount
)

// String returns the theme's symbolic name.
func (t Theme) String() string {
	switch t {
	case ThemeOcean:
		return "ocean"
	case ThemeMeadow:
		return "meadow"
	case ThemeSunset:
		return "sunset"
	case ThemeEmber:
		return "ember"
	case ThemeGlacier:
		return "glacier"
	case ThemeAurora:
		return "aurora"
	default:
		return "unknown"
	}
}

// Element is the physical family derived from a bubble's theme.
type Element uint8

const (
	ElementWater Element = iota
	ElementFire
	ElementIce
)

// Element returns the element family for the theme. The mapping is fixed:
// ocean/meadow are water, sunset/ember are fire, glacier/aurora are ice.
func (t Theme) Element() Element {
	switch t {
	case ThemeSunset, ThemeEmber:
		return ElementFire
	case ThemeGlacier, ThemeAurora:
		return ElementIce
	default:
		return ElementWater
	}
}

// String returns the element's name.
func (e Element) String() string {
	switch e {
	case ElementFire:
		return "fire"
	case ElementIce:
		return "ice"
	default:
		return "water"
	}
}

// Config holds the externally interesting simulation knobs. Zero values are
// fixed up to defaults by NewSim, so Config{} is usable as-is.
type Config struct {
	// Width and Height are the world bounds in pixels. Landmark samples in
	// normalized [0,1] space are scaled into these bounds.
	Width, Height float64
	// Seed seeds the simulation's random source. Zero selects a fixed
	// default so scripted runs are reproducible by default.
	Seed uint64
	// MaxBubbles is the ambient spawn cap. Trail emission may exceed it by
	// a soft overflow of trailOverflow; beyond that all spawns stall.
	MaxBubbles int
	// AmbientInterval is the number of ticks between ambient spawns.
	AmbientInterval int
	// HandEvictTicks is how many consecutive ticks a hand track may go
	// unseen before its smoothing state is evicted.
	HandEvictTicks int
}

// DefaultConfig returns the tuning used by the demos.
func DefaultConfig() Config {
	return Config{
		Width:           1280,
		Height:          720,
		MaxBubbles:      60,
		AmbientInterval: 90,
		HandEvictTicks:  12,
	}
}

// Simulation tuning. These are per-tick quantities at the nominal 60 Hz
// step; dt only enters through second-based timers (grace, freeze).
const (
	gravity         = 0.045 // upward buoyancy per tick
	airDrag         = 0.985
	wallRestitution = 0.8
	maxRadius       = 220.0

	trailOverflow = 10 // soft cap headroom for trail bubbles

	graceSeconds      = 1.5 // point-pop immunity after creation
	freezeHoldSeconds = 1.0 // frozen hover time before the heavy fall
	frozenHoverDamp   = 0.85
	frozenFallGravity = 0.3 // amplified, downward

	mergeFactor      = 0.4 // merge when d < mergeFactor*(r1+r2)
	stickFactor      = 1.6
	trailStickFactor = 1.8
	cohesionK        = 0.02
	trailCohesionK   = 0.12

	fistRange      = 150.0
	fistForce      = 6.0
	fistDamp       = 0.9
	lockRange      = 60.0
	touchRadius    = 30.0
	swipeSpeed     = 25.0 // px/tick; faster contact always pops
	tickRate       = 60.0
	tickDt         = 1.0 / tickRate
)
