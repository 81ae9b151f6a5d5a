package paopao

import "math/rand/v2"

// ExpansionEvent is the single discrete event this core emits: a bubble was
// removed through direct interaction (pop, melt, or evaporate). Shatter and
// out-of-bounds removals do not fire it.
type ExpansionEvent struct {
	Theme Theme
	Pos   Vec2
}

// EntityStore is the interface for optional ECS integration. When set on a
// Sim, expansion events are forwarded to the ECS in addition to any
// OnExpansion callbacks.
type EntityStore interface {
	EmitExpansion(event ExpansionEvent)
}

// Sim is the top-level simulation: it owns the entity store, hand tracker,
// spawner, and particle pool, and advances everything one tick at a time.
// All mutation happens inside Tick on the caller's goroutine; Sim is not
// safe for concurrent use.
type Sim struct {
	cfg     Config
	bounds  Rect
	store   *Store
	tracker *handTracker
	spawn   *spawner
	rng     *rand.Rand

	now float64

	// Camera frame de-duplication: hand samples are only ingested when the
	// camera timestamp advances, so a 144 Hz display does not re-smooth a
	// 30 Hz camera's stale frame.
	lastCamera   float64
	haveCamera   bool
	pendingHands []HandSample
	framePending bool

	// The tick's point-gesture lock, recomputed from scratch every tick.
	locked *Bubble

	bridge   EntityStore
	onExpand []func(ExpansionEvent)

	pointer     pointerState
	injectQueue []syntheticPointerEvent
}

// NewSim creates a simulation. Zero-valued config fields are fixed up to
// the defaults, so NewSim(Config{}) is valid.
func NewSim(cfg Config) *Sim {
	def := DefaultConfig()
	if cfg.Width <= 0 {
		cfg.Width = def.Width
	}
	if cfg.Height <= 0 {
		cfg.Height = def.Height
	}
	if cfg.MaxBubbles <= 0 {
		cfg.MaxBubbles = def.MaxBubbles
	}
	if cfg.AmbientInterval <= 0 {
		cfg.AmbientInterval = def.AmbientInterval
	}
	if cfg.HandEvictTicks <= 0 {
		cfg.HandEvictTicks = def.HandEvictTicks
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = 1
	}

	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	bounds := Rect{Width: cfg.Width, Height: cfg.Height}
	store := newStore(cfg.MaxBubbles, bounds.Y+bounds.Height)
	s := &Sim{
		cfg:     cfg,
		bounds:  bounds,
		store:   store,
		tracker: newHandTracker(cfg.Width, cfg.Height, cfg.HandEvictTicks),
		rng:     rng,
	}
	s.spawn = newSpawner(store, rng, cfg)
	return s
}

// PushHands supplies the raw hand samples for the next tick. cameraTime is
// the timestamp of the underlying video frame; if it has not advanced since
// the previous push, the samples are dropped and the tracker keeps its
// current state (the expensive inference upstream should be skipped the
// same way).
func (s *Sim) PushHands(cameraTime float64, samples ...HandSample) {
	if s.haveCamera && cameraTime <= s.lastCamera {
		return
	}
	s.lastCamera = cameraTime
	s.haveCamera = true
	s.pendingHands = append(s.pendingHands[:0], samples...)
	s.framePending = true
}

// Tick advances the simulation to time now (seconds). One call per display
// frame: smooth and classify hands, apply gestures and spawns, integrate,
// resolve collisions and merges, prune the dead, and advance particles.
func (s *Sim) Tick(now float64) {
	s.now = now
	s.locked = nil

	s.consumeInjected()

	if s.framePending {
		s.tracker.update(s.pendingHands)
		s.framePending = false
	}

	for _, tr := range s.tracker.tracks {
		if !tr.claimed {
			// Unseen this tick: discard any half-grown creation so a lost
			// hand cannot commit a bubble later.
			tr.creation = nil
			tr.hasAnchor = false
			continue
		}
		switch tr.gesture {
		case GestureFist:
			s.applyFist(tr.center)
		case GesturePoint:
			s.applyPoint(tr.landmarks[IndexTip], tr.velocity)
		}
		s.spawn.tickPinch(tr, now)
		s.spawn.tickTrail(tr, now)
	}

	s.tickPointer()
	s.spawn.tickAmbient(now)

	integrate(s.store, s.bounds)
	resolveCollisions(s.store, now)
	s.store.compact()
	s.store.emitter.update()
}

// Bubbles returns the live bubbles. The slice is valid until the next Tick.
func (s *Sim) Bubbles() []*Bubble {
	return s.store.Bubbles()
}

// Particles returns the live particles. Valid until the next Tick.
func (s *Sim) Particles() []Particle {
	return s.store.emitter.Alive()
}

// Poses returns the stabilized hand poses seen this tick.
func (s *Sim) Poses() []HandPose {
	return s.tracker.poses()
}

// LockedTarget returns the bubble currently locked by a point gesture, or
// nil. The lock is recomputed from scratch every tick.
func (s *Sim) LockedTarget() *Bubble {
	return s.locked
}

// Creations returns the in-progress pinch creations, for rendering.
func (s *Sim) Creations() []ActiveCreation {
	var out []ActiveCreation
	for _, tr := range s.tracker.tracks {
		if tr.creation != nil {
			out = append(out, *tr.creation)
		}
	}
	if s.pointer.creation != nil {
		out = append(out, *s.pointer.creation)
	}
	return out
}

// OnExpansion registers a callback fired synchronously whenever a bubble is
// removed via pop, melt, or evaporate.
func (s *Sim) OnExpansion(fn func(ExpansionEvent)) {
	s.onExpand = append(s.onExpand, fn)
}

// SetEntityStore attaches an ECS bridge that receives expansion events.
func (s *Sim) SetEntityStore(store EntityStore) {
	s.bridge = store
}

// emitExpansion fires the removal-via-interaction event.
func (s *Sim) emitExpansion(b *Bubble) {
	ev := ExpansionEvent{Theme: b.Theme, Pos: b.Pos}
	for _, fn := range s.onExpand {
		fn(ev)
	}
	if s.bridge != nil {
		s.bridge.EmitExpansion(ev)
	}
}
