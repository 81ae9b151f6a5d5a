package paopao

import (
	"math"
	"testing"
)

func newTestSim() *Sim {
	// A huge ambient interval keeps background spawns out of the way.
	return NewSim(Config{Width: 1280, Height: 720, AmbientInterval: 1 << 30})
}

// holdGesture feeds the same synthetic gesture sample for n ticks, starting
// at the given frame, and returns the next frame number.
func holdGesture(s *Sim, g Gesture, at Vec2, frame, n int) int {
	for i := 0; i < n; i++ {
		frame++
		now := float64(frame) / tickRate
		s.PushHands(now, SyntheticSample(g, at, s.cfg.Width, s.cfg.Height))
		s.Tick(now)
	}
	return frame
}

func TestFistRepulsion(t *testing.T) {
	s := newTestSim()
	b := s.store.add(Vec2{X: 100, Y: 500}, Vec2{}, 50, ThemeOcean, 0, false)

	// Fist centered above the bubble for 10 ticks: net outward (downward)
	// push, and a single bubble cannot merge with itself.
	holdGesture(s, GestureFist, Vec2{X: 100, Y: 450}, 0, 10)

	if b.Vel.Y <= 0 {
		t.Errorf("vel.Y = %v after fist repulsion, want positive (pushed away)", b.Vel.Y)
	}
	if s.store.Len() != 1 {
		t.Errorf("len = %d, want the single bubble to survive", s.store.Len())
	}
}

func TestFistZeroDistanceGuard(t *testing.T) {
	s := newTestSim()
	b := s.store.add(Vec2{X: 640, Y: 360}, Vec2{}, 50, ThemeOcean, 0, false)
	s.applyFist(Vec2{X: 640, Y: 360})
	if math.IsNaN(b.Vel.X) || math.IsNaN(b.Vel.Y) {
		t.Error("NaN velocity from zero-distance fist")
	}
}

func TestPointLockSelectsNearest(t *testing.T) {
	s := newTestSim()
	s.now = 10
	far := s.store.add(Vec2{X: 700, Y: 300}, Vec2{}, 30, ThemeOcean, 0, false)
	near := s.store.add(Vec2{X: 620, Y: 300}, Vec2{}, 30, ThemeOcean, 0, false)

	s.applyPoint(Vec2{X: 600, Y: 300}, Vec2{})
	if s.locked != near {
		t.Errorf("locked = %v, want the nearest bubble %v", s.locked, near)
	}
	if far.dead {
		t.Error("unlocked bubble was mutated")
	}
}

func TestPointGracePreventsRemoval(t *testing.T) {
	s := newTestSim()
	b := s.store.add(Vec2{X: 640, Y: 360}, Vec2{}, 50, ThemeOcean, 0, false)

	var events int
	s.OnExpansion(func(ExpansionEvent) { events++ })

	// Fast swipe contact at t=0.5s, inside the grace period: the bubble is
	// not even eligible for locking.
	s.now = 0.5
	s.applyPoint(Vec2{X: 640, Y: 360}, Vec2{X: 2 * swipeSpeed})
	if b.dead || s.locked != nil || events != 0 {
		t.Fatalf("grace-period bubble affected: dead=%v locked=%v events=%d", b.dead, s.locked, events)
	}

	// Same contact at t=2.0s: removal occurs.
	s.now = 2.0
	s.applyPoint(Vec2{X: 640, Y: 360}, Vec2{X: 2 * swipeSpeed})
	if !b.dead {
		t.Error("out-of-grace bubble survived a fast swipe")
	}
	if events != 1 {
		t.Errorf("expansion events = %d, want exactly 1", events)
	}
}

func TestSwipeAlwaysPopsEvenFrozen(t *testing.T) {
	s := newTestSim()
	b := s.store.add(Vec2{X: 640, Y: 360}, Vec2{}, 50, ThemeGlacier, 0, false)
	b.transition(StateFrozen)

	s.now = 10
	s.applyPoint(Vec2{X: 640, Y: 360}, Vec2{X: 2 * swipeSpeed})
	if !b.dead {
		t.Error("frozen bubble survived a fast swipe")
	}
	// Popping burst includes exactly one flash and one ring.
	var flashes, rings int
	for _, p := range s.store.emitter.Alive() {
		switch p.Type {
		case ParticleFlash:
			flashes++
		case ParticleRing:
			rings++
		}
	}
	if flashes != 1 || rings != 1 {
		t.Errorf("pop burst: %d flashes, %d rings; want 1 and 1", flashes, rings)
	}
}

func TestSlowContactBranches(t *testing.T) {
	// The odds table is per element, but every element must keep all four
	// outcomes live: over many trials each branch appears for each element,
	// and each trial's outcome is exactly one of frozen or removed with a
	// matching burst.
	themes := map[Element]Theme{
		ElementWater: ThemeOcean,
		ElementFire:  ThemeEmber,
		ElementIce:   ThemeGlacier,
	}
	for elem, theme := range themes {
		counts := map[string]int{}
		for seed := uint64(1); seed <= 80; seed++ {
			s := NewSim(Config{Width: 1280, Height: 720, AmbientInterval: 1 << 30, Seed: seed})
			b := s.store.add(Vec2{X: 640, Y: 360}, Vec2{}, 50, theme, 0, false)
			s.now = 10
			s.applyPoint(Vec2{X: 640, Y: 360}, Vec2{})

			switch {
			case b.State == StateFrozen && !b.dead:
				counts["freeze"]++
			case b.dead && hasType(s, ParticleLiquid):
				counts["melt"]++
			case b.dead && hasType(s, ParticleFlash):
				counts["pop"]++
			case b.dead && hasType(s, ParticleMist):
				counts["evaporate"]++
			default:
				t.Fatalf("%v seed %d: no recognizable outcome (state=%v dead=%v)", elem, seed, b.State, b.dead)
			}
		}
		for _, branch := range []string{"freeze", "melt", "evaporate", "pop"} {
			if counts[branch] == 0 {
				t.Errorf("%v: branch %q never taken in 80 trials: %v", elem, branch, counts)
			}
		}
	}
}

func hasType(s *Sim, pt ParticleType) bool {
	for _, p := range s.store.emitter.Alive() {
		if p.Type == pt {
			return true
		}
	}
	return false
}

func TestExpansionEventCarriesTheme(t *testing.T) {
	s := newTestSim()
	b := s.store.add(Vec2{X: 640, Y: 360}, Vec2{}, 50, ThemeAurora, 0, false)

	var got []ExpansionEvent
	s.OnExpansion(func(ev ExpansionEvent) { got = append(got, ev) })
	s.popBubble(b)

	if len(got) != 1 {
		t.Fatalf("events = %d, want 1", len(got))
	}
	if got[0].Theme != ThemeAurora {
		t.Errorf("event theme = %v, want aurora", got[0].Theme)
	}
}

func TestShatterDoesNotFireExpansion(t *testing.T) {
	s := newTestSim()
	b := s.store.add(Vec2{X: 640, Y: 680}, Vec2{}, 30, ThemeGlacier, 0, false)
	b.transition(StateFrozen)
	b.StateTimer = freezeHoldSeconds

	var events int
	s.OnExpansion(func(ExpansionEvent) { events++ })

	for i := 0; i < 300 && !b.dead; i++ {
		integrate(s.store, s.bounds)
	}
	if !b.dead {
		t.Fatal("frozen bubble never landed")
	}
	if events != 0 {
		t.Errorf("shatter fired %d expansion events, want 0", events)
	}
}

type recordingBridge struct {
	events []ExpansionEvent
}

func (r *recordingBridge) EmitExpansion(ev ExpansionEvent) {
	r.events = append(r.events, ev)
}

func TestEntityStoreBridgeReceivesEvents(t *testing.T) {
	s := newTestSim()
	bridge := &recordingBridge{}
	s.SetEntityStore(bridge)

	b := s.store.add(Vec2{X: 640, Y: 360}, Vec2{}, 50, ThemeEmber, 0, false)
	s.popBubble(b)

	if len(bridge.events) != 1 {
		t.Fatalf("bridge events = %d, want 1", len(bridge.events))
	}
	if bridge.events[0].Theme != ThemeEmber {
		t.Errorf("bridge theme = %v, want ember", bridge.events[0].Theme)
	}
}
