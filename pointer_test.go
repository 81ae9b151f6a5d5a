package paopao

import "testing"

func tickFrames(s *Sim, frame, n int) int {
	for i := 0; i < n; i++ {
		frame++
		s.Tick(float64(frame) / tickRate)
	}
	return frame
}

func TestQuickClickFiresPulse(t *testing.T) {
	s := newTestSim()
	b := s.store.add(Vec2{X: 640, Y: 400}, Vec2{}, 50, ThemeOcean, 0, false)

	s.PointerDown(640, 360)
	frame := tickFrames(s, 0, 3)
	s.PointerUp(640, 360)
	tickFrames(s, frame, 1)

	if b.Vel.Y <= 0 {
		t.Errorf("vel.Y = %v after a click pulse above, want pushed down", b.Vel.Y)
	}
	if len(s.Creations()) != 0 {
		t.Error("quick click left a creation behind")
	}
}

func TestHoldGrowsAndCommits(t *testing.T) {
	s := newTestSim()

	s.PointerDown(400, 300)
	// The first clickMaxTicks frames stay ambiguous; growth starts after.
	frame := tickFrames(s, 0, clickMaxTicks)
	if len(s.Creations()) != 0 {
		t.Fatal("creation appeared while press was still click-ambiguous")
	}

	frame = tickFrames(s, frame, 30)
	creations := s.Creations()
	if len(creations) != 1 {
		t.Fatalf("creations = %d while held, want 1", len(creations))
	}
	if creations[0].Radius < pinchCommitRadius {
		t.Fatalf("creation radius = %v after 30 grow ticks, want past commit threshold", creations[0].Radius)
	}

	s.PointerUp(400, 300)
	tickFrames(s, frame, 1)

	var committed int
	for _, b := range s.Bubbles() {
		if b.Radius >= pinchCommitRadius {
			committed++
			if b.Vel.Y >= 0 {
				t.Errorf("held-commit vel.Y = %v, want upward", b.Vel.Y)
			}
		}
	}
	if committed != 1 {
		t.Errorf("committed bubbles = %d, want exactly 1", committed)
	}
}

func TestShortHoldDiscarded(t *testing.T) {
	s := newTestSim()
	s.PointerDown(400, 300)
	// Long enough to not be a click, short enough that the creation stays
	// under the commit radius.
	frame := tickFrames(s, 0, clickMaxTicks+3)
	s.PointerUp(400, 300)
	tickFrames(s, frame, 1)

	if got := len(s.Bubbles()); got != 0 {
		t.Errorf("bubbles = %d after an under-grown hold, want 0", got)
	}
}

func TestDragPaintsTrail(t *testing.T) {
	s := newTestSim()

	s.PointerDown(200, 300)
	frame := tickFrames(s, 0, 1)
	s.PointerMove(250, 300) // past the dead zone: the trail anchors here
	s.PointerMove(350, 300)
	frame = tickFrames(s, frame, 1)
	s.PointerUp(350, 300)
	tickFrames(s, frame, 1)

	if got := len(s.Bubbles()); got == 0 {
		t.Fatal("drag produced no trail bubbles")
	}
	for _, b := range s.Bubbles() {
		if !b.IsTrail {
			t.Error("drag bubble missing IsTrail flag")
		}
	}
	if len(s.Creations()) != 0 {
		t.Error("drag left a creation behind")
	}
}

func TestDragInsideDeadZoneStaysPress(t *testing.T) {
	s := newTestSim()
	s.PointerDown(400, 300)
	s.PointerMove(402, 301) // inside the dead zone
	tickFrames(s, 0, clickMaxTicks+5)

	if !s.pointer.down || s.pointer.dragging {
		t.Errorf("down=%v dragging=%v, want a held press", s.pointer.down, s.pointer.dragging)
	}
	if len(s.Creations()) != 1 {
		t.Errorf("creations = %d, want the hold growing", len(s.Creations()))
	}
}

func TestInjectConsumesOneEventPerTick(t *testing.T) {
	s := newTestSim()
	s.InjectClick(640, 360)
	if len(s.injectQueue) != 2 {
		t.Fatalf("queue = %d after InjectClick, want 2", len(s.injectQueue))
	}

	s.Tick(1.0 / tickRate)
	if len(s.injectQueue) != 1 {
		t.Errorf("queue = %d after one tick, want 1", len(s.injectQueue))
	}
	if !s.pointer.down {
		t.Error("press not applied on the first tick")
	}

	s.Tick(2.0 / tickRate)
	if len(s.injectQueue) != 0 {
		t.Errorf("queue = %d after two ticks, want 0", len(s.injectQueue))
	}
	if s.pointer.down {
		t.Error("release not applied on the second tick")
	}
}

func TestInjectClickPulsesLikeFist(t *testing.T) {
	s := newTestSim()
	b := s.store.add(Vec2{X: 640, Y: 400}, Vec2{}, 50, ThemeOcean, 0, false)

	s.InjectClick(640, 360)
	tickFrames(s, 0, 2)

	if b.Vel.Y <= 0 {
		t.Errorf("vel.Y = %v after injected click, want pushed down", b.Vel.Y)
	}
}

func TestInjectDragPaintsTrail(t *testing.T) {
	s := newTestSim()
	s.InjectDrag(200, 300, 600, 300, 10)
	if len(s.injectQueue) != 10 {
		t.Fatalf("queue = %d after a 10-frame drag, want 10", len(s.injectQueue))
	}

	tickFrames(s, 0, 12)
	if len(s.injectQueue) != 0 {
		t.Fatalf("queue = %d after draining, want 0", len(s.injectQueue))
	}
	trail := 0
	for _, b := range s.Bubbles() {
		if b.IsTrail {
			trail++
		}
	}
	if trail == 0 {
		t.Error("injected drag produced no trail bubbles")
	}
}

func TestInjectDragMinimumFrames(t *testing.T) {
	s := newTestSim()
	s.InjectDrag(100, 100, 200, 200, 0)
	if len(s.injectQueue) != 2 {
		t.Errorf("queue = %d for a degenerate drag, want press+release", len(s.injectQueue))
	}
}
