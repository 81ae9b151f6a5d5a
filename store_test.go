package paopao

import "testing"

func TestStoreCapSuppressesSpawns(t *testing.T) {
	s := newStore(3, 720)
	for i := 0; i < 3; i++ {
		if b := s.add(Vec2{X: float64(i) * 100}, Vec2{}, 20, ThemeOcean, 0, false); b == nil {
			t.Fatalf("spawn %d suppressed below cap", i)
		}
	}
	if b := s.add(Vec2{}, Vec2{}, 20, ThemeOcean, 0, false); b != nil {
		t.Error("spawn above cap should be suppressed")
	}
	// Existing bubbles are never evicted to make room.
	if s.Len() != 3 {
		t.Errorf("len = %d, want 3", s.Len())
	}
}

func TestStoreTrailOverflow(t *testing.T) {
	s := newStore(2, 720)
	s.add(Vec2{}, Vec2{}, 20, ThemeOcean, 0, false)
	s.add(Vec2{}, Vec2{}, 20, ThemeOcean, 0, false)

	// Trail spawns get soft headroom above the cap.
	for i := 0; i < trailOverflow; i++ {
		if b := s.add(Vec2{}, Vec2{}, 10, ThemeOcean, 0, true); b == nil {
			t.Fatalf("trail spawn %d suppressed inside overflow headroom", i)
		}
	}
	if b := s.add(Vec2{}, Vec2{}, 10, ThemeOcean, 0, true); b != nil {
		t.Error("trail spawn beyond overflow should be suppressed")
	}
}

func TestStoreUniqueIDs(t *testing.T) {
	s := newStore(10, 720)
	seen := map[uint64]bool{}
	for i := 0; i < 5; i++ {
		b := s.add(Vec2{}, Vec2{}, 20, ThemeOcean, 0, false)
		if seen[b.ID] {
			t.Fatalf("duplicate bubble id %d", b.ID)
		}
		seen[b.ID] = true
	}
}

func TestStoreCompactPreservesOrder(t *testing.T) {
	s := newStore(10, 720)
	var ids []uint64
	for i := 0; i < 5; i++ {
		ids = append(ids, s.add(Vec2{}, Vec2{}, 20, ThemeOcean, 0, false).ID)
	}
	s.kill(s.bubbles[1])
	s.kill(s.bubbles[3])
	s.compact()

	want := []uint64{ids[0], ids[2], ids[4]}
	if s.Len() != len(want) {
		t.Fatalf("len = %d, want %d", s.Len(), len(want))
	}
	for i, b := range s.Bubbles() {
		if b.ID != want[i] {
			t.Errorf("bubble %d id = %d, want %d", i, b.ID, want[i])
		}
	}
}

func TestStoreCompactSafeUnderMassRemoval(t *testing.T) {
	s := newStore(20, 720)
	for i := 0; i < 20; i++ {
		s.add(Vec2{}, Vec2{}, 20, ThemeOcean, 0, false)
	}
	for _, b := range s.Bubbles() {
		s.kill(b)
	}
	s.compact()
	if s.Len() != 0 {
		t.Errorf("len = %d after removing all, want 0", s.Len())
	}
}
