package paopao

// Store owns the live bubble collection and the particle pool. All entity
// creation and removal funnels through it.
//
// Removal is two-phase: systems mark bubbles dead mid-scan, and the store
// compacts the slice afterwards. Nothing removes in place during iteration,
// which is what makes the pairwise collision scan safe.
type Store struct {
	bubbles []*Bubble
	emitter *ParticleEmitter
	nextID  uint64
	cap     int
}

func newStore(cap int, floorY float64) *Store {
	if cap <= 0 {
		cap = 60
	}
	return &Store{
		bubbles: make([]*Bubble, 0, cap+trailOverflow),
		emitter: newParticleEmitter(2048, floorY),
		cap:     cap,
		nextID:  1,
	}
}

// Bubbles returns the live bubble slice. Valid until the next compact.
func (s *Store) Bubbles() []*Bubble {
	return s.bubbles
}

// Len returns the live bubble count.
func (s *Store) Len() int {
	return len(s.bubbles)
}

// canSpawn reports whether a new bubble may be created. Trail emission gets
// soft overflow headroom above the cap; past that, growth stalls — existing
// bubbles are never evicted to make room.
func (s *Store) canSpawn(trail bool) bool {
	limit := s.cap
	if trail {
		limit += trailOverflow
	}
	return len(s.bubbles) < limit
}

// add creates a bubble and returns it, or nil when the cap suppresses the
// spawn.
func (s *Store) add(pos, vel Vec2, radius float64, theme Theme, now float64, trail bool) *Bubble {
	if !s.canSpawn(trail) {
		return nil
	}
	b := &Bubble{
		ID:      s.nextID,
		Pos:     pos,
		Vel:     vel,
		Theme:   theme,
		Born:    now,
		IsTrail: trail,
	}
	b.setRadius(radius)
	s.nextID++
	s.bubbles = append(s.bubbles, b)
	return b
}

// kill marks a bubble for removal at the next compact.
func (s *Store) kill(b *Bubble) {
	b.dead = true
}

// compact drops marked bubbles, preserving order.
func (s *Store) compact() {
	kept := s.bubbles[:0]
	for _, b := range s.bubbles {
		if !b.dead {
			kept = append(kept, b)
		}
	}
	// Release the tail so removed bubbles are collectable.
	for i := len(kept); i < len(s.bubbles); i++ {
		s.bubbles[i] = nil
	}
	s.bubbles = kept
}
