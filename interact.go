package paopao

import "math"

// applyFist pushes every bubble near a fist-gesture hand center outward.
// The impulse falls off quadratically with distance and is followed by
// extra damping so repeated pulses cannot build runaway oscillation.
func (s *Sim) applyFist(center Vec2) {
	for _, b := range s.store.Bubbles() {
		if b.dead || b.State == StateShattered {
			continue
		}
		reach := fistRange + b.Radius
		d := dist(center, b.Pos)
		if d >= reach || d == 0 {
			continue
		}
		falloff := 1.0 - d/reach
		impulse := falloff * falloff * fistForce
		nx := (b.Pos.X - center.X) / d
		ny := (b.Pos.Y - center.Y) / d
		b.Vel.X = (b.Vel.X + nx*impulse) * fistDamp
		b.Vel.Y = (b.Vel.Y + ny*impulse) * fistDamp
	}
}

// applyPoint recomputes the tick's locked target — the nearest bubble past
// its grace period within lock range of the fingertip — and resolves
// contact if the fingertip is actually touching it.
func (s *Sim) applyPoint(tip Vec2, handVel Vec2) {
	var nearest *Bubble
	nearestD := math.Inf(1)
	for _, b := range s.store.Bubbles() {
		if b.dead || b.State == StateShattered || b.InGrace(s.now) {
			continue
		}
		d := dist(tip, b.Pos)
		if d < b.Radius+lockRange && d < nearestD {
			nearest = b
			nearestD = d
		}
	}
	if nearest == nil {
		return
	}
	s.locked = nearest

	if nearestD < nearest.Radius+touchRadius {
		speed := math.Hypot(handVel.X, handVel.Y)
		s.resolveContact(nearest, speed)
	}
}

// Transition odds on contact, indexed by element. Four roughly-equal
// outcomes, tilted toward each element's nature: water melts, fire
// evaporates, ice freezes.
var contactOdds = map[Element][4]float64{
	// freeze, melt, evaporate, pop (cumulative weights)
	ElementWater: {0.20, 0.55, 0.80, 1.00},
	ElementFire:  {0.10, 0.30, 0.75, 1.00},
	ElementIce:   {0.45, 0.65, 0.75, 1.00},
}

// resolveContact decides what touching a locked bubble does. A fast swipe
// always pops regardless of state; otherwise a floating bubble draws one
// uniform number and freezes, melts, evaporates, or pops. Every removal
// here fires the expansion event.
func (s *Sim) resolveContact(b *Bubble, handSpeed float64) {
	if handSpeed > swipeSpeed {
		s.popBubble(b)
		return
	}
	if b.State != StateFloating {
		return
	}

	odds := contactOdds[b.Element()]
	u := s.rng.Float64()
	switch {
	case u < odds[0]:
		b.transition(StateFrozen)
	case u < odds[1]:
		s.store.emitter.burstMelt(b.Pos, b.Radius, b.Theme)
		s.store.kill(b)
		s.emitExpansion(b)
	case u < odds[2]:
		s.store.emitter.burstEvaporate(b.Pos, b.Radius, b.Theme)
		s.store.kill(b)
		s.emitExpansion(b)
	default:
		s.popBubble(b)
	}
}

// popBubble removes a bubble with the full popping burst.
func (s *Sim) popBubble(b *Bubble) {
	s.store.emitter.burstPop(b.Pos, b.Radius, b.Theme)
	s.store.kill(b)
	s.emitExpansion(b)
}
