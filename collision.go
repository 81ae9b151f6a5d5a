package paopao

import (
	"math"
	"sort"
)

// Trail cohesion refinement: freshly emitted trail bubbles repel at short
// range and attract at longer range instead of merging, so a trail
// disperses visually before it is allowed to clump into one blob.
const (
	trailImmunitySeconds = 0.6
	trailRepelK          = 0.08
	trailAttractK        = 0.03
)

// resolveCollisions runs the pairwise cohesion/merge scan. Bubbles are
// visited in ascending radius order (ties by ID) so merge outcomes are
// deterministic; frozen and dead bubbles are skipped. Merges mark the
// smaller bubble dead; the caller compacts afterwards.
func resolveCollisions(store *Store, now float64) {
	live := store.Bubbles()
	order := make([]*Bubble, len(live))
	copy(order, live)
	sort.Slice(order, func(i, j int) bool {
		if order[i].Radius != order[j].Radius {
			return order[i].Radius < order[j].Radius
		}
		return order[i].ID < order[j].ID
	})

	for i := 0; i < len(order); i++ {
		a := order[i]
		if a.dead || a.State != StateFloating {
			continue
		}
		for j := i + 1; j < len(order); j++ {
			b := order[j]
			if b.dead || b.State != StateFloating {
				continue
			}

			sum := a.Radius + b.Radius
			stickF := stickFactor
			cohesion := cohesionK
			if a.IsTrail && b.IsTrail {
				stickF = trailStickFactor
				cohesion = trailCohesionK
			}
			stick := sum * stickF

			// Cheap bounding-box reject before the sqrt.
			dx := b.Pos.X - a.Pos.X
			dy := b.Pos.Y - a.Pos.Y
			if dx > stick || dx < -stick || dy > stick || dy < -stick {
				continue
			}

			d := dist(a.Pos, b.Pos)
			if d >= stick {
				continue
			}

			if d < mergeFactor*sum {
				if youngTrailPair(a, b, now) {
					applyTrailSpring(a, b, d, sum)
					continue
				}
				// The ascending sort makes a the smaller of the pair, so the
				// merge always kills a; its mass must not be absorbed again.
				merge(store, a, b)
				break
			}

			// Cohesion: pull the pair together, scaled by overlap fraction.
			u := 1.0 - d/stick
			applyPull(a, b, d, u*cohesion)
		}
	}
}

// youngTrailPair reports whether both bubbles are trail bubbles still in
// their creation immunity window.
func youngTrailPair(a, b *Bubble, now float64) bool {
	return a.IsTrail && b.IsTrail &&
		a.Age(now) < trailImmunitySeconds &&
		b.Age(now) < trailImmunitySeconds
}

// applyTrailSpring pushes a young trail pair apart at short range and pulls
// it together beyond, instead of merging.
func applyTrailSpring(a, b *Bubble, d, sum float64) {
	if d < sum*0.8 {
		applyPull(a, b, d, -trailRepelK)
	} else {
		applyPull(a, b, d, trailAttractK)
	}
}

// applyPull accelerates both bubbles along the line between them, positive
// k pulling together and negative k pushing apart. A coincident pair is
// left untouched: there is no direction to normalize.
func applyPull(a, b *Bubble, d, k float64) {
	if d == 0 {
		return
	}
	nx := (b.Pos.X - a.Pos.X) / d
	ny := (b.Pos.Y - a.Pos.Y) / d
	a.Vel.X += nx * k
	a.Vel.Y += ny * k
	b.Vel.X -= nx * k
	b.Vel.Y -= ny * k
}

// merge combines a pair into the larger bubble: position and velocity are
// mass-weighted averages, the new area is the sum of the two areas (mass,
// not radius, is additive), and the radius clamp caps runaway growth. The
// smaller bubble is marked dead.
func merge(store *Store, a, b *Bubble) {
	big, small := b, a
	if a.Radius > b.Radius {
		big, small = a, b
	}
	total := big.Mass + small.Mass
	big.Pos.X = (big.Pos.X*big.Mass + small.Pos.X*small.Mass) / total
	big.Pos.Y = (big.Pos.Y*big.Mass + small.Pos.Y*small.Mass) / total
	big.Vel.X = (big.Vel.X*big.Mass + small.Vel.X*small.Mass) / total
	big.Vel.Y = (big.Vel.Y*big.Mass + small.Vel.Y*small.Mass) / total
	big.Spin = (big.Spin*big.Mass + small.Spin*small.Mass) / total

	// mass = r², so area additivity is sqrt of the mass sum.
	big.setRadius(math.Sqrt(total))
	store.kill(small)
}
