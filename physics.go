package paopao

// integrate advances every bubble by one tick: buoyancy, drag, wall
// bounces, float-off removal at the top, and the frozen hover/fall/shatter
// path. Removals are marked, not applied; the caller compacts.
func integrate(store *Store, bounds Rect) {
	for _, b := range store.Bubbles() {
		if b.dead {
			continue
		}
		switch b.State {
		case StateFloating:
			integrateFloating(b, store, bounds)
		case StateFrozen:
			integrateFrozen(b, store, bounds)
		}
	}
}

func integrateFloating(b *Bubble, store *Store, bounds Rect) {
	// Soap-bubble convention: gravity points up.
	b.Vel.Y -= gravity
	b.Vel.X *= airDrag
	b.Vel.Y *= airDrag
	b.Pos.X += b.Vel.X
	b.Pos.Y += b.Vel.Y
	b.Rotation += b.Spin

	// Side walls reflect with restitution and clamp inside bounds.
	if b.Pos.X-b.Radius < bounds.X {
		b.Pos.X = bounds.X + b.Radius
		b.Vel.X = -b.Vel.X * wallRestitution
	} else if b.Pos.X+b.Radius > bounds.X+bounds.Width {
		b.Pos.X = bounds.X + bounds.Width - b.Radius
		b.Vel.X = -b.Vel.X * wallRestitution
	}

	// Floated away: more than two radii above the top edge.
	if b.Pos.Y < bounds.Y-b.Radius*2 {
		store.kill(b)
	}
}

func integrateFrozen(b *Bubble, store *Store, bounds Rect) {
	b.StateTimer += tickDt
	if b.StateTimer < freezeHoldSeconds {
		// Near-stationary hover while the ice takes hold.
		b.Vel.X *= frozenHoverDamp
		b.Vel.Y *= frozenHoverDamp
	} else {
		// Heavy fall under amplified, downward gravity.
		b.Vel.Y += frozenFallGravity
	}
	b.Pos.X += b.Vel.X
	b.Pos.Y += b.Vel.Y

	if b.Pos.X-b.Radius < bounds.X {
		b.Pos.X = bounds.X + b.Radius
		b.Vel.X = -b.Vel.X * wallRestitution
	} else if b.Pos.X+b.Radius > bounds.X+bounds.Width {
		b.Pos.X = bounds.X + bounds.Width - b.Radius
		b.Vel.X = -b.Vel.X * wallRestitution
	}

	// Landing shatters: one shard burst, then removal, atomically.
	if b.Pos.Y+b.Radius >= bounds.Y+bounds.Height {
		if b.transition(StateShattered) {
			store.emitter.burstShatter(b.Pos, b.Radius, b.Theme)
			store.kill(b)
		}
	}
}
