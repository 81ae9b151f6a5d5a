package paopao

import (
	"math"
	"math/rand/v2"
)

// Spawn tuning.
const (
	ambientRadiusMin = 22.0
	ambientRadiusMax = 52.0
	ambientLift      = 1.2 // upward velocity bias at the bottom edge

	pinchStartRadius  = 15.0
	pinchGrowth       = 1.0 // radius per tick while held
	pinchCommitRadius = 20.0
	pinchLift         = 2.0
	pinchFollow       = 0.3 // creation lerps toward the fingertip, not snaps

	trailStep       = 30.0 // hand travel between trail emissions
	trailMaxPerTick = 5
	trailInherit    = 0.3 // fraction of hand velocity carried by trail bubbles
	trailRadiusMin  = 8.0
	trailRadiusMax  = 14.0
	trailJitter     = 1.0

	clusterRadius    = 60.0 // explicit "large bubble" threshold
	clusterLargeOdds = 0.15 // chance a smaller bubble still clusters
	clusterOdds      = 0.6
	satelliteMin     = 10.0
	satelliteMax     = 18.0
)

// ActiveCreation is the in-progress pinch-grown bubble: at most one per
// tracked hand, alive only while the pinch is held. It is committed into a
// real bubble on release if it grew past the commit threshold, otherwise
// discarded.
type ActiveCreation struct {
	Pos     Vec2
	Radius  float64
	Elapsed int // ticks held
}

// spawner creates bubbles from ambient timers, pinch releases, and
// open-hand trails.
type spawner struct {
	store   *Store
	rng     *rand.Rand
	cfg     Config
	ambient int // frame counter toward the next ambient spawn
}

func newSpawner(store *Store, rng *rand.Rand, cfg Config) *spawner {
	return &spawner{store: store, rng: rng, cfg: cfg}
}

func (sp *spawner) randTheme() Theme {
	return Theme(sp.rng.IntN(int(themeCount)))
}

// tickAmbient spawns one bubble at a random x along the bottom edge when
// the interval elapses and the live count is below the cap.
func (sp *spawner) tickAmbient(now float64) {
	sp.ambient++
	if sp.ambient < sp.cfg.AmbientInterval {
		return
	}
	if sp.store.Len() >= sp.cfg.MaxBubbles {
		return
	}
	sp.ambient = 0

	radius := ambientRadiusMin + sp.rng.Float64()*(ambientRadiusMax-ambientRadiusMin)
	pos := Vec2{
		X: sp.rng.Float64() * sp.cfg.Width,
		Y: sp.cfg.Height + radius*0.5,
	}
	vel := Vec2{
		X: (sp.rng.Float64() - 0.5) * 0.6,
		Y: -ambientLift - sp.rng.Float64(),
	}
	b := sp.store.add(pos, vel, radius, sp.randTheme(), now, false)
	if b != nil {
		b.Spin = (sp.rng.Float64() - 0.5) * 0.02
		sp.cluster(b, now)
	}
}

// tickPinch advances or commits a hand's pinch-grown creation. While the
// pinch is held the creation follows the fingertip and grows at a constant
// rate; on release it becomes a bubble if it grew past the commit
// threshold, and is discarded otherwise.
func (sp *spawner) tickPinch(tr *handTrack, now float64) {
	tip := tr.landmarks[IndexTip]

	if tr.gesture == GesturePinch {
		if tr.creation == nil {
			tr.creation = &ActiveCreation{Pos: tip, Radius: pinchStartRadius}
			return
		}
		c := tr.creation
		c.Pos.X = lerp(c.Pos.X, tip.X, pinchFollow)
		c.Pos.Y = lerp(c.Pos.Y, tip.Y, pinchFollow)
		c.Radius += pinchGrowth
		c.Elapsed++
		return
	}

	if tr.creation == nil {
		return
	}
	c := tr.creation
	tr.creation = nil
	if c.Radius < pinchCommitRadius {
		return
	}
	b := sp.store.add(c.Pos, Vec2{X: 0, Y: -pinchLift}, c.Radius, sp.randTheme(), now, false)
	if b != nil {
		sp.cluster(b, now)
	}
}

// tickTrail emits small trail bubbles along an open hand's movement. The
// hand must travel beyond the step distance since the last emission point;
// emissions are interpolated along the segment and capped per tick.
func (sp *spawner) tickTrail(tr *handTrack, now float64) {
	if tr.gesture != GestureOpenHand {
		tr.hasAnchor = false
		return
	}
	if !tr.hasAnchor {
		tr.trailAnchor = tr.center
		tr.hasAnchor = true
		return
	}

	d := dist(tr.center, tr.trailAnchor)
	if d < trailStep {
		return
	}

	n := int(d / trailStep)
	if n > trailMaxPerTick {
		n = trailMaxPerTick
	}
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		pos := Vec2{
			X: lerp(tr.trailAnchor.X, tr.center.X, t),
			Y: lerp(tr.trailAnchor.Y, tr.center.Y, t),
		}
		vel := Vec2{
			X: tr.velocity.X*trailInherit + (sp.rng.Float64()-0.5)*trailJitter,
			Y: tr.velocity.Y*trailInherit + (sp.rng.Float64()-0.5)*trailJitter,
		}
		radius := trailRadiusMin + sp.rng.Float64()*(trailRadiusMax-trailRadiusMin)
		sp.store.add(pos, vel, radius, sp.randTheme(), now, true)
	}
	tr.trailAnchor = tr.center
}

// cluster gives large bubbles a chance to spawn 1–3 small satellites around
// the creation point. Satellites are ordinary independent bubbles with
// inherited velocity plus jitter; they exist purely to make dense clumps.
func (sp *spawner) cluster(b *Bubble, now float64) {
	large := b.Radius > clusterRadius || sp.rng.Float64() < clusterLargeOdds
	if !large || sp.rng.Float64() >= clusterOdds {
		return
	}
	n := 1 + sp.rng.IntN(3)
	for i := 0; i < n; i++ {
		angle := sp.rng.Float64() * 2 * math.Pi
		offset := b.Radius + satelliteMax + sp.rng.Float64()*20
		pos := Vec2{
			X: b.Pos.X + math.Cos(angle)*offset,
			Y: b.Pos.Y + math.Sin(angle)*offset,
		}
		vel := Vec2{
			X: b.Vel.X + (sp.rng.Float64()-0.5)*0.8,
			Y: b.Vel.Y + (sp.rng.Float64()-0.5)*0.8,
		}
		radius := satelliteMin + sp.rng.Float64()*(satelliteMax-satelliteMin)
		sp.store.add(pos, vel, radius, b.Theme, now, false)
	}
}
