package paopao

import (
	"math"
	"math/rand/v2"

	"github.com/tanema/gween/ease"
)

// ParticleType selects a particle's kinematics and rendering family.
type ParticleType uint8

const (
	ParticleLiquid ParticleType = iota // melt droplets; land and puddle
	ParticleShard                      // ice fragments; land and flatten
	ParticleMist                       // drifting puffs; never land
	ParticleSpark                      // fast burst streaks
	ParticleRing                       // single expanding shockwave ring
	ParticleFlash                      // instant bright flash
)

// Particle holds per-particle simulation state. Particles are created in
// typed bursts by a bubble state transition and die when Life reaches 0.
type Particle struct {
	X, Y     float64
	VX, VY   float64
	Life     float64 // remaining lifetime in seconds
	MaxLife  float64 // initial lifetime (for computing fade t)
	Size     float64
	Theme    Theme // color tag, inherited from the source bubble
	Type     ParticleType
	Rotation float64
	Spin     float64
	Alpha    float64 // derived each tick from the type's fade curve
	Stretch  float64 // liquid droplets elongate as they fall
	OnGround bool    // liquid/shard at rest on the floor
}

// Per-type tuning.
const (
	liquidGravity = 0.5
	shardGravity  = 0.7
	mistRise      = 0.03
	mistGrowth    = 0.15
	ringGrowth    = 6.0
	sparkDrag     = 0.96
	groundDecay   = 0.5 // grounded particles fade at half rate
	bounceLoss    = 0.4
)

// fadeCurve returns the easing applied to a type's alpha over its
// normalized lifetime, so the visual fade-out rate is consistent no matter
// the particle's initial life value.
func fadeCurve(t ParticleType) ease.TweenFunc {
	switch t {
	case ParticleFlash:
		return ease.OutExpo
	case ParticleRing:
		return ease.OutQuad
	case ParticleSpark:
		return ease.OutCubic
	case ParticleMist:
		return ease.InSine
	default: // liquid, shard
		return ease.InQuad
	}
}

// ParticleEmitter manages a pooled set of particles with CPU simulation.
// New particles are silently dropped when the pool is full.
type ParticleEmitter struct {
	particles []Particle
	alive     int
	floorY    float64
}

func newParticleEmitter(max int, floorY float64) *ParticleEmitter {
	if max <= 0 {
		max = 1024
	}
	return &ParticleEmitter{
		particles: make([]Particle, max),
		floorY:    floorY,
	}
}

// AliveCount returns the number of live particles.
func (e *ParticleEmitter) AliveCount() int {
	return e.alive
}

// Alive returns the live particle slice. Valid until the next update.
func (e *ParticleEmitter) Alive() []Particle {
	return e.particles[:e.alive]
}

// add inserts one particle into the pool, dropping it if the pool is full.
func (e *ParticleEmitter) add(p Particle) {
	if e.alive >= len(e.particles) {
		return
	}
	if p.Life <= 0 {
		p.Life = 0.5
	}
	p.MaxLife = p.Life
	p.Alpha = 1
	e.particles[e.alive] = p
	e.alive++
}

// update advances the pool by one tick, swap-removing dead particles.
func (e *ParticleEmitter) update() {
	i := 0
	for i < e.alive {
		p := &e.particles[i]

		decay := tickDt
		if p.OnGround {
			decay *= groundDecay
		}
		p.Life -= decay
		if p.Life <= 0 {
			// Swap with last alive particle.
			e.alive--
			e.particles[i] = e.particles[e.alive]
			continue
		}

		switch p.Type {
		case ParticleSpark:
			p.VX *= sparkDrag
			p.VY *= sparkDrag
		case ParticleMist:
			p.VY -= mistRise
			p.Size += mistGrowth
		case ParticleRing:
			p.Size += ringGrowth
		case ParticleLiquid:
			if !p.OnGround {
				p.VY += liquidGravity
				p.Stretch += 0.08
				if p.Y+p.VY >= e.floorY {
					p.Y = e.floorY
					p.VX *= 0.3
					p.VY = 0
					p.OnGround = true
					p.Stretch = 0
				}
			}
		case ParticleShard:
			if !p.OnGround {
				p.VY += shardGravity
				if p.Y+p.VY >= e.floorY {
					p.Y = e.floorY
					if p.VY > 2 {
						p.VY = -p.VY * bounceLoss
					} else {
						p.VY = 0
						p.VX *= 0.2
						p.Spin = 0
						p.OnGround = true
					}
				}
			}
		}

		if !p.OnGround {
			p.X += p.VX
			p.Y += p.VY
			p.Rotation += p.Spin
		}

		t := float32(1.0 - p.Life/p.MaxLife)
		p.Alpha = 1.0 - float64(fadeCurve(p.Type)(t, 0, 1, 1))

		i++
	}
}

// Burst shapes. Counts and ranges follow the tuned visuals: pops are loud
// (flash, ring, sparks, a little mist), melts drip, evaporations drift up,
// shatters rain shards.

func (e *ParticleEmitter) burstPop(pos Vec2, radius float64, theme Theme) {
	e.add(Particle{
		X: pos.X, Y: pos.Y,
		Life: 0.15,
		Size: radius * 0.9,
		Type: ParticleFlash, Theme: theme,
	})
	e.add(Particle{
		X: pos.X, Y: pos.Y,
		Life: 0.4,
		Size: radius,
		Type: ParticleRing, Theme: theme,
	})
	n := 40 + rand.IntN(11)
	for i := 0; i < n; i++ {
		angle := rand.Float64() * 2 * math.Pi
		speed := Range{5, 25}.Random()
		e.add(Particle{
			X: pos.X, Y: pos.Y,
			VX:   math.Cos(angle) * speed,
			VY:   math.Sin(angle) * speed,
			Life: Range{0.3, 0.6}.Random(),
			Size: Range{2, 5}.Random(),
			Type: ParticleSpark, Theme: theme,
		})
	}
	for i := 0; i < 10; i++ {
		angle := rand.Float64() * 2 * math.Pi
		speed := Range{0.5, 2}.Random()
		e.add(Particle{
			X: pos.X, Y: pos.Y,
			VX:   math.Cos(angle) * speed,
			VY:   math.Sin(angle) * speed,
			Life: Range{0.5, 1.0}.Random(),
			Size: Range{6, 14}.Random(),
			Type: ParticleMist, Theme: theme,
		})
	}
}

func (e *ParticleEmitter) burstMelt(pos Vec2, radius float64, theme Theme) {
	n := 25 + rand.IntN(6)
	for i := 0; i < n; i++ {
		e.add(Particle{
			X:    pos.X + Range{-radius, radius}.Random()*0.7,
			Y:    pos.Y + Range{-radius, radius}.Random()*0.4,
			VX:   Range{-1.5, 1.5}.Random(),
			VY:   Range{0.5, 2.5}.Random(),
			Life: Range{0.6, 1.1}.Random(),
			Size: Range{3, 7}.Random(),
			Type: ParticleLiquid, Theme: theme,
		})
	}
}

func (e *ParticleEmitter) burstEvaporate(pos Vec2, radius float64, theme Theme) {
	n := 40 + rand.IntN(11)
	for i := 0; i < n; i++ {
		e.add(Particle{
			X:    pos.X + Range{-radius, radius}.Random()*0.6,
			Y:    pos.Y + Range{-radius, radius}.Random()*0.6,
			VX:   Range{-0.8, 0.8}.Random(),
			VY:   Range{-2.5, -0.5}.Random(),
			Life: Range{0.6, 1.2}.Random(),
			Size: Range{4, 10}.Random(),
			Type: ParticleMist, Theme: theme,
		})
	}
}

func (e *ParticleEmitter) burstShatter(pos Vec2, radius float64, theme Theme) {
	n := 25 + rand.IntN(6)
	for i := 0; i < n; i++ {
		angle := rand.Float64() * 2 * math.Pi
		speed := Range{1, 6}.Random()
		e.add(Particle{
			X:    pos.X + Range{-radius, radius}.Random()*0.5,
			Y:    pos.Y + Range{-radius, radius}.Random()*0.5,
			VX:   math.Cos(angle) * speed,
			VY:   math.Sin(angle)*speed - 2,
			Life: Range{0.8, 1.4}.Random(),
			Size: Range{3, 8}.Random(),
			Spin: Range{-0.3, 0.3}.Random(),
			Type: ParticleShard, Theme: theme,
		})
	}
}
