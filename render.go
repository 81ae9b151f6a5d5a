package paopao

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Minimal procedural presenter for demos and debugging. The simulation core
// deliberately knows nothing about gradients, sprites, or themes beyond the
// symbolic tag; this just makes the state visible.

// themeColors maps each theme to a flat presentation color.
var themeColors = [themeCount]color.RGBA{
	ThemeOcean:   {R: 0x4f, G: 0xa3, B: 0xe3, A: 0xff},
	ThemeMeadow:  {R: 0x6f, G: 0xcf, B: 0x7a, A: 0xff},
	ThemeSunset:  {R: 0xef, G: 0x8a, B: 0x4c, A: 0xff},
	ThemeEmber:   {R: 0xe3, G: 0x4f, B: 0x4f, A: 0xff},
	ThemeGlacier: {R: 0x9f, G: 0xdc, B: 0xef, A: 0xff},
	ThemeAurora:  {R: 0xb3, G: 0x7a, B: 0xe3, A: 0xff},
}

// ThemeColor returns the flat presentation color for a theme.
func ThemeColor(t Theme) color.RGBA {
	if int(t) < len(themeColors) {
		return themeColors[t]
	}
	return color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
}

func withAlpha(c color.RGBA, a float64) color.RGBA {
	a = clamp(a, 0, 1)
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(255 * a),
	}
}

// DrawWorld renders the simulation's bubbles, in-progress creations, locked
// target highlight, and particles onto dst.
func DrawWorld(dst *ebiten.Image, sim *Sim) {
	for _, b := range sim.Bubbles() {
		c := ThemeColor(b.Theme)
		fill := withAlpha(c, 0.25)
		if b.State == StateFrozen {
			fill = withAlpha(color.RGBA{R: 0xd8, G: 0xf2, B: 0xff, A: 0xff}, 0.6)
		}
		vector.DrawFilledCircle(dst, float32(b.Pos.X), float32(b.Pos.Y), float32(b.Radius), fill, true)
		vector.StrokeCircle(dst, float32(b.Pos.X), float32(b.Pos.Y), float32(b.Radius), 2, c, true)
	}

	for _, c := range sim.Creations() {
		vector.StrokeCircle(dst, float32(c.Pos.X), float32(c.Pos.Y), float32(c.Radius), 1.5,
			color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xb0}, true)
	}

	if t := sim.LockedTarget(); t != nil {
		vector.StrokeCircle(dst, float32(t.Pos.X), float32(t.Pos.Y), float32(t.Radius+8), 1.5,
			color.RGBA{R: 0xff, G: 0xe8, B: 0x6a, A: 0xff}, true)
	}

	for _, p := range sim.Particles() {
		c := withAlpha(ThemeColor(p.Theme), p.Alpha)
		switch p.Type {
		case ParticleRing:
			vector.StrokeCircle(dst, float32(p.X), float32(p.Y), float32(p.Size), 2, c, true)
		case ParticleFlash:
			vector.DrawFilledCircle(dst, float32(p.X), float32(p.Y), float32(p.Size),
				withAlpha(color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, p.Alpha), true)
		case ParticleLiquid:
			h := float32(p.Size)
			if p.OnGround {
				// Flattened puddle.
				vector.DrawFilledRect(dst, float32(p.X)-h*1.6, float32(p.Y)-h*0.3, h*3.2, h*0.6, c, true)
			} else {
				vector.DrawFilledRect(dst, float32(p.X)-h*0.4, float32(p.Y)-h*float32(1+p.Stretch)*0.5,
					h*0.8, h*float32(1+p.Stretch), c, true)
			}
		case ParticleShard:
			h := float32(p.Size)
			if p.OnGround {
				vector.DrawFilledRect(dst, float32(p.X)-h, float32(p.Y)-h*0.25, h*2, h*0.5, c, true)
			} else {
				vector.DrawFilledRect(dst, float32(p.X)-h*0.5, float32(p.Y)-h*0.5, h, h, c, true)
			}
		default:
			vector.DrawFilledCircle(dst, float32(p.X), float32(p.Y), float32(p.Size*0.5), c, true)
		}
	}
}

// DrawDebug overlays entity counts and frame rates in the top-left corner.
func DrawDebug(dst *ebiten.Image, sim *Sim) {
	msg := fmt.Sprintf("FPS: %.1f  TPS: %.1f\nbubbles: %d  particles: %d",
		ebiten.ActualFPS(), ebiten.ActualTPS(),
		len(sim.Bubbles()), len(sim.Particles()))
	ebitenutil.DebugPrint(dst, msg)
}
