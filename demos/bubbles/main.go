// bubbles runs the gesture bubble simulation with mouse input standing in
// for the camera: hold the left button to grow a bubble, drag to paint a
// trail, click for a repulsion pulse. Holding a key feeds a synthetic hand
// gesture at the cursor instead — G pinch, O open hand, F fist, P point.
package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/chengxiangming9-boop/paopao"
)

const (
	screenW = 1280
	screenH = 720
)

type game struct {
	sim     *paopao.Sim
	frame   int
	mouseDn bool
}

func newGame() *game {
	sim := paopao.NewSim(paopao.Config{Width: screenW, Height: screenH})
	sim.OnExpansion(func(ev paopao.ExpansionEvent) {
		log.Printf("universe expanded: %s at (%.0f, %.0f)", ev.Theme, ev.Pos.X, ev.Pos.Y)
	})
	return &game{sim: sim}
}

func (g *game) Update() error {
	g.frame++
	now := float64(g.frame) / 60.0

	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)

	if gesture := heldGesture(); gesture != paopao.GestureNone {
		sample := paopao.SyntheticSample(gesture, paopao.Vec2{X: x, Y: y}, screenW, screenH)
		g.sim.PushHands(now, sample)
	} else {
		down := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
		switch {
		case down && !g.mouseDn:
			g.sim.PointerDown(x, y)
		case down:
			g.sim.PointerMove(x, y)
		case g.mouseDn:
			g.sim.PointerUp(x, y)
		}
		g.mouseDn = down
	}

	g.sim.Tick(now)
	return nil
}

func heldGesture() paopao.Gesture {
	switch {
	case ebiten.IsKeyPressed(ebiten.KeyG):
		return paopao.GesturePinch
	case ebiten.IsKeyPressed(ebiten.KeyO):
		return paopao.GestureOpenHand
	case ebiten.IsKeyPressed(ebiten.KeyF):
		return paopao.GestureFist
	case ebiten.IsKeyPressed(ebiten.KeyP):
		return paopao.GesturePoint
	}
	return paopao.GestureNone
}

func (g *game) Draw(screen *ebiten.Image) {
	paopao.DrawWorld(screen, g.sim)
	paopao.DrawDebug(screen, g.sim)
}

func (g *game) Layout(w, h int) (int, int) {
	return screenW, screenH
}

func main() {
	ebiten.SetWindowSize(screenW, screenH)
	ebiten.SetWindowTitle("paopao bubbles")
	if err := ebiten.RunGame(newGame()); err != nil {
		log.Fatal(err)
	}
}
