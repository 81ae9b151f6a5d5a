// Package paopao is a gesture-driven soft-body bubble simulation core.
//
// Paopao turns noisy per-frame hand-landmark samples (21 points per hand,
// MediaPipe convention) into stable discrete gestures, and drives a bubble
// and particle simulation from those gestures: pinch to grow a bubble, open
// hand to paint trails of small bubbles, fist to push bubbles away, point to
// lock onto a bubble and freeze, melt, evaporate, or pop it.
//
// The package is purely in-memory and frame-driven. The host owns the loop
// and calls [Sim.Tick] once per display frame:
//
//	sim := paopao.NewSim(paopao.DefaultConfig())
//
//	// each frame:
//	sim.PushHands(cameraTime, samples...)
//	sim.Tick(now)
//	for _, b := range sim.Bubbles() { /* draw */ }
//	for _, p := range sim.Particles() { /* draw */ }
//
// Rendering is the host's concern; [DrawWorld] provides a minimal procedural
// presenter for demos and debugging. A pointer/mouse modality is available
// as an alternative to hand tracking via [Sim.PointerDown], [Sim.PointerMove]
// and [Sim.PointerUp], with synthetic injection helpers ([Sim.InjectPress],
// [Sim.InjectDrag]) and JSON-scripted scenarios ([LoadScript]) for automated
// runs.
//
// Pop, melt, and evaporate removals emit a single discrete event carrying
// the bubble's theme; subscribe with [Sim.OnExpansion] or bridge it into a
// Donburi ECS world with the paopao/ecs sub-module.
package paopao
