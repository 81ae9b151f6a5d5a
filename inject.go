package paopao

// syntheticPointerEvent represents a single injected pointer event, in
// world coordinates.
type syntheticPointerEvent struct {
	x, y float64
	kind uint8 // 0 press, 1 move, 2 release
}

const (
	injectPress uint8 = iota
	injectMove
	injectRelease
)

// InjectPress queues a pointer press at the given coordinates. One injected
// event is consumed at the start of each Tick, so sequences play out over
// successive frames exactly like real input.
func (s *Sim) InjectPress(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{x: x, y: y, kind: injectPress})
}

// InjectMove queues a pointer move with the button held down. Use between
// InjectPress and InjectRelease to simulate a drag.
func (s *Sim) InjectMove(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{x: x, y: y, kind: injectMove})
}

// InjectRelease queues a pointer release at the given coordinates.
func (s *Sim) InjectRelease(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{x: x, y: y, kind: injectRelease})
}

// InjectClick queues a press followed by a release at the same coordinates.
// Consumes two frames.
func (s *Sim) InjectClick(x, y float64) {
	s.InjectPress(x, y)
	s.InjectRelease(x, y)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY), linearly
// interpolated moves over frames-2 intermediate frames, and release at
// (toX, toY). Minimum frames is 2 (press + release).
func (s *Sim) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	s.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		s.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	s.InjectRelease(toX, toY)
}

// consumeInjected pops one queued event and feeds it through the pointer
// handlers, identical to real input.
func (s *Sim) consumeInjected() {
	if len(s.injectQueue) == 0 {
		return
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	switch evt.kind {
	case injectPress:
		s.PointerDown(evt.x, evt.y)
	case injectMove:
		s.PointerMove(evt.x, evt.y)
	case injectRelease:
		s.PointerUp(evt.x, evt.y)
	}
}
