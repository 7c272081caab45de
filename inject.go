package fireworks

// syntheticPointerEvent is a queued pointer sample in pad coordinates.
type syntheticPointerEvent struct {
	x, y    float64
	pressed bool
}

// InjectPress queues a pointer press at (x, y) in pad coordinates. Events
// are consumed one per Update, replacing the live pointer for that frame.
func (s *Studio) InjectPress(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectMove queues a pointer move with the button held. Use it between
// InjectPress and InjectRelease to draw a stroke.
func (s *Studio) InjectMove(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectRelease queues a pointer release at (x, y).
func (s *Studio) InjectRelease(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: false})
}

// InjectDrag queues a full stroke: press at (fromX, fromY), frames-2
// linearly interpolated moves, and release at (toX, toY). The sequence
// consumes `frames` frames; the minimum is 2.
func (s *Studio) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
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

// PendingInput returns the number of queued synthetic events.
func (s *Studio) PendingInput() int {
	return len(s.injectQueue)
}

// processInjectedInput pops one queued event and feeds it to the stroke
// state machine. Returns true if an event was consumed.
func (s *Studio) processInjectedInput() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	s.processPointer(pointerSample{x: evt.x, y: evt.y, pressed: evt.pressed})
	return true
}
