package radial

import "math"

// syntheticPointerEvent is a single injected pointer event in surface
// coordinates, delivered as the mouse pointer.
type syntheticPointerEvent struct {
	x, y    float64
	pressed bool
}

// InjectPress queues a left-button press of pointer 0 at surface position
// (x, y). A press on a slider's knob starts a drag. Queued events are
// consumed one per Surface.Update, and a tick that consumes one skips the
// InputSource.
func (s *Surface) InjectPress(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectMove queues pointer 0 moving to (x, y) with the button held. During a
// drag the slider snaps to the step nearest the angle of (x, y) about its
// center. A move more than half a turn from the previous one is discarded.
func (s *Surface) InjectMove(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectRelease queues pointer 0 releasing at (x, y), ending any drag it
// started wherever the release lands.
func (s *Surface) InjectRelease(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: false})
}

// InjectClick queues a press and release at (x, y). A click does not move a
// slider, since only moves change its value. Consumes two updates.
func (s *Surface) InjectClick(x, y float64) {
	s.InjectPress(x, y)
	s.InjectRelease(x, y)
}

// InjectDrag queues a straight-line drag of pointer 0 in surface coordinates
// over frames updates (at least 2): a press at (fromX, fromY), frames-2 moves
// along the line and a release at (toX, toY). A line through a slider's center
// can swing the angle by half a turn in one move; use InjectArc to follow the
// track instead.
func (s *Surface) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
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

// InjectArc queues a drag that presses on sl's knob, follows the track
// clockwise or counter-clockwise to the angle to, and releases there. The
// path is split into moves no longer than maxStep radians so the jump guard
// never rejects them. It does nothing if sl is not mounted.
func (s *Surface) InjectArc(sl *Slider, to, maxStep float64) {
	b := sl.Bounds()
	if b.Empty() {
		return
	}
	if !(maxStep > 0) {
		maxStep = 0.1
	}
	g := sl.Geometry()
	center := b.Center()
	from := sl.Angle()
	s.InjectPress(b.X+g.Knob.X, b.Y+g.Knob.Y)
	n := int(math.Abs(to-from)/maxStep) + 1
	for i := 1; i <= n; i++ {
		a := from + (to-from)*float64(i)/float64(n)
		p := PointOnCircle(center, g.Radius, a)
		s.InjectMove(p.X, p.Y)
	}
	p := PointOnCircle(center, g.Radius, to)
	s.InjectRelease(p.X, p.Y)
}

// PendingInjections returns the number of queued synthetic events.
func (s *Surface) PendingInjections() int {
	return len(s.injectQueue)
}

// processInjectedInput pops one queued event and feeds it through
// ProcessPointer as pointer 0. It reports whether an event was consumed, in
// which case real device input is skipped for this update.
func (s *Surface) processInjectedInput() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	s.ProcessPointer(0, evt.x, evt.y, evt.pressed, MouseButtonLeft)
	return true
}
