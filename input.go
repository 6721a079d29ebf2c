package radial

import "math"

// MaxPointers is the number of pointers a Surface tracks: pointer 0 is the
// mouse and 1-9 are touch slots.
const MaxPointers = 10

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button; also used for touches
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// PointerContext carries the data of a single pointer event.
type PointerContext struct {
	// Target is the slider whose knob was under the pointer at press time, or
	// nil. Only set for EventPointerDown.
	Target    *Slider
	X, Y      float64 // surface coordinates
	PointerID int
	Button    MouseButton
}

// HitCircle is a circular hit area in surface coordinates.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// --- Per-pointer state ---

type pointerState struct {
	down   bool
	lastX  float64
	lastY  float64
	button MouseButton // button captured at press time
}

// --- Handler registry ---

type pointerHandler struct {
	id uint32
	fn func(PointerContext)
}

type handlerRegistry struct {
	pointerDown []pointerHandler
	pointerUp   []pointerHandler
	pointerMove []pointerHandler
	nextID      uint32
}

func (r *handlerRegistry) slot(event EventType) *[]pointerHandler {
	switch event {
	case EventPointerDown:
		return &r.pointerDown
	case EventPointerUp:
		return &r.pointerUp
	case EventPointerMove:
		return &r.pointerMove
	}
	return nil
}

func (r *handlerRegistry) add(event EventType, fn func(PointerContext)) CallbackHandle {
	r.nextID++
	id := r.nextID
	s := r.slot(event)
	*s = append(*s, pointerHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: r, event: event}
}

// CallbackHandle allows removing a registered surface-level callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires. Removing twice, or
// removing a zero handle, is a no-op.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	s := h.reg.slot(h.event)
	if s == nil {
		return
	}
	*s = removePointerHandler(*s, h.id)
}

func removePointerHandler(s []pointerHandler, id uint32) []pointerHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = pointerHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

// --- Surface-level event registration ---

// OnPointerDown registers a surface-level callback for pointer down events.
func (s *Surface) OnPointerDown(fn func(PointerContext)) CallbackHandle {
	return s.handlers.add(EventPointerDown, fn)
}

// OnPointerUp registers a surface-level callback for pointer up events. It
// fires wherever the pointer is released, inside a slider or not.
func (s *Surface) OnPointerUp(fn func(PointerContext)) CallbackHandle {
	return s.handlers.add(EventPointerUp, fn)
}

// OnPointerMove registers a surface-level callback for movement of a pressed
// pointer.
func (s *Surface) OnPointerMove(fn func(PointerContext)) CallbackHandle {
	return s.handlers.add(EventPointerMove, fn)
}

// ListenerCount returns how many surface-level callbacks are registered for
// event. Sliders register their move/up pair only while dragging.
func (s *Surface) ListenerCount(event EventType) int {
	if sl := s.handlers.slot(event); sl != nil {
		return len(*sl)
	}
	return 0
}

// --- Drag sessions ---

// dragSession is the global move/up listener pair that keeps a drag tracking
// the pointer even after it leaves the slider. The only way to obtain one is
// beginDrag, which registers both listeners and returns them bundled with
// their teardown; the up listener releases the session itself, so a drag
// always ends with both listeners removed no matter where the release lands.
type dragSession struct {
	pointerID int
	move      CallbackHandle
	up        CallbackHandle
	released  bool
}

// beginDrag registers the move/up pair for one pointer. onMove receives moves
// of that pointer only; onEnd runs once, after the listeners are removed.
func (s *Surface) beginDrag(pointerID int, onMove, onEnd func(PointerContext)) *dragSession {
	d := &dragSession{pointerID: pointerID}
	d.move = s.OnPointerMove(func(ctx PointerContext) {
		if ctx.PointerID == d.pointerID && !d.released {
			onMove(ctx)
		}
	})
	d.up = s.OnPointerUp(func(ctx PointerContext) {
		if ctx.PointerID != d.pointerID || d.released {
			return
		}
		d.release()
		onEnd(ctx)
	})
	return d
}

// release removes both listeners. Safe to call more than once and on nil.
func (d *dragSession) release() {
	if d == nil || d.released {
		return
	}
	d.released = true
	d.move.Remove()
	d.up.Remove()
}

// --- Hit testing ---

// hitTest returns the topmost mounted slider whose knob contains (x, y).
// Sliders mounted later are on top.
func (s *Surface) hitTest(x, y float64) *Slider {
	for i := len(s.sliders) - 1; i >= 0; i-- {
		sl := s.sliders[i]
		if sl.knobHitArea().Contains(x, y) {
			return sl
		}
	}
	return nil
}

// --- Input processing ---

// InputSource feeds raw device input into a Surface once per update, by
// calling ProcessPointer for every pointer it tracks.
type InputSource interface {
	Poll(s *Surface)
}

// ProcessPointer runs the press/move/release state machine for one pointer.
// pointerID 0 is the mouse; 1-9 are touch slots. Hosts call it once per
// pointer per update with the current position and pressed state.
func (s *Surface) ProcessPointer(pointerID int, x, y float64, pressed bool, button MouseButton) {
	if pointerID < 0 || pointerID >= MaxPointers {
		return
	}
	if math.IsNaN(x) || math.IsNaN(y) {
		s.logf("pointer %d: dropped NaN position", pointerID)
		return
	}
	ps := &s.pointers[pointerID]

	switch {
	case pressed && !ps.down:
		// Just pressed: capture the button for the duration of this interaction.
		ps.down = true
		ps.button = button
		ps.lastX, ps.lastY = x, y
		s.firePointerDown(pointerID, x, y, button)
	case !pressed && ps.down:
		// Just released: report the button from press start.
		ps.down = false
		s.firePointerUp(pointerID, x, y, ps.button)
		ps.lastX, ps.lastY = x, y
	case pressed && ps.down:
		if x != ps.lastX || y != ps.lastY {
			ps.lastX, ps.lastY = x, y
			s.firePointerMove(pointerID, x, y, ps.button)
		}
	}
}

// PointerDown reports whether the given pointer is currently pressed.
func (s *Surface) PointerDown(pointerID int) bool {
	if pointerID < 0 || pointerID >= MaxPointers {
		return false
	}
	return s.pointers[pointerID].down
}

// --- Event dispatch ---

// Each fire* copies its handler list first so callbacks may add or remove
// handlers (a drag starting or ending) while the event is being delivered.

func (s *Surface) firePointerDown(pointerID int, x, y float64, button MouseButton) {
	target := s.hitTest(x, y)
	ctx := PointerContext{Target: target, X: x, Y: y, PointerID: pointerID, Button: button}
	// Surface-level handlers first.
	handlers := append([]pointerHandler(nil), s.handlers.pointerDown...)
	for _, h := range handlers {
		h.fn(ctx)
	}
	if target != nil {
		target.handlePointerDown(ctx)
	}
}

func (s *Surface) firePointerUp(pointerID int, x, y float64, button MouseButton) {
	ctx := PointerContext{X: x, Y: y, PointerID: pointerID, Button: button}
	handlers := append([]pointerHandler(nil), s.handlers.pointerUp...)
	for _, h := range handlers {
		h.fn(ctx)
	}
}

func (s *Surface) firePointerMove(pointerID int, x, y float64, button MouseButton) {
	ctx := PointerContext{X: x, Y: y, PointerID: pointerID, Button: button}
	handlers := append([]pointerHandler(nil), s.handlers.pointerMove...)
	for _, h := range handlers {
		h.fn(ctx)
	}
}
