package radial

import "math"

// State is the interaction state of a Slider.
type State uint8

const (
	StateIdle     State = iota // no active drag
	StateDragging              // a pointer is captured by the knob
)

// String returns "idle" or "dragging".
func (st State) String() string {
	if st == StateDragging {
		return "dragging"
	}
	return "idle"
}

// Slider is a circular slider: a knob dragged around a track picks one of the
// discrete steps between Config.Min and Config.Max.
//
// The slider starts a drag when a pointer is pressed on its knob and follows
// that pointer anywhere on the Surface until it is released. Every accepted
// move snaps to the nearest step and calls OnChange with the step's value.
type Slider struct {
	// Name identifies the slider in scripts, debug output and SVG ids.
	Name string

	// OnChange is called with the new value after every accepted drag move.
	// It is never called for a disabled slider or for SetValue.
	OnChange func(value float64)

	cfg   Config
	steps Steps
	index int
	angle float64 // snapped to the current step

	// rawAngle is the unsnapped pointer angle of the last accepted move, or
	// the snapped angle after SetValue, SetConfig and at drag start. The jump
	// guard measures against it.
	rawAngle float64

	external    float64 // last value supplied by the owner or reached by a drag
	hasExternal bool

	session *dragSession

	surface   *Surface
	origin    Vec2
	unmounted bool
}

// NewSlider creates a slider for cfg positioned at the step nearest to value.
// It returns an error wrapping one of the Err* sentinels if cfg is invalid.
func NewSlider(name string, cfg Config, value float64) (*Slider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Slider{Name: name, cfg: cfg, steps: NewSteps(cfg)}
	s.SetValue(value)
	return s, nil
}

// Config returns the slider's current configuration.
func (s *Slider) Config() Config { return s.cfg }

// Steps returns the step helper derived from the current configuration.
func (s *Slider) Steps() Steps { return s.steps }

// SetConfig validates and applies a new configuration. The step helper is
// rebuilt and the current value re-snapped onto the new step sequence. Turning
// on Disabled ends a drag in progress.
func (s *Slider) SetConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	value := s.Value()
	s.cfg = cfg
	s.steps = NewSteps(cfg)
	s.index = s.steps.IndexForValue(value)
	s.angle = s.steps.AngleForIndex(s.index)
	s.rawAngle = s.angle
	if cfg.Disabled {
		s.endDrag()
	}
	return nil
}

// Index returns the current step index.
func (s *Slider) Index() int { return s.index }

// Angle returns the current knob angle in radians, 0 at the top, clockwise.
func (s *Slider) Angle() float64 { return s.angle }

// Value returns the value of the current step.
func (s *Slider) Value() float64 { return s.steps.Value(s.index) }

// State reports whether the slider is idle or being dragged.
func (s *Slider) State() State {
	if s.session != nil {
		return StateDragging
	}
	return StateIdle
}

// Dragging reports whether a drag is in progress.
func (s *Slider) Dragging() bool { return s.session != nil }

// SetValue reconciles the slider with a value supplied by its owner, typically
// once per update from the owner's own state. When the value differs from the
// last one seen, either supplied here or reached by a drag, the slider moves
// to the nearest step. While a drag is in progress the call is ignored so the
// owner cannot fight the user's gesture. It reports whether the slider state
// was updated.
func (s *Slider) SetValue(value float64) bool {
	if s.session != nil {
		s.logf("%q: ignored external value %v while dragging", s.Name, value)
		return false
	}
	if s.hasExternal && sameValue(value, s.external) {
		return false
	}
	s.external = value
	s.hasExternal = true
	s.index = s.steps.IndexForValue(value)
	s.angle = s.steps.AngleForIndex(s.index)
	s.rawAngle = s.angle
	return true
}

func sameValue(a, b float64) bool {
	return a == b || (math.IsNaN(a) && math.IsNaN(b))
}

// Bounds returns the slider's box in surface coordinates, or an empty Rect
// while it is not mounted.
func (s *Slider) Bounds() Rect {
	if s.surface == nil {
		return Rect{}
	}
	return Rect{X: s.origin.X, Y: s.origin.Y, Width: s.cfg.Size, Height: s.cfg.Size}
}

// Unmount detaches the slider from its surface, if any.
func (s *Slider) Unmount() {
	if s.surface != nil {
		s.surface.Unmount(s)
	}
}

// Unmounted reports whether the slider was removed from a surface and not
// mounted again.
func (s *Slider) Unmounted() bool { return s.unmounted }

// Geometry lays the slider out at its current angle in local coordinates
// (origin at the slider's top-left corner).
func (s *Slider) Geometry() Geometry {
	return Layout(s.cfg, s.angle, s.Value())
}

// knobHitArea is the knob circle in surface coordinates.
func (s *Slider) knobHitArea() HitCircle {
	if s.surface == nil {
		return HitCircle{}
	}
	g := s.Geometry()
	return HitCircle{
		CenterX: s.origin.X + g.Knob.X,
		CenterY: s.origin.Y + g.Knob.Y,
		Radius:  g.KnobRadius,
	}
}

// --- State machine ---

func (s *Slider) handlePointerDown(ctx PointerContext) {
	if s.cfg.Disabled || s.surface == nil || s.session != nil {
		return
	}
	if ctx.Button != MouseButtonLeft {
		return
	}
	s.rawAngle = s.angle
	s.session = s.surface.beginDrag(ctx.PointerID, s.handleDragMove, s.handleDragEnd)
	s.logf("%q: drag start (pointer %d)", s.Name, ctx.PointerID)
}

func (s *Slider) handleDragMove(ctx PointerContext) {
	angle, ok := AngleForPointer(ctx.X, ctx.Y, s.Bounds())
	if !ok {
		s.logf("%q: move ignored, bounds unavailable", s.Name)
		return
	}
	// More than half a turn in one move is a jump across the 0/2π seam.
	if angleDelta(angle, s.rawAngle) > math.Pi {
		s.logf("%q: discarded jump %.3f -> %.3f", s.Name, s.rawAngle, angle)
		return
	}
	s.rawAngle = angle
	s.index = s.steps.IndexForAngle(angle)
	s.angle = s.steps.AngleForIndex(s.index)
	// OnChange hands this value to the owner; reconcile against it.
	s.external = s.Value()
	s.hasExternal = true
	if s.OnChange != nil {
		s.OnChange(s.Value())
	}
}

func (s *Slider) handleDragEnd(ctx PointerContext) {
	s.session = nil
	s.logf("%q: drag end at (%.0f, %.0f)", s.Name, ctx.X, ctx.Y)
}

// endDrag drops an in-progress drag without waiting for the pointer release.
func (s *Slider) endDrag() {
	if s.session == nil {
		return
	}
	s.session.release()
	s.session = nil
	s.logf("%q: drag cancelled", s.Name)
}

func (s *Slider) logf(format string, args ...any) {
	if s.surface != nil {
		s.surface.logf(format, args...)
	}
}
