package radial

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// ValueSweep moves a slider's externally supplied value from its current value
// to a target over time, the way an owner animating its own state would. Each
// Update feeds the tweened value through Slider.SetValue, so the sweep pauses
// while the user drags the knob and resumes from wherever the tween is.
//
// There is no global animation manager; callers Update each sweep themselves.
type ValueSweep struct {
	tween  *gween.Tween
	target *Slider
	Done   bool
}

// NewValueSweep creates a sweep of sl from its current value to to over
// duration seconds using the easing function fn (ease.Linear if nil).
func NewValueSweep(sl *Slider, to float64, duration float32, fn ease.TweenFunc) *ValueSweep {
	if fn == nil {
		fn = ease.Linear
	}
	return &ValueSweep{
		tween:  gween.New(float32(sl.Value()), float32(to), duration, fn),
		target: sl,
	}
}

// Update advances the sweep by dt seconds and hands the tweened value to the
// slider. If the slider has been unmounted, Done is set and nothing is
// written.
func (w *ValueSweep) Update(dt float32) {
	if w.Done {
		return
	}
	if w.target.Unmounted() {
		w.Done = true
		return
	}
	val, finished := w.tween.Update(dt)
	w.target.SetValue(float64(val))
	w.Done = finished
}

// Reset rewinds the sweep to its start.
func (w *ValueSweep) Reset() {
	w.tween.Reset()
	w.Done = false
}
