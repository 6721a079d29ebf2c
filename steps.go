package radial

import "math"

// fullTurn is one revolution in radians.
const fullTurn = 2 * math.Pi

// stepTolerance absorbs float error when dividing the range by the step size,
// so that e.g. 0.3/0.1 still yields 3 whole steps.
const stepTolerance = 1e-9

// Steps maps between step indices, values and knob angles for one
// configuration. It is an immutable value: a Slider rebuilds it whenever its
// configuration changes instead of mutating it in place.
//
// The full circle is divided evenly across the steps: index 0 sits at angle 0
// (the top) and the last index at a full turn, which is drawn at the top again.
type Steps struct {
	min   float64
	size  float64
	count int
}

// NewSteps derives the step sequence for cfg. cfg is expected to have passed
// Validate; a degenerate range still yields a single step rather than a panic.
func NewSteps(cfg Config) Steps {
	s := Steps{min: cfg.Min, size: cfg.StepSize, count: 1}
	if cfg.StepSize > 0 && cfg.Max > cfg.Min {
		n := math.Floor((cfg.Max-cfg.Min)/cfg.StepSize + stepTolerance)
		if n > 0 && n < math.MaxInt32 {
			s.count = int(n) + 1
		}
	}
	return s
}

// Count returns the number of steps, floor((max-min)/stepSize) + 1.
func (s Steps) Count() int { return s.count }

// Value returns the value of the step at index, clamping index to the valid
// range.
func (s Steps) Value(index int) float64 {
	return s.min + float64(s.clampIndex(index))*s.size
}

// Values returns the whole step sequence min, min+step, ... up to max.
func (s Steps) Values() []float64 {
	out := make([]float64, s.count)
	for i := range out {
		out[i] = s.min + float64(i)*s.size
	}
	return out
}

// AngleForIndex returns the knob angle for a step index: index/(count-1) of a
// full turn.
func (s Steps) AngleForIndex(index int) float64 {
	if s.count < 2 {
		return 0
	}
	return float64(s.clampIndex(index)) / float64(s.count-1) * fullTurn
}

// IndexForAngle returns the step nearest to angle. The angle is normalized
// first; see normalizeAngle for how an exact full turn is kept.
func (s Steps) IndexForAngle(angle float64) int {
	if s.count < 2 {
		return 0
	}
	a := normalizeAngle(angle)
	return s.clampIndex(int(math.Round(a / fullTurn * float64(s.count-1))))
}

// IndexForValue returns the index of the step closest to value. Values outside
// [min, max] clamp to the first or last step; NaN maps to the first step.
func (s Steps) IndexForValue(value float64) int {
	if math.IsNaN(value) || s.size <= 0 {
		return 0
	}
	f := math.Round((value - s.min) / s.size)
	if f <= 0 {
		return 0
	}
	if f >= float64(s.count-1) {
		return s.count - 1
	}
	return int(f)
}

func (s Steps) clampIndex(i int) int {
	if i < 0 {
		return 0
	}
	if i >= s.count {
		return s.count - 1
	}
	return i
}

// normalizeAngle wraps an angle into [0, 2π). An angle of exactly one full turn
// is returned unchanged so that the last step, which AngleForIndex places at
// 2π, survives a round trip. NaN and infinities normalize to 0.
func normalizeAngle(a float64) float64 {
	if math.IsNaN(a) || math.IsInf(a, 0) {
		return 0
	}
	if a >= 0 && a <= fullTurn {
		return a
	}
	a = math.Mod(a, fullTurn)
	if a < 0 {
		a += fullTurn
	}
	if a >= fullTurn {
		a = 0
	}
	return a
}
