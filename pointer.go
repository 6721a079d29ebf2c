package radial

import "math"

// AngleForPointer converts a pointer position in surface coordinates into a
// knob angle around the center of bounds: 0 at the top, increasing clockwise
// (surface Y grows downward). The result is always in [0, 2π).
//
// ok is false when bounds is empty, i.e. the element has not been laid out,
// in which case the event should be ignored. A pointer exactly at the center
// yields angle 0.
func AngleForPointer(x, y float64, bounds Rect) (angle float64, ok bool) {
	if bounds.Empty() {
		return 0, false
	}
	if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
		return 0, false
	}
	c := bounds.Center()
	dx := x - c.X
	dy := y - c.Y
	if dx == 0 && dy == 0 {
		return 0, true
	}
	// atan2 measures from 3 o'clock; a quarter turn moves zero to 12 o'clock.
	a := math.Atan2(dy, dx) + math.Pi/2
	if a < 0 {
		a += fullTurn
	}
	if a >= fullTurn {
		a -= fullTurn
	}
	return a, true
}

// PointOnCircle returns the point at angle on a circle of radius r around
// center, using the same 0-at-top, clockwise convention as AngleForPointer.
func PointOnCircle(center Vec2, r, angle float64) Vec2 {
	return Vec2{
		X: center.X + r*math.Sin(angle),
		Y: center.Y - r*math.Cos(angle),
	}
}

// angleDelta is the raw angular distance between two knob angles, without
// wrapping across the 0/2π seam.
func angleDelta(a, b float64) float64 {
	return math.Abs(a - b)
}
