package radial

import (
	"math"
	"testing"
)

func TestAngleForPointer(t *testing.T) {
	b := Rect{X: 100, Y: 100, Width: 200, Height: 200} // center (200, 200)

	tests := []struct {
		name string
		x, y float64
		want float64
	}{
		{"top", 200, 100, 0},
		{"right", 300, 200, math.Pi / 2},
		{"bottom", 200, 300, math.Pi},
		{"left", 100, 200, 3 * math.Pi / 2},
		{"top-right", 250, 150, math.Pi / 4},
		{"center", 200, 200, 0},
		{"outside bounds still measured", 1000, 200, math.Pi / 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := AngleForPointer(tt.x, tt.y, b)
			if !ok {
				t.Fatal("ok = false, want true")
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("AngleForPointer(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestAngleForPointerRange(t *testing.T) {
	b := Rect{Width: 100, Height: 100}
	// Just left of the top: close to a full turn but never equal to it.
	got, ok := AngleForPointer(49.999999, 0, b)
	if !ok {
		t.Fatal("ok = false")
	}
	if got < 0 || got >= 2*math.Pi {
		t.Errorf("angle %v outside [0, 2π)", got)
	}
	if got < 2*math.Pi-0.001 {
		t.Errorf("angle %v, want just under 2π", got)
	}
}

func TestAngleForPointerUnavailable(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
		b    Rect
	}{
		{"empty bounds", 10, 10, Rect{}},
		{"zero width", 10, 10, Rect{Width: 0, Height: 50}},
		{"NaN x", math.NaN(), 10, Rect{Width: 50, Height: 50}},
		{"infinite y", 10, math.Inf(1), Rect{Width: 50, Height: 50}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := AngleForPointer(tt.x, tt.y, tt.b); ok {
				t.Error("ok = true, want false")
			}
		})
	}
}

func TestPointOnCircle(t *testing.T) {
	c := Vec2{X: 90, Y: 90}
	tests := []struct {
		angle float64
		want  Vec2
	}{
		{0, Vec2{90, 20}},
		{math.Pi / 2, Vec2{160, 90}},
		{math.Pi, Vec2{90, 160}},
		{3 * math.Pi / 2, Vec2{20, 90}},
	}
	for _, tt := range tests {
		got := PointOnCircle(c, 70, tt.angle)
		if math.Abs(got.X-tt.want.X) > 1e-9 || math.Abs(got.Y-tt.want.Y) > 1e-9 {
			t.Errorf("PointOnCircle(%v) = %v, want %v", tt.angle, got, tt.want)
		}
	}
}

func TestPointOnCircleInverse(t *testing.T) {
	b := Rect{Width: 180, Height: 180}
	for _, a := range []float64{0.1, 1, 2, 3, 4, 5, 6} {
		p := PointOnCircle(b.Center(), 70, a)
		got, _ := AngleForPointer(p.X, p.Y, b)
		if math.Abs(got-a) > 1e-9 {
			t.Errorf("AngleForPointer(PointOnCircle(%v)) = %v", a, got)
		}
	}
}
