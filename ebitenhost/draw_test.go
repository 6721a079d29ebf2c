package ebitenhost

import (
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/radial"
)

func TestLerpColor(t *testing.T) {
	a := radial.Color{R: 0, G: 0, B: 0, A: 1}
	b := radial.Color{R: 1, G: 0.5, B: 0, A: 1}
	tests := []struct {
		t    float64
		want radial.Color
	}{
		{0, a},
		{1, b},
		{0.5, radial.Color{R: 0.5, G: 0.25, B: 0, A: 1}},
		{-1, a},
		{2, b},
	}
	for _, tt := range tests {
		got := lerpColor(a, b, tt.t)
		if math.Abs(got.R-tt.want.R) > 1e-9 || math.Abs(got.G-tt.want.G) > 1e-9 ||
			math.Abs(got.B-tt.want.B) > 1e-9 || math.Abs(got.A-tt.want.A) > 1e-9 {
			t.Errorf("lerpColor(t=%v) = %+v, want %+v", tt.t, got, tt.want)
		}
	}
}

func TestTintVerticesSolid(t *testing.T) {
	p := radial.Palette{Progress: radial.Color{R: 1, G: 0.5, B: 0, A: 1}}
	vs := []ebiten.Vertex{{DstX: 10, DstY: 10}, {DstX: 50, DstY: 90}}
	tintVertices(vs, p, radial.Vec2{}, 100, 0.5)
	for i, v := range vs {
		if v.SrcX != 1 || v.SrcY != 1 {
			t.Errorf("vertex %d src = (%v, %v), want (1, 1)", i, v.SrcX, v.SrcY)
		}
		// Premultiplied by alpha 0.5.
		if v.ColorR != 0.5 || v.ColorG != 0.25 || v.ColorB != 0 || v.ColorA != 0.5 {
			t.Errorf("vertex %d color = (%v, %v, %v, %v)", i, v.ColorR, v.ColorG, v.ColorB, v.ColorA)
		}
	}
}

func TestTintVerticesGradient(t *testing.T) {
	p := radial.Palette{
		Gradient:     true,
		GradientFrom: radial.Color{R: 1, A: 1},
		GradientTo:   radial.Color{B: 1, A: 1},
	}
	origin := radial.Vec2{X: 100, Y: 200}
	vs := []ebiten.Vertex{
		{DstX: 100, DstY: 200}, // top-left
		{DstX: 200, DstY: 300}, // bottom-right
		{DstX: 150, DstY: 250}, // center
	}
	tintVertices(vs, p, origin, 100, 1)

	if vs[0].ColorR != 1 || vs[0].ColorB != 0 {
		t.Errorf("top-left = (%v, %v), want from color", vs[0].ColorR, vs[0].ColorB)
	}
	if vs[1].ColorR != 0 || vs[1].ColorB != 1 {
		t.Errorf("bottom-right = (%v, %v), want to color", vs[1].ColorR, vs[1].ColorB)
	}
	if vs[2].ColorR != 0.5 || vs[2].ColorB != 0.5 {
		t.Errorf("center = (%v, %v), want halfway", vs[2].ColorR, vs[2].ColorB)
	}
}

func TestBlurPasses(t *testing.T) {
	tests := []struct {
		radius int
		want   int
	}{
		{-2, 0},
		{0, 0},
		{1, 1},
		{2, 1},
		{3, 2},
		{8, 3},
		{9, 4},
	}
	for _, tt := range tests {
		if got := newBlurFilter(tt.radius).passes(); got != tt.want {
			t.Errorf("passes(radius=%d) = %d, want %d", tt.radius, got, tt.want)
		}
	}
}

func TestDrawSliderSkipsUnmounted(t *testing.T) {
	sl, err := radial.NewSlider("a", radial.DefaultConfig(), 0)
	if err != nil {
		t.Fatal(err)
	}
	r := NewRenderer(nil)
	// A nil destination would panic if anything were drawn.
	r.DrawSlider(nil, sl)
}
