package ebitenhost

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// blurFilter applies a Kawase iterative blur using downscale/upscale passes.
// No Kage shader needed: bilinear filtering during DrawImage does the work.
type blurFilter struct {
	radius int
	temps  []*ebiten.Image
	imgOp  ebiten.DrawImageOptions
}

func newBlurFilter(radius int) *blurFilter {
	if radius < 0 {
		radius = 0
	}
	return &blurFilter{radius: radius}
}

// passes is the number of downscale passes for the radius: log2(radius),
// minimum 1. A zero radius needs no passes.
func (f *blurFilter) passes() int {
	if f.radius <= 0 {
		return 0
	}
	return max(int(math.Ceil(math.Log2(float64(f.radius)))), 1)
}

// padding is the extra room around the source the blur spreads into.
func (f *blurFilter) padding() int { return f.radius }

// apply renders a blurred copy of src into dst.
func (f *blurFilter) apply(src, dst *ebiten.Image) {
	op := &f.imgOp
	passes := f.passes()
	if passes == 0 {
		op.GeoM.Reset()
		op.ColorScale.Reset()
		op.Filter = ebiten.FilterNearest
		dst.DrawImage(src, op)
		return
	}

	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	for len(f.temps) < passes {
		f.temps = append(f.temps, nil)
	}
	// Deallocate excess temp images from a previous larger radius.
	for i := passes; i < len(f.temps); i++ {
		if f.temps[i] != nil {
			f.temps[i].Deallocate()
			f.temps[i] = nil
		}
	}
	f.temps = f.temps[:passes]

	// Downscale passes: each half-size.
	current := src
	for i := 0; i < passes; i++ {
		w = max(w/2, 1)
		h = max(h/2, 1)
		if f.temps[i] == nil || f.temps[i].Bounds().Dx() != w || f.temps[i].Bounds().Dy() != h {
			if f.temps[i] != nil {
				f.temps[i].Deallocate()
			}
			f.temps[i] = ebiten.NewImage(w, h)
		} else {
			f.temps[i].Clear()
		}
		f.scaleInto(f.temps[i], current)
		current = f.temps[i]
	}

	// Upscale back through the chain.
	for i := passes - 2; i >= 0; i-- {
		f.temps[i].Clear()
		f.scaleInto(f.temps[i], current)
		current = f.temps[i]
	}
	f.scaleInto(dst, current)
}

func (f *blurFilter) scaleInto(dst, src *ebiten.Image) {
	op := &f.imgOp
	op.GeoM.Reset()
	op.ColorScale.Reset()
	sw := float64(src.Bounds().Dx())
	sh := float64(src.Bounds().Dy())
	op.GeoM.Scale(float64(dst.Bounds().Dx())/sw, float64(dst.Bounds().Dy())/sh)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(src, op)
}

// Knob drop shadow, matching the SVG filter: blur the knob's alpha, shift it
// by (2, 2) and draw it at 30% opacity.
const (
	shadowBlur    = 3
	shadowOffset  = 2
	shadowOpacity = 0.3
)
