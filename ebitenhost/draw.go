package ebitenhost

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/phanxgames/radial"
)

// disabledAlpha dims every part of a disabled slider.
const disabledAlpha = 0.5

// Renderer draws sliders with Ebitengine vector graphics. Scratch images and
// vertex buffers are reused between frames, so a Renderer must only be used
// from the draw goroutine.
type Renderer struct {
	Font *Font

	white    *ebiten.Image
	blur     *blurFilter
	knobSrc  *ebiten.Image
	knobBlur *ebiten.Image

	vs    []ebiten.Vertex
	is    []uint16
	triOp ebiten.DrawTrianglesOptions
	imgOp ebiten.DrawImageOptions
}

// NewRenderer creates a renderer that draws labels with font. A nil font
// skips labels.
func NewRenderer(font *Font) *Renderer {
	return &Renderer{Font: font, blur: newBlurFilter(shadowBlur)}
}

// DrawSurface draws every mounted slider in mount order.
func (r *Renderer) DrawSurface(dst *ebiten.Image, s *radial.Surface) {
	for _, sl := range s.Sliders() {
		r.DrawSlider(dst, sl)
	}
}

// DrawSlider draws sl at its mounted position. Unmounted sliders are skipped.
func (r *Renderer) DrawSlider(dst *ebiten.Image, sl *radial.Slider) {
	b := sl.Bounds()
	if b.Empty() {
		return
	}
	r.DrawGeometry(dst, sl.Geometry(), radial.Vec2{X: b.X, Y: b.Y})
}

// DrawGeometry draws a laid out slider with its top-left corner at origin.
func (r *Renderer) DrawGeometry(dst *ebiten.Image, g radial.Geometry, origin radial.Vec2) {
	alpha := 1.0
	if g.Disabled {
		alpha = disabledAlpha
	}
	p := g.Palette
	cx, cy := origin.X+g.Center.X, origin.Y+g.Center.Y

	vector.StrokeCircle(dst, float32(cx), float32(cy), float32(g.Radius),
		float32(g.CircleWidth), p.Circle.WithAlpha(alpha).RGBA(), true)

	r.drawArc(dst, g, origin, alpha)

	kx, ky := origin.X+g.Knob.X, origin.Y+g.Knob.Y
	if g.Shadow {
		r.drawKnobShadow(dst, kx, ky, g.KnobRadius, alpha)
	}
	vector.DrawFilledCircle(dst, float32(kx), float32(ky), float32(g.KnobRadius),
		p.Knob.WithAlpha(alpha).RGBA(), true)

	if g.Label.Visible && r.Font != nil {
		c := p.Tooltip.WithAlpha(alpha)
		l := g.Label
		r.drawText(dst, l.Text, l.Size, origin.X+l.Pos.X, origin.Y+l.Pos.Y, c)
		if l.Percent != "" {
			r.drawText(dst, l.Percent, l.Size/2, origin.X+l.Pos.X, origin.Y+l.Pos.Y+l.Size*0.6, c)
		}
	}
}

// drawArc strokes the progress arc from the top of the track clockwise to the
// knob angle.
func (r *Renderer) drawArc(dst *ebiten.Image, g radial.Geometry, origin radial.Vec2, alpha float64) {
	if g.Angle <= 0 || g.ProgressWidth <= 0 {
		return
	}
	cx := float32(origin.X + g.Center.X)
	cy := float32(origin.Y + g.Center.Y)
	rad := float32(g.Radius)

	var path vector.Path
	start := float32(-math.Pi / 2)
	sweep := float32(math.Min(g.Angle, 2*math.Pi))
	path.MoveTo(cx, cy-rad)
	if sweep > math.Pi {
		// Split so a full turn does not collapse into a zero-length arc.
		path.Arc(cx, cy, rad, start, start+math.Pi, vector.Clockwise)
		path.Arc(cx, cy, rad, start+math.Pi, start+sweep, vector.Clockwise)
	} else {
		path.Arc(cx, cy, rad, start, start+sweep, vector.Clockwise)
	}

	r.vs, r.is = path.AppendVerticesAndIndicesForStroke(r.vs[:0], r.is[:0], &vector.StrokeOptions{
		Width:   float32(g.ProgressWidth),
		LineCap: vector.LineCapRound,
	})
	tintVertices(r.vs, g.Palette, origin, g.Size, alpha)

	r.triOp.AntiAlias = true
	dst.DrawTriangles(r.vs, r.is, r.whiteImage(), &r.triOp)
}

// tintVertices colors stroke vertices with the progress color, or with the
// gradient blended along the slider's top-left to bottom-right diagonal.
func tintVertices(vs []ebiten.Vertex, p radial.Palette, origin radial.Vec2, size, alpha float64) {
	for i := range vs {
		c := p.Progress
		if p.Gradient {
			t := 0.0
			if size > 0 {
				t = ((float64(vs[i].DstX) - origin.X) + (float64(vs[i].DstY) - origin.Y)) / (2 * size)
			}
			c = lerpColor(p.GradientFrom, p.GradientTo, t)
		}
		a := c.A * alpha
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR = float32(c.R * a)
		vs[i].ColorG = float32(c.G * a)
		vs[i].ColorB = float32(c.B * a)
		vs[i].ColorA = float32(a)
	}
}

func lerpColor(a, b radial.Color, t float64) radial.Color {
	t = math.Max(0, math.Min(1, t))
	return radial.Color{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
		A: a.A + (b.A-a.A)*t,
	}
}

// whiteImage is a 1x1 white sub-image used as the source for solid triangles.
func (r *Renderer) whiteImage() *ebiten.Image {
	if r.white == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(radial.ColorWhite.RGBA())
		r.white = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return r.white
}

// drawKnobShadow blurs a silhouette of the knob and draws it offset below
// the knob at shadowOpacity.
func (r *Renderer) drawKnobShadow(dst *ebiten.Image, kx, ky, radius, alpha float64) {
	pad := r.blur.padding()
	side := int(math.Ceil(radius*2)) + 2*pad + 2
	if side <= 0 {
		return
	}
	if r.knobSrc == nil || r.knobSrc.Bounds().Dx() != side {
		if r.knobSrc != nil {
			r.knobSrc.Deallocate()
			r.knobBlur.Deallocate()
		}
		r.knobSrc = ebiten.NewImage(side, side)
		r.knobBlur = ebiten.NewImage(side, side)
	} else {
		r.knobSrc.Clear()
		r.knobBlur.Clear()
	}
	half := float32(side) / 2
	vector.DrawFilledCircle(r.knobSrc, half, half, float32(radius), radial.ColorWhite.RGBA(), true)
	r.blur.apply(r.knobSrc, r.knobBlur)

	op := &r.imgOp
	op.GeoM.Reset()
	op.ColorScale.Reset()
	op.GeoM.Translate(kx-float64(half)+shadowOffset, ky-float64(half)+shadowOffset)
	op.ColorScale.Scale(0, 0, 0, float32(shadowOpacity*alpha))
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(r.knobBlur, op)
}

// drawText draws s horizontally centered on x with its baseline at y.
func (r *Renderer) drawText(dst *ebiten.Image, s string, size, x, y float64, c radial.Color) {
	if s == "" || size <= 0 {
		return
	}
	face := r.Font.Face(size)
	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	op.GeoM.Translate(x, y-face.Metrics().HAscent)
	op.ColorScale.ScaleWithColor(c.RGBA())
	text.Draw(dst, s, face, op)
}
