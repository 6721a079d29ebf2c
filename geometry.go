package radial

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// fullTurnEpsilon is how close to a full turn the progress arc must get to be
// drawn as a closed ring.
const fullTurnEpsilon = 1e-9

// Geometry is everything a renderer needs to draw a slider, in local
// coordinates with the origin at the slider's top-left corner. It is derived
// from configuration and angle on every call and never cached.
type Geometry struct {
	Size          float64
	Center        Vec2
	Radius        float64 // radius of the track the knob travels on
	CircleWidth   float64
	ProgressWidth float64

	Angle      float64
	Knob       Vec2
	KnobRadius float64

	// LargeArc is the SVG large-arc flag for the progress arc: set once the
	// progress covers more than half a turn.
	LargeArc bool
	// ArcPath is the SVG path data of the progress arc from the top of the
	// track clockwise to the knob. Empty when there is no progress; a full
	// turn is two half arcs, since a single arc with equal endpoints draws
	// nothing.
	ArcPath string

	Label   Label
	Palette Palette

	Shadow   bool
	Disabled bool
}

// Label is the text shown in the middle of the slider.
type Label struct {
	Visible bool
	Text    string // time of day, "HH:MM"
	Percent string // "NN%", empty unless percentage display is on
	Pos     Vec2   // baseline center of Text
	Size    float64
}

// Layout computes the slider geometry for cfg with the knob at angle and the
// current step value. It is a pure function of its inputs.
func Layout(cfg Config, angle, value float64) Geometry {
	center := Vec2{X: cfg.Size / 2, Y: cfg.Size / 2}
	r := cfg.trackRadius()
	pal, _ := cfg.palette()

	g := Geometry{
		Size:          cfg.Size,
		Center:        center,
		Radius:        r,
		CircleWidth:   cfg.CircleWidth,
		ProgressWidth: cfg.ProgressWidth,
		Angle:         angle,
		Knob:          PointOnCircle(center, r, angle),
		KnobRadius:    cfg.KnobRadius,
		LargeArc:      angle > math.Pi,
		Palette:       pal,
		Shadow:        cfg.Shadow,
		Disabled:      cfg.Disabled,
	}
	g.ArcPath = arcPath(center, r, angle)

	if cfg.ShowTooltip || cfg.ShowPercentage {
		g.Label = Label{
			Visible: true,
			Text:    FormatTime(value),
			Pos:     Vec2{X: center.X, Y: center.Y + cfg.TooltipSize/3},
			Size:    cfg.TooltipSize,
		}
		if cfg.ShowPercentage {
			g.Label.Percent = FormatPercent(value, cfg.Min, cfg.Max)
		}
	}
	return g
}

// arcPath builds SVG path data for an arc of the given angle starting at the
// top of the circle and sweeping clockwise.
func arcPath(c Vec2, r, angle float64) string {
	if !(angle > 0) || r <= 0 {
		return ""
	}
	top := Vec2{X: c.X, Y: c.Y - r}
	var b strings.Builder
	fmt.Fprintf(&b, "M %s %s", num(top.X), num(top.Y))
	if angle >= fullTurn-fullTurnEpsilon {
		bottom := Vec2{X: c.X, Y: c.Y + r}
		fmt.Fprintf(&b, " A %s %s 0 1 1 %s %s", num(r), num(r), num(bottom.X), num(bottom.Y))
		fmt.Fprintf(&b, " A %s %s 0 1 1 %s %s", num(r), num(r), num(top.X), num(top.Y))
		return b.String()
	}
	end := PointOnCircle(c, r, angle)
	large := 0
	if angle > math.Pi {
		large = 1
	}
	fmt.Fprintf(&b, " A %s %s 0 %d 1 %s %s", num(r), num(r), large, num(end.X), num(end.Y))
	return b.String()
}

// num formats a coordinate with at most three decimals and no negative zero.
func num(v float64) string {
	v = math.Round(v*1000) / 1000
	if v == 0 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
