package radial

import (
	"fmt"
	"html"
	"io"
	"strings"
)

// SVG renders the slider at its current state as a standalone SVG document.
func (s *Slider) SVG() string {
	var b strings.Builder
	_ = WriteSVG(&b, s.Geometry(), s.Name) // strings.Builder writes never fail
	return b.String()
}

// WriteSVG writes g as a standalone SVG document. id prefixes the ids of the
// shadow filter and gradient so several sliders can share one page.
func WriteSVG(w io.Writer, g Geometry, id string) error {
	id = svgID(id)
	p := g.Palette
	var b strings.Builder

	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">`,
		num(g.Size), num(g.Size), num(g.Size), num(g.Size))
	b.WriteByte('\n')

	if g.Shadow || p.Gradient {
		b.WriteString("<defs>\n")
		if g.Shadow {
			fmt.Fprintf(&b, `<filter id="%s-shadow" filterUnits="userSpaceOnUse">`+
				`<feGaussianBlur in="SourceAlpha" stdDeviation="3"/>`+
				`<feOffset dx="2" dy="2"/>`+
				`<feComponentTransfer><feFuncA type="linear" slope="0.3"/></feComponentTransfer>`+
				`<feMerge><feMergeNode/><feMergeNode in="SourceGraphic"/></feMerge>`+
				"</filter>\n", id)
		}
		if p.Gradient {
			fmt.Fprintf(&b, `<linearGradient id="%s-gradient" x1="0" y1="0" x2="1" y2="1">`+
				`<stop offset="0%%" stop-color="%s"%s/>`+
				`<stop offset="100%%" stop-color="%s"%s/>`+
				"</linearGradient>\n",
				id, p.GradientFrom.Hex(), opacityAttr("stop-opacity", p.GradientFrom),
				p.GradientTo.Hex(), opacityAttr("stop-opacity", p.GradientTo))
		}
		b.WriteString("</defs>\n")
	}

	fmt.Fprintf(&b, `<circle cx="%s" cy="%s" r="%s" fill="none" stroke="%s"%s stroke-width="%s"/>`+"\n",
		num(g.Center.X), num(g.Center.Y), num(g.Radius),
		p.Circle.Hex(), opacityAttr("stroke-opacity", p.Circle), num(g.CircleWidth))

	if g.ArcPath != "" {
		stroke := p.Progress.Hex()
		opacity := opacityAttr("stroke-opacity", p.Progress)
		if p.Gradient {
			stroke = "url(#" + id + "-gradient)"
			opacity = ""
		}
		fmt.Fprintf(&b, `<path d="%s" fill="none" stroke="%s"%s stroke-width="%s" stroke-linecap="round"/>`+"\n",
			g.ArcPath, stroke, opacity, num(g.ProgressWidth))
	}

	filter := "none"
	if g.Shadow {
		filter = "url(#" + id + "-shadow)"
	}
	cursor := "pointer"
	if g.Disabled {
		cursor = "not-allowed"
	}
	fmt.Fprintf(&b, `<circle cx="%s" cy="%s" r="%s" fill="%s"%s filter="%s" style="cursor: %s"/>`+"\n",
		num(g.Knob.X), num(g.Knob.Y), num(g.KnobRadius),
		p.Knob.Hex(), opacityAttr("fill-opacity", p.Knob), filter, cursor)

	if l := g.Label; l.Visible {
		fmt.Fprintf(&b, `<text x="%s" y="%s" text-anchor="middle" font-size="%s" font-family="Arial" fill="%s"%s>%s</text>`+"\n",
			num(l.Pos.X), num(l.Pos.Y), num(l.Size),
			p.Tooltip.Hex(), opacityAttr("fill-opacity", p.Tooltip), html.EscapeString(l.Text))
		if l.Percent != "" {
			fmt.Fprintf(&b, `<text x="%s" y="%s" text-anchor="middle" font-size="%s" font-family="Arial" fill="%s"%s>%s</text>`+"\n",
				num(l.Pos.X), num(l.Pos.Y+l.Size*0.6), num(l.Size/2),
				p.Tooltip.Hex(), opacityAttr("fill-opacity", p.Tooltip), html.EscapeString(l.Percent))
		}
	}

	b.WriteString("</svg>\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func opacityAttr(name string, c Color) string {
	if c.A >= 1 {
		return ""
	}
	return fmt.Sprintf(` %s="%s"`, name, num(c.A))
}

// svgID keeps letters, digits, '-' and '_' so the id is safe inside url(#...).
func svgID(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	if b.Len() == 0 {
		return "slider"
	}
	return b.String()
}
