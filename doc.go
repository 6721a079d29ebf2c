// Package radial is a circular slider widget: a knob dragged around a ring
// picks one of the discrete steps of a numeric range.
//
// The package holds everything that does not depend on a particular rendering
// host: the step/angle math, pointer-to-angle conversion, the slider state
// machine, layout geometry and an SVG renderer. The [ebitenhost] subpackage
// runs sliders inside an [Ebitengine] window.
//
// # Quick start
//
//	cfg := radial.DefaultConfig()
//	cfg.Max, cfg.StepSize = 86400, 60 // one step per minute over a day
//	cfg.ShowTooltip = true
//
//	clock, err := radial.NewSlider("clock", cfg, 0)
//	if err != nil {
//		log.Fatal(err)
//	}
//	clock.OnChange = func(v float64) { fmt.Println(radial.FormatTime(v)) }
//
//	surface := radial.NewSurface()
//	surface.Mount(clock, 40, 40)
//	ebitenhost.Run(surface, ebitenhost.RunConfig{Title: "Clock", Width: 260, Height: 260})
//
// # Steps and angles
//
// A configuration divides [Config.Min, Config.Max] into steps of
// [Config.StepSize]. [Steps] spreads the steps evenly around the full circle:
// the first step is at the top (angle 0) and angles grow clockwise, so the
// last step lands on a full turn. Values outside the range clamp to the
// nearest step.
//
// # Dragging
//
// Sliders are mounted on a [Surface], which receives pointer input from the
// host. Pressing on a knob starts a drag; the slider then registers a move and
// an up listener on the surface, so the drag keeps tracking the pointer after
// it leaves the slider and always ends on release, wherever that happens.
// Moves that jump more than half a turn are discarded as wrap-around noise.
//
// The owner reports its own value back with [Slider.SetValue]; the slider
// ignores it while a drag is in progress.
//
// # Automation
//
// [Surface.InjectPress], [Surface.InjectDrag] and friends queue synthetic
// pointer events, and [ParseScript] builds a [Runner] that plays back a YAML
// script of presses, turns, value changes and screenshots.
//
// [Ebitengine]: https://ebitengine.org
// [ebitenhost]: https://pkg.go.dev/github.com/phanxgames/radial/ebitenhost
package radial
