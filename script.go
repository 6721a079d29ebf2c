package radial

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// scriptStep is a single action in an automation script.
type scriptStep struct {
	Action string  `yaml:"action"`
	Label  string  `yaml:"label,omitempty"`
	Slider string  `yaml:"slider,omitempty"`
	X      float64 `yaml:"x,omitempty"`
	Y      float64 `yaml:"y,omitempty"`
	FromX  float64 `yaml:"fromX,omitempty"`
	FromY  float64 `yaml:"fromY,omitempty"`
	ToX    float64 `yaml:"toX,omitempty"`
	ToY    float64 `yaml:"toY,omitempty"`
	Angle  float64 `yaml:"angle,omitempty"`
	Value  float64 `yaml:"value,omitempty"`
	Frames int     `yaml:"frames,omitempty"`
}

// script is the top-level document of an automation script.
type script struct {
	Steps []scriptStep `yaml:"steps"`
}

var scriptActions = map[string]bool{
	"screenshot": true,
	"press":      true,
	"move":       true,
	"release":    true,
	"click":      true,
	"drag":       true,
	"turn":       true,
	"set":        true,
	"wait":       true,
}

// Runner sequences injected input, external value changes and screenshots
// across updates, for automated visual testing and demos. Attach it to a
// Surface with SetRunner.
//
// Scripts are YAML (JSON is accepted as well):
//
//	steps:
//	  - {action: screenshot, label: initial}
//	  - {action: turn, slider: clock, angle: 3.14159}
//	  - {action: set, slider: clock, value: 3661}
//	  - {action: wait, frames: 3}
type Runner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// ParseScript parses an automation script.
func ParseScript(data []byte) (*Runner, error) {
	var sc script
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("radial: parse script: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("radial: parse script: no steps")
	}
	for i, st := range sc.Steps {
		if !scriptActions[st.Action] {
			return nil, fmt.Errorf("radial: parse script: step %d: unknown action %q", i, st.Action)
		}
		if (st.Action == "set" || st.Action == "turn") && st.Slider == "" {
			return nil, fmt.Errorf("radial: parse script: step %d: %s needs a slider name", i, st.Action)
		}
	}
	return &Runner{steps: sc.Steps}, nil
}

// LoadScript reads and parses an automation script file.
func LoadScript(path string) (*Runner, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("radial: read script %s: %w", path, err)
	}
	r, err := ParseScript(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return r, nil
}

// SetRunner attaches a Runner to the surface. Its step method is called from
// Surface.Update before input is processed each tick.
func (s *Surface) SetRunner(r *Runner) {
	s.runner = r
}

// Done reports whether all steps of the script have been executed.
func (r *Runner) Done() bool {
	return r.done
}

// step advances the runner by one update.
func (r *Runner) step(s *Surface) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(s.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		s.Screenshot(st.Label)
	case "press":
		s.InjectPress(st.X, st.Y)
	case "move":
		s.InjectMove(st.X, st.Y)
	case "release":
		s.InjectRelease(st.X, st.Y)
	case "click":
		s.InjectClick(st.X, st.Y)
	case "drag":
		s.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "turn":
		if sl := s.Slider(st.Slider); sl != nil {
			s.InjectArc(sl, st.Angle, 0.1)
		} else {
			s.logf("script: no slider %q", st.Slider)
		}
	case "set":
		if sl := s.Slider(st.Slider); sl != nil {
			sl.SetValue(st.Value)
		} else {
			s.logf("script: no slider %q", st.Slider)
		}
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this update counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(s.injectQueue) == 0 {
		r.done = true
	}
}
