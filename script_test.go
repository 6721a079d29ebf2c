package radial

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseScript(t *testing.T) {
	data := []byte(`
steps:
  - {action: screenshot, label: initial}
  - {action: turn, slider: clock, angle: 3.14159}
  - {action: set, slider: clock, value: 3661}
  - {action: wait, frames: 3}
`)
	r, err := ParseScript(data)
	if err != nil {
		t.Fatalf("ParseScript: %v", err)
	}
	if len(r.steps) != 4 {
		t.Fatalf("steps = %d, want 4", len(r.steps))
	}
	if r.steps[1].Slider != "clock" || math.Abs(r.steps[1].Angle-3.14159) > 1e-12 {
		t.Errorf("turn step = %+v", r.steps[1])
	}
	if r.steps[3].Frames != 3 {
		t.Errorf("wait frames = %d", r.steps[3].Frames)
	}
}

func TestParseScriptJSON(t *testing.T) {
	r, err := ParseScript([]byte(`{"steps": [{"action": "click", "x": 10, "y": 20}]}`))
	if err != nil {
		t.Fatalf("ParseScript: %v", err)
	}
	if r.steps[0].X != 10 || r.steps[0].Y != 20 {
		t.Errorf("step = %+v", r.steps[0])
	}
}

func TestParseScriptErrors(t *testing.T) {
	tests := []struct {
		name, data, want string
	}{
		{"malformed", "steps: [", "parse script"},
		{"empty", "steps: []", "no steps"},
		{"unknown action", "steps: [{action: jump}]", `unknown action "jump"`},
		{"set without slider", "steps: [{action: set, value: 1}]", "needs a slider"},
		{"turn without slider", "steps: [{action: turn, angle: 1}]", "needs a slider"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScript([]byte(tt.data))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("ParseScript = %v, want error containing %q", err, tt.want)
			}
		})
	}
}

func TestLoadScript(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "demo.yaml")
	if err := os.WriteFile(path, []byte("steps:\n  - action: screenshot\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadScript(path); err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	if _, err := LoadScript(filepath.Join(dir, "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

// runScript attaches r and updates s until the runner is done.
func runScript(t *testing.T, s *Surface, r *Runner) int {
	t.Helper()
	s.SetRunner(r)
	for i := 1; i <= 10000; i++ {
		s.Update(nil)
		if r.Done() {
			return i
		}
	}
	t.Fatal("script did not finish")
	return 0
}

func TestRunnerTurnAndSet(t *testing.T) {
	s, sl, _ := mountDay(t, 0)
	r, err := ParseScript([]byte(`
steps:
  - {action: turn, slider: clock, angle: 3.141592653589793}
  - {action: screenshot, label: noon}
  - {action: set, slider: clock, value: 3661}
  - {action: screenshot, label: one-oh-one}
`))
	if err != nil {
		t.Fatal(err)
	}
	s.SetRunner(r)

	var labels []string
	var values []float64
	for i := 0; i < 1000 && !r.Done(); i++ {
		s.Update(nil)
		if got := s.TakeScreenshots(); len(got) > 0 {
			labels = append(labels, got...)
			values = append(values, sl.Value())
		}
	}
	if !r.Done() {
		t.Fatal("script did not finish")
	}
	if len(labels) != 2 || labels[0] != "noon" || labels[1] != "one-oh-one" {
		t.Fatalf("labels = %v", labels)
	}
	if values[0] != 43200 || values[1] != 3660 {
		t.Errorf("values at screenshots = %v, want [43200 3660]", values)
	}
	if FormatTime(values[1]) != "01:01" {
		t.Errorf("label = %q", FormatTime(values[1]))
	}
}

func TestRunnerClickAndDrag(t *testing.T) {
	s := NewSurface()
	var downs, moves, ups int
	s.OnPointerDown(func(PointerContext) { downs++ })
	s.OnPointerMove(func(PointerContext) { moves++ })
	s.OnPointerUp(func(PointerContext) { ups++ })

	r, err := ParseScript([]byte(`
steps:
  - {action: click, x: 5, y: 5}
  - {action: drag, fromX: 0, fromY: 0, toX: 30, toY: 0, frames: 4}
  - {action: press, x: 1, y: 1}
  - {action: move, x: 2, y: 2}
  - {action: release, x: 2, y: 2}
`))
	if err != nil {
		t.Fatal(err)
	}
	runScript(t, s, r)
	if downs != 3 || ups != 3 || moves != 3 {
		t.Errorf("downs %d moves %d ups %d, want 3 3 3", downs, moves, ups)
	}
}

func TestRunnerWait(t *testing.T) {
	s := NewSurface()
	r, err := ParseScript([]byte(`
steps:
  - {action: wait, frames: 5}
  - {action: screenshot, label: after}
`))
	if err != nil {
		t.Fatal(err)
	}
	s.SetRunner(r)
	for i := 0; i < 5; i++ {
		s.Update(nil)
		if len(s.TakeScreenshots()) != 0 {
			t.Fatalf("screenshot taken during wait (update %d)", i+1)
		}
	}
	s.Update(nil)
	if got := s.TakeScreenshots(); len(got) != 1 || got[0] != "after" {
		t.Errorf("screenshots = %v", got)
	}
	if !r.Done() {
		t.Error("runner not done")
	}
}

func TestRunnerMissingSlider(t *testing.T) {
	s := NewSurface()
	r, err := ParseScript([]byte("steps: [{action: set, slider: ghost, value: 1}]"))
	if err != nil {
		t.Fatal(err)
	}
	runScript(t, s, r)
}

func TestScreenshotQueue(t *testing.T) {
	s := NewSurface()
	if s.TakeScreenshots() != nil {
		t.Error("empty queue should return nil")
	}
	s.Screenshot("a")
	s.Screenshot("b")
	got := s.TakeScreenshots()
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("TakeScreenshots = %v", got)
	}
	if s.TakeScreenshots() != nil {
		t.Error("queue not cleared")
	}
}
