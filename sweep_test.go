package radial

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func TestValueSweep(t *testing.T) {
	sl, err := NewSlider("clock", dayConfig(), 0)
	if err != nil {
		t.Fatal(err)
	}
	notified := 0
	sl.OnChange = func(float64) { notified++ }

	w := NewValueSweep(sl, 86400, 1, nil)
	w.Update(0.5)
	if sl.Value() != 43200 || w.Done {
		t.Errorf("halfway: value %v done %v", sl.Value(), w.Done)
	}
	w.Update(0.5)
	if sl.Value() != 86400 || !w.Done {
		t.Errorf("end: value %v done %v", sl.Value(), w.Done)
	}
	w.Update(0.5)
	if sl.Value() != 86400 {
		t.Errorf("update after done changed value to %v", sl.Value())
	}
	if notified != 0 {
		t.Errorf("sweep notified %d times", notified)
	}

	w.Reset()
	if w.Done {
		t.Error("Reset did not clear Done")
	}
	w.Update(0)
	if sl.Value() != 0 {
		t.Errorf("after reset: value %v, want 0", sl.Value())
	}
}

func TestValueSweepEasing(t *testing.T) {
	sl, err := NewSlider("s", dayConfig(), 0)
	if err != nil {
		t.Fatal(err)
	}
	w := NewValueSweep(sl, 86400, 1, ease.InQuad)
	w.Update(0.5)
	// InQuad is a quarter of the way at half time.
	if sl.Value() != 21600 {
		t.Errorf("value = %v, want 21600", sl.Value())
	}
}

func TestValueSweepPausesWhileDragging(t *testing.T) {
	s, sl, _ := mountDay(t, 0)
	w := NewValueSweep(sl, 86400, 1, nil)

	press(s, 90, 20)
	w.Update(0.5)
	if sl.Value() != 0 {
		t.Errorf("sweep moved a dragged slider to %v", sl.Value())
	}
	release(s, 90, 20)
	w.Update(0.25)
	if sl.Value() != 64800 {
		t.Errorf("after release: value %v, want 64800", sl.Value())
	}
}

func TestValueSweepStopsWhenUnmounted(t *testing.T) {
	s, sl, _ := mountDay(t, 0)
	w := NewValueSweep(sl, 86400, 1, nil)
	s.Unmount(sl)
	w.Update(0.5)
	if !w.Done || sl.Value() != 0 {
		t.Errorf("done %v value %v", w.Done, sl.Value())
	}
}
