package ebitenhost

import "testing"

func TestDefaultFont(t *testing.T) {
	f, err := DefaultFont()
	if err != nil {
		t.Fatalf("DefaultFont: %v", err)
	}
	if f.Face(32) != f.Face(32) {
		t.Error("faces of the same size should be cached")
	}
	if f.Face(32) == f.Face(16) {
		t.Error("faces of different sizes should differ")
	}
	w, h := f.MeasureString("12:00", 32)
	if w <= 0 || h <= 0 {
		t.Errorf("MeasureString = (%v, %v), want positive", w, h)
	}
	wide, _ := f.MeasureString("12:00:00", 32)
	if wide <= w {
		t.Errorf("longer text measured %v, not wider than %v", wide, w)
	}
}

func TestLoadFontInvalid(t *testing.T) {
	if _, err := LoadFont([]byte("not a font")); err == nil {
		t.Error("expected error for invalid font data")
	}
}
