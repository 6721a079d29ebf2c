package ebitenhost

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/radial"
)

func TestTouchSlotsAcquireSkipsMouseSlot(t *testing.T) {
	var ts touchSlots
	if got := ts.acquire(ebiten.TouchID(7)); got != 1 {
		t.Errorf("first touch slot = %d, want 1", got)
	}
	if got := ts.acquire(ebiten.TouchID(9)); got != 2 {
		t.Errorf("second touch slot = %d, want 2", got)
	}
}

func TestTouchSlotsAcquireIsStable(t *testing.T) {
	var ts touchSlots
	a := ts.acquire(ebiten.TouchID(3))
	b := ts.acquire(ebiten.TouchID(3))
	if a != b {
		t.Errorf("same touch mapped to %d then %d", a, b)
	}
	if got := ts.lookup(ebiten.TouchID(3)); got != a {
		t.Errorf("lookup = %d, want %d", got, a)
	}
}

func TestTouchSlotsFreeReusesSlot(t *testing.T) {
	var ts touchSlots
	first := ts.acquire(ebiten.TouchID(1))
	ts.acquire(ebiten.TouchID(2))
	ts.free(first)
	if got := ts.lookup(ebiten.TouchID(1)); got != -1 {
		t.Errorf("lookup after free = %d, want -1", got)
	}
	if got := ts.acquire(ebiten.TouchID(5)); got != first {
		t.Errorf("reacquired slot = %d, want %d", got, first)
	}
}

func TestTouchSlotsExhausted(t *testing.T) {
	var ts touchSlots
	for i := 1; i < radial.MaxPointers; i++ {
		if got := ts.acquire(ebiten.TouchID(100 + i)); got != i {
			t.Fatalf("touch %d slot = %d, want %d", i, got, i)
		}
	}
	if got := ts.acquire(ebiten.TouchID(999)); got != -1 {
		t.Errorf("slot when full = %d, want -1", got)
	}
}

func TestTouchSlotsFreeOutOfRange(t *testing.T) {
	var ts touchSlots
	ts.free(0)
	ts.free(-1)
	ts.free(radial.MaxPointers)
	if got := ts.acquire(ebiten.TouchID(1)); got != 1 {
		t.Errorf("slot = %d, want 1", got)
	}
}
