package ebitenhost

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/phanxgames/radial"
)

// Input polls Ebitengine mouse and touch state and feeds it to a Surface. It
// implements radial.InputSource. The mouse is pointer 0; each active touch is
// mapped to one of the slots 1..radial.MaxPointers-1 for as long as it lasts.
type Input struct {
	slots      touchSlots
	touchIDs   []ebiten.TouchID
	releaseIDs []ebiten.TouchID
}

// Poll implements radial.InputSource.
func (in *Input) Poll(s *radial.Surface) {
	in.pollMouse(s)
	in.pollTouches(s)
}

// pollMouse handles mouse input (pointer 0).
func (in *Input) pollMouse(s *radial.Surface) {
	mx, my := ebiten.CursorPosition()

	var pressed bool
	var button radial.MouseButton
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	middle := ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	if left || right || middle {
		pressed = true
		switch {
		case left:
			button = radial.MouseButtonLeft
		case right:
			button = radial.MouseButtonRight
		default:
			button = radial.MouseButtonMiddle
		}
	}
	s.ProcessPointer(0, float64(mx), float64(my), pressed, button)
}

// pollTouches handles touch input (pointers 1-9).
func (in *Input) pollTouches(s *radial.Surface) {
	// Release touches that ended this tick at their last known position.
	in.releaseIDs = inpututil.AppendJustReleasedTouchIDs(in.releaseIDs[:0])
	for _, tid := range in.releaseIDs {
		slot := in.slots.lookup(tid)
		if slot < 0 {
			continue
		}
		tx, ty := inpututil.TouchPositionInPreviousTick(tid)
		s.ProcessPointer(slot, float64(tx), float64(ty), false, radial.MouseButtonLeft)
		in.slots.free(slot)
	}

	in.touchIDs = ebiten.AppendTouchIDs(in.touchIDs[:0])
	for _, tid := range in.touchIDs {
		slot := in.slots.acquire(tid)
		if slot < 0 {
			continue
		}
		tx, ty := ebiten.TouchPosition(tid)
		s.ProcessPointer(slot, float64(tx), float64(ty), true, radial.MouseButtonLeft)
	}
}

// touchSlots maps Ebitengine touch IDs to surface pointer slots 1..9.
type touchSlots struct {
	used [radial.MaxPointers]bool
	ids  [radial.MaxPointers]ebiten.TouchID
}

// lookup returns the slot of an already mapped touch, or -1.
func (t *touchSlots) lookup(tid ebiten.TouchID) int {
	for i := 1; i < radial.MaxPointers; i++ {
		if t.used[i] && t.ids[i] == tid {
			return i
		}
	}
	return -1
}

// acquire returns the existing slot for tid or allocates a new one. Returns -1
// if all slots are taken.
func (t *touchSlots) acquire(tid ebiten.TouchID) int {
	if slot := t.lookup(tid); slot >= 0 {
		return slot
	}
	for i := 1; i < radial.MaxPointers; i++ {
		if !t.used[i] {
			t.used[i] = true
			t.ids[i] = tid
			return i
		}
	}
	return -1
}

func (t *touchSlots) free(slot int) {
	if slot <= 0 || slot >= radial.MaxPointers {
		return
	}
	t.used[slot] = false
	t.ids[slot] = 0
}
