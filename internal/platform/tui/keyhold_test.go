package tui

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-tanks/internal/core"
	"github.com/vovakirdan/tui-tanks/internal/input"
)

func TestKeyHoldExpires(t *testing.T) {
	cell := input.NewCell()
	h := NewKeyHold(cell, 300*time.Millisecond)
	start := time.Unix(1000, 0)

	h.Press(input.KeyUp, start)
	h.Press(input.KeyLeft, start.Add(100*time.Millisecond))
	if d := cell.Direction(); d != core.NorthWest {
		t.Fatalf("Direction() = %v, expected NW", d)
	}

	// Up expires first, left is still held.
	h.Expire(start.Add(350 * time.Millisecond))
	if d := cell.Direction(); d != core.West {
		t.Errorf("after up expired: %v, expected W", d)
	}
	if h.Held() != 1 {
		t.Errorf("Held() = %d, expected 1", h.Held())
	}

	h.Expire(start.Add(400 * time.Millisecond))
	if d := cell.Direction(); d != core.Stationary {
		t.Errorf("after all expired: %v, expected stationary", d)
	}
}

func TestKeyHoldRepeatExtends(t *testing.T) {
	cell := input.NewCell()
	h := NewKeyHold(cell, 300*time.Millisecond)
	start := time.Unix(1000, 0)

	h.Press(input.KeyRight, start)
	h.Press(input.KeyRight, start.Add(250*time.Millisecond)) // auto-repeat
	h.Expire(start.Add(400 * time.Millisecond))

	if d := cell.Direction(); d != core.East {
		t.Errorf("repeat should keep the key held, got %v", d)
	}
}

func TestKeyHoldReset(t *testing.T) {
	cell := input.NewCell()
	h := NewKeyHold(cell, time.Second)
	h.Press(input.KeyDown, time.Now())
	h.Reset()
	if h.Held() != 0 || cell.Direction() != core.Stationary {
		t.Errorf("Reset() left %d keys, direction %v", h.Held(), cell.Direction())
	}
}
