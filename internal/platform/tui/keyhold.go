package tui

import (
	"time"

	"github.com/vovakirdan/tui-tanks/internal/input"
)

// releaseOrder fixes the order expired keys are released in, so the
// resulting direction does not depend on map iteration.
var releaseOrder = [...]input.Key{input.KeyUp, input.KeyLeft, input.KeyDown, input.KeyRight}

// KeyHold emulates key release for terminals, which only report presses.
// A key counts as held until no repeat of it has arrived for the hold period.
type KeyHold struct {
	cell *input.Cell
	hold time.Duration
	seen map[input.Key]time.Time
}

// NewKeyHold returns a KeyHold feeding cell.
func NewKeyHold(cell *input.Cell, hold time.Duration) *KeyHold {
	return &KeyHold{
		cell: cell,
		hold: hold,
		seen: make(map[input.Key]time.Time),
	}
}

// Press records a press or auto-repeat of k at now.
func (h *KeyHold) Press(k input.Key, now time.Time) {
	if _, held := h.seen[k]; !held {
		h.cell.Press(k)
	}
	h.seen[k] = now
}

// Expire releases every key whose last press is older than the hold period.
func (h *KeyHold) Expire(now time.Time) {
	for _, k := range releaseOrder {
		last, held := h.seen[k]
		if held && now.Sub(last) >= h.hold {
			delete(h.seen, k)
			h.cell.Release(k)
		}
	}
}

// Reset releases everything immediately.
func (h *KeyHold) Reset() {
	clear(h.seen)
	h.cell.ReleaseAll()
}

// Held returns the number of keys currently treated as down.
func (h *KeyHold) Held() int {
	return len(h.seen)
}
