// Package input turns directional key state and pointer events into the
// per-tick InputFrame the simulation consumes.
package input

import (
	"math/bits"

	"github.com/vovakirdan/tui-tanks/internal/core"
)

// Key is one of the four direction keys.
type Key uint8

const (
	KeyUp Key = 1 << iota
	KeyLeft
	KeyDown
	KeyRight
)

// KeySet is the set of currently held direction keys.
type KeySet uint8

// Has reports whether k is held.
func (s KeySet) Has(k Key) bool {
	return s&KeySet(k) != 0
}

// With returns s with k held.
func (s KeySet) With(k Key) KeySet {
	return s | KeySet(k)
}

// Without returns s with k released.
func (s KeySet) Without(k Key) KeySet {
	return s &^ KeySet(k)
}

// Len returns the number of held keys.
func (s KeySet) Len() int {
	return bits.OnesCount8(uint8(s))
}

// Resolve maps a key set to a direction. Combinations with no defined
// meaning (an opposite pair alone, or all four keys) keep prev.
func Resolve(s KeySet, prev core.Direction) core.Direction {
	up, left, down, right := s.Has(KeyUp), s.Has(KeyLeft), s.Has(KeyDown), s.Has(KeyRight)

	switch s.Len() {
	case 0:
		return core.Stationary
	case 1:
		switch {
		case up:
			return core.North
		case left:
			return core.West
		case down:
			return core.South
		default:
			return core.East
		}
	case 2:
		switch {
		case up && right:
			return core.NorthEast
		case up && left:
			return core.NorthWest
		case down && right:
			return core.SouthEast
		case down && left:
			return core.SouthWest
		}
	case 3:
		// The opposing pair cancels and the odd key out wins.
		switch {
		case left && right && up:
			return core.North
		case left && right:
			return core.South
		case left:
			return core.West
		default:
			return core.East
		}
	}
	return prev
}

// Translator tracks held keys and the direction they resolve to.
type Translator struct {
	keys KeySet
	dir  core.Direction
}

// Press marks k held and re-resolves the direction.
func (t *Translator) Press(k Key) core.Direction {
	t.keys = t.keys.With(k)
	t.dir = Resolve(t.keys, t.dir)
	return t.dir
}

// Release marks k up and re-resolves the direction from the keys still held.
func (t *Translator) Release(k Key) core.Direction {
	t.keys = t.keys.Without(k)
	t.dir = Resolve(t.keys, t.dir)
	return t.dir
}

// Reset releases every key.
func (t *Translator) Reset() {
	t.keys = 0
	t.dir = core.Stationary
}

// Keys returns the held keys.
func (t *Translator) Keys() KeySet {
	return t.keys
}

// Direction returns the last resolved direction.
func (t *Translator) Direction() core.Direction {
	return t.dir
}
