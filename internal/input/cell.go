package input

import (
	"sync"

	"github.com/vovakirdan/tui-tanks/internal/core"
)

// Cell is the input state shared between an event source and the tick loop.
// Writers call Press, Release, MovePointer, Click and Trigger from any
// goroutine; the loop calls Take once per tick and always sees a complete frame.
type Cell struct {
	mu       sync.Mutex
	tr       Translator
	pointer  core.Point
	hasAim   bool
	fire     bool
	fireAt   core.Point
	triggers map[core.Action]bool
}

// NewCell returns an empty input cell.
func NewCell() *Cell {
	return &Cell{triggers: make(map[core.Action]bool)}
}

func (c *Cell) Press(k Key) {
	c.mu.Lock()
	c.tr.Press(k)
	c.mu.Unlock()
}

func (c *Cell) Release(k Key) {
	c.mu.Lock()
	c.tr.Release(k)
	c.mu.Unlock()
}

// ReleaseAll drops every held key.
func (c *Cell) ReleaseAll() {
	c.mu.Lock()
	c.tr.Reset()
	c.mu.Unlock()
}

// MovePointer records the latest pointer position in world coordinates.
func (c *Cell) MovePointer(p core.Point) {
	c.mu.Lock()
	c.pointer = p
	c.hasAim = true
	c.mu.Unlock()
}

// Click records a fire request at p. Repeated clicks before the next Take
// collapse into one, aimed at the latest position.
func (c *Cell) Click(p core.Point) {
	c.mu.Lock()
	c.pointer = p
	c.hasAim = true
	c.fire = true
	c.fireAt = p
	c.mu.Unlock()
}

// Trigger latches a one-shot action until the next Take.
func (c *Cell) Trigger(a core.Action) {
	c.mu.Lock()
	c.triggers[a] = true
	c.mu.Unlock()
}

// Direction returns the currently resolved direction.
func (c *Cell) Direction() core.Direction {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tr.Direction()
}

// Peek returns the current frame without consuming it.
func (c *Cell) Peek() core.InputFrame {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.frame()
}

// Take returns the current frame and clears one-shot fire and action requests.
func (c *Cell) Take() core.InputFrame {
	c.mu.Lock()
	defer c.mu.Unlock()

	frame := c.frame()
	c.fire = false
	clear(c.triggers)
	return frame
}

func (c *Cell) frame() core.InputFrame {
	frame := core.NewInputFrame()
	frame.Direction = c.tr.Direction()
	frame.Aim = c.pointer
	frame.HasAim = c.hasAim
	frame.Fire = c.fire
	frame.FireAt = c.fireAt
	for a := range c.triggers {
		frame.Set(a)
	}
	return frame
}
