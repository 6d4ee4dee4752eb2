package input

import (
	"slices"
	"testing"

	"github.com/vovakirdan/tui-tanks/internal/core"
)

func TestBindingsSync(t *testing.T) {
	b := NewBindings(map[string]Key{
		"w": KeyUp, "up": KeyUp,
		"a": KeyLeft, "left": KeyLeft,
		"s": KeyDown, "down": KeyDown,
		"d": KeyRight, "right": KeyRight,
	})

	steps := []struct {
		name     string
		pressed  []string
		wantDown []Key
		wantUp   []Key
		wantHeld KeySet
	}{
		{"nothing", nil, nil, nil, keys()},
		{"hold w", []string{"w"}, []Key{KeyUp}, nil, keys(KeyUp)},
		{"add up arrow", []string{"w", "up"}, nil, nil, keys(KeyUp)},
		{"release up arrow, w still down", []string{"w"}, nil, nil, keys(KeyUp)},
		{"add a for a diagonal", []string{"w", "a"}, []Key{KeyLeft}, nil, keys(KeyUp, KeyLeft)},
		{"swap w for up arrow", []string{"up", "a"}, nil, nil, keys(KeyUp, KeyLeft)},
		{"release all", nil, nil, []Key{KeyUp, KeyLeft}, keys()},
		{"d and right together", []string{"d", "right", "s"}, []Key{KeyDown, KeyRight}, nil, keys(KeyDown, KeyRight)},
	}

	for _, st := range steps {
		down, up := b.Sync(func(k string) bool { return slices.Contains(st.pressed, k) })
		if !slices.Equal(down, st.wantDown) || !slices.Equal(up, st.wantUp) {
			t.Errorf("%s: Sync() = down %v up %v, expected down %v up %v", st.name, down, up, st.wantDown, st.wantUp)
		}
		if b.Held() != st.wantHeld {
			t.Errorf("%s: Held() = %b, expected %b", st.name, b.Held(), st.wantHeld)
		}
	}
}

func TestBindingsDriveCell(t *testing.T) {
	b := NewBindings(map[int]Key{1: KeyUp, 2: KeyUp, 3: KeyLeft})
	c := NewCell()
	feed := func(pressed ...int) {
		down, up := b.Sync(func(k int) bool { return slices.Contains(pressed, k) })
		for _, k := range down {
			c.Press(k)
		}
		for _, k := range up {
			c.Release(k)
		}
	}

	feed(1)
	feed(1, 2)
	feed(1)
	if d := c.Direction(); d != core.North {
		t.Fatalf("direction after tapping a second up key = %v, expected N", d)
	}
	feed(1, 3)
	if d := c.Direction(); d != core.NorthWest {
		t.Errorf("direction = %v, expected NW", d)
	}
	feed()
	if d := c.Direction(); d != core.Stationary {
		t.Errorf("direction after release = %v, expected stationary", d)
	}
}
