package tanks

import (
	"testing"

	"github.com/vovakirdan/tui-tanks/internal/core"
	"github.com/vovakirdan/tui-tanks/internal/tilemap"
)

// fixedRand always draws the same index; 4 is Directions' stationary slot.
type fixedRand int

func (r fixedRand) Intn(int) int { return int(r) }

const stayPut = fixedRand(4)

func testParams() Params {
	return Params{Width: 13, Height: 13, Step: 2, Lives: 5, Barrel: 6.5, MissileSpeed: 5}
}

// wallGrid is a 3x3 arena of 65px tiles with one wall at row 1, column 2,
// covering x 130..195, y 65..130.
func wallGrid(t *testing.T) *tilemap.Grid {
	t.Helper()
	g, err := tilemap.New([][]tilemap.Tile{
		{tilemap.Open, tilemap.Open, tilemap.Open},
		{tilemap.Open, tilemap.Open, tilemap.Wall},
		{tilemap.Open, tilemap.Open, tilemap.Open},
	}, 65)
	if err != nil {
		t.Fatalf("tilemap.New() failed: %v", err)
	}
	return g
}

func spawnAt(x, y int, d core.Direction) Spawn {
	return Spawn{Center: core.Pt(x, y), Direction: d, Color: core.ColorGray}
}

func assertSynced(t *testing.T, label string, tk *Tank) {
	t.Helper()
	want := core.RectAround(tk.Center(), 13, 13)
	if tk.Bounds() != want {
		t.Fatalf("%s: bounds %+v out of sync with center %v", label, tk.Bounds(), tk.Center())
	}
}
