package tilemap

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-tanks/internal/core"
)

const smallMap = `3
1 0 0
0 0 0
0 0 1
`

func TestParseObstacles(t *testing.T) {
	g, err := Parse(strings.NewReader(smallMap), 3, 65)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	obstacles := g.Obstacles()
	if len(obstacles) != 2 {
		t.Fatalf("expected 2 obstacles, got %d", len(obstacles))
	}
	if obstacles[0] != core.NewRect(0, 0, 65, 65) {
		t.Errorf("first obstacle = %+v, expected {0 0 65 65}", obstacles[0])
	}
	if obstacles[1] != core.NewRect(130, 130, 65, 65) {
		t.Errorf("second obstacle = %+v, expected {130 130 65 65}", obstacles[1])
	}
	if g.At(2, 2) != Wall || g.At(1, 1) != Open {
		t.Error("At() returned wrong tiles")
	}
	if g.Bounds() != core.NewRect(0, 0, 195, 195) {
		t.Errorf("Bounds() = %+v", g.Bounds())
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		wantErr error
	}{
		{"empty", "", ErrRowCount},
		{"header only", "3\n", ErrRowCount},
		{"too few rows", "3\n0 0 0\n0 0 0\n", ErrRowCount},
		{"too many rows", "3\n0 0 0\n0 0 0\n0 0 0\n0 0 0\n", ErrRowCount},
		{"short row", "3\n0 0\n0 0 0\n0 0 0\n", ErrColumnCount},
		{"long row", "3\n0 0 0 0\n0 0 0\n0 0 0\n", ErrColumnCount},
		{"non numeric", "3\n0 x 0\n0 0 0\n0 0 0\n", ErrBadToken},
		{"out of range value", "3\n0 2 0\n0 0 0\n0 0 0\n", ErrBadToken},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := Parse(strings.NewReader(tc.source), 3, 65)
			if err == nil {
				t.Fatalf("Parse() should fail, got grid\n%s", g)
			}
			var mle *MapLoadError
			if !errors.As(err, &mle) {
				t.Fatalf("expected *MapLoadError, got %T", err)
			}
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestParseReportsLine(t *testing.T) {
	_, err := Parse(strings.NewReader("3\n0 0 0\n0 a 0\n0 0 0\n"), 3, 65)
	var mle *MapLoadError
	if !errors.As(err, &mle) {
		t.Fatalf("expected *MapLoadError, got %v", err)
	}
	if mle.Line != 3 {
		t.Errorf("Line = %d, expected 3", mle.Line)
	}
}

func TestParseTrailingBlankLines(t *testing.T) {
	if _, err := Parse(strings.NewReader(smallMap+"\n\n"), 3, 65); err != nil {
		t.Errorf("trailing blank lines should be accepted: %v", err)
	}
}

func TestLoadFileMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.txt")
	_, err := LoadFile(path, 13, 65)
	if !errors.Is(err, ErrMissingMap) {
		t.Fatalf("expected ErrMissingMap, got %v", err)
	}
	var mle *MapLoadError
	if errors.As(err, &mle) && mle.Path != path {
		t.Errorf("Path = %q, expected %q", mle.Path, path)
	}
}

func TestLoadFileMalformedHasPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.txt")
	if err := os.WriteFile(path, []byte("3\n0 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadFile(path, 3, 65)
	if err == nil || !strings.Contains(err.Error(), path) {
		t.Errorf("error should mention %s, got %v", path, err)
	}
}

func TestLoadFileValid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.txt")
	if err := os.WriteFile(path, []byte(smallMap), 0o600); err != nil {
		t.Fatal(err)
	}
	g, err := LoadFile(path, 3, 10)
	if err != nil {
		t.Fatalf("LoadFile() failed: %v", err)
	}
	if g.TileSize() != 10 || g.Size() != 3 {
		t.Errorf("got %dx%d tiles of %d, expected 3x3 of 10", g.Size(), g.Size(), g.TileSize())
	}
}

func TestDefaultArena(t *testing.T) {
	g, err := LoadFile("", 13, 65)
	if err != nil {
		t.Fatalf("default arena failed to load: %v", err)
	}

	// Spawn tiles used by the default config must be open.
	spawns := []core.Point{core.Pt(360, 360), core.Pt(360, 490), core.Pt(490, 490), core.Pt(490, 360)}
	for _, p := range spawns {
		if g.Collides(core.RectAround(p, 13, 13)) {
			t.Errorf("spawn %v collides with a wall", p)
		}
	}

	// The border is walled.
	for i := 0; i < 13; i++ {
		if g.At(0, i) != Wall || g.At(12, i) != Wall || g.At(i, 0) != Wall || g.At(i, 12) != Wall {
			t.Fatalf("border tile missing around index %d", i)
		}
	}

	if _, err := Default(10, 65); err == nil {
		t.Error("default arena should not load with a mismatched grid size")
	}
}

func TestCollidesAndBlocks(t *testing.T) {
	g, err := Parse(strings.NewReader(smallMap), 3, 65)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		rect core.Rect
		want bool
	}{
		{"open middle", core.NewRect(70, 70, 13, 13), false},
		{"touching wall edge", core.NewRect(65, 10, 13, 13), false},
		{"overlapping wall", core.NewRect(60, 10, 13, 13), true},
		{"outside arena", core.NewRect(190, 70, 13, 13), true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := g.Collides(tc.rect); got != tc.want {
				t.Errorf("Collides(%+v) = %v, expected %v", tc.rect, got, tc.want)
			}
		})
	}

	if !g.Blocks(core.Pt(10, 10)) {
		t.Error("point inside a wall should be blocked")
	}
	if g.Blocks(core.Pt(100, 100)) {
		t.Error("open point should not be blocked")
	}
	if !g.Blocks(core.Pt(-1, 100)) {
		t.Error("point outside the arena should be blocked")
	}
}

func TestEmptyGrid(t *testing.T) {
	g := Empty(13, 65)
	if len(g.Obstacles()) != 0 {
		t.Errorf("empty grid should have no obstacles, got %d", len(g.Obstacles()))
	}
	if g.String() != strings.TrimSuffix(strings.Repeat(strings.Repeat(".", 13)+"\n", 13), "\n") {
		t.Errorf("unexpected String():\n%s", g.String())
	}
}
