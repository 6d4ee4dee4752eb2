// Package tilemap loads the square obstacle grid a tank arena is built on.
// A Grid is immutable once loaded and is shared read-only by every tank.
package tilemap

import (
	"bufio"
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-tanks/internal/core"
)

//go:embed maps/arena.txt
var defaultArena []byte

// Tile is the content of a single grid cell.
type Tile uint8

const (
	Open Tile = iota
	Wall
)

// Errors wrapped by MapLoadError.
var (
	ErrMissingMap  = errors.New("map source not found")
	ErrRowCount    = errors.New("wrong number of rows")
	ErrColumnCount = errors.New("wrong number of columns")
	ErrBadToken    = errors.New("cell is not 0 or 1")
	ErrBadSize     = errors.New("grid and tile size must be positive")
)

// MapLoadError reports a missing or malformed map source.
type MapLoadError struct {
	Path string // Source name, "" for readers
	Line int    // 1-based line number, 0 when not line specific
	Err  error
}

func (e *MapLoadError) Error() string {
	src := e.Path
	if src == "" {
		src = "map"
	}
	if e.Line > 0 {
		return fmt.Sprintf("tilemap: %s:%d: %v", src, e.Line, e.Err)
	}
	return fmt.Sprintf("tilemap: %s: %v", src, e.Err)
}

func (e *MapLoadError) Unwrap() error {
	return e.Err
}

// Grid is a square occupancy grid plus the wall rectangles derived from it.
type Grid struct {
	size      int
	tileSize  int
	tiles     [][]Tile
	obstacles []core.Rect
}

// New builds a grid from rows of tiles. Every row must have len(rows) tiles.
func New(rows [][]Tile, tileSize int) (*Grid, error) {
	size := len(rows)
	if size == 0 || tileSize <= 0 {
		return nil, &MapLoadError{Err: ErrBadSize}
	}

	tiles := make([][]Tile, size)
	for r, row := range rows {
		if len(row) != size {
			return nil, &MapLoadError{Line: r + 1, Err: fmt.Errorf("%w: row %d has %d cells, expected %d", ErrColumnCount, r, len(row), size)}
		}
		tiles[r] = append([]Tile(nil), row...)
	}

	g := &Grid{size: size, tileSize: tileSize, tiles: tiles}
	g.obstacles = g.buildObstacles()
	return g, nil
}

// Empty returns an all-open grid.
func Empty(size, tileSize int) *Grid {
	rows := make([][]Tile, size)
	for r := range rows {
		rows[r] = make([]Tile, size)
	}
	g, err := New(rows, tileSize)
	if err != nil {
		panic(err)
	}
	return g
}

// Parse reads a map in text form: a header line that is ignored, followed
// by exactly size lines of size whitespace-separated 0/1 values.
// Blank lines after the last row are allowed.
func Parse(r io.Reader, size, tileSize int) (*Grid, error) {
	if size <= 0 || tileSize <= 0 {
		return nil, &MapLoadError{Err: ErrBadSize}
	}

	sc := bufio.NewScanner(r)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, &MapLoadError{Err: err}
		}
		return nil, &MapLoadError{Err: fmt.Errorf("%w: empty source", ErrRowCount)}
	}

	rows := make([][]Tile, 0, size)
	line := 1
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(rows) == size {
			return nil, &MapLoadError{Line: line, Err: fmt.Errorf("%w: more than %d rows", ErrRowCount, size)}
		}
		if len(fields) != size {
			return nil, &MapLoadError{Line: line, Err: fmt.Errorf("%w: got %d, expected %d", ErrColumnCount, len(fields), size)}
		}

		row := make([]Tile, size)
		for c, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil || (v != int(Open) && v != int(Wall)) {
				return nil, &MapLoadError{Line: line, Err: fmt.Errorf("%w: %q at column %d", ErrBadToken, f, c+1)}
			}
			row[c] = Tile(v)
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, &MapLoadError{Line: line, Err: err}
	}
	if len(rows) != size {
		return nil, &MapLoadError{Err: fmt.Errorf("%w: got %d, expected %d", ErrRowCount, len(rows), size)}
	}

	return New(rows, tileSize)
}

// LoadFile parses the map file at path. An empty path loads the built-in arena.
func LoadFile(path string, size, tileSize int) (*Grid, error) {
	if path == "" {
		return Default(size, tileSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &MapLoadError{Path: path, Err: ErrMissingMap}
		}
		return nil, &MapLoadError{Path: path, Err: err}
	}

	g, err := Parse(bytes.NewReader(data), size, tileSize)
	if err != nil {
		var mle *MapLoadError
		if errors.As(err, &mle) {
			mle.Path = path
		}
		return nil, err
	}
	return g, nil
}

// Default returns the built-in 13x13 arena.
func Default(size, tileSize int) (*Grid, error) {
	g, err := Parse(bytes.NewReader(defaultArena), size, tileSize)
	if err != nil {
		var mle *MapLoadError
		if errors.As(err, &mle) {
			mle.Path = "builtin:arena"
		}
		return nil, err
	}
	return g, nil
}

func (g *Grid) buildObstacles() []core.Rect {
	var rects []core.Rect
	for r, row := range g.tiles {
		for c, t := range row {
			if t == Wall {
				rects = append(rects, core.NewRect(c*g.tileSize, r*g.tileSize, g.tileSize, g.tileSize))
			}
		}
	}
	return rects
}

// Size returns the number of tiles along each side.
func (g *Grid) Size() int {
	return g.size
}

// TileSize returns the side of a tile in world pixels.
func (g *Grid) TileSize() int {
	return g.tileSize
}

// At returns the tile at (row, col). Out-of-range cells read as Wall.
func (g *Grid) At(row, col int) Tile {
	if row < 0 || row >= g.size || col < 0 || col >= g.size {
		return Wall
	}
	return g.tiles[row][col]
}

// Bounds returns the arena rectangle in world pixels.
func (g *Grid) Bounds() core.Rect {
	side := g.size * g.tileSize
	return core.NewRect(0, 0, side, side)
}

// Obstacles returns the wall rectangles. The slice is shared; callers must not modify it.
func (g *Grid) Obstacles() []core.Rect {
	return g.obstacles
}

// Collides reports whether r overlaps a wall or leaves the arena.
func (g *Grid) Collides(r core.Rect) bool {
	if !g.Bounds().Encloses(r) {
		return true
	}
	for _, o := range g.obstacles {
		if o.Intersects(r) {
			return true
		}
	}
	return false
}

// Blocks reports whether p is inside a wall or outside the arena.
func (g *Grid) Blocks(p core.Point) bool {
	if !g.Bounds().ContainsPoint(p) {
		return true
	}
	for _, o := range g.obstacles {
		if o.ContainsPoint(p) {
			return true
		}
	}
	return false
}

// String renders the grid with '#' for walls and '.' for open tiles.
func (g *Grid) String() string {
	var sb strings.Builder
	for r, row := range g.tiles {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for _, t := range row {
			if t == Wall {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
