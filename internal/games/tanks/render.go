package tanks

import (
	"fmt"

	"github.com/vovakirdan/tui-tanks/internal/core"
)

// Visual characters for rendering
const (
	WallChar       = '▓'
	TankChar       = '█'
	BarrelChar     = '+'
	ProjectileChar = '•'
	SeparatorChar  = '─'
)

// Viewport maps world pixels onto terminal cells. Cells are twice as tall
// as they are wide so the arena keeps its aspect ratio on screen.
type Viewport struct {
	Arena core.Rect
	OffX  int // screen column of the arena's left edge
	OffY  int // screen row of the arena's top edge
	CellW int // world pixels per column
	CellH int // world pixels per row
	Cols  int
	Rows  int
}

// FitViewport picks the smallest cell size that shows the whole arena in a
// screenW x screenH terminal below hudRows rows of HUD, and centers it.
func FitViewport(arena core.Rect, screenW, screenH, hudRows int) Viewport {
	availW := max(screenW, 1)
	availH := max(screenH-hudRows, 1)

	cellW := max(ceilDiv(arena.W, availW), ceilDiv(arena.H, 2*availH), 1)
	cellH := 2 * cellW
	cols := ceilDiv(arena.W, cellW)
	rows := ceilDiv(arena.H, cellH)

	return Viewport{
		Arena: arena,
		OffX:  max((screenW-cols)/2, 0),
		OffY:  hudRows + max((availH-rows)/2, 0),
		CellW: cellW,
		CellH: cellH,
		Cols:  cols,
		Rows:  rows,
	}
}

// ToScreen returns the cell containing world point p.
func (v Viewport) ToScreen(p core.Point) (x, y int) {
	return v.OffX + floorDiv(p.X-v.Arena.X, v.CellW), v.OffY + floorDiv(p.Y-v.Arena.Y, v.CellH)
}

// ToWorld returns the world point at the middle of cell (x, y).
func (v Viewport) ToWorld(x, y int) core.Point {
	return core.Pt(
		v.Arena.X+(x-v.OffX)*v.CellW+v.CellW/2,
		v.Arena.Y+(y-v.OffY)*v.CellH+v.CellH/2,
	)
}

// Contains reports whether cell (x, y) shows part of the arena.
func (v Viewport) Contains(x, y int) bool {
	return x >= v.OffX && x < v.OffX+v.Cols && y >= v.OffY && y < v.OffY+v.Rows
}

func ceilDiv(a, b int) int {
	if b <= 0 {
		return a
	}
	return (a + b - 1) / b
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	snap := g.sim.Snapshot()

	g.renderHUD(dst, snap)

	for _, o := range snap.Obstacles {
		g.fillWorldRect(dst, o, WallChar, core.ColorWhite)
	}
	for _, e := range snap.Enemies {
		g.renderTank(dst, e, core.ColorBrightRed)
	}
	g.renderTank(dst, snap.Player, core.ColorBrightYellow)

	switch {
	case snap.GameOver:
		g.renderOverlay(dst, "Game Over", "Press R to restart")
	case snap.Win:
		g.renderOverlay(dst, "You Win!", fmt.Sprintf("Score: %d  Press R to play again", snap.Score))
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen, snap Snapshot) {
	hud := fmt.Sprintf(" Tanks | Lives: %d | Enemies: %d/%d | Score: %d",
		snap.Player.Lives, len(snap.Enemies), g.difficulty.EnemyCount(), snap.Score)
	dst.DrawText(0, 0, hud, core.ColorDefault)

	for x := range dst.Width() {
		dst.Set(x, 1, SeparatorChar)
	}
}

func (g *Game) renderTank(dst *core.Screen, t TankView, shotColor core.Color) {
	g.fillWorldRect(dst, t.Bounds, TankChar, t.Color)

	bx, by := g.view.ToScreen(t.Barrel)
	cx, cy := g.view.ToScreen(t.Center)
	if bx != cx || by != cy {
		dst.SetColor(bx, by, BarrelChar, t.Color)
	}

	if t.Projectile.Active {
		px, py := g.view.ToScreen(t.Projectile.Position)
		if g.view.Contains(px, py) {
			dst.SetColor(px, py, ProjectileChar, shotColor)
		}
	}
}

// fillWorldRect paints every cell that r overlaps.
func (g *Game) fillWorldRect(dst *core.Screen, r core.Rect, ch rune, c core.Color) {
	x0, y0 := g.view.ToScreen(core.Pt(r.X, r.Y))
	x1, y1 := g.view.ToScreen(core.Pt(r.Right()-1, r.Bottom()-1))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			dst.SetColor(x, y, ch, c)
		}
	}
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	width := max(len([]rune(line1)), len([]rune(line2))) + 4
	box := core.NewRect((dst.Width()-width)/2, (dst.Height()-5)/2, width, 5)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextCentered(box.Y+1, line1, core.ColorBrightWhite)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorDefault)
}
