//go:build !nogui

// Package gui runs a tank match in a desktop window with Ebiten.
package gui

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/tui-tanks/internal/core"
	"github.com/vovakirdan/tui-tanks/internal/games/tanks"
	"github.com/vovakirdan/tui-tanks/internal/input"
)

// hudHeight is the strip above the arena used for status text.
const hudHeight = 24

var (
	backgroundColor = color.RGBA{R: 18, G: 20, B: 18, A: 255}
	wallColor       = color.RGBA{R: 70, G: 72, B: 78, A: 255}
	wallEdgeColor   = color.RGBA{R: 110, G: 112, B: 120, A: 255}
	overlayColor    = color.RGBA{R: 0, G: 0, B: 0, A: 170}
	playerShotColor = color.RGBA{R: 255, G: 230, B: 90, A: 255}
	enemyShotColor  = color.RGBA{R: 255, G: 90, B: 60, A: 255}
)

// palette maps core colors to window colors.
var palette = map[core.Color]color.RGBA{
	core.ColorDefault:      {R: 220, G: 220, B: 220, A: 255},
	core.ColorRed:          {R: 220, G: 40, B: 40, A: 255},
	core.ColorGreen:        {R: 60, G: 180, B: 75, A: 255},
	core.ColorYellow:       {R: 230, G: 200, B: 40, A: 255},
	core.ColorBlue:         {R: 60, G: 110, B: 220, A: 255},
	core.ColorWhite:        {R: 230, G: 230, B: 230, A: 255},
	core.ColorBrightRed:    {R: 255, G: 90, B: 90, A: 255},
	core.ColorBrightYellow: {R: 255, G: 240, B: 120, A: 255},
	core.ColorBrightWhite:  {R: 255, G: 255, B: 255, A: 255},
	core.ColorGray:         {R: 150, G: 150, B: 150, A: 255},
}

func rgba(c core.Color) color.RGBA {
	if v, ok := palette[c]; ok {
		return v
	}
	return palette[core.ColorDefault]
}

// keyBindings maps physical keys to direction keys. Each direction has two
// keys; it stays held while either is down.
var keyBindings = map[ebiten.Key]input.Key{
	ebiten.KeyW:          input.KeyUp,
	ebiten.KeyArrowUp:    input.KeyUp,
	ebiten.KeyA:          input.KeyLeft,
	ebiten.KeyArrowLeft:  input.KeyLeft,
	ebiten.KeyS:          input.KeyDown,
	ebiten.KeyArrowDown:  input.KeyDown,
	ebiten.KeyD:          input.KeyRight,
	ebiten.KeyArrowRight: input.KeyRight,
}

// Options configures a window session.
type Options struct {
	Runtime  core.RuntimeConfig
	Interval time.Duration
	Logger   *log.Logger
}

// Window implements ebiten.Game around a tank match.
type Window struct {
	game   *tanks.Game
	cell   *input.Cell
	keys   *input.Bindings[ebiten.Key]
	opts   Options
	state  core.GameState
	width  int
	height int
}

// New prepares a window for game and starts the match.
func New(game *tanks.Game, opts Options) *Window {
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	game.Reset(opts.Runtime)

	arena := game.Snapshot().Arena
	return &Window{
		game:   game,
		cell:   input.NewCell(),
		keys:   input.NewBindings(keyBindings),
		opts:   opts,
		width:  arena.W,
		height: arena.H + hudHeight,
	}
}

// Update runs once per simulation tick: it collects input and steps the match.
func (w *Window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	w.pollInput()

	frame := w.cell.Take()
	wasTerminal := w.state.Terminal()
	w.state = w.game.Step(frame).State

	switch {
	case frame.Has(core.ActionRestart) && wasTerminal && !w.state.Terminal():
		w.opts.Logger.Info("match restarted", "difficulty", int(w.game.Difficulty()))
	case !wasTerminal && w.state.GameOver:
		w.opts.Logger.Info("match lost", "score", w.state.Score)
	case !wasTerminal && w.state.Won:
		w.opts.Logger.Info("match won", "score", w.state.Score)
	}
	return nil
}

func (w *Window) pollInput() {
	down, up := w.keys.Sync(ebiten.IsKeyPressed)
	for _, k := range down {
		w.cell.Press(k)
	}
	for _, k := range up {
		w.cell.Release(k)
	}

	mx, my := ebiten.CursorPosition()
	pointer := core.Pt(mx, my-hudHeight)
	w.cell.MovePointer(pointer)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		w.cell.Click(pointer)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		w.cell.Trigger(core.ActionRestart)
	}
}

// Draw paints the latest snapshot.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	snap := w.game.Snapshot()

	for _, o := range snap.Obstacles {
		x, y := float32(o.X), float32(o.Y+hudHeight)
		vector.FillRect(screen, x, y, float32(o.W), float32(o.H), wallColor, false)
		vector.StrokeRect(screen, x, y, float32(o.W), float32(o.H), 1, wallEdgeColor, false)
	}

	for _, e := range snap.Enemies {
		drawTank(screen, e, enemyShotColor)
	}
	drawTank(screen, snap.Player, playerShotColor)

	hud := fmt.Sprintf("Lives: %d   Enemies: %d/%d   Score: %d",
		snap.Player.Lives, len(snap.Enemies), w.game.Difficulty().EnemyCount(), snap.Score)
	text.Draw(screen, hud, basicfont.Face7x13, 8, 16, color.White)

	switch {
	case snap.GameOver:
		w.drawOverlay(screen, "GAME OVER", "Press R to restart")
	case snap.Win:
		w.drawOverlay(screen, "YOU WIN!", fmt.Sprintf("Score %d. Press R to play again", snap.Score))
	}
}

func drawTank(screen *ebiten.Image, t tanks.TankView, shot color.RGBA) {
	b := t.Bounds
	body := rgba(t.Color)
	vector.FillRect(screen, float32(b.X), float32(b.Y+hudHeight), float32(b.W), float32(b.H), body, false)

	cx, cy := float32(t.Center.X), float32(t.Center.Y+hudHeight)
	bx, by := float32(t.Barrel.X), float32(t.Barrel.Y+hudHeight)
	vector.StrokeLine(screen, cx, cy, bx, by, 3, color.Black, true)

	if t.Projectile.Active {
		p := t.Projectile.Position
		vector.FillCircle(screen, float32(p.X), float32(p.Y+hudHeight), 3, shot, true)
	}
}

func (w *Window) drawOverlay(screen *ebiten.Image, title, hint string) {
	const boxW, boxH = 300, 70
	x := float32(w.width-boxW) / 2
	y := float32(w.height-boxH) / 2
	vector.FillRect(screen, x, y, boxW, boxH, overlayColor, false)
	vector.StrokeRect(screen, x, y, boxW, boxH, 2, color.White, false)

	face := basicfont.Face7x13
	text.Draw(screen, title, face, int(x)+(boxW-len(title)*7)/2, int(y)+28, color.White)
	text.Draw(screen, hint, face, int(x)+(boxW-len(hint)*7)/2, int(y)+52, color.White)
}

// Layout keeps one window pixel per world pixel.
func (w *Window) Layout(_, _ int) (int, int) {
	return w.width, w.height
}

// State returns the state after the last tick.
func (w *Window) State() core.GameState {
	return w.state
}

// Run opens the window and blocks until it is closed.
func Run(game *tanks.Game, opts Options) (core.GameState, error) {
	w := New(game, opts)

	tps := int(time.Second / max(opts.Interval, time.Millisecond))
	ebiten.SetTPS(tps)
	ebiten.SetWindowSize(w.width, w.height)
	ebiten.SetWindowTitle("Tanks")

	err := ebiten.RunGame(w)
	if errors.Is(err, ebiten.Termination) {
		err = nil
	}
	return w.State(), err
}
