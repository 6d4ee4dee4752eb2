package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tanks/internal/core"
	"github.com/vovakirdan/tui-tanks/internal/games/tanks"
	"github.com/vovakirdan/tui-tanks/internal/input"
)

// Options configures a terminal session.
type Options struct {
	Runtime  core.RuntimeConfig
	Interval time.Duration // simulation period
	KeyHold  time.Duration // see KeyHold
	Logger   *log.Logger
}

// Model is the Bubble Tea model for a running match.
type Model struct {
	game     *tanks.Game
	screen   *core.Screen
	cell     *input.Cell
	hold     *KeyHold
	keys     GameKeyMap
	help     help.Model
	opts     Options
	state    core.GameState
	quitting bool
}

// NewModel creates a new Bubble Tea model for game.
func NewModel(game *tanks.Game, opts Options) Model {
	// Use time-based seed if not specified
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	cell := input.NewCell()
	m := Model{
		game:   game,
		screen: core.NewScreen(opts.Runtime.ScreenW, gameRows(opts.Runtime.ScreenH)),
		cell:   cell,
		hold:   NewKeyHold(cell, opts.KeyHold),
		keys:   DefaultGameKeyMap(),
		help:   help.New(),
		opts:   opts,
	}
	m.help.Width = opts.Runtime.ScreenW

	rt := opts.Runtime
	rt.ScreenH = gameRows(rt.ScreenH)
	game.Reset(rt)
	return m
}

// gameRows leaves the last row of the terminal for the help line.
func gameRows(h int) int {
	return max(h-1, 1)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.Interval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if k, ok := m.keys.DirectionKey(msg); ok {
		m.hold.Press(k, time.Now())
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Fire):
		m.fireAhead()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionRestart:
		m.cell.Trigger(core.ActionRestart)
	}
	return m, nil
}

// fireAhead fires at the pointer, or straight along the barrel when the
// mouse has not been used yet.
func (m Model) fireAhead() {
	frame := m.cell.Peek()
	if frame.HasAim {
		m.cell.Click(frame.Aim)
		return
	}
	p := m.game.Snapshot().Player
	dx, dy := p.Barrel.X-p.Center.X, p.Barrel.Y-p.Center.Y
	m.cell.Click(p.Barrel.Translate(dx*20, dy*20))
}

// handleMouse aims with pointer motion and fires on left click.
func (m Model) handleMouse(msg tea.MouseMsg) {
	p := m.game.Viewport().ToWorld(msg.X, msg.Y)
	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.cell.Click(p)
	case msg.Action == tea.MouseActionMotion:
		m.cell.MovePointer(p)
	}
}

// handleResize refits the arena; the match keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.opts.Runtime.ScreenW = msg.Width
	m.opts.Runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, gameRows(msg.Height))
	m.game.Resize(msg.Width, gameRows(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick expires held keys, feeds one frame to the game and schedules the next tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.hold.Expire(now)
	frame := m.cell.Take()

	wasTerminal := m.state.Terminal()
	m.state = m.game.Step(frame).State

	switch {
	case frame.Has(core.ActionRestart) && wasTerminal && !m.state.Terminal():
		m.hold.Reset()
		m.opts.Logger.Info("match restarted", "difficulty", int(m.game.Difficulty()))
	case !wasTerminal && m.state.GameOver:
		m.opts.Logger.Info("match lost", "score", m.state.Score, "tick", m.game.Snapshot().Tick)
	case !wasTerminal && m.state.Won:
		m.opts.Logger.Info("match won", "score", m.state.Score, "tick", m.game.Snapshot().Tick)
	}

	return m, tickCmd(m.opts.Interval)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// State returns the state after the last tick.
func (m Model) State() core.GameState {
	return m.state
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(game *tanks.Game, opts Options) (core.GameState, error) {
	model := NewModel(game, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Pointer motion aims the barrel
	)

	final, err := p.Run()
	if m, ok := final.(Model); ok {
		return m.State(), err
	}
	return model.State(), err
}
