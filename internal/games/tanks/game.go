// Package tanks implements the tank arena: one player tank against one to
// three AI tanks on a walled tile grid.
package tanks

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-tanks/internal/config"
	"github.com/vovakirdan/tui-tanks/internal/core"
	"github.com/vovakirdan/tui-tanks/internal/tilemap"
)

// HUDRows is the number of screen rows reserved above the arena.
const HUDRows = 2

// Game adapts a Simulation to the platform loop: it owns the seed, the
// restart rule and the screen viewport.
type Game struct {
	cfg        config.TanksConfig
	params     Params
	grid       *tilemap.Grid
	difficulty config.Difficulty
	player     Spawn
	enemies    []Spawn

	runtime core.RuntimeConfig
	rng     *rand.Rand
	sim     *Simulation
	view    Viewport
}

// New prepares a game on grid. Call Reset before the first Step.
func New(cfg config.TanksConfig, grid *tilemap.Grid, difficulty config.Difficulty) (*Game, error) {
	if err := difficulty.Validate(); err != nil {
		return nil, err
	}

	player, err := spawnOf(cfg.Player, cfg.Player.Color)
	if err != nil {
		return nil, fmt.Errorf("tanks: player spawn: %w", err)
	}

	var enemies []Spawn
	for i, sc := range cfg.EnemySpawns(difficulty) {
		color := sc.Color
		if color == "" {
			color = cfg.Enemies.Color
		}
		sp, err := spawnOf(sc, color)
		if err != nil {
			return nil, fmt.Errorf("tanks: enemy spawn %d: %w", i, err)
		}
		enemies = append(enemies, sp)
	}
	if len(enemies) != difficulty.EnemyCount() {
		return nil, fmt.Errorf("tanks: difficulty %d needs %d enemy spawns, config has %d",
			int(difficulty), difficulty.EnemyCount(), len(enemies))
	}

	return &Game{
		cfg:        cfg,
		params:     ParamsFromConfig(cfg),
		grid:       grid,
		difficulty: difficulty,
		player:     player,
		enemies:    enemies,
	}, nil
}

func spawnOf(sc config.SpawnConfig, colorName string) (Spawn, error) {
	dir, err := sc.Heading()
	if err != nil {
		return Spawn{}, err
	}
	color, ok := core.ParseColor(colorName)
	if !ok {
		return Spawn{}, fmt.Errorf("unknown color %q", colorName)
	}
	return Spawn{Center: sc.Center(), Direction: dir, Color: color}, nil
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "tanks"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Tanks"
}

// Reset starts a fresh match with the runtime's seed.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.sim = NewSimulation(g.grid, g.params, g.player, g.enemies, g.rng)
	g.view = FitViewport(g.grid.Bounds(), runtime.ScreenW, runtime.ScreenH, HUDRows)
}

// Resize refits the viewport without touching the match.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.view = FitViewport(g.grid.Bounds(), w, h, HUDRows)
}

// Step applies one input frame and advances one tick. Restart is honored
// only after the match has ended.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) && g.sim.Terminal() {
		next := g.runtime
		next.Seed = g.rng.Int63()
		g.Reset(next)
		return core.StepResult{State: g.State()}
	}

	g.sim.Apply(in)
	g.sim.Advance()
	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return g.sim.State()
}

// Snapshot returns a detached copy of the match.
func (g *Game) Snapshot() Snapshot {
	return g.sim.Snapshot()
}

// Simulation exposes the running match.
func (g *Game) Simulation() *Simulation {
	return g.sim
}

// Viewport returns the current world-to-screen mapping.
func (g *Game) Viewport() Viewport {
	return g.view
}

// Difficulty returns the enemy count setting.
func (g *Game) Difficulty() config.Difficulty {
	return g.difficulty
}

// Config returns the config the game was built with.
func (g *Game) Config() config.TanksConfig {
	return g.cfg
}
