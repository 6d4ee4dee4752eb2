package tanks

import (
	"slices"

	"github.com/vovakirdan/tui-tanks/internal/core"
	"github.com/vovakirdan/tui-tanks/internal/tilemap"
)

// PointsPerKill is the score for each destroyed enemy.
const PointsPerKill = 100

// Simulation owns one match: the arena, the player, the enemies and the
// terminal flags. It is single-threaded; the caller drives it by alternating
// Apply and Advance from one goroutine.
type Simulation struct {
	grid    *tilemap.Grid
	params  Params
	rng     Rand
	player  *Tank
	enemies []*Tank

	tick     uint64
	kills    int
	gameOver bool
	win      bool
}

// NewSimulation places the player and one enemy per spawn on grid.
func NewSimulation(grid *tilemap.Grid, p Params, player Spawn, enemies []Spawn, rng Rand) *Simulation {
	s := &Simulation{
		grid:    grid,
		params:  p,
		rng:     rng,
		player:  NewTank(p, player),
		enemies: make([]*Tank, 0, len(enemies)),
	}
	for _, e := range enemies {
		s.enemies = append(s.enemies, NewTank(p, e))
	}
	return s
}

// Apply feeds one frame of player intent: direction, aim and fire.
// It is ignored once the match is over.
func (s *Simulation) Apply(in core.InputFrame) {
	if s.Terminal() {
		return
	}
	s.player.SetDirection(in.Direction)
	if in.HasAim {
		s.player.SetAimPoint(in.Aim)
	}
	if in.Fire {
		s.player.Fire(in.FireAt)
	}
}

// Advance runs one tick:
//
//  1. the player moves; each enemy re-aims, moves randomly and fires if it can
//  2. once terminal, every tank is frozen instead
//  3. hits are resolved, each projectile scoring at most once
//  4. the terminal flags are recomputed
func (s *Simulation) Advance() {
	s.tick++

	if s.Terminal() {
		s.freeze()
		return
	}

	s.player.Tick(s.grid)
	for _, e := range s.enemies {
		e.MoveRandom(s.rng, s.grid)
		e.SetAimPoint(s.player.center)
		if !e.missile.active {
			e.ShootToward(s.player)
		}
	}

	s.resolveHits()
	s.updateFlags()
}

func (s *Simulation) resolveHits() {
	shot := &s.player.missile
	survivors := s.enemies[:0]
	for _, e := range s.enemies {
		destroyed := false
		if shot.active && e.TestHit(shot.position) {
			shot.Deactivate()
			destroyed = true
			s.kills++
		}
		if e.missile.active && s.player.TestHit(e.missile.position) {
			s.player.ReduceLives()
			e.missile.Deactivate()
		}
		if !destroyed {
			survivors = append(survivors, e)
		}
	}
	clear(s.enemies[len(survivors):])
	s.enemies = survivors
}

// updateFlags sets at most one terminal flag. Losing the last life takes
// precedence over destroying the last enemy on the same tick.
func (s *Simulation) updateFlags() {
	switch {
	case s.player.lives == 0:
		s.gameOver = true
	case len(s.enemies) == 0:
		s.win = true
	}
	if s.Terminal() {
		s.freeze()
	}
}

func (s *Simulation) freeze() {
	s.player.Freeze()
	for _, e := range s.enemies {
		e.Freeze()
	}
}

// GameOver reports whether the player has been eliminated.
func (s *Simulation) GameOver() bool {
	return s.gameOver
}

// Win reports whether every enemy has been destroyed.
func (s *Simulation) Win() bool {
	return s.win
}

// Terminal reports whether the match has ended either way.
func (s *Simulation) Terminal() bool {
	return s.gameOver || s.win
}

// Player returns the live player tank. Changes made through it affect the
// match; renderers should read Snapshot instead.
func (s *Simulation) Player() *Tank {
	return s.player
}

// Enemies returns the surviving enemy tanks in spawn order. The slice is a
// copy; the tanks are live, as with Player.
func (s *Simulation) Enemies() []*Tank {
	return slices.Clone(s.enemies)
}

// Tick returns the number of Advance calls so far.
func (s *Simulation) Tick() uint64 {
	return s.tick
}

// Kills returns how many enemies the player has destroyed.
func (s *Simulation) Kills() int {
	return s.kills
}

// Score is PointsPerKill for every destroyed enemy.
func (s *Simulation) Score() int {
	return s.kills * PointsPerKill
}

// State reports the flags in the shape front ends share across games.
func (s *Simulation) State() core.GameState {
	return core.GameState{Score: s.Score(), GameOver: s.gameOver, Won: s.win}
}
