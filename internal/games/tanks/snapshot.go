package tanks

import (
	"slices"

	"github.com/vovakirdan/tui-tanks/internal/core"
)

// ProjectileView is the read-only state of a projectile.
type ProjectileView struct {
	Active   bool
	Position core.Point
	Origin   core.Point
}

// TankView is the read-only state of a tank.
type TankView struct {
	Center     core.Point
	Bounds     core.Rect
	Direction  core.Direction
	Barrel     core.Point
	Lives      int
	Color      core.Color
	Projectile ProjectileView
}

// Snapshot is a detached copy of a match after a tick. Renderers and the
// autopilot read it; mutating it has no effect on the simulation.
type Snapshot struct {
	Tick      uint64
	Arena     core.Rect
	Obstacles []core.Rect
	Player    TankView
	Enemies   []TankView
	Kills     int
	Score     int
	GameOver  bool
	Win       bool
}

// Terminal reports whether the match had ended when the snapshot was taken.
func (snap Snapshot) Terminal() bool {
	return snap.GameOver || snap.Win
}

func viewOf(t *Tank) TankView {
	return TankView{
		Center:    t.center,
		Bounds:    t.bounds,
		Direction: t.direction,
		Barrel:    t.barrel,
		Lives:     t.lives,
		Color:     t.color,
		Projectile: ProjectileView{
			Active:   t.missile.active,
			Position: t.missile.position,
			Origin:   t.missile.origin,
		},
	}
}

// Snapshot returns the current state.
func (s *Simulation) Snapshot() Snapshot {
	enemies := make([]TankView, len(s.enemies))
	for i, e := range s.enemies {
		enemies[i] = viewOf(e)
	}
	return Snapshot{
		Tick:      s.tick,
		Arena:     s.grid.Bounds(),
		Obstacles: slices.Clone(s.grid.Obstacles()),
		Player:    viewOf(s.player),
		Enemies:   enemies,
		Kills:     s.kills,
		Score:     s.Score(),
		GameOver:  s.gameOver,
		Win:       s.win,
	}
}

// Hash folds the dynamic state into one value for determinism tests.
func (snap Snapshot) Hash() uint64 {
	h := snap.Tick
	mix := func(v int) {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	tank := func(v TankView) {
		mix(v.Center.X)
		mix(v.Center.Y)
		mix(int(v.Direction))
		mix(v.Barrel.X)
		mix(v.Barrel.Y)
		mix(v.Lives)
		if v.Projectile.Active {
			mix(1)
			mix(v.Projectile.Position.X)
			mix(v.Projectile.Position.Y)
		} else {
			mix(0)
		}
	}

	tank(snap.Player)
	mix(len(snap.Enemies))
	for _, e := range snap.Enemies {
		tank(e)
	}
	mix(snap.Kills)
	if snap.GameOver {
		mix(1)
	}
	if snap.Win {
		mix(2)
	}
	return h
}
