package tanks

import (
	"github.com/vovakirdan/tui-tanks/internal/config"
	"github.com/vovakirdan/tui-tanks/internal/core"
)

// Terrain is the static obstacle set tanks and projectiles move through.
type Terrain interface {
	// Collides reports whether a tank occupying r would overlap an obstacle.
	Collides(r core.Rect) bool
	// Blocks reports whether a projectile at p has hit an obstacle.
	Blocks(p core.Point) bool
}

// Rand is the random source enemy AI draws directions from.
type Rand interface {
	Intn(n int) int
}

// Params holds the tank and missile tuning shared by every tank in a match.
type Params struct {
	Width        int
	Height       int
	Step         int
	Lives        int
	Barrel       float64
	MissileSpeed float64
}

// ParamsFromConfig extracts match parameters from a loaded config.
func ParamsFromConfig(cfg config.TanksConfig) Params {
	return Params{
		Width:        cfg.Tank.Width,
		Height:       cfg.Tank.Height,
		Step:         cfg.Tank.Step,
		Lives:        cfg.Tank.Lives,
		Barrel:       cfg.Tank.Barrel,
		MissileSpeed: cfg.Missile.Speed,
	}
}

// Spawn places a tank at the start of a match.
type Spawn struct {
	Center    core.Point
	Direction core.Direction
	Color     core.Color
}

// Tank is a controllable combatant with a bounding box, a barrel and one projectile.
type Tank struct {
	params    Params
	center    core.Point
	bounds    core.Rect
	direction core.Direction
	aim       core.Vec // unit vector from center to barrel tip
	barrel    core.Point
	lives     int
	color     core.Color
	missile   Projectile
}

// NewTank creates a tank at spawn with full lives. The barrel initially
// points along the spawn direction, or north when stationary.
func NewTank(p Params, spawn Spawn) *Tank {
	t := &Tank{
		params:    p,
		direction: spawn.Direction,
		lives:     p.Lives,
		color:     spawn.Color,
	}

	ux, uy := spawn.Direction.Unit()
	if ux == 0 && uy == 0 {
		uy = -1
	}
	t.aim, _ = core.Vec{X: float64(ux), Y: float64(uy)}.Normalize()
	t.moveTo(spawn.Center)
	return t
}

// moveTo is the only place center changes; bounds and barrel follow it.
func (t *Tank) moveTo(c core.Point) {
	t.center = c
	t.bounds = core.RectAround(c, t.params.Width, t.params.Height)
	dx, dy := t.aim.Scale(t.params.Barrel).Trunc()
	t.barrel = c.Translate(dx, dy)
}

// Center returns the tank position.
func (t *Tank) Center() core.Point {
	return t.center
}

// Bounds returns the bounding box, always centered on Center.
func (t *Tank) Bounds() core.Rect {
	return t.bounds
}

// Direction returns the current movement code.
func (t *Tank) Direction() core.Direction {
	return t.direction
}

// BarrelTip returns the point shots are launched from.
func (t *Tank) BarrelTip() core.Point {
	return t.barrel
}

// Lives returns the remaining lives.
func (t *Tank) Lives() int {
	return t.lives
}

// Color returns the display color.
func (t *Tank) Color() core.Color {
	return t.color
}

// Projectile returns the tank's own projectile. It is the live instance,
// not a copy: launching or deactivating it changes the match.
func (t *Tank) Projectile() *Projectile {
	return &t.missile
}

// SetDirection sets the movement code. Unknown codes are ignored.
func (t *Tank) SetDirection(d core.Direction) {
	if d.Valid() {
		t.direction = d
	}
}

// SetAimPoint swings the barrel toward target. A target at the center
// leaves the barrel where it is.
func (t *Tank) SetAimPoint(target core.Point) {
	u, err := target.Sub(t.center).Normalize()
	if err != nil {
		return
	}
	t.aim = u
	dx, dy := u.Scale(t.params.Barrel).Trunc()
	t.barrel = t.center.Translate(dx, dy)
}

// Tick moves the tank one step and advances its projectile. A step that would
// overlap terrain is replaced by the reversed step: the tank backs off by one
// step instead of stopping. If backing off is blocked too the tank holds.
func (t *Tank) Tick(terrain Terrain) {
	dx, dy := t.direction.Step(t.params.Step)
	if dx != 0 || dy != 0 {
		if terrain.Collides(t.bounds.Translate(dx, dy)) {
			dx, dy = -dx, -dy
		}
		if !terrain.Collides(t.bounds.Translate(dx, dy)) {
			t.moveTo(t.center.Translate(dx, dy))
		}
	}

	if t.missile.active {
		t.missile.Advance()
		if terrain.Blocks(t.missile.position) {
			t.missile.Deactivate()
		}
	}
}

// Fire launches the projectile from the barrel tip toward target unless it
// is already in flight. Reports whether a shot was fired.
func (t *Tank) Fire(target core.Point) bool {
	if t.missile.active {
		return false
	}
	return t.missile.Launch(t.barrel, target, t.params.MissileSpeed)
}

// MoveRandom draws a fresh direction uniformly from the nine codes and ticks.
func (t *Tank) MoveRandom(rng Rand, terrain Terrain) {
	t.direction = core.Directions[rng.Intn(len(core.Directions))]
	t.Tick(terrain)
}

// ShootToward fires at the other tank's center if the projectile is free.
func (t *Tank) ShootToward(other *Tank) bool {
	return t.Fire(other.center)
}

// TestHit reports whether p lies inside the tank's bounding box.
func (t *Tank) TestHit(p core.Point) bool {
	return t.bounds.ContainsPoint(p)
}

// ReduceLives removes one life, never going below zero.
func (t *Tank) ReduceLives() {
	if t.lives > 0 {
		t.lives--
	}
}

// Freeze stops the tank and grounds its projectile.
func (t *Tank) Freeze() {
	t.direction = core.Stationary
	t.missile.Deactivate()
}
