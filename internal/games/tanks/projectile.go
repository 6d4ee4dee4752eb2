package tanks

import "github.com/vovakirdan/tui-tanks/internal/core"

// Projectile is a missile in straight-line flight. A tank owns exactly one
// and reuses it; only an inactive projectile can be launched again.
type Projectile struct {
	origin   core.Point
	position core.Point
	target   core.Point
	step     core.Vec
	active   bool
}

// Launch arms the projectile at origin heading for target. The per-tick step
// is speed pixels along the origin-target ray. When target equals origin
// there is no direction to fly in and Launch leaves the projectile inactive.
// The same holds when speed is too small for the truncated step to move.
func (p *Projectile) Launch(origin, target core.Point, speed float64) bool {
	step, err := core.StepToward(origin, target, speed)
	if err != nil {
		return false
	}
	if dx, dy := step.Trunc(); dx == 0 && dy == 0 {
		return false
	}
	p.origin = origin
	p.position = origin
	p.target = target
	p.step = step
	p.active = true
	return true
}

// Advance moves the projectile one step. Each component of the step is
// truncated toward zero before it is applied, so flight is linear in
// integer pixels: after k steps position == origin + k*trunc(step).
func (p *Projectile) Advance() {
	if !p.active {
		return
	}
	dx, dy := p.step.Trunc()
	p.position = p.position.Translate(dx, dy)
}

// Deactivate ends the flight. Safe to call repeatedly.
func (p *Projectile) Deactivate() {
	p.active = false
}

// Active reports whether the projectile is in flight.
func (p *Projectile) Active() bool {
	return p.active
}

// Position returns the current location. Meaningless while inactive.
func (p *Projectile) Position() core.Point {
	return p.position
}

// Origin returns the point of the last launch.
func (p *Projectile) Origin() core.Point {
	return p.origin
}

// Target returns the point the last launch aimed at.
func (p *Projectile) Target() core.Point {
	return p.target
}

// Step returns the untruncated per-tick displacement.
func (p *Projectile) Step() core.Vec {
	return p.step
}
