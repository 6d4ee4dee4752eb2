package tanks

import (
	"github.com/vovakirdan/tui-tanks/internal/core"
)

// Autopilot plays the player tank for batch runs: it wanders like an enemy,
// keeps the barrel on the nearest enemy and fires whenever the projectile is free.
type Autopilot struct {
	rng Rand
}

// NewAutopilot returns an autopilot drawing directions from rng.
func NewAutopilot(rng Rand) *Autopilot {
	return &Autopilot{rng: rng}
}

// Frame decides the player's input for the next tick.
func (a *Autopilot) Frame(snap Snapshot) core.InputFrame {
	in := core.NewInputFrame()
	if snap.Terminal() {
		return in
	}

	in.Direction = core.Directions[a.rng.Intn(len(core.Directions))]

	target, ok := nearest(snap.Player.Center, snap.Enemies)
	if !ok {
		return in
	}
	in.Aim = target
	in.HasAim = true
	if !snap.Player.Projectile.Active {
		in.Fire = true
		in.FireAt = target
	}
	return in
}

func nearest(from core.Point, enemies []TankView) (core.Point, bool) {
	best, found := core.Point{}, false
	bestDist := 0.0
	for _, e := range enemies {
		d := core.Distance(from, e.Center)
		if !found || d < bestDist {
			best, bestDist, found = e.Center, d, true
		}
	}
	return best, found
}
