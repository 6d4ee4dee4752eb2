package tanks

import (
	"testing"

	"github.com/vovakirdan/tui-tanks/internal/core"
	"github.com/vovakirdan/tui-tanks/internal/tilemap"
)

func TestProjectileStraightFlight(t *testing.T) {
	var p Projectile
	if !p.Launch(core.Pt(360, 360), core.Pt(360, 490), 5) {
		t.Fatal("Launch() should succeed")
	}
	for range 26 {
		p.Advance()
	}
	if p.Position() != core.Pt(360, 490) {
		t.Errorf("after 26 steps position = %v, expected (360, 490)", p.Position())
	}
	if p.Origin() != core.Pt(360, 360) || p.Target() != core.Pt(360, 490) {
		t.Errorf("origin/target changed: %v -> %v", p.Origin(), p.Target())
	}
}

func TestProjectileLinearInTicks(t *testing.T) {
	tests := []struct {
		name   string
		target core.Point
	}{
		{"axis", core.Pt(0, 100)},
		{"3-4-5", core.Pt(30, 40)},
		{"shallow", core.Pt(100, 30)},
		{"up left", core.Pt(-70, -20)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var p Projectile
			origin := core.Pt(0, 0)
			p.Launch(origin, tc.target, 5)
			dx, dy := p.Step().Trunc()
			for k := 1; k <= 20; k++ {
				p.Advance()
				if want := origin.Translate(k*dx, k*dy); p.Position() != want {
					t.Fatalf("step %d: position %v, expected %v", k, p.Position(), want)
				}
			}
		})
	}
}

func TestProjectileDegenerateLaunch(t *testing.T) {
	var p Projectile
	if p.Launch(core.Pt(5, 5), core.Pt(5, 5), 5) {
		t.Error("Launch() toward its own origin should fail")
	}
	if p.Active() {
		t.Error("projectile should stay inactive")
	}
}

func TestProjectileLaunchRefusesStalledStep(t *testing.T) {
	tests := []struct {
		name   string
		target core.Point
		speed  float64
		want   bool
	}{
		{"diagonal at speed 1", core.Pt(-130, -130), 1, false},
		{"shallow at speed 1", core.Pt(100, 30), 1, false},
		{"shallow at speed 2", core.Pt(100, 30), 2, true},
		{"axis at speed 1", core.Pt(0, 50), 1, true},
		{"diagonal at speed 1.5", core.Pt(-130, -130), 1.5, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var p Projectile
			if got := p.Launch(core.Pt(0, 0), tc.target, tc.speed); got != tc.want {
				t.Fatalf("Launch() = %v, expected %v", got, tc.want)
			}
			if p.Active() != tc.want {
				t.Fatalf("Active() = %v, expected %v", p.Active(), tc.want)
			}
			if !tc.want {
				return
			}
			p.Advance()
			if p.Position() == core.Pt(0, 0) {
				t.Error("launched projectile did not move")
			}
		})
	}
}

func TestSlowDiagonalShotDoesNotJamTank(t *testing.T) {
	params := testParams()
	params.MissileSpeed = 1
	s := NewSimulation(tilemap.Empty(13, 65), params,
		spawnAt(360, 360, core.Stationary),
		[]Spawn{spawnAt(490, 490, core.Stationary)}, stayPut)

	// Every shot at the player is a 45 degree diagonal that cannot move at
	// speed 1, so none may be left hanging in the air.
	for range 200 {
		s.Advance()
		if p := s.Enemies()[0].Projectile(); p.Active() {
			t.Fatalf("tick %d: enemy projectile active at %v with step %v", s.Tick(), p.Position(), p.Step())
		}
	}
	if s.Player().Lives() != 5 {
		t.Errorf("Lives() = %d, expected 5", s.Player().Lives())
	}

	// An axis-aligned shot from the same tank still launches.
	enemy := s.Enemies()[0]
	if !enemy.Fire(enemy.BarrelTip().Translate(0, 100)) {
		t.Error("enemy should be able to fire along an axis")
	}
}

func TestProjectileDeactivate(t *testing.T) {
	var p Projectile
	p.Launch(core.Pt(0, 0), core.Pt(10, 0), 5)
	p.Deactivate()
	p.Deactivate()
	if p.Active() {
		t.Error("projectile should be inactive")
	}

	pos := p.Position()
	p.Advance()
	if p.Position() != pos {
		t.Error("inactive projectile should not move")
	}
}
