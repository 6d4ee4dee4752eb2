package tanks

import (
	"testing"

	"github.com/vovakirdan/tui-tanks/internal/core"
	"github.com/vovakirdan/tui-tanks/internal/tilemap"
)

func TestNewTank(t *testing.T) {
	tk := NewTank(testParams(), spawnAt(360, 490, core.East))
	assertSynced(t, "spawn", tk)
	if tk.Lives() != 5 {
		t.Errorf("Lives() = %d, expected 5", tk.Lives())
	}
	if tk.BarrelTip() != core.Pt(366, 490) {
		t.Errorf("BarrelTip() = %v, expected (366, 490)", tk.BarrelTip())
	}

	still := NewTank(testParams(), spawnAt(360, 360, core.Stationary))
	if still.BarrelTip() != core.Pt(360, 354) {
		t.Errorf("stationary spawn barrel = %v, expected (360, 354)", still.BarrelTip())
	}
}

func TestSetAimPoint(t *testing.T) {
	tk := NewTank(testParams(), spawnAt(360, 360, core.Stationary))

	tests := []struct {
		name   string
		target core.Point
		want   core.Point
	}{
		{"down", core.Pt(360, 490), core.Pt(360, 366)},
		{"left", core.Pt(0, 360), core.Pt(354, 360)},
		{"diagonal", core.Pt(460, 460), core.Pt(364, 364)},
		{"own center keeps barrel", core.Pt(360, 360), core.Pt(364, 364)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tk.SetAimPoint(tc.target)
			if tk.BarrelTip() != tc.want {
				t.Errorf("BarrelTip() = %v, expected %v", tk.BarrelTip(), tc.want)
			}
		})
	}
}

func TestTickMovesAndKeepsBarrel(t *testing.T) {
	grid := tilemap.Empty(13, 65)
	tk := NewTank(testParams(), spawnAt(360, 360, core.Stationary))
	tk.SetAimPoint(core.Pt(360, 490))

	tk.SetDirection(core.SouthWest)
	tk.Tick(grid)

	if tk.Center() != core.Pt(358, 362) {
		t.Errorf("Center() = %v, expected (358, 362)", tk.Center())
	}
	assertSynced(t, "after tick", tk)
	if tk.BarrelTip() != core.Pt(358, 368) {
		t.Errorf("barrel should follow the center, got %v", tk.BarrelTip())
	}

	tk.SetDirection(core.Direction(9))
	if tk.Direction() != core.SouthWest {
		t.Errorf("invalid code should be ignored, direction = %v", tk.Direction())
	}
}

func TestTickBouncesOffWall(t *testing.T) {
	grid := wallGrid(t)
	tk := NewTank(testParams(), spawnAt(123, 97, core.East))

	tk.Tick(grid)

	if tk.Center() != core.Pt(121, 97) {
		t.Errorf("Center() = %v, expected reversed step to (121, 97)", tk.Center())
	}
	assertSynced(t, "after bounce", tk)
	if grid.Collides(tk.Bounds()) {
		t.Error("tank ended inside the wall")
	}
}

func TestTickBouncesOffArenaEdge(t *testing.T) {
	grid := tilemap.Empty(3, 65)
	tk := NewTank(testParams(), spawnAt(7, 100, core.West))

	tk.Tick(grid)

	if tk.Center() != core.Pt(9, 100) {
		t.Errorf("Center() = %v, expected (9, 100)", tk.Center())
	}
}

func TestTickHoldsWhenBothWaysBlocked(t *testing.T) {
	// A single 13px tile: the tank fits exactly, so any move collides.
	g, err := tilemap.New([][]tilemap.Tile{{tilemap.Open}}, 13)
	if err != nil {
		t.Fatal(err)
	}
	tk := NewTank(testParams(), spawnAt(6, 6, core.North))
	tk.Tick(g)
	if tk.Center() != core.Pt(6, 6) {
		t.Errorf("Center() = %v, expected the tank to hold at (6, 6)", tk.Center())
	}
}

func TestProjectileStopsAtWall(t *testing.T) {
	grid := wallGrid(t)
	tk := NewTank(testParams(), spawnAt(97, 97, core.East))
	tk.SetDirection(core.Stationary)

	if !tk.Fire(core.Pt(190, 97)) {
		t.Fatal("Fire() should launch")
	}
	if tk.Projectile().Position() != core.Pt(103, 97) {
		t.Fatalf("projectile should start at the barrel tip, got %v", tk.Projectile().Position())
	}
	if tk.Fire(core.Pt(0, 0)) {
		t.Error("Fire() while a projectile is in flight should be a no-op")
	}

	for range 5 {
		tk.Tick(grid)
	}
	if !tk.Projectile().Active() {
		t.Fatalf("projectile at %v should still fly", tk.Projectile().Position())
	}
	tk.Tick(grid)
	if tk.Projectile().Active() {
		t.Errorf("projectile at %v should stop inside the wall", tk.Projectile().Position())
	}
}

func TestMoveRandomDrawsEveryTick(t *testing.T) {
	grid := tilemap.Empty(13, 65)
	tk := NewTank(testParams(), spawnAt(360, 360, core.Stationary))

	tk.MoveRandom(fixedRand(6), grid) // Directions[6] is East
	if tk.Direction() != core.East || tk.Center() != core.Pt(362, 360) {
		t.Errorf("after East draw: %v at %v", tk.Direction(), tk.Center())
	}
	tk.MoveRandom(stayPut, grid)
	if tk.Direction() != core.Stationary || tk.Center() != core.Pt(362, 360) {
		t.Errorf("after stationary draw: %v at %v", tk.Direction(), tk.Center())
	}
}

func TestShootTowardTargetsCenter(t *testing.T) {
	shooter := NewTank(testParams(), spawnAt(360, 490, core.East))
	target := NewTank(testParams(), spawnAt(360, 360, core.Stationary))
	shooter.SetAimPoint(target.Center())

	if !shooter.ShootToward(target) {
		t.Fatal("ShootToward() should fire")
	}
	if got := shooter.Projectile().Target(); got != target.Center() {
		t.Errorf("projectile target = %v, expected %v", got, target.Center())
	}
	if shooter.ShootToward(target) {
		t.Error("second ShootToward() should not fire while in flight")
	}
}

func TestTestHit(t *testing.T) {
	tk := NewTank(testParams(), spawnAt(360, 360, core.Stationary)) // bounds 354..367

	tests := []struct {
		p    core.Point
		want bool
	}{
		{core.Pt(360, 360), true},
		{core.Pt(354, 354), true},
		{core.Pt(366, 366), true},
		{core.Pt(367, 360), false},
		{core.Pt(353, 360), false},
	}
	for _, tc := range tests {
		if got := tk.TestHit(tc.p); got != tc.want {
			t.Errorf("TestHit(%v) = %v, expected %v", tc.p, got, tc.want)
		}
	}
}

func TestReduceLivesFloorsAtZero(t *testing.T) {
	tk := NewTank(testParams(), spawnAt(360, 360, core.Stationary))
	prev := tk.Lives()
	for range 8 {
		tk.ReduceLives()
		if tk.Lives() > prev {
			t.Fatalf("lives increased from %d to %d", prev, tk.Lives())
		}
		prev = tk.Lives()
	}
	if tk.Lives() != 0 {
		t.Errorf("Lives() = %d, expected 0", tk.Lives())
	}
}
