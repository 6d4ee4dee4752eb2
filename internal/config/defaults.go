package config

import (
	_ "embed"
)

//go:embed defaults/tanks.yaml
var defaultTanksYAML []byte

// DefaultTanksConfig returns the built-in configuration.
func DefaultTanksConfig() TanksConfig {
	return TanksConfig{
		Arena:   ArenaConfig{TileSize: 65, GridSize: 13},
		Tank:    TankConfig{Width: 13, Height: 13, Step: 2, Lives: 5, Barrel: 6.5},
		Missile: MissileConfig{Speed: 5},
		Loop:    LoopConfig{TickMS: 50},
		Input:   InputConfig{KeyHoldMS: 300},
		Player:  SpawnConfig{X: 360, Y: 360, Direction: "stationary", Color: "red"},
		Enemies: EnemiesConfig{
			Color: "gray",
			Spawns: []SpawnConfig{
				{X: 360, Y: 490, Direction: "E"},
				{X: 490, Y: 490, Direction: "W"},
				{X: 490, Y: 360, Direction: "W"},
			},
		},
	}
}
