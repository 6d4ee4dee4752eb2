// Package config provides YAML-based configuration loading and the
// difficulty levels for the tank arena.
package config

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/tui-tanks/internal/core"
)

// TanksConfig contains all tunable parameters of a match.
type TanksConfig struct {
	Arena   ArenaConfig   `yaml:"arena"`
	Tank    TankConfig    `yaml:"tank"`
	Missile MissileConfig `yaml:"missile"`
	Loop    LoopConfig    `yaml:"loop"`
	Input   InputConfig   `yaml:"input"`
	Player  SpawnConfig   `yaml:"player"`
	Enemies EnemiesConfig `yaml:"enemies"`
}

// ArenaConfig defines the obstacle grid.
type ArenaConfig struct {
	TileSize int    `yaml:"tile_size"`
	GridSize int    `yaml:"grid_size"`
	Map      string `yaml:"map"`
}

// TankConfig defines tank geometry and durability.
type TankConfig struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Step   int     `yaml:"step"`
	Lives  int     `yaml:"lives"`
	Barrel float64 `yaml:"barrel"`
}

// MissileConfig defines projectile flight.
type MissileConfig struct {
	Speed float64 `yaml:"speed"`
}

// LoopConfig defines the fixed simulation period.
type LoopConfig struct {
	TickMS int `yaml:"tick_ms"`
}

// InputConfig defines front-end input tuning.
type InputConfig struct {
	KeyHoldMS int `yaml:"key_hold_ms"`
}

// SpawnConfig places one tank.
type SpawnConfig struct {
	X         int    `yaml:"x"`
	Y         int    `yaml:"y"`
	Direction string `yaml:"direction"`
	Color     string `yaml:"color,omitempty"`
}

// EnemiesConfig lists enemy spawn points in the order they are used.
type EnemiesConfig struct {
	Color  string        `yaml:"color"`
	Spawns []SpawnConfig `yaml:"spawns"`
}

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// TickInterval returns the loop period.
func (c TanksConfig) TickInterval() time.Duration {
	return time.Duration(c.Loop.TickMS) * time.Millisecond
}

// KeyHold returns how long a terminal key press is treated as held.
func (c TanksConfig) KeyHold() time.Duration {
	return time.Duration(c.Input.KeyHoldMS) * time.Millisecond
}

// Center returns the spawn position.
func (s SpawnConfig) Center() core.Point {
	return core.Pt(s.X, s.Y)
}

// Heading parses the spawn direction.
func (s SpawnConfig) Heading() (core.Direction, error) {
	return core.ParseDirection(s.Direction)
}

// EnemySpawns returns the spawns used at difficulty d.
func (c TanksConfig) EnemySpawns(d Difficulty) []SpawnConfig {
	n := d.EnemyCount()
	if n > len(c.Enemies.Spawns) {
		n = len(c.Enemies.Spawns)
	}
	return c.Enemies.Spawns[:n]
}

// Validate checks that the config describes a playable arena.
func (c TanksConfig) Validate() error {
	switch {
	case c.Arena.TileSize <= 0 || c.Arena.GridSize <= 0:
		return fmt.Errorf("%w: arena tile_size and grid_size must be positive", ErrInvalidConfig)
	case c.Tank.Width <= 0 || c.Tank.Height <= 0:
		return fmt.Errorf("%w: tank width and height must be positive", ErrInvalidConfig)
	case c.Tank.Step < 0:
		return fmt.Errorf("%w: tank step must not be negative", ErrInvalidConfig)
	case c.Tank.Lives <= 0:
		return fmt.Errorf("%w: tank lives must be positive", ErrInvalidConfig)
	case c.Tank.Barrel < 0:
		return fmt.Errorf("%w: tank barrel must not be negative", ErrInvalidConfig)
	case c.Missile.Speed <= math.Sqrt2:
		// Slower shots truncate to a zero step on diagonals.
		return fmt.Errorf("%w: missile speed must be greater than %.3f", ErrInvalidConfig, math.Sqrt2)
	case c.Loop.TickMS <= 0:
		return fmt.Errorf("%w: loop tick_ms must be positive", ErrInvalidConfig)
	case c.Input.KeyHoldMS < 0:
		return fmt.Errorf("%w: input key_hold_ms must not be negative", ErrInvalidConfig)
	case len(c.Enemies.Spawns) < int(MaxDifficulty):
		return fmt.Errorf("%w: need %d enemy spawns, got %d", ErrInvalidConfig, MaxDifficulty, len(c.Enemies.Spawns))
	}

	if _, err := c.Player.Heading(); err != nil {
		return fmt.Errorf("%w: player: %v", ErrInvalidConfig, err)
	}
	for _, name := range []string{c.Player.Color, c.Enemies.Color} {
		if _, ok := core.ParseColor(name); !ok {
			return fmt.Errorf("%w: unknown color %q", ErrInvalidConfig, name)
		}
	}
	for i, s := range c.Enemies.Spawns {
		if _, err := s.Heading(); err != nil {
			return fmt.Errorf("%w: enemy spawn %d: %v", ErrInvalidConfig, i, err)
		}
		if _, ok := core.ParseColor(s.Color); !ok {
			return fmt.Errorf("%w: enemy spawn %d: unknown color %q", ErrInvalidConfig, i, s.Color)
		}
	}
	return nil
}
