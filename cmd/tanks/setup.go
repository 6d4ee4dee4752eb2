package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tanks/internal/config"
	"github.com/vovakirdan/tui-tanks/internal/tilemap"
)

// newLogger builds the process logger. Logs go to --log-file when set,
// otherwise to fallback. The returned closer must be called on exit.
func newLogger(fallback io.Writer) (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	out, closer := fallback, func() error { return nil }
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out, closer = f, f.Close
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "tanks",
		Level:           level,
	})
	return logger, closer, nil
}

// loadConfig resolves the config and applies the global flag overrides.
func loadConfig() (config.TanksConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.TanksConfig{}, err
	}
	if flagMap != "" {
		cfg.Arena.Map = flagMap
	}
	if flagTickMS > 0 {
		cfg.Loop.TickMS = flagTickMS
	}
	return cfg, nil
}

// loadArena reads the configured map, or the built-in arena.
func loadArena(cfg config.TanksConfig, logger *log.Logger) (*tilemap.Grid, error) {
	grid, err := tilemap.LoadFile(cfg.Arena.Map, cfg.Arena.GridSize, cfg.Arena.TileSize)
	if err != nil {
		return nil, err
	}
	src := cfg.Arena.Map
	if src == "" {
		src = "builtin"
	}
	logger.Debug("map loaded", "path", src, "walls", len(grid.Obstacles()))
	return grid, nil
}
