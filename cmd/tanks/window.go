//go:build !nogui

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tanks/internal/core"
	"github.com/vovakirdan/tui-tanks/internal/games/tanks"
	"github.com/vovakirdan/tui-tanks/internal/platform/gui"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open the arena in a desktop window, one window pixel per arena pixel.

Controls:
  WASD/Arrows  - Move (hold two keys for diagonals)
  Mouse        - Aim the barrel
  Click/Space  - Fire
  R            - Restart (after the match ends)
  Q/Esc        - Quit

Examples:
  tanks window
  tanks window --difficulty hard --tick-ms 40`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	rootCmd.AddCommand(windowCmd)
	windowCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty: 1-3 or easy, normal, hard")
}

func runWindow(cmd *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	grid, err := loadArena(cfg, logger)
	if err != nil {
		return err
	}

	difficulty, ok, err := chooseDifficulty(cmd, false)
	if err != nil || !ok {
		return err
	}

	game, err := tanks.New(cfg, grid, difficulty)
	if err != nil {
		return err
	}

	logger.Info("window opened", "difficulty", int(difficulty), "tick", cfg.TickInterval())
	state, err := gui.Run(game, gui.Options{
		Runtime:  core.RuntimeConfig{TickRate: 1000 / cfg.Loop.TickMS, Seed: flagSeed},
		Interval: cfg.TickInterval(),
		Logger:   logger,
	})
	if err != nil {
		return err
	}

	printOutcome(cmd.OutOrStdout(), state)
	return nil
}
