package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tanks/internal/config"
	"github.com/vovakirdan/tui-tanks/internal/core"
	"github.com/vovakirdan/tui-tanks/internal/games/tanks"
	"github.com/vovakirdan/tui-tanks/internal/platform/tui"
)

var flagDifficulty string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a match in the terminal.

Controls:
  WASD/Arrows  - Move (hold two keys for diagonals)
  Mouse        - Aim the barrel
  Click/Space  - Fire
  R            - Restart (after the match ends)
  ?            - Toggle help
  Q/Esc        - Quit

Without --difficulty a picker is shown. When stdin is not a terminal the
difficulty is read as a number from stdin.

Examples:
  tanks play
  tanks play --difficulty 3
  tanks play --map ./arenas/maze.txt --seed 42`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty: 1-3 or easy, normal, hard")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	// The alternate screen owns the terminal; only log to a file.
	logger, closeLog, err := newLogger(io.Discard)
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

	difficulty, ok, err := chooseDifficulty(cmd, true)
	if err != nil || !ok {
		return err
	}

	game, err := tanks.New(cfg, grid, difficulty)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	logger.Info("match started", "difficulty", int(difficulty), "seed", flagSeed)
	state, err := tui.Run(game, tui.Options{
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: 1000 / cfg.Loop.TickMS,
			Seed:     flagSeed,
		},
		Interval: cfg.TickInterval(),
		KeyHold:  cfg.KeyHold(),
		Logger:   logger,
	})
	if err != nil {
		return fmt.Errorf("error running game: %w", err)
	}

	printOutcome(cmd.OutOrStdout(), state)
	return nil
}

// chooseDifficulty resolves --difficulty, falling back to the picker on a
// terminal (when menu is set) or to the line prompt otherwise. ok is false
// when the user backed out of the picker.
func chooseDifficulty(cmd *cobra.Command, menu bool) (d config.Difficulty, ok bool, err error) {
	if flagDifficulty != "" {
		d, err = config.ParseDifficulty(flagDifficulty)
		return d, err == nil, err
	}

	if menu && term.IsTerminal(int(os.Stdin.Fd())) {
		return tui.RunMenu(config.MinDifficulty)
	}

	d, err = promptDifficulty(cmd.InOrStdin(), cmd.OutOrStdout())
	return d, err == nil, err
}

func printOutcome(w io.Writer, state core.GameState) {
	switch {
	case state.Won:
		fmt.Fprintf(w, "You won! Score: %d\n", state.Score)
	case state.GameOver:
		fmt.Fprintf(w, "Game over. Score: %d\n", state.Score)
	default:
		fmt.Fprintf(w, "Match abandoned. Score: %d\n", state.Score)
	}
}
