package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tanks/internal/tilemap"
)

var mapCmd = &cobra.Command{
	Use:   "map [path]",
	Short: "Validate and print an arena map",
	Long: `Load an arena map, report any problem with its line number, and print
it with '#' for walls and '.' for open tiles.

Without a path the configured map (or the built-in arena) is shown.

Examples:
  tanks map
  tanks map ./arenas/maze.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMap,
}

func runMap(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if len(args) == 1 {
		cfg.Arena.Map = args[0]
	}

	grid, err := loadArena(cfg, logger)
	if err != nil {
		return err
	}
	printMap(cmd, grid)
	return nil
}

func printMap(cmd *cobra.Command, grid *tilemap.Grid) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, grid.String())
	fmt.Fprintf(out, "%dx%d tiles of %dpx, %d walls\n",
		grid.Size(), grid.Size(), grid.TileSize(), len(grid.Obstacles()))
}
