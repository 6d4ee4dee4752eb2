// tanks is a top-down tank arena for the terminal and the desktop.
//
// Usage:
//
//	tanks play               - Play in the terminal
//	tanks window             - Play in a desktop window
//	tanks simulate           - Run autopilot matches and report results
//	tanks map [path]         - Validate and print an arena map
//
// Global flags:
//
//	--config <path>     - Config YAML (default: search path, then built-in)
//	--map <path>        - Arena map file (default: built-in arena)
//	--seed <value>      - RNG seed for reproducible matches
//	--tick-ms <ms>      - Simulation period override
//	--log-level <lvl>   - debug, info, warn, error
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagMap      string
	flagSeed     int64
	flagTickMS   int
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tanks",
	Short: "Tanks - a top-down tank arena",
	Long: `Tanks puts your tank in a walled arena against one to three AI tanks.
Destroy every enemy before they take all five of your lives.

Available commands:
  play      - Play in the terminal
  window    - Play in a desktop window
  simulate  - Run autopilot matches
  map       - Validate and print an arena map

Examples:
  tanks play --difficulty 2
  tanks window --seed 42
  tanks simulate --matches 100 --difficulty 3
  tanks map ./arenas/maze.txt`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a tanks config YAML")
	rootCmd.PersistentFlags().StringVar(&flagMap, "map", "", "Path to an arena map file (overrides arena.map)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().IntVar(&flagTickMS, "tick-ms", 0, "Simulation period in milliseconds (0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(mapCmd)
}
