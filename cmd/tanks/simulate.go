package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tanks/internal/config"
	"github.com/vovakirdan/tui-tanks/internal/platform/headless"
)

var (
	flagMatches  int
	flagMaxTicks int
	flagWorkers  int
	flagSimLevel string
	flagVerbose  bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run autopilot matches and report results",
	Long: `Play matches without a screen. The player tank is driven by an
autopilot that wanders, aims at the nearest enemy and fires whenever it can.

Match i uses seed --seed + i, so a batch is reproducible.

Examples:
  tanks simulate
  tanks simulate --matches 200 --difficulty 3 --seed 1
  tanks simulate --matches 10 --verbose`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagMatches, "matches", 20, "Number of matches")
	simulateCmd.Flags().IntVar(&flagMaxTicks, "max-ticks", headless.DefaultMaxTicks, "Tick cap per match")
	simulateCmd.Flags().IntVar(&flagWorkers, "workers", 0, "Parallel matches (0 = GOMAXPROCS)")
	simulateCmd.Flags().StringVar(&flagSimLevel, "difficulty", "1", "Difficulty: 1-3 or easy, normal, hard")
	simulateCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Print every match")
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	difficulty, err := config.ParseDifficulty(flagSimLevel)
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	grid, err := loadArena(cfg, logger)
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	start := time.Now()
	results, err := headless.Run(cmd.Context(), cfg, grid, headless.Options{
		Difficulty: difficulty,
		Matches:    flagMatches,
		Seed:       seed,
		MaxTicks:   flagMaxTicks,
		Workers:    flagWorkers,
		Logger:     logger,
	})
	if err != nil {
		return err
	}
	sum := headless.Summarize(results)
	logger.Info("batch finished", "matches", sum.Matches, "elapsed", time.Since(start).Round(time.Millisecond))

	out := cmd.OutOrStdout()
	if flagVerbose {
		tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "SEED\tTICKS\tRESULT\tKILLS\tLIVES\tSCORE")
		for _, r := range results {
			fmt.Fprintf(tw, "%d\t%d\t%s\t%d\t%d\t%d\n", r.Seed, r.Ticks, outcome(r), r.Kills, r.Lives, r.Score)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		fmt.Fprintln(out)
	}

	fmt.Fprintf(out, "Difficulty: %s\n", difficulty)
	fmt.Fprintf(out, "Matches:    %d (seeds %d..%d)\n", sum.Matches, seed, seed+int64(sum.Matches)-1)
	fmt.Fprintf(out, "Wins:       %d\n", sum.Wins)
	fmt.Fprintf(out, "Losses:     %d\n", sum.Losses)
	fmt.Fprintf(out, "Timed out:  %d\n", sum.TimedOut)
	fmt.Fprintf(out, "Kills:      %d\n", sum.Kills)
	if sum.Matches > 0 {
		fmt.Fprintf(out, "Avg ticks:  %d\n", sum.Ticks/uint64(sum.Matches))
	}
	return nil
}

func outcome(r headless.Result) string {
	switch {
	case r.Won:
		return "won"
	case r.Lost:
		return "lost"
	default:
		return "timeout"
	}
}
