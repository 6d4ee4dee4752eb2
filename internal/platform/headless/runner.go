// Package headless plays tank matches without a screen, with the autopilot
// at the player's controls.
package headless

import (
	"context"
	"fmt"
	"math/rand"
	"runtime"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/tui-tanks/internal/config"
	"github.com/vovakirdan/tui-tanks/internal/core"
	"github.com/vovakirdan/tui-tanks/internal/games/tanks"
	"github.com/vovakirdan/tui-tanks/internal/tilemap"
)

// DefaultMaxTicks bounds a match that never ends.
const DefaultMaxTicks = 20000

// Options configures a batch.
type Options struct {
	Difficulty config.Difficulty
	Matches    int
	Seed       int64 // match i uses Seed+i
	MaxTicks   int
	Workers    int // 0 means GOMAXPROCS
	Logger     *log.Logger
}

// Result is the outcome of one match.
type Result struct {
	Seed  int64
	Ticks uint64
	Won   bool
	Lost  bool
	Kills int
	Score int
	Lives int
}

// TimedOut reports whether the match hit the tick cap.
func (r Result) TimedOut() bool {
	return !r.Won && !r.Lost
}

// Summary aggregates a batch.
type Summary struct {
	Matches  int
	Wins     int
	Losses   int
	TimedOut int
	Kills    int
	Ticks    uint64
}

// Summarize totals results.
func Summarize(results []Result) Summary {
	s := Summary{Matches: len(results)}
	for _, r := range results {
		switch {
		case r.Won:
			s.Wins++
		case r.Lost:
			s.Losses++
		default:
			s.TimedOut++
		}
		s.Kills += r.Kills
		s.Ticks += r.Ticks
	}
	return s
}

// Run plays opts.Matches matches concurrently. Results are ordered by match index.
func Run(ctx context.Context, cfg config.TanksConfig, grid *tilemap.Grid, opts Options) ([]Result, error) {
	if opts.Matches <= 0 {
		return nil, fmt.Errorf("headless: match count must be positive, got %d", opts.Matches)
	}
	if err := opts.Difficulty.Validate(); err != nil {
		return nil, err
	}
	if opts.MaxTicks <= 0 {
		opts.MaxTicks = DefaultMaxTicks
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.GOMAXPROCS(0)
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	results := make([]Result, opts.Matches)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)

	for i := range opts.Matches {
		seed := opts.Seed + int64(i)
		g.Go(func() error {
			res, err := Play(ctx, cfg, grid, opts.Difficulty, seed, opts.MaxTicks)
			if err != nil {
				return err
			}
			results[i] = res
			opts.Logger.Debug("match finished",
				"seed", res.Seed, "ticks", res.Ticks, "won", res.Won, "lost", res.Lost, "kills", res.Kills)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Play runs a single autopilot match to its end or to maxTicks.
func Play(ctx context.Context, cfg config.TanksConfig, grid *tilemap.Grid, d config.Difficulty, seed int64, maxTicks int) (Result, error) {
	game, err := tanks.New(cfg, grid, d)
	if err != nil {
		return Result{}, err
	}
	game.Reset(core.RuntimeConfig{Seed: seed, TickRate: 1000 / max(cfg.Loop.TickMS, 1)})

	pilot := tanks.NewAutopilot(rand.New(rand.NewSource(^seed)))
	for tick := 0; tick < maxTicks; tick++ {
		if tick%256 == 0 {
			if err := ctx.Err(); err != nil {
				return Result{}, err
			}
		}
		snap := game.Snapshot()
		if snap.Terminal() {
			break
		}
		game.Step(pilot.Frame(snap))
	}

	snap := game.Snapshot()
	return Result{
		Seed:  seed,
		Ticks: snap.Tick,
		Won:   snap.Win,
		Lost:  snap.GameOver,
		Kills: snap.Kills,
		Score: snap.Score,
		Lives: snap.Player.Lives,
	}, nil
}
