package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/asteroids/internal/config"
	"github.com/vovakirdan/asteroids/internal/core"
	"github.com/vovakirdan/asteroids/internal/games/asteroids"
)

var (
	flagTicks    int
	flagRuns     int
	flagSeedStep int64
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run headless sessions with the autopilot",
	Long: `Run the simulation without any display. The autopilot turns toward the
nearest obstacle and fires; each run ends at game over or after --ticks.
Runs are reproducible: the same seed, tuning and tick count always print
the same report, including the final snapshot hash.

Scores are never saved.

Examples:
  asteroids simulate
  asteroids simulate --runs 10 --seed 42 --ticks 18000
  asteroids simulate --difficulty hard --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagTicks, "ticks", 9000, "Maximum ticks per run")
	simulateCmd.Flags().IntVar(&flagRuns, "runs", 3, "Number of runs")
	simulateCmd.Flags().Int64Var(&flagSeedStep, "seed-step", 1, "Seed increment between runs")
}

// runStats summarizes one headless run.
type runStats struct {
	run      int
	seed     int64
	ticks    int
	score    int
	level    int
	lives    int
	gameOver bool
	hash     uint64
	events   map[core.Event]int
}

func runSimulate(cmd *cobra.Command, args []string) {
	if flagTicks <= 0 || flagRuns <= 0 {
		fmt.Fprintln(os.Stderr, "Error: --ticks and --runs must be > 0")
		os.Exit(1)
	}

	a, err := newApp(setupOptions{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer a.Close()

	rt := runtimeConfig()
	fmt.Printf("=== Headless Asteroids Report ===\n")
	fmt.Printf("runs=%d ticks=%d seed_base=%d seed_step=%d tps=%d\n\n", flagRuns, flagTicks, rt.Seed, flagSeedStep, rt.TickRate)

	all := make([]runStats, 0, flagRuns)
	for i := 0; i < flagRuns; i++ {
		runRT := rt
		runRT.Seed = rt.Seed + int64(i)*flagSeedStep
		stats := simulateRun(a.cfg, runRT, flagTicks)
		stats.run = i + 1
		a.logger.Debug("run finished", "run", stats.run, "score", stats.score, "ticks", stats.ticks)
		all = append(all, stats)
		printRun(os.Stdout, stats)
	}
	printSummary(os.Stdout, all)
}

// simulateRun plays one session with the autopilot and no score storage.
func simulateRun(cfg config.AsteroidsConfig, rt core.RuntimeConfig, maxTicks int) runStats {
	g := asteroids.New(cfg, nil)
	g.Reset(rt)
	ap := asteroids.NewAutopilot()

	stats := runStats{seed: rt.Seed, events: make(map[core.Event]int)}
	frame := core.NewInputFrame()
	snap := g.Snapshot()
	for stats.ticks < maxTicks && !snap.GameOver() {
		frame.Clear()
		ap.Next(&snap, &frame)
		res := g.Step(frame)
		for _, e := range res.Events {
			stats.events[e]++
		}
		snap = g.Snapshot()
		stats.ticks++
	}

	stats.score = snap.Score
	stats.level = snap.Level + 1
	stats.lives = snap.Lives
	stats.gameOver = snap.GameOver()
	stats.hash = snap.Hash()
	return stats
}

func printRun(w io.Writer, s runStats) {
	fmt.Fprintf(w, "run %d seed=%d ticks=%d score=%d level=%d lives=%d game_over=%t hash=%016x\n",
		s.run, s.seed, s.ticks, s.score, s.level, s.lives, s.gameOver, s.hash)
	fmt.Fprintf(w, "  shots=%d hits=%d deaths=%d levels_cleared=%d\n",
		s.events[core.EventFire], s.events[core.EventObstacleHit],
		s.events[core.EventShipExploded], s.events[core.EventLevelCleared])
}

func printSummary(w io.Writer, all []runStats) {
	if len(all) == 0 {
		return
	}
	total, best, shots, hits := 0, all[0], 0, 0
	for _, s := range all {
		total += s.score
		if s.score > best.score {
			best = s
		}
		shots += s.events[core.EventFire]
		hits += s.events[core.EventObstacleHit]
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "=== Summary ===\n")
	fmt.Fprintf(w, "mean_score=%.1f best_score=%d (run %d, seed %d)\n",
		float64(total)/float64(len(all)), best.score, best.run, best.seed)
	if shots > 0 {
		fmt.Fprintf(w, "accuracy=%.1f%%\n", 100*float64(hits)/float64(shots))
	}
}
