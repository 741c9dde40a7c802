package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/duck-stack/internal/core"
	"github.com/vovakirdan/duck-stack/internal/games/duckstack"
)

var (
	flagTicks  int
	flagSpread float64
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless game with the autoplayer",
	Long: `Run the simulation without a terminal UI. The autoplayer drops every
duck over the stack top, offset by up to --spread design pixels. The same
seed, spread and tuning always produce the same run and the same final hash.

Examples:
  duckstack sim --seed test-001
  duckstack sim --seed test-001 --ticks 20000 --spread 30 -v`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 10000, "Maximum ticks to simulate")
	simCmd.Flags().Float64Var(&flagSpread, "spread", 15, "Autoplayer drop offset in design pixels")
}

func runSim(cmd *cobra.Command, _ []string) error {
	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	cfg.Seed = seed()

	game := duckstack.New()
	game.Reset(cfg)
	player := &duckstack.Autoplayer{Spread: flagSpread}

	logger.Info("simulation started", "seed", game.Seed(), "ticks", flagTicks, "spread", flagSpread)

	ticks := 0
	for ticks < flagTicks && game.Mode() != duckstack.ModeGameOver {
		result := game.Step(player.Next(game))
		ticks++
		for _, ev := range result.Events {
			logSimEvent(ev)
		}
	}

	snap := game.Snapshot()
	logger.Info("simulation finished",
		"ticks", ticks,
		"mode", snap.Mode,
		"cause", snap.Cause,
		"score", snap.Score,
		"level", snap.Level,
		"stack", len(snap.Stack),
	)
	fmt.Fprintf(cmd.OutOrStdout(), "%016x\n", snap.Hash())
	return nil
}

func logSimEvent(ev core.Event) {
	switch ev.Kind {
	case core.EventLanded:
		logger.Debug("landed", "tick", ev.Tick, "perfect", ev.Perfect)
	case core.EventMerged:
		logger.Debug("merged", "tick", ev.Tick, "base", ev.Level)
	case core.EventLevelUp:
		logger.Info("level up", "tick", ev.Tick, "level", ev.Level, "name", ev.Name)
	case core.EventGameOver:
		logger.Warn("game over", "tick", ev.Tick, "cause", ev.Cause, "score", ev.Score)
	}
}
