package main

import (
	"context"
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/game"
)

var (
	flagDuration   time.Duration
	flagAutopilot  bool
	flagFast       bool
	flagFieldWidth float64
	flagSimTick    time.Duration
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless simulation",
	Long: `Run the game without a terminal UI. With --autopilot a bot taps
for you; without it the body just falls. The round result is logged and
a new best score is saved like in a normal game.

By default the simulation runs in real time on the configured tick. With
--fast it steps the same fixed tick as quickly as possible.

Examples:
  flappy sim --duration 30s
  flappy sim --fast --duration 10m --seed 7
  flappy sim --autopilot=false`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().DurationVar(&flagDuration, "duration", 30*time.Second, "Simulated time before stopping")
	simCmd.Flags().BoolVar(&flagAutopilot, "autopilot", true, "Let the autopilot tap")
	simCmd.Flags().BoolVar(&flagFast, "fast", false, "Step as fast as possible instead of real time")
	simCmd.Flags().Float64Var(&flagFieldWidth, "field-width", 800, "Play field width in field units")
	simCmd.Flags().DurationVar(&flagSimTick, "tick", 0, "Tick interval (0 = from config)")
}

func runSim(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(flagSimTick)
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	sim, err := newSimulation(cfg, store)
	if err != nil {
		return err
	}

	field := game.Field{Width: flagFieldWidth, Height: cfg.Field.Height}
	pilot := game.NewAutopilot(cfg.Physics)
	onTick := func(snap game.Snapshot) {
		if flagAutopilot && pilot.Decide(snap) {
			sim.Tap()
		}
	}

	if err := sim.Play(); err != nil {
		return err
	}
	logger.Info("simulation started",
		"duration", flagDuration,
		"tick_rate", cfg.TickRate(),
		"autopilot", flagAutopilot,
		"fast", flagFast,
	)

	if flagFast {
		dt := cfg.Timing.TickInterval.Seconds()
		steps := int(flagDuration / cfg.Timing.TickInterval)
		for i := 0; i < steps && sim.Phase() == game.PhaseActive; i++ {
			onTick(sim.Step(dt, field))
		}
	} else {
		ctx, cancel := context.WithTimeout(cmd.Context(), flagDuration)
		defer cancel()

		// Stop early once the round is over
		err := game.NewTicker(cfg.Timing.TickInterval).Run(ctx, sim,
			func() game.Field { return field },
			func(snap game.Snapshot) {
				onTick(snap)
				if snap.Phase == game.PhaseStopped {
					cancel()
				}
			})
		if err != nil && !errors.Is(err, context.DeadlineExceeded) && !errors.Is(err, context.Canceled) {
			return err
		}
	}

	snap := sim.Snapshot()
	logger.Info("simulation finished",
		"phase", snap.Phase,
		"end", snap.End,
		"score", snap.Score,
		"best", snap.Best,
		"ticks", snap.Ticks,
	)
	return nil
}
