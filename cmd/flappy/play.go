package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

var flagTick time.Duration

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start the game in the current terminal.

Controls:
  Space/Up   - Start the round, then flap
  R/Enter    - Reset after game over
  Ctrl+S     - Save a screenshot to ~/.flappy/screenshots
  Q/Ctrl+C   - Quit

Examples:
  flappy play
  flappy play --seed 42
  flappy play --tick 16ms
  flappy play --config ./my-flappy.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().DurationVar(&flagTick, "tick", 0, "Tick interval (0 = from config)")
}

// loadConfig loads the game config and applies command-line overrides.
func loadConfig(tick time.Duration) (config.FlappyConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.FlappyConfig{}, err
	}
	if tick > 0 {
		cfg.Timing.TickInterval = tick
	}
	return cfg, nil
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig(flagTick)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	store := openStore()
	var history tui.HistoryStore
	if store != nil {
		defer store.Close()
		history = store
	}

	sim, err := newSimulation(cfg, store)
	if err != nil {
		return err
	}

	if err := tui.Run(sim, history, tui.ModelConfig{
		Width:  width,
		Height: height,
		Logger: logger,
	}); err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	snap := sim.Snapshot()
	logger.Info("bye", "best", snap.Best)
	return nil
}
