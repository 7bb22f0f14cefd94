// flappy is a one-button flappy game for the terminal.
//
// Usage:
//
//	flappy play      - Play in the current terminal
//	flappy scores    - Show the round history
//	flappy serve     - Start SSH server for remote play
//	flappy sim       - Run a headless simulation
//
// Global flags:
//
//	--config <path> - Game config YAML (default: search ~/.flappy/configs, ./configs)
//	--seed <value>  - Set RNG seed for reproducible obstacle gaps
//	--db <path>     - Set database path (default: ~/.flappy/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/game"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	// Global flags
	flagConfig string
	flagSeed   int64
	flagDBPath string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "flappy",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy - a one-button game in your terminal",
	Long: `Flappy is a terminal game: tap to fly up, gravity pulls you down,
and every obstacle you clear scores a point. The best score is kept
across runs.

Available commands:
  play     - Play in this terminal
  scores   - View the round history
  serve    - Start SSH server for remote play
  sim      - Run a headless simulation

Examples:
  flappy play
  flappy play --seed 42 --tick 16ms
  flappy scores --interactive
  flappy serve --ssh :2222
  flappy sim --duration 1m`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.flappy/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
}

// openStore opens the scores database. A failure is logged and the game
// continues with the best score in memory only.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores stay in memory", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// newSimulation builds a simulation from the loaded config and global flags.
// store may be nil.
func newSimulation(cfg config.FlappyConfig, store *storage.Store) (*game.Simulation, error) {
	opts := []game.Option{game.WithLogger(logger)}
	if flagSeed != 0 {
		opts = append(opts, game.WithSeed(flagSeed))
	}
	if store != nil {
		opts = append(opts, game.WithStore(store))
	}
	return game.New(cfg, opts...)
}
