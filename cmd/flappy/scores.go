package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagLimit       int
	flagInteractive bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the round history",
	Long: `Display the top rounds and the best score.

Examples:
  flappy scores
  flappy scores --limit 25
  flappy scores --interactive`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of rounds to show")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in a table")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, flagLimit, width, height)
	}

	rounds, err := store.TopScores(flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	key := config.DefaultBestScoreKey
	if cfg, cfgErr := config.Load(flagConfig); cfgErr == nil {
		key = cfg.Persistence.Key
	}
	best, err := store.BestScore(key)
	if err != nil {
		return fmt.Errorf("retrieving best score: %w", err)
	}

	printScores(os.Stdout, rounds, best)
	if stats, statsErr := store.Stats(); statsErr == nil && stats.Rounds > 0 {
		fmt.Printf("Rounds: %d  Avg: %.1f\n", stats.Rounds, stats.AvgScore)
	}
	return nil
}

// printScores writes the history table followed by the stored best score.
// The best score is printed even without history, since headless runs
// only record the best.
func printScores(w io.Writer, rounds []storage.Round, best int) {
	fmt.Fprintln(w, "High Scores")
	fmt.Fprintln(w)

	if len(rounds) == 0 {
		fmt.Fprintln(w, "No rounds recorded yet.")
		fmt.Fprintln(w)
		if best == 0 {
			fmt.Fprintln(w, "Play 'flappy play' to set the first high score!")
			return
		}
	} else {
		fmt.Fprintf(w, "  %-4s  %-16s  %-6s  %-9s  %s\n", "Rank", "Player", "Score", "Hit", "Date")
		fmt.Fprintf(w, "  %-4s  %-16s  %-6s  %-9s  %s\n", "----", "------", "-----", "---", "----")
		for i, r := range rounds {
			fmt.Fprintf(w, "  %-4d  %-16s  %-6d  %-9s  %s\n",
				i+1, r.Player, r.Score, r.EndReason, r.CreatedAt.Format("2006-01-02 15:04"))
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Best: %d\n", best)
}
