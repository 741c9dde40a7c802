package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/duck-stack/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top 10 high scores.

Examples:
  duckstack scores
  duckstack scores --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Println("High Scores - Duck Stack")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'duckstack play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-5s  %-24s  %s\n", "Rank", "Score", "Level", "Seed", "Played")
	fmt.Printf("  %-4s  %-8s  %-5s  %-24s  %s\n", "----", "-----", "-----", "----", "------")

	for i, entry := range scores {
		fmt.Printf("  %-4d  %-8s  %-5d  %-24s  %s\n",
			i+1, humanize.Comma(int64(entry.Score)), entry.Level, entry.Seed, humanize.Time(entry.CreatedAt))
	}

	stats, err := store.GetGameStats(gameID)
	if err == nil {
		fmt.Println()
		fmt.Printf("Best: %s over %s games, best level %d\n",
			humanize.Comma(int64(stats.HighScore)), humanize.Comma(int64(stats.GamesCount)), stats.BestLevel)
	}
}
