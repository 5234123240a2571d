package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/boulder-tui/boulder/internal/games/boulder"
	"github.com/boulder-tui/boulder/internal/storage"
)

var flagClearScores bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top 10 runs with the level each one reached.

Examples:
  boulder scores
  boulder scores --db ./scores.db
  boulder scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete all recorded scores")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagClearScores {
		if err := store.ClearScores(boulder.GameID); err != nil {
			return fmt.Errorf("clearing scores: %w", err)
		}
		logger.Info("scores cleared", "db", flagDBPath)
		fmt.Println("Scores cleared.")
		return nil
	}

	scores, err := store.TopScores(boulder.GameID, 10)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", boulder.Title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'boulder play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %-5s  %s\n", "Rank", "Score", "Level", "Date")
	fmt.Printf("  %-4s  %-10s  %-5s  %s\n", "----", "-----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-5s  %s\n", i+1, entry.Score, fmt.Sprintf("%02d", entry.Level+1), dateStr)
	}

	fmt.Println()
	if stats, err := store.GetGameStats(boulder.GameID); err == nil {
		fmt.Printf("Best: %d  |  Runs: %d  |  Average: %.0f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	}
	return nil
}
