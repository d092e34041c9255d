package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	flagLimit       int
	flagInteractive bool
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show high scores",
	Long: `Display the top scores for a rules variant.
The variant defaults to the configured board, e.g. 4x4-2048.

Examples:
  t2048 scores
  t2048 scores 3x3-256
  t2048 scores --limit 25
  t2048 scores -i           # Browse in a table
  t2048 scores --clear      # Delete the variant's history`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagLimit, "limit", "n", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in a table")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores for the variant")
}

func runScores(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	variant := cfg.Rules().Variant()
	if len(args) == 1 {
		variant = args[0]
	}

	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(variant); err != nil {
			return err
		}
		fmt.Printf("Cleared scores for %s\n", variant)
		return nil
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, variant, width, height)
	}

	scores, err := store.TopScores(variant, flagLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", variant)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		if variants, vErr := store.Variants(); vErr == nil && len(variants) > 0 {
			fmt.Printf("Variants with scores: %v\n", variants)
		}
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %-3s  %s\n", "Rank", "Score", "Tile", "Moves", "Won", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %-3s  %s\n", "----", "-----", "----", "-----", "---", "----")

	for i, entry := range scores {
		won := ""
		if entry.Won {
			won = "yes"
		}
		fmt.Printf("  %-4d  %-8d  %-6d  %-6d  %-3s  %s\n",
			i+1, entry.Score, entry.MaxTile, entry.Moves, won, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	stats, err := store.GetStats(variant)
	if err == nil {
		fmt.Printf("Best: %d  Games: %d  Wins: %d  Average: %.0f  Best tile: %d\n",
			stats.HighScore, stats.GamesCount, stats.Wins, stats.AvgScore, stats.BestTile)
	}
	return nil
}
