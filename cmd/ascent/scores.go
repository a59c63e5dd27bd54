package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/haneulkim/ascent/internal/infrastructure/storage"
)

var flagLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best runs",
	Long: `Display the top runs from the local run database.

Examples:
  ascent scores
  ascent scores --limit 5`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	runs, err := store.TopRuns(flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Best Runs")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'ascent play' to set the first score!")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-8s  %-8s  %-6s  %s\n", "Rank", "Total", "Banked", "Height", "Combo", "Date")
	fmt.Printf("  %-4s  %-8s  %-8s  %-8s  %-6s  %s\n", "----", "-----", "------", "------", "-----", "----")
	for i, run := range runs {
		fmt.Printf("  %-4d  %-8d  %-8d  %-8.0f  %-6d  %s\n",
			i+1, run.Total, run.Banked, run.Height, run.BestCombo,
			run.CreatedAt.Format("2006-01-02 15:04"))
	}
}
