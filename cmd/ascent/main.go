// ascent is an endless vertical platformer about momentum.
//
// Usage:
//
//	ascent play                - Start a run
//	ascent replay <file>       - Play back a recorded run headlessly
//	ascent scores              - Show the best runs
//
// Global flags:
//
//	--config <dir>  - Load configs from a directory instead of the embedded set
//	--db <path>     - Set run database path (default: ~/.ascent/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfigDir string
	flagDBPath    string

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "ascent",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ascent",
	Short: "Ascent - an endless vertical platformer about momentum",
	Long: `Ascent is an endless vertical platformer. Run to build speed, jump to
convert it into height, and ride wall bounces into scoring chains.

Available commands:
  play     - Start a run
  replay   - Play back a recorded run headlessly and print the result
  scores   - Show the best runs

Examples:
  ascent play
  ascent play --record run.json
  ascent replay run.json
  ascent scores --limit 5`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config", "", "Config directory (default: embedded configs)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.ascent/runs.db", "Path to run database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(scoresCmd)
}
