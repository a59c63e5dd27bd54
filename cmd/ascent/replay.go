package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/haneulkim/ascent/internal/application/replay"
	"github.com/haneulkim/ascent/internal/application/sim"
	"github.com/haneulkim/ascent/internal/infrastructure/config"
)

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Play back a recorded run headlessly",
	Long: `Replay a recorded run through the simulation without a window and
print the final score. The same recording always produces the same result.

Examples:
  ascent replay run.json
  ascent replay run.json --config ./configs`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func runReplay(cmd *cobra.Command, args []string) {
	data, err := replay.Load(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading replay: %v\n", err)
		os.Exit(1)
	}

	cfg, err := loadConfigs()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	store := config.NewStore(*cfg.Physics)
	simulation := sim.New(store, cfg.Stage)
	replayer := replay.NewReplayer(*data)

	for {
		input, ok := replayer.Next()
		if !ok {
			break
		}
		simulation.Step(input)
	}

	snap := simulation.Aggregator.Snapshot()
	fmt.Printf("Replay: %s (%d frames, stage %q)\n", args[0], replayer.TotalFrames(), data.Stage)
	fmt.Printf("  Total score : %d\n", snap.Total)
	fmt.Printf("  Height score: %d\n", snap.HeightScore)
	fmt.Printf("  Banked      : %d\n", snap.Banked)
	fmt.Printf("  Best height : %.0f\n", snap.BestHeight)
	fmt.Printf("  Best combo  : %d\n", snap.BestCombo)
}
