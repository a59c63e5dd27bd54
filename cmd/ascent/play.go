package main

import (
	"fmt"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/haneulkim/ascent/internal/application/game"
	"github.com/haneulkim/ascent/internal/application/scene/playing"
	"github.com/haneulkim/ascent/internal/infrastructure/config"
	"github.com/haneulkim/ascent/internal/infrastructure/save"
	"github.com/haneulkim/ascent/internal/infrastructure/storage"
)

var flagRecord string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a run",
	Long: `Start a run up the tower.

Controls:
  A/D or arrows - Run
  Space/W       - Jump
  B             - Bank the current combo
  0-4           - Switch tuning preset (0 = base)
  Esc           - Pause
  R             - Restart

Examples:
  ascent play
  ascent play --record run.json
  ascent play --config ./configs`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagRecord, "record", "", "Record inputs to a replay file")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := loadConfigs()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Run persistence is best effort: the game still works without it.
	db, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run database", "err", err)
		db = nil
	}
	profile, err := save.Open("ascent")
	if err != nil {
		logger.Warn("could not open profile store", "err", err)
		profile = nil
	}

	store := config.NewStore(*cfg.Physics)
	scene := playing.New(store, cfg.Stage, cfg.Presets, playing.Options{
		DB:         db,
		Profile:    profile,
		Logger:     logger,
		RecordPath: flagRecord,
		Seed:       time.Now().UnixNano(),
		StageName:  cfg.Stage.Name,
	})

	display := cfg.Physics.Display
	g := game.New(scene, display.ScreenWidth, display.ScreenHeight, display.Framerate)

	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle("Ascent")
	ebiten.SetTPS(display.Framerate)

	runErr := ebiten.RunGame(g)

	scene.OnExit()
	if db != nil {
		db.Close()
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
