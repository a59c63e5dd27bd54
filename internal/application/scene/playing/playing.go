// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/haneulkim/ascent/internal/application/replay"
	"github.com/haneulkim/ascent/internal/application/scene"
	"github.com/haneulkim/ascent/internal/application/sim"
	"github.com/haneulkim/ascent/internal/application/state"
	"github.com/haneulkim/ascent/internal/application/system"
	"github.com/haneulkim/ascent/internal/infrastructure/config"
	"github.com/haneulkim/ascent/internal/infrastructure/save"
	"github.com/haneulkim/ascent/internal/infrastructure/storage"
)

// Colors for rendering
var (
	colorWall     = color.RGBA{80, 80, 100, 255}
	colorPlatform = color.RGBA{120, 140, 170, 255}
	colorFloor    = color.RGBA{90, 110, 90, 255}
	colorPlayer   = color.RGBA{100, 200, 100, 255}
	colorBG       = color.RGBA{26, 26, 46, 255}
)

// Playing is the main gameplay scene: the live simulation, camera, HUD and
// run persistence.
type Playing struct {
	store   *config.Store
	baseCfg config.Config
	presets []config.Preset
	preset  int // -1 = base tuning

	simulation *sim.Sim
	input      *system.InputReader
	state      state.GameState
	hud        *HUD

	screenW int
	screenH int
	camY    float64

	db      *storage.Store // nil when persistence is disabled
	profile *save.Manager  // nil when persistence is disabled
	logger  *log.Logger

	recorder   *replay.Recorder
	recordPath string
	replayer   *replay.Replayer
	runSaved   bool
}

// Options carries the optional collaborators of the scene.
type Options struct {
	DB         *storage.Store
	Profile    *save.Manager
	Logger     *log.Logger
	RecordPath string
	Replayer   *replay.Replayer
	Seed       int64
	StageName  string
}

// New creates a new Playing scene over a fresh simulation.
func New(store *config.Store, stageCfg *config.StageConfig, presets []config.Preset, opts Options) *Playing {
	cfg := store.Snapshot()

	p := &Playing{
		store:      store,
		baseCfg:    *cfg,
		presets:    presets,
		preset:     -1,
		simulation: sim.New(store, stageCfg),
		input:      system.NewInputReader(),
		state:      state.StatePlaying,
		hud:        NewHUD(),
		screenW:    cfg.Display.ScreenWidth,
		screenH:    cfg.Display.ScreenHeight,
		db:         opts.DB,
		profile:    opts.Profile,
		logger:     opts.Logger,
		recordPath: opts.RecordPath,
		replayer:   opts.Replayer,
	}

	if p.logger == nil {
		p.logger = log.Default()
	}
	if opts.RecordPath != "" {
		p.recorder = replay.NewRecorder(opts.Seed, opts.StageName)
		p.logger.Info("recording enabled", "path", opts.RecordPath, "seed", opts.Seed)
	}

	p.simulation.Bus.Subscribe(p.hud.HandleEvent)
	p.camY = p.simulation.Body.Y - float64(p.screenH)*0.6

	return p
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	switch p.state {
	case state.StatePlaying:
		p.updatePlaying(dt)
	case state.StatePaused:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			p.state = state.StatePlaying
		}
	case state.StateGameOver:
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			p.restart()
		}
	}
	return nil, nil
}

func (p *Playing) updatePlaying(dt float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		p.state = state.StatePaused
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		p.finishRun()
		p.restart()
		return
	}
	p.handlePresetKeys()

	var input system.InputState
	if p.replayer != nil {
		replayInput, ok := p.replayer.Next()
		if !ok {
			p.finishRun()
			p.state = state.StateGameOver
			return
		}
		input = replayInput
	} else {
		input = p.input.Read()
	}

	if p.recorder != nil {
		p.recorder.Record(input)
	}

	p.simulation.Step(input)

	p.updateCamera()
	p.hud.Update(dt)
}

// handlePresetKeys swaps tuning presets through the config store. The swap
// lands between ticks; the next Step reads the new snapshot whole.
func (p *Playing) handlePresetKeys() {
	if inpututil.IsKeyJustPressed(ebiten.Key0) {
		p.preset = -1
		p.store.Swap(p.baseCfg)
		p.logger.Info("tuning preset", "name", "base")
		return
	}
	keys := []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4}
	for i, key := range keys {
		if i >= len(p.presets) {
			return
		}
		if inpututil.IsKeyJustPressed(key) {
			p.preset = i
			p.store.Swap(p.presets[i].Apply(p.baseCfg))
			p.logger.Info("tuning preset", "name", p.presets[i].Name)
			return
		}
	}
}

func (p *Playing) updateCamera() {
	target := p.simulation.Body.Y - float64(p.screenH)*0.6
	p.camY += (target - p.camY) * 0.12
	maxCamY := p.simulation.Tower.FloorY + 48 - float64(p.screenH)
	if p.camY > maxCamY {
		p.camY = maxCamY
	}
}

// finishRun persists the run that just ended. Persistence failures are
// logged and swallowed; they must not take the game loop down.
func (p *Playing) finishRun() {
	if p.runSaved {
		return
	}
	p.runSaved = true

	snap := p.simulation.Aggregator.Snapshot()
	duration := int(p.simulation.Clock.Now() * 1000)

	if p.db != nil {
		_, err := p.db.SaveRun(storage.RunEntry{
			Height:     snap.BestHeight,
			Banked:     snap.Banked,
			Total:      snap.Total,
			BestCombo:  snap.BestCombo,
			DurationMS: duration,
		})
		if err != nil {
			p.logger.Error("failed to save run", "err", err)
		}
	}
	if p.profile != nil {
		if _, improved, err := p.profile.RecordRun(snap.BestHeight, snap.Total, snap.Banked); err != nil {
			p.logger.Error("failed to update profile", "err", err)
		} else if improved {
			p.logger.Info("new personal best", "total", snap.Total, "height", snap.BestHeight)
		}
	}
	p.logger.Info("run finished",
		"total", snap.Total, "banked", snap.Banked, "height", snap.BestHeight,
		"bestCombo", snap.BestCombo, "ticks", p.simulation.Clock.Tick())

	p.saveRecording()
}

func (p *Playing) saveRecording() {
	if p.recorder == nil || p.recorder.FrameCount() == 0 {
		return
	}
	if err := p.recorder.Save(p.recordPath); err != nil {
		p.logger.Error("failed to save recording", "err", err)
	} else {
		p.logger.Info("recording saved", "path", p.recordPath, "frames", p.recorder.FrameCount())
	}
}

func (p *Playing) restart() {
	p.simulation.Reset()
	p.hud.Reset()
	p.camY = p.simulation.Body.Y - float64(p.screenH)*0.6
	p.runSaved = false
	p.state = state.StatePlaying
	if p.replayer != nil {
		p.replayer.Reset()
	}
	if p.recorder != nil {
		p.recorder = replay.NewRecorder(0, "")
	}
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	tower := p.simulation.Tower
	camY := p.camY

	// Side walls span the whole visible band
	ebitenutil.DrawRect(screen, 0, 0, tower.WallThick, float64(p.screenH), colorWall)
	ebitenutil.DrawRect(screen, tower.WallThick+tower.Width, 0, tower.WallThick, float64(p.screenH), colorWall)

	for _, plat := range tower.Platforms {
		y := plat.Y - camY
		if y < -32 || y > float64(p.screenH)+32 {
			continue
		}
		c := colorPlatform
		if plat.Index == 0 {
			c = colorFloor
		}
		ebitenutil.DrawRect(screen, plat.X, y, plat.Width, plat.Height, c)
	}

	body := p.simulation.Body
	ebitenutil.DrawRect(screen, body.X, body.Y-camY, body.Width, body.Height, colorPlayer)

	snap := p.simulation.Aggregator.Snapshot()
	p.hud.Draw(screen, snap, p.simulation, p.screenW, p.screenH)

	if p.preset >= 0 {
		ebitenutil.DebugPrintAt(screen, "preset: "+p.presets[p.preset].Name, 10, p.screenH-16)
	}

	switch p.state {
	case state.StatePaused:
		p.drawOverlay(screen, "PAUSED\n\nPress ESC to resume")
	case state.StateGameOver:
		p.drawOverlay(screen, fmt.Sprintf("RUN OVER\n\nTotal: %d\n\nPress R to restart", snap.Total))
	}
}

func (p *Playing) drawOverlay(screen *ebiten.Image, text string) {
	overlay := color.RGBA{0, 0, 0, 160}
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), overlay)
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-60, p.screenH/2-24)
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.finishRun()
}
