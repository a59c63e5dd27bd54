// Package sim wires the simulation core together: clock, event bus, body,
// movement, stepper, wall-bounce resolver, movement tracker, combo engine
// and score aggregator. It runs headless; the playing scene draws on top of
// it and the replay command drives it straight from a recording.
package sim

import (
	"github.com/haneulkim/ascent/internal/application/clock"
	"github.com/haneulkim/ascent/internal/application/combo"
	"github.com/haneulkim/ascent/internal/application/events"
	"github.com/haneulkim/ascent/internal/application/score"
	"github.com/haneulkim/ascent/internal/application/system"
	"github.com/haneulkim/ascent/internal/domain/entity"
	"github.com/haneulkim/ascent/internal/infrastructure/config"
)

const bodyWidth, bodyHeight = 14, 20

// Sim is one playthrough of the tower.
type Sim struct {
	store *config.Store
	cfg   *config.Config // snapshot for the current tick

	Clock      *clock.Clock
	Bus        *events.Bus
	Body       *entity.KinematicBody
	Tower      *entity.Tower
	Movement   *system.MovementSystem
	Resolver   *system.WallBounceResolver
	Tracker    *system.MovementTracker
	Stepper    *system.Stepper
	Engine     *combo.Engine
	Aggregator *score.Aggregator
}

// BuildTower converts the stage config into collision geometry. The floor
// counts as platform zero so the first real ledge starts the skip ladder.
func BuildTower(stage *config.StageConfig) *entity.Tower {
	tower := &entity.Tower{
		Width:     stage.Corridor.Width,
		WallThick: stage.Corridor.WallThickness,
		FloorY:    stage.FloorY,
		SpawnX:    stage.PlayerSpawn.X,
		SpawnY:    stage.PlayerSpawn.Y,
	}

	tower.Platforms = append(tower.Platforms, entity.Platform{
		Index:  0,
		X:      stage.Corridor.WallThickness,
		Y:      stage.FloorY,
		Width:  stage.Corridor.Width,
		Height: collisionFloorThickness,
	})
	for i, p := range stage.Platforms {
		tower.Platforms = append(tower.Platforms, entity.Platform{
			Index:  i + 1,
			X:      p.X,
			Y:      p.Y,
			Width:  p.Width,
			Height: p.Height,
		})
	}
	return tower
}

const collisionFloorThickness = 32

// New builds a ready-to-run simulation from a config store and stage.
func New(store *config.Store, stage *config.StageConfig) *Sim {
	cfg := store.Snapshot()
	bus := events.NewBus()
	tower := BuildTower(stage)

	body := entity.NewKinematicBody(tower.SpawnX, tower.SpawnY, bodyWidth, bodyHeight)
	resolver := system.NewWallBounceResolver(cfg, bus)
	tracker := system.NewMovementTracker(cfg, bus, tower.SpawnY)
	stepper := system.NewStepper(cfg, tower, body, resolver, tracker)
	movement := system.NewMovementSystem(cfg, bus)
	engine := combo.NewEngine(cfg, bus)
	aggregator := score.NewAggregator(cfg, engine)

	bus.Subscribe(engine.HandleEvent)
	bus.Subscribe(aggregator.HandleEvent)

	s := &Sim{
		store:      store,
		cfg:        cfg,
		Clock:      clock.New(1.0 / float64(cfg.Display.Framerate)),
		Bus:        bus,
		Body:       body,
		Tower:      tower,
		Movement:   movement,
		Resolver:   resolver,
		Tracker:    tracker,
		Stepper:    stepper,
		Engine:     engine,
		Aggregator: aggregator,
	}
	return s
}

// Step advances the simulation by exactly one tick. The config snapshot is
// read once at the top, so a Store swap between ticks is the only way tuning
// changes enter the core.
func (s *Sim) Step(input system.InputState) {
	s.cfg = s.store.Snapshot()
	s.Movement.ApplyConfig(s.cfg)
	s.Resolver.ApplyConfig(s.cfg)
	s.Tracker.ApplyConfig(s.cfg)
	s.Stepper.ApplyConfig(s.cfg)
	s.Engine.ApplyConfig(s.cfg)
	s.Aggregator.ApplyConfig(s.cfg)

	dt := s.Clock.DT()
	now := s.Clock.Now()

	s.Movement.Update(s.Body, input, dt, now)
	s.Stepper.Update(s.Body, input.Intent(), dt, now)

	if input.Bank {
		s.Engine.Bank(now)
	}
	s.Engine.Update(now, s.Height())

	s.Clock.Advance()
}

// Height returns the body's current height above spawn, positive up.
func (s *Sim) Height() float64 {
	return s.Tower.SpawnY - s.Body.Y
}

// Config returns the snapshot the current tick is running on.
func (s *Sim) Config() *config.Config {
	return s.cfg
}

// Reset atomically returns every component to its initial state before the
// next tick runs; nothing from the previous playthrough leaks across.
func (s *Sim) Reset() {
	s.Stepper.Reset(s.Body)
	s.Movement.Reset()
	s.Resolver.Reset()
	s.Tracker.Reset()
	s.Engine.Reset()
	s.Aggregator.Reset()
	s.Clock.Reset()
}
