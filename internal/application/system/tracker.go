package system

import (
	"math"

	"github.com/haneulkim/ascent/internal/application/events"
	"github.com/haneulkim/ascent/internal/domain/entity"
	"github.com/haneulkim/ascent/internal/infrastructure/config"
)

// MovementTracker turns raw stepper facts into gameplay events: landings
// with quality and skip counts, takeoffs, air time and height records.
// The combo engine and the HUD consume these off the bus.
type MovementTracker struct {
	cfg *config.Config
	bus *events.Bus

	spawnY        float64
	bestHeight    float64
	recordsSeen   int
	lastPlatform  int
	hasLanded     bool
	airborneSince float64
}

// NewMovementTracker creates a tracker measuring height against spawnY.
func NewMovementTracker(cfg *config.Config, bus *events.Bus, spawnY float64) *MovementTracker {
	return &MovementTracker{
		cfg:          cfg,
		bus:          bus,
		spawnY:       spawnY,
		lastPlatform: -1,
	}
}

// ApplyConfig installs the tick's config snapshot.
func (t *MovementTracker) ApplyConfig(cfg *config.Config) {
	t.cfg = cfg
}

// Observe inspects the body after a stepper tick and emits movement events.
// landed is non-nil on the tick a touchdown happened.
func (t *MovementTracker) Observe(body *entity.KinematicBody, landed *entity.Platform, now float64) {
	if body.WasOnGround && !body.OnGround {
		t.airborneSince = now
		t.bus.Publish(events.TookOff{At: now})
	}

	if landed != nil && !body.WasOnGround {
		t.onLanding(body, landed, now)
	}

	t.observeHeight(body, now)
}

func (t *MovementTracker) onLanding(body *entity.KinematicBody, p *entity.Platform, now float64) {
	skipped := 0
	if t.hasLanded && p.Index > t.lastPlatform {
		skipped = p.Index - t.lastPlatform - 1
	}

	// Touchdown offset from the platform center, as a fraction of the
	// half-width, grades the landing.
	center := p.X + p.Width/2
	bodyCenter := body.X + body.Width/2
	offset := 1.0
	if p.Width > 0 {
		offset = math.Abs(bodyCenter-center) / (p.Width / 2)
	}

	quality := events.LandingGood
	switch {
	case offset <= t.cfg.Tracking.PrecisionFraction:
		quality = events.LandingPrecise
	case offset >= t.cfg.Tracking.BadLandingFraction:
		quality = events.LandingBad
	}

	airTime := 0.0
	if t.airborneSince > 0 || t.hasLanded {
		airTime = now - t.airborneSince
	}

	t.bus.Publish(events.Landed{
		PlatformIndex: p.Index,
		Skipped:       skipped,
		Quality:       quality,
		SpeedX:        math.Abs(body.VX),
		AirTime:       airTime,
		At:            now,
	})

	t.lastPlatform = p.Index
	t.hasLanded = true
}

func (t *MovementTracker) observeHeight(body *entity.KinematicBody, now float64) {
	height := t.spawnY - body.Y // positive up
	if height <= t.bestHeight {
		return
	}
	t.bestHeight = height

	interval := t.cfg.Tracking.HeightRecordInterval
	if interval <= 0 {
		return
	}
	records := int(height / interval)
	if records > t.recordsSeen {
		t.recordsSeen = records
		t.bus.Publish(events.HeightRecord{Height: height, At: now})
	}
}

// BestHeight returns the highest point reached this run, in pixels above spawn.
func (t *MovementTracker) BestHeight() float64 {
	return t.bestHeight
}

// Records returns how many height-record intervals have been crossed.
func (t *MovementTracker) Records() int {
	return t.recordsSeen
}

// Reset clears all per-run tracking state.
func (t *MovementTracker) Reset() {
	t.bestHeight = 0
	t.recordsSeen = 0
	t.lastPlatform = -1
	t.hasLanded = false
	t.airborneSince = 0
}
