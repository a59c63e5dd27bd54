// Package score combines height-based scoring with the combo engine's
// output into the displayable total.
package score

import (
	"github.com/haneulkim/ascent/internal/application/combo"
	"github.com/haneulkim/ascent/internal/application/events"
	"github.com/haneulkim/ascent/internal/infrastructure/config"
)

// Snapshot is one frame's worth of displayable score state.
type Snapshot struct {
	Total       int
	HeightScore int
	Banked      int
	Building    int
	BestHeight  float64
	BestCombo   int
	Multiplier  float64
}

// Aggregator is a passive consumer: it listens for height records and combo
// events and reads the engine's derived totals.
type Aggregator struct {
	cfg    *config.Config
	engine *combo.Engine

	records    int
	bestHeight float64
	bestCombo  int
}

// NewAggregator creates an aggregator over the given engine.
func NewAggregator(cfg *config.Config, engine *combo.Engine) *Aggregator {
	return &Aggregator{cfg: cfg, engine: engine}
}

// ApplyConfig installs the tick's config snapshot.
func (a *Aggregator) ApplyConfig(cfg *config.Config) {
	a.cfg = cfg
}

// HandleEvent consumes height records and combo chain growth off the bus.
func (a *Aggregator) HandleEvent(ev events.Event) {
	switch ev := ev.(type) {
	case events.HeightRecord:
		a.records++
		if ev.Height > a.bestHeight {
			a.bestHeight = ev.Height
		}
	case events.ComboEventAdded:
		if ev.ChainLength > a.bestCombo {
			a.bestCombo = ev.ChainLength
		}
	}
}

// Snapshot returns the current displayable totals.
func (a *Aggregator) Snapshot() Snapshot {
	heightScore := a.records * a.cfg.Scoring.HeightPointsPerRecord
	banked := a.engine.BankedTotal()
	building := a.engine.BuildingTotal()
	return Snapshot{
		Total:       heightScore + banked + building,
		HeightScore: heightScore,
		Banked:      banked,
		Building:    building,
		BestHeight:  a.bestHeight,
		BestCombo:   a.bestCombo,
		Multiplier:  a.engine.Multiplier(),
	}
}

// Reset clears the per-run totals.
func (a *Aggregator) Reset() {
	a.records = 0
	a.bestHeight = 0
	a.bestCombo = 0
}
