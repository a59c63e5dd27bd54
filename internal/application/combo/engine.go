package combo

import (
	"math"

	"github.com/haneulkim/ascent/internal/application/events"
	"github.com/haneulkim/ascent/internal/infrastructure/config"
)

// State of the engine's chain machine. The terminal states (completed,
// broken, banked) are instantaneous: each emits exactly one terminal event
// and falls back to Idle within the same tick.
type State int

const (
	StateIdle State = iota
	StateActive
)

// String returns the string representation of the state
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateActive:
		return "Active"
	default:
		return "Unknown"
	}
}

// Break reasons carried on ComboBroken events.
const (
	BreakPoorBounce  = "poor-bounce"
	BreakBadLandings = "bad-landings"
	BreakNoSkip      = "no-skip"
	BreakFell        = "fell"
)

// A chain this long is graded one tier above its best event.
const chainTierUpgradeLength = 10

// Engine aggregates gameplay events into combo chains. Subscribe HandleEvent
// to the bus the resolver and tracker publish on; call Update once per tick
// for the timeout and fall checks.
type Engine struct {
	cfg *config.Config
	bus *events.Bus

	state    State
	chain    *Chain
	banked   int
	retained float64 // multiplier carried into the next chain after a bank

	// Streak bookkeeping across events
	badLandings      int
	landingsNoSkip   int
	bounceStreak     int
	climbStreak      int
	lastLandingIndex int

	currentHeight float64
	peakHeight    float64
}

// NewEngine creates an idle engine publishing combo events on bus.
func NewEngine(cfg *config.Config, bus *events.Bus) *Engine {
	return &Engine{
		cfg:              cfg,
		bus:              bus,
		retained:         1.0,
		lastLandingIndex: -1,
	}
}

// ApplyConfig installs the tick's config snapshot.
func (e *Engine) ApplyConfig(cfg *config.Config) {
	e.cfg = cfg
}

// HandleEvent consumes one gameplay event. Non-qualifying events (rejected
// bounces, ordinary landings) are normal outcomes and add nothing.
func (e *Engine) HandleEvent(ev events.Event) {
	switch ev := ev.(type) {
	case events.BounceResult:
		e.onBounce(ev)
	case events.Landed:
		e.onLanded(ev)
	}
}

func (e *Engine) onBounce(ev events.BounceResult) {
	if !ev.Accepted {
		return
	}

	// A sloppy redirect kills the chain even though the bounce happened.
	if ev.Efficiency < e.cfg.Combo.EfficiencyFloor {
		e.breakChain(BreakPoorBounce, ev.At)
		return
	}

	typ, tier := e.classifyBounce(ev.Efficiency)
	e.addEvent(typ, tier, ev.At)

	e.bounceStreak++
	if e.cfg.Combo.WallChainLength > 0 && e.bounceStreak >= e.cfg.Combo.WallChainLength {
		e.bounceStreak = 0
		e.addEvent(EventWallChain, TierExpert, ev.At)
	}
}

func (e *Engine) classifyBounce(efficiency float64) (EventType, Tier) {
	switch {
	case efficiency >= e.cfg.Wall.PerfectThreshold:
		return EventPerfectBounce, TierExpert
	case efficiency >= 1.0:
		return EventBounce, TierAdvanced
	default:
		return EventBounce, TierBasic
	}
}

func (e *Engine) onLanded(ev events.Landed) {
	e.bounceStreak = 0

	if ev.PlatformIndex > e.lastLandingIndex {
		e.climbStreak++
	} else {
		e.climbStreak = 0
	}
	e.lastLandingIndex = ev.PlatformIndex

	// Break checks come first: a landing that kills the chain scores nothing.
	if ev.Quality == events.LandingBad {
		e.badLandings++
		if e.state == StateActive && e.badLandings >= e.cfg.Combo.MaxBadLandings {
			e.breakChain(BreakBadLandings, ev.At)
			return
		}
	} else {
		e.badLandings = 0
	}

	if e.state == StateActive {
		if ev.Skipped > 0 {
			e.landingsNoSkip = 0
		} else {
			e.landingsNoSkip++
			if e.landingsNoSkip > e.cfg.Combo.MaxLandingsWithoutSkip {
				e.breakChain(BreakNoSkip, ev.At)
				return
			}
		}
	}

	if typ, tier, ok := classifySkip(ev.Skipped); ok {
		e.addEvent(typ, tier, ev.At)
	}
	if ev.Quality == events.LandingPrecise {
		e.addEvent(EventPrecisionLanding, TierAdvanced, ev.At)
	}
	if th := e.cfg.Tracking.AirTimeThreshold; th > 0 && ev.AirTime >= th {
		tier := TierBasic
		if ev.AirTime >= 2*th {
			tier = TierAdvanced
		}
		e.addEvent(EventAirTime, tier, ev.At)
	}
	if ev.SpeedX >= e.cfg.Tracking.SpeedBonusThreshold {
		e.addEvent(EventSpeedBonus, TierAdvanced, ev.At)
	}

	if e.cfg.Combo.HeightChainLength > 0 && e.climbStreak >= e.cfg.Combo.HeightChainLength {
		e.climbStreak = 0
		e.addEvent(EventHeightChain, TierExpert, ev.At)
	}
}

func classifySkip(skipped int) (EventType, Tier, bool) {
	switch {
	case skipped <= 0:
		return 0, 0, false
	case skipped == 1:
		return EventSkipSmall, TierBasic, true
	case skipped == 2:
		return EventSkipMedium, TierAdvanced, true
	case skipped == 3:
		return EventSkipLarge, TierExpert, true
	default:
		return EventSkipMassive, TierLegendary, true
	}
}

// addEvent scores one qualifying event into the chain, creating the chain
// lazily. Points use the multiplier as it stands when the event lands; the
// increment applies afterwards.
func (e *Engine) addEvent(typ EventType, tier Tier, now float64) {
	if e.state == StateIdle {
		mult := math.Max(1.0, e.retained)
		e.chain = newChain(now, mult)
		e.state = StateActive
		e.retained = 1.0
		e.peakHeight = e.currentHeight
	}

	points := e.eventPoints(typ, tier, e.chain.Multiplier)
	increment := e.cfg.Combo.Increments[tier.String()]

	e.chain.Events = append(e.chain.Events, Event{
		Type:        typ,
		Tier:        tier,
		Points:      points,
		ChainWeight: increment,
		At:          now,
	})
	e.chain.Points += points
	e.chain.LastEventAt = now
	e.chain.Multiplier = math.Min(e.chain.Multiplier+increment, e.cfg.Combo.MaxMultiplier)

	e.bus.Publish(events.ComboEventAdded{
		Type:        typ.String(),
		Tier:        tier.String(),
		Points:      points,
		Multiplier:  e.chain.Multiplier,
		ChainLength: e.chain.Length(),
		At:          now,
	})

	if !e.chain.styleFired && e.chain.DistinctTypes() >= e.cfg.Combo.StyleBonusDistinctTypes {
		e.chain.styleFired = true
		e.addEvent(EventStyleBonus, TierLegendary, now)
	}
}

func (e *Engine) eventPoints(typ EventType, tier Tier, multiplier float64) int {
	base := float64(e.cfg.Combo.BasePoints[typ.String()])
	tierValue, ok := e.cfg.Combo.TierValues[tier.String()]
	if !ok {
		tierValue = 1.0
	}
	return int(math.Round(base * tierValue * multiplier))
}

// Update runs the per-tick polls: chain timeout and the fall-without-gain
// break. height is the body's current height above spawn, positive up.
func (e *Engine) Update(now, height float64) {
	e.currentHeight = height
	if e.state != StateActive {
		return
	}

	if height > e.peakHeight {
		e.peakHeight = height
	}
	if max := e.cfg.Combo.MaxFallWithoutGain; max > 0 && e.peakHeight-height > max {
		e.breakChain(BreakFell, now)
		return
	}

	if now-e.chain.LastEventAt >= e.cfg.Combo.Window {
		e.complete(now)
	}
}

// complete finalizes a timed-out chain: points are kept, long chains earn a
// bank-style completion bonus, the multiplier drops fully back to 1.
func (e *Engine) complete(now float64) {
	chain := e.chain
	bonus := 0
	if chain.Length() >= e.cfg.Combo.CompletionBonusLength {
		tier := chain.DerivedTier(chainTierUpgradeLength)
		pct := e.cfg.Combo.TierBankBonus[tier.String()] * e.cfg.Combo.CompletionBonusFraction
		bonus = int(math.Round(float64(chain.Points) * pct))
	}
	e.banked += chain.Points + bonus

	e.bus.Publish(events.ComboCompleted{
		Points:      chain.Points,
		Bonus:       bonus,
		ChainLength: chain.Length(),
		Tier:        chain.DerivedTier(chainTierUpgradeLength).String(),
		At:          now,
	})

	e.endChain(1.0)
}

func (e *Engine) breakChain(reason string, now float64) {
	if e.state != StateActive {
		return
	}
	chain := e.chain
	e.bus.Publish(events.ComboBroken{
		Reason:          reason,
		ForfeitedPoints: chain.Points,
		ChainLength:     chain.Length(),
		At:              now,
	})
	e.endChain(1.0)
}

// Bank cashes out the active chain. The bonus stacks a tier percentage with
// a length percentage, both capped; the next chain starts with a fraction of
// the current multiplier retained, rewarding a steady banking cadence.
func (e *Engine) Bank(now float64) bool {
	if e.state != StateActive || e.chain.Length() < e.cfg.Combo.MinBankLength {
		return false
	}

	chain := e.chain
	tier := chain.DerivedTier(chainTierUpgradeLength)
	pct := e.cfg.Combo.TierBankBonus[tier.String()]
	lengthPct := math.Min(
		e.cfg.Combo.LengthBonusPerEvent*float64(chain.Length()),
		e.cfg.Combo.LengthBonusCap,
	)
	pct = math.Min(pct+lengthPct, e.cfg.Combo.TotalBonusCap)

	amount := int(math.Round(float64(chain.Points) * (1 + pct)))
	e.banked += amount

	e.bus.Publish(events.ComboBanked{
		Amount:      amount,
		Bonus:       amount - chain.Points,
		ChainLength: chain.Length(),
		Tier:        tier.String(),
		At:          now,
	})

	e.endChain(math.Max(1.0, chain.Multiplier*e.cfg.Combo.MultiplierRetention))
	return true
}

func (e *Engine) endChain(retained float64) {
	e.chain = nil
	e.state = StateIdle
	e.retained = retained
	e.landingsNoSkip = 0
	e.badLandings = 0
}

// State returns the chain machine state.
func (e *Engine) State() State {
	return e.state
}

// ChainLength returns the active chain's length, zero when idle.
func (e *Engine) ChainLength() int {
	if e.state != StateActive {
		return 0
	}
	return e.chain.Length()
}

// Multiplier returns the live multiplier: the active chain's, or the
// retained value the next chain will start with.
func (e *Engine) Multiplier() float64 {
	if e.state == StateActive {
		return e.chain.Multiplier
	}
	return math.Max(1.0, e.retained)
}

// TimeRemaining returns seconds left before the active chain times out.
func (e *Engine) TimeRemaining(now float64) float64 {
	if e.state != StateActive {
		return 0
	}
	remaining := e.cfg.Combo.Window - (now - e.chain.LastEventAt)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// BankedTotal returns points already committed; a break cannot take these.
func (e *Engine) BankedTotal() int {
	return e.banked
}

// BuildingTotal returns the active chain's unbanked points.
func (e *Engine) BuildingTotal() int {
	if e.state != StateActive {
		return 0
	}
	return e.chain.Points
}

// Chain exposes the active chain for read-only inspection, nil when idle.
func (e *Engine) Chain() *Chain {
	return e.chain
}

// Reset zeroes all engine state, banked ledger included, for a new run.
func (e *Engine) Reset() {
	e.state = StateIdle
	e.chain = nil
	e.banked = 0
	e.retained = 1.0
	e.badLandings = 0
	e.landingsNoSkip = 0
	e.bounceStreak = 0
	e.climbStreak = 0
	e.lastLandingIndex = -1
	e.currentHeight = 0
	e.peakHeight = 0
}
