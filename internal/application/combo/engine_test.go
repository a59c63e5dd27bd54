package combo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haneulkim/ascent/internal/application/events"
	"github.com/haneulkim/ascent/internal/domain/entity"
	"github.com/haneulkim/ascent/internal/infrastructure/config"
)

type comboRecorder struct {
	added     []events.ComboEventAdded
	completed []events.ComboCompleted
	broken    []events.ComboBroken
	banked    []events.ComboBanked
}

func (r *comboRecorder) handle(ev events.Event) {
	switch ev := ev.(type) {
	case events.ComboEventAdded:
		r.added = append(r.added, ev)
	case events.ComboCompleted:
		r.completed = append(r.completed, ev)
	case events.ComboBroken:
		r.broken = append(r.broken, ev)
	case events.ComboBanked:
		r.banked = append(r.banked, ev)
	}
}

func newTestEngine() (*Engine, *comboRecorder) {
	cfg := config.Default()
	bus := events.NewBus()
	rec := &comboRecorder{}
	bus.Subscribe(rec.handle)
	return NewEngine(&cfg, bus), rec
}

func neutralBounce(at float64) events.BounceResult {
	return events.BounceResult{
		Accepted:   true,
		Side:       entity.SideLeft,
		Efficiency: 0.85,
		At:         at,
	}
}

func plainLanding(index int, at float64) events.Landed {
	return events.Landed{
		PlatformIndex: index,
		Quality:       events.LandingGood,
		At:            at,
	}
}

func TestEngine_MultiplierAppliesBeforeIncrement(t *testing.T) {
	engine, rec := newTestEngine()

	// Two bounces, a quiet landing to break the wall streak, a third bounce.
	engine.HandleEvent(neutralBounce(1.0))
	engine.HandleEvent(neutralBounce(1.5))
	engine.HandleEvent(plainLanding(1, 2.0))
	engine.HandleEvent(neutralBounce(2.5))

	require.Len(t, rec.added, 3)
	// Each event scores at the multiplier as it stood, then raises it.
	assert.Equal(t, 100, rec.added[0].Points)
	assert.Equal(t, 130, rec.added[1].Points)
	assert.Equal(t, 160, rec.added[2].Points)
	assert.InDelta(t, 1.9, engine.Multiplier(), 1e-9)
	assert.Equal(t, 390, engine.BuildingTotal())
	assert.Equal(t, StateActive, engine.State())
}

func TestEngine_RejectedBounceIsIgnored(t *testing.T) {
	engine, rec := newTestEngine()

	engine.HandleEvent(events.BounceResult{
		Accepted: false,
		Reason:   events.RejectTooSlow,
		At:       1.0,
	})

	assert.Equal(t, StateIdle, engine.State())
	assert.Empty(t, rec.added)
	assert.Empty(t, rec.broken)
}

func TestEngine_BounceClassification(t *testing.T) {
	tests := []struct {
		name       string
		efficiency float64
		wantType   string
		wantPoints int
	}{
		{"neutral is a basic bounce", 0.85, "bounce", 100},
		{"full efficiency is advanced", 1.0, "bounce", 150},
		{"assist past threshold is perfect", 1.25, "perfect-bounce", 450},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine, rec := newTestEngine()

			engine.HandleEvent(events.BounceResult{Accepted: true, Efficiency: tt.efficiency, At: 1.0})

			require.Len(t, rec.added, 1)
			assert.Equal(t, tt.wantType, rec.added[0].Type)
			assert.Equal(t, tt.wantPoints, rec.added[0].Points)
		})
	}
}

func TestEngine_PoorBounceBreaksChain(t *testing.T) {
	engine, rec := newTestEngine()

	engine.HandleEvent(neutralBounce(1.0))
	require.Equal(t, StateActive, engine.State())

	// Accepted but fighting the wall: efficiency under the floor.
	engine.HandleEvent(events.BounceResult{Accepted: true, Efficiency: 0.4, At: 1.5})

	assert.Equal(t, StateIdle, engine.State())
	require.Len(t, rec.broken, 1)
	assert.Equal(t, BreakPoorBounce, rec.broken[0].Reason)
	assert.Equal(t, 100, rec.broken[0].ForfeitedPoints)
	assert.Equal(t, 0, engine.BankedTotal(), "forfeited points never reach the bank")
}

func TestEngine_PoorBounceWhileIdleEmitsNothing(t *testing.T) {
	engine, rec := newTestEngine()

	engine.HandleEvent(events.BounceResult{Accepted: true, Efficiency: 0.4, At: 1.0})

	assert.Equal(t, StateIdle, engine.State())
	assert.Empty(t, rec.broken)
}

func TestEngine_WallChainAfterThreeBounces(t *testing.T) {
	engine, rec := newTestEngine()

	engine.HandleEvent(neutralBounce(1.0))
	engine.HandleEvent(neutralBounce(1.5))
	engine.HandleEvent(neutralBounce(2.0))

	require.Len(t, rec.added, 4)
	assert.Equal(t, "wall-chain", rec.added[3].Type)
	assert.Equal(t, "expert", rec.added[3].Tier)
	// 200 base * 2.5 expert * 1.9 multiplier
	assert.Equal(t, 950, rec.added[3].Points)
}

func TestEngine_LandingBreaksWallStreak(t *testing.T) {
	engine, rec := newTestEngine()

	engine.HandleEvent(neutralBounce(1.0))
	engine.HandleEvent(neutralBounce(1.5))
	engine.HandleEvent(plainLanding(1, 1.8))
	engine.HandleEvent(neutralBounce(2.0))

	for _, ev := range rec.added {
		assert.NotEqual(t, "wall-chain", ev.Type)
	}
}

func TestEngine_SkipClassificationAndStyleBonus(t *testing.T) {
	engine, rec := newTestEngine()

	// Descending platform indices keep the climb streak quiet; the skip
	// counts come straight off the events.
	skips := []struct {
		index   int
		skipped int
	}{
		{9, 1}, {7, 2}, {5, 3}, {3, 4},
	}
	for i, s := range skips {
		engine.HandleEvent(events.Landed{
			PlatformIndex: s.index,
			Skipped:       s.skipped,
			Quality:       events.LandingGood,
			At:            1.0 + float64(i),
		})
	}

	// Four skip tiers plus the style bonus for four distinct types.
	require.Len(t, rec.added, 5)
	assert.Equal(t, "platform-skip-small", rec.added[0].Type)
	assert.Equal(t, 80, rec.added[0].Points)
	assert.Equal(t, "platform-skip-medium", rec.added[1].Type)
	assert.Equal(t, 273, rec.added[1].Points) // 140 * 1.5 * 1.3
	assert.Equal(t, "platform-skip-large", rec.added[2].Type)
	assert.Equal(t, 990, rec.added[2].Points) // 220 * 2.5 * 1.8
	assert.Equal(t, "platform-skip-massive", rec.added[3].Type)
	assert.Equal(t, 3640, rec.added[3].Points) // 350 * 4.0 * 2.6
	assert.Equal(t, "style-bonus", rec.added[4].Type)
	assert.Equal(t, 3800, rec.added[4].Points) // 250 * 4.0 * 3.8
}

func TestEngine_StyleBonusFiresOncePerChain(t *testing.T) {
	engine, rec := newTestEngine()

	// Distinct types: bounce, precision, air-time, speed-bonus on one
	// landing; keep layering events afterwards.
	engine.HandleEvent(neutralBounce(1.0))
	engine.HandleEvent(events.Landed{
		PlatformIndex: 1,
		Skipped:       1,
		Quality:       events.LandingPrecise,
		SpeedX:        280,
		AirTime:       1.5,
		At:            2.0,
	})
	engine.HandleEvent(neutralBounce(2.5))

	styleCount := 0
	for _, ev := range rec.added {
		if ev.Type == "style-bonus" {
			styleCount++
		}
	}
	assert.Equal(t, 1, styleCount)
}

func TestEngine_QualifyingLandingEvents(t *testing.T) {
	engine, rec := newTestEngine()

	engine.HandleEvent(events.Landed{
		PlatformIndex: 1,
		Skipped:       1,
		Quality:       events.LandingPrecise,
		SpeedX:        280, // over the 260 speed bonus threshold
		AirTime:       2.5, // over twice the 1.2 air time threshold
		At:            1.0,
	})

	var types []string
	for _, ev := range rec.added {
		types = append(types, ev.Type)
	}
	assert.Equal(t, []string{
		"platform-skip-small", "precision-landing", "air-time", "speed-bonus", "style-bonus",
	}, types)
	// Long hangtime grades air-time advanced.
	assert.Equal(t, "advanced", rec.added[2].Tier)
}

func TestEngine_HeightChainAfterThreeClimbs(t *testing.T) {
	engine, rec := newTestEngine()

	engine.HandleEvent(events.Landed{PlatformIndex: 1, Skipped: 1, Quality: events.LandingGood, At: 1.0})
	engine.HandleEvent(events.Landed{PlatformIndex: 2, Skipped: 1, Quality: events.LandingGood, At: 2.0})
	engine.HandleEvent(events.Landed{PlatformIndex: 3, Skipped: 1, Quality: events.LandingGood, At: 3.0})

	var chainEvents []string
	for _, ev := range rec.added {
		if ev.Type == "height-chain" {
			chainEvents = append(chainEvents, ev.Tier)
		}
	}
	require.Len(t, chainEvents, 1)
	assert.Equal(t, "expert", chainEvents[0])
}

func TestEngine_BadLandingsBreakChain(t *testing.T) {
	engine, rec := newTestEngine()

	engine.HandleEvent(neutralBounce(1.0))

	bad := events.Landed{PlatformIndex: 1, Quality: events.LandingBad, At: 2.0}
	engine.HandleEvent(bad)
	assert.Equal(t, StateActive, engine.State(), "one bad landing is survivable")

	bad.At = 3.0
	engine.HandleEvent(bad)

	assert.Equal(t, StateIdle, engine.State())
	require.Len(t, rec.broken, 1)
	assert.Equal(t, BreakBadLandings, rec.broken[0].Reason)
}

func TestEngine_GoodLandingResetsBadStreak(t *testing.T) {
	engine, rec := newTestEngine()

	engine.HandleEvent(neutralBounce(1.0))
	engine.HandleEvent(events.Landed{PlatformIndex: 1, Quality: events.LandingBad, At: 2.0})
	engine.HandleEvent(events.Landed{PlatformIndex: 1, Skipped: 1, Quality: events.LandingGood, At: 3.0})
	engine.HandleEvent(events.Landed{PlatformIndex: 1, Quality: events.LandingBad, At: 4.0})

	assert.Equal(t, StateActive, engine.State())
	assert.Empty(t, rec.broken)
}

func TestEngine_NoSkipLandingsBreakChain(t *testing.T) {
	engine, rec := newTestEngine()

	engine.HandleEvent(neutralBounce(1.0))

	// Five landings on the same ledge without skipping anything.
	for i := 0; i < 5; i++ {
		engine.HandleEvent(plainLanding(1, 1.1+float64(i)*0.1))
	}

	assert.Equal(t, StateIdle, engine.State())
	require.Len(t, rec.broken, 1)
	assert.Equal(t, BreakNoSkip, rec.broken[0].Reason)
	assert.Equal(t, 100, rec.broken[0].ForfeitedPoints)
}

func TestEngine_FallWithoutGainBreaksChain(t *testing.T) {
	engine, rec := newTestEngine()

	engine.HandleEvent(neutralBounce(1.0))
	engine.Update(2.0, 600)
	assert.Equal(t, StateActive, engine.State())

	engine.Update(3.0, 100) // fell 500px off the peak

	assert.Equal(t, StateIdle, engine.State())
	require.Len(t, rec.broken, 1)
	assert.Equal(t, BreakFell, rec.broken[0].Reason)
}

func TestEngine_TimeoutCompletesChain(t *testing.T) {
	engine, rec := newTestEngine()

	// Five events: three bounces, the synthesized wall chain, one more bounce.
	engine.HandleEvent(neutralBounce(1.0))
	engine.HandleEvent(neutralBounce(1.2))
	engine.HandleEvent(neutralBounce(1.4))
	engine.HandleEvent(neutralBounce(1.6))
	require.Equal(t, 5, engine.ChainLength())
	require.Equal(t, 1610, engine.BuildingTotal())

	engine.Update(5.6, 0) // window elapsed since the last event

	assert.Equal(t, StateIdle, engine.State())
	require.Len(t, rec.completed, 1)
	assert.Equal(t, 1610, rec.completed[0].Points)
	// Expert chain (wall-chain event), half the 0.35 bank percentage.
	assert.Equal(t, 282, rec.completed[0].Bonus)
	assert.Equal(t, "expert", rec.completed[0].Tier)
	assert.Equal(t, 1892, engine.BankedTotal())
	assert.Equal(t, 1.0, engine.Multiplier(), "completion resets the multiplier fully")

	engine.Update(5.7, 0)
	assert.Len(t, rec.completed, 1, "completion is not re-entered")
}

func TestEngine_ShortChainTimeoutHasNoBonus(t *testing.T) {
	engine, rec := newTestEngine()

	engine.HandleEvent(neutralBounce(1.0))
	engine.Update(5.0, 0)

	require.Len(t, rec.completed, 1)
	assert.Equal(t, 100, rec.completed[0].Points)
	assert.Equal(t, 0, rec.completed[0].Bonus)
	assert.Equal(t, 100, engine.BankedTotal())
}

func TestEngine_Bank(t *testing.T) {
	engine, rec := newTestEngine()

	engine.HandleEvent(neutralBounce(1.0))
	engine.HandleEvent(neutralBounce(1.5))
	engine.HandleEvent(plainLanding(1, 2.0))
	engine.HandleEvent(neutralBounce(2.5))
	require.Equal(t, 390, engine.BuildingTotal())

	require.True(t, engine.Bank(3.0))

	// Basic tier 10% + 3 events * 2% = 16% bonus on 390.
	require.Len(t, rec.banked, 1)
	assert.Equal(t, 452, rec.banked[0].Amount)
	assert.Equal(t, 62, rec.banked[0].Bonus)
	assert.Equal(t, "basic", rec.banked[0].Tier)
	assert.Equal(t, 3, rec.banked[0].ChainLength)

	assert.Equal(t, 452, engine.BankedTotal())
	assert.Equal(t, StateIdle, engine.State())
	assert.Equal(t, 0, engine.BuildingTotal())
}

func TestEngine_BankRetainsSoftMultiplier(t *testing.T) {
	engine, rec := newTestEngine()

	// Six basic bounces with quiet landings in between: multiplier 2.8.
	times := []float64{1.0, 1.2, 1.6, 1.8, 2.2, 2.4}
	for i, at := range times {
		engine.HandleEvent(neutralBounce(at))
		if i%2 == 1 {
			engine.HandleEvent(plainLanding(1, at+0.1))
		}
	}
	require.InDelta(t, 2.8, engine.Multiplier(), 1e-9)

	require.True(t, engine.Bank(2.6))
	assert.InDelta(t, 1.4, engine.Multiplier(), 1e-9, "half the multiplier survives the bank")

	// The next chain opens at the retained multiplier.
	engine.HandleEvent(neutralBounce(3.0))
	last := rec.added[len(rec.added)-1]
	assert.Equal(t, 140, last.Points)
}

func TestEngine_BankRequiresMinimumLength(t *testing.T) {
	engine, rec := newTestEngine()

	assert.False(t, engine.Bank(1.0), "idle engine cannot bank")

	engine.HandleEvent(neutralBounce(1.0))
	engine.HandleEvent(neutralBounce(1.5))

	assert.False(t, engine.Bank(2.0))
	assert.Equal(t, StateActive, engine.State(), "failed bank leaves the chain alone")
	assert.Empty(t, rec.banked)
	assert.Equal(t, 230, engine.BuildingTotal())
}

func TestEngine_MultiplierCapped(t *testing.T) {
	engine, rec := newTestEngine()

	// Bounce/skip pairs push the multiplier 0.6 per round.
	for i := 0; i < 20; i++ {
		at := 1.0 + float64(i)*0.1
		engine.HandleEvent(neutralBounce(at))
		engine.HandleEvent(events.Landed{PlatformIndex: 1, Skipped: 1, Quality: events.LandingGood, At: at + 0.05})
	}

	assert.Equal(t, 10.0, engine.Multiplier())
	last := rec.added[len(rec.added)-1]
	assert.Equal(t, 10.0, last.Multiplier)
}

func TestEngine_TimeRemaining(t *testing.T) {
	engine, _ := newTestEngine()

	assert.Equal(t, 0.0, engine.TimeRemaining(1.0))

	engine.HandleEvent(neutralBounce(1.0))
	assert.InDelta(t, 3.0, engine.TimeRemaining(2.0), 1e-9)
	assert.Equal(t, 0.0, engine.TimeRemaining(9.0))
}

func TestEngine_Reset(t *testing.T) {
	engine, _ := newTestEngine()

	engine.HandleEvent(neutralBounce(1.0))
	engine.Update(5.0, 0)
	require.Greater(t, engine.BankedTotal(), 0)

	engine.Reset()

	assert.Equal(t, StateIdle, engine.State())
	assert.Equal(t, 0, engine.BankedTotal())
	assert.Equal(t, 1.0, engine.Multiplier())
	assert.Nil(t, engine.Chain())
}
