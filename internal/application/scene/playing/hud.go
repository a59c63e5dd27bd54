package playing

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/haneulkim/ascent/internal/application/events"
	"github.com/haneulkim/ascent/internal/application/score"
	"github.com/haneulkim/ascent/internal/application/sim"
)

const (
	popupDuration = 1.2
	flashDuration = 0.8
	maxPopups     = 8
)

// popup is one floating score notice, driven by a tween.
type popup struct {
	text   string
	tween  *gween.Tween
	offset float32
	done   bool
}

// flash is a short full-line notice (bank, break).
type flash struct {
	text  string
	timer float64
}

// HUD renders run state on top of the playing scene and animates combo
// feedback from bus events.
type HUD struct {
	popups  []*popup
	flashes []flash
}

func NewHUD() *HUD {
	return &HUD{}
}

// HandleEvent turns scoring events into transient on-screen feedback.
func (h *HUD) HandleEvent(ev events.Event) {
	switch e := ev.(type) {
	case events.ComboEventAdded:
		h.addPopup(fmt.Sprintf("%s +%d x%.1f", e.Type, e.Points, e.Multiplier))
	case events.ComboBanked:
		h.flashes = append(h.flashes, flash{
			text:  fmt.Sprintf("BANKED %d (+%d bonus)", e.Amount, e.Bonus),
			timer: flashDuration,
		})
	case events.ComboBroken:
		h.flashes = append(h.flashes, flash{
			text:  fmt.Sprintf("COMBO BROKEN: %s (-%d)", e.Reason, e.ForfeitedPoints),
			timer: flashDuration,
		})
	case events.HeightRecord:
		h.addPopup(fmt.Sprintf("height %.0f", e.Height))
	}
}

func (h *HUD) addPopup(text string) {
	if len(h.popups) >= maxPopups {
		h.popups = h.popups[1:]
	}
	h.popups = append(h.popups, &popup{
		text:  text,
		tween: gween.New(0, 48, popupDuration, ease.OutQuad),
	})
}

// Update advances popup tweens and flash timers.
func (h *HUD) Update(dt float64) {
	alive := h.popups[:0]
	for _, p := range h.popups {
		offset, finished := p.tween.Update(float32(dt))
		p.offset = offset
		p.done = finished
		if !finished {
			alive = append(alive, p)
		}
	}
	h.popups = alive

	flashes := h.flashes[:0]
	for _, f := range h.flashes {
		f.timer -= dt
		if f.timer > 0 {
			flashes = append(flashes, f)
		}
	}
	h.flashes = flashes
}

// Draw renders the score panel, combo panel and transient feedback.
func (h *HUD) Draw(screen *ebiten.Image, snap score.Snapshot, s *sim.Sim, screenW, screenH int) {
	cfg := s.Config()
	now := s.Clock.Now()

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("SCORE %d", snap.Total), 10, 10)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("HEIGHT %.0f  BEST %.0f", s.Height(), snap.BestHeight), 10, 26)

	if snap.Building > 0 || s.Engine.ChainLength() > 0 {
		ebitenutil.DebugPrintAt(screen,
			fmt.Sprintf("COMBO x%.1f  chain %d  +%d", snap.Multiplier, s.Engine.ChainLength(), snap.Building),
			10, 42)
		h.drawComboBar(screen, s.Engine.TimeRemaining(now), cfg.Combo.Window, screenW)
	}

	popupY := 70
	for i := len(h.popups) - 1; i >= 0; i-- {
		p := h.popups[i]
		ebitenutil.DebugPrintAt(screen, p.text, screenW-170, popupY-int(p.offset)+i*16)
	}

	flashY := screenH/2 - 60
	for _, f := range h.flashes {
		ebitenutil.DebugPrintAt(screen, f.text, screenW/2-len(f.text)*3, flashY)
		flashY += 16
	}
}

// drawComboBar shows the remaining combo window as a shrinking bar.
func (h *HUD) drawComboBar(screen *ebiten.Image, remaining, window float64, screenW int) {
	if window <= 0 {
		return
	}
	frac := remaining / window
	if frac < 0 {
		frac = 0
	}
	barW := 120.0
	ebitenutil.DrawRect(screen, 10, 58, barW, 6, color.RGBA{60, 60, 60, 255})
	c := color.RGBA{120, 200, 120, 255}
	if frac < 0.3 {
		c = color.RGBA{220, 120, 80, 255}
	}
	ebitenutil.DrawRect(screen, 10, 58, barW*frac, 6, c)
}

// Reset drops all transient feedback (used on restart).
func (h *HUD) Reset() {
	h.popups = h.popups[:0]
	h.flashes = h.flashes[:0]
}
