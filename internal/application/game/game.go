// Package game runs the ebiten shell: it owns the fixed-rate loop and hands
// each tick to the active scene.
package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/haneulkim/ascent/internal/application/scene"
)

// Game implements ebiten.Game. It drives the active scene at a fixed
// logical rate and swaps scenes when one hands over a successor.
type Game struct {
	active  scene.Scene
	screenW int
	screenH int
	dt      float64
}

// New wires the shell to its first scene. tps is the logical tick rate the
// tuning configs assume; the dt handed to scenes each tick derives from it.
// The initial scene's OnEnter runs immediately.
func New(initial scene.Scene, screenW, screenH, tps int) *Game {
	if tps <= 0 {
		tps = 60
	}
	g := &Game{
		active:  initial,
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / float64(tps),
	}
	g.active.OnEnter()
	return g
}

// Update advances the active scene one tick and applies a scene handover.
// A scene error stops the loop before any handover happens.
func (g *Game) Update() error {
	next, err := g.active.Update(g.dt)
	if err != nil {
		return err
	}
	if next != nil {
		g.active.OnExit()
		g.active = next
		g.active.OnEnter()
	}
	return nil
}

// Draw renders the active scene.
func (g *Game) Draw(screen *ebiten.Image) {
	g.active.Draw(screen)
}

// Layout reports the fixed logical resolution; window scaling is ebiten's
// concern, not the scenes'.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}
