// Package scene splits the shell into screens driven by the game loop.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene is one screen of the shell: today the playing scene, later a title
// or settings screen. Update runs once per logical tick with the fixed dt;
// returning a non-nil successor hands the loop over to it, returning an
// error stops the loop. OnEnter and OnExit bracket the scene's active
// lifetime, so per-run setup and persistence hang off them.
type Scene interface {
	Update(dt float64) (next Scene, err error)
	Draw(screen *ebiten.Image)
	OnEnter()
	OnExit()
}
