package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputReader samples the keyboard into an InputState snapshot once per
// tick. Replays bypass it entirely and feed recorded snapshots instead.
type InputReader struct{}

// NewInputReader creates a keyboard input reader.
func NewInputReader() *InputReader {
	return &InputReader{}
}

// Read returns the current input state.
func (r *InputReader) Read() InputState {
	left := ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	right := ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight)
	return InputState{
		Left:         left,
		Right:        right,
		Jump:         ebiten.IsKeyPressed(ebiten.KeySpace) || ebiten.IsKeyPressed(ebiten.KeyW),
		JumpPressed:  inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyW),
		JumpReleased: inpututil.IsKeyJustReleased(ebiten.KeySpace) || inpututil.IsKeyJustReleased(ebiten.KeyW),
		Bank:         inpututil.IsKeyJustPressed(ebiten.KeyB),
	}
}
