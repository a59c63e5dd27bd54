package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haneulkim/ascent/internal/application/scene"
)

// stubScene records the calls the shell makes and can hand over a successor.
type stubScene struct {
	updates int
	draws   int
	enters  int
	exits   int
	lastDT  float64
	next    scene.Scene
	err     error
}

func (s *stubScene) Update(dt float64) (scene.Scene, error) {
	s.updates++
	s.lastDT = dt
	return s.next, s.err
}

func (s *stubScene) Draw(screen *ebiten.Image) { s.draws++ }
func (s *stubScene) OnEnter()                  { s.enters++ }
func (s *stubScene) OnExit()                   { s.exits++ }

func TestGame_EntersInitialScene(t *testing.T) {
	first := &stubScene{}

	g := New(first, 480, 640, 60)

	require.NotNil(t, g)
	assert.Equal(t, 1, first.enters)
	assert.Equal(t, 0, first.exits)
}

func TestGame_DTDerivesFromTickRate(t *testing.T) {
	first := &stubScene{}
	g := New(first, 480, 640, 120)

	require.NoError(t, g.Update())

	assert.InDelta(t, 1.0/120.0, first.lastDT, 1e-12)
}

func TestGame_BadTickRateFallsBackToSixty(t *testing.T) {
	first := &stubScene{}
	g := New(first, 480, 640, 0)

	require.NoError(t, g.Update())

	assert.InDelta(t, 1.0/60.0, first.lastDT, 1e-12)
}

func TestGame_SceneHandover(t *testing.T) {
	second := &stubScene{}
	first := &stubScene{next: second}
	g := New(first, 480, 640, 60)

	require.NoError(t, g.Update())

	assert.Equal(t, 1, first.updates)
	assert.Equal(t, 1, first.exits, "outgoing scene exits on handover")
	assert.Equal(t, 1, second.enters, "incoming scene enters on handover")

	require.NoError(t, g.Update())
	assert.Equal(t, 1, first.updates, "after the handover ticks go to the successor")
	assert.Equal(t, 1, second.updates)
}

func TestGame_NilSuccessorMeansNoHandover(t *testing.T) {
	first := &stubScene{}
	g := New(first, 480, 640, 60)

	for i := 0; i < 5; i++ {
		require.NoError(t, g.Update())
	}

	assert.Equal(t, 5, first.updates)
	assert.Equal(t, 0, first.exits)
}

func TestGame_SceneErrorStopsBeforeHandover(t *testing.T) {
	second := &stubScene{}
	first := &stubScene{next: second, err: assert.AnError}
	g := New(first, 480, 640, 60)

	assert.Error(t, g.Update())

	assert.Equal(t, 0, first.exits, "no handover after a scene error")
	assert.Equal(t, 0, second.enters)
}

func TestGame_LayoutIsFixedLogicalResolution(t *testing.T) {
	g := New(&stubScene{}, 480, 640, 60)

	w, h := g.Layout(1920, 1080)

	assert.Equal(t, 480, w)
	assert.Equal(t, 640, h)
}

func TestGame_DrawDelegatesToActiveScene(t *testing.T) {
	first := &stubScene{}
	g := New(first, 480, 640, 60)

	g.Draw(ebiten.NewImage(480, 640))

	assert.Equal(t, 1, first.draws)
}
