package config

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_LoadPhysics(t *testing.T) {
	loader := NewLoader("../../../cmd/ascent/configs")

	cfg, err := loader.LoadPhysics()
	require.NoError(t, err)

	assert.Equal(t, 480, cfg.Display.ScreenWidth)
	assert.Equal(t, 640, cfg.Display.ScreenHeight)
	assert.Equal(t, 60, cfg.Display.Framerate)
	assert.Equal(t, 800.0, cfg.Physics.Gravity)
	assert.Equal(t, 200.0, cfg.Jump.BaseJumpSpeed)
	assert.Equal(t, 2.0, cfg.Jump.CouplingFactor)
	assert.Equal(t, 0.6, cfg.Jump.RetentionFactor)
	assert.Equal(t, 1.25, cfg.Wall.AssistEfficiency)
	assert.Equal(t, 100, cfg.Combo.BasePoints["bounce"])
	assert.Equal(t, 0.3, cfg.Combo.Increments["basic"])
	assert.Equal(t, 64.0, cfg.Tracking.HeightRecordInterval)
}

func TestLoader_LoadStage(t *testing.T) {
	loader := NewLoader("../../../cmd/ascent/configs")

	cfg, err := loader.LoadStage()
	require.NoError(t, err)

	assert.Equal(t, "tower", cfg.ID)
	assert.Equal(t, 448.0, cfg.Corridor.Width)
	assert.Equal(t, 16.0, cfg.Corridor.WallThickness)
	assert.Equal(t, 960.0, cfg.FloorY)
	assert.NotEmpty(t, cfg.Platforms)

	// Bottom-to-top ordering is what makes the index a skip counter.
	for i := 1; i < len(cfg.Platforms); i++ {
		assert.Less(t, cfg.Platforms[i].Y, cfg.Platforms[i-1].Y,
			"platform %d must be above platform %d", i, i-1)
	}
}

func TestLoader_LoadPresets(t *testing.T) {
	loader := NewLoader("../../../cmd/ascent/configs")

	presets, err := loader.LoadPresets()
	require.NoError(t, err)
	require.NotEmpty(t, presets)

	var floaty *Preset
	for i := range presets {
		if presets[i].Name == "floaty" {
			floaty = &presets[i]
		}
	}
	require.NotNil(t, floaty)
	require.NotNil(t, floaty.Physics)
	assert.Equal(t, 560.0, floaty.Physics.Gravity)
	assert.Nil(t, floaty.Wall, "floaty only overrides physics and jump")
}

func TestLoader_LoadPresets_MissingFileIsOK(t *testing.T) {
	fsys := fstest.MapFS{}
	loader := NewFSLoader(fsys)

	presets, err := loader.LoadPresets()
	require.NoError(t, err)
	assert.Nil(t, presets)
}

func TestLoader_LoadAll(t *testing.T) {
	loader := NewLoader("../../../cmd/ascent/configs")

	cfg, err := loader.LoadAll()
	require.NoError(t, err)

	assert.NotNil(t, cfg.Physics)
	assert.NotNil(t, cfg.Stage)
	assert.NotEmpty(t, cfg.Presets)
}

func TestPreset_Apply(t *testing.T) {
	base := Default()
	preset := Preset{
		Name:    "test",
		Physics: &PhysicsConfig{Gravity: 500, MaxFallSpeed: 600},
	}

	next := preset.Apply(base)

	assert.Equal(t, 500.0, next.Physics.Gravity)
	assert.Equal(t, base.Jump, next.Jump, "sections left nil keep base values")
	assert.Equal(t, 800.0, base.Physics.Gravity, "base is not modified")
}

func TestStore_SwapIsWholesale(t *testing.T) {
	base := Default()
	store := NewStore(base)

	first := store.Snapshot()
	assert.Equal(t, 800.0, first.Physics.Gravity)

	modified := base
	modified.Physics.Gravity = 1000
	store.Swap(modified)

	assert.Equal(t, 800.0, first.Physics.Gravity, "old snapshot stays intact")
	assert.Equal(t, 1000.0, store.Snapshot().Physics.Gravity)
}
