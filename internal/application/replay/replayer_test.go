package replay

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haneulkim/ascent/internal/application/system"
)

func TestReplayer_PlaysBackRecordedInputs(t *testing.T) {
	rec := NewRecorder(42, "tower")
	rec.Record(system.InputState{Right: true})
	rec.Record(system.InputState{Right: true, JumpPressed: true})
	rec.Record(system.InputState{Bank: true})

	r := NewReplayer(rec.data)
	assert.Equal(t, 3, r.TotalFrames())
	assert.Equal(t, int64(42), r.Seed())

	in, ok := r.Next()
	require.True(t, ok)
	assert.True(t, in.Right)
	assert.False(t, in.JumpPressed)

	in, ok = r.Next()
	require.True(t, ok)
	assert.True(t, in.JumpPressed)

	in, ok = r.Next()
	require.True(t, ok)
	assert.True(t, in.Bank)

	_, ok = r.Next()
	assert.False(t, ok, "exhausted recording stops playback")
}

func TestReplayer_Reset(t *testing.T) {
	rec := NewRecorder(0, "tower")
	rec.Record(system.InputState{Left: true})

	r := NewReplayer(rec.data)
	_, ok := r.Next()
	require.True(t, ok)
	_, ok = r.Next()
	require.False(t, ok)

	r.Reset()
	in, ok := r.Next()
	require.True(t, ok)
	assert.True(t, in.Left)
}

func TestRecorder_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.json")

	rec := NewRecorder(7, "tower")
	rec.Record(system.InputState{Right: true})
	rec.Record(system.InputState{Right: true, JumpPressed: true})
	require.NoError(t, rec.Save(path))

	data, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "1.0", data.Version)
	assert.Equal(t, int64(7), data.Seed)
	assert.Equal(t, "tower", data.Stage)
	require.Len(t, data.Frames, 2)
	assert.Equal(t, 0, data.Frames[0].F)
	assert.Equal(t, 1, data.Frames[1].F)
	assert.True(t, data.Frames[1].JP)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
