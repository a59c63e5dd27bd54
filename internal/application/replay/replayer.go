package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/haneulkim/ascent/internal/application/system"
)

// Replayer feeds recorded input back into the simulation tick by tick.
type Replayer struct {
	data  Data
	frame int
}

// NewReplayer creates a new replayer from recorded data
func NewReplayer(data Data) *Replayer {
	return &Replayer{data: data}
}

// Load reads recorded data from a file
func Load(filename string) (*Data, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data Data
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}

	return &data, nil
}

// Next returns the input for the current tick and advances.
func (r *Replayer) Next() (system.InputState, bool) {
	if r.frame >= len(r.data.Frames) {
		return system.InputState{}, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++

	return system.InputState{
		Left:         fi.L,
		Right:        fi.R,
		Jump:         fi.J,
		JumpPressed:  fi.JP,
		JumpReleased: fi.JR,
		Bank:         fi.B,
	}, true
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Seed returns the seed used for the recording
func (r *Replayer) Seed() int64 {
	return r.data.Seed
}

// Reset rewinds the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

// Recorder captures the live input stream for later playback.
type Recorder struct {
	data Data
}

// NewRecorder starts a recording for the given seed and stage.
func NewRecorder(seed int64, stage string) *Recorder {
	return &Recorder{
		data: Data{
			Version:   "1.0",
			Seed:      seed,
			Stage:     stage,
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]FrameInput, 0, 60*60),
		},
	}
}

// Record appends one tick of input.
func (r *Recorder) Record(input system.InputState) {
	r.data.Frames = append(r.data.Frames, FrameInput{
		F:  len(r.data.Frames),
		L:  input.Left,
		R:  input.Right,
		J:  input.Jump,
		JP: input.JumpPressed,
		JR: input.JumpReleased,
		B:  input.Bank,
	})
}

// FrameCount returns how many ticks have been recorded.
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// Save writes the recording as JSON.
func (r *Recorder) Save(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	if err := encoder.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}
	return nil
}
