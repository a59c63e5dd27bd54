package replay

// FrameInput records input state for a single tick
type FrameInput struct {
	F  int  `json:"f"`            // Frame number
	L  bool `json:"l,omitempty"`  // Left
	R  bool `json:"r,omitempty"`  // Right
	J  bool `json:"j,omitempty"`  // Jump held
	JP bool `json:"jp,omitempty"` // JumpPressed
	JR bool `json:"jr,omitempty"` // JumpReleased
	B  bool `json:"b,omitempty"`  // Bank
}

// Data contains everything needed to replay a run: the input stream plus
// the seed and stage it was recorded against. Replays are bit-exact because
// the whole core runs off a logical tick clock.
type Data struct {
	Version   string       `json:"version"`
	Seed      int64        `json:"seed"`
	Stage     string       `json:"stage"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}
