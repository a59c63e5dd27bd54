package config

// StageConfig is the root config for stage.json: the demo tower the
// simulation collides against. Procedural layout generation lives outside
// the core; this file only describes static geometry.
type StageConfig struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Corridor    CorridorConfig   `json:"corridor"`
	PlayerSpawn PositionConfig   `json:"playerSpawn"`
	FloorY      float64          `json:"floorY"`
	Platforms   []PlatformConfig `json:"platforms"`
}

type CorridorConfig struct {
	Width         float64 `json:"width"`
	WallThickness float64 `json:"wallThickness"`
}

type PositionConfig struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// PlatformConfig describes one ledge. Y decreases upward; platforms must be
// listed bottom-to-top so their index doubles as the skip counter.
type PlatformConfig struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}
