package config

// Preset is a named tuning overlay. Sections left nil keep the base values;
// Apply builds a complete new Config, so the swap into the Store is always
// wholesale, never a partial in-place patch.
type Preset struct {
	Name     string          `yaml:"name"`
	Physics  *PhysicsConfig  `yaml:"physics"`
	Movement *MovementConfig `yaml:"movement"`
	Jump     *JumpConfig     `yaml:"jump"`
	Wall     *WallConfig     `yaml:"wall"`
}

type presetFile struct {
	Presets []Preset `yaml:"presets"`
}

// Apply returns a new Config with the preset's sections replacing the
// base's. The base is not modified.
func (p Preset) Apply(base Config) Config {
	next := base
	if p.Physics != nil {
		next.Physics = *p.Physics
	}
	if p.Movement != nil {
		next.Movement = *p.Movement
	}
	if p.Jump != nil {
		next.Jump = *p.Jump
	}
	if p.Wall != nil {
		next.Wall = *p.Wall
	}
	return next
}
