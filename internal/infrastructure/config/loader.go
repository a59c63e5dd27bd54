package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// GameConfig holds all loaded configurations
type GameConfig struct {
	Physics *Config
	Stage   *StageConfig
	Presets []Preset
}

// Loader loads game configuration from JSON/YAML files using fs.FS
type Loader struct {
	fsys fs.FS
}

// NewLoader creates a new config loader from a filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{fsys: os.DirFS(basePath)}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// LoadPhysics loads physics.json
func (l *Loader) LoadPhysics() (*Config, error) {
	data, err := fs.ReadFile(l.fsys, "physics.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read physics.json: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse physics.json: %w", err)
	}

	return &cfg, nil
}

// LoadStage loads stage.json
func (l *Loader) LoadStage() (*StageConfig, error) {
	data, err := fs.ReadFile(l.fsys, "stage.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read stage.json: %w", err)
	}

	var cfg StageConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse stage.json: %w", err)
	}

	return &cfg, nil
}

// LoadPresets loads presets.yaml. A missing file is not an error; the game
// simply runs with the base tuning.
func (l *Loader) LoadPresets() ([]Preset, error) {
	data, err := fs.ReadFile(l.fsys, "presets.yaml")
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read presets.yaml: %w", err)
	}

	var file presetFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse presets.yaml: %w", err)
	}

	return file.Presets, nil
}

// LoadAll loads the physics config, stage layout and tuning presets.
func (l *Loader) LoadAll() (*GameConfig, error) {
	physics, err := l.LoadPhysics()
	if err != nil {
		return nil, err
	}

	stage, err := l.LoadStage()
	if err != nil {
		return nil, err
	}

	presets, err := l.LoadPresets()
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Physics: physics,
		Stage:   stage,
		Presets: presets,
	}, nil
}
