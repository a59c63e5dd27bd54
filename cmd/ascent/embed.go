package main

import (
	"embed"
	"io/fs"

	"github.com/haneulkim/ascent/internal/infrastructure/config"
)

//go:embed configs
var embeddedConfigs embed.FS

// loadConfigs resolves the config source: --config points at a directory on
// disk, otherwise the embedded set ships with the binary.
func loadConfigs() (*config.GameConfig, error) {
	if flagConfigDir != "" {
		return config.NewLoader(flagConfigDir).LoadAll()
	}
	sub, err := fs.Sub(embeddedConfigs, "configs")
	if err != nil {
		return nil, err
	}
	return config.NewFSLoader(sub).LoadAll()
}
