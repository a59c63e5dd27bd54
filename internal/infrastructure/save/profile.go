// Package save persists the local player profile (lifetime bests) through
// the platform's standard game-data location.
package save

import (
	"encoding/json"
	"fmt"

	"github.com/quasilyte/gdata"
)

const profileItem = "profile"

// Profile is the data stored on disk between sessions.
type Profile struct {
	BestHeight    float64 `json:"bestHeight"`
	BestTotal     int     `json:"bestTotal"`
	LifetimeBank  int     `json:"lifetimeBank"`
	RunsCompleted int     `json:"runsCompleted"`
}

// Manager loads and saves the profile.
type Manager struct {
	m *gdata.Manager
}

// Open initializes profile storage for the app.
func Open(appName string) (*Manager, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("save: cannot open data manager: %w", err)
	}
	return &Manager{m: m}, nil
}

// Load reads the stored profile; a missing profile returns zero values.
func (mgr *Manager) Load() (Profile, error) {
	var p Profile
	data, err := mgr.m.LoadItem(profileItem)
	if err != nil {
		return p, fmt.Errorf("save: cannot load profile: %w", err)
	}
	if len(data) == 0 {
		return p, nil
	}
	if err := json.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("save: cannot parse profile: %w", err)
	}
	return p, nil
}

// Save writes the profile.
func (mgr *Manager) Save(p Profile) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("save: cannot serialize profile: %w", err)
	}
	if err := mgr.m.SaveItem(profileItem, data); err != nil {
		return fmt.Errorf("save: cannot save profile: %w", err)
	}
	return nil
}

// RecordRun folds one finished run into the profile and reports whether any
// lifetime best improved.
func (mgr *Manager) RecordRun(height float64, total, banked int) (Profile, bool, error) {
	p, err := mgr.Load()
	if err != nil {
		return p, false, err
	}

	improved := false
	if height > p.BestHeight {
		p.BestHeight = height
		improved = true
	}
	if total > p.BestTotal {
		p.BestTotal = total
		improved = true
	}
	p.LifetimeBank += banked
	p.RunsCompleted++

	if err := mgr.Save(p); err != nil {
		return p, improved, err
	}
	return p, improved, nil
}
