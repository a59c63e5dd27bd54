package config

import "sync/atomic"

// Store holds the live Config as an atomically swappable snapshot. The game
// loop reads exactly one snapshot at the top of each tick, so a preset swap
// (or any live tuning write) takes effect on the next tick and can never be
// observed half-applied.
type Store struct {
	current atomic.Pointer[Config]
}

// NewStore creates a store seeded with the given config.
func NewStore(cfg Config) *Store {
	s := &Store{}
	s.current.Store(&cfg)
	return s
}

// Snapshot returns the current immutable config. Callers must not mutate it.
func (s *Store) Snapshot() *Config {
	return s.current.Load()
}

// Swap replaces the whole config. The copy keeps later edits to cfg by the
// caller from leaking into the published snapshot.
func (s *Store) Swap(cfg Config) {
	s.current.Store(&cfg)
}
