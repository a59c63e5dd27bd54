// Package storage provides SQLite-based persistence for run results.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for the run ledger.
type Store struct {
	db *sql.DB
}

// RunEntry is one finished climb.
type RunEntry struct {
	ID         int64
	Height     float64
	Banked     int
	Total      int
	BestCombo  int
	DurationMS int
	CreatedAt  time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			height REAL NOT NULL,
			banked INTEGER NOT NULL,
			total INTEGER NOT NULL,
			best_combo INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_total ON runs(total DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a finished run and returns the inserted row's ID.
func (s *Store) SaveRun(entry RunEntry) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO runs (height, banked, total, best_combo, duration_ms) VALUES (?, ?, ?, ?, ?)`,
		entry.Height, entry.Banked, entry.Total, entry.BestCombo, entry.DurationMS,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}
	return res.LastInsertId()
}

// TopRuns returns the best runs by total score, highest first.
func (s *Store) TopRuns(limit int) ([]RunEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, height, banked, total, best_combo, duration_ms, created_at
		 FROM runs ORDER BY total DESC, created_at ASC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		if err := rows.Scan(&e.ID, &e.Height, &e.Banked, &e.Total, &e.BestCombo, &e.DurationMS, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan run: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
