// Package storage persists the best score in SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for the high-score cell.
type Store struct {
	db *sql.DB
}

// HighScoreEntry is one stored best score.
type HighScoreEntry struct {
	Key       string
	Score     int
	UpdatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
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
		CREATE TABLE IF NOT EXISTS high_scores (
			key TEXT PRIMARY KEY,
			score INTEGER NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
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

// HighScore returns the stored score for key, or 0 if none is stored.
func (s *Store) HighScore(key string) (int, error) {
	var score int
	err := s.db.QueryRow("SELECT score FROM high_scores WHERE key = ?", key).Scan(&score)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	return score, nil
}

// SetHighScore stores score under key, replacing any previous value.
func (s *Store) SetHighScore(key string, score int) error {
	_, err := s.db.Exec(
		`INSERT INTO high_scores (key, score, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET score = excluded.score, updated_at = excluded.updated_at`,
		key, score,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save high score: %w", err)
	}
	return nil
}

// Entry returns the stored record for key. ok is false when nothing is stored.
func (s *Store) Entry(key string) (entry HighScoreEntry, ok bool, err error) {
	var updatedAt any
	err = s.db.QueryRow(
		"SELECT key, score, updated_at FROM high_scores WHERE key = ?", key,
	).Scan(&entry.Key, &entry.Score, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return HighScoreEntry{Key: key}, false, nil
	}
	if err != nil {
		return HighScoreEntry{}, false, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	entry.UpdatedAt = parseTime(updatedAt)
	return entry, true, nil
}

// ClearHighScore deletes the stored score for key.
func (s *Store) ClearHighScore(key string) error {
	_, err := s.db.Exec("DELETE FROM high_scores WHERE key = ?", key)
	if err != nil {
		return fmt.Errorf("storage: cannot clear high score: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
