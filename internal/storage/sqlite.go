// Package storage provides SQLite-based persistence for level
// completion records. Uses the pure-Go modernc.org/sqlite driver to
// avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for progress persistence.
type Store struct {
	db *sql.DB
}

// Completion is one solved-level record.
type Completion struct {
	LevelID  string
	SolvedAt time.Time
	Attempts int
}

// Open creates or opens a SQLite database at the given path. It
// creates parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
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
		CREATE TABLE IF NOT EXISTS completions (
			level_id TEXT PRIMARY KEY,
			solved_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			attempts INTEGER NOT NULL DEFAULT 0
		);
		CREATE TABLE IF NOT EXISTS attempts (
			level_id TEXT PRIMARY KEY,
			count INTEGER NOT NULL DEFAULT 0
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

// RecordAttempt bumps the attempt counter for a level. Called on every
// failed movement evaluation.
func (s *Store) RecordAttempt(levelID string) error {
	_, err := s.db.Exec(
		`INSERT INTO attempts (level_id, count) VALUES (?, 1)
		 ON CONFLICT(level_id) DO UPDATE SET count = count + 1`,
		levelID,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot record attempt: %w", err)
	}
	return nil
}

// MarkCompleted records a level as solved. The first completion wins;
// replays do not overwrite the original timestamp.
func (s *Store) MarkCompleted(levelID string) error {
	var attempts int
	err := s.db.QueryRow("SELECT count FROM attempts WHERE level_id = ?", levelID).Scan(&attempts)
	if err != nil && err != sql.ErrNoRows {
		return fmt.Errorf("storage: cannot read attempts: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT INTO completions (level_id, attempts) VALUES (?, ?)
		 ON CONFLICT(level_id) DO NOTHING`,
		levelID, attempts+1,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot mark completion: %w", err)
	}
	return nil
}

// IsCompleted reports whether the level has been solved.
func (s *Store) IsCompleted(levelID string) (bool, error) {
	var one int
	err := s.db.QueryRow("SELECT 1 FROM completions WHERE level_id = ?", levelID).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("storage: cannot query completion: %w", err)
	}
	return true, nil
}

// Completions returns all solved-level records ordered by level ID.
func (s *Store) Completions() ([]Completion, error) {
	rows, err := s.db.Query(
		`SELECT level_id, solved_at, attempts FROM completions ORDER BY level_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query completions: %w", err)
	}
	defer rows.Close()

	var out []Completion
	for rows.Next() {
		var c Completion
		var solvedAt any
		if err := rows.Scan(&c.LevelID, &solvedAt, &c.Attempts); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		// Parse the datetime - handle both time.Time and string
		switch v := solvedAt.(type) {
		case time.Time:
			c.SolvedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				c.SolvedAt = parsed
			}
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}

// CompletedCount returns the total number of solved levels.
func (s *Store) CompletedCount() (int, error) {
	var n int
	err := s.db.QueryRow("SELECT COUNT(*) FROM completions").Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count completions: %w", err)
	}
	return n, nil
}

// CompletedInPack returns how many levels with the given pack prefix
// have been solved.
func (s *Store) CompletedInPack(pack string) (int, error) {
	var n int
	err := s.db.QueryRow(
		"SELECT COUNT(*) FROM completions WHERE level_id LIKE ?",
		pack+"-%",
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count pack completions: %w", err)
	}
	return n, nil
}

// ClearProgress deletes all completion and attempt records.
func (s *Store) ClearProgress() error {
	if _, err := s.db.Exec("DELETE FROM completions"); err != nil {
		return fmt.Errorf("storage: cannot clear completions: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM attempts"); err != nil {
		return fmt.Errorf("storage: cannot clear attempts: %w", err)
	}
	return nil
}
