// Package storage provides SQLite-based persistence for solve records.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/okigiri/fifteen/internal/puzzle"
)

// Store manages the SQLite database connection for solve persistence.
type Store struct {
	db *sql.DB
}

// SolveEntry is one completed solve: which board, from which seed, how
// many moves, and how long it took.
type SolveEntry struct {
	ID        int64
	Shape     string // "WxH", e.g. "4x4"
	Seed      string // base64-encoded seed, reproduces the board exactly
	Moves     int
	Duration  time.Duration
	CreatedAt time.Time
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
		CREATE TABLE IF NOT EXISTS solves (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			shape TEXT NOT NULL,
			seed TEXT NOT NULL,
			moves INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_solves_shape ON solves(shape);
		CREATE INDEX IF NOT EXISTS idx_solves_best ON solves(shape, duration_ms ASC);
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

// SaveSolve records a completed solve. Returns the ID of the inserted row.
func (s *Store) SaveSolve(shape puzzle.Shape, seed puzzle.Seed, moves int, took time.Duration) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO solves (shape, seed, moves, duration_ms) VALUES (?, ?, ?, ?)",
		shape.String(), seed.String(), moves, took.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save solve: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// BestTimes retrieves the fastest N solves for the given shape,
// ordered by duration ascending.
func (s *Store) BestTimes(shape puzzle.Shape, limit int) ([]SolveEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, shape, seed, moves, duration_ms, created_at
		 FROM solves
		 WHERE shape = ?
		 ORDER BY duration_ms ASC
		 LIMIT ?`,
		shape.String(), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query solves: %w", err)
	}
	defer rows.Close()

	return scanSolves(rows)
}

// RecentSolves retrieves the most recent solves across all shapes.
func (s *Store) RecentSolves(limit int) ([]SolveEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, shape, seed, moves, duration_ms, created_at
		 FROM solves
		 ORDER BY created_at DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query solves: %w", err)
	}
	defer rows.Close()

	return scanSolves(rows)
}

// BestTime returns the fastest solve duration for the given shape.
// The second return is false when no solves exist.
func (s *Store) BestTime(shape puzzle.Shape) (time.Duration, bool, error) {
	var ms sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MIN(duration_ms) FROM solves WHERE shape = ?",
		shape.String(),
	).Scan(&ms)
	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot query best time: %w", err)
	}
	if !ms.Valid {
		return 0, false, nil
	}
	return time.Duration(ms.Int64) * time.Millisecond, true, nil
}

// ClearSolves deletes all solves for the given shape.
func (s *Store) ClearSolves(shape puzzle.Shape) error {
	if _, err := s.db.Exec("DELETE FROM solves WHERE shape = ?", shape.String()); err != nil {
		return fmt.Errorf("storage: cannot clear solves: %w", err)
	}
	return nil
}

// ShapeStats contains aggregated statistics for one board shape.
type ShapeStats struct {
	Shape      string
	Solves     int
	BestTime   time.Duration
	AvgTime    time.Duration
	LastSolved time.Time
}

// AllShapeStats retrieves statistics for every shape that has been solved.
func (s *Store) AllShapeStats() (map[string]*ShapeStats, error) {
	rows, err := s.db.Query(
		`SELECT shape, COUNT(*), MIN(duration_ms), AVG(duration_ms), MAX(created_at)
		 FROM solves
		 GROUP BY shape`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get shape stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*ShapeStats)
	for rows.Next() {
		var st ShapeStats
		var bestMs int64
		var avgMs float64
		var lastSolved any
		if err := rows.Scan(&st.Shape, &st.Solves, &bestMs, &avgMs, &lastSolved); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.BestTime = time.Duration(bestMs) * time.Millisecond
		st.AvgTime = time.Duration(avgMs) * time.Millisecond
		st.LastSolved = parseDatetime(lastSolved)
		stats[st.Shape] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

func scanSolves(rows *sql.Rows) ([]SolveEntry, error) {
	var entries []SolveEntry
	for rows.Next() {
		var e SolveEntry
		var ms int64
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Shape, &e.Seed, &e.Moves, &ms, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Duration = time.Duration(ms) * time.Millisecond
		e.CreatedAt = parseDatetime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// parseDatetime handles the driver returning either time.Time or string.
func parseDatetime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
