// Package storage provides SQLite-based persistence for finished runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/tilerush/tilerush/internal/config"
	"github.com/tilerush/tilerush/internal/sim"
)

// Store manages the SQLite database connection for run persistence.
type Store struct {
	db *sql.DB
}

// RunRecord is a single persisted run. Score is the number of targets
// hit; DurationMS is the run timer in milliseconds (for classic runs the
// timer starts at the first tap, so a full clear's duration is the
// player's completion time).
type RunRecord struct {
	ID         int64
	Mode       config.Mode
	Score      int
	DurationMS int64
	Outcome    string
	CreatedAt  time.Time
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
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			mode TEXT NOT NULL,
			score INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			outcome TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_mode ON runs(mode);
		CREATE INDEX IF NOT EXISTS idx_runs_top_score ON runs(mode, score DESC);
		CREATE INDEX IF NOT EXISTS idx_runs_top_time ON runs(mode, outcome, duration_ms ASC);
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

// SaveRun records a finished run. Returns the ID of the inserted record.
func (s *Store) SaveRun(mode config.Mode, score int, durationMS int64, outcome sim.Outcome) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO runs (mode, score, duration_ms, outcome) VALUES (?, ?, ?, ?)",
		string(mode), score, durationMS, outcomeCode(outcome),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopRuns retrieves the top N runs for the given mode. Endless runs rank
// by score descending; classic runs rank finished clears by completion
// time ascending, so only full clears appear on the classic board.
func (s *Store) TopRuns(mode config.Mode, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	query := `SELECT id, mode, score, duration_ms, outcome, created_at
		 FROM runs
		 WHERE mode = ?
		 ORDER BY score DESC, duration_ms ASC
		 LIMIT ?`
	args := []any{string(mode), limit}
	if mode == config.ModeClassic {
		query = `SELECT id, mode, score, duration_ms, outcome, created_at
			 FROM runs
			 WHERE mode = ? AND outcome = ?
			 ORDER BY duration_ms ASC
			 LIMIT ?`
		args = []any{string(mode), outcomeFinished, limit}
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var records []RunRecord
	for rows.Next() {
		rec, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// BestScore returns the highest score for the given mode.
// Returns 0 if no runs exist.
func (s *Store) BestScore(mode config.Mode) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM runs WHERE mode = ?",
		string(mode),
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// BestTime returns the fastest full-clear duration in milliseconds for
// classic runs. Returns 0 if no finished run exists.
func (s *Store) BestTime(mode config.Mode) (int64, error) {
	var ms sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MIN(duration_ms) FROM runs WHERE mode = ? AND outcome = ?",
		string(mode), outcomeFinished,
	).Scan(&ms)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best time: %w", err)
	}

	if !ms.Valid {
		return 0, nil
	}
	return ms.Int64, nil
}

// ModeStats contains aggregated statistics for one mode.
type ModeStats struct {
	Mode       config.Mode
	RunsCount  int
	BestScore  int
	AvgScore   float64
	LastPlayed time.Time
}

// Stats retrieves aggregated statistics for the given mode.
func (s *Store) Stats(mode config.Mode) (*ModeStats, error) {
	stats := &ModeStats{Mode: mode}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0)
		 FROM runs WHERE mode = ?`,
		string(mode),
	).Scan(&stats.RunsCount, &stats.BestScore, &stats.AvgScore)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM runs WHERE mode = ? ORDER BY created_at DESC LIMIT 1`,
		string(mode),
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTimestamp(lastPlayed)
	}

	return stats, nil
}

// ClearRuns deletes all runs for the given mode.
func (s *Store) ClearRuns(mode config.Mode) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE mode = ?", string(mode))
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

func scanRun(rows *sql.Rows) (RunRecord, error) {
	var rec RunRecord
	var mode string
	var createdAt any
	if err := rows.Scan(&rec.ID, &mode, &rec.Score, &rec.DurationMS, &rec.Outcome, &createdAt); err != nil {
		return RunRecord{}, fmt.Errorf("storage: cannot scan row: %w", err)
	}
	rec.Mode = config.Mode(mode)
	rec.CreatedAt = parseTimestamp(createdAt)
	return rec, nil
}

// Stable outcome codes for the outcome column. These are storage keys,
// not display strings.
const (
	outcomeFinished = "finished"
	outcomeGameOver = "game_over"
)

// outcomeCode flattens an outcome into its persisted form, e.g.
// "finished" or "game_over:wrong_tap".
func outcomeCode(o sim.Outcome) string {
	switch o.Kind {
	case sim.OutcomeFinished:
		return outcomeFinished
	case sim.OutcomeGameOver:
		if o.Reason != "" {
			return outcomeGameOver + ":" + string(o.Reason)
		}
		return outcomeGameOver
	default:
		return "running"
	}
}

// parseTimestamp handles both time.Time and string values; the sqlite
// driver returns either depending on how the column was written.
func parseTimestamp(v any) time.Time {
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
