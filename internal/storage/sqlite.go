// Package storage provides SQLite-based persistence for finished runs.
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

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// Run is one finished game.
type Run struct {
	ID        int64
	Ruleset   string // registry id, e.g. "dasher"
	Score     int
	Kills     int
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

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			ruleset TEXT NOT NULL,
			score INTEGER NOT NULL,
			kills INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(ruleset, score DESC);

		CREATE TABLE IF NOT EXISTS best (
			ruleset TEXT PRIMARY KEY,
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

// SaveRun records a finished run and returns its ID.
func (s *Store) SaveRun(r Run) (int64, error) {
	if r.Score < 0 {
		return 0, fmt.Errorf("storage: negative score %d", r.Score)
	}
	result, err := s.db.Exec(
		"INSERT INTO runs (ruleset, score, kills, duration_ms) VALUES (?, ?, ?, ?)",
		r.Ruleset, r.Score, r.Kills, r.Duration.Milliseconds(),
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

// SaveScore records a run known only by its score.
func (s *Store) SaveScore(ruleset string, score int) (int64, error) {
	return s.SaveRun(Run{Ruleset: ruleset, Score: score})
}

// TopRuns retrieves the best runs for ruleset, highest score first.
// Ties go to the earlier run.
func (s *Store) TopRuns(ruleset string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, ruleset, score, kills, duration_ms, created_at
		 FROM runs
		 WHERE ruleset = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		ruleset, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var ms int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Ruleset, &r.Score, &r.Kills, &ms, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Duration = time.Duration(ms) * time.Millisecond
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// Best returns the high score for ruleset: the larger of the stored best and
// the top recorded run.
func (s *Store) Best(ruleset string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		`SELECT MAX(score) FROM (
			SELECT score FROM best WHERE ruleset = ?
			UNION ALL
			SELECT score FROM runs WHERE ruleset = ?
		 )`,
		ruleset, ruleset,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// SaveBest stores score as ruleset's best unless a higher one is stored.
func (s *Store) SaveBest(ruleset string, score int) error {
	if score < 0 {
		return fmt.Errorf("storage: negative score %d", score)
	}
	_, err := s.db.Exec(
		`INSERT INTO best (ruleset, score) VALUES (?, ?)
		 ON CONFLICT(ruleset) DO UPDATE
		 SET score = excluded.score, updated_at = CURRENT_TIMESTAMP
		 WHERE excluded.score > best.score`,
		ruleset, score,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save best score: %w", err)
	}
	return nil
}

// ClearRuns deletes all runs and the stored best for ruleset.
func (s *Store) ClearRuns(ruleset string) error {
	for _, q := range []string{
		"DELETE FROM runs WHERE ruleset = ?",
		"DELETE FROM best WHERE ruleset = ?",
	} {
		if _, err := s.db.Exec(q, ruleset); err != nil {
			return fmt.Errorf("storage: cannot clear runs: %w", err)
		}
	}
	return nil
}

// Stats contains aggregated statistics for a ruleset.
type Stats struct {
	Ruleset    string
	Runs       int
	HighScore  int
	AvgScore   float64
	TotalKills int64
	Longest    time.Duration
	LastPlayed time.Time
}

// RulesetStats aggregates every run of ruleset.
func (s *Store) RulesetStats(ruleset string) (*Stats, error) {
	st := &Stats{Ruleset: ruleset}
	var longest int64
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(SUM(kills), 0), COALESCE(MAX(duration_ms), 0)
		 FROM runs WHERE ruleset = ?`,
		ruleset,
	).Scan(&st.Runs, &st.HighScore, &st.AvgScore, &st.TotalKills, &longest)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	st.Longest = time.Duration(longest) * time.Millisecond

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM runs WHERE ruleset = ? ORDER BY id DESC LIMIT 1`,
		ruleset,
	).Scan(&lastPlayed)
	switch {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	default:
		st.LastPlayed = parseTime(lastPlayed)
	}
	return st, nil
}

// parseTime handles both time.Time and the driver's text form.
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
