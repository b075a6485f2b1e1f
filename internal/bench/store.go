package bench

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Store persists bench Results to a local SQLite database, the same way
// crossgen's old clue cache persisted LLM responses.
type Store struct {
	db *sql.DB
}

// OpenStore opens (creating if necessary) the run log at path.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open bench database: %w", err)
	}

	const schema = `
	CREATE TABLE IF NOT EXISTS runs (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		case_name   TEXT NOT NULL,
		geometry    TEXT NOT NULL,
		outcome     TEXT NOT NULL,
		duration_ms INTEGER NOT NULL,
		vars        INTEGER NOT NULL,
		clauses     INTEGER NOT NULL,
		quality     INTEGER NOT NULL,
		err         TEXT NOT NULL DEFAULT '',
		created_at  DATETIME DEFAULT CURRENT_TIMESTAMP
	);`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create runs table: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record inserts one Result as a new run.
func (s *Store) Record(r Result) error {
	_, err := s.db.Exec(
		`INSERT INTO runs (case_name, geometry, outcome, duration_ms, vars, clauses, quality, err)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Case, r.Geometry, r.Outcome, r.DurationMS, r.Vars, r.Clauses, r.Quality, r.Err,
	)
	return err
}

// RecordAll records every result in results, stopping at the first write
// failure.
func (s *Store) RecordAll(results []Result) error {
	for _, r := range results {
		if err := s.Record(r); err != nil {
			return err
		}
	}
	return nil
}

// OutcomeCount is one row of the "runs grouped by outcome" report.
type OutcomeCount struct {
	Outcome string
	Count   int
}

// CountsByOutcome mirrors the old clue-cache-by-difficulty breakdown:
// how many runs landed in each outcome bucket.
func (s *Store) CountsByOutcome() ([]OutcomeCount, error) {
	rows, err := s.db.Query(`
		SELECT outcome, COUNT(*) AS count
		FROM runs
		GROUP BY outcome
		ORDER BY count DESC, outcome
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs by outcome: %w", err)
	}
	defer rows.Close()

	var out []OutcomeCount
	for rows.Next() {
		var oc OutcomeCount
		if err := rows.Scan(&oc.Outcome, &oc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		out = append(out, oc)
	}
	return out, rows.Err()
}

// SlowestRuns returns the slowest limit runs, by wall-clock duration.
func (s *Store) SlowestRuns(limit int) ([]Result, error) {
	return s.queryOrderedByDuration("DESC", limit)
}

// FastestRuns returns the fastest limit runs, by wall-clock duration.
func (s *Store) FastestRuns(limit int) ([]Result, error) {
	return s.queryOrderedByDuration("ASC", limit)
}

func (s *Store) queryOrderedByDuration(direction string, limit int) ([]Result, error) {
	query := fmt.Sprintf(`
		SELECT case_name, geometry, outcome, duration_ms, vars, clauses, quality, err
		FROM runs
		ORDER BY duration_ms %s
		LIMIT ?
	`, direction)

	rows, err := s.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var out []Result
	for rows.Next() {
		var r Result
		if err := rows.Scan(&r.Case, &r.Geometry, &r.Outcome, &r.DurationMS, &r.Vars, &r.Clauses, &r.Quality, &r.Err); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
