package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"eca-density/internal/eval"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    encoded_rule TEXT NOT NULL,
    n INTEGER NOT NULL,
    v INTEGER NOT NULL,
    m INTEGER NOT NULL,
    d REAL NOT NULL,
    s INTEGER NOT NULL,
    seed_multiplier TEXT NOT NULL,
    seed_offset TEXT NOT NULL,
    accuracy REAL NOT NULL,
    mean_convergence_time REAL NOT NULL,
    started_at TEXT NOT NULL,
    elapsed_ms INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_runs_name ON runs(name);

CREATE TABLE IF NOT EXISTS trials (
    run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
    idx INTEGER NOT NULL,
    initial_configuration TEXT NOT NULL,
    initial_density REAL NOT NULL,
    iterations INTEGER NOT NULL,
    converged_to_empty INTEGER NOT NULL,
    converged_to_full INTEGER NOT NULL,
    correct INTEGER NOT NULL,
    PRIMARY KEY (run_id, idx)
);
`

// RunRow is a stored run without its trials.
type RunRow struct {
	ID                  string
	Name                string
	EncodedRule         string
	Accuracy            float64
	MeanConvergenceTime float64
	Trials              int
	Seeds               eval.SeedSchedule
	StartedAt           time.Time
}

// SQLiteStore keeps every run, so repeated evaluations of a rule can be
// compared over time.
type SQLiteStore struct {
	mu sync.Mutex
	db *sql.DB
}

// NewSQLiteStore opens (creating if needed) the database at path.
func NewSQLiteStore(ctx context.Context, path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path+"?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Save inserts the run and its trials in one transaction.
func (s *SQLiteStore) Save(ctx context.Context, r *eval.Report) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs (id, name, encoded_rule, n, v, m, d, s, seed_multiplier, seed_offset,
			accuracy, mean_convergence_time, started_at, elapsed_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.RunID, r.Name, r.Fingerprint,
		r.Params.Size, r.Arity, r.Params.MaxSteps, r.Params.Threshold, r.Params.Trials,
		strconv.FormatUint(r.Params.Seeds.Multiplier, 10), strconv.FormatUint(r.Params.Seeds.Offset, 10),
		r.Summary.Accuracy, r.Summary.MeanConvergenceTime,
		r.Started.UTC().Format(time.RFC3339Nano), r.Elapsed.Milliseconds())
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO trials (run_id, idx, initial_configuration, initial_density, iterations,
			converged_to_empty, converged_to_full, correct)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare trial insert: %w", err)
	}
	defer stmt.Close()

	for i, t := range r.Trials {
		_, err := stmt.ExecContext(ctx, r.RunID, i, t.InitialConfiguration, t.InitialDensity,
			t.Iterations, t.ConvergedToEmpty, t.ConvergedToFull, t.Correct)
		if err != nil {
			return fmt.Errorf("failed to insert trial %d: %w", i, err)
		}
	}
	return tx.Commit()
}

// Runs lists stored runs, newest first.
func (s *SQLiteStore) Runs(ctx context.Context) ([]RunRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, encoded_rule, accuracy, mean_convergence_time, s,
			seed_multiplier, seed_offset, started_at
		FROM runs ORDER BY started_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var out []RunRow
	for rows.Next() {
		var row RunRow
		var multiplier, offset, started string
		if err := rows.Scan(&row.ID, &row.Name, &row.EncodedRule, &row.Accuracy,
			&row.MeanConvergenceTime, &row.Trials, &multiplier, &offset, &started); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		var err error
		if row.Seeds.Multiplier, err = strconv.ParseUint(multiplier, 10, 64); err != nil {
			return nil, fmt.Errorf("run %s: bad seed_multiplier %q: %w", row.ID, multiplier, err)
		}
		if row.Seeds.Offset, err = strconv.ParseUint(offset, 10, 64); err != nil {
			return nil, fmt.Errorf("run %s: bad seed_offset %q: %w", row.ID, offset, err)
		}
		if row.StartedAt, err = time.Parse(time.RFC3339Nano, started); err != nil {
			return nil, fmt.Errorf("run %s: bad started_at %q: %w", row.ID, started, err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// TrialCount returns how many trials are stored for a run.
func (s *SQLiteStore) TrialCount(ctx context.Context, runID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM trials WHERE run_id = ?`, runID).Scan(&n)
	return n, err
}

// Close releases the database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
