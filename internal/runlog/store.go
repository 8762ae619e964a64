// Package runlog stores the history of puzzle runs in SQLite.
package runlog

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// Run outcomes.
const (
	OutcomeSolved   = "solved"
	OutcomeUnsolved = "unsolved"
	OutcomeError    = "error"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id          TEXT PRIMARY KEY,
	day         INTEGER NOT NULL,
	part        INTEGER NOT NULL,
	answer      TEXT NOT NULL DEFAULT '',
	outcome     TEXT NOT NULL CHECK (outcome IN ('solved', 'unsolved', 'error')),
	duration_us INTEGER NOT NULL,
	created_at  DATETIME NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_runs_day ON runs(day);
`

// Run is one recorded execution of a puzzle part.
type Run struct {
	ID        string
	Day       int
	Part      int
	Answer    string
	Outcome   string
	Duration  time.Duration
	CreatedAt time.Time
}

// Store persists runs in a SQLite database file.
type Store struct {
	db *sql.DB
}

// Open opens the run log at path, creating the file and its parent
// directory if needed.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create run log directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// NewRunID returns a time-ordered unique run identifier.
func NewRunID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// Record persists one run.
func (s *Store) Record(ctx context.Context, run *Run) error {
	createdAt := run.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO runs (id, day, part, answer, outcome, duration_us, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		run.ID, run.Day, run.Part, run.Answer, run.Outcome, run.Duration.Microseconds(), createdAt,
	)
	if err != nil {
		return fmt.Errorf("failed to record run: %w", err)
	}
	return nil
}

// List returns recorded runs, newest first. A day of zero or less lists
// runs for every day.
func (s *Store) List(ctx context.Context, day int) ([]Run, error) {
	query := "SELECT id, day, part, answer, outcome, duration_us, created_at FROM runs"
	var args []any
	if day > 0 {
		query += " WHERE day = ?"
		args = append(args, day)
	}
	query += " ORDER BY created_at DESC, part DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var durationUS int64
		if err := rows.Scan(&r.ID, &r.Day, &r.Part, &r.Answer, &r.Outcome, &durationUS, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		r.Duration = time.Duration(durationUS) * time.Microsecond
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
