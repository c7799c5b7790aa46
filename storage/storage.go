// Package storage provides SQLite-backed persistence for solve runs.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/pflow-xyz/go-sudoku/solvelog"
	"github.com/pflow-xyz/go-sudoku/solver"
)

// ErrNotFound is returned when a run ID does not exist.
var ErrNotFound = errors.New("run not found")

// Store handles SQLite database operations for solve run logging.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) a run database at the given path. Use ":memory:"
// for an ephemeral database.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// SQLite allows one writer; a single pooled connection also keeps
	// ":memory:" databases from splitting across connections.
	db.SetMaxOpenConns(1)

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		puzzle TEXT NOT NULL,
		result TEXT NOT NULL,
		status TEXT NOT NULL,
		guesses INTEGER NOT NULL DEFAULT 0,
		passes INTEGER NOT NULL DEFAULT 0,
		duration_ns INTEGER NOT NULL DEFAULT 0,
		solved_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_runs_status ON runs(status);
	CREATE INDEX IF NOT EXISTS idx_runs_solved_at ON runs(solved_at);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying database connection for custom queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// SaveRun inserts one solve run record.
func (s *Store) SaveRun(rec solvelog.Record) error {
	_, err := s.db.Exec(
		`INSERT INTO runs (id, puzzle, result, status, guesses, passes, duration_ns, solved_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.RunID, rec.Puzzle, rec.Result, rec.Status,
		rec.Guesses, rec.Passes, int64(rec.Duration),
		rec.SolvedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

// GetRun retrieves a run by ID.
func (s *Store) GetRun(id string) (solvelog.Record, error) {
	row := s.db.QueryRow(
		`SELECT id, puzzle, result, status, guesses, passes, duration_ns, solved_at
		 FROM runs WHERE id = ?`, id,
	)
	rec, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return rec, ErrNotFound
	}
	return rec, err
}

// ListRuns returns the most recent runs, newest first. A limit of 0 returns
// everything.
func (s *Store) ListRuns(limit int) ([]solvelog.Record, error) {
	query := `SELECT id, puzzle, result, status, guesses, passes, duration_ns, solved_at
	 FROM runs ORDER BY solved_at DESC`
	var (
		rows *sql.Rows
		err  error
	)
	if limit > 0 {
		rows, err = s.db.Query(query+` LIMIT ?`, limit)
	} else {
		rows, err = s.db.Query(query)
	}
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var records []solvelog.Record
	for rows.Next() {
		rec, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (solvelog.Record, error) {
	var (
		rec        solvelog.Record
		durationNS int64
		solvedAt   string
	)
	err := row.Scan(&rec.RunID, &rec.Puzzle, &rec.Result, &rec.Status,
		&rec.Guesses, &rec.Passes, &durationNS, &solvedAt)
	if err != nil {
		return rec, err
	}
	rec.Duration = time.Duration(durationNS)
	rec.SolvedAt, err = time.Parse(time.RFC3339Nano, solvedAt)
	if err != nil {
		return rec, fmt.Errorf("invalid solved_at %q: %w", solvedAt, err)
	}
	return rec, nil
}

// Stats aggregates the run table.
type Stats struct {
	Runs         int
	Solved       int
	Unsolvable   int
	TotalGuesses int64
	AvgDuration  time.Duration
}

// Stats computes aggregate statistics over all stored runs.
func (s *Store) Stats() (Stats, error) {
	var (
		st      Stats
		totalNS sql.NullInt64
		guesses sql.NullInt64
	)
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		 COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0),
		 COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0),
		 SUM(guesses), SUM(duration_ns)
		 FROM runs`,
		solver.StatusSolved.String(), solver.StatusUnsolvable.String(),
	).Scan(&st.Runs, &st.Solved, &st.Unsolvable, &guesses, &totalNS)
	if err != nil {
		return st, fmt.Errorf("query stats: %w", err)
	}
	st.TotalGuesses = guesses.Int64
	if st.Runs > 0 {
		st.AvgDuration = time.Duration(totalNS.Int64 / int64(st.Runs))
	}
	return st, nil
}
