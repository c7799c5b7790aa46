// Package solvelog records the outcome of individual solve runs and reads
// and writes them as CSV or JSONL for later analysis.
package solvelog

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/pflow-xyz/go-sudoku/solver"
)

// Record captures one solve run.
type Record struct {
	RunID    string        `json:"run_id"`
	Puzzle   string        `json:"puzzle"`
	Result   string        `json:"result"`
	Status   string        `json:"status"`
	Guesses  int           `json:"guesses"`
	Passes   int           `json:"passes"`
	Duration time.Duration `json:"duration_ns"`
	SolvedAt time.Time     `json:"solved_at"`
}

// NewRecord builds a record from a solver result, minting a fresh run ID.
func NewRecord(res solver.Result) Record {
	return Record{
		RunID:    uuid.New().String(),
		Puzzle:   res.Input.String(),
		Result:   res.Solution.String(),
		Status:   res.Status.String(),
		Guesses:  res.Stats.Guesses,
		Passes:   res.Stats.Passes,
		Duration: res.Stats.Duration,
		SolvedAt: time.Now().UTC(),
	}
}

// Log is an in-memory collection of solve records.
type Log struct {
	Records []Record
}

// NewLog creates an empty log.
func NewLog() *Log {
	return &Log{Records: make([]Record, 0)}
}

// Add appends a record.
func (l *Log) Add(r Record) {
	l.Records = append(l.Records, r)
}

// SortByTime orders records by solve time, oldest first.
func (l *Log) SortByTime() {
	sort.Slice(l.Records, func(i, j int) bool {
		return l.Records[i].SolvedAt.Before(l.Records[j].SolvedAt)
	})
}

// Summary aggregates a log.
type Summary struct {
	Runs         int
	Solved       int
	Unsolvable   int
	TotalGuesses int
	AvgDuration  time.Duration
}

// Summary computes aggregate statistics over all records.
func (l *Log) Summary() Summary {
	s := Summary{Runs: len(l.Records)}
	var total time.Duration
	for _, r := range l.Records {
		switch r.Status {
		case solver.StatusSolved.String():
			s.Solved++
		case solver.StatusUnsolvable.String():
			s.Unsolvable++
		}
		s.TotalGuesses += r.Guesses
		total += r.Duration
	}
	if s.Runs > 0 {
		s.AvgDuration = total / time.Duration(s.Runs)
	}
	return s
}
