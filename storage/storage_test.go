package storage

import (
	"errors"
	"testing"
	"time"

	"github.com/pflow-xyz/go-sudoku/grid"
	"github.com/pflow-xyz/go-sudoku/solvelog"
	"github.com/pflow-xyz/go-sudoku/solver"
)

const testPuzzle = "530070000600195000098000060800060003400803001700020006060000280000419005000080079"

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(":memory:")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func solveRecord(t *testing.T) solvelog.Record {
	t.Helper()
	g, err := grid.Parse(testPuzzle)
	if err != nil {
		t.Fatal(err)
	}
	return solvelog.NewRecord(solver.Solve(g))
}

func TestSaveAndGetRun(t *testing.T) {
	store := openTestStore(t)
	rec := solveRecord(t)

	if err := store.SaveRun(rec); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, err := store.GetRun(rec.RunID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.RunID != rec.RunID || got.Puzzle != rec.Puzzle || got.Result != rec.Result ||
		got.Status != rec.Status || got.Guesses != rec.Guesses ||
		got.Passes != rec.Passes || got.Duration != rec.Duration {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, rec)
	}
	if !got.SolvedAt.Equal(rec.SolvedAt.Truncate(0)) {
		t.Errorf("timestamp mismatch: got %v, want %v", got.SolvedAt, rec.SolvedAt)
	}
}

func TestGetRunNotFound(t *testing.T) {
	store := openTestStore(t)

	_, err := store.GetRun("no-such-run")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestDuplicateRunID(t *testing.T) {
	store := openTestStore(t)
	rec := solveRecord(t)

	if err := store.SaveRun(rec); err != nil {
		t.Fatal(err)
	}
	if err := store.SaveRun(rec); err == nil {
		t.Error("duplicate run ID accepted")
	}
}

func TestListRuns(t *testing.T) {
	store := openTestStore(t)

	base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		rec := solveRecord(t)
		rec.SolvedAt = base.Add(time.Duration(i) * time.Minute)
		if err := store.SaveRun(rec); err != nil {
			t.Fatal(err)
		}
	}

	runs, err := store.ListRuns(3)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("got %d runs, want 3", len(runs))
	}
	// Newest first.
	for i := 1; i < len(runs); i++ {
		if runs[i].SolvedAt.After(runs[i-1].SolvedAt) {
			t.Error("runs not ordered newest first")
		}
	}

	all, err := store.ListRuns(0)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 5 {
		t.Errorf("got %d runs with no limit, want 5", len(all))
	}
}

func TestStats(t *testing.T) {
	store := openTestStore(t)

	st, err := store.Stats()
	if err != nil {
		t.Fatalf("stats on empty store: %v", err)
	}
	if st.Runs != 0 {
		t.Errorf("empty store has %d runs", st.Runs)
	}

	solved := solveRecord(t)
	failed := solveRecord(t)
	failed.RunID = "failed-run"
	failed.Status = solver.StatusUnsolvable.String()
	for _, rec := range []solvelog.Record{solved, failed} {
		if err := store.SaveRun(rec); err != nil {
			t.Fatal(err)
		}
	}

	st, err = store.Stats()
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if st.Runs != 2 || st.Solved != 1 || st.Unsolvable != 1 {
		t.Errorf("stats = %+v, want 2 runs, 1 solved, 1 unsolvable", st)
	}
	if st.AvgDuration <= 0 {
		t.Error("average duration not computed")
	}
}
