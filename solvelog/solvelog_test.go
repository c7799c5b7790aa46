package solvelog

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/pflow-xyz/go-sudoku/grid"
	"github.com/pflow-xyz/go-sudoku/solver"
)

const testPuzzle = "530070000600195000098000060800060003400803001700020006060000280000419005000080079"

func sampleRecords(t *testing.T) []Record {
	t.Helper()
	g, err := grid.Parse(testPuzzle)
	if err != nil {
		t.Fatal(err)
	}

	solved := NewRecord(solver.Solve(g))

	failed := Record{
		RunID:    "00000000-0000-0000-0000-000000000001",
		Puzzle:   testPuzzle,
		Result:   testPuzzle,
		Status:   solver.StatusUnsolvable.String(),
		Guesses:  0,
		Passes:   1,
		Duration: 42 * time.Microsecond,
		SolvedAt: time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC),
	}
	return []Record{solved, failed}
}

func TestNewRecord(t *testing.T) {
	g, _ := grid.Parse(testPuzzle)
	rec := NewRecord(solver.Solve(g))

	if rec.RunID == "" {
		t.Error("record has no run ID")
	}
	if rec.Puzzle != testPuzzle {
		t.Error("record puzzle differs from input")
	}
	if rec.Status != "solved" {
		t.Errorf("status = %q, want solved", rec.Status)
	}
	if rec.SolvedAt.IsZero() {
		t.Error("record has no timestamp")
	}

	// Run IDs must be unique across records.
	other := NewRecord(solver.Solve(g))
	if other.RunID == rec.RunID {
		t.Error("two records share a run ID")
	}
}

func TestCSVRoundTrip(t *testing.T) {
	records := sampleRecords(t)

	var buf bytes.Buffer
	if err := WriteCSV(&buf, records); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	got, err := ReadCSV(&buf)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	assertRecordsEqual(t, records, got)
}

func TestCSVRejectsWrongHeader(t *testing.T) {
	in := "foo,bar\n1,2\n"
	if _, err := ReadCSV(strings.NewReader(in)); err == nil {
		t.Error("wrong header accepted")
	}
}

func TestJSONLRoundTrip(t *testing.T) {
	records := sampleRecords(t)

	var buf bytes.Buffer
	if err := WriteJSONL(&buf, records); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	got, err := ReadJSONL(&buf)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	assertRecordsEqual(t, records, got)
}

func TestJSONLSkipsBlankLines(t *testing.T) {
	records := sampleRecords(t)

	var buf bytes.Buffer
	if err := WriteJSONL(&buf, records[:1]); err != nil {
		t.Fatal(err)
	}
	buf.WriteString("\n\n")

	got, err := ReadJSONL(&buf)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("got %d records, want 1", len(got))
	}
}

func TestJSONLBadLine(t *testing.T) {
	in := "{\"run_id\":\"x\"}\nnot json\n"
	_, err := ReadJSONL(strings.NewReader(in))
	if err == nil {
		t.Fatal("malformed line accepted")
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("error does not name the line: %v", err)
	}
}

func TestSummary(t *testing.T) {
	log := NewLog()
	for _, r := range sampleRecords(t) {
		log.Add(r)
	}

	sum := log.Summary()
	if sum.Runs != 2 || sum.Solved != 1 || sum.Unsolvable != 1 {
		t.Errorf("summary = %+v, want 2 runs, 1 solved, 1 unsolvable", sum)
	}
	if sum.AvgDuration <= 0 {
		t.Error("average duration not computed")
	}
}

func TestSortByTime(t *testing.T) {
	records := sampleRecords(t)
	log := NewLog()
	log.Add(records[0]) // now
	log.Add(records[1]) // 2026-03-14
	log.SortByTime()

	if !log.Records[0].SolvedAt.Before(log.Records[1].SolvedAt) {
		t.Error("records not sorted oldest first")
	}
}

func assertRecordsEqual(t *testing.T, want, got []Record) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d records, want %d", len(got), len(want))
	}
	for i := range want {
		w, g := want[i], got[i]
		if g.RunID != w.RunID || g.Puzzle != w.Puzzle || g.Result != w.Result ||
			g.Status != w.Status || g.Guesses != w.Guesses || g.Passes != w.Passes ||
			g.Duration != w.Duration || !g.SolvedAt.Equal(w.SolvedAt) {
			t.Errorf("record %d mismatch:\n got %+v\nwant %+v", i, g, w)
		}
	}
}
