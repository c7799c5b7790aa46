package solvelog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

// csvHeader is the fixed column order for record files.
var csvHeader = []string{
	"run_id", "puzzle", "result", "status",
	"guesses", "passes", "duration_ns", "solved_at",
}

// WriteCSV writes records as CSV with a header row.
func WriteCSV(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, r := range records {
		row := []string{
			r.RunID,
			r.Puzzle,
			r.Result,
			r.Status,
			strconv.Itoa(r.Guesses),
			strconv.Itoa(r.Passes),
			strconv.FormatInt(int64(r.Duration), 10),
			r.SolvedAt.Format(time.RFC3339Nano),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing record %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes records to a CSV file.
func WriteCSVFile(filename string, records []Record) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer f.Close()

	return WriteCSV(f, records)
}

// ReadCSV parses records from a CSV stream written by WriteCSV.
func ReadCSV(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(csvHeader)

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	for i, name := range csvHeader {
		if header[i] != name {
			return nil, fmt.Errorf("column %d: expected %q, got %q", i, name, header[i])
		}
	}

	var records []Record
	line := 1
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		rec, err := parseCSVRow(row)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// ReadCSVFile parses records from a CSV file.
func ReadCSVFile(filename string) ([]Record, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return ReadCSV(f)
}

func parseCSVRow(row []string) (Record, error) {
	var rec Record
	rec.RunID = row[0]
	rec.Puzzle = row[1]
	rec.Result = row[2]
	rec.Status = row[3]

	guesses, err := strconv.Atoi(row[4])
	if err != nil {
		return rec, fmt.Errorf("invalid guesses %q: %w", row[4], err)
	}
	rec.Guesses = guesses

	passes, err := strconv.Atoi(row[5])
	if err != nil {
		return rec, fmt.Errorf("invalid passes %q: %w", row[5], err)
	}
	rec.Passes = passes

	ns, err := strconv.ParseInt(row[6], 10, 64)
	if err != nil {
		return rec, fmt.Errorf("invalid duration %q: %w", row[6], err)
	}
	rec.Duration = time.Duration(ns)

	solvedAt, err := time.Parse(time.RFC3339Nano, row[7])
	if err != nil {
		return rec, fmt.Errorf("invalid timestamp %q: %w", row[7], err)
	}
	rec.SolvedAt = solvedAt

	return rec, nil
}
