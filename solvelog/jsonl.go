package solvelog

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// WriteJSONL writes records as JSON Lines, one object per line.
func WriteJSONL(w io.Writer, records []Record) error {
	enc := json.NewEncoder(w)
	for i, r := range records {
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("writing record %d: %w", i, err)
		}
	}
	return nil
}

// WriteJSONLFile writes records to a JSONL file.
func WriteJSONLFile(filename string, records []Record) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer f.Close()

	return WriteJSONL(f, records)
}

// ReadJSONL parses records from a JSONL stream. Empty lines are skipped;
// anything else that isn't a valid record is an error with its line number.
func ReadJSONL(r io.Reader) ([]Record, error) {
	var records []Record
	scanner := bufio.NewScanner(r)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if line == "" {
			continue
		}

		var rec Record
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			return nil, fmt.Errorf("line %d: invalid JSON: %w", lineNum, err)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return records, nil
}

// ReadJSONLFile parses records from a JSONL file.
func ReadJSONLFile(filename string) ([]Record, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return ReadJSONL(f)
}
