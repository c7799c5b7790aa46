package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/pflow-xyz/go-sudoku/grid"
	"github.com/pflow-xyz/go-sudoku/solvelog"
	"github.com/pflow-xyz/go-sudoku/solver"
	"github.com/pflow-xyz/go-sudoku/storage"
)

func solve(args []string) error {
	fs := flag.NewFlagSet("solve", flag.ExitOnError)
	file := fs.String("file", "", "Read the puzzle from the first non-blank line of a file")
	output := fs.String("output", "", "Append the 81-character result line to a file")
	dbPath := fs.String("db", "", "Record the run in a SQLite database")
	quiet := fs.Bool("q", false, "Print only the 81-character result line")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: sudoku solve [options] <puzzle>

Solve a single puzzle given as an 81-character string ('0' = empty cell).
On an unsolvable puzzle the original grid is echoed back unchanged.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  sudoku solve 530070000600195000098000060800060003400803001700020006060000280000419005000080079
  sudoku solve --file puzzle.txt --output output.txt
  sudoku solve --db runs.db --q <puzzle>
`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	line, err := puzzleLine(fs, *file)
	if err != nil {
		return err
	}

	g, err := grid.Parse(line)
	if err != nil {
		return fmt.Errorf("parse puzzle: %w", err)
	}

	res := solver.Solve(g)

	if *quiet {
		fmt.Println(res.Solution.String())
	} else {
		fmt.Println("[Input]")
		fmt.Println(res.Input.Format())
		fmt.Println()
		fmt.Println("[Result]")
		fmt.Println(res.Solution.Format())
		fmt.Println()
		fmt.Printf("Status: %s\n", res.Status)
		fmt.Printf("Guesses: %d  Passes: %d  Eliminations: %d  Depth: %d\n",
			res.Stats.Guesses, res.Stats.Passes, res.Stats.Eliminations, res.Stats.MaxDepth)
		fmt.Printf("Time: %v\n", res.Stats.Duration)
	}

	if *output != "" {
		if err := appendLine(*output, res.Solution.String()); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}

	if *dbPath != "" {
		if err := recordRuns(*dbPath, solvelog.NewRecord(res)); err != nil {
			return err
		}
	}
	return nil
}

// puzzleLine resolves the puzzle string from the positional argument or,
// with --file, from the first non-blank line of the named file.
func puzzleLine(fs *flag.FlagSet, file string) (string, error) {
	if file == "" {
		if fs.NArg() < 1 {
			fs.Usage()
			return "", fmt.Errorf("puzzle string required")
		}
		return fs.Arg(0), nil
	}

	f, err := os.Open(file)
	if err != nil {
		return "", fmt.Errorf("open puzzle file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			return line, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("read puzzle file: %w", err)
	}
	return "", fmt.Errorf("no puzzle found in %s", file)
}

func appendLine(filename, line string) error {
	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = fmt.Fprintln(f, line)
	return err
}

func recordRuns(dbPath string, records ...solvelog.Record) error {
	store, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open run database: %w", err)
	}
	defer store.Close()

	for _, rec := range records {
		if err := store.SaveRun(rec); err != nil {
			return fmt.Errorf("record run: %w", err)
		}
	}
	return nil
}
